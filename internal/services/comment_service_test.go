package services

import (
	"testing"

	"socialink_backend/internal/models"
	"socialink_backend/internal/services/dto"
	"socialink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentNotifiesPostOwner(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author@x.com")
	commenter := env.createUser(t, "commenter@x.com")
	post := env.createPost(t, author.ID, "a post")

	resp, err := env.comments.CreateComment(commenter.ID, post.ID, &dto.CreateCommentRequest{Content: "nice"})
	require.NoError(t, err)
	assert.Equal(t, "nice", resp.Content)
	assert.Equal(t, post.ID, resp.PostID)

	notifications, err := env.notificationRepo.ListByUser(author.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationTypeComment, notifications[0].Type)
	assert.Equal(t, commenter.ID, notifications[0].FromUserID)
}

func TestCommentOnOwnPostProducesNoNotification(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author@x.com")
	post := env.createPost(t, author.ID, "a post")

	_, err := env.comments.CreateComment(author.ID, post.ID, &dto.CreateCommentRequest{Content: "self reply"})
	require.NoError(t, err)

	assert.Equal(t, int64(0), env.notificationCount(t, author.ID))
}

func TestCreateCommentMissingPost(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@x.com")

	_, err := env.comments.CreateComment(user.ID, 9999, &dto.CreateCommentRequest{Content: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}

func TestToggleCommentLikeIsAnInvolution(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author@x.com")
	liker := env.createUser(t, "liker@x.com")
	post := env.createPost(t, author.ID, "a post")

	comment, err := env.comments.CreateComment(author.ID, post.ID, &dto.CreateCommentRequest{Content: "a comment"})
	require.NoError(t, err)

	on, err := env.comments.ToggleLike(liker.ID, comment.ID)
	require.NoError(t, err)
	assert.True(t, on.Active)

	off, err := env.comments.ToggleLike(liker.ID, comment.ID)
	require.NoError(t, err)
	assert.False(t, off.Active)

	notifications, err := env.notificationRepo.ListByUser(author.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationTypeCommentLike, notifications[0].Type)
}

func TestToggleCommentLikeMissingComment(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@x.com")

	_, err := env.comments.ToggleLike(user.ID, 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCommentNotFound)
}

func TestDeleteCommentOwnership(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author@x.com")
	commenter := env.createUser(t, "commenter@x.com")
	post := env.createPost(t, author.ID, "a post")

	comment, err := env.comments.CreateComment(commenter.ID, post.ID, &dto.CreateCommentRequest{Content: "mine"})
	require.NoError(t, err)

	// The post owner still cannot delete someone else's comment.
	err = env.comments.DeleteComment(author.ID, comment.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotCommentOwner)

	require.NoError(t, env.comments.DeleteComment(commenter.ID, comment.ID))

	err = env.comments.DeleteComment(commenter.ID, comment.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCommentNotFound)
}

func TestGetCommentsNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author@x.com")
	post := env.createPost(t, author.ID, "a post")

	_, err := env.comments.CreateComment(author.ID, post.ID, &dto.CreateCommentRequest{Content: "first"})
	require.NoError(t, err)
	_, err = env.comments.CreateComment(author.ID, post.ID, &dto.CreateCommentRequest{Content: "second"})
	require.NoError(t, err)

	comments, err := env.comments.GetComments(post.ID, nil)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Content)
	assert.Equal(t, "first", comments[1].Content)
}
