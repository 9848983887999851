package services

import (
	"fmt"
	"testing"

	"socialink_backend/internal/services/dto"
	"socialink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPostsCursorWalk(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author@x.com")

	for i := 1; i <= 15; i++ {
		env.createPost(t, author.ID, fmt.Sprintf("post %d", i))
	}

	first, err := env.posts.GetPosts(dto.FeedQuery{Limit: 10}, nil)
	require.NoError(t, err)
	require.Len(t, first.Posts, 10)
	assert.True(t, first.HasNextPage)
	require.NotNil(t, first.NextCursor)
	assert.Equal(t, first.Posts[9].ID, *first.NextCursor)
	assert.Equal(t, int64(15), first.TotalCount)
	assert.Equal(t, 2, first.TotalPages)

	// Newest first.
	assert.Equal(t, "post 15", first.Posts[0].Content)

	second, err := env.posts.GetPosts(dto.FeedQuery{Limit: 10, Cursor: first.NextCursor}, nil)
	require.NoError(t, err)
	require.Len(t, second.Posts, 5)
	assert.False(t, second.HasNextPage)
	assert.Nil(t, second.NextCursor)
	// The total ignores the cursor filter.
	assert.Equal(t, int64(15), second.TotalCount)

	// No overlap between pages.
	seen := map[uint]bool{}
	for _, p := range first.Posts {
		seen[p.ID] = true
	}
	for _, p := range second.Posts {
		assert.False(t, seen[p.ID], "post %d returned twice", p.ID)
	}
}

func TestGetPostsOffsetMode(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author@x.com")

	for i := 1; i <= 15; i++ {
		env.createPost(t, author.ID, fmt.Sprintf("post %d", i))
	}

	page2, err := env.posts.GetPosts(dto.FeedQuery{Page: 2, Limit: 10}, nil)
	require.NoError(t, err)
	require.Len(t, page2.Posts, 5)
	assert.False(t, page2.HasNextPage)
	assert.Equal(t, 2, page2.CurrentPage)
	assert.Equal(t, "post 5", page2.Posts[0].Content)
}

func TestGetPostsFilterByAuthor(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice@x.com")
	bob := env.createUser(t, "bob@x.com")

	env.createPost(t, alice.ID, "alice post")
	env.createPost(t, bob.ID, "bob post")

	feed, err := env.posts.GetPosts(dto.FeedQuery{UserID: &alice.ID}, nil)
	require.NoError(t, err)
	require.Len(t, feed.Posts, 1)
	assert.Equal(t, "alice post", feed.Posts[0].Content)
	assert.Equal(t, int64(1), feed.TotalCount)
}

func TestGetPostsViewerLikeFlags(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author@x.com")
	viewer := env.createUser(t, "viewer@x.com")

	liked := env.createPost(t, author.ID, "liked post")
	env.createPost(t, author.ID, "plain post")

	_, err := env.posts.ToggleLike(viewer.ID, liked.ID)
	require.NoError(t, err)

	feed, err := env.posts.GetPosts(dto.FeedQuery{}, &viewer.ID)
	require.NoError(t, err)
	require.Len(t, feed.Posts, 2)

	byContent := map[string]dto.PostResponse{}
	for _, p := range feed.Posts {
		byContent[p.Content] = p
	}
	assert.True(t, byContent["liked post"].IsLiked)
	assert.Equal(t, int64(1), byContent["liked post"].LikesCount)
	assert.False(t, byContent["plain post"].IsLiked)

	// Anonymous viewers never see like flags.
	anon, err := env.posts.GetPosts(dto.FeedQuery{}, nil)
	require.NoError(t, err)
	for _, p := range anon.Posts {
		assert.False(t, p.IsLiked)
	}
}

func TestToggleLikeIsAnInvolution(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author@x.com")
	liker := env.createUser(t, "liker@x.com")
	post := env.createPost(t, author.ID, "a post")

	on, err := env.posts.ToggleLike(liker.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, on.Active)

	off, err := env.posts.ToggleLike(liker.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, off.Active)

	// One notification total, from the "on" transition only.
	assert.Equal(t, int64(1), env.notificationCount(t, author.ID))
}

func TestSelfLikeProducesNoNotification(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author@x.com")
	post := env.createPost(t, author.ID, "my own post")

	on, err := env.posts.ToggleLike(author.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, on.Active)

	assert.Equal(t, int64(0), env.notificationCount(t, author.ID))
}

func TestToggleLikeMissingPost(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@x.com")

	_, err := env.posts.ToggleLike(user.ID, 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}

func TestCreatePost(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author@x.com")

	resp, err := env.posts.CreatePost(author.ID, &dto.CreatePostRequest{Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Content)
	require.NotNil(t, resp.User)
	assert.Equal(t, author.ID, resp.User.ID)
	assert.Zero(t, resp.LikesCount)
}

func TestDeletePostOwnership(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author@x.com")
	other := env.createUser(t, "other@x.com")
	post := env.createPost(t, author.ID, "a post")

	err := env.posts.DeletePost(other.ID, post.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotPostOwner)

	require.NoError(t, env.posts.DeletePost(author.ID, post.ID))

	// The post is gone, so a second delete reports NotFound.
	err = env.posts.DeletePost(author.ID, post.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}

func TestGetPostByIDNestsComments(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author@x.com")
	commenter := env.createUser(t, "commenter@x.com")
	post := env.createPost(t, author.ID, "a post")

	first, err := env.comments.CreateComment(commenter.ID, post.ID, &dto.CreateCommentRequest{Content: "first"})
	require.NoError(t, err)
	_, err = env.comments.CreateComment(author.ID, post.ID, &dto.CreateCommentRequest{Content: "second"})
	require.NoError(t, err)

	_, err = env.comments.ToggleLike(author.ID, first.ID)
	require.NoError(t, err)

	detail, err := env.posts.GetPostByID(post.ID, &author.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, detail.ID)
	assert.Equal(t, int64(2), detail.CommentsCount)
	assert.True(t, detail.HasComments)
	require.Len(t, detail.Comments, 2)

	// Newest comment first.
	assert.Equal(t, "second", detail.Comments[0].Content)
	assert.Equal(t, "first", detail.Comments[1].Content)
	assert.Equal(t, int64(1), detail.Comments[1].LikeCount)
	assert.True(t, detail.Comments[1].LikedByUser)
}

func TestGetPostByIDMissing(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.posts.GetPostByID(12345, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}
