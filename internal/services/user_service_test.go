package services

import (
	"testing"

	"socialink_backend/internal/models"
	"socialink_backend/internal/services/dto"
	"socialink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleFollowRejectsSelfFollow(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@x.com")

	_, err := env.users.ToggleFollow(user.ID, user.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSelfFollow)

	// The guard fires before state changes, so it fails every time.
	_, err = env.users.ToggleFollow(user.ID, user.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSelfFollow)
}

func TestToggleFollowIsAnInvolution(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice@x.com")
	bob := env.createUser(t, "bob@x.com")

	on, err := env.users.ToggleFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, on.Active)

	off, err := env.users.ToggleFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, off.Active)

	notifications, err := env.notificationRepo.ListByUser(bob.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationTypeFollow, notifications[0].Type)
	assert.Equal(t, alice.ID, notifications[0].FromUserID)
}

func TestToggleFollowMissingTarget(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@x.com")

	_, err := env.users.ToggleFollow(user.ID, 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestFollowerAndFollowingLists(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice@x.com")
	bob := env.createUser(t, "bob@x.com")
	carol := env.createUser(t, "carol@x.com")

	_, err := env.users.ToggleFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = env.users.ToggleFollow(carol.ID, bob.ID)
	require.NoError(t, err)

	followers, err := env.users.GetFollowers(bob.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)

	following, err := env.users.GetFollowing(alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, bob.ID, following[0].ID)
}

func TestGetProfileFollowStats(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice@x.com")
	bob := env.createUser(t, "bob@x.com")

	_, err := env.users.ToggleFollow(alice.ID, bob.ID)
	require.NoError(t, err)

	profile, err := env.users.GetProfile(bob.ID, &alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), profile.FollowerCount)
	assert.Equal(t, int64(0), profile.FollowingCount)
	assert.True(t, profile.FollowedByUser)

	anon, err := env.users.GetProfile(bob.ID, nil)
	require.NoError(t, err)
	assert.False(t, anon.FollowedByUser)
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@x.com")

	handle := "newhandle"
	first := "Updated"
	resp, err := env.users.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		UserName:  &handle,
		FirstName: &first,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.UserName)
	assert.Equal(t, "newhandle", *resp.UserName)
	assert.Equal(t, "Updated", resp.FirstName)

	_, err = env.users.UpdateProfile(user.ID, &dto.UpdateProfileRequest{})
	require.Error(t, err)
}

func TestUpdateProfileRejectsPasswordField(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@x.com")

	pw := "sneaky"
	_, err := env.users.UpdateProfile(user.ID, &dto.UpdateProfileRequest{Password: &pw})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Contains(t, appErr.Message, "change-password")
}

func TestDeleteAccount(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@x.com")

	require.NoError(t, env.users.DeleteAccount(user.ID))

	err := env.users.DeleteAccount(user.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
