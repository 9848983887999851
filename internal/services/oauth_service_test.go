package services

import (
	"testing"

	"socialink_backend/internal/oauth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUserProvisionsNewAccount(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.oauth.ValidateUser(&oauth.Profile{
		Email:      "new@x.com",
		GivenName:  "New",
		FamilyName: "User",
		Picture:    "https://example.com/p.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "created", result.Message)
	assert.Equal(t, "new@x.com", result.User.Email)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)

	// The provisioned account has a usable (hashed, non-empty) password.
	stored, err := env.userRepo.FindByEmail("new@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.Password)
}

func TestValidateUserSignsInExistingAccount(t *testing.T) {
	env := newTestEnv(t)
	existing := env.createUser(t, "existing@x.com")

	result, err := env.oauth.ValidateUser(&oauth.Profile{
		Email:      "existing@x.com",
		GivenName:  "Different",
		FamilyName: "Name",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed in", result.Message)
	assert.Equal(t, existing.ID, result.User.ID)

	// Stored fields are not overwritten by the provider profile.
	stored, err := env.userRepo.FindByEmail("existing@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Test", stored.FirstName)
}
