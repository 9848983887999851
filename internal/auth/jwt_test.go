package auth

import (
	"testing"
	"time"

	"socialink_backend/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService() *TokenService {
	return NewTokenService("access-secret", "refresh-secret", time.Minute, time.Hour)
}

func TestIssueReturnsDistinctTokens(t *testing.T) {
	svc := newTestTokenService()

	pair, err := svc.Issue(42, "a@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := svc.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Nil(t, claims.CountEx)
}

func TestRotateIsBoundedToFiveRotations(t *testing.T) {
	svc := newTestTokenService()

	pair, err := svc.Issue(7, "b@x.com")
	require.NoError(t, err)

	refresh := pair.RefreshToken
	for i := 0; i < 5; i++ {
		next, err := svc.Rotate(refresh)
		require.NoError(t, err, "rotation %d should succeed", i+1)
		refresh = next.RefreshToken
	}

	_, err = svc.Rotate(refresh)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.HTTPCode)
	assert.Contains(t, appErr.Message, "please go to login")
}

func TestRotateRejectsBlankToken(t *testing.T) {
	svc := newTestTokenService()

	_, err := svc.Rotate("")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.HTTPCode)
}

func TestRotateRejectsMalformedToken(t *testing.T) {
	svc := newTestTokenService()

	_, err := svc.Rotate("not.a.token")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.HTTPCode)
	assert.Contains(t, appErr.Message, "Invalid refresh token")
}

func TestRotateRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", time.Minute, time.Hour)

	count := 5
	claims := &TokenClaims{
		Email:   "c@x.com",
		CountEx: &count,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "9",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("refresh-secret"))
	require.NoError(t, err)

	_, err = svc.Rotate(expired)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeTokenExpired, appErr.Code)
	assert.Equal(t, "Refresh token expired", appErr.Message)
}

func TestRotateRejectsAccessTokenAsRefresh(t *testing.T) {
	svc := newTestTokenService()

	pair, err := svc.Issue(3, "d@x.com")
	require.NoError(t, err)

	// Signed with the access secret, so verification against the refresh
	// secret must fail.
	_, err = svc.Rotate(pair.AccessToken)
	require.Error(t, err)
}

func TestRotatedPairCarriesDecrementedCounter(t *testing.T) {
	svc := newTestTokenService()

	pair, err := svc.Issue(11, "e@x.com")
	require.NoError(t, err)

	next, err := svc.Rotate(pair.RefreshToken)
	require.NoError(t, err)

	claims := &TokenClaims{}
	_, err = jwt.ParseWithClaims(next.RefreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("refresh-secret"), nil
	})
	require.NoError(t, err)
	require.NotNil(t, claims.CountEx)
	assert.Equal(t, 4, *claims.CountEx)
}
