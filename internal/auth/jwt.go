package auth

import (
	"strconv"
	"time"

	"socialink_backend/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

// Remaining rotations granted to a freshly issued refresh token. Each
// successful rotation decrements the counter carried inside the token; at
// zero the chain is dead and the user must sign in again.
const refreshRotations = 5

// TokenClaims is the signed payload of both token kinds. CountEx is present
// only on refresh tokens.
type TokenClaims struct {
	Email   string `json:"email"`
	CountEx *int   `json:"countEx,omitempty"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim back into the numeric user id.
func (c *TokenClaims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// TokenPair is an access/refresh token couple.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenService signs and rotates token pairs. Access and refresh tokens use
// independent secrets so a leaked access secret cannot forge refresh tokens.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// Issue signs a fresh token pair for the user. The refresh token starts with
// the full rotation budget.
func (s *TokenService) Issue(userID uint, email string) (*TokenPair, error) {
	now := time.Now()

	accessClaims := &TokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(s.accessSecret)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	count := refreshRotations
	refreshClaims := &TokenClaims{
		Email:   email,
		CountEx: &count,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
		},
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(s.refreshSecret)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Rotate verifies a refresh token and exchanges it for a new pair carrying a
// decremented rotation counter.
func (s *TokenService) Rotate(refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, apperrors.NewUnauthorizedError("Refresh token is required")
	}

	claims := &TokenClaims{}
	_, err := jwt.ParseWithClaims(refreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		return s.refreshSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if apperrors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.New(apperrors.CodeTokenExpired, "auth", "Refresh token expired", 401)
		}
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token: " + err.Error())
	}

	if claims.CountEx == nil || *claims.CountEx <= 0 {
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token, please go to login")
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token subject")
	}

	now := time.Now()

	accessClaims := &TokenClaims{
		Email: claims.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(s.accessSecret)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	count := *claims.CountEx - 1
	newRefreshClaims := &TokenClaims{
		Email:   claims.Email,
		CountEx: &count,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
		},
	}
	newRefreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, newRefreshClaims).SignedString(s.refreshSecret)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}

// ParseAccessToken verifies an access token and returns its claims.
// Refresh tokens are rejected here because they are signed with a different
// secret.
func (s *TokenService) ParseAccessToken(tokenStr string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.accessSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if apperrors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.New(apperrors.CodeTokenExpired, "auth", "Access token expired", 401)
		}
		return nil, apperrors.NewUnauthorizedError("Invalid token")
	}
	return claims, nil
}
