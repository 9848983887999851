package middleware

import (
	"strings"

	"socialink_backend/internal/auth"
	"socialink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	// ContextUserIDKey is where the authenticated user id lives in the Gin
	// context.
	ContextUserIDKey    = "userID"
	ContextUserEmailKey = "userEmail"
)

// AuthMiddleware rejects requests without a valid bearer access token.
func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseBearer(c, tokens)
		if err != nil {
			apperrors.HandleError(c, err)
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid token subject"))
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Set(ContextUserEmailKey, claims.Email)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the user identity when a valid token is
// present but lets anonymous requests through. Feed endpoints use it to
// resolve per-viewer like flags.
func OptionalAuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseBearer(c, tokens)
		if err == nil {
			if userID, idErr := claims.UserID(); idErr == nil {
				c.Set(ContextUserIDKey, userID)
				c.Set(ContextUserEmailKey, claims.Email)
			}
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context, tokens *auth.TokenService) (*auth.TokenClaims, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, apperrors.NewUnauthorizedError("Authorization header is required")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, apperrors.NewUnauthorizedError("Authorization header must be in the format 'Bearer {token}'")
	}

	return tokens.ParseAccessToken(parts[1])
}
