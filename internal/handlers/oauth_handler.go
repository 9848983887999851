package handlers

import (
	"net/http"

	"socialink_backend/internal/oauth"
	"socialink_backend/internal/services"
	"socialink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const stateCookieName = "oauth_state"

type OAuthHandler struct {
	BaseHandler
	oauthService services.OAuthService
	google       *oauth.GoogleClient
}

func NewOAuthHandler(base BaseHandler, oauthService services.OAuthService, google *oauth.GoogleClient) *OAuthHandler {
	return &OAuthHandler{BaseHandler: base, oauthService: oauthService, google: google}
}

func (h *OAuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/oauth")
	group.GET("/google/sign", h.GoogleSign)
	group.GET("/google_/callback", h.GoogleCallback)
}

// GoogleSign redirects the client to the Google consent screen. The nonce
// cookie binds the callback to this browser.
func (h *OAuthHandler) GoogleSign(c *gin.Context) {
	nonce := uuid.New().String()
	c.SetCookie(stateCookieName, nonce, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.google.AuthURL(nonce))
}

func (h *OAuthHandler) GoogleCallback(c *gin.Context) {
	nonce, err := c.Cookie(stateCookieName)
	if err != nil || !h.google.VerifyState(nonce, c.Query("state")) {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Invalid OAuth state"))
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Missing authorization code"))
		return
	}

	profile, err := h.google.Exchange(c.Request.Context(), code)
	if err != nil {
		h.HandleServiceError(c, apperrors.Wrap(err,
			apperrors.CodeExternalServiceError, "oauth",
			"Failed to authenticate with Google", http.StatusBadGateway))
		return
	}

	result, err := h.oauthService.ValidateUser(profile)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
