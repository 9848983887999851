package handlers

import (
	"socialink_backend/internal/oauth"
	"socialink_backend/internal/services"
	"socialink_backend/internal/storage"
	"socialink_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler.
type AppHandlers struct {
	Auth          *AuthHandler
	OAuth         *OAuthHandler
	Posts         *PostHandler
	Comments      *CommentHandler
	Users         *UserHandler
	Notifications *NotificationHandler
}

func NewAppHandlers(
	container *services.ServiceContainer,
	google *oauth.GoogleClient,
	store storage.Storage,
	v *validator.Validator,
) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:          NewAuthHandler(base, container.Auth),
		OAuth:         NewOAuthHandler(base, container.OAuth, google),
		Posts:         NewPostHandler(base, container.Posts, store),
		Comments:      NewCommentHandler(base, container.Comments),
		Users:         NewUserHandler(base, container.Users),
		Notifications: NewNotificationHandler(base, container.Notifications),
	}
}
