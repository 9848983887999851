package services

import (
	"socialink_backend/internal/auth"
	"socialink_backend/internal/email"
	"socialink_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer wires every service with its repositories.
type ServiceContainer struct {
	Auth          AuthService
	OAuth         OAuthService
	Posts         PostService
	Comments      CommentService
	Users         UserService
	Notifications NotificationService
}

func NewServiceContainer(db *gorm.DB, tokens *auth.TokenService, mailer email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	followRepo := repositories.NewFollowRepository(db)
	postRepo := repositories.NewPostRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	notifications := NewNotificationService(notificationRepo)

	return &ServiceContainer{
		Auth:          NewAuthService(userRepo, tokens, mailer),
		OAuth:         NewOAuthService(userRepo, tokens),
		Posts:         NewPostService(postRepo, commentRepo, userRepo, notifications),
		Comments:      NewCommentService(commentRepo, postRepo, userRepo, notifications),
		Users:         NewUserService(userRepo, followRepo, notifications),
		Notifications: notifications,
	}
}
