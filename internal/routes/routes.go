package routes

import (
	"net/http"

	"socialink_backend/internal/auth"
	"socialink_backend/internal/handlers"
	"socialink_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the Gin engine with all middleware and routes.
func SetupRouter(appHandlers *handlers.AppHandlers, tokens *auth.TokenService, uploadsPath string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())

	authRequired := middleware.AuthMiddleware(tokens)
	authOptional := middleware.OptionalAuthMiddleware(tokens)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if uploadsPath != "" {
		router.Static("/uploads", uploadsPath)
	}

	api := router.Group("/")
	appHandlers.Auth.RegisterRoutes(api, authRequired)
	appHandlers.OAuth.RegisterRoutes(api)
	appHandlers.Posts.RegisterRoutes(api, authRequired, authOptional)
	appHandlers.Comments.RegisterRoutes(api, authRequired, authOptional)
	appHandlers.Users.RegisterRoutes(api, authRequired, authOptional)
	appHandlers.Notifications.RegisterRoutes(api, authRequired)

	return router
}
