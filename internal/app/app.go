package app

import (
	"fmt"
	"time"

	"socialink_backend/database"
	"socialink_backend/internal/auth"
	"socialink_backend/internal/config"
	"socialink_backend/internal/email"
	"socialink_backend/internal/handlers"
	"socialink_backend/internal/logger"
	"socialink_backend/internal/oauth"
	"socialink_backend/internal/routes"
	"socialink_backend/internal/services"
	"socialink_backend/internal/storage"
	"socialink_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// App is the assembled application.
type App struct {
	Router *gin.Engine
	Config *config.Config
}

// New wires configuration, database, services, handlers and routes.
func New() (*App, error) {
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	tokens := auth.NewTokenService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		time.Duration(cfg.JWT.AccessTTL)*time.Minute,
		time.Duration(cfg.JWT.RefreshTTL)*time.Hour,
	)

	mailer, err := email.NewGomailProvider(email.Config{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to configure mailer: %w", err)
	}

	store, err := storage.NewStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to configure storage: %w", err)
	}

	google := oauth.NewGoogleClient(oauth.GoogleConfig{
		ClientID:     cfg.OAuth.GoogleClientID,
		ClientSecret: cfg.OAuth.GoogleClientSecret,
		CallbackURL:  cfg.OAuth.GoogleCallbackURL,
		StateSecret:  cfg.JWT.SessionSecret,
	})

	container := services.NewServiceContainer(db, tokens, mailer)
	appHandlers := handlers.NewAppHandlers(container, google, store, validator.New())
	router := routes.SetupRouter(appHandlers, tokens, cfg.Storage.BasePath)

	return &App{Router: router, Config: cfg}, nil
}

// Run starts the HTTP server.
func (a *App) Run() error {
	addr := fmt.Sprintf("%s:%d", a.Config.Server.Host, a.Config.Server.Port)
	logger.Info("starting server", "addr", addr)
	return a.Router.Run(addr)
}
