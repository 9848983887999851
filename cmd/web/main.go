package main

import (
	"socialink_backend/internal/app"
	"socialink_backend/internal/config"
	"socialink_backend/internal/logger"
)

func main() {
	config.LoadConfig()

	application, err := app.New()
	if err != nil {
		logger.Fatal("failed to initialize application", "error", err.Error())
	}

	if err := application.Run(); err != nil {
		logger.Fatal("server stopped", "error", err.Error())
	}
}
