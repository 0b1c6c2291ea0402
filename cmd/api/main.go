package main

import (
	"os"

	"github.com/genius/elearning/internal/pkg/logger"
	"github.com/genius/elearning/internal/server"
)

// @title Genius E-Learning API
// @version 1.0
// @description API for the Genius e-learning platform: courses, lessons, exams, assignments, subscriptions and notes
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@genius.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization, as "Bearer <token>"

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// the package logger is usable before configuration
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// blocks until a shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
