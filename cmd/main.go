package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	mongoadapter "github.com/odiaaudiogen/server/adapters/mongo"
	"github.com/odiaaudiogen/server/adapters/sarvam"
	"github.com/odiaaudiogen/server/internal/api"
	"github.com/odiaaudiogen/server/internal/auth"
	"github.com/odiaaudiogen/server/internal/config"
	"github.com/odiaaudiogen/server/usecase"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load .env if present, then build the configuration once.
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file loaded", zap.Error(err))
	}
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Connect to MongoDB
	mongoClient, err := mongoadapter.NewClient(cfg.MongoURI, cfg.MongoDatabase, logger)
	if err != nil {
		logger.Fatal("Database connection failed", zap.Error(err))
	}

	// Initialize adapters
	sarvamClient := sarvam.NewClient(sarvam.Config{
		APIKey:  cfg.SarvamAPIKey,
		BaseURL: cfg.SarvamBaseURL,
		Timeout: cfg.UpstreamTimeout,
	}, logger)
	userRepo := mongoadapter.NewUserRepository(mongoClient.Database)
	feedbackRepo := mongoadapter.NewFeedbackRepository(mongoClient.Database)
	contactRepo := mongoadapter.NewContactRepository(mongoClient.Database)

	tokenIssuer := auth.NewIssuer(cfg.JWTSecret)

	var googleVerifier usecase.GoogleTokenVerifier
	if cfg.GoogleClientID != "" {
		verifier, err := auth.NewGoogleVerifier(context.Background(), cfg.GoogleClientID)
		if err != nil {
			logger.Warn("Google sign-in disabled: OIDC discovery failed", zap.Error(err))
		} else {
			googleVerifier = verifier
		}
	} else {
		logger.Info("Google sign-in disabled: GOOGLE_CLIENT_ID not set")
	}

	// Initialize usecase services
	conversionService := usecase.NewConversionService(sarvamClient, sarvamClient, sarvamClient, logger)
	userService := usecase.NewUserService(userRepo, tokenIssuer, googleVerifier, logger)

	// Initialize API routes
	api.InitRoutes(e, api.Handlers{
		Conversions: api.NewConversionHandler(conversionService, logger),
		Users:       api.NewUserHandler(userService, logger),
		Feedback:    api.NewFeedbackHandler(feedbackRepo, logger),
		Contacts:    api.NewContactHandler(contactRepo, logger),
	}, tokenIssuer, cfg.AdminAPIKey, logger)

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("port", cfg.Port))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	if err := mongoClient.Close(ctx); err != nil {
		logger.Error("Failed to close MongoDB connection", zap.Error(err))
	}

	logger.Info("Server exited")
}
