package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/odiaaudiogen/server/internal/auth"
)

// Handlers bundles everything InitRoutes wires up.
type Handlers struct {
	Conversions *ConversionHandler
	Users       *UserHandler
	Feedback    *FeedbackHandler
	Contacts    *ContactHandler
}

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, h Handlers, issuer *auth.Issuer, adminKey string, logger *zap.Logger) {
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello, this is the API for OdiaAudioGen!")
	})

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "odiaaudiogen-server",
		})
	})

	// API v1 routes
	v1 := e.Group("/api/v1")

	// Conversion APIs
	v1.GET("/stt", h.Conversions.GetSpeechToText)
	v1.POST("/stt", h.Conversions.PostSpeechToText)
	v1.GET("/tts", h.Conversions.GetTextToSpeech)
	v1.POST("/tts", h.Conversions.PostTextToSpeech)
	v1.GET("/sts", h.Conversions.GetSpeechToSpeech)
	v1.POST("/sts", h.Conversions.PostSpeechToSpeech)
	v1.GET("/ttt", h.Conversions.GetTextToText)
	v1.POST("/ttt", h.Conversions.PostTextToText)

	// User Management APIs
	v1.POST("/users/register", h.Users.Register)
	v1.POST("/users/login", h.Users.Login)
	v1.POST("/users/google", h.Users.GoogleAuth)
	v1.GET("/users/profile", h.Users.Profile, RequireUser(issuer, logger))

	// Feedback APIs
	v1.POST("/feedback/submit", h.Feedback.Submit)
	v1.GET("/feedback", h.Feedback.List, RequireAdminKey(adminKey, logger))

	// Contact APIs
	v1.POST("/contact", h.Contacts.Create)
	v1.GET("/contact", h.Contacts.List, RequireAdminKey(adminKey, logger))
}
