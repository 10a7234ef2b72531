package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/odiaaudiogen/server/internal/auth"
)

const userIDContextKey = "user_id"

// RequireUser validates the Bearer token and stores the user id on the
// request context.
func RequireUser(issuer *auth.Issuer, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				logger.Warn("Request rejected: missing token", zap.String("path", c.Path()))
				return c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Not authorized, no token"})
			}

			claims, err := issuer.ValidateToken(token)
			if err != nil {
				logger.Warn("Request rejected: invalid token",
					zap.String("path", c.Path()),
					zap.Error(err))
				return c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Not authorized, token failed"})
			}

			c.Set(userIDContextKey, claims.UserID)
			return next(c)
		}
	}
}

// RequireAdminKey guards admin listings behind the x-api-key header.
func RequireAdminKey(adminKey string, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if adminKey == "" {
				logger.Error("Admin API key is not configured")
				return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Server configuration error."})
			}

			key := c.Request().Header.Get("x-api-key")
			if key == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "API key missing"})
			}
			if key != adminKey {
				return c.JSON(http.StatusForbidden, ErrorResponse{Error: "Invalid API key"})
			}
			return next(c)
		}
	}
}
