package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/odiaaudiogen/server/internal/faults"
	"github.com/odiaaudiogen/server/usecase"
)

// UserHandler serves the account endpoints.
type UserHandler struct {
	users  *usecase.UserService
	logger *zap.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users *usecase.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// Register handles POST /api/v1/users/register.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request format"})
	}

	user, err := h.users.Register(c.Request().Context(), usecase.RegisterInput{
		Name:            req.Name,
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		if faults.IsKind(err, faults.Validation) {
			return c.JSON(http.StatusBadRequest, MessageResponse{Message: faults.PublicMessage(err)})
		}
		h.logger.Error("Error during registration", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Server error"})
	}

	return c.JSON(http.StatusCreated, UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Message:  "User registered successfully",
	})
}

// Login handles POST /api/v1/users/login. A Google ID token in the body
// delegates to the Google sign-in flow.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request format"})
	}

	if req.Token != "" {
		return h.googleSignIn(c, req.Token)
	}

	user, token, err := h.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case faults.IsKind(err, faults.Validation):
			return c.JSON(http.StatusBadRequest, MessageResponse{Message: faults.PublicMessage(err)})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Invalid email or password"})
		default:
			h.logger.Error("Error during login", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Server error"})
		}
	}

	return c.JSON(http.StatusOK, UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	})
}

// GoogleAuth handles POST /api/v1/users/google.
func (h *UserHandler) GoogleAuth(c echo.Context) error {
	var req GoogleAuthRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request format"})
	}
	return h.googleSignIn(c, req.Token)
}

func (h *UserHandler) googleSignIn(c echo.Context, rawIDToken string) error {
	user, token, err := h.users.GoogleSignIn(c.Request().Context(), rawIDToken)
	if err != nil {
		if faults.IsKind(err, faults.Validation) {
			return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Google token is required"})
		}
		h.logger.Error("Google OAuth error", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Google login failed"})
	}

	return c.JSON(http.StatusOK, UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Name:     user.Name,
		Picture:  user.ProfilePicture,
		Token:    token,
		Message:  "Google login successful",
	})
}

// Profile handles GET /api/v1/users/profile. Requires a validated token.
func (h *UserHandler) Profile(c echo.Context) error {
	userID, _ := c.Get(userIDContextKey).(string)

	user, err := h.users.Profile(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, MessageResponse{Message: "User not found"})
		}
		h.logger.Error("Error fetching user profile", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Server error"})
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		ID:             user.ID,
		Name:           user.Name,
		Username:       user.Username,
		Email:          user.Email,
		ProfilePicture: user.ProfilePicture,
	})
}
