package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/odiaaudiogen/server/domain/entities"
	"github.com/odiaaudiogen/server/domain/repositories"
)

// FeedbackHandler serves feedback submission and the admin listing.
type FeedbackHandler struct {
	feedback repositories.FeedbackRepository
	logger   *zap.Logger
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(feedback repositories.FeedbackRepository, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback, logger: logger}
}

// Submit handles POST /api/v1/feedback/submit.
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
	}
	if req.Rating == 0 || req.Message == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Rating and message are required"})
	}

	feedback := &entities.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Rating:  req.Rating,
		Message: req.Message,
	}
	if feedback.Name == "" {
		feedback.Name = "Anonymous"
	}
	if feedback.Email == "" {
		feedback.Email = "No email provided"
	}
	if err := feedback.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	if err := h.feedback.Create(c.Request().Context(), feedback); err != nil {
		h.logger.Error("Failed to store feedback", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, FeedbackResponse{
		Success: true,
		Message: "Feedback submitted successfully",
		Data:    feedback,
	})
}

// List handles GET /api/v1/feedback. Admin key required.
func (h *FeedbackHandler) List(c echo.Context) error {
	feedbacks, err := h.feedback.List(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to list feedback", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
	if feedbacks == nil {
		feedbacks = []*entities.Feedback{}
	}

	return c.JSON(http.StatusOK, FeedbackListResponse{Success: true, Data: feedbacks})
}

// ContactHandler serves contact-us submission and the admin listing.
type ContactHandler struct {
	contacts repositories.ContactRepository
	logger   *zap.Logger
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contacts repositories.ContactRepository, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, logger: logger}
}

// Create handles POST /api/v1/contact.
func (h *ContactHandler) Create(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Message is required"})
	}

	contact := &entities.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.contacts.Create(c.Request().Context(), contact); err != nil {
		h.logger.Error("Failed to store contact", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, ContactResponse{
		Success: true,
		Message: "Message received",
		Data:    contact,
	})
}

// List handles GET /api/v1/contact. Admin key required.
func (h *ContactHandler) List(c echo.Context) error {
	contacts, err := h.contacts.List(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to list contacts", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
	if contacts == nil {
		contacts = []*entities.Contact{}
	}

	return c.JSON(http.StatusOK, ContactListResponse{Success: true, Data: contacts})
}
