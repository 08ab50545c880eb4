package handler

import (
	"errors"
	"net/http"

	"event-management-api/internal/service"
	apperrors "event-management-api/pkg/app_errors"
	"event-management-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RegistrationHandler struct {
	service service.RegistrationService
}

func NewRegistrationHandler(service service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

func (h *RegistrationHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/events/:uuid/register", h.Register)
}

// RegisterRequest 報名請求
type RegisterRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

func (h *RegistrationHandler) Register(c *gin.Context) {
	uuidStr := c.Param("uuid")
	eventID, err := uuid.Parse(uuidStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event uuid"})
		return
	}
	var req RegisterRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	registration, receipt, err := h.service.Register(c, eventID, req.Name, req.Email)
	if err != nil {
		h.handleError(c, err, "Register")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Registration successful, confirmation email sent.",
		"registration": registration,
		"emailInfo":    receipt,
	})
}

func (h *RegistrationHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrEventNotFound:
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case err == apperrors.ErrEventFull:
		// 容量衝突沿用 400 回報，維持對外契約
		log.Warn("Event is fully booked")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event is fully booked"})
	case errors.Is(err, apperrors.ErrNotificationFailed):
		log.Error("Failed to send confirmation email")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send confirmation email"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
