package handler

import (
	"net/http"

	"event-management-api/internal/model"
	"event-management-api/internal/service"
	apperrors "event-management-api/pkg/app_errors"
	"event-management-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventHandler struct {
	service   service.EventService
	uploadDir string
}

func NewEventHandler(service service.EventService, uploadDir string) *EventHandler {
	return &EventHandler{service: service, uploadDir: uploadDir}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/events", h.List)
	r.GET("/events/:uuid", h.GetByEventID)
	r.POST("/events", h.Create)
	r.PUT("/events/:uuid", h.UpdateByEventID)
	r.DELETE("/events/:uuid", h.DeleteByEventID)
}

// CreateEventRequest 建立活動請求，JSON 與 multipart form 皆可
type CreateEventRequest struct {
	Name        string `json:"name" form:"name" binding:"required,min=3,max=255"`
	Description string `json:"description" form:"description" binding:"required,min=10,max=1024"`
	Date        string `json:"date" form:"date" binding:"required"`
	Location    string `json:"location" form:"location" binding:"required,min=3,max=255"`
}

// UpdateEventRequest 更新活動請求，只驗證有帶的欄位
type UpdateEventRequest struct {
	Name        *string `json:"name" form:"name" binding:"omitempty,min=3,max=255"`
	Description *string `json:"description" form:"description" binding:"omitempty,min=10,max=1024"`
	Date        *string `json:"date" form:"date"`
	Location    *string `json:"location" form:"location" binding:"omitempty,min=3,max=255"`
}

type ListEventsQuery struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=10"`
}

func (h *EventHandler) List(c *gin.Context) {
	var query ListEventsQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	events, err := h.service.List(c, query.Page, query.Limit)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetByEventID(c *gin.Context) {
	uuidStr := c.Param("uuid")
	eventID, err := uuid.Parse(uuidStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event uuid"})
		return
	}
	event, err := h.service.GetByEventID(c, eventID)
	if err != nil {
		h.handleError(c, err, "GetByEventID")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := Bind(c, &req); err != nil {
		return
	}
	date, err := model.ParseEventDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event date"})
		return
	}
	imageURL, err := SaveUploadedImage(c, h.uploadDir)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	event := &model.Event{
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
		Location:    req.Location,
		ImageURL:    imageURL,
	}
	created, err := h.service.Create(c, event)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully",
		"event":   created,
	})
}

func (h *EventHandler) UpdateByEventID(c *gin.Context) {
	uuidStr := c.Param("uuid")
	eventID, err := uuid.Parse(uuidStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event uuid"})
		return
	}
	var req UpdateEventRequest
	if err := Bind(c, &req); err != nil {
		return
	}
	params := model.UpdateEventParams{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
	}
	if req.Date != nil {
		date, err := model.ParseEventDate(*req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event date"})
			return
		}
		params.Date = &date
	}
	// 只有帶新檔案時才換掉 imageUrl
	imageURL, err := SaveUploadedImage(c, h.uploadDir)
	if err != nil {
		h.handleError(c, err, "UpdateByEventID")
		return
	}
	params.ImageURL = imageURL

	if params.Name == nil && params.Description == nil && params.Date == nil &&
		params.Location == nil && params.ImageURL == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one event field is required"})
		return
	}
	updated, err := h.service.UpdateByEventID(c, eventID, params)
	if err != nil {
		h.handleError(c, err, "UpdateByEventID")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully",
		"event":   updated,
	})
}

func (h *EventHandler) DeleteByEventID(c *gin.Context) {
	uuidStr := c.Param("uuid")
	eventID, err := uuid.Parse(uuidStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event uuid"})
		return
	}
	deleted, err := h.service.DeleteByEventID(c, eventID)
	if err != nil {
		h.handleError(c, err, "DeleteByEventID")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted successfully",
		"event":   deleted,
	})
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrEventNotFound:
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case err == apperrors.ErrEventDateNotFuture:
		log.Warn("Event date not in the future")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event date must be in the future"})
	case err == apperrors.ErrInvalidInput:
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
