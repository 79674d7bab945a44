package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busline/internal/service"
)

// NotificationHandler handles HTTP requests for notifications.
type NotificationHandler struct {
	notificationService *service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List handles GET /v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.notificationService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, notifications)
}

// Recent handles GET /v1/notifications/recent
func (h *NotificationHandler) Recent(c *gin.Context) {
	notifications, err := h.notificationService.Recent(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, notifications)
}

// Unread handles GET /v1/notifications/unread
func (h *NotificationHandler) Unread(c *gin.Context) {
	notifications, err := h.notificationService.Unread(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, notifications)
}

// UnreadCountResponse is the unread badge payload.
type UnreadCountResponse struct {
	Count int `json:"count"`
}

// UnreadCount handles GET /v1/notifications/unread/count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.notificationService.UnreadCount(c.Request.Context(), sessionUsername(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, UnreadCountResponse{Count: count})
}

// MarkRead handles PUT /v1/notifications/:id/mark-as-read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.notificationService.MarkRead(c.Request.Context(), sessionUsername(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddNotificationRequest is the HTTP request body for creating a
// notification.
type AddNotificationRequest struct {
	Username string `json:"username"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

// Add handles POST /v1/notifications
func (h *NotificationHandler) Add(c *gin.Context) {
	var req AddNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if err := h.notificationService.Add(c.Request.Context(), req.Username, req.Title, req.Message); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// UpdateNotificationRequest is the HTTP request body for editing a
// notification's message.
type UpdateNotificationRequest struct {
	Message string `json:"message"`
}

// Update handles PUT /v1/notifications/:id
func (h *NotificationHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if err := h.notificationService.Update(c.Request.Context(), id, req.Message); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /v1/notifications/:id
func (h *NotificationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.notificationService.Delete(c.Request.Context(), sessionUsername(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
