package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busline/internal/service"
)

// ChatHandler handles HTTP requests for the support chat.
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// StartChatRequest is the HTTP request body for opening a conversation.
type StartChatRequest struct {
	StaffUsername string `json:"staffUsername"`
}

// Start handles POST /v1/chats
func (h *ChatHandler) Start(c *gin.Context) {
	var req StartChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	conversation, err := h.chatService.Start(c.Request.Context(), sessionUsername(c), req.StaffUsername)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, conversation)
}

// Messages handles GET /v1/chats/:id/messages
func (h *ChatHandler) Messages(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	messages, err := h.chatService.Messages(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, messages)
}

// SendMessageRequest is the HTTP request body for sending one message.
type SendMessageRequest struct {
	Content string `json:"content"`
}

// Send handles POST /v1/chats/:id/send
func (h *ChatHandler) Send(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	message, err := h.chatService.Send(c.Request.Context(), id, sessionUsername(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, message)
}
