package service

import (
	"context"
	"strings"

	"busline/internal/backendapi"
	"busline/internal/domain"
)

// ChatBackend is the slice of the backend API the chat widget needs.
type ChatBackend interface {
	StartConversation(ctx context.Context, customerUsername, staffUsername string) (*domain.Conversation, error)
	ChatMessages(ctx context.Context, conversationID int64) ([]domain.ChatMessage, error)
	SendMessage(ctx context.Context, conversationID int64, req backendapi.SendMessageRequest) (*domain.ChatMessage, error)
}

var _ ChatBackend = (*backendapi.Client)(nil)

// ChatService proxies the chat widget's transport.
type ChatService struct {
	backend      ChatBackend
	defaultStaff string
}

// NewChatService creates a new ChatService. defaultStaff is the staff
// account new conversations are routed to when none is given.
func NewChatService(backend ChatBackend, defaultStaff string) *ChatService {
	return &ChatService{backend: backend, defaultStaff: defaultStaff}
}

// Start opens a conversation between a customer and a staff account.
func (s *ChatService) Start(ctx context.Context, customerUsername, staffUsername string) (*domain.Conversation, error) {
	if customerUsername == "" {
		return nil, ErrNotLoggedIn
	}
	if staffUsername == "" {
		staffUsername = s.defaultStaff
	}
	return s.backend.StartConversation(ctx, customerUsername, staffUsername)
}

// Messages lists a conversation's messages.
func (s *ChatService) Messages(ctx context.Context, conversationID int64) ([]domain.ChatMessage, error) {
	if conversationID <= 0 {
		return nil, ErrInvalidConversationID
	}
	return s.backend.ChatMessages(ctx, conversationID)
}

// Send appends one message to a conversation.
func (s *ChatService) Send(ctx context.Context, conversationID int64, sender, content string) (*domain.ChatMessage, error) {
	if conversationID <= 0 {
		return nil, ErrInvalidConversationID
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyMessage
	}
	return s.backend.SendMessage(ctx, conversationID, backendapi.SendMessageRequest{
		Sender:  sender,
		Content: content,
	})
}
