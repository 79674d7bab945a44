package backendapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"busline/internal/domain"
)

// SendMessageRequest is the payload for sending one chat message.
type SendMessageRequest struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
}

// StartConversation opens a customer/staff conversation.
func (c *Client) StartConversation(ctx context.Context, customerUsername, staffUsername string) (*domain.Conversation, error) {
	q := url.Values{
		"customerUsername": {customerUsername},
		"staffUsername":    {staffUsername},
	}
	var out domain.Conversation
	if err := c.do(ctx, http.MethodPost, "/chats/start", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChatMessages lists the messages of a conversation.
func (c *Client) ChatMessages(ctx context.Context, conversationID int64) ([]domain.ChatMessage, error) {
	var out []domain.ChatMessage
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/chats/%d/messages", conversationID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SendMessage appends a message to a conversation.
func (c *Client) SendMessage(ctx context.Context, conversationID int64, req SendMessageRequest) (*domain.ChatMessage, error) {
	var out domain.ChatMessage
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/chats/%d/send", conversationID), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
