package tests

import (
	"context"
	"errors"
	"testing"

	"busline/internal/service"
)

func TestChatStart_DefaultsStaffAccount(t *testing.T) {
	t.Parallel()

	svc := service.NewChatService(NewMockBackend(), "support")

	conv, err := svc.Start(context.Background(), "an", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.StaffUsername != "support" {
		t.Errorf("expected default staff account, got %q", conv.StaffUsername)
	}
}

func TestChatStart_RequiresLogin(t *testing.T) {
	t.Parallel()

	svc := service.NewChatService(NewMockBackend(), "support")

	_, err := svc.Start(context.Background(), "", "")
	if !errors.Is(err, service.ErrNotLoggedIn) {
		t.Errorf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestChatSend_RejectsEmptyMessage(t *testing.T) {
	t.Parallel()

	svc := service.NewChatService(NewMockBackend(), "support")

	_, err := svc.Send(context.Background(), 1, "an", "   ")
	if !errors.Is(err, service.ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}

	msg, err := svc.Send(context.Background(), 1, "an", "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Content != "hello" || msg.Sender != "an" {
		t.Errorf("unexpected message: %+v", msg)
	}
}

func TestChatMessages_ValidatesConversationID(t *testing.T) {
	t.Parallel()

	svc := service.NewChatService(NewMockBackend(), "support")

	_, err := svc.Messages(context.Background(), 0)
	if !errors.Is(err, service.ErrInvalidConversationID) {
		t.Errorf("expected ErrInvalidConversationID, got %v", err)
	}
}
