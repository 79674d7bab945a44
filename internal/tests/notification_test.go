package tests

import (
	"context"
	"errors"
	"testing"

	"busline/internal/service"
)

func TestUnreadCount_CachesPerUser(t *testing.T) {
	t.Parallel()

	backend := NewMockBackend()
	backend.UnreadCountResult = 3
	cache := NewMockQueryCache()
	svc := service.NewNotificationService(backend, cache)

	count, err := svc.UnreadCount(context.Background(), "an")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 unread, got %d", count)
	}

	// Second read is served from cache.
	backend.UnreadCountResult = 99
	count, err = svc.UnreadCount(context.Background(), "an")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected cached 3 unread, got %d", count)
	}
	if backend.UnreadCountCallCount != 1 {
		t.Errorf("expected 1 backend call, got %d", backend.UnreadCountCallCount)
	}
}

func TestUnreadCount_AnonymousSkipsCache(t *testing.T) {
	t.Parallel()

	backend := NewMockBackend()
	backend.UnreadCountResult = 2
	svc := service.NewNotificationService(backend, NewMockQueryCache())

	for i := 0; i < 2; i++ {
		if _, err := svc.UnreadCount(context.Background(), ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if backend.UnreadCountCallCount != 2 {
		t.Errorf("anonymous reads should always hit the backend, got %d calls", backend.UnreadCountCallCount)
	}
}

func TestMarkRead_InvalidatesUnreadCache(t *testing.T) {
	t.Parallel()

	backend := NewMockBackend()
	cache := NewMockQueryCache()
	svc := service.NewNotificationService(backend, cache)

	cache.SetUnreadCount(context.Background(), "an", 5)

	if err := svc.MarkRead(context.Background(), "an", 12); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.UnreadInvalidations != 1 {
		t.Errorf("expected 1 unread invalidation, got %d", cache.UnreadInvalidations)
	}
}

func TestMarkRead_ValidatesID(t *testing.T) {
	t.Parallel()

	svc := service.NewNotificationService(NewMockBackend(), NewMockQueryCache())

	if err := svc.MarkRead(context.Background(), "an", 0); !errors.Is(err, service.ErrInvalidNotificationID) {
		t.Errorf("expected ErrInvalidNotificationID, got %v", err)
	}
}

func TestAddNotification_RequiresUsername(t *testing.T) {
	t.Parallel()

	svc := service.NewNotificationService(NewMockBackend(), NewMockQueryCache())

	err := svc.Add(context.Background(), "", "title", "message")
	if !errors.Is(err, service.ErrInvalidUsername) {
		t.Errorf("expected ErrInvalidUsername, got %v", err)
	}
}
