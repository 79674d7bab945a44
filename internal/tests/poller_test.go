package tests

import (
	"context"
	"testing"
	"time"

	"busline/internal/service"
)

func TestPoller_RefreshesUnreadCount(t *testing.T) {
	t.Parallel()

	backend := NewMockBackend()
	backend.UnreadCountResult = 4
	cache := NewMockQueryCache()
	svc := service.NewNotificationService(backend, cache)

	poller := service.NewPoller(svc, 10*time.Millisecond, "token", "an")
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Start(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for {
		count, ok, err := cache.GetUnreadCount(context.Background(), "an")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			if count != 4 {
				t.Errorf("expected cached count 4, got %d", count)
			}
			break
		}
		select {
		case <-deadline:
			t.Fatal("poller never refreshed the unread cache")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop on context cancel")
	}
}
