package service

import (
	"context"
	"log"
	"time"

	"busline/internal/backendapi"
	"busline/internal/cache"
	"busline/internal/domain"
)

// NotificationBackend is the slice of the backend API notifications need.
type NotificationBackend interface {
	Notifications(ctx context.Context) ([]domain.Notification, error)
	RecentNotifications(ctx context.Context) ([]domain.Notification, error)
	UnreadNotifications(ctx context.Context) ([]domain.Notification, error)
	UnreadNotificationCount(ctx context.Context) (int, error)
	MarkNotificationRead(ctx context.Context, id int64) error
	AddNotification(ctx context.Context, username, title, message string) error
	UpdateNotification(ctx context.Context, id int64, message string) error
	DeleteNotification(ctx context.Context, id int64) error
}

var _ NotificationBackend = (*backendapi.Client)(nil)

// NotificationService proxies notification reads and writes. Writes update
// view state optimistically: the unread cache is invalidated, not rolled
// back, on failure.
type NotificationService struct {
	backend NotificationBackend
	cache   cache.QueryCache
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(backend NotificationBackend, queryCache cache.QueryCache) *NotificationService {
	return &NotificationService{backend: backend, cache: queryCache}
}

// List returns all notifications of the logged-in user.
func (s *NotificationService) List(ctx context.Context) ([]domain.Notification, error) {
	return s.backend.Notifications(ctx)
}

// Recent returns the notifications of the last seven days.
func (s *NotificationService) Recent(ctx context.Context) ([]domain.Notification, error) {
	return s.backend.RecentNotifications(ctx)
}

// Unread returns the unread notifications.
func (s *NotificationService) Unread(ctx context.Context) ([]domain.Notification, error) {
	return s.backend.UnreadNotifications(ctx)
}

// UnreadCount returns the unread badge count through the query cache.
func (s *NotificationService) UnreadCount(ctx context.Context, username string) (int, error) {
	if username != "" {
		count, ok, err := s.cache.GetUnreadCount(ctx, username)
		if err != nil {
			log.Printf("unread count cache read failed: %v", err)
		}
		if ok {
			return count, nil
		}
	}
	count, err := s.backend.UnreadNotificationCount(ctx)
	if err != nil {
		return 0, err
	}
	if username != "" {
		if err := s.cache.SetUnreadCount(ctx, username, count); err != nil {
			log.Printf("unread count cache write failed: %v", err)
		}
	}
	return count, nil
}

// MarkRead marks a notification as read and drops the cached badge count.
func (s *NotificationService) MarkRead(ctx context.Context, username string, id int64) error {
	if id <= 0 {
		return ErrInvalidNotificationID
	}
	if err := s.backend.MarkNotificationRead(ctx, id); err != nil {
		return err
	}
	if username != "" {
		if err := s.cache.InvalidateUnread(ctx, username); err != nil {
			log.Printf("unread invalidation failed: %v", err)
		}
	}
	return nil
}

// Add creates a notification for a user.
func (s *NotificationService) Add(ctx context.Context, username, title, message string) error {
	if username == "" {
		return ErrInvalidUsername
	}
	return s.backend.AddNotification(ctx, username, title, message)
}

// Update replaces a notification's message.
func (s *NotificationService) Update(ctx context.Context, id int64, message string) error {
	if id <= 0 {
		return ErrInvalidNotificationID
	}
	return s.backend.UpdateNotification(ctx, id, message)
}

// Delete removes a notification and drops the cached badge count.
func (s *NotificationService) Delete(ctx context.Context, username string, id int64) error {
	if id <= 0 {
		return ErrInvalidNotificationID
	}
	if err := s.backend.DeleteNotification(ctx, id); err != nil {
		return err
	}
	if username != "" {
		if err := s.cache.InvalidateUnread(ctx, username); err != nil {
			log.Printf("unread invalidation failed: %v", err)
		}
	}
	return nil
}

// Poller keeps the unread-count cache warm on a fixed interval so the
// badge endpoint stays cheap. It stops when its context is canceled.
type Poller struct {
	service  *NotificationService
	interval time.Duration
	token    string
	username string
}

// NewPoller creates a poller for one logged-in user.
func NewPoller(service *NotificationService, interval time.Duration, token, username string) *Poller {
	return &Poller{
		service:  service,
		interval: interval,
		token:    token,
		username: username,
	}
}

// Start runs the polling loop until ctx is canceled. Call in a goroutine.
func (p *Poller) Start(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	log.Printf("notification poller started: user=%s interval=%s", p.username, p.interval)

	for {
		select {
		case <-ctx.Done():
			log.Printf("notification poller stopped: user=%s", p.username)
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	callCtx := backendapi.WithToken(ctx, p.token)
	count, err := p.service.backend.UnreadNotificationCount(callCtx)
	if err != nil {
		log.Printf("notification poll failed: %v", err)
		return
	}
	if err := p.service.cache.SetUnreadCount(ctx, p.username, count); err != nil {
		log.Printf("unread count cache write failed: %v", err)
	}
}
