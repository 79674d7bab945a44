package backendapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"busline/internal/domain"
)

// Notifications lists all notifications of the logged-in user.
func (c *Client) Notifications(ctx context.Context) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := c.do(ctx, http.MethodGet, "/notifications", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecentNotifications lists notifications from the last seven days.
func (c *Client) RecentNotifications(ctx context.Context) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := c.do(ctx, http.MethodGet, "/notifications/recent", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UnreadNotifications lists unread notifications.
func (c *Client) UnreadNotifications(ctx context.Context) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := c.do(ctx, http.MethodGet, "/notifications/unread", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UnreadNotificationCount returns the unread badge count.
func (c *Client) UnreadNotificationCount(ctx context.Context) (int, error) {
	var out int
	if err := c.do(ctx, http.MethodGet, "/notifications/unread/count", nil, nil, &out); err != nil {
		return 0, err
	}
	return out, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/notifications/%d/mark-as-read", id), nil, nil, nil)
}

// AddNotification creates a notification for a user.
func (c *Client) AddNotification(ctx context.Context, username, title, message string) error {
	q := url.Values{"username": {username}, "title": {title}, "message": {message}}
	return c.do(ctx, http.MethodPost, "/notifications", q, nil, nil)
}

// UpdateNotification replaces a notification's message.
func (c *Client) UpdateNotification(ctx context.Context, id int64, message string) error {
	q := url.Values{"message": {message}}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/notifications/%d", id), q, nil, nil)
}

// DeleteNotification removes a notification.
func (c *Client) DeleteNotification(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/notifications/%d", id), nil, nil, nil)
}
