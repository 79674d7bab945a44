package backendapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"busline/internal/domain"
)

// SeatBookings fetches the committed seat occupancy for a trip and travel
// date-time. The result is treated as immutable for one wizard session.
func (c *Client) SeatBookings(ctx context.Context, tripID int64, dateTime string) ([]domain.SeatBooking, error) {
	path := fmt.Sprintf("/bookings/%d/%s", tripID, url.PathEscape(dateTime))
	var out []domain.SeatBooking
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// BookingsByPhone searches bookings by customer phone number.
func (c *Client) BookingsByPhone(ctx context.Context, phone string) ([]domain.Booking, error) {
	q := url.Values{"phone": {phone}}
	var out []domain.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// BookingsByUsername lists the logged-in user's bookings.
func (c *Client) BookingsByUsername(ctx context.Context, username string) ([]domain.Booking, error) {
	q := url.Values{"username": {username}}
	var out []domain.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// BookingDetail fetches one booking with its payment history.
func (c *Client) BookingDetail(ctx context.Context, id int64) (*domain.Booking, error) {
	var out domain.Booking
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/bookings/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitBooking sends a finished draft. The Idempotency-Key header lets
// the backend deduplicate retried submissions of the same wizard session.
func (c *Client) SubmitBooking(ctx context.Context, req domain.BookingRequest, idempotencyKey string) (*domain.Booking, error) {
	headers := map[string]string{}
	if idempotencyKey != "" {
		headers["Idempotency-Key"] = idempotencyKey
	}
	var out domain.Booking
	if err := c.doWithHeaders(ctx, http.MethodPost, "/bookings", nil, headers, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUser fetches the passenger-prefill profile for an account.
func (c *Client) GetUser(ctx context.Context, username string) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(username), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Cargos fetches the ancillary service catalog.
func (c *Client) Cargos(ctx context.Context) ([]domain.Cargo, error) {
	var out []domain.Cargo
	if err := c.do(ctx, http.MethodGet, "/cargos", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
