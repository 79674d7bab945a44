package backendapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"busline/internal/domain"
)

func TestClient_AttachesBearerToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	ctx := WithToken(context.Background(), "token-123")

	if _, err := c.Cargos(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer token-123" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	if _, err := c.Cargos(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestClient_SeatBookingsPath(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`[{"id":1,"seatNumber":"A3"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	seats, err := c.SeatBookings(context.Background(), 7, "2026-09-15 08:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/bookings/7/2026-09-15%2008:00" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if len(seats) != 1 || seats[0].SeatNumber != "A3" {
		t.Errorf("unexpected seats: %+v", seats)
	}
}

func TestClient_SubmitSendsIdempotencyKey(t *testing.T) {
	t.Parallel()

	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Idempotency-Key")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":42}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	result, err := c.SubmitBooking(context.Background(), domain.BookingRequest{TripID: 7}, "draft-abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "draft-abc" {
		t.Errorf("expected idempotency key, got %q", gotKey)
	}
	if result.ID != 42 {
		t.Errorf("expected booking 42, got %d", result.ID)
	}
}

func TestClient_ErrorMapping(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":"expired"}`, ErrUnauthorized},
		{"not found", http.StatusNotFound, ``, ErrNotFound},
		{"seat conflict", http.StatusConflict, `{"error":"seat A1 taken"}`, ErrSeatConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := New(srv.URL, time.Second)
			_, err := c.BookingDetail(context.Background(), 1)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestClient_GenericAPIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"price changed"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.SubmitBooking(context.Background(), domain.BookingRequest{}, "")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnprocessableEntity || apiErr.Message != "price changed" {
		t.Errorf("unexpected APIError: %+v", apiErr)
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1", 200*time.Millisecond)

	_, err := c.Cargos(context.Background())
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Errorf("expected ErrBackendUnavailable, got %v", err)
	}
}
