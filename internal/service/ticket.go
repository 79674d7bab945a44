package service

import (
	"context"
	"sort"
	"time"

	"busline/internal/backendapi"
	"busline/internal/booking"
	"busline/internal/domain"
)

// TicketBackend is the slice of the backend API ticket lookups need.
type TicketBackend interface {
	BookingsByPhone(ctx context.Context, phone string) ([]domain.Booking, error)
	BookingsByUsername(ctx context.Context, username string) ([]domain.Booking, error)
	BookingDetail(ctx context.Context, id int64) (*domain.Booking, error)
}

var _ TicketBackend = (*backendapi.Client)(nil)

// TicketService serves booking search and history views.
type TicketService struct {
	backend TicketBackend
	now     func() time.Time
}

// NewTicketService creates a new TicketService.
func NewTicketService(backend TicketBackend) *TicketService {
	return NewTicketServiceWithClock(backend, time.Now)
}

// NewTicketServiceWithClock creates a TicketService with an injected
// clock. The future-departure filter compares against it; tests pin it.
func NewTicketServiceWithClock(backend TicketBackend, now func() time.Time) *TicketService {
	return &TicketService{backend: backend, now: now}
}

// SearchByPhone looks up bookings by customer phone number. The phone is
// format-checked first; an invalid phone never reaches the backend. The
// public search shows only trips departing in the future, newest first.
func (s *TicketService) SearchByPhone(ctx context.Context, phone string) ([]domain.Booking, error) {
	if !booking.ValidPhone(phone) {
		return nil, ErrInvalidPhoneNumber
	}
	bookings, err := s.backend.BookingsByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	return sortByDeparture(filterFuture(bookings, s.now()), false), nil
}

// MyTickets lists the logged-in user's bookings, past included, earliest
// departure first.
func (s *TicketService) MyTickets(ctx context.Context, username string) ([]domain.Booking, error) {
	if username == "" {
		return nil, ErrNotLoggedIn
	}
	bookings, err := s.backend.BookingsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return sortByDeparture(bookings, true), nil
}

// Detail returns one booking with its payment history ordered
// most-recent-first.
func (s *TicketService) Detail(ctx context.Context, id int64) (*domain.Booking, error) {
	if id <= 0 {
		return nil, ErrInvalidBookingID
	}
	detail, err := s.backend.BookingDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	reverseHistories(detail.PaymentHistories)
	return detail, nil
}

// filterFuture keeps bookings whose departure is strictly in the future.
// Unparsable departure timestamps are dropped rather than guessed at.
func filterFuture(bookings []domain.Booking, now time.Time) []domain.Booking {
	out := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		dep, err := time.Parse(domain.DateTimeLayout, b.Trip.DepartureDateTime)
		if err != nil {
			continue
		}
		if dep.After(now) {
			out = append(out, b)
		}
	}
	return out
}

func sortByDeparture(bookings []domain.Booking, ascending bool) []domain.Booking {
	sort.SliceStable(bookings, func(i, j int) bool {
		if ascending {
			return bookings[i].Trip.DepartureDateTime < bookings[j].Trip.DepartureDateTime
		}
		return bookings[i].Trip.DepartureDateTime > bookings[j].Trip.DepartureDateTime
	})
	return bookings
}

func reverseHistories(histories []domain.PaymentHistory) {
	for i, j := 0, len(histories)-1; i < j; i, j = i+1, j-1 {
		histories[i], histories[j] = histories[j], histories[i]
	}
}
