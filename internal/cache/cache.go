// Package cache is the per-concern query cache in front of the backend
// API. Each read concern has its own key identity and TTL; writes that
// change backend state invalidate the affected keys. A cache failure is
// never fatal, callers fall through to the backend.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"busline/internal/domain"
)

// Cache TTL constants. Occupancy and loyalty change behind the client's
// back, so they stay short; the cargo catalog is near-static.
const (
	SeatBookingsTTL = 30 * time.Second
	UserTTL         = 5 * time.Minute
	LoyaltyTTL      = 60 * time.Second
	CargosTTL       = 10 * time.Minute
	UnreadCountTTL  = 30 * time.Second
)

// Key prefixes
const (
	seatBookingsPrefix = "cache:seatbookings:"
	userPrefix         = "cache:user:"
	loyaltyPrefix      = "cache:loyalty:"
	cargosKey          = "cache:cargos"
	unreadPrefix       = "cache:unread:"
)

// QueryCache is the interface services consume.
type QueryCache interface {
	GetSeatBookings(ctx context.Context, tripID int64, dateTime string) ([]domain.SeatBooking, bool, error)
	SetSeatBookings(ctx context.Context, tripID int64, dateTime string, seats []domain.SeatBooking) error
	InvalidateSeatBookings(ctx context.Context, tripID int64, dateTime string) error

	GetUser(ctx context.Context, username string) (*domain.User, error)
	SetUser(ctx context.Context, user *domain.User) error

	GetLoyalty(ctx context.Context, username string) (*domain.LoyaltyBalance, error)
	SetLoyalty(ctx context.Context, username string, balance *domain.LoyaltyBalance) error
	InvalidateLoyalty(ctx context.Context, username string) error

	GetCargos(ctx context.Context) ([]domain.Cargo, bool, error)
	SetCargos(ctx context.Context, cargos []domain.Cargo) error

	GetUnreadCount(ctx context.Context, username string) (int, bool, error)
	SetUnreadCount(ctx context.Context, username string, count int) error
	InvalidateUnread(ctx context.Context, username string) error
}

// Store implements QueryCache on Redis.
type Store struct {
	client *redis.Client
}

var _ QueryCache = (*Store)(nil)

// NewStore creates a new Store.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func seatBookingsKey(tripID int64, dateTime string) string {
	return fmt.Sprintf("%s%d:%s", seatBookingsPrefix, tripID, dateTime)
}

// GetSeatBookings retrieves cached occupancy. ok is false on a miss.
func (s *Store) GetSeatBookings(ctx context.Context, tripID int64, dateTime string) ([]domain.SeatBooking, bool, error) {
	data, err := s.client.Get(ctx, seatBookingsKey(tripID, dateTime)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var seats []domain.SeatBooking
	if err := json.Unmarshal(data, &seats); err != nil {
		return nil, false, err
	}
	return seats, true, nil
}

// SetSeatBookings stores occupancy for a trip/date.
func (s *Store) SetSeatBookings(ctx context.Context, tripID int64, dateTime string, seats []domain.SeatBooking) error {
	data, err := json.Marshal(seats)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, seatBookingsKey(tripID, dateTime), data, SeatBookingsTTL).Err()
}

// InvalidateSeatBookings drops cached occupancy after a submission.
func (s *Store) InvalidateSeatBookings(ctx context.Context, tripID int64, dateTime string) error {
	return s.client.Del(ctx, seatBookingsKey(tripID, dateTime)).Err()
}

// GetUser retrieves a cached user profile. nil means miss.
func (s *Store) GetUser(ctx context.Context, username string) (*domain.User, error) {
	data, err := s.client.Get(ctx, userPrefix+username).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SetUser stores a user profile.
func (s *Store) SetUser(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, userPrefix+user.Username, data, UserTTL).Err()
}

// GetLoyalty retrieves a cached point balance. nil means miss.
func (s *Store) GetLoyalty(ctx context.Context, username string) (*domain.LoyaltyBalance, error) {
	data, err := s.client.Get(ctx, loyaltyPrefix+username).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var balance domain.LoyaltyBalance
	if err := json.Unmarshal(data, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// SetLoyalty stores a point balance.
func (s *Store) SetLoyalty(ctx context.Context, username string, balance *domain.LoyaltyBalance) error {
	data, err := json.Marshal(balance)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, loyaltyPrefix+username, data, LoyaltyTTL).Err()
}

// InvalidateLoyalty drops a cached balance, e.g. after redeeming points.
func (s *Store) InvalidateLoyalty(ctx context.Context, username string) error {
	return s.client.Del(ctx, loyaltyPrefix+username).Err()
}

// GetCargos retrieves the cached ancillary-service catalog.
func (s *Store) GetCargos(ctx context.Context) ([]domain.Cargo, bool, error) {
	data, err := s.client.Get(ctx, cargosKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var cargos []domain.Cargo
	if err := json.Unmarshal(data, &cargos); err != nil {
		return nil, false, err
	}
	return cargos, true, nil
}

// SetCargos stores the ancillary-service catalog.
func (s *Store) SetCargos(ctx context.Context, cargos []domain.Cargo) error {
	data, err := json.Marshal(cargos)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cargosKey, data, CargosTTL).Err()
}

// GetUnreadCount retrieves the cached unread notification count.
func (s *Store) GetUnreadCount(ctx context.Context, username string) (int, bool, error) {
	count, err := s.client.Get(ctx, unreadPrefix+username).Int()
	if err != nil {
		if err == redis.Nil {
			return 0, false, nil
		}
		return 0, false, err
	}
	return count, true, nil
}

// SetUnreadCount stores the unread notification count.
func (s *Store) SetUnreadCount(ctx context.Context, username string, count int) error {
	return s.client.Set(ctx, unreadPrefix+username, count, UnreadCountTTL).Err()
}

// InvalidateUnread drops the unread count after a read-marking write.
func (s *Store) InvalidateUnread(ctx context.Context, username string) error {
	return s.client.Del(ctx, unreadPrefix+username).Err()
}
