package tests

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"busline/internal/backendapi"
	"busline/internal/domain"
)

// ──────────────────────────────────────────────
// MOCK BACKEND API
// ──────────────────────────────────────────────

// MockBackend is a mock implementation of the backend API client
// interfaces consumed by the services.
type MockBackend struct {
	mu sync.RWMutex

	// Canned responses
	SeatBookingsResult []domain.SeatBooking
	CargosResult       []domain.Cargo
	LoyaltyResult      *domain.LoyaltyBalance
	UserResult         *domain.User
	SubmitResult       *domain.Booking
	BookingsResult     []domain.Booking
	DetailResult       *domain.Booking
	ReportResult       *domain.PointsReport
	NotificationsList  []domain.Notification
	UnreadCountResult  int
	ConversationResult *domain.Conversation
	MessagesResult     []domain.ChatMessage
	SentMessage        *domain.ChatMessage

	// Counters for verification
	SeatBookingsCallCount int32
	SubmitCallCount       int32
	ByPhoneCallCount      int32
	ByUsernameCallCount   int32
	UnreadCountCallCount  int32

	// Captured arguments
	LastSubmitRequest  domain.BookingRequest
	LastIdempotencyKey string

	// Error injection
	SeatBookingsError error
	CargosError       error
	LoyaltyError      error
	UserError         error
	SubmitError       error
	BookingsError     error
	ReportError       error
	NotificationError error
	ChatError         error
}

// NewMockBackend creates a new mock backend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

func (m *MockBackend) SeatBookings(ctx context.Context, tripID int64, dateTime string) ([]domain.SeatBooking, error) {
	atomic.AddInt32(&m.SeatBookingsCallCount, 1)
	if m.SeatBookingsError != nil {
		return nil, m.SeatBookingsError
	}
	return m.SeatBookingsResult, nil
}

func (m *MockBackend) Cargos(ctx context.Context) ([]domain.Cargo, error) {
	if m.CargosError != nil {
		return nil, m.CargosError
	}
	return m.CargosResult, nil
}

func (m *MockBackend) LoyaltyPoints(ctx context.Context) (*domain.LoyaltyBalance, error) {
	if m.LoyaltyError != nil {
		return nil, m.LoyaltyError
	}
	return m.LoyaltyResult, nil
}

func (m *MockBackend) GetUser(ctx context.Context, username string) (*domain.User, error) {
	if m.UserError != nil {
		return nil, m.UserError
	}
	return m.UserResult, nil
}

func (m *MockBackend) SubmitBooking(ctx context.Context, req domain.BookingRequest, idempotencyKey string) (*domain.Booking, error) {
	atomic.AddInt32(&m.SubmitCallCount, 1)
	m.mu.Lock()
	m.LastSubmitRequest = req
	m.LastIdempotencyKey = idempotencyKey
	m.mu.Unlock()
	if m.SubmitError != nil {
		return nil, m.SubmitError
	}
	return m.SubmitResult, nil
}

func (m *MockBackend) BookingsByPhone(ctx context.Context, phone string) ([]domain.Booking, error) {
	atomic.AddInt32(&m.ByPhoneCallCount, 1)
	if m.BookingsError != nil {
		return nil, m.BookingsError
	}
	return m.BookingsResult, nil
}

func (m *MockBackend) BookingsByUsername(ctx context.Context, username string) ([]domain.Booking, error) {
	atomic.AddInt32(&m.ByUsernameCallCount, 1)
	if m.BookingsError != nil {
		return nil, m.BookingsError
	}
	return m.BookingsResult, nil
}

func (m *MockBackend) BookingDetail(ctx context.Context, id int64) (*domain.Booking, error) {
	if m.BookingsError != nil {
		return nil, m.BookingsError
	}
	return m.DetailResult, nil
}

func (m *MockBackend) PointsReport(ctx context.Context, rng domain.ReportRange) (*domain.PointsReport, error) {
	if m.ReportError != nil {
		return nil, m.ReportError
	}
	return m.ReportResult, nil
}

func (m *MockBackend) Notifications(ctx context.Context) ([]domain.Notification, error) {
	if m.NotificationError != nil {
		return nil, m.NotificationError
	}
	return m.NotificationsList, nil
}

func (m *MockBackend) RecentNotifications(ctx context.Context) ([]domain.Notification, error) {
	if m.NotificationError != nil {
		return nil, m.NotificationError
	}
	return m.NotificationsList, nil
}

func (m *MockBackend) UnreadNotifications(ctx context.Context) ([]domain.Notification, error) {
	if m.NotificationError != nil {
		return nil, m.NotificationError
	}
	return m.NotificationsList, nil
}

func (m *MockBackend) UnreadNotificationCount(ctx context.Context) (int, error) {
	atomic.AddInt32(&m.UnreadCountCallCount, 1)
	if m.NotificationError != nil {
		return 0, m.NotificationError
	}
	return m.UnreadCountResult, nil
}

func (m *MockBackend) MarkNotificationRead(ctx context.Context, id int64) error {
	return m.NotificationError
}

func (m *MockBackend) AddNotification(ctx context.Context, username, title, message string) error {
	return m.NotificationError
}

func (m *MockBackend) UpdateNotification(ctx context.Context, id int64, message string) error {
	return m.NotificationError
}

func (m *MockBackend) DeleteNotification(ctx context.Context, id int64) error {
	return m.NotificationError
}

func (m *MockBackend) StartConversation(ctx context.Context, customerUsername, staffUsername string) (*domain.Conversation, error) {
	if m.ChatError != nil {
		return nil, m.ChatError
	}
	if m.ConversationResult != nil {
		return m.ConversationResult, nil
	}
	return &domain.Conversation{ID: 1, CustomerUsername: customerUsername, StaffUsername: staffUsername}, nil
}

func (m *MockBackend) ChatMessages(ctx context.Context, conversationID int64) ([]domain.ChatMessage, error) {
	if m.ChatError != nil {
		return nil, m.ChatError
	}
	return m.MessagesResult, nil
}

func (m *MockBackend) SendMessage(ctx context.Context, conversationID int64, req backendapi.SendMessageRequest) (*domain.ChatMessage, error) {
	if m.ChatError != nil {
		return nil, m.ChatError
	}
	if m.SentMessage != nil {
		return m.SentMessage, nil
	}
	return &domain.ChatMessage{ID: 1, ConversationID: conversationID, Sender: req.Sender, Content: req.Content}, nil
}

// ──────────────────────────────────────────────
// MOCK QUERY CACHE
// ──────────────────────────────────────────────

// MockQueryCache is an in-memory mock of the query cache. It never
// expires entries; tests control its contents directly.
type MockQueryCache struct {
	mu sync.RWMutex

	seatBookings map[string][]domain.SeatBooking
	users        map[string]*domain.User
	loyalty      map[string]*domain.LoyaltyBalance
	cargos       []domain.Cargo
	cargosSet    bool
	unread       map[string]int

	// Counters for verification
	SeatBookingsInvalidations int32
	LoyaltyInvalidations      int32
	UnreadInvalidations       int32

	// Error injection
	GetError error
}

// NewMockQueryCache creates an empty mock cache.
func NewMockQueryCache() *MockQueryCache {
	return &MockQueryCache{
		seatBookings: make(map[string][]domain.SeatBooking),
		users:        make(map[string]*domain.User),
		loyalty:      make(map[string]*domain.LoyaltyBalance),
		unread:       make(map[string]int),
	}
}

func seatKey(tripID int64, dateTime string) string {
	return fmt.Sprintf("%d#%s", tripID, dateTime)
}

func (m *MockQueryCache) GetSeatBookings(ctx context.Context, tripID int64, dateTime string) ([]domain.SeatBooking, bool, error) {
	if m.GetError != nil {
		return nil, false, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	seats, ok := m.seatBookings[seatKey(tripID, dateTime)]
	return seats, ok, nil
}

func (m *MockQueryCache) SetSeatBookings(ctx context.Context, tripID int64, dateTime string, seats []domain.SeatBooking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seatBookings[seatKey(tripID, dateTime)] = seats
	return nil
}

func (m *MockQueryCache) InvalidateSeatBookings(ctx context.Context, tripID int64, dateTime string) error {
	atomic.AddInt32(&m.SeatBookingsInvalidations, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.seatBookings, seatKey(tripID, dateTime))
	return nil
}

func (m *MockQueryCache) GetUser(ctx context.Context, username string) (*domain.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.users[username], nil
}

func (m *MockQueryCache) SetUser(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.Username] = user
	return nil
}

func (m *MockQueryCache) GetLoyalty(ctx context.Context, username string) (*domain.LoyaltyBalance, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loyalty[username], nil
}

func (m *MockQueryCache) SetLoyalty(ctx context.Context, username string, balance *domain.LoyaltyBalance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loyalty[username] = balance
	return nil
}

func (m *MockQueryCache) InvalidateLoyalty(ctx context.Context, username string) error {
	atomic.AddInt32(&m.LoyaltyInvalidations, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.loyalty, username)
	return nil
}

func (m *MockQueryCache) GetCargos(ctx context.Context) ([]domain.Cargo, bool, error) {
	if m.GetError != nil {
		return nil, false, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cargos, m.cargosSet, nil
}

func (m *MockQueryCache) SetCargos(ctx context.Context, cargos []domain.Cargo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cargos = cargos
	m.cargosSet = true
	return nil
}

func (m *MockQueryCache) GetUnreadCount(ctx context.Context, username string) (int, bool, error) {
	if m.GetError != nil {
		return 0, false, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	count, ok := m.unread[username]
	return count, ok, nil
}

func (m *MockQueryCache) SetUnreadCount(ctx context.Context, username string, count int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unread[username] = count
	return nil
}

func (m *MockQueryCache) InvalidateUnread(ctx context.Context, username string) error {
	atomic.AddInt32(&m.UnreadInvalidations, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.unread, username)
	return nil
}
