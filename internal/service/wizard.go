package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"busline/internal/backendapi"
	"busline/internal/booking"
	"busline/internal/cache"
	"busline/internal/domain"
	"busline/internal/repository"
	"busline/internal/seatmap"
)

// WizardBackend is the slice of the backend API the wizard needs.
type WizardBackend interface {
	SeatBookings(ctx context.Context, tripID int64, dateTime string) ([]domain.SeatBooking, error)
	Cargos(ctx context.Context) ([]domain.Cargo, error)
	LoyaltyPoints(ctx context.Context) (*domain.LoyaltyBalance, error)
	GetUser(ctx context.Context, username string) (*domain.User, error)
	SubmitBooking(ctx context.Context, req domain.BookingRequest, idempotencyKey string) (*domain.Booking, error)
}

var _ WizardBackend = (*backendapi.Client)(nil)

// WizardService drives the booking wizard: one draft per flow, seat
// toggling, price preview, loyalty redemption and final submission.
type WizardService struct {
	mu       sync.Mutex
	backend  WizardBackend
	cache    cache.QueryCache
	drafts   repository.DraftRepository
	maxSeats int
}

// NewWizardService creates a new WizardService.
func NewWizardService(backend WizardBackend, queryCache cache.QueryCache, drafts repository.DraftRepository, maxSeats int) *WizardService {
	return &WizardService{
		backend:  backend,
		cache:    queryCache,
		drafts:   drafts,
		maxSeats: maxSeats,
	}
}

// StartWizardRequest contains the parameters for starting a booking flow.
// The trip payload comes from the client's browse state; the backend owns
// it and the client never mutates it.
type StartWizardRequest struct {
	Trip            domain.Trip        `json:"trip"`
	BookingDateTime string             `json:"bookingDateTime"`
	BookingType     domain.BookingType `json:"bookingType"`
	SessionID       string             `json:"-"`
}

// Start fetches the committed occupancy and the cargo catalog, then opens
// a draft in the seat-selection step.
func (s *WizardService) Start(ctx context.Context, req StartWizardRequest) (*DraftView, error) {
	if req.Trip.ID <= 0 {
		return nil, ErrInvalidTripID
	}
	if _, err := time.Parse(domain.DateTimeLayout, req.BookingDateTime); err != nil {
		return nil, ErrInvalidDateTime
	}
	if req.BookingType == "" {
		req.BookingType = domain.BookingTypeOneway
	}

	booked, err := s.seatOccupancy(ctx, req.Trip.ID, req.BookingDateTime)
	if err != nil {
		return nil, fmt.Errorf("fetch seat occupancy: %w", err)
	}

	catalog := s.cargoCatalog(ctx)

	wizard := booking.NewWizard(req.Trip, req.BookingDateTime, req.BookingType, booked, s.maxSeats, catalog)
	draft := &repository.Draft{
		ID:        uuid.New().String(),
		SessionID: req.SessionID,
		Wizard:    wizard,
		CreatedAt: time.Now(),
	}
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return s.view(draft), nil
}

// seatOccupancy reads the booked-seat set through the query cache.
func (s *WizardService) seatOccupancy(ctx context.Context, tripID int64, dateTime string) ([]string, error) {
	var seats []domain.SeatBooking

	cached, ok, err := s.cache.GetSeatBookings(ctx, tripID, dateTime)
	if err != nil {
		log.Printf("seat occupancy cache read failed: %v", err)
	}
	if ok {
		seats = cached
	} else {
		seats, err = s.backend.SeatBookings(ctx, tripID, dateTime)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetSeatBookings(ctx, tripID, dateTime, seats); err != nil {
			log.Printf("seat occupancy cache write failed: %v", err)
		}
	}

	booked := make([]string, 0, len(seats))
	for _, sb := range seats {
		booked = append(booked, sb.SeatNumber)
	}
	return booked, nil
}

// Catalog returns the ancillary-service catalog through the cache.
func (s *WizardService) Catalog(ctx context.Context) ([]domain.Cargo, error) {
	cargos, ok, err := s.cache.GetCargos(ctx)
	if err != nil {
		log.Printf("cargo catalog cache read failed: %v", err)
	}
	if ok {
		return cargos, nil
	}
	cargos, err = s.backend.Cargos(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetCargos(ctx, cargos); err != nil {
		log.Printf("cargo catalog cache write failed: %v", err)
	}
	return cargos, nil
}

// cargoCatalog degrades to an empty catalog on failure; the wizard still
// works without add-ons.
func (s *WizardService) cargoCatalog(ctx context.Context) []domain.Cargo {
	cargos, err := s.Catalog(ctx)
	if err != nil {
		log.Printf("cargo catalog fetch failed: %v", err)
		return nil
	}
	return cargos
}

// Get returns the current state of a draft.
func (s *WizardService) Get(ctx context.Context, draftID string) (*DraftView, error) {
	draft, err := s.draft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(draft), nil
}

// ToggleSeat selects or deselects one seat.
func (s *WizardService) ToggleSeat(ctx context.Context, draftID, seatID string, selected bool) (*DraftView, error) {
	draft, err := s.draft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	draft.Wizard.ToggleSeat(seatID, selected)
	return s.view(draft), nil
}

// Advance moves a draft from seat selection to the passenger/payment step.
func (s *WizardService) Advance(ctx context.Context, draftID string) (*DraftView, error) {
	draft, err := s.draft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := draft.Wizard.Next(); err != nil {
		return nil, err
	}
	return s.view(draft), nil
}

// Back returns a draft from the passenger/payment step to seat selection.
func (s *WizardService) Back(ctx context.Context, draftID string) (*DraftView, error) {
	draft, err := s.draft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	draft.Wizard.Back()
	return s.view(draft), nil
}

// UpdateDetailsRequest carries the passenger/payment form fields.
type UpdateDetailsRequest struct {
	Passenger     booking.Passenger    `json:"passenger"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	PointsInput   string               `json:"pointsInput"`
}

// UpdateDetails stores the passenger/payment form state on the draft. No
// validation happens here; format checks run at submission.
func (s *WizardService) UpdateDetails(ctx context.Context, draftID string, req UpdateDetailsRequest) (*DraftView, error) {
	draft, err := s.draft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	draft.Wizard.SetPassenger(req.Passenger)
	draft.Wizard.SetPaymentMethod(req.PaymentMethod)
	draft.Wizard.SetPointsInput(req.PointsInput)
	return s.view(draft), nil
}

// SetCargoQuantity records a requested ancillary-service quantity.
func (s *WizardService) SetCargoQuantity(ctx context.Context, draftID string, cargoID int64, qty int) (*DraftView, error) {
	draft, err := s.draft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := draft.Wizard.SetCargoQuantity(cargoID, qty); err != nil {
		return nil, err
	}
	return s.view(draft), nil
}

// ApplyPoints applies a loyalty redemption against the draft's payable
// total. The balance is fetched (through the cache) on first use.
func (s *WizardService) ApplyPoints(ctx context.Context, draftID, username, points string) (*DraftView, error) {
	if username == "" {
		return nil, ErrNotLoggedIn
	}
	draft, err := s.draft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	balance, err := s.loyaltyBalance(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("fetch loyalty balance: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	draft.Wizard.SetBalance(balance.LoyaltyPoints)
	if err := draft.Wizard.ApplyPoints(points); err != nil {
		return nil, err
	}
	return s.view(draft), nil
}

// CancelPoints reverts an applied redemption.
func (s *WizardService) CancelPoints(ctx context.Context, draftID string) (*DraftView, error) {
	draft, err := s.draft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	draft.Wizard.CancelPoints()
	return s.view(draft), nil
}

func (s *WizardService) loyaltyBalance(ctx context.Context, username string) (*domain.LoyaltyBalance, error) {
	cached, err := s.cache.GetLoyalty(ctx, username)
	if err != nil {
		log.Printf("loyalty cache read failed: %v", err)
	}
	if cached != nil {
		return cached, nil
	}
	balance, err := s.backend.LoyaltyPoints(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetLoyalty(ctx, username, balance); err != nil {
		log.Printf("loyalty cache write failed: %v", err)
	}
	return balance, nil
}

// Prefill returns the logged-in user's profile for form prefilling.
func (s *WizardService) Prefill(ctx context.Context, username string) (*domain.User, error) {
	if username == "" {
		return nil, ErrNotLoggedIn
	}
	cached, err := s.cache.GetUser(ctx, username)
	if err != nil {
		log.Printf("user cache read failed: %v", err)
	}
	if cached != nil {
		return cached, nil
	}
	user, err := s.backend.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetUser(ctx, user); err != nil {
		log.Printf("user cache write failed: %v", err)
	}
	return user, nil
}

// Submit validates the draft, sends it in one request and finalizes the
// wizard. Business rejections from the backend (a seat taken in the
// staleness window, a price change) return the wizard to seat selection
// so the user can retry against fresh occupancy.
func (s *WizardService) Submit(ctx context.Context, draftID, username string) (*domain.Booking, error) {
	draft, err := s.draft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	req, err := draft.Wizard.BuildRequest()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	result, err := s.backend.SubmitBooking(ctx, req, draft.ID)
	if err != nil {
		if s.isBusinessRejection(err) {
			s.mu.Lock()
			draft.Wizard.Back()
			s.mu.Unlock()
			// The occupancy the wizard saw is stale; make the next
			// lookup hit the backend.
			if cerr := s.cache.InvalidateSeatBookings(ctx, req.TripID, req.BookingDateTime); cerr != nil {
				log.Printf("seat occupancy invalidation failed: %v", cerr)
			}
		}
		return nil, err
	}

	s.mu.Lock()
	draft.Wizard.MarkSubmitted()
	s.mu.Unlock()

	if err := s.cache.InvalidateSeatBookings(ctx, req.TripID, req.BookingDateTime); err != nil {
		log.Printf("seat occupancy invalidation failed: %v", err)
	}
	if username != "" && req.PointsRedeemed > 0 {
		if err := s.cache.InvalidateLoyalty(ctx, username); err != nil {
			log.Printf("loyalty invalidation failed: %v", err)
		}
	}
	if err := s.drafts.Delete(ctx, draft.ID); err != nil {
		log.Printf("draft cleanup failed: %v", err)
	}
	return result, nil
}

// isBusinessRejection distinguishes business-rule rejections (retry from
// the seat step) from transport failures (surface as-is).
func (s *WizardService) isBusinessRejection(err error) bool {
	if errors.Is(err, backendapi.ErrSeatConflict) {
		return true
	}
	var apiErr *backendapi.APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500
}

// Discard drops an abandoned draft.
func (s *WizardService) Discard(ctx context.Context, draftID string) error {
	if draftID == "" {
		return ErrInvalidDraftID
	}
	return s.drafts.Delete(ctx, draftID)
}

func (s *WizardService) draft(ctx context.Context, draftID string) (*repository.Draft, error) {
	if draftID == "" {
		return nil, ErrInvalidDraftID
	}
	return s.drafts.GetByID(ctx, draftID)
}

// SeatView is one seat of the rendered map with its tri-state status.
type SeatView struct {
	ID     string `json:"id"`
	Deck   string `json:"deck"`
	Wide   bool   `json:"wide,omitempty"`
	Status string `json:"status"`
}

// Seat statuses.
const (
	SeatStatusBooked    = "BOOKED"
	SeatStatusSelected  = "SELECTED"
	SeatStatusAvailable = "AVAILABLE"
)

// DraftView is the render model of a wizard draft.
type DraftView struct {
	ID              string               `json:"id"`
	Step            booking.Step         `json:"step"`
	Trip            domain.Trip          `json:"trip"`
	BookingDateTime string               `json:"bookingDateTime"`
	Seats           []SeatView           `json:"seats"`
	SelectedSeats   []string             `json:"selectedSeats"`
	MaxSeats        int                  `json:"maxSeats"`
	UnitPrice       float64              `json:"unitPrice"`
	SeatSubtotal    float64              `json:"seatSubtotal"`
	CargoSubtotal   float64              `json:"cargoSubtotal"`
	Payable         float64              `json:"payable"`
	Total           float64              `json:"total"`
	PointsApplied   bool                 `json:"pointsApplied"`
	PointsRedeemed  float64              `json:"pointsRedeemed"`
	Passenger       booking.Passenger    `json:"passenger"`
	PaymentMethod   domain.PaymentMethod `json:"paymentMethod"`
	CargoQuantities map[int64]int        `json:"cargoQuantities"`
}

func (s *WizardService) view(draft *repository.Draft) *DraftView {
	w := draft.Wizard
	sel := w.Selection()
	trip := w.Trip()

	layout := seatmap.Layout(trip.Coach.CoachType)
	seats := make([]SeatView, 0, len(layout[seatmap.DeckDownStair])+len(layout[seatmap.DeckUpStair]))
	for _, deck := range []seatmap.Deck{seatmap.DeckDownStair, seatmap.DeckUpStair} {
		for _, seat := range layout[deck] {
			status := SeatStatusAvailable
			switch {
			case sel.IsBooked(seat.ID):
				status = SeatStatusBooked
			case sel.IsSelected(seat.ID):
				status = SeatStatusSelected
			}
			seats = append(seats, SeatView{
				ID:     seat.ID,
				Deck:   string(seat.Deck),
				Wide:   seat.Wide,
				Status: status,
			})
		}
	}

	return &DraftView{
		ID:              draft.ID,
		Step:            w.Step(),
		Trip:            trip,
		BookingDateTime: w.BookingDateTime(),
		Seats:           seats,
		SelectedSeats:   sel.Seats(),
		MaxSeats:        s.maxSeats,
		UnitPrice:       sel.UnitPrice(),
		SeatSubtotal:    w.SeatSubtotal(),
		CargoSubtotal:   w.CargoSubtotal(),
		Payable:         w.Payable(),
		Total:           w.Total(),
		PointsApplied:   w.PointsApplied(),
		PointsRedeemed:  w.PointsRedeemed(),
		Passenger:       w.Passenger(),
		PaymentMethod:   w.PaymentMethod(),
		CargoQuantities: w.CargoQuantities(),
	}
}
