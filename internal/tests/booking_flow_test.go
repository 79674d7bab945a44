package tests

import (
	"context"
	"errors"
	"testing"

	"busline/internal/backendapi"
	"busline/internal/booking"
	"busline/internal/domain"
	"busline/internal/repository/memory"
	"busline/internal/service"
)

func testTrip() domain.Trip {
	return domain.Trip{
		ID:                7,
		DepartureDateTime: "2026-09-15 08:00",
		Coach:             domain.Coach{ID: 1, Name: "Coach 01", CoachType: domain.CoachTypeStandard},
		Price:             200000,
	}
}

func setupWizard(t *testing.T, backend *MockBackend) (*service.WizardService, *MockQueryCache) {
	t.Helper()
	cache := NewMockQueryCache()
	drafts := memory.NewDraftRepository()
	return service.NewWizardService(backend, cache, drafts, 5), cache
}

func startDraft(t *testing.T, svc *service.WizardService) *service.DraftView {
	t.Helper()
	view, err := svc.Start(context.Background(), service.StartWizardRequest{
		Trip:            testTrip(),
		BookingDateTime: "2026-09-15 08:00",
	})
	if err != nil {
		t.Fatalf("failed to start wizard: %v", err)
	}
	return view
}

func TestBookingFlow_StartFetchesOccupancy(t *testing.T) {
	t.Parallel()

	backend := NewMockBackend()
	backend.SeatBookingsResult = []domain.SeatBooking{{ID: 1, SeatNumber: "A3"}}
	svc, _ := setupWizard(t, backend)

	view := startDraft(t, svc)

	if view.Step != booking.StepSeatSelection {
		t.Errorf("expected step %s, got %s", booking.StepSeatSelection, view.Step)
	}
	if backend.SeatBookingsCallCount != 1 {
		t.Errorf("expected 1 occupancy fetch, got %d", backend.SeatBookingsCallCount)
	}

	for _, seat := range view.Seats {
		if seat.ID == "A3" && seat.Status != service.SeatStatusBooked {
			t.Errorf("expected A3 booked, got %s", seat.Status)
		}
	}
}

func TestBookingFlow_StartUsesCachedOccupancy(t *testing.T) {
	t.Parallel()

	backend := NewMockBackend()
	svc, cache := setupWizard(t, backend)

	cache.SetSeatBookings(context.Background(), 7, "2026-09-15 08:00", []domain.SeatBooking{{SeatNumber: "A5"}})

	view := startDraft(t, svc)

	if backend.SeatBookingsCallCount != 0 {
		t.Errorf("expected cached occupancy, backend was called %d times", backend.SeatBookingsCallCount)
	}
	for _, seat := range view.Seats {
		if seat.ID == "A5" && seat.Status != service.SeatStatusBooked {
			t.Errorf("expected A5 booked from cache, got %s", seat.Status)
		}
	}
}

func TestBookingFlow_StartValidation(t *testing.T) {
	t.Parallel()

	svc, _ := setupWizard(t, NewMockBackend())

	_, err := svc.Start(context.Background(), service.StartWizardRequest{
		Trip:            domain.Trip{ID: 0},
		BookingDateTime: "2026-09-15 08:00",
	})
	if !errors.Is(err, service.ErrInvalidTripID) {
		t.Errorf("expected ErrInvalidTripID, got %v", err)
	}

	_, err = svc.Start(context.Background(), service.StartWizardRequest{
		Trip:            testTrip(),
		BookingDateTime: "15/09/2026",
	})
	if !errors.Is(err, service.ErrInvalidDateTime) {
		t.Errorf("expected ErrInvalidDateTime, got %v", err)
	}
}

func TestBookingFlow_SubmitHappyPath(t *testing.T) {
	t.Parallel()

	backend := NewMockBackend()
	backend.SubmitResult = &domain.Booking{ID: 42, TotalPayment: 400000}
	svc, cache := setupWizard(t, backend)

	view := startDraft(t, svc)

	if _, err := svc.ToggleSeat(context.Background(), view.ID, "A1", true); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if _, err := svc.ToggleSeat(context.Background(), view.ID, "A2", true); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if _, err := svc.Advance(context.Background(), view.ID); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if _, err := svc.UpdateDetails(context.Background(), view.ID, service.UpdateDetailsRequest{
		Passenger: booking.Passenger{
			FirstName:     "An",
			LastName:      "Nguyen",
			Phone:         "0912345678",
			Email:         "an@example.com",
			PickUpAddress: "12 Le Loi",
		},
		PaymentMethod: domain.PaymentMethodVNPay,
	}); err != nil {
		t.Fatalf("update details failed: %v", err)
	}

	result, err := svc.Submit(context.Background(), view.ID, "an")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.ID != 42 {
		t.Errorf("expected booking 42, got %d", result.ID)
	}

	if backend.LastIdempotencyKey != view.ID {
		t.Errorf("expected draft ID as idempotency key, got %q", backend.LastIdempotencyKey)
	}
	if got := backend.LastSubmitRequest.TotalPayment; got != 400000 {
		t.Errorf("expected submitted total 400000, got %v", got)
	}
	if cache.SeatBookingsInvalidations == 0 {
		t.Error("expected occupancy invalidation after submission")
	}

	// The draft is gone after a successful submission.
	if _, err := svc.Get(context.Background(), view.ID); err == nil {
		t.Error("expected draft lookup to fail after submission")
	}
}

func TestBookingFlow_SeatConflictReturnsToSeatSelection(t *testing.T) {
	t.Parallel()

	backend := NewMockBackend()
	backend.SubmitError = backendapi.ErrSeatConflict
	svc, cache := setupWizard(t, backend)

	view := startDraft(t, svc)
	svc.ToggleSeat(context.Background(), view.ID, "A1", true)
	svc.Advance(context.Background(), view.ID)
	svc.UpdateDetails(context.Background(), view.ID, service.UpdateDetailsRequest{
		Passenger: booking.Passenger{
			FirstName:     "An",
			LastName:      "Nguyen",
			Phone:         "0912345678",
			Email:         "an@example.com",
			PickUpAddress: "12 Le Loi",
		},
		PaymentMethod: domain.PaymentMethodCash,
	})

	_, err := svc.Submit(context.Background(), view.ID, "an")
	if !errors.Is(err, backendapi.ErrSeatConflict) {
		t.Fatalf("expected ErrSeatConflict, got %v", err)
	}

	after, err := svc.Get(context.Background(), view.ID)
	if err != nil {
		t.Fatalf("draft should survive a rejected submission: %v", err)
	}
	if after.Step != booking.StepSeatSelection {
		t.Errorf("expected return to %s, got %s", booking.StepSeatSelection, after.Step)
	}
	if cache.SeatBookingsInvalidations == 0 {
		t.Error("expected occupancy invalidation after a seat conflict")
	}
}

func TestBookingFlow_ApplyPointsFetchesBalance(t *testing.T) {
	t.Parallel()

	backend := NewMockBackend()
	backend.LoyaltyResult = &domain.LoyaltyBalance{LoyaltyPoints: 100000}
	svc, _ := setupWizard(t, backend)

	view := startDraft(t, svc)
	svc.ToggleSeat(context.Background(), view.ID, "A1", true)

	after, err := svc.ApplyPoints(context.Background(), view.ID, "an", "50000")
	if err != nil {
		t.Fatalf("apply points failed: %v", err)
	}
	if !after.PointsApplied {
		t.Error("expected redemption applied")
	}
	if after.Total != 150000 {
		t.Errorf("expected total 150000, got %v", after.Total)
	}
}

func TestBookingFlow_ApplyPointsRequiresLogin(t *testing.T) {
	t.Parallel()

	svc, _ := setupWizard(t, NewMockBackend())
	view := startDraft(t, svc)

	_, err := svc.ApplyPoints(context.Background(), view.ID, "", "1000")
	if !errors.Is(err, service.ErrNotLoggedIn) {
		t.Errorf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestBookingFlow_SubmitInvalidatesLoyaltyAfterRedemption(t *testing.T) {
	t.Parallel()

	backend := NewMockBackend()
	backend.LoyaltyResult = &domain.LoyaltyBalance{LoyaltyPoints: 100000}
	backend.SubmitResult = &domain.Booking{ID: 1}
	svc, cache := setupWizard(t, backend)

	view := startDraft(t, svc)
	svc.ToggleSeat(context.Background(), view.ID, "A1", true)
	if _, err := svc.ApplyPoints(context.Background(), view.ID, "an", "10000"); err != nil {
		t.Fatalf("apply points failed: %v", err)
	}
	svc.Advance(context.Background(), view.ID)
	svc.UpdateDetails(context.Background(), view.ID, service.UpdateDetailsRequest{
		Passenger: booking.Passenger{
			FirstName:     "An",
			LastName:      "Nguyen",
			Phone:         "0912345678",
			Email:         "an@example.com",
			PickUpAddress: "12 Le Loi",
		},
		PaymentMethod: domain.PaymentMethodMomo,
	})

	if _, err := svc.Submit(context.Background(), view.ID, "an"); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if cache.LoyaltyInvalidations == 0 {
		t.Error("expected loyalty invalidation after redeeming points")
	}
}

func TestBookingFlow_DiscardRemovesDraft(t *testing.T) {
	t.Parallel()

	svc, _ := setupWizard(t, NewMockBackend())
	view := startDraft(t, svc)

	if err := svc.Discard(context.Background(), view.ID); err != nil {
		t.Fatalf("discard failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), view.ID); err == nil {
		t.Error("expected draft to be gone after discard")
	}
}
