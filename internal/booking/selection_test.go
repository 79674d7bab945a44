package booking

import (
	"testing"

	"busline/internal/domain"
)

func standardTrip(price float64, discount *domain.Discount) domain.Trip {
	return domain.Trip{
		ID:       1,
		Coach:    domain.Coach{ID: 1, Name: "Coach 01", CoachType: domain.CoachTypeStandard},
		Price:    price,
		Discount: discount,
	}
}

func TestSelection_ToggleSelectsAndDeselects(t *testing.T) {
	t.Parallel()

	sel := NewSelection(standardTrip(200000, nil), nil, 5)

	if !sel.Toggle("A1", true) {
		t.Fatal("selecting a free seat should succeed")
	}
	if !sel.IsSelected("A1") {
		t.Error("A1 should be selected")
	}
	if !sel.Toggle("A1", false) {
		t.Fatal("deselecting a selected seat should succeed")
	}
	if sel.IsSelected("A1") {
		t.Error("A1 should no longer be selected")
	}
}

func TestSelection_BookedSeatIsImmutable(t *testing.T) {
	t.Parallel()

	sel := NewSelection(standardTrip(200000, nil), []string{"A3"}, 5)

	if sel.Toggle("A3", true) {
		t.Error("selecting a booked seat should be a no-op")
	}
	if sel.Count() != 0 {
		t.Errorf("expected 0 selected seats, got %d", sel.Count())
	}
}

func TestSelection_HiddenSeatCannotBeSelected(t *testing.T) {
	t.Parallel()

	trip := standardTrip(200000, nil)
	trip.Coach.CoachType = domain.CoachTypeLimousine
	sel := NewSelection(trip, nil, 5)

	if sel.Toggle("A18", true) {
		t.Error("A18 is hidden on a limousine coach and should not be selectable")
	}
}

func TestSelection_EnforcesMaximum(t *testing.T) {
	t.Parallel()

	sel := NewSelection(standardTrip(200000, nil), nil, 5)

	for _, id := range []string{"A1", "A2", "A3", "A4", "A5"} {
		if !sel.Toggle(id, true) {
			t.Fatalf("selecting %s should succeed", id)
		}
	}
	if sel.Toggle("A6", true) {
		t.Error("sixth seat should be rejected")
	}
	if sel.Count() != 5 {
		t.Errorf("expected 5 selected seats, got %d", sel.Count())
	}

	// Freeing a slot makes room again.
	sel.Toggle("A1", false)
	if !sel.Toggle("A6", true) {
		t.Error("selection should succeed after freeing a slot")
	}
}

func TestSelection_SelectingTwiceIsNoop(t *testing.T) {
	t.Parallel()

	sel := NewSelection(standardTrip(200000, nil), nil, 5)

	sel.Toggle("A1", true)
	if sel.Toggle("A1", true) {
		t.Error("re-selecting a selected seat should be a no-op")
	}
	if sel.Count() != 1 {
		t.Errorf("expected 1 selected seat, got %d", sel.Count())
	}
}

func TestSelection_SubtotalUsesDiscountedPrice(t *testing.T) {
	t.Parallel()

	sel := NewSelection(standardTrip(250000, &domain.Discount{Amount: 50000}), nil, 5)

	sel.Toggle("A1", true)
	sel.Toggle("A2", true)

	if got := sel.UnitPrice(); got != 200000 {
		t.Errorf("expected unit price 200000, got %v", got)
	}
	if got := sel.Subtotal(); got != 400000 {
		t.Errorf("expected subtotal 400000, got %v", got)
	}
}
