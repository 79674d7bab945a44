package booking

import (
	"busline/internal/domain"
	"busline/internal/seatmap"
)

// Selection tracks the seats the current user has tentatively picked for
// one trip/date. Booked seats are immutable input; selection state is
// transient and dies with the wizard session.
type Selection struct {
	coachType domain.CoachType
	unitPrice float64
	maxSeats  int
	booked    map[string]bool
	selected  []string
}

// NewSelection builds a selection over the trip's seat map. bookedSeats is
// the backend's committed occupancy for the trip/date; seats in it can
// never be selected.
func NewSelection(trip domain.Trip, bookedSeats []string, maxSeats int) *Selection {
	booked := make(map[string]bool, len(bookedSeats))
	for _, id := range bookedSeats {
		booked[id] = true
	}
	return &Selection{
		coachType: trip.Coach.CoachType,
		unitPrice: UnitPrice(trip),
		maxSeats:  maxSeats,
		booked:    booked,
	}
}

// Toggle selects or deselects a seat and reports whether anything changed.
// Booked seats, seats hidden for the coach type, and selections beyond the
// maximum are no-ops.
func (s *Selection) Toggle(seatID string, selected bool) bool {
	if s.booked[seatID] || !seatmap.Visible(s.coachType, seatID) {
		return false
	}

	if selected {
		if s.IsSelected(seatID) {
			return false
		}
		if len(s.selected) >= s.maxSeats {
			return false
		}
		s.selected = append(s.selected, seatID)
		return true
	}

	for i, id := range s.selected {
		if id == seatID {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return true
		}
	}
	return false
}

// Seats returns the selected seat identifiers in selection order.
func (s *Selection) Seats() []string {
	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out
}

// Count returns the number of selected seats.
func (s *Selection) Count() int {
	return len(s.selected)
}

// Subtotal returns selected count times the per-seat price.
func (s *Selection) Subtotal() float64 {
	return float64(len(s.selected)) * s.unitPrice
}

// UnitPrice returns the per-seat price used by this selection.
func (s *Selection) UnitPrice() float64 {
	return s.unitPrice
}

// IsBooked reports whether a seat is in the committed occupancy set.
func (s *Selection) IsBooked(seatID string) bool {
	return s.booked[seatID]
}

// IsSelected reports whether a seat is currently selected.
func (s *Selection) IsSelected(seatID string) bool {
	for _, id := range s.selected {
		if id == seatID {
			return true
		}
	}
	return false
}
