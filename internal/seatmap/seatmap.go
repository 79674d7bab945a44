// Package seatmap holds the static per-coach-type seat layouts. The layout
// is a fixed table: two decks of 18 seats each, with coach-type overrides
// that hide or widen specific seats. Booked/selected state lives elsewhere;
// this package only answers "which seats exist for this coach type".
package seatmap

import (
	"fmt"

	"busline/internal/domain"
)

// Deck identifies one level of a double-decker coach.
type Deck string

const (
	DeckDownStair Deck = "DOWN_STAIR" // seats A1..A18
	DeckUpStair   Deck = "UP_STAIR"   // seats B1..B18
)

const seatsPerDeck = 18

// Seat is one position in a layout.
type Seat struct {
	ID   string
	Deck Deck
	// Wide seats render across two grid columns (front-row seats on
	// limousine and bed coaches).
	Wide bool
}

// override declares coach-type-specific deviations from the base layout.
type override struct {
	hidden map[string]bool
	wide   map[string]bool
}

var overrides = map[domain.CoachType]override{
	domain.CoachTypeLimousine: {
		hidden: map[string]bool{"A18": true, "B18": true},
		wide:   map[string]bool{"A1": true, "B1": true},
	},
	domain.CoachTypeBed: {
		hidden: map[string]bool{"A18": true, "B18": true},
		wide:   map[string]bool{"A1": true, "B1": true},
	},
}

var baseSeats = buildBase()

func buildBase() []Seat {
	seats := make([]Seat, 0, 2*seatsPerDeck)
	for i := 1; i <= seatsPerDeck; i++ {
		seats = append(seats, Seat{ID: fmt.Sprintf("A%d", i), Deck: DeckDownStair})
	}
	for i := 1; i <= seatsPerDeck; i++ {
		seats = append(seats, Seat{ID: fmt.Sprintf("B%d", i), Deck: DeckUpStair})
	}
	return seats
}

// Layout returns the visible seats for a coach type, grouped by deck in
// seat-number order. The returned slices are fresh copies.
func Layout(coachType domain.CoachType) map[Deck][]Seat {
	ov := overrides[coachType]
	layout := map[Deck][]Seat{
		DeckDownStair: {},
		DeckUpStair:   {},
	}
	for _, seat := range baseSeats {
		if ov.hidden[seat.ID] {
			continue
		}
		seat.Wide = ov.wide[seat.ID]
		layout[seat.Deck] = append(layout[seat.Deck], seat)
	}
	return layout
}

// Visible reports whether a seat identifier exists and is shown for the
// given coach type.
func Visible(coachType domain.CoachType, seatID string) bool {
	if _, ok := DeckOf(seatID); !ok {
		return false
	}
	return !overrides[coachType].hidden[seatID]
}

// DeckOf resolves a seat identifier to its deck. Unknown identifiers
// return ok=false.
func DeckOf(seatID string) (Deck, bool) {
	for _, seat := range baseSeats {
		if seat.ID == seatID {
			return seat.Deck, true
		}
	}
	return "", false
}

// SeatCount returns the number of selectable seats for a coach type.
func SeatCount(coachType domain.CoachType) int {
	n := 0
	ov := overrides[coachType]
	for _, seat := range baseSeats {
		if !ov.hidden[seat.ID] {
			n++
		}
	}
	return n
}
