// Package booking implements the client-side booking core: seat selection,
// price preview, ancillary-service aggregation, loyalty-point redemption
// and the multi-step wizard that ties them together. Everything here is a
// local preview; the backend is the sole authority for the final price and
// seat locks at submission time.
package booking

import (
	"strconv"
	"strings"

	"busline/internal/domain"
)

// Step is a wizard state.
type Step string

const (
	StepSeatSelection       Step = "SEAT_SELECTION"
	StepPassengerAndPayment Step = "PASSENGER_AND_PAYMENT"
	StepSubmitted           Step = "SUBMITTED"
)

// Wizard is the in-progress booking draft built across steps. It is not
// safe for concurrent use; callers serialize access per draft.
type Wizard struct {
	trip            domain.Trip
	bookingDateTime string
	bookingType     domain.BookingType

	step      Step
	selection *Selection

	catalog  map[int64]domain.Cargo
	cargoQty map[int64]int

	passenger     Passenger
	paymentMethod domain.PaymentMethod

	balance      float64
	balanceKnown bool

	pointsInput    string
	pointsApplied  bool
	pointsRedeemed float64
}

// NewWizard starts a draft for one trip and travel date. bookedSeats is
// the occupancy fetched once per wizard session; it is not live-updated
// while the user is choosing.
func NewWizard(trip domain.Trip, bookingDateTime string, bookingType domain.BookingType, bookedSeats []string, maxSeats int, catalog []domain.Cargo) *Wizard {
	byID := make(map[int64]domain.Cargo, len(catalog))
	for _, c := range catalog {
		byID[c.ID] = c
	}
	return &Wizard{
		trip:            trip,
		bookingDateTime: bookingDateTime,
		bookingType:     bookingType,
		step:            StepSeatSelection,
		selection:       NewSelection(trip, bookedSeats, maxSeats),
		catalog:         byID,
		cargoQty:        make(map[int64]int),
	}
}

// Step returns the current wizard state.
func (w *Wizard) Step() Step { return w.step }

// Trip returns the trip being booked.
func (w *Wizard) Trip() domain.Trip { return w.trip }

// BookingDateTime returns the travel date/time of the draft.
func (w *Wizard) BookingDateTime() string { return w.bookingDateTime }

// Selection exposes the seat selection engine.
func (w *Wizard) Selection() *Selection { return w.selection }

// ToggleSeat selects or deselects a seat while in the seat-selection step.
// Returns whether the selection changed.
func (w *Wizard) ToggleSeat(seatID string, selected bool) bool {
	if w.step == StepSubmitted {
		return false
	}
	changed := w.selection.Toggle(seatID, selected)
	if changed && w.pointsApplied {
		// Subtotals moved under an applied redemption; drop it so the
		// user re-confirms against the new payable total.
		w.CancelPoints()
	}
	return changed
}

// SetCargoQuantity records a requested quantity for an ancillary service.
func (w *Wizard) SetCargoQuantity(cargoID int64, qty int) error {
	if w.step == StepSubmitted {
		return ErrWrongStep
	}
	if qty < 0 {
		return ErrInvalidQuantity
	}
	if _, ok := w.catalog[cargoID]; !ok {
		return ErrUnknownCargo
	}
	if qty == 0 {
		delete(w.cargoQty, cargoID)
	} else {
		w.cargoQty[cargoID] = qty
	}
	if w.pointsApplied {
		w.CancelPoints()
	}
	return nil
}

// CargoQuantities returns a copy of the requested quantities.
func (w *Wizard) CargoQuantities() map[int64]int {
	out := make(map[int64]int, len(w.cargoQty))
	for id, qty := range w.cargoQty {
		out[id] = qty
	}
	return out
}

// SeatSubtotal returns selected count times per-seat price.
func (w *Wizard) SeatSubtotal() float64 { return w.selection.Subtotal() }

// CargoSubtotal returns the ancillary-service subtotal.
func (w *Wizard) CargoSubtotal() float64 {
	sum, _ := CargoSubtotal(w.catalog, w.cargoQty)
	return sum
}

// Payable is the pre-redemption total: seat subtotal plus cargo subtotal.
func (w *Wizard) Payable() float64 {
	return w.SeatSubtotal() + w.CargoSubtotal()
}

// Total is the amount to pay after any applied redemption, floored at zero.
func (w *Wizard) Total() float64 {
	total := w.Payable()
	if w.pointsApplied {
		total -= w.pointsRedeemed
	}
	if total < 0 {
		return 0
	}
	return total
}

// SetBalance records the backend-confirmed loyalty balance.
func (w *Wizard) SetBalance(points float64) {
	w.balance = points
	w.balanceKnown = true
}

// SetPointsInput records a typed-but-unconfirmed point amount. Submission
// refuses while an entered amount is neither applied nor cleared.
func (w *Wizard) SetPointsInput(raw string) {
	w.pointsInput = strings.TrimSpace(raw)
}

// ApplyPoints validates and applies a point redemption against the current
// payable total. On any violation the draft is left unchanged.
func (w *Wizard) ApplyPoints(raw string) error {
	if w.pointsApplied {
		return ErrPointsAlreadyApplied
	}
	if !w.balanceKnown {
		return ErrBalanceUnknown
	}
	points, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || points <= 0 {
		return ErrInvalidPointAmount
	}
	if points > w.balance {
		return ErrPointsExceedBalance
	}
	if points > w.Payable() {
		return ErrPointsExceedTotal
	}
	w.pointsRedeemed = points
	w.pointsApplied = true
	w.pointsInput = ""
	return nil
}

// CancelPoints reverts an applied redemption. The total is recomputed from
// the seat and cargo subtotals, so repeated apply/cancel cycles cannot
// compound.
func (w *Wizard) CancelPoints() {
	w.pointsApplied = false
	w.pointsRedeemed = 0
}

// PointsApplied reports whether a redemption is currently applied.
func (w *Wizard) PointsApplied() bool { return w.pointsApplied }

// PointsRedeemed returns the applied redemption amount, zero when none.
func (w *Wizard) PointsRedeemed() float64 {
	if !w.pointsApplied {
		return 0
	}
	return w.pointsRedeemed
}

// SetPassenger stores the passenger contact fields.
func (w *Wizard) SetPassenger(p Passenger) { w.passenger = p }

// Passenger returns the stored passenger contact fields.
func (w *Wizard) Passenger() Passenger { return w.passenger }

// SetPaymentMethod records the chosen payment method.
func (w *Wizard) SetPaymentMethod(m domain.PaymentMethod) { w.paymentMethod = m }

// PaymentMethod returns the chosen payment method.
func (w *Wizard) PaymentMethod() domain.PaymentMethod { return w.paymentMethod }

// Next advances from seat selection to the passenger/payment step. It
// requires at least one selected seat.
func (w *Wizard) Next() error {
	if w.step != StepSeatSelection {
		return ErrWrongStep
	}
	if w.selection.Count() == 0 {
		return ErrNoSeatSelected
	}
	w.step = StepPassengerAndPayment
	return nil
}

// Back returns the wizard to seat selection, e.g. after the backend
// rejected a submission because a seat was taken in the meantime.
func (w *Wizard) Back() {
	if w.step == StepPassengerAndPayment {
		w.step = StepSeatSelection
	}
}

// BuildRequest validates the draft for submission and produces the payload
// sent to the backend in one request.
func (w *Wizard) BuildRequest() (domain.BookingRequest, error) {
	if w.step != StepPassengerAndPayment {
		return domain.BookingRequest{}, ErrWrongStep
	}
	if err := w.passenger.Validate(); err != nil {
		return domain.BookingRequest{}, err
	}
	if w.paymentMethod == "" {
		return domain.BookingRequest{}, ErrNoPaymentMethod
	}
	if w.pointsInput != "" && !w.pointsApplied {
		return domain.BookingRequest{}, ErrPointsPending
	}

	return domain.BookingRequest{
		TripID:          w.trip.ID,
		BookingDateTime: w.bookingDateTime,
		BookingType:     w.bookingType,
		SeatNumber:      w.selection.Seats(),
		CustFirstName:   w.passenger.FirstName,
		CustLastName:    w.passenger.LastName,
		Phone:           w.passenger.Phone,
		Email:           w.passenger.Email,
		PickUpAddress:   w.passenger.PickUpAddress,
		PaymentMethod:   w.paymentMethod,
		CargoRequests:   CargoRequests(w.cargoQty),
		PointsRedeemed:  w.PointsRedeemed(),
		TotalPayment:    w.Total(),
	}, nil
}

// MarkSubmitted finalizes the draft after the backend accepted it.
func (w *Wizard) MarkSubmitted() { w.step = StepSubmitted }
