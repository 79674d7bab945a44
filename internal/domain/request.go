package domain

// BookingRequest is the single submission payload for a finished booking
// draft. The backend re-validates seats, price and loyalty balance; the
// totals here are the client's advisory computation.
type BookingRequest struct {
	TripID          int64          `json:"tripId"`
	BookingDateTime string         `json:"bookingDateTime"`
	BookingType     BookingType    `json:"bookingType"`
	SeatNumber      []string       `json:"seatNumber"`
	CustFirstName   string         `json:"custFirstName"`
	CustLastName    string         `json:"custLastName"`
	Phone           string         `json:"phone"`
	Email           string         `json:"email"`
	PickUpAddress   string         `json:"pickUpAddress"`
	PaymentMethod   PaymentMethod  `json:"paymentMethod"`
	CargoRequests   []CargoRequest `json:"cargoRequests,omitempty"`
	PointsRedeemed  float64        `json:"pointsRedeemed"`
	TotalPayment    float64        `json:"totalPayment"`
}
