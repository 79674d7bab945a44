package domain

// PaymentStatus is the backend's payment state for a booking.
type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "UNPAID"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusCancel   PaymentStatus = "CANCEL"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// PaymentMethod is the method chosen at booking time.
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "CASH"
	PaymentMethodCard       PaymentMethod = "CARD"
	PaymentMethodVNPay      PaymentMethod = "VNPAY"
	PaymentMethodMomo       PaymentMethod = "MOMO"
	PaymentMethodBank       PaymentMethod = "BANK"
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
)

// PaymentMethods lists the methods offered at booking time, in display
// order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentMethodCash,
		PaymentMethodCard,
		PaymentMethodVNPay,
		PaymentMethodMomo,
		PaymentMethodBank,
		PaymentMethodCreditCard,
	}
}

// BookingType distinguishes one-way from round trips.
type BookingType string

const (
	BookingTypeOneway BookingType = "ONEWAY"
	BookingTypeReturn BookingType = "ROUNDTRIP"
)

// PaymentHistory is one status transition on a booking. OldStatus is nil
// for the creation entry.
type PaymentHistory struct {
	OldStatus            *PaymentStatus `json:"oldStatus"`
	NewStatus            PaymentStatus  `json:"newStatus"`
	StatusChangeDateTime string         `json:"statusChangeDateTime"`
}

// SeatBooking is one committed seat on a trip/date, as returned by the
// backend occupancy lookup.
type SeatBooking struct {
	ID         int64  `json:"id"`
	SeatNumber string `json:"seatNumber"`
}

// Booking is an issued booking record. Immutable from the client.
type Booking struct {
	ID               int64            `json:"id"`
	Trip             Trip             `json:"trip"`
	BookingDateTime  string           `json:"bookingDateTime"`
	BookingType      BookingType      `json:"bookingType"`
	SeatNumber       []string         `json:"seatNumber"`
	CustFirstName    string           `json:"custFirstName"`
	CustLastName     string           `json:"custLastName"`
	Phone            string           `json:"phone"`
	Email            string           `json:"email"`
	PickUpAddress    string           `json:"pickUpAddress"`
	PaymentMethod    PaymentMethod    `json:"paymentMethod"`
	PaymentStatus    PaymentStatus    `json:"paymentStatus"`
	PaymentDateTime  string           `json:"paymentDateTime"`
	TotalPayment     float64          `json:"totalPayment"`
	PointsRedeemed   float64          `json:"pointsRedeemed"`
	PaymentHistories []PaymentHistory `json:"paymentHistories"`
}
