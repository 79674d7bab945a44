package domain

// Cargo is an ancillary service purchasable alongside a seat booking.
type Cargo struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"basePrice"`
}

// CargoRequest is a requested quantity of one cargo service in a booking
// submission. Zero-quantity entries are omitted from payloads.
type CargoRequest struct {
	CargoID  int64 `json:"cargoId"`
	Quantity int   `json:"quantity"`
}
