package domain

// Layouts of date-time strings used by the backend API.
const (
	DateTimeLayout        = "2006-01-02 15:04"
	PaymentDateTimeLayout = "2006-01-02 15:04:05"
)

// CoachType categorizes a vehicle and selects its seat layout.
type CoachType string

const (
	CoachTypeStandard  CoachType = "STANDARD"
	CoachTypeLimousine CoachType = "LIMOUSINE"
	CoachTypeBed       CoachType = "BED"
)

// Coach identifies a vehicle.
type Coach struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CoachType CoachType `json:"coachType"`
}

// Province is the top level of a location hierarchy.
type Province struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Location is a pickup/dropoff or route endpoint.
type Location struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Ward     string    `json:"ward"`
	District string    `json:"district"`
	Province *Province `json:"province,omitempty"`
}

// Discount is an amount subtracted from a trip's base price.
type Discount struct {
	Amount float64 `json:"amount"`
}

// Trip is a scheduled journey. Owned by the backend; read-only here.
type Trip struct {
	ID                int64     `json:"id"`
	Source            Location  `json:"source"`
	Destination       Location  `json:"destination"`
	DepartureDateTime string    `json:"departureDateTime"`
	Coach             Coach     `json:"coach"`
	Price             float64   `json:"price"`
	Discount          *Discount `json:"discount,omitempty"`
}
