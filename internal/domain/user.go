package domain

// User carries the passenger-prefill profile of an account.
type User struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// LoyaltyBalance is the backend-confirmed redeemable point balance.
type LoyaltyBalance struct {
	LoyaltyPoints float64 `json:"loyaltyPoints"`
}

// PointsEntry is one bucket of a loyalty point report series.
type PointsEntry struct {
	PointsEarned float64 `json:"Points Earned"`
	PointsUsed   float64 `json:"Points Used"`
}

// PointsReport is a labeled report series, keyed by bucket label.
type PointsReport struct {
	ReportData map[string]PointsEntry `json:"reportData"`
}

// ReportRange selects the bucketing of a points report.
type ReportRange string

const (
	ReportRangeWeekly  ReportRange = "weekly"
	ReportRangeMonthly ReportRange = "monthly"
	ReportRangeYearly  ReportRange = "yearly"
)
