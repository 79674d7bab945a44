package booking

import (
	"net/mail"
	"regexp"
	"strings"
)

// phoneRegex matches Vietnamese mobile numbers: a 0 or +84 prefix followed
// by a carrier digit (3, 5, 7, 8, 9) and eight more digits.
var phoneRegex = regexp.MustCompile(`^(0|\+84)(3|5|7|8|9)[0-9]{8}$`)

// ValidPhone reports whether a phone number matches the regional pattern.
func ValidPhone(phone string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(phone))
}

// ValidEmail reports whether an address is syntactically valid.
func ValidEmail(email string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	return err == nil && addr.Address == strings.TrimSpace(email)
}

// Passenger carries the contact fields entered in the payment step.
type Passenger struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	PickUpAddress string `json:"pickUpAddress"`
}

// Validate format-checks all required passenger fields.
func (p Passenger) Validate() error {
	if strings.TrimSpace(p.FirstName) == "" {
		return ErrMissingFirstName
	}
	if strings.TrimSpace(p.LastName) == "" {
		return ErrMissingLastName
	}
	if !ValidPhone(p.Phone) {
		return ErrInvalidPhone
	}
	if !ValidEmail(p.Email) {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(p.PickUpAddress) == "" {
		return ErrMissingPickUpAddress
	}
	return nil
}
