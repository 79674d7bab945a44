package booking

import "errors"

var (
	// ErrNoSeatSelected is returned when advancing past seat selection
	// with an empty selection.
	ErrNoSeatSelected = errors.New("at least one seat must be selected")

	// ErrWrongStep is returned when an operation is invalid for the
	// wizard's current step.
	ErrWrongStep = errors.New("operation not allowed in current step")

	// ErrUnknownCargo is returned for a quantity against a cargo service
	// not in the catalog.
	ErrUnknownCargo = errors.New("unknown cargo service")

	// ErrInvalidQuantity is returned for a negative cargo quantity.
	ErrInvalidQuantity = errors.New("cargo quantity must not be negative")

	// ErrInvalidPointAmount is returned when the entered point amount does
	// not parse as a positive number.
	ErrInvalidPointAmount = errors.New("invalid loyalty point amount")

	// ErrPointsExceedBalance is returned when the requested redemption
	// exceeds the available balance.
	ErrPointsExceedBalance = errors.New("point amount exceeds available balance")

	// ErrPointsExceedTotal is returned when the requested redemption
	// exceeds the current payable total.
	ErrPointsExceedTotal = errors.New("point amount exceeds payable total")

	// ErrPointsAlreadyApplied is returned when applying points twice
	// without canceling in between.
	ErrPointsAlreadyApplied = errors.New("loyalty points already applied")

	// ErrPointsPending is returned at submission when a point amount was
	// entered but neither applied nor cleared.
	ErrPointsPending = errors.New("entered loyalty points must be applied or cleared")

	// ErrBalanceUnknown is returned when applying points before the
	// balance was fetched.
	ErrBalanceUnknown = errors.New("loyalty balance not loaded")

	// ErrMissingFirstName is returned for an empty first name.
	ErrMissingFirstName = errors.New("first name is required")

	// ErrMissingLastName is returned for an empty last name.
	ErrMissingLastName = errors.New("last name is required")

	// ErrInvalidPhone is returned when a phone number fails the regional
	// pattern check.
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrInvalidEmail is returned for a syntactically invalid email.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrMissingPickUpAddress is returned for an empty pickup address.
	ErrMissingPickUpAddress = errors.New("pickup address is required")

	// ErrNoPaymentMethod is returned at submission without a chosen
	// payment method.
	ErrNoPaymentMethod = errors.New("a payment method must be chosen")
)
