package service

import "errors"

var (
	// ErrInvalidTripID is returned when a trip ID is missing or not positive.
	ErrInvalidTripID = errors.New("invalid trip id")

	// ErrInvalidDateTime is returned when a travel date-time does not parse.
	ErrInvalidDateTime = errors.New("invalid booking date time")

	// ErrInvalidDraftID is returned when a wizard draft ID is empty.
	ErrInvalidDraftID = errors.New("invalid draft id")

	// ErrInvalidBookingID is returned when a booking ID is not positive.
	ErrInvalidBookingID = errors.New("invalid booking id")

	// ErrInvalidPhoneNumber is returned when a search phone number fails
	// the format check. No backend request is made in that case.
	ErrInvalidPhoneNumber = errors.New("invalid phone number format")

	// ErrInvalidUsername is returned when a username is empty.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrNotLoggedIn is returned for operations that need an
	// authenticated session.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrInvalidReportRange is returned for an unknown report range.
	ErrInvalidReportRange = errors.New("invalid report range")

	// ErrInvalidConversationID is returned when a chat conversation ID is
	// not positive.
	ErrInvalidConversationID = errors.New("invalid conversation id")

	// ErrEmptyMessage is returned when sending a chat message without
	// content.
	ErrEmptyMessage = errors.New("message content is empty")

	// ErrInvalidNotificationID is returned when a notification ID is not
	// positive.
	ErrInvalidNotificationID = errors.New("invalid notification id")
)
