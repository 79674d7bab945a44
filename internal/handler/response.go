package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"busline/internal/backendapi"
	"busline/internal/booking"
	"busline/internal/repository"
	"busline/internal/service"
	"busline/internal/session"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/domain errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, session.ErrNotFound),
		errors.Is(err, backendapi.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidTripID),
		errors.Is(err, service.ErrInvalidDateTime),
		errors.Is(err, service.ErrInvalidDraftID),
		errors.Is(err, service.ErrInvalidBookingID),
		errors.Is(err, service.ErrInvalidPhoneNumber),
		errors.Is(err, service.ErrInvalidUsername),
		errors.Is(err, service.ErrInvalidReportRange),
		errors.Is(err, service.ErrInvalidConversationID),
		errors.Is(err, service.ErrEmptyMessage),
		errors.Is(err, service.ErrInvalidNotificationID),
		errors.Is(err, booking.ErrNoSeatSelected),
		errors.Is(err, booking.ErrUnknownCargo),
		errors.Is(err, booking.ErrInvalidQuantity),
		errors.Is(err, booking.ErrInvalidPointAmount),
		errors.Is(err, booking.ErrPointsExceedBalance),
		errors.Is(err, booking.ErrPointsExceedTotal),
		errors.Is(err, booking.ErrPointsPending),
		errors.Is(err, booking.ErrBalanceUnknown),
		errors.Is(err, booking.ErrMissingFirstName),
		errors.Is(err, booking.ErrMissingLastName),
		errors.Is(err, booking.ErrInvalidPhone),
		errors.Is(err, booking.ErrInvalidEmail),
		errors.Is(err, booking.ErrMissingPickUpAddress),
		errors.Is(err, booking.ErrNoPaymentMethod):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, booking.ErrWrongStep),
		errors.Is(err, booking.ErrPointsAlreadyApplied),
		errors.Is(err, backendapi.ErrSeatConflict):
		return http.StatusConflict

	// Login required
	case errors.Is(err, service.ErrNotLoggedIn),
		errors.Is(err, backendapi.ErrUnauthorized):
		return http.StatusUnauthorized

	// The remote booking backend is down or misbehaving.
	case errors.Is(err, backendapi.ErrBackendUnavailable):
		return http.StatusBadGateway

	default:
		// Preserve the backend's own business-rejection status.
		var apiErr *backendapi.APIError
		if errors.As(err, &apiErr) {
			return apiErr.StatusCode
		}
		return http.StatusInternalServerError
	}
}
