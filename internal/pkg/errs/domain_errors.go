package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Input errors
	ErrInvalidRange = errors.New("invalid date range")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidTier  = errors.New("unknown pricing tier")

	// Lookup errors
	ErrCarNotFound         = errors.New("car not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrMaintenanceNotFound = errors.New("maintenance window not found")
	ErrReservationNotFound = errors.New("reservation not found")

	// Reservation errors
	ErrConflict         = errors.New("car no longer available")
	ErrDuplicateBooking = errors.New("booking already recorded for this payment")
	ErrBookingNotActive = errors.New("booking can no longer be changed")

	// Access errors
	ErrForbidden = errors.New("forbidden")
)
