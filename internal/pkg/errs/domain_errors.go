package errs

import "errors"

// Category markers shared by the usecase and handler layers. Usecases attach
// them with Mark; handlers branch on them with errors.Is.
var (
	// Booking lookups
	ErrBookingNotFound = errors.New("booking not found")
	ErrGuestNotFound   = errors.New("guest not found")

	// Backend access
	ErrSessionExpired     = errors.New("operator session expired")
	ErrBackendUnavailable = errors.New("booking backend unavailable")
	ErrBackendRejected    = errors.New("booking backend rejected the request")

	// Validation
	ErrValidation = errors.New("validation failed")
)
