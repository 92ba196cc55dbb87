package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Mechanic catalog errors
	ErrMechanicNotFound = errors.New("mechanic not found")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
	ErrInvalidDateRange = errors.New("invalid date range")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
