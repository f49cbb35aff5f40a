package revenue

import (
	"errors"
	"fmt"
)

// Revenue-specific errors
var (
	ErrMissingID      = errors.New("entry id is required")
	ErrMissingDate    = errors.New("entry date is required")
	ErrInvalidDate    = errors.New("entry date is invalid")
	ErrNegativeAmount = errors.New("entry amount cannot be negative")
	ErrInvalidDomain  = errors.New("entry domain is invalid")
	ErrEntryNotFound  = errors.New("revenue entry not found")
)

// RevenueError carries extra context for a revenue failure
type RevenueError struct {
	Err     error  // Base error
	Details string // Additional detail
}

func (e *RevenueError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RevenueError) Unwrap() error {
	return e.Err
}

func NewRevenueError(err error, details string) *RevenueError {
	return &RevenueError{
		Err:     err,
		Details: details,
	}
}
