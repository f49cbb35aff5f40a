package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes grouped by concern
const (
	// Authentication errors (1000-1999)
	ErrInvalidCredentials    = "AUTH_001" // Wrong email/password combination
	ErrUserDisabled          = "AUTH_002" // Account deactivated
	ErrUserNotFound          = "AUTH_003" // Account does not exist
	ErrUserLocked            = "AUTH_004" // Account temporarily locked
	ErrPasswordExpired       = "AUTH_005" // Password must be rotated
	ErrInvalidToken          = "AUTH_006" // Malformed or unverifiable token
	ErrExpiredToken          = "AUTH_007" // Token past its expiry
	ErrInsufficientPrivilege = "AUTH_008" // Role does not allow the operation
	ErrUserAlreadyExists     = "AUTH_009" // Email already registered

	// Validation errors (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Request could not be parsed
	ErrMissingRequiredData = "VAL_002" // Required fields absent
	ErrInvalidFormat       = "VAL_003" // Field present but malformed

	// Domain errors (3000-3999)
	ErrNotFound          = "DOM_001" // Requested record does not exist
	ErrInvalidStage      = "DOM_002" // Unknown funnel stage
	ErrInvalidAllocation = "DOM_003" // Portfolio weights do not sum to 100

	// Server errors (5000-5999)
	ErrInternalServer    = "SRV_001" // Unexpected internal failure
	ErrDatabaseOperation = "SRV_002" // Database operation failed
	ErrExternalService   = "SRV_003" // Upstream integration failed
	ErrCommunication     = "SRV_004" // Transport-level failure
)

// httpStatusMap maps error codes to HTTP statuses
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrUserLocked:            http.StatusForbidden,
	ErrPasswordExpired:       http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrInvalidStage:          http.StatusBadRequest,
	ErrInvalidAllocation:     http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError is the standard error body returned to clients
type APIError struct {
	Code    string `json:"code"`              // Stable error code for the client
	Message string `json:"message,omitempty"` // Human readable description
	Details any    `json:"details,omitempty"` // Optional extra context
}

// WriteError writes a standardised error to the HTTP response
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error into an APIError with the given code
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
