package errors

import "net/http"

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Points-related errors
	ErrInsufficientPoints = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_POINTS",
		"Not enough points for this redemption",
		"",
	)

	ErrInvalidAmount = NewBaseError(
		http.StatusBadRequest,
		"INVALID_AMOUNT",
		"Amount must not be negative",
		"",
	)

	// Reward-related errors
	ErrRewardNotFound = NewBaseError(
		http.StatusNotFound,
		"REWARD_NOT_FOUND",
		"Reward not found",
		"",
	)

	// Ledger entry-related errors
	ErrEntryNotFound = NewBaseError(
		http.StatusNotFound,
		"ENTRY_NOT_FOUND",
		"Ledger entry not found",
		"",
	)

	ErrNotRedemption = NewBaseError(
		http.StatusUnprocessableEntity,
		"NOT_A_REDEMPTION",
		"Only redemption entries carry a voucher",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
