package errors

import (
	"net/http"

	"github.com/antoniopd1/mercado-local-mex/internal/errors"
)

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

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
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

// Is matches another BaseError with the same code and message, so values derived
// through WithDetails still compare equal to the predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.message == t.message
}

// Predefined error types
var (
	// Authentication errors
	ErrInvalidCredential = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIAL",
		"Invalid or expired authentication credential",
		"",
	)

	ErrTooEarly = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_USED_TOO_EARLY",
		"Your device clock appears to be out of sync. Please sync your clock and sign in again",
		"",
	)

	ErrIdentityProvisioningFailed = NewBaseError(
		http.StatusInternalServerError,
		"IDENTITY_PROVISIONING_FAILED",
		"Could not set up your account, please try again",
		"",
	)

	ErrIdentityUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"IDENTITY_PROVIDER_UNAVAILABLE",
		"Sign-in verification is temporarily unavailable, please try again",
		"",
	)

	// Entitlement errors
	ErrUnknownCustomer = NewBaseError(
		http.StatusNotFound,
		"UNKNOWN_CUSTOMER",
		"No user is linked to this payment customer",
		"",
	)

	ErrNoBusinessRegistered = NewBaseError(
		http.StatusBadRequest,
		"NO_BUSINESS_REGISTERED",
		"You must have a registered business to create offers",
		"",
	)

	ErrBusinessAlreadyExists = NewBaseError(
		http.StatusConflict,
		"BUSINESS_ALREADY_EXISTS",
		"You already have a registered business",
		"",
	)

	// Access control errors
	ErrNotBusinessOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_BUSINESS_OWNER",
		"You must be a business owner with an active subscription to perform this action",
		"",
	)

	ErrNotBusinessObjectOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_OBJECT_OWNER",
		"You do not have permission to modify this business",
		"",
	)

	ErrNotOfferObjectOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_OBJECT_OWNER",
		"You do not have permission to modify this offer",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have permission to perform this action",
		"",
	)

	ErrStaffOnly = NewBaseError(
		http.StatusForbidden,
		"STAFF_ONLY",
		"This action is restricted to staff",
		"",
	)

	// Payment processor errors
	ErrUpstreamProcessor = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_PROCESSOR_ERROR",
		"The payment processor could not complete the request, please try again",
		"",
	)

	ErrInvalidWebhook = NewBaseError(
		http.StatusBadRequest,
		"INVALID_WEBHOOK",
		"Invalid webhook payload or signature",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"Input validation failed",
		"",
	)

	// Resource errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrBusinessNotFound = NewBaseError(
		http.StatusNotFound,
		"BUSINESS_NOT_FOUND",
		"Business not found",
		"",
	)

	ErrOfferNotFound = NewBaseError(
		http.StatusNotFound,
		"OFFER_NOT_FOUND",
		"Offer not found",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
