package apierrors

import (
	"net/http"
)

// Machine-readable error codes returned to API clients
const (
	CodeInvalidInput          = "INVALID_INPUT"
	CodeNotFound              = "NOT_FOUND"
	CodeLinkNotFound          = "LINK_NOT_FOUND"
	CodeProductNotFound       = "PRODUCT_NOT_FOUND"
	CodeWithdrawalNotFound    = "WITHDRAWAL_NOT_FOUND"
	CodeInvalidAmount         = "INVALID_AMOUNT"
	CodeInvalidPaymentDetails = "INVALID_PAYMENT_DETAILS"
	CodeInvalidStatus         = "INVALID_STATUS"
	CodeInvalidTransition     = "INVALID_TRANSITION"
	CodeInternalError         = "INTERNAL_ERROR"
)

// APIError is an error with the HTTP status and client-safe message it should be reported with
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	// Internal is logged but never sent to the client
	Internal error
}

func (e *APIError) Error() string {
	if e.Internal != nil {
		return e.Message + ": " + e.Internal.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Internal
}

// NotFound creates a 404 error
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// BadRequest creates a 400 error
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// Conflict creates a 409 error
func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// InternalError creates a sanitized 500 error - never exposes internal details
func InternalError(internalErr error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Internal:   internalErr,
	}
}
