package core

import (
	"errors"
	"fmt"
)

// ErrorType categorizes exchange errors for programmatic handling.
type ErrorType int

const (
	// ErrorTypeUnknown indicates an unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeRateLimit indicates the request weight or order rate was exceeded.
	ErrorTypeRateLimit
	// ErrorTypeAuthentication indicates invalid credentials or a bad signature.
	ErrorTypeAuthentication
	// ErrorTypeBadRequest indicates invalid request parameters.
	ErrorTypeBadRequest
	// ErrorTypeInsufficientFunds indicates the account lacks the required balance.
	ErrorTypeInsufficientFunds
	// ErrorTypeInvalidOrder indicates the order violates exchange rules.
	ErrorTypeInvalidOrder
	// ErrorTypeServerError indicates a server-side failure.
	ErrorTypeServerError
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	return [...]string{
		"UNKNOWN",
		"RATE_LIMIT",
		"AUTHENTICATION",
		"BAD_REQUEST",
		"INSUFFICIENT_FUNDS",
		"INVALID_ORDER",
		"SERVER_ERROR",
	}[t]
}

// Sentinel errors for signed calls attempted without the required credentials.
// They surface immediately and are never retried.
var (
	// ErrMissingAPIKey is returned when a signed endpoint is called with an
	// empty APIKey in the config.
	ErrMissingAPIKey = errors.New("api key is required for signed endpoints")
	// ErrMissingSecretKey is returned when request signing is attempted with
	// an empty SecretKey in the config.
	ErrMissingSecretKey = errors.New("secret key is required for request signing")
)

// LocalErrorCode is the sentinel code carried by an APIError when the exchange
// returned no structured error body and the failure was derived from the HTTP
// status alone.
const LocalErrorCode = -1

// APIError is a structured error reported by the exchange, or a local
// status-derived stand-in with Code == LocalErrorCode. It is constructed once
// and propagated to the caller unchanged.
type APIError struct {
	// Code is the exchange-assigned error code, always negative.
	Code int `json:"code"`
	// Message is the human-readable error description.
	Message string `json:"msg"`
	// Status is the HTTP status code of the response that carried the error.
	Status int `json:"status,omitempty"`
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("[binance] %s (%d/%d): %s", e.Type(), e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("[binance] %s (%d): %s", e.Type(), e.Code, e.Message)
}

// Type classifies the error by its exchange code, falling back to the HTTP
// status for local status-derived errors.
func (e *APIError) Type() ErrorType {
	if e.Code == LocalErrorCode {
		switch {
		case e.Status == 429 || e.Status == 418:
			return ErrorTypeRateLimit
		case e.Status == 401 || e.Status == 403:
			return ErrorTypeAuthentication
		case e.Status >= 500:
			return ErrorTypeServerError
		default:
			return ErrorTypeUnknown
		}
	}

	switch e.Code {
	case -1003, -1015:
		return ErrorTypeRateLimit
	case -1022, -2014, -2015:
		return ErrorTypeAuthentication
	case -2010, -2018, -2019:
		return ErrorTypeInsufficientFunds
	}

	switch {
	case e.Code > -2000 && e.Code <= -1000:
		return ErrorTypeBadRequest
	case e.Code > -3000 && e.Code <= -2000:
		return ErrorTypeInvalidOrder
	default:
		return ErrorTypeUnknown
	}
}

// AsAPIError extracts an APIError from err, unwrapping as needed.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsRateLimitError returns true if the error is a rate limit violation.
func IsRateLimitError(err error) bool {
	if e, ok := AsAPIError(err); ok {
		return e.Type() == ErrorTypeRateLimit
	}
	return false
}

// IsAuthenticationError returns true if the error is an authentication failure.
func IsAuthenticationError(err error) bool {
	if e, ok := AsAPIError(err); ok {
		return e.Type() == ErrorTypeAuthentication
	}
	return false
}
