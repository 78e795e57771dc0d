package shipthis

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a single error object inside a response envelope.
type APIError struct {
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Error is the base error for unclassified client failures.
type Error struct {
	Message    string
	StatusCode int
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
	}

	return e.Message
}

// AuthError reports an authentication or authorization failure (401/403).
type AuthError struct {
	Message    string
	StatusCode int
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
}

// RequestError reports every non-auth failure: transport errors, timeouts,
// malformed response bodies, non-2xx statuses, and application-level
// envelopes with success=false. StatusCode is 0 for transport failures and
// 408 for timeouts. Details carries the parsed response envelope when one
// was available.
type RequestError struct {
	Message    string
	StatusCode int
	Details    map[string]interface{}
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
	}

	return e.Message
}

// IsAuthError checks if the error is an authentication failure.
func IsAuthError(err error) bool {
	authErr := &AuthError{}

	return errors.As(err, &authErr)
}

// IsRequestError checks if the error is a request failure.
func IsRequestError(err error) bool {
	reqErr := &RequestError{}

	return errors.As(err, &reqErr)
}

// IsTimeout checks if the error is a timeout-classified request failure.
func IsTimeout(err error) bool {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode == http.StatusRequestTimeout
	}

	return false
}

// IsNotFound checks if the error is a not-found request failure.
func IsNotFound(err error) bool {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode == http.StatusNotFound
	}

	return false
}
