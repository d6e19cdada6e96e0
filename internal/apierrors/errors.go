// Package apierrors provides shared error types for the Elastic Email client.
package apierrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrInvalidFormat is returned when an unknown response format is configured.
	ErrInvalidFormat = errors.New("invalid response format")

	// ErrUnauthorized is returned when the API key is rejected.
	ErrUnauthorized = errors.New("invalid or unauthorized API key")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// APIError is a failure reported by the Elastic Email API, either through a
// non-2xx status or through an envelope with success set to false.
// Message is the provider's text, unmodified.
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
	// Err is set when the response body could not be decoded.
	Err error
}

func (e *APIError) Error() string {
	if e.Endpoint != "" {
		if e.Message != "" {
			return fmt.Sprintf("API error %d on %s: %s", e.StatusCode, e.Endpoint, e.Message)
		}
		return fmt.Sprintf("API error %d on %s", e.StatusCode, e.Endpoint)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Unwrap returns the decode error, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401, 403:
		return target == ErrUnauthorized
	case 404:
		return target == ErrNotFound
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// ElasticEmailError implements the ElasticEmailError marker interface.
func (e *APIError) ElasticEmailError() {}

// NetworkError represents a transport-level failure: connection errors,
// timeouts, and cancelled contexts.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ElasticEmailError implements the ElasticEmailError marker interface.
func (e *NetworkError) ElasticEmailError() {}
