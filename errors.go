package elasticemail

import (
	"errors"

	"github.com/elasticemail/client-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrInvalidFormat is returned when the response format is neither json nor xml.
	ErrInvalidFormat = apierrors.ErrInvalidFormat

	// ErrUnauthorized is returned when the API rejects the key (401 or 403).
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrNotFound is returned for 404 responses.
	ErrNotFound = apierrors.ErrNotFound

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrInvalidEnum is returned for enumeration values or names outside the closed set.
	ErrInvalidEnum = errors.New("invalid enumeration value")
)

// ElasticEmailError is implemented by the failures the API client returns.
type ElasticEmailError interface {
	error
	ElasticEmailError() // marker method
}

// APIError is a failure reported by the API. Message holds the provider's
// text unchanged, e.g. "Email has expired and the status is unknown.".
// A 2xx response whose envelope reports success=false is an APIError too.
type APIError = apierrors.APIError

// NetworkError is a transport failure: the request produced no response.
// It unwraps to the cause, so context.DeadlineExceeded and context.Canceled
// can be matched with errors.Is.
type NetworkError = apierrors.NetworkError

var (
	_ ElasticEmailError = (*APIError)(nil)
	_ ElasticEmailError = (*NetworkError)(nil)
)
