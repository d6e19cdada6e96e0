package api

import "github.com/elasticemail/client-go/internal/apierrors"

// Error types shared with the public package.
type (
	APIError     = apierrors.APIError
	NetworkError = apierrors.NetworkError
)

// Common API errors that can be checked with errors.Is.
var (
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey
	ErrInvalidFormat = apierrors.ErrInvalidFormat
	ErrUnauthorized  = apierrors.ErrUnauthorized
	ErrNotFound      = apierrors.ErrNotFound
	ErrRateLimited   = apierrors.ErrRateLimited
)
