package apierrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "status code only",
			err:      &APIError{StatusCode: 500},
			expected: "API error 500",
		},
		{
			name:     "with message",
			err:      &APIError{StatusCode: 200, Message: "Email has expired and the status is unknown."},
			expected: "API error 200: Email has expired and the status is unknown.",
		},
		{
			name:     "with endpoint",
			err:      &APIError{StatusCode: 502, Endpoint: "email/send"},
			expected: "API error 502 on email/send",
		},
		{
			name:     "with message and endpoint",
			err:      &APIError{StatusCode: 200, Endpoint: "segment/add", Message: "Segment already exists"},
			expected: "API error 200 on segment/add: Segment already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		target   error
		expected bool
	}{
		{"401 matches ErrUnauthorized", &APIError{StatusCode: 401}, ErrUnauthorized, true},
		{"403 matches ErrUnauthorized", &APIError{StatusCode: 403}, ErrUnauthorized, true},
		{"401 does not match ErrNotFound", &APIError{StatusCode: 401}, ErrNotFound, false},
		{"404 matches ErrNotFound", &APIError{StatusCode: 404}, ErrNotFound, true},
		{"429 matches ErrRateLimited", &APIError{StatusCode: 429}, ErrRateLimited, true},
		{"200 envelope error matches nothing", &APIError{StatusCode: 200, Message: "x"}, ErrNotFound, false},
		{"500 does not match any sentinel", &APIError{StatusCode: 500}, ErrUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.expected {
				t.Errorf("errors.Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAPIError_Unwrap(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &APIError{StatusCode: 200, Message: "<html>", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the decode error")
	}

	wrapped := fmt.Errorf("send: %w", err)
	var apiErr *APIError
	if !errors.As(wrapped, &apiErr) {
		t.Fatal("errors.As should find *APIError")
	}
	if apiErr.Message != "<html>" {
		t.Errorf("Message = %q, want <html>", apiErr.Message)
	}
}

func TestNetworkError(t *testing.T) {
	err := &NetworkError{Err: context.DeadlineExceeded, URL: "https://api.example.com/v2/email/send"}

	if got, want := err.Error(), "network error: context deadline exceeded"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("NetworkError should unwrap to context.DeadlineExceeded")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("NetworkError should not match API sentinels")
	}
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{ErrMissingAPIKey, ErrInvalidFormat, ErrUnauthorized, ErrNotFound, ErrRateLimited}
	for _, s := range sentinels {
		if s.Error() == "" {
			t.Errorf("sentinel %v has empty message", s)
		}
	}
}
