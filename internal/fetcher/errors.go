package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind represents the category of failure that occurred during a fetch operation
type ErrorKind string

const (
	// KindTimeout indicates the per-task deadline elapsed before the upstream answered
	KindTimeout ErrorKind = "timeout"
	// KindUnauthorized indicates the upstream rejected our credentials (HTTP 401)
	KindUnauthorized ErrorKind = "unauthorized"
	// KindForbidden indicates the upstream refused access to the resource (HTTP 403)
	KindForbidden ErrorKind = "forbidden"
	// KindRateLimited indicates the upstream quota was exhausted (HTTP 429)
	KindRateLimited ErrorKind = "rate_limited"
	// KindUpstream indicates any other non-2xx response
	KindUpstream ErrorKind = "upstream"
	// KindNetwork indicates a transport-level error (connection refused, DNS, etc.)
	KindNetwork ErrorKind = "network"
	// KindValidation indicates the response was received but could not be decoded
	KindValidation ErrorKind = "validation"
)

// FetchError represents a structured error from a single upstream call
type FetchError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Cause      error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// NewNetworkError creates a network error
func NewNetworkError(cause error) *FetchError {
	return &FetchError{
		Kind:    KindNetwork,
		Message: "network request failed",
		Cause:   cause,
	}
}

// NewTimeoutError creates a timeout error
func NewTimeoutError(cause error) *FetchError {
	return &FetchError{
		Kind:    KindTimeout,
		Message: "request timed out",
		Cause:   cause,
	}
}

// NewValidationError creates a validation error
func NewValidationError(message string) *FetchError {
	return &FetchError{
		Kind:    KindValidation,
		Message: message,
	}
}

// ClassifyHTTPError classifies a non-2xx HTTP status code into a FetchError
func ClassifyHTTPError(statusCode int) *FetchError {
	switch statusCode {
	case http.StatusUnauthorized:
		return &FetchError{Kind: KindUnauthorized, StatusCode: statusCode, Message: "invalid or missing API key"}
	case http.StatusForbidden:
		return &FetchError{Kind: KindForbidden, StatusCode: statusCode, Message: "access to resource denied"}
	case http.StatusTooManyRequests:
		return &FetchError{Kind: KindRateLimited, StatusCode: statusCode, Message: "rate limit exceeded"}
	default:
		return &FetchError{
			Kind:       KindUpstream,
			StatusCode: statusCode,
			Message:    fmt.Sprintf("upstream returned HTTP %d", statusCode),
		}
	}
}

// ClassifyTransportError turns an error returned by the HTTP client into a
// FetchError. Deadline errors become KindTimeout; everything else is KindNetwork.
func ClassifyTransportError(err error) *FetchError {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewTimeoutError(err)
	}
	return NewNetworkError(err)
}

// KindOf reports the ErrorKind carried by err, or "" if err is not a FetchError.
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}
