package aggregator

import (
	"errors"
	"fmt"

	"marketscout/internal/fetcher"
)

// Kind classifies a whole-call failure.
type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindUpstreamFailure Kind = "upstream_failure"
	KindTimeout         Kind = "timeout"
	KindRateLimited     Kind = "rate_limited"
	KindUnauthorized    Kind = "unauthorized"
	KindForbidden       Kind = "forbidden"
)

// Sentinels for errors.Is. Every *Error matches exactly one of them.
var (
	ErrNotFound        = errors.New("not found")
	ErrUpstreamFailure = errors.New("upstream failure")
	ErrTimeout         = errors.New("timeout")
	ErrRateLimited     = errors.New("rate limited")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
)

var sentinels = map[Kind]error{
	KindNotFound:        ErrNotFound,
	KindUpstreamFailure: ErrUpstreamFailure,
	KindTimeout:         ErrTimeout,
	KindRateLimited:     ErrRateLimited,
	KindUnauthorized:    ErrUnauthorized,
	KindForbidden:       ErrForbidden,
}

// Error is the single failure a Get call surfaces. Source names the upstream
// on the hard-requirement path that caused it, if any.
type Error struct {
	Kind   Kind
	Source string
	Err    error
}

func (e *Error) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Source, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && target == s
}

// KindOf reports the Kind carried by err, or "" if err is not an *Error.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

func notFound(source, format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Source: source, Err: fmt.Errorf(format, args...)}
}

// upstreamFailure escalates a required source's failure. Auth, quota and
// timeout kinds pass through; everything else is an upstream failure.
func upstreamFailure(source string, err error) *Error {
	kind := KindUpstreamFailure
	switch fetcher.KindOf(err) {
	case fetcher.KindTimeout:
		kind = KindTimeout
	case fetcher.KindRateLimited:
		kind = KindRateLimited
	case fetcher.KindUnauthorized:
		kind = KindUnauthorized
	case fetcher.KindForbidden:
		kind = KindForbidden
	}
	return &Error{Kind: kind, Source: source, Err: err}
}
