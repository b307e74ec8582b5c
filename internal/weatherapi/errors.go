package weatherapi

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is wrapped by configuration errors raised before any request
var ErrMissingAPIKey = errors.New("weather API key is not defined")

// ErrorKind classifies a client failure
type ErrorKind int

const (
	KindConfig   ErrorKind = iota // credential missing, no request attempted
	KindNetwork                   // transport failure: DNS, timeout, connection reset
	KindProvider                  // non-2xx response or unusable body
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindNetwork:
		return "network"
	case KindProvider:
		return "provider"
	default:
		return "unknown"
	}
}

// Error is returned by every Client operation that fails
type Error struct {
	Kind       ErrorKind
	Op         string // "forecast" or "search"
	StatusCode int    // set for provider errors that carried an HTTP status
	Err        error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s error (status %d): %v", e.Op, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s error: %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

func newConfigError(op string) *Error {
	return &Error{Kind: KindConfig, Op: op, Err: ErrMissingAPIKey}
}

func newNetworkError(op string, err error) *Error {
	return &Error{Kind: KindNetwork, Op: op, Err: err}
}

func newProviderError(op string, status int, err error) *Error {
	return &Error{Kind: KindProvider, Op: op, StatusCode: status, Err: err}
}

// KindOf returns the kind of a client error and whether err is one
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsConfig reports whether err is a missing-credential error
func IsConfig(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindConfig
}

// IsNetwork reports whether err is a transport failure
func IsNetwork(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindNetwork
}

// IsProvider reports whether err came from a rejected or unusable response
func IsProvider(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindProvider
}
