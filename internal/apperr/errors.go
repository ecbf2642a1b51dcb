// Package apperr defines the error taxonomy for upstream API operations.
//
// Callers branch on kind with errors.Is / errors.As; the Error() strings
// keep the exact wire format that tool consumers already depend on.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when the upstream credential is absent.
var ErrNotConfigured = errors.New("Notion API credentials not configured")

// UpstreamError is a non-success response from the upstream API.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("HTTP error: %d - %s", e.Status, e.Body)
}

// TransportError is a request that could not be completed at all
// (connection refused, timeout, DNS failure).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Request error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UnexpectedError wraps any other failure during decoding or shaping.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("Unexpected error: %v", e.Err)
}

func (e *UnexpectedError) Unwrap() error { return e.Err }
