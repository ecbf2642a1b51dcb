package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestUpstreamError_MessageFormat(t *testing.T) {
	err := &UpstreamError{Status: 404, Body: `{"message":"not found"}`}
	want := `HTTP error: 404 - {"message":"not found"}`
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestTransportError_WrapsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := fmt.Errorf("search: %w", &TransportError{Err: cause})

	var transport *TransportError
	if !errors.As(err, &transport) {
		t.Fatal("errors.As should find TransportError through wrapping")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause through Unwrap")
	}
	if transport.Error() != "Request error: dial tcp: connection refused" {
		t.Errorf("message = %q", transport.Error())
	}
}

func TestUnexpectedError_WrapsCause(t *testing.T) {
	cause := errors.New("invalid character 'n'")
	err := &UnexpectedError{Err: cause}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}
	if err.Error() != "Unexpected error: invalid character 'n'" {
		t.Errorf("message = %q", err.Error())
	}
}
