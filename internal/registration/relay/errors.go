package relay

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured    = errors.New("relay destination not configured")
	ErrTransport        = errors.New("external endpoint unreachable")
	ErrExternalServer   = errors.New("external endpoint reported a server error")
	ErrUnexpectedStatus = errors.New("external endpoint returned an unexpected status")
)

// StatusError is returned when the external endpoint answers with a failure status.
// It unwraps to ErrExternalServer or ErrUnexpectedStatus.
type StatusError struct {
	StatusCode int
	kind       error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: status %d", e.kind, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return e.kind
}
