package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind int

const (
	// ErrorKindTransport: the request never produced a response.
	ErrorKindTransport ErrorKind = iota
	// ErrorKindBackend: the backend answered with an error status.
	ErrorKindBackend
	// ErrorKindDecode: the response body did not match any known shape.
	ErrorKindDecode
)

// Error is the single error type the gateway returns. StatusCode and
// BackendMessage are only set for ErrorKindBackend.
type Error struct {
	Kind           ErrorKind
	Op             string
	StatusCode     int
	BackendMessage string
	Err            error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrorKindBackend:
		if e.BackendMessage != "" {
			return fmt.Sprintf("%s: backend returned %d: %s", e.Op, e.StatusCode, e.BackendMessage)
		}
		return fmt.Sprintf("%s: backend returned %d", e.Op, e.StatusCode)
	case ErrorKindDecode:
		return fmt.Sprintf("%s: decoding response: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Message returns the backend-provided message when there is one, the
// fallback otherwise. Views use it to keep raw transport errors off the
// screen.
func Message(err error, fallback string) string {
	var gerr *Error
	if errors.As(err, &gerr) && gerr.BackendMessage != "" {
		return gerr.BackendMessage
	}
	return fallback
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var gerr *Error
	return errors.As(err, &gerr) && gerr.Kind == ErrorKindBackend && gerr.StatusCode == http.StatusNotFound
}
