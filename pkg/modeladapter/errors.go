package modeladapter

import "fmt"

// StatusError is returned when the API responds with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// TransportError is returned when the request could not be completed at the
// network level: DNS, connect, timeout, cancellation or a broken body read.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError is returned when a 2xx response body is not valid JSON for the
// destination type.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
