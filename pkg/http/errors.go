package http

import "fmt"

// TransportError indicates a network-level failure (DNS, connection refused,
// timeout) before a response could be read.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error for %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
