package request

import (
	"errors"
	"fmt"
)

var (
	// ErrUnimplemented is returned when dispatching a request type that has no
	// implementation yet.
	ErrUnimplemented = errors.New("request type not implemented")

	// ErrMissingURI is returned when a request is built without a URI.
	ErrMissingURI = errors.New("no uri given, use -u=<uri>")
)

// UpstreamError reports a response outside the 2xx range.
type UpstreamError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *UpstreamError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("request failed with status %s", e.Status)
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}
