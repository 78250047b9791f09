// Package request builds dispatchable requests from a resolved Config or from
// a saved request, and executes them over HTTP.
package request

import (
	"context"
	"fmt"
	"strings"

	"github.com/blackcoderx/relay/pkg/config"
)

// Request is one dispatchable call.
type Request interface {
	// Type is the kind written to a saved request's marker file.
	Type() config.RequestType
	// Execute performs the call.
	Execute(ctx context.Context, client *Client) (*Response, error)
	// Metadata serialises everything except the body.
	Metadata() ([]byte, error)
	// Body returns the raw body text and whether one is set.
	Body() (string, bool)
	// SetHeaderIfAbsent adds a header unless one with the same name exists.
	SetHeaderIfAbsent(key, value string)
}

// Build creates the request described by cfg.
func Build(cfg *config.Config) (Request, error) {
	switch t := cfg.RequestType(); t {
	case config.Rest:
		if cfg.URL() == "" {
			return nil, ErrMissingURI
		}
		r := &RestRequest{
			Method:   cfg.Method(),
			URI:      cfg.URL(),
			Headers:  cfg.Headers(),
			FormData: cfg.FormData(),
		}
		if body, ok := cfg.Body(); ok {
			r.SetBody(body)
		}
		return r, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnimplemented, t)
	}
}

// FromSaved reconstructs a request from the three parts of a saved request:
// the marker naming its type, the metadata document and the optional body.
func FromSaved(marker string, metadata []byte, body *string) (Request, error) {
	t, err := config.ParseRequestType(strings.TrimSpace(marker))
	if err != nil {
		return nil, err
	}

	switch t {
	case config.Rest:
		r, err := decodeRest(metadata)
		if err != nil {
			return nil, err
		}
		if body != nil {
			r.SetBody(*body)
		}
		return r, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnimplemented, t)
	}
}
