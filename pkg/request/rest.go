package request

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/blackcoderx/relay/pkg/config"
)

const (
	DefaultContentType = "application/json"
	DefaultAccept      = "application/json"
	formContentType    = "application/x-www-form-urlencoded"
)

// RestRequest is a plain HTTP request. When FormData is non-empty it is sent
// url-encoded and the raw body is ignored.
type RestRequest struct {
	Method   config.Method     `json:"method"`
	URI      string            `json:"uri"`
	Headers  map[string]string `json:"headers"`
	FormData map[string]string `json:"form_data"`

	body *string
}

func decodeRest(metadata []byte) (*RestRequest, error) {
	var r RestRequest
	if err := json.Unmarshal(metadata, &r); err != nil {
		return nil, fmt.Errorf("failed to parse request metadata: %w", err)
	}
	if r.Method == "" {
		r.Method = config.Get
	}
	if !r.Method.Valid() {
		return nil, fmt.Errorf("unsupported method %q in request metadata", r.Method)
	}
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	if r.FormData == nil {
		r.FormData = make(map[string]string)
	}
	return &r, nil
}

func (r *RestRequest) Type() config.RequestType { return config.Rest }

func (r *RestRequest) Body() (string, bool) {
	if r.body == nil {
		return "", false
	}
	return *r.body, true
}

// SetBody replaces the raw body text.
func (r *RestRequest) SetBody(body string) {
	r.body = &body
}

func (r *RestRequest) SetHeaderIfAbsent(key, value string) {
	for k := range r.Headers {
		if strings.EqualFold(k, key) {
			return
		}
	}
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
}

// Metadata returns the indented JSON of the request without its body.
func (r *RestRequest) Metadata() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request metadata: %w", err)
	}
	return data, nil
}

// HTTPRequest prepares the net/http request. Default Content-Type and Accept
// headers are set first so caller headers override them.
func (r *RestRequest) HTTPRequest(ctx context.Context) (*http.Request, error) {
	var body io.Reader
	contentType := DefaultContentType
	if len(r.FormData) > 0 {
		form := url.Values{}
		for k, v := range r.FormData {
			form.Set(k, v)
		}
		body = strings.NewReader(form.Encode())
		contentType = formContentType
	} else if r.body != nil {
		body = strings.NewReader(*r.body)
	}

	req, err := http.NewRequestWithContext(ctx, string(r.Method), r.URI, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", DefaultAccept)
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

func (r *RestRequest) Execute(ctx context.Context, client *Client) (*Response, error) {
	req, err := r.HTTPRequest(ctx)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, req)
}
