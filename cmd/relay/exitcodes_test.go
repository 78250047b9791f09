package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blackcoderx/relay/pkg/config"
	"github.com/blackcoderx/relay/pkg/request"
	"github.com/blackcoderx/relay/pkg/storage"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"parse", &config.ParseError{Token: "-h=x", Flag: "-h=", Reason: "r"}, exitUsage},
		{"missing uri", request.ErrMissingURI, exitUsage},
		{"upstream", fmt.Errorf("call: %w", &request.UpstreamError{StatusCode: 500}), exitUpstream},
		{"unimplemented", fmt.Errorf("%w: PROTO", request.ErrUnimplemented), exitUnimplemented},
		{"no project", storage.ErrProjectNotFound, exitProject},
		{"save dir", fmt.Errorf("%w: denied", storage.ErrSaveDirectory), exitProject},
		{"env", &storage.EnvironmentNotFoundError{Name: "x"}, exitProject},
		{"saved", &storage.SavedRequestNotFoundError{Name: "x"}, exitProject},
		{"schema", &storage.ProjectSchemaError{Path: "p"}, exitProject},
		{"other", errors.New("boom"), exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestReportError_UpstreamBody(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, &request.UpstreamError{StatusCode: 404, Status: "404 Not Found", Body: []byte(`{"error":"missing"}`)})

	assert.Contains(t, buf.String(), "404 Not Found")
	assert.Contains(t, buf.String(), `"error": "missing"`)
}
