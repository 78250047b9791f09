package main

import (
	"errors"

	"github.com/blackcoderx/relay/pkg/config"
	"github.com/blackcoderx/relay/pkg/request"
	"github.com/blackcoderx/relay/pkg/storage"
)

const (
	exitFailure       = 1
	exitUsage         = 2
	exitProject       = 3
	exitUpstream      = 4
	exitUnimplemented = 70
)

var projectErrors = []error{
	storage.ErrProjectNotFound,
	storage.ErrProjectExists,
	storage.ErrNothingToPrint,
	storage.ErrNoEnvironmentSelected,
	storage.ErrInvalidRequestName,
	storage.ErrIncompatibleProject,
	storage.ErrSaveDirectory,
}

func exitCode(err error) int {
	var (
		parseErr    *config.ParseError
		upstreamErr *request.UpstreamError
		envErr      *storage.EnvironmentNotFoundError
		savedErr    *storage.SavedRequestNotFoundError
		schemaErr   *storage.ProjectSchemaError
	)

	switch {
	case errors.As(err, &parseErr), errors.Is(err, request.ErrMissingURI):
		return exitUsage
	case errors.As(err, &upstreamErr):
		return exitUpstream
	case errors.Is(err, request.ErrUnimplemented):
		return exitUnimplemented
	case errors.As(err, &envErr), errors.As(err, &savedErr), errors.As(err, &schemaErr):
		return exitProject
	}
	for _, target := range projectErrors {
		if errors.Is(err, target) {
			return exitProject
		}
	}
	return exitFailure
}
