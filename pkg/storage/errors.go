package storage

import (
	"errors"
	"fmt"
)

var (
	ErrProjectNotFound       = errors.New("no relay project found, run 'relay init' first")
	ErrProjectExists         = errors.New("project already exists")
	ErrNothingToPrint        = errors.New("nothing to print, the last call did not write a response file")
	ErrNoEnvironmentSelected = errors.New("no environment selected, use -se=<env>")
	ErrInvalidRequestName    = errors.New("invalid request name")
	ErrIncompatibleProject   = errors.New("incompatible project version")
	ErrSaveDirectory         = errors.New("cannot create request directory")
)

// EnvironmentNotFoundError is returned when selecting an unknown environment.
type EnvironmentNotFoundError struct {
	Name string
}

func (e *EnvironmentNotFoundError) Error() string {
	return fmt.Sprintf("environment %q not found", e.Name)
}

// SavedRequestNotFoundError is returned when calling a request that was never
// saved.
type SavedRequestNotFoundError struct {
	Name string
}

func (e *SavedRequestNotFoundError) Error() string {
	return fmt.Sprintf("saved request %q not found", e.Name)
}
