package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/blackcoderx/relay/pkg/config"
	"github.com/blackcoderx/relay/pkg/request"
)

// Files of a saved request directory.
const (
	MetadataFile = "metadata.json"
	BodyFile     = "body.json"
	MarkerFile   = ".marker"
)

// RequestDir validates name and returns the directory the request lives in.
// The directory must sit strictly inside the root.
func (s *Store) RequestDir(name string) (string, error) {
	if strings.TrimSpace(name) == "" || filepath.IsAbs(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidRequestName, name)
	}

	absRoot, err := filepath.Abs(s.root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project root: %w", err)
	}
	absDir, err := filepath.Abs(filepath.Join(absRoot, name))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidRequestName, name)
	}

	rel, err := filepath.Rel(absRoot, absDir)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q is outside the project", ErrInvalidRequestName, name)
	}
	if rel == Dir || strings.HasPrefix(rel, Dir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q is reserved", ErrInvalidRequestName, name)
	}
	return absDir, nil
}

// SaveRequest writes req under name. When a request of that name already
// existed the returned string is a unified diff of its metadata.
func (s *Store) SaveRequest(req request.Request, name string) (string, error) {
	if !s.Exists() {
		return "", ErrProjectNotFound
	}
	dir, err := s.RequestDir(name)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return "", fmt.Errorf("%w: %s is not a directory", ErrSaveDirectory, dir)
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("%w: %v", ErrSaveDirectory, err)
		}
	case err != nil:
		return "", fmt.Errorf("%w: %v", ErrSaveDirectory, err)
	}

	metadata, err := req.Metadata()
	if err != nil {
		return "", err
	}
	body, _ := req.Body()

	var diff string
	metadataPath := filepath.Join(dir, MetadataFile)
	if previous, err := os.ReadFile(metadataPath); err == nil && string(previous) != string(metadata) {
		diff = metadataDiff(name, string(previous), string(metadata))
	}

	files := []struct {
		name string
		data []byte
	}{
		{MetadataFile, metadata},
		{BodyFile, []byte(body)},
		{MarkerFile, []byte(req.Type().String())},
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.name), f.data, 0644); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", f.name, err)
		}
	}

	s.logger.Debug("request saved", "name", name, "dir", dir, "type", req.Type())
	return diff, nil
}

func metadataDiff(name, previous, current string) string {
	file := filepath.ToSlash(filepath.Join(name, MetadataFile))
	edits := udiff.Strings(previous, current)
	unified, err := udiff.ToUnified("a/"+file, "b/"+file, previous, edits, 3)
	if err != nil {
		return fmt.Sprintf("--- a/%s\n+++ b/%s\n(diff generation failed)\n", file, file)
	}
	return unified
}

// LoadRequest reads the request saved under name. effector is applied to the
// metadata and body text before the request is rebuilt. An empty or missing
// body file means the request has no body.
func (s *Store) LoadRequest(name string, effector config.Effector) (request.Request, error) {
	if !s.Exists() {
		return nil, ErrProjectNotFound
	}
	dir, err := s.RequestDir(name)
	if err != nil {
		return nil, err
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, &SavedRequestNotFoundError{Name: name}
	}

	marker, err := os.ReadFile(filepath.Join(dir, MarkerFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read request marker: %w", err)
	}
	metadata, err := os.ReadFile(filepath.Join(dir, MetadataFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read request metadata: %w", err)
	}

	var body *string
	if data, err := os.ReadFile(filepath.Join(dir, BodyFile)); err == nil && len(data) > 0 {
		text := effector.Apply(string(data))
		body = &text
	}

	req, err := request.FromSaved(string(marker), []byte(effector.Apply(string(metadata))), body)
	if err != nil {
		return nil, fmt.Errorf("saved request %q: %w", name, err)
	}
	s.logger.Debug("request loaded", "name", name, "type", req.Type())
	return req, nil
}

// DeleteRequest removes the directory of the request saved under name.
func (s *Store) DeleteRequest(name string) error {
	dir, err := s.RequestDir(name)
	if err != nil {
		return err
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return &SavedRequestNotFoundError{Name: name}
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to delete request %q: %w", name, err)
	}
	s.logger.Debug("request deleted", "name", name, "dir", dir)
	return nil
}
