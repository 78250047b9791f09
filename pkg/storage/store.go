package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/blang/semver"

	"github.com/blackcoderx/relay/pkg/config"
)

const (
	// Dir is the project folder inside the working directory.
	Dir = ".relay"
	// ProjectFile is the project document inside Dir.
	ProjectFile = "project.json"
)

// CurrentVersion is written to new documents. Documents with another major
// version are rejected.
var CurrentVersion = semver.MustParse("1.0.0")

// Store reads and writes a project rooted at one working directory. Every
// operation loads the whole document, changes it and writes it back; there
// is no locking between concurrent invocations.
type Store struct {
	root   string
	logger *slog.Logger
}

// StoreOption customises a Store.
type StoreOption func(*Store)

func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore returns a Store for the project under root.
func NewStore(root string, opts ...StoreOption) *Store {
	s := &Store{
		root:   root,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root is the directory saved requests and relative response files live in.
func (s *Store) Root() string {
	return s.root
}

// Dir returns the project folder path.
func (s *Store) Dir() string {
	return filepath.Join(s.root, Dir)
}

// ProjectPath returns the project document path.
func (s *Store) ProjectPath() string {
	return filepath.Join(s.root, Dir, ProjectFile)
}

// Exists reports whether a project document is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.ProjectPath())
	return err == nil
}

// Init creates a fresh project. It fails with ErrProjectExists when a document
// is already present.
func (s *Store) Init(name string) (*Project, error) {
	if s.Exists() {
		return nil, ErrProjectExists
	}
	if err := os.MkdirAll(s.Dir(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", Dir, err)
	}
	p := NewProject(name)
	if err := s.Save(p); err != nil {
		return nil, err
	}
	s.logger.Info("project initialised", "name", name, "path", s.ProjectPath())
	return p, nil
}

// Load reads, validates and version-checks the project document.
func (s *Store) Load() (*Project, error) {
	path := s.ProjectPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}

	if err := validateProject(path, data); err != nil {
		return nil, err
	}

	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse project file: %w", err)
	}
	if err := checkVersion(&p); err != nil {
		return nil, err
	}
	p.normalize()

	s.logger.Debug("project loaded", "name", p.Name, "selected_environment", p.SelectedEnvironment)
	return &p, nil
}

func checkVersion(p *Project) error {
	if p.Version == "" {
		p.Version = CurrentVersion.String()
		return nil
	}
	v, err := semver.Parse(p.Version)
	if err != nil {
		return fmt.Errorf("%w: %q is not a semantic version", ErrIncompatibleProject, p.Version)
	}
	if v.Major != CurrentVersion.Major {
		return fmt.Errorf("%w: file is %s, relay supports %d.x", ErrIncompatibleProject, v, CurrentVersion.Major)
	}
	return nil
}

// Save writes p through a temporary file and a rename.
func (s *Store) Save(p *Project) error {
	if p.Version == "" {
		p.Version = CurrentVersion.String()
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	if err := writeFileAtomic(s.ProjectPath(), data); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	s.logger.Debug("project saved", "path", s.ProjectPath())
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Update loads the project, applies fn and saves the result. Nothing is
// written when fn fails.
func (s *Store) Update(fn func(*Project) error) (*Project, error) {
	p, err := s.Load()
	if err != nil {
		return nil, err
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	if err := s.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Store) AddEnvValue(env, key, value string) error {
	_, err := s.Update(func(p *Project) error {
		p.SetEnvValue(env, key, value)
		return nil
	})
	return err
}

func (s *Store) RemoveEnvValue(env, key string) error {
	_, err := s.Update(func(p *Project) error {
		p.RemoveEnvValue(env, key)
		return nil
	})
	return err
}

func (s *Store) RemoveEnv(env string) error {
	_, err := s.Update(func(p *Project) error {
		p.RemoveEnv(env)
		return nil
	})
	return err
}

// SelectEnv persists env as the selected environment.
func (s *Store) SelectEnv(env string) error {
	_, err := s.Update(func(p *Project) error {
		return p.SelectEnv(env)
	})
	return err
}

// AddAuthorization stores token under the active authorization key.
func (s *Store) AddAuthorization(token string) error {
	_, err := s.Update(func(p *Project) error {
		p.SetAuthorization(token)
		return nil
	})
	return err
}

func (s *Store) RemoveAuthorization() error {
	_, err := s.Update(func(p *Project) error {
		p.RemoveAuthorization()
		return nil
	})
	return err
}

// UpdateLastCallPath records the response file of the last call. An empty
// path clears it.
func (s *Store) UpdateLastCallPath(path string) error {
	_, err := s.Update(func(p *Project) error {
		p.LastCallResponsePath = path
		return nil
	})
	return err
}

// LastCallPath returns the recorded response file, resolved against the root.
func (s *Store) LastCallPath() (string, error) {
	p, err := s.Load()
	if err != nil {
		return "", err
	}
	if p.LastCallResponsePath == "" {
		return "", ErrNothingToPrint
	}
	return s.Resolve(p.LastCallResponsePath), nil
}

// Effector returns the substitution for the selected environment. Without a
// project it is empty.
func (s *Store) Effector() (config.Effector, error) {
	p, err := s.Load()
	if errors.Is(err, ErrProjectNotFound) {
		return config.Effector{}, nil
	}
	if err != nil {
		return config.Effector{}, err
	}
	return p.Effector(), nil
}

// Resolve joins a relative path to the root.
func (s *Store) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.root, filepath.FromSlash(path))
}
