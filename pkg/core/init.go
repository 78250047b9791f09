package core

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/blackcoderx/relay/pkg/storage"
)

// Prompter asks the user for the name of a new project. def is offered when
// nothing is entered.
type Prompter interface {
	ProjectName(ctx context.Context, def string) (string, error)
}

// FormPrompter asks through an interactive form.
type FormPrompter struct{}

func (FormPrompter) ProjectName(ctx context.Context, def string) (string, error) {
	var name string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Name of the relay project in this directory").
				Placeholder(def).
				Value(&name),
		),
	)
	if err := form.RunWithContext(ctx); err != nil {
		return "", fmt.Errorf("failed to read project name: %w", err)
	}
	if name = strings.TrimSpace(name); name == "" {
		name = def
	}
	return name, nil
}

// LinePrompter reads one line from in.
type LinePrompter struct {
	In  io.Reader
	Out io.Writer
}

func (p LinePrompter) ProjectName(_ context.Context, def string) (string, error) {
	fmt.Fprintf(p.Out, "Provide the name of the project [%s]: ", def)
	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read project name: %w", err)
	}
	if name := strings.TrimSpace(line); name != "" {
		return name, nil
	}
	return def, nil
}

// DefaultPrompter uses the form on a terminal and plain line input otherwise.
func DefaultPrompter(in *os.File, out io.Writer) Prompter {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return FormPrompter{}
	}
	return LinePrompter{In: in, Out: out}
}

// InitializeProject creates the project document and the default settings
// file in the project folder.
func InitializeProject(ctx context.Context, store *storage.Store, prompter Prompter) (*storage.Project, error) {
	if store.Exists() {
		return nil, storage.ErrProjectExists
	}

	def := "relay"
	if abs, err := filepath.Abs(store.Root()); err == nil {
		def = filepath.Base(abs)
	}
	name, err := prompter.ProjectName(ctx, def)
	if err != nil {
		return nil, err
	}

	project, err := store.Init(name)
	if err != nil {
		return nil, err
	}
	if err := WriteDefaultSettings(filepath.Join(store.Dir(), SettingsFile)); err != nil {
		return nil, err
	}
	return project, nil
}
