// Package printer writes response bodies to the terminal or to files.
package printer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Printer outputs one response body.
type Printer interface {
	Print(data []byte) error
}

var prettyOptions = &pretty.Options{Width: 80, Indent: "  "}

// Format pretty-prints JSON. Anything else is returned unchanged.
func Format(data []byte) []byte {
	if len(data) == 0 || !gjson.ValidBytes(data) {
		return data
	}
	return pretty.PrettyOptions(data, prettyOptions)
}

// Terminal prints to a writer, normally standard output.
type Terminal struct {
	out       io.Writer
	highlight bool
}

type TerminalOption func(*Terminal)

// WithHighlight renders JSON with syntax highlighting.
func WithHighlight(on bool) TerminalOption {
	return func(t *Terminal) {
		t.highlight = on
	}
}

func NewTerminal(out io.Writer, opts ...TerminalOption) *Terminal {
	t := &Terminal{out: out}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Terminal) Print(data []byte) error {
	text := string(Format(data))
	if t.highlight && gjson.ValidBytes(data) {
		text = HighlightJSON(text)
	}
	if len(text) > 0 && text[len(text)-1] != '\n' {
		text += "\n"
	}
	_, err := io.WriteString(t.out, text)
	return err
}

// File writes to a path, creating missing parent directories. When echo is
// set the response is printed there too.
type File struct {
	path string
	echo Printer
}

func NewFile(path string, echo Printer) *File {
	return &File{path: path, echo: echo}
}

// Path is the file the printer writes.
func (f *File) Path() string {
	return f.path
}

func (f *File) Print(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(f.path, Format(data), 0644); err != nil {
		return fmt.Errorf("failed to write response file: %w", err)
	}
	if f.echo != nil {
		return f.echo.Print(data)
	}
	return nil
}

// PrintFile prints the contents of path, used to replay a stored response.
func PrintFile(p Printer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return p.Print(data)
}
