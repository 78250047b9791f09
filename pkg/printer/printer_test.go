package printer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackcoderx/relay/pkg/command"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": [1, 2]\n}\n", string(Format([]byte(`{"a":1,"b":[1,2]}`))))
	assert.Equal(t, "plain text", string(Format([]byte("plain text"))))
	assert.Empty(t, Format(nil))
}

func TestTerminal_Print(t *testing.T) {
	var buf bytes.Buffer
	p := NewTerminal(&buf)

	require.NoError(t, p.Print([]byte(`{"ok":true}`)))
	require.NoError(t, p.Print([]byte("not json")))

	assert.Equal(t, "{\n  \"ok\": true\n}\nnot json\n", buf.String())
}

func TestFile_Print(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "login", "response.json")
	var echo bytes.Buffer

	p := NewFile(path, NewTerminal(&echo))
	require.NoError(t, p.Print([]byte(`{"token":"abc"}`)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"token\": \"abc\"\n}\n", string(data))
	assert.Equal(t, string(data), echo.String())
	assert.Equal(t, path, p.Path())
}

func TestFile_PrintWithoutEcho(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, NewFile(path, nil).Print([]byte("raw")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "raw", string(data))
}

func TestPrintFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.json")
	require.NoError(t, os.WriteFile(path, []byte(`[1,2]`), 0644))

	var buf bytes.Buffer
	require.NoError(t, PrintFile(NewTerminal(&buf), path))
	assert.Equal(t, "[1, 2]\n", buf.String())

	assert.Error(t, PrintFile(NewTerminal(&buf), filepath.Join(t.TempDir(), "missing")))
}

func TestRenderHelp(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHelp(&buf, command.Notes, command.Usage()))

	out := buf.String()
	assert.Contains(t, out, "-u=(https://api.com:8080)")
	assert.Contains(t, out, "Delete a previously saved request")
	assert.Contains(t, out, "double-colon")
}

func TestRenderEnvironments(t *testing.T) {
	var buf bytes.Buffer
	err := RenderEnvironments(&buf, map[string]map[string]string{
		"prod": {"base_uri": "https://api.example.com"},
		"dev":  {},
	}, "prod")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "base_uri: https://api.example.com")
	assert.Contains(t, out, "prod: (selected)")
	assert.Contains(t, out, "(no values)")
	assert.Less(t, strings.Index(out, "dev:"), strings.Index(out, "prod:"))
}

func TestRenderEnvironments_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderEnvironments(&buf, nil, ""))
	assert.Contains(t, buf.String(), "no environments")
}
