package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackcoderx/relay/pkg/storage"
)

func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(ConfigEnv, "")
	return t.TempDir()
}

func TestLoadSettings_Defaults(t *testing.T) {
	root := isolate(t)

	s, err := LoadSettings(NewViper(root))
	require.NoError(t, err)
	assert.Equal(t, Settings{Timeout: 30 * time.Second, ValidateSSL: true, LogLevel: "warn"}, s)
}

func TestLoadSettings_ProjectFileAndEnv(t *testing.T) {
	root := isolate(t)
	dir := filepath.Join(root, storage.Dir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"),
		[]byte(`{"timeout":"5s","validate_ssl":false,"user_agent":"probe/1"}`), 0644))
	t.Setenv("RELAY_LOG_LEVEL", "debug")

	s, err := LoadSettings(NewViper(root))
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, s.Timeout)
	assert.False(t, s.ValidateSSL)
	assert.Equal(t, "probe/1", s.UserAgent)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestLoadSettings_ExplicitFile(t *testing.T) {
	root := isolate(t)
	path := filepath.Join(t.TempDir(), "relay.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: 2m\nno_color: true\n"), 0644))
	t.Setenv(ConfigEnv, path)

	s, err := LoadSettings(NewViper(root))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, s.Timeout)
	assert.True(t, s.NoColor)
}

func TestLoadSettings_Invalid(t *testing.T) {
	root := isolate(t)
	t.Setenv("RELAY_TIMEOUT", "soon")

	_, err := LoadSettings(NewViper(root))
	assert.Error(t, err)

	t.Setenv("RELAY_TIMEOUT", "30s")
	t.Setenv(ConfigEnv, filepath.Join(t.TempDir(), "missing.json"))
	_, err = LoadSettings(NewViper(root))
	assert.Error(t, err)
}

func TestWriteDefaultSettings(t *testing.T) {
	root := isolate(t)
	dir := filepath.Join(root, storage.Dir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, SettingsFile)

	require.NoError(t, WriteDefaultSettings(path))
	s, err := LoadSettings(NewViper(root))
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, s.Timeout)

	require.NoError(t, os.WriteFile(path, []byte(`{"timeout":"1s"}`), 0644))
	require.NoError(t, WriteDefaultSettings(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"timeout":"1s"}`, string(data))
}
