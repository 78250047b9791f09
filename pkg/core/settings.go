package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/blackcoderx/relay/pkg/storage"
)

const (
	// SettingsFile is written next to the project document by init.
	SettingsFile = "config.json"
	// ConfigEnv names an explicit settings file.
	ConfigEnv = "RELAY_CONFIG"
	envPrefix = "RELAY"
)

// Settings are the application options that are not part of the token
// grammar.
type Settings struct {
	Timeout     time.Duration
	ValidateSSL bool
	UserAgent   string
	LogLevel    string
	NoColor     bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("timeout", "30s")
	v.SetDefault("validate_ssl", true)
	v.SetDefault("user_agent", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("no_color", false)
}

// NewViper prepares a viper instance that reads config.json or config.yaml
// from the project folder under root, then from $HOME/.config/relay. An
// explicit file set through RELAY_CONFIG replaces the search. RELAY_*
// environment variables override file values.
func NewViper(root string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	if path := os.Getenv(ConfigEnv); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(filepath.Join(root, storage.Dir))
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "relay"))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

// LoadSettings reads the config file, if any, and returns the settings. A
// missing file is not an error.
func LoadSettings(v *viper.Viper) (Settings, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	timeout := v.GetDuration("timeout")
	if timeout <= 0 {
		return Settings{}, fmt.Errorf("invalid timeout %q", v.GetString("timeout"))
	}

	return Settings{
		Timeout:     timeout,
		ValidateSSL: v.GetBool("validate_ssl"),
		UserAgent:   v.GetString("user_agent"),
		LogLevel:    v.GetString("log_level"),
		NoColor:     v.GetBool("no_color"),
	}, nil
}

// WriteDefaultSettings writes the default settings to path unless a file is
// already there.
func WriteDefaultSettings(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	v := viper.New()
	setDefaults(v)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
