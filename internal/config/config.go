// Package config layers noty settings from flags, environment and an optional
// config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix      = "NOTY"
	configName     = "config"
	configType     = "yaml"
	configDirName  = "noty"
	defaultVerbose = false
)

// AppConfig captures runtime configuration for the CLI.
type AppConfig struct {
	// StorePath is the notes file. Empty means the per-user default.
	StorePath string
	Verbose   bool
}

// NewViper returns a viper instance with defaults, env bindings and the
// per-user config directory ($XDG_CONFIG_HOME/noty) as search path.
func NewViper() *viper.Viper {
	configViper := viper.New()
	ApplyDefaults(configViper)
	if dir, err := os.UserConfigDir(); err == nil {
		configViper.AddConfigPath(filepath.Join(dir, configDirName))
	}
	return configViper
}

// ApplyDefaults configures defaults and env bindings on the provided viper instance.
func ApplyDefaults(configViper *viper.Viper) {
	configViper.SetEnvPrefix(envPrefix)
	configViper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	configViper.AutomaticEnv()

	configViper.SetConfigName(configName)
	configViper.SetConfigType(configType)

	configViper.SetDefault("store", "")
	configViper.SetDefault("verbose", defaultVerbose)
}

// ReadConfigFile merges the config file if one exists on the search path.
func ReadConfigFile(configViper *viper.Viper) error {
	err := configViper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Load parses runtime configuration from viper.
func Load(configViper *viper.Viper) (AppConfig, error) {
	store, err := expandHome(strings.TrimSpace(configViper.GetString("store")))
	if err != nil {
		return AppConfig{}, err
	}

	cfg := AppConfig{
		StorePath: store,
		Verbose:   configViper.GetBool("verbose"),
	}

	if err := cfg.validate(); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

func (c AppConfig) validate() error {
	if c.StorePath == "" {
		return nil
	}
	if strings.HasSuffix(c.StorePath, "/") || strings.HasSuffix(c.StorePath, string(os.PathSeparator)) {
		return fmt.Errorf("store must be a file path, got directory %q", c.StorePath)
	}
	if info, err := os.Stat(c.StorePath); err == nil && info.IsDir() {
		return fmt.Errorf("store must be a file path, got directory %q", c.StorePath)
	}
	return nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %q: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
