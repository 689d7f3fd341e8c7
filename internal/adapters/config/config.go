package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds CLI configuration from config.toml.
type Config struct {
	Limit  int       `toml:"limit"`
	Dumper string    `toml:"dumper"`
	Color  *bool     `toml:"color"`
	Format string    `toml:"format"`
	Log    LogConfig `toml:"log"`
}

// LogConfig defines logging settings.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Output string `toml:"output"`
	Source bool   `toml:"source"`
	UTC    bool   `toml:"utc"`
	Color  bool   `toml:"color"`
}

// ColorEnabled reports the color setting, on unless disabled.
func (c Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// Load loads config.toml from the default location if present. Missing
// file returns an empty config.
func Load() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Config{}, err
	}
	return load(path, true)
}

// LoadFile loads config from path, which must exist.
func LoadFile(path string) (Config, error) {
	if path == "" {
		return Config{}, errors.New("config path required")
	}
	return load(path, false)
}

func load(path string, optional bool) (Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, err
	}
	if info.IsDir() {
		return Config{}, errors.New("config path is a directory")
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath returns the default config location.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "dumpdie", "config.toml"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "dumpdie", "config.toml"), nil
}
