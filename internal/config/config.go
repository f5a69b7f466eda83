// Package config loads the optional TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/xolan/hours/internal/osutil"
)

const (
	// AppName is the application name used for config directory
	AppName = "hours"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// DefaultDataFile is the hours file used when none is configured
	DefaultDataFile = "EmployeeProjectHours.csv"
	// DefaultTheme is the TUI theme used when none is configured
	DefaultTheme = "dracula"
	// DefaultBackups is the number of rotating backups kept by default
	DefaultBackups = 3
	// MaxBackups is the largest accepted backups value
	MaxBackups = 10
)

// Config represents the application configuration
type Config struct {
	// DataFile is the hours file; relative paths resolve against the working directory
	DataFile string `toml:"data_file"`
	// Backups is how many rotating backups to keep before each save (0 disables)
	Backups int `toml:"backups"`
	// Theme is the bubbletint theme id used by the interactive shell
	Theme string `toml:"theme"`
	// Confirm makes the shell ask before deleting, saving or reloading
	Confirm bool `toml:"confirm"`
}

// DefaultConfig returns a Config matching the behavior without a config file.
func DefaultConfig() Config {
	return Config{
		DataFile: DefaultDataFile,
		Backups:  DefaultBackups,
		Theme:    DefaultTheme,
		Confirm:  true,
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads and validates the config file at path.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads the config file, or returns DefaultConfig if it does not exist.
// An existing but unreadable or invalid file is an error.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	return Load(path)
}

// Normalize trims string settings and fills blanks with defaults.
func (c *Config) Normalize() {
	c.DataFile = strings.TrimSpace(c.DataFile)
	if c.DataFile == "" {
		c.DataFile = DefaultDataFile
	}
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
}

// Validate checks that settings are within range.
func (c *Config) Validate() error {
	if c.Backups < 0 || c.Backups > MaxBackups {
		return fmt.Errorf("invalid backups %d: must be between 0 and %d", c.Backups, MaxBackups)
	}
	if strings.ContainsAny(c.DataFile, "\x00") {
		return fmt.Errorf("invalid data_file %q", c.DataFile)
	}
	return nil
}

// GenerateSampleConfig returns a commented sample config file.
func GenerateSampleConfig() string {
	return fmt.Sprintf(`# hours configuration file
# All settings are optional; the values shown are the defaults.

# Hours file, relative to the working directory unless absolute
# data_file = %q

# Rotating backups kept before each save (0 disables, max %d)
# backups = %d

# Interactive shell theme (e.g. "dracula", "nord", "gruvbox_dark")
# theme = %q

# Ask for confirmation before deleting, saving or reloading
# confirm = true
`, DefaultDataFile, MaxBackups, DefaultBackups, DefaultTheme)
}

// Encode writes cfg as TOML.
func Encode(path string, cfg Config) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
