package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Environment variables overriding the config file.
const (
	EnvOutputFormat = "STEPPER_OUTPUT_FORMAT"
	EnvOutputPath   = "STEPPER_OUTPUT_PATH"
)

// ThemeConfig holds UI theme settings
type ThemeConfig struct {
	Name    string `toml:"name"` // "default", "nord", "catppuccin" or "none"
	Mode    string `toml:"mode"` // "light", "dark" or "auto" (default)
	Primary string `toml:"primary"`
	Accent  string `toml:"accent"`
	Success string `toml:"success"`
	Error   string `toml:"error"`
	Muted   string `toml:"muted"`
	Normal  string `toml:"normal"`
	Info    string `toml:"info"`
	Warning string `toml:"warning"`
}

// OutputConfig controls where the submitted record goes
type OutputConfig struct {
	Format    string `toml:"format"`    // "json" or "toml"
	Path      string `toml:"path"`      // empty = stdout
	Clipboard bool   `toml:"clipboard"` // also copy to clipboard
}

// SignupConfig customizes the sign-up flow
type SignupConfig struct {
	Universities []string `toml:"universities"`
}

// Config holds the stepper configuration
type Config struct {
	Theme  ThemeConfig  `toml:"theme"`
	Output OutputConfig `toml:"output"`
	Signup SignupConfig `toml:"signup"`
}

// DefaultOutputFormat is used when no format is configured
const DefaultOutputFormat = "json"

// Default returns the default configuration
func Default() Config {
	return Config{
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
	}
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	// Allow ~ paths
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the path to the global config file
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "stepper", "config.toml"), nil
}

// Load reads config from ~/.config/stepper/config.toml, overlays the
// .stepper.toml found in dir (if any) and applies environment overrides.
// Returns Default() if no file exists (no error)
// Returns error only if a file exists but is invalid
func Load(dir string) (Config, error) {
	path, err := Path()
	if err != nil {
		path = ""
	}
	return LoadFrom(path, dir)
}

// LoadFrom is Load with an explicit global config path. Empty path or dir
// skip the respective file.
func LoadFrom(path, dir string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return Default(), fmt.Errorf("failed to read config file: %w", err)
		}
		if err == nil {
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Default(), fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if dir != "" {
		local, err := LoadLocal(dir)
		if err != nil {
			return Default(), err
		}
		cfg = *MergeLocal(&cfg, local)
	}

	cfg.applyEnv()
	if err := cfg.finalize(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// applyEnv overrides output settings from the environment
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv(EnvOutputPath); v != "" {
		c.Output.Path = v
	}
}

// finalize validates c, fills defaults and expands ~ in paths
func (c *Config) finalize() error {
	if err := c.Validate(); err != nil {
		return err
	}

	if c.Output.Format == "" {
		c.Output.Format = DefaultOutputFormat
	}

	// Expand ~ in output.path (shell doesn't expand in config files)
	if c.Output.Path != "" {
		expanded, err := ExpandPath(c.Output.Path)
		if err != nil {
			return fmt.Errorf("expand output.path: %w", err)
		}
		c.Output.Path = expanded
	}
	return nil
}

const defaultConfig = `# stepper configuration

# Theme settings
# [theme]
# name = "default"   # default, nord, catppuccin, none
# mode = "auto"      # light, dark, or auto (detect terminal background)
#
# Individual colors override the preset:
# primary = "#89b4fa"
# accent = "#f5c2e7"

# Output settings for the submitted record
[output]
format = "json"      # json or toml
# Write to a file instead of stdout.
# Must be an absolute path or start with ~ (no relative paths like "." or "..")
# path = "~/signups/latest.json"
# clipboard = true   # also copy the record to the clipboard

# Sign-up flow settings
# [signup]
# universities = ["MIT", "ETH Zurich"]

# Environment overrides:
#   STEPPER_OUTPUT_FORMAT - output.format
#   STEPPER_OUTPUT_PATH   - output.path
`

// DefaultConfig returns the default configuration template content.
func DefaultConfig() string {
	return defaultConfig
}

// Init creates a default config file at ~/.config/stepper/config.toml
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	return path, InitFile(path, force)
}

// InitFile writes the default config template to path.
func InitFile(path string, force bool) error {
	// Check if file already exists (skip if force)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfig), 0644)
}
