package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-directory override file.
const LocalConfigFileName = ".stepper.toml"

// LocalConfig holds per-directory overrides from .stepper.toml.
// Pointer fields and zero-value strings indicate "not set" (inherit from global).
type LocalConfig struct {
	Output LocalOutput  `toml:"output"`
	Signup SignupConfig `toml:"signup"` // universities replace the global list
}

// LocalOutput holds local output overrides
type LocalOutput struct {
	Format    string `toml:"format"`
	Path      string `toml:"path"`
	Clipboard *bool  `toml:"clipboard"`
}

// LoadLocal reads a .stepper.toml from dir.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(dir string) (*LocalConfig, error) {
	configFile := filepath.Join(dir, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	if err := ValidateOutputFormat(local.Output.Format); err != nil {
		return nil, fmt.Errorf("%w in %s", err, configFile)
	}
	if err := ValidatePath(local.Output.Path, "output.path"); err != nil {
		return nil, fmt.Errorf("%w in %s", err, configFile)
	}

	return &local, nil
}

// defaultLocalConfig is the template for stepper config init --local
const defaultLocalConfig = `# stepper local config (per-directory overrides)
# Settings here override ~/.config/stepper/config.toml when stepper runs
# in this directory.

# [output]
# format = "toml"
# path = "~/signups/team.toml"
# clipboard = false

# [signup]
# universities = ["ETH Zurich", "EPFL"]
`

// DefaultLocalConfig returns the default local configuration template content.
func DefaultLocalConfig() string {
	return defaultLocalConfig
}
