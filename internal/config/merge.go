package config

import "slices"

// MergeLocal merges a local per-directory config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	// Shallow copy global; Theme is global-only and inherited as-is.
	merged := *global

	if local.Output.Format != "" {
		merged.Output.Format = local.Output.Format
	}
	if local.Output.Path != "" {
		merged.Output.Path = local.Output.Path
	}
	if local.Output.Clipboard != nil {
		merged.Output.Clipboard = *local.Output.Clipboard
	}

	// Universities replace the global list; the copy keeps global untouched.
	if len(local.Signup.Universities) > 0 {
		merged.Signup.Universities = slices.Clone(local.Signup.Universities)
	}

	return &merged
}
