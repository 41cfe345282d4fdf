// Package config handles loading and validation of stepper configuration.
//
// Configuration is read from ~/.config/stepper/config.toml, optionally
// overlaid by a .stepper.toml in the working directory, with environment
// variable overrides for output settings.
//
// # Configuration Sources (highest priority first)
//
//   - Command-line flags (--format, --out, --copy)
//   - STEPPER_OUTPUT_FORMAT env var: Encoding of the submitted record
//   - STEPPER_OUTPUT_PATH env var: File the submitted record is written to
//   - .stepper.toml in the working directory
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - [theme] name, mode: Color palette ("default", "nord", ...) and
//     "light", "dark" or "auto"
//   - [output] format: "json" (default) or "toml"
//   - [output] path: Write the record to this file instead of stdout
//     (must be absolute or ~/...)
//   - [output] clipboard: Also copy the record to the clipboard
//   - [signup] universities: Options offered by the sign-up flow
//
// # Path Validation
//
// Output paths must be absolute or start with ~ (no relative paths like "."
// or "..") to avoid confusion about the working directory.
package config
