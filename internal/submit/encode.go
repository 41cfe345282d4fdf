package submit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/stepper/internal/wizard"
)

// ErrUnknownFormat is returned for formats other than json and toml.
var ErrUnknownFormat = errors.New("unknown output format")

// Format is the encoding of a submitted record.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ParseFormat validates s as a Format. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatTOML:
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

// Encode renders state in format. Keys come out sorted in both formats.
// TOML has no null, so nil values are left out there.
func Encode(state wizard.State, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(map[string]any(state.Clone()), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(data, '\n'), nil

	case FormatTOML:
		values := make(map[string]any, len(state))
		for k, v := range state {
			if v != nil {
				values[k] = v
			}
		}
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(values); err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
}
