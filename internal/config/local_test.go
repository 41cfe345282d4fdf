package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadLocal_Missing(t *testing.T) {
	t.Parallel()

	local, err := LoadLocal(t.TempDir())
	if err != nil {
		t.Fatalf("LoadLocal() error = %v", err)
	}
	if local != nil {
		t.Errorf("LoadLocal() = %+v, want nil", local)
	}
}

func TestLoadLocal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, LocalConfigFileName), `
[output]
format = "toml"
clipboard = false

[signup]
universities = ["EPFL"]
`)

	local, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("LoadLocal() error = %v", err)
	}
	if local.Output.Format != "toml" {
		t.Errorf("Output.Format = %q, want toml", local.Output.Format)
	}
	if local.Output.Clipboard == nil || *local.Output.Clipboard {
		t.Errorf("Output.Clipboard = %v, want pointer to false", local.Output.Clipboard)
	}
	if len(local.Signup.Universities) != 1 || local.Signup.Universities[0] != "EPFL" {
		t.Errorf("Signup.Universities = %v, want [EPFL]", local.Signup.Universities)
	}
}

func TestLoadLocal_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "bad toml", content: "[output", wantErr: "failed to parse local config"},
		{name: "bad format", content: "[output]\nformat = \"csv\"", wantErr: `invalid output.format "csv"`},
		{name: "relative path", content: "[output]\npath = \"out.json\"", wantErr: "must be absolute"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, LocalConfigFileName), tt.content)

			_, err := LoadLocal(dir)
			if err == nil {
				t.Fatal("LoadLocal() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadLocal() error = %q, want containing %q", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), LocalConfigFileName) {
				t.Errorf("LoadLocal() error = %q, want file name", err)
			}
		})
	}
}

func TestDefaultLocalConfigParses(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, LocalConfigFileName), DefaultLocalConfig())

	if _, err := LoadLocal(dir); err != nil {
		t.Errorf("LoadLocal(template) error = %v", err)
	}
}
