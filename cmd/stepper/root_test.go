package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/stepper/internal/config"
	"github.com/raphi011/stepper/internal/output"
)

// execute runs the root command with args and returns its stdout.
// Commands share the global flag variables, so these tests are serial.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	verbose, quiet = false, false
	var out bytes.Buffer
	ctx := output.WithPrinter(context.Background(), &out)

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	got, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(got, "stepper dev") {
		t.Errorf("version = %q, want prefix %q", got, "stepper dev")
	}
}

func TestConfigInitStdout(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"global", []string{"config", "init", "-s"}, config.DefaultConfig()},
		{"local", []string{"config", "init", "--local", "-s"}, config.DefaultLocalConfig()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("config init error = %v", err)
			}
			if got != tt.want {
				t.Errorf("config init -s printed %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigInitGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if _, err := execute(t, "config", "init", "-q"); err != nil {
		t.Fatalf("config init error = %v", err)
	}
	path := filepath.Join(home, ".config", "stepper", "config.toml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not created: %v", err)
	}

	_, err := execute(t, "config", "init", "-q")
	if err == nil || !strings.Contains(err.Error(), "use -f") {
		t.Errorf("second config init error = %v, want hint to use -f", err)
	}
	if _, err := execute(t, "config", "init", "-q", "-f"); err != nil {
		t.Errorf("config init -f error = %v", err)
	}
}

func TestConfigShowJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvOutputFormat, "toml")
	t.Setenv(config.EnvOutputPath, "")

	got, err := execute(t, "config", "show", "--json")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	if !strings.Contains(got, `"Format": "toml"`) {
		t.Errorf("config show --json = %q, want Format toml", got)
	}
}

func TestConfigShowListsThemes(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	got, err := execute(t, "config", "show")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	for _, want := range []string{"theme.available", "none, default, nord, catppuccin", "output.format"} {
		if !strings.Contains(got, want) {
			t.Errorf("config show missing %q:\n%s", want, got)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	got, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error = %v", err)
	}
	if !strings.Contains(got, "stepper") {
		t.Errorf("completion output does not mention stepper")
	}

	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh succeeded, want error")
	}
}

func TestVerboseQuietExclusive(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := execute(t, "version", "-v", "-q"); err == nil {
		t.Error("-v -q succeeded, want error")
	}
}
