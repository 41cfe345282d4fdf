package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/stepper/internal/config"
	"github.com/raphi011/stepper/internal/log"
	"github.com/raphi011/stepper/internal/output"
	"github.com/raphi011/stepper/internal/storage"
	"github.com/raphi011/stepper/internal/submit"
	"github.com/raphi011/stepper/internal/ui/prompt"
	"github.com/raphi011/stepper/internal/ui/static"
	"github.com/raphi011/stepper/internal/ui/wizard/flows"
	"github.com/raphi011/stepper/internal/wizard"
)

// secretKeys are masked in the summary table.
var secretKeys = []string{flows.KeyPassword}

func runSignup(ctx context.Context, opts runOptions) error {
	cfg := config.FromContext(ctx)
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	if !isInteractive() {
		return errors.New("stepper needs an interactive terminal on stdin")
	}

	settings, err := resolveOutput(cfg.Output, opts)
	if err != nil {
		return err
	}

	if settings.Path != "" && storage.Exists(settings.Path) && !opts.force {
		res, err := prompt.Confirm(ctx, fmt.Sprintf("Overwrite %s?", settings.Path))
		if err != nil {
			return err
		}
		if !res.Confirmed {
			return fmt.Errorf("not overwriting %s (use --force)", settings.Path)
		}
	}

	// Stdout records are held back until the TUI has released the terminal.
	var record bytes.Buffer
	pipeline, err := submit.New(settings.Format, buildTargets(&record, settings)...)
	if err != nil {
		return err
	}

	ctrl := flows.NewSignup(flows.SignupParams{
		Universities: cfg.Signup.Universities,
	})

	// The TUI owns stderr while it runs; diagnostics from that phase are
	// buffered and written once it exits.
	var buf bytes.Buffer
	tuiLog := log.New(&buf, l.IsVerbose(), l.Quiet())
	unsubscribe := ctrl.Subscribe(func(wc wizard.Context) {
		tuiLog.Step(wc.CurrentStepIndex, wc.StepCount, wc.StepID, wc.FormState.Keys())
	})
	defer unsubscribe()

	result, err := flows.SignupInteractive(log.WithLogger(ctx, tuiLog), ctrl, pipeline.Submit)
	if _, werr := l.Writer().Write(buf.Bytes()); werr != nil {
		l.Debug("flush log", "err", werr)
	}
	if err != nil {
		return err
	}

	switch {
	case result.Submitted:
		if _, err := out.Write(record.Bytes()); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
		if settings.Path != "" || !out.IsTerminal() {
			l.Printf("\n%s", static.RenderRecord(result.State, secretKeys...))
		}
		if settings.Path != "" {
			l.Printf("Wrote %s\n", settings.Path)
		}
		return nil

	case result.SubmitErr != nil:
		return fmt.Errorf("submit: %w", result.SubmitErr)

	default:
		l.Println("Cancelled.")
		return nil
	}
}

// resolveOutput applies the run flags on top of the configured output.
func resolveOutput(base config.OutputConfig, opts runOptions) (config.OutputConfig, error) {
	settings := base
	if opts.format != "" {
		if err := config.ValidateOutputFormat(opts.format); err != nil {
			return settings, err
		}
		settings.Format = opts.format
	}
	if opts.out != "" {
		path, err := config.ExpandPath(opts.out)
		if err != nil {
			return settings, err
		}
		// Flags are relative to the working directory, unlike config paths.
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		settings.Path = path
	}
	if opts.copy {
		settings.Clipboard = true
	}
	return settings, nil
}

// buildTargets returns the delivery targets for settings: the file or
// the stdout record buffer, plus the clipboard if enabled.
func buildTargets(record *bytes.Buffer, settings config.OutputConfig) []submit.Target {
	var targets []submit.Target
	if settings.Path != "" {
		targets = append(targets, submit.FileTarget{Path: settings.Path})
	} else {
		targets = append(targets, submit.BufferTarget{Buf: record, Name: "stdout"})
	}
	if settings.Clipboard {
		targets = append(targets, submit.ClipboardTarget{})
	}
	return targets
}

// isInteractive reports whether stdin is a terminal.
func isInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
