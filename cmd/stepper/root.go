package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/stepper/internal/config"
	"github.com/raphi011/stepper/internal/log"
	"github.com/raphi011/stepper/internal/output"
	"github.com/raphi011/stepper/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

func newRootCmd() *cobra.Command {
	runOpts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "stepper",
		Short: "Multi-step forms in the terminal",
		Long: `stepper runs multi-step forms in the terminal and hands the
collected record to stdout, a file or the clipboard.

Without a subcommand it runs the sign-up form (same as 'stepper run').`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		Args:                       cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip setup for completion and help commands
			if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
				return nil
			}
			return setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSignup(cmd.Context(), *runOpts)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log step transitions and delivery details")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// The bare command accepts the run flags too.
	runOpts.register(cmd)

	// Version flag
	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup loads config, initializes the theme and attaches the logger. It
// runs after flag parsing so verbose/quiet take effect.
func setup(cmd *cobra.Command) error {
	ctx := cmd.Context()

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	l := log.New(os.Stderr, verbose, quiet)

	cfg, err := config.Load(workDir)
	if err != nil {
		l.Printf("Warning: %v\n", err)
	}
	styles.Init(cfg.Theme)

	ctx = log.WithLogger(ctx, l)
	ctx = config.WithConfig(ctx, &cfg)
	ctx = config.WithWorkDir(ctx, workDir)
	cmd.SetContext(ctx)
	return nil
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'stepper -h' for help")
		cancel()
		os.Exit(1)
	}
}
