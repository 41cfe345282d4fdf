package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/stepper/internal/config"
	"github.com/raphi011/stepper/internal/log"
	"github.com/raphi011/stepper/internal/output"
	"github.com/raphi011/stepper/internal/ui/static"
	"github.com/raphi011/stepper/internal/ui/styles"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage stepper configuration.

Global config: ~/.config/stepper/config.toml
Local config:  .stepper.toml (in the working directory)`,
		Example: `  stepper config init          # Create default global config
  stepper config init --local  # Create local config
  stepper config show          # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
		local  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create default config file.

Without flags, creates global config at ~/.config/stepper/config.toml.
With --local, creates .stepper.toml in the current directory.`,
		Example: `  stepper config init           # Create global config
  stepper config init --local   # Create local config
  stepper config init -f        # Overwrite existing config
  stepper config init -s        # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			l := log.FromContext(ctx)

			content := config.DefaultConfig()
			if local {
				content = config.DefaultLocalConfig()
			}
			if stdout {
				out.Print(content)
				return nil
			}

			var path string
			if local {
				path = filepath.Join(config.WorkDirFromContext(ctx), config.LocalConfigFileName)
				if !force {
					if _, err := os.Stat(path); err == nil {
						return fmt.Errorf("local config already exists: %s (use -f to overwrite)", path)
					}
				}
				if err := os.WriteFile(path, []byte(content), 0644); err != nil {
					return err
				}
			} else {
				var err error
				path, err = config.Init(force)
				if err != nil {
					if strings.HasPrefix(err.Error(), "config file already exists") {
						return fmt.Errorf("%w (use -f to overwrite)", err)
					}
					return err
				}
			}

			l.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	cmd.Flags().BoolVar(&local, "local", false, "Create .stepper.toml in the current directory instead")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration: the global config merged with
.stepper.toml and environment overrides.`,
		Example: `  stepper config show         # Show effective config
  stepper config show --json  # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}

			globalPath, err := config.Path()
			if err != nil {
				globalPath = "(unknown)"
			}
			out.Printf("Global config: %s\n", globalPath)
			localPath := filepath.Join(config.WorkDirFromContext(ctx), config.LocalConfigFileName)
			if _, err := os.Stat(localPath); err == nil {
				out.Printf("Local config:  %s\n", localPath)
			} else {
				out.Printf("Local config:  (none)\n")
			}
			out.Println()
			out.Print(static.RenderTable([]string{"KEY", "VALUE"}, configRows(cfg)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// configRows lists the effective settings as KEY/VALUE rows.
func configRows(cfg *config.Config) [][]string {
	orDefault := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	universities := "(built-in)"
	if len(cfg.Signup.Universities) > 0 {
		universities = strings.Join(cfg.Signup.Universities, ", ")
	}
	return [][]string{
		{"theme.name", orDefault(cfg.Theme.Name, "default")},
		{"theme.mode", orDefault(cfg.Theme.Mode, "auto")},
		{"theme.available", strings.Join(styles.Available(), ", ")},
		{"output.format", orDefault(cfg.Output.Format, config.DefaultOutputFormat)},
		{"output.path", orDefault(cfg.Output.Path, "(stdout)")},
		{"output.clipboard", fmt.Sprint(cfg.Output.Clipboard)},
		{"signup.universities", universities},
	}
}
