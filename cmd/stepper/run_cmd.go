package main

import (
	"github.com/spf13/cobra"
)

// runOptions are the flags shared by 'stepper' and 'stepper run'.
type runOptions struct {
	format string
	out    string
	copy   bool
	force  bool
}

func (o *runOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "Output format: json or toml (default from config)")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "Write the record to this file instead of stdout")
	cmd.Flags().BoolVarP(&o.copy, "copy", "c", false, "Also copy the record to the clipboard")
	cmd.Flags().BoolVar(&o.force, "force", false, "Overwrite the output file without asking")

	cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"json", "toml"}, cobra.ShellCompDirectiveNoFileComp
	})
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the sign-up form",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Run the sign-up form.

The form has three steps: credentials, name and employment. Enter on the
last field of a step validates it and moves on; on the last step it
submits the record. pgup/pgdown move between steps without validating,
esc cancels.

The record is written to stdout unless --out (or output.path) is set.`,
		Example: `  stepper run                      # JSON to stdout
  stepper run -f toml -o ~/me.toml  # TOML to a file
  stepper run --copy               # Also copy to clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSignup(cmd.Context(), *opts)
		},
	}

	opts.register(cmd)

	return cmd
}
