package check

import (
	"context"
	"fmt"

	checker "github.com/flarebyte/initials/internal/check"
	"github.com/flarebyte/initials/internal/config"
	"github.com/flarebyte/initials/internal/solution"
	"github.com/spf13/cobra"
)

var (
	flagConfig      string
	flagCases       string
	flagSolution    string
	flagFunction    string
	flagNoGitignore bool
	flagFormat      string
	flagProgress    bool
)

// Cmd represents the `initials check` command.
var Cmd = &cobra.Command{
	Use:           "check",
	Short:         "Check a first-letters solution against test cases",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagFormat != checker.FormatJSON && flagFormat != checker.FormatYAML {
			return fmt.Errorf("unsupported format: %s (supported: json, yaml)", flagFormat)
		}
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		opts := checker.Options{
			Cases:       cfg.Check.Cases,
			NoGitignore: cfg.Check.NoGitignore,
			Solution:    cfg.Check.Solution,
			Function:    cfg.Check.Function,
			Limits: solution.Limits{
				TimeoutMs:        cfg.Sandbox.TimeoutMs,
				InstructionLimit: cfg.Sandbox.InstructionLimit,
				MemoryLimitBytes: cfg.Sandbox.MemoryLimitBytes,
			},
		}
		if flagProgress {
			opts.Progress = cmd.ErrOrStderr()
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		rep, err := checker.Run(ctx, opts)
		if err != nil {
			return err
		}
		if err := checker.Render(cmd.OutOrStdout(), rep, flagFormat); err != nil {
			return err
		}
		return evaluateCheckExit(rep)
	},
}

// resolveConfig loads the optional config file; non-empty flags win over it.
func resolveConfig() (config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if flagCases != "" {
		cfg.Check.Cases = flagCases
	}
	if flagSolution != "" {
		cfg.Check.Solution = flagSolution
	}
	if flagFunction != "" {
		cfg.Check.Function = flagFunction
	}
	if flagNoGitignore {
		cfg.Check.NoGitignore = true
	}
	return cfg, nil
}

func init() {
	Cmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to config file (.cue)")
	Cmd.Flags().StringVar(&flagCases, "cases", "", "Case file or directory of *.cases.yaml files (default \".\")")
	Cmd.Flags().StringVarP(&flagSolution, "solution", "s", "", "Lua solution file (default: built-in reference)")
	Cmd.Flags().StringVar(&flagFunction, "function", "", "Lua function to call (default \"first_letters\")")
	Cmd.Flags().BoolVar(&flagNoGitignore, "no-gitignore", false, "Do not skip case files matched by .gitignore")
	Cmd.Flags().StringVar(&flagFormat, "format", checker.FormatJSON, "Report format: json or yaml")
	Cmd.Flags().BoolVar(&flagProgress, "progress", false, "Print per-case progress lines to stderr")
}
