package root

import (
	"github.com/flarebyte/initials/cmd/initials/check"
	"github.com/flarebyte/initials/cmd/initials/initcases"
	"github.com/flarebyte/initials/cmd/initials/version"
	"github.com/flarebyte/initials/internal/prompt"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for initials. Without a subcommand it
// prompts for a sentence on stdin and prints its first letters.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "initials",
		Short: "Print the first letter of each word of a sentence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return prompt.Run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(check.Cmd)
	cmd.AddCommand(initcases.Cmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
