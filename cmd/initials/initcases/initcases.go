package initcases

import (
	"fmt"

	"github.com/flarebyte/initials/internal/cases"
	"github.com/spf13/cobra"
)

const defaultPath = "default" + cases.Suffix

var flagForce bool

// Cmd implements `initials init-cases [path]`: it writes the built-in cases
// as a starting point for a case file.
var Cmd = &cobra.Command{
	Use:           "init-cases [path]",
	Short:         "Write the built-in test cases to a case file",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultPath
		if len(args) == 1 {
			path = args[0]
		}
		if err := cases.Write(path, cases.Defaults(), flagForce); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return err
	},
}

func init() {
	Cmd.Flags().BoolVarP(&flagForce, "force", "f", false, "Overwrite an existing file")
}
