package cli

import "github.com/spf13/cobra"

// NewRootCmd creates the top-level "brainbreak" command and registers all
// subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "brainbreak",
		Short:         "Sudoku engine and service for the research assistant's puzzle break",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newGenCmd(),
	)

	return root
}
