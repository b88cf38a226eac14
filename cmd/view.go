package cmd

import (
	"github.com/spf13/cobra"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [paths...]",
		Short: "Browse JUnit XML reports (the default command)",
		Long:  "Load the given reports and open the interactive browser.\n\n" + reportPathsHelp,
		Args:  cobra.ArbitraryArgs,
		RunE:  runView,
	}

	return cmd
}

func runView(cmd *cobra.Command, args []string) error {
	return workflow.View(cmd.Context(), viewArgsFromConfig(args))
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
