package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rupert648/ratunit/internal/controller"
	"github.com/rupert648/ratunit/internal/domain"
)

var formatFlag string

// summaryCmd represents the summary command.
var summaryCmd = newSummaryCmd()

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary [paths...]",
		Short: "Print per-file and per-suite counts without the browser",
		Long: `Print a non-interactive summary of the given reports: one row per
top-level suite with its counts, followed by every failing or erroring
test case. Use --format yaml for machine readable output.

` + reportPathsHelp,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := controller.ParseFormat(viper.GetString(formatConfigKey))
			if err != nil {
				return err
			}

			return workflow.Summary(cmd.Context(), domain.SummaryArgs{
				ViewArgs: viewArgsFromConfig(args),
				Format:   format,
			})
		},
	}

	cmd.Flags().StringVarP(&formatFlag, formatFlagName, "f", viper.GetString(formatConfigKey), "output format: table or yaml")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), formatConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
