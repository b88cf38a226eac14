// Package cmd provides the root command and CLI setup for ratunit.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rupert648/ratunit/internal/adapter"
	"github.com/rupert648/ratunit/internal/controller"
	"github.com/rupert648/ratunit/internal/domain"
	m "github.com/rupert648/ratunit/internal/model"
)

var sourceAdapter adapter.ReportSourceAdapter
var workflow domain.Workflow
var ui controller.UI

var (
	parallelFlag  int
	recursiveFlag bool
	patternFlag   string
	plainFlag     bool
	verboseFlag   bool
	logFileFlag   string
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	sourceAdapter = adapter.NewLocalReportSourceAdapter()
	workflow = domain.NewWorkflow(sourceAdapter, ui)
}

const reportPathsHelp = `Each path may be a JUnit XML file or a directory. Directories contribute
the files matching --pattern (default *.xml), sorted by name; use
--recursive to descend into subdirectories. Without paths the current
directory is used.`

const rootLongDescription = `ratunit is a terminal browser for JUnit XML test reports. It loads one or
more report files and lets you drill from files into suites, nested suites
and individual test cases, including failure messages and stack traces.

When stdout is not a terminal, or --plain is given, a summary table is
printed instead.

` + reportPathsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "ratunit [paths...]",
		Short:        "Browse JUnit XML test reports in the terminal",
		Long:         rootLongDescription,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args)
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of report files parsed concurrently (0 = unbounded)")
	bindFlagToConfig(flags.Lookup(parallelFlagName), parallelConfigKey)

	flags.BoolVarP(&recursiveFlag, recursiveFlagName, "r", viper.GetBool(recursiveConfigKey), "descend into subdirectories when discovering reports")
	bindFlagToConfig(flags.Lookup(recursiveFlagName), recursiveConfigKey)

	flags.StringVar(&patternFlag, patternFlagName, viper.GetString(patternConfigKey), "file name glob matched inside directories")
	bindFlagToConfig(flags.Lookup(patternFlagName), patternConfigKey)

	flags.BoolVar(&plainFlag, plainFlagName, viper.GetBool(plainConfigKey), "print a summary table instead of opening the browser")
	bindFlagToConfig(flags.Lookup(plainFlagName), plainConfigKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// viewArgsFromConfig collects the discovery settings shared by every command.
func viewArgsFromConfig(args []string) domain.ViewArgs {
	return domain.ViewArgs{
		Paths:     parsePaths(args),
		Recursive: viper.GetBool(recursiveConfigKey),
		Pattern:   viper.GetString(patternConfigKey),
		Parallel:  viper.GetInt(parallelConfigKey),
		Plain:     viper.GetBool(plainConfigKey),
	}
}
