// Package cmd defines the hours command line.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xolan/hours/internal/cli"
	"github.com/xolan/hours/internal/cli/handlers"
)

var (
	dataFile string
	verbose  bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "hours",
	Short: "Keep track of employee hours per project",
	Long: `hours keeps track of the number of hours each employee has worked on a
specific project, stored in a CSV file (EmployeeProjectHours.csv by default).

Usage:
  hours                                   Open the interactive menu
  hours list                              List all entries sorted by project
  hours projects                          List known projects
  hours add --employee 'John Smith' --project Alpha --date 01/15/2021 --hours 3.5
  hours delete <n>                        Delete entry number n (with confirmation)
  hours validate                          Check the hours file for malformed rows
  hours restore [n]                       Restore from backup (default: most recent)
  hours config                            Show the effective configuration

Employee and project names should only contain letters.
Dates are entered as 01/01/2021 and hours as decimals, for example 3.5.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			logger = zap.NewNop()
			return nil
		}
		encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		core := zapcore.NewCore(encoder, zapcore.AddSync(deps.Stderr), zapcore.DebugLevel)
		logger = zap.New(core).Named("hours")
		logger.Debug("logger initialized", zap.String("command", cmd.Name()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		runShell()
	},
}

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check hours file health",
	Long:  `Validate the hours file and report on its health, including any malformed rows that are skipped on load.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if d, ok := newCLIDeps(); ok {
			handlers.ValidateStorage(d)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "hours file to use instead of the configured data_file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to stderr")

	rootCmd.AddCommand(validateCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"hours version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	rootCmd.SetOut(deps.Stdout)
	rootCmd.SetErr(deps.Stderr)
	return rootCmd.Execute()
}

// newCLIDeps builds the handler dependencies for the selected hours file.
// Returns false after exiting with an error.
func newCLIDeps() (*cli.Deps, bool) {
	services, err := deps.NewServices(dataFile, logger)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Run 'hours config' to see the config file location, or fix its TOML syntax")
		deps.Exit(1)
		return nil, false
	}

	return &cli.Deps{
		Stdout:   deps.Stdout,
		Stderr:   deps.Stderr,
		Stdin:    deps.Stdin,
		Exit:     deps.Exit,
		Services: services,
	}, true
}
