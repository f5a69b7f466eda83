package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:     "shell",
	Aliases: []string{"tui", "menu"},
	Short:   "Open the interactive menu",
	Long: `Open the interactive menu. This is also what running 'hours' without a
command does.

Menu of options:
  1) Add a new entry
  2) Delete an existing entry
  3) Save data to CSV File
  4) Reload data from CSV File
  5) Show list of all entries
  6) Show & add to project list
  7) Exit program

Keyboard shortcuts:
  - 1-7: Choose a menu option
  - Tab/Shift+Tab: Switch between views
  - s/r: Save or reload the hours file
  - ?: Show help
  - q: Quit (asks first when there are unsaved changes)
  - Ctrl+C: Quit without saving`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runShell()
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

// runShell initializes the services and runs the interactive menu
func runShell() {
	d, ok := newCLIDeps()
	if !ok {
		return
	}

	logger.Debug("starting shell", zap.String("path", d.Services.Session.Path()))
	if err := deps.RunShell(d.Services); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to run the interactive menu")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use the one-shot commands (hours list, hours add) when no terminal is available")
		deps.Exit(1)
	}
}
