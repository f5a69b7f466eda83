package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/hours/internal/cli/handlers"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for hours.

hours works without any configuration file. All settings have defaults:
  - data_file: EmployeeProjectHours.csv (relative to the working directory)
  - backups: 3 (0 disables backups, at most 10)
  - theme: dracula
  - confirm: true (ask before deleting, saving or reloading)

Configuration file location:
  ~/.config/hours/config.toml          Linux
  ~/Library/Application Support/hours/config.toml   macOS
  %APPDATA%\hours\config.toml          Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if d, ok := newCLIDeps(); ok {
			handlers.ShowConfig(d)
		}
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if d, ok := newCLIDeps(); ok {
			handlers.InitConfig(d)
		}
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
