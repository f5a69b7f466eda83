package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/hours/internal/cli/handlers"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [backup_number]",
	Short: "Restore the hours file from a backup",
	Long: `Restore the hours file from one of its rotating backups.

Every save keeps the previous file as <file>.bak.1, shifting older backups
up to the configured count. By default the most recent backup is restored.
The file being replaced becomes the newest backup.

Examples:
  hours restore       Restore from most recent backup
  hours restore 2     Restore from backup #2`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d, ok := newCLIDeps()
		if !ok {
			return
		}
		backupArg := ""
		if len(args) > 0 {
			backupArg = args[0]
		}
		handlers.RestoreBackup(d, backupArg)
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}
