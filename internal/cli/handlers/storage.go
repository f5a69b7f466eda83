package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xolan/hours/internal/cli"
	"github.com/xolan/hours/internal/storage"
)

// ValidateStorage checks the hours file health and reports status
func ValidateStorage(deps *cli.Deps) {
	path := deps.Services.Session.Path()

	health, err := storage.ValidateStorage(path)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to validate hours file: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Hours file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))

	if !health.Exists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: File does not exist yet")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Total lines:       %d\n", health.TotalLines)
	_, _ = fmt.Fprintf(deps.Stdout, "Header rows:       %d\n", health.HeaderRows)
	_, _ = fmt.Fprintf(deps.Stdout, "Valid entries:     %d\n", health.ValidEntries)
	_, _ = fmt.Fprintf(deps.Stdout, "Irregular entries: %d\n", health.IrregularEntries)
	_, _ = fmt.Fprintf(deps.Stdout, "Corrupted entries: %d\n", health.CorruptedEntries)

	if len(health.Warnings) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
		_, _ = fmt.Fprintln(deps.Stdout, "Corrupted lines:")
		for _, warning := range health.Warnings {
			_, _ = fmt.Fprintln(deps.Stdout, cli.FormatCorruptionWarning(warning))
		}
	}
	if len(health.Irregular) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
		_, _ = fmt.Fprintln(deps.Stdout, "Irregular lines (kept as written):")
		for _, warning := range health.Irregular {
			_, _ = fmt.Fprintln(deps.Stdout, cli.FormatCorruptionWarning(warning))
		}
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	if health.Healthy() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: ✓ Hours file is healthy")
		return
	}
	if health.CorruptedEntries > 0 {
		_, _ = fmt.Fprintf(deps.Stderr, "Status: ⚠ Hours file has %d corrupted line(s)\n", health.CorruptedEntries)
	}
	if health.IrregularEntries > 0 {
		_, _ = fmt.Fprintf(deps.Stderr, "Status: ⚠ Hours file has %d irregular line(s)\n", health.IrregularEntries)
	}
}

// RestoreBackup replaces the hours file with one of its rotating backups.
// An empty backupArg selects the most recent backup.
func RestoreBackup(deps *cli.Deps, backupArg string) {
	path := deps.Services.Session.Path()

	backups, err := storage.ListBackups(path)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to list backups: %v\n", err)
		deps.Exit(1)
		return
	}

	if len(backups) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No backups available")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Available backups:")
	for _, backup := range backups {
		if backup.Number == 1 {
			_, _ = fmt.Fprintf(deps.Stdout, "  %d: %s (most recent)\n", backup.Number, backup.Path)
		} else {
			_, _ = fmt.Fprintf(deps.Stdout, "  %d: %s\n", backup.Number, backup.Path)
		}
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	backupNum := 1
	if backupArg != "" {
		num, err := strconv.Atoi(backupArg)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid backup number '%s'\n", backupArg)
			deps.Exit(1)
			return
		}
		if num < 1 || num > storage.MaxBackupCount {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Backup number must be between 1 and %d (got %d)\n", storage.MaxBackupCount, num)
			deps.Exit(1)
			return
		}
		backupNum = num
	}

	backupExists := false
	for _, backup := range backups {
		if backup.Number == backupNum {
			backupExists = true
			break
		}
	}

	if !backupExists {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Backup %d does not exist\n", backupNum)
		deps.Exit(1)
		return
	}

	if err := storage.RestoreBackup(path, backupNum, deps.Services.Config.Get().Backups); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to restore backup: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Successfully restored from backup %d\n", backupNum)
}
