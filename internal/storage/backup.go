package storage

import (
	"fmt"
	"io"
	"os"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// DefaultBackupCount is the number of backup files kept when not configured
	DefaultBackupCount = 3
	// MaxBackupCount is the largest configurable number of backups
	MaxBackupCount = 10
)

// GetBackupPath returns the path to backup n of the given hours file.
// Backup files are named <file>.bak.N; lower numbers are more recent.
func GetBackupPath(storagePath string, n int) string {
	return fmt.Sprintf("%s%s.%d", storagePath, BackupSuffix, n)
}

// rotateBackups shifts existing backup files to make room for a new backup.
// It deletes .bak.<keep> and renames .bak.N -> .bak.N+1 from the oldest down.
// Missing files are not an error.
func rotateBackups(storagePath string, keep int) error {
	if err := os.Remove(GetBackupPath(storagePath, keep)); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := keep - 1; i >= 1; i-- {
		if err := os.Rename(GetBackupPath(storagePath, i), GetBackupPath(storagePath, i+1)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// CreateBackup copies the hours file to .bak.1 after rotating older backups,
// keeping at most keep files. A missing hours file is not an error.
func CreateBackup(storagePath string, keep int) error {
	if keep < 1 {
		return nil
	}
	if keep > MaxBackupCount {
		keep = MaxBackupCount
	}

	if _, err := os.Stat(storagePath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := rotateBackups(storagePath, keep); err != nil {
		return err
	}

	return copyFile(storagePath, GetBackupPath(storagePath, 1))
}

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Number int    // The backup number (1 is the most recent)
	Path   string // The full path to the backup file
}

// ListBackups returns the existing backups of storagePath, most recent first.
func ListBackups(storagePath string) ([]BackupInfo, error) {
	var backups []BackupInfo

	for i := 1; i <= MaxBackupCount; i++ {
		backupPath := GetBackupPath(storagePath, i)
		if _, err := os.Stat(backupPath); err == nil {
			backups = append(backups, BackupInfo{Number: i, Path: backupPath})
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return backups, nil
}

// RestoreBackup copies backup n over the hours file.
// The current file is backed up first, so a restore can itself be undone.
func RestoreBackup(storagePath string, n, keep int) error {
	if n < 1 || n > MaxBackupCount {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", n, MaxBackupCount)
	}

	backupPath := GetBackupPath(storagePath, n)
	if _, err := os.Stat(backupPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("backup %d does not exist", n)
		}
		return err
	}

	// Read before rotating: rotation renames the file we are restoring from
	content, err := os.ReadFile(backupPath)
	if err != nil {
		return err
	}

	if err := CreateBackup(storagePath, keep); err != nil {
		return err
	}

	return os.WriteFile(storagePath, content, 0644)
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = sourceFile.Close() }()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		_ = destFile.Close()
		return err
	}
	return destFile.Close()
}
