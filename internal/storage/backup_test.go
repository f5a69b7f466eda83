package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleFile = "EntryNum,EmployeeName,ProjectName,FullDate,HoursWorked\n1,John Smith,Alpha,01/15/2021,3.5\n"

// Helper to create a temporary hours file with content
func createTempStorage(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "hours.csv")
	if content != "" {
		if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create temp storage file: %v", err)
		}
	}
	return tmpFile
}

// Helper to check if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Helper to read file content
func readFileContent(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func TestGetBackupPath(t *testing.T) {
	tests := []struct {
		n              int
		expectedSuffix string
	}{
		{1, ".bak.1"},
		{2, ".bak.2"},
		{10, ".bak.10"},
	}

	for _, tt := range tests {
		t.Run(tt.expectedSuffix, func(t *testing.T) {
			path := GetBackupPath("/data/hours.csv", tt.n)
			if !strings.HasSuffix(path, tt.expectedSuffix) {
				t.Errorf("GetBackupPath(%d) = %q, expected suffix %q", tt.n, path, tt.expectedSuffix)
			}
			if !strings.HasPrefix(path, "/data/hours.csv") {
				t.Errorf("GetBackupPath(%d) = %q, expected to start with the storage path", tt.n, path)
			}
		})
	}
}

func TestCreateBackup_NoExistingFile(t *testing.T) {
	tmpFile := createTempStorage(t, "")

	if err := CreateBackup(tmpFile, 3); err != nil {
		t.Fatalf("CreateBackup() returned unexpected error: %v", err)
	}
	if fileExists(GetBackupPath(tmpFile, 1)) {
		t.Error("CreateBackup() created a backup for a missing file")
	}
}

func TestCreateBackup_Disabled(t *testing.T) {
	tmpFile := createTempStorage(t, sampleFile)

	if err := CreateBackup(tmpFile, 0); err != nil {
		t.Fatalf("CreateBackup() returned unexpected error: %v", err)
	}
	if fileExists(GetBackupPath(tmpFile, 1)) {
		t.Error("CreateBackup(keep=0) should not create a backup")
	}
}

func TestCreateBackup_FirstBackup(t *testing.T) {
	tmpFile := createTempStorage(t, sampleFile)

	if err := CreateBackup(tmpFile, 3); err != nil {
		t.Fatalf("CreateBackup() returned unexpected error: %v", err)
	}

	backup1Path := GetBackupPath(tmpFile, 1)
	if got := readFileContent(t, backup1Path); got != sampleFile {
		t.Errorf("Backup content = %q, expected %q", got, sampleFile)
	}
	if got := readFileContent(t, tmpFile); got != sampleFile {
		t.Errorf("Original file was modified")
	}
}

func TestCreateBackup_RotatesAndDropsOldest(t *testing.T) {
	tmpFile := createTempStorage(t, "current\n")
	for i, content := range []string{"one\n", "two\n", "three\n"} {
		if err := os.WriteFile(GetBackupPath(tmpFile, i+1), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create backup %d: %v", i+1, err)
		}
	}

	if err := CreateBackup(tmpFile, 3); err != nil {
		t.Fatalf("CreateBackup() returned unexpected error: %v", err)
	}

	expected := map[int]string{1: "current\n", 2: "one\n", 3: "two\n"}
	for n, want := range expected {
		if got := readFileContent(t, GetBackupPath(tmpFile, n)); got != want {
			t.Errorf(".bak.%d = %q, expected %q", n, got, want)
		}
	}
	if fileExists(GetBackupPath(tmpFile, 4)) {
		t.Error("rotation kept more backups than requested")
	}
}

func TestListBackups(t *testing.T) {
	tmpFile := createTempStorage(t, sampleFile)

	backups, err := ListBackups(tmpFile)
	if err != nil {
		t.Fatalf("ListBackups() returned unexpected error: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}

	for i := 0; i < 2; i++ {
		if err := CreateBackup(tmpFile, 3); err != nil {
			t.Fatalf("CreateBackup() returned unexpected error: %v", err)
		}
	}

	backups, err = ListBackups(tmpFile)
	if err != nil {
		t.Fatalf("ListBackups() returned unexpected error: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("expected 2 backups, got %d", len(backups))
	}
	if backups[0].Number != 1 || backups[1].Number != 2 {
		t.Errorf("backups not sorted by recency: %+v", backups)
	}
	if backups[0].Path != GetBackupPath(tmpFile, 1) {
		t.Errorf("backup path = %q, expected %q", backups[0].Path, GetBackupPath(tmpFile, 1))
	}
}

func TestRestoreBackup_ValidBackup(t *testing.T) {
	backupContent := "backup\n"
	currentContent := "current\n"
	tmpFile := createTempStorage(t, currentContent)
	if err := os.WriteFile(GetBackupPath(tmpFile, 1), []byte(backupContent), 0644); err != nil {
		t.Fatalf("Failed to create backup file: %v", err)
	}

	if err := RestoreBackup(tmpFile, 1, 3); err != nil {
		t.Fatalf("RestoreBackup(1) returned unexpected error: %v", err)
	}

	if got := readFileContent(t, tmpFile); got != backupContent {
		t.Errorf("Restored content = %q, expected %q", got, backupContent)
	}
	// The pre-restore state becomes the newest backup
	if got := readFileContent(t, GetBackupPath(tmpFile, 1)); got != currentContent {
		t.Errorf("Safety backup .bak.1 = %q, expected %q", got, currentContent)
	}
	if got := readFileContent(t, GetBackupPath(tmpFile, 2)); got != backupContent {
		t.Errorf(".bak.2 = %q, expected %q", got, backupContent)
	}
}

func TestRestoreBackup_Errors(t *testing.T) {
	tmpFile := createTempStorage(t, sampleFile)

	tests := []struct {
		name        string
		n           int
		errContains string
	}{
		{"zero", 0, "invalid backup number"},
		{"too large", MaxBackupCount + 1, "invalid backup number"},
		{"missing", 2, "does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RestoreBackup(tmpFile, tt.n, 3)
			if err == nil {
				t.Fatalf("RestoreBackup(%d) expected error", tt.n)
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error = %v, expected to contain %q", err, tt.errContains)
			}
		})
	}

	if got := readFileContent(t, tmpFile); got != sampleFile {
		t.Error("failed restore modified the hours file")
	}
}
