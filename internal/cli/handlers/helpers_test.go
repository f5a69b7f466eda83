package handlers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/hours/internal/cli"
	"github.com/xolan/hours/internal/config"
	"github.com/xolan/hours/internal/service"
)

const sampleFile = "EntryNum,EmployeeName,ProjectName,FullDate,HoursWorked\n" +
	"1,John Smith,Beta,02/01/2021,2\n" +
	"2,Jane Doe,Alpha,01/15/2021,3.5\n"

// setupTestDeps creates deps over a temp hours file holding content ("" for none)
func setupTestDeps(t *testing.T, content string) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	cfg := config.DefaultConfig()
	return setupDepsWithConfig(t, content, cfg)
}

func setupDepsWithConfig(t *testing.T, content string, cfg config.Config) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	tmpDir := t.TempDir()
	dataPath := filepath.Join(tmpDir, "hours.csv")
	if content != "" {
		if err := os.WriteFile(dataPath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	services := service.NewServicesWithPaths(dataPath, filepath.Join(tmpDir, "config.toml"), cfg, nil)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0

	deps := &cli.Deps{
		Stdout:   stdout,
		Stderr:   stderr,
		Stdin:    strings.NewReader(""),
		Exit:     func(code int) { exitCode = code },
		Services: services,
	}

	return deps, stdout, stderr, &exitCode
}

// setupBrokenDeps creates deps whose hours file path is a directory
func setupBrokenDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	deps, stdout, stderr, exitCode := setupTestDeps(t, "")
	if err := os.MkdirAll(deps.Services.Session.Path(), 0755); err != nil {
		t.Fatal(err)
	}
	return deps, stdout, stderr, exitCode
}

func readHoursFile(t *testing.T, deps *cli.Deps) string {
	t.Helper()
	content, err := os.ReadFile(deps.Services.Session.Path())
	if err != nil {
		t.Fatalf("failed to read hours file: %v", err)
	}
	return string(content)
}
