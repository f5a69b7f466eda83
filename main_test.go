package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/hours/cmd"
	"github.com/xolan/hours/internal/osutil"
)

type mockPathProvider struct {
	dir string
}

func (m *mockPathProvider) UserConfigDir() (string, error) {
	return filepath.Join(m.dir, "config"), nil
}

func (m *mockPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (m *mockPathProvider) Getwd() (string, error) {
	return m.dir, nil
}

// setup points config and data lookups at a temp dir and captures output
func setup(t *testing.T, args ...string) *bytes.Buffer {
	t.Helper()
	osutil.SetProvider(&mockPathProvider{dir: t.TempDir()})
	t.Cleanup(osutil.ResetProvider)

	stdout := &bytes.Buffer{}
	d := cmd.DefaultDeps()
	d.Stdout = stdout
	d.Stderr = &bytes.Buffer{}
	cmd.SetDeps(d)
	t.Cleanup(cmd.ResetDeps)

	originalArgs := os.Args
	os.Args = append([]string{"hours"}, args...)
	t.Cleanup(func() { os.Args = originalArgs })
	return stdout
}

func TestRun_Success(t *testing.T) {
	stdout := setup(t, "list")

	if code := run(); code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), "There are no entries in the list.") {
		t.Errorf("unexpected output: %s", stdout.String())
	}
}

func TestRun_Version(t *testing.T) {
	stdout := setup(t, "--version")

	if code := run(); code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), "hours version dev") {
		t.Errorf("unexpected output: %s", stdout.String())
	}
}

func TestRun_ExecuteError(t *testing.T) {
	setup(t, "--unknownflag")

	if code := run(); code != 1 {
		t.Errorf("expected exit code 1 for Execute error, got %d", code)
	}
}

func TestMain_CallsExitWithRunResult(t *testing.T) {
	setup(t, "projects")

	originalExit := exitFunc
	defer func() { exitFunc = originalExit }()

	capturedCode := -1
	exitFunc = func(code int) {
		capturedCode = code
	}

	main()

	if capturedCode != 0 {
		t.Errorf("expected exit code 0, got %d", capturedCode)
	}
}
