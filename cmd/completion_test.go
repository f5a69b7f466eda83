package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	tests := []struct {
		shell  string
		marker string
	}{
		{"bash", "bash completion V2 for hours"},
		{"zsh", "#compdef hours"},
		{"fish", "complete -c hours"},
		{"powershell", "Register-ArgumentCompleter"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			d, stdout, stderr, exitCode := testDeps(t, "")
			SetDeps(d)
			defer ResetDeps()

			generateCompletion(tt.shell)

			if *exitCode != 0 {
				t.Errorf("expected exit code 0, got %d", *exitCode)
			}
			if stderr.Len() != 0 {
				t.Errorf("expected no errors, got: %s", stderr.String())
			}
			if !strings.Contains(stdout.String(), tt.marker) {
				t.Errorf("expected %s completion script to contain %q", tt.shell, tt.marker)
			}
		})
	}
}

func TestGenerateCompletion_InvalidShell(t *testing.T) {
	for _, shell := range []string{"", "tcsh", "BASH", " bash"} {
		t.Run(shell, func(t *testing.T) {
			d, stdout, stderr, exitCode := testDeps(t, "")
			SetDeps(d)
			defer ResetDeps()

			generateCompletion(shell)

			if *exitCode != 1 {
				t.Errorf("expected exit code 1, got %d", *exitCode)
			}
			if stdout.Len() != 0 {
				t.Error("expected no script output")
			}
			if !strings.Contains(stderr.String(), "Supported shells: bash, zsh, fish, powershell") {
				t.Errorf("expected supported shells hint, got: %s", stderr.String())
			}
		})
	}
}

func TestCompletionCmd_ValidArgs(t *testing.T) {
	for _, shell := range completionCmd.ValidArgs {
		if _, ok := completionGenerators[shell]; !ok {
			t.Errorf("no generator for valid arg %q", shell)
		}
	}
	if len(completionGenerators) != len(completionCmd.ValidArgs) {
		t.Errorf("generators and ValidArgs differ: %d vs %d", len(completionGenerators), len(completionCmd.ValidArgs))
	}
}

func TestCompletionCmd_Execute(t *testing.T) {
	d, stdout, _, _ := testDeps(t, "")
	SetDeps(d)
	defer ResetDeps()

	if err := executeCommand(t, "completion", "zsh"); err != nil {
		t.Fatalf("execute returned error: %v", err)
	}
	if !bytes.Contains(stdout.Bytes(), []byte("#compdef hours")) {
		t.Error("expected zsh script on stdout")
	}

	if err := executeCommand(t, "completion"); err == nil {
		t.Error("expected an error without a shell argument")
	}
}
