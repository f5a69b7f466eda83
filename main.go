package main

import (
	"os"

	"github.com/xolan/hours/cmd"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// exitFunc is replaced in tests
var exitFunc = os.Exit

func main() {
	exitFunc(run())
}

// run executes the command line and returns the process exit code
func run() int {
	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}
