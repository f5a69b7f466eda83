package cmd

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/xolan/hours/internal/service"
	"github.com/xolan/hours/internal/tui"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	// NewServices builds the services for a data file override ("" for the configured one)
	NewServices func(dataFile string, logger *zap.Logger) (*service.Services, error)
	// RunShell runs the interactive menu
	RunShell func(services *service.Services) error
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Stdin:       os.Stdin,
		Exit:        os.Exit,
		NewServices: service.NewServices,
		RunShell:    tui.Run,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}
