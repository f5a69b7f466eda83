package cli

import (
	"io"
	"os"

	"github.com/xolan/hours/internal/service"
)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	// Services
	Services *service.Services
}

// NewDeps creates a new Deps writing to the process streams
func NewDeps(services *service.Services) *Deps {
	return &Deps{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Exit:     os.Exit,
		Services: services,
	}
}

// Confirm reports whether destructive operations should prompt first
func (d *Deps) Confirm() bool {
	return d.Services.Config.Get().Confirm
}
