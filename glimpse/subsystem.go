package glimpse

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var initialized atomic.Bool

// Subsystem represents the initialized windowing system. Windows can only be
// created while it is alive and must be destroyed before it is terminated.
type Subsystem struct {
	windows int
}

// Init initializes GLFW. Only one Subsystem may exist per process.
func Init() (*Subsystem, error) {
	if !initialized.CompareAndSwap(false, true) {
		return nil, fmt.Errorf("initialize glfw: already initialized")
	}

	if err := glfw.Init(); err != nil {
		initialized.Store(false)
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	major, minor, rev := glfw.GetVersion()
	slog.Debug("Initialized glfw",
		slog.Int("major", major),
		slog.Int("minor", minor),
		slog.Int("revision", rev),
	)

	return &Subsystem{}, nil
}

// Terminate shuts down GLFW. All windows must have been destroyed before.
func (s *Subsystem) Terminate() {
	if s.windows > 0 {
		slog.Warn("Terminating glfw with open windows", slog.Int("count", s.windows))
	}

	glfw.Terminate()
	initialized.Store(false)
}
