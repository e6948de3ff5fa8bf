package graphics

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/gltex/glimpse"
	"github.com/oliverbestmann/gltex/gpu"
	"github.com/oliverbestmann/gltex/gpu/gldriver"
	"github.com/oliverbestmann/gltex/internal/config"
)

type Options struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// Environment overrides the settings read from the environment.
	Environment *config.Environment
}

// System owns the windowing subsystem, one window with a current OpenGL
// context and the gpu context created for it.
type System struct {
	sub    *glimpse.Subsystem
	window *glimpse.Window
	token  *gpu.Context
}

// New initializes the windowing subsystem, opens a window, makes its context
// current on the calling thread and initializes OpenGL. The returned System
// must be closed on the same thread.
func New(opts Options) (sys *System, err error) {
	env := config.FromEnv()
	if opts.Environment != nil {
		env = *opts.Environment
	}

	sys = &System{}

	defer func() {
		if err != nil {
			sys.Close()
			sys = nil
		}
	}()

	sys.sub, err = glimpse.Init()
	if err != nil {
		return
	}

	sys.window, err = glimpse.NewWindow(sys.sub, glimpse.WindowOptions{
		Width:        opts.WindowWidth,
		Height:       opts.WindowHeight,
		Title:        opts.WindowTitle,
		DisableVSync: !env.VSync,
		Profile:      env.Profile,
	})
	if err != nil {
		return
	}

	sys.window.MakeContextCurrent()

	if err = gldriver.Init(); err != nil {
		return
	}

	sys.token, err = gpu.New(gldriver.Driver{})
	if err != nil {
		err = fmt.Errorf("create gpu context: %w", err)
		return
	}

	sys.UpdateViewport()

	return sys, nil
}

// Window returns the window of this system.
func (s *System) Window() *glimpse.Window {
	return s.window
}

// Token returns the gpu context. Textures must be created with it.
func (s *System) Token() *gpu.Context {
	return s.token
}

// UpdateViewport sets the viewport to the current framebuffer size.
func (s *System) UpdateViewport() {
	width, height := s.window.FramebufferSize()

	slog.Debug("Update viewport",
		slog.Int("width", width),
		slog.Int("height", height),
	)

	gldriver.Viewport(width, height)
}

// Run runs the render loop until the window is closed. The viewport follows
// the size of the framebuffer.
func (s *System) Run(render func() error) error {
	return s.window.Run(func(resized bool) error {
		if resized {
			s.UpdateViewport()
		}

		return render()
	})
}

// Close tears everything down in reverse order of creation: the gpu context,
// then the window, then the windowing subsystem. Release all textures
// before calling Close.
func (s *System) Close() {
	if s.token != nil {
		s.token.Release()
		s.token = nil
	}

	if s.window != nil {
		s.window.Destroy()
		s.window = nil
	}

	if s.sub != nil {
		s.sub.Terminate()
		s.sub = nil
	}
}
