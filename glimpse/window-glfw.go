package glimpse

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/profile"
)

// Window is a glfw window with an OpenGL context.
type Window struct {
	sub   *Subsystem
	win   *glfw.Window
	prof  interface{ Stop() }
	vsync bool

	framebufferWidth  int
	framebufferHeight int
	resized           bool
}

// NewWindow creates a window and its OpenGL context. The context is not made
// current, call MakeContextCurrent for that.
func NewWindow(sub *Subsystem, opts WindowOptions) (*Window, error) {
	opts = opts.withDefaults()

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, opts.ContextVersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.ContextVersionMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &Window{sub: sub, win: window, vsync: !opts.DisableVSync}
	w.framebufferWidth, w.framebufferHeight = window.GetFramebufferSize()

	if opts.Profile {
		w.prof = profile.Start(profile.CPUProfile, profile.NoShutdownHook)
	}

	window.SetFramebufferSizeCallback(func(_win *glfw.Window, width, height int) {
		slog.Debug("Framebuffer resized",
			slog.Int("width", width),
			slog.Int("height", height),
		)

		w.framebufferWidth = width
		w.framebufferHeight = height
		w.resized = true
	})

	window.SetKeyCallback(func(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			win.SetShouldClose(true)
		}
	})

	sub.windows += 1

	return w, nil
}

// MakeContextCurrent makes the context of this window current on the calling
// thread and applies the swap interval.
func (w *Window) MakeContextCurrent() {
	w.win.MakeContextCurrent()

	if w.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

// FramebufferSize returns the size of the framebuffer in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	return w.framebufferWidth, w.framebufferHeight
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *Window) SetTitle(title string) {
	w.win.SetTitle(title)
}

// Run calls render once per frame until the window is closed or render returns
// an error. Resized reports whether the framebuffer size changed since the
// previous frame.
func (w *Window) Run(render func(resized bool) error) error {
	for !w.win.ShouldClose() {
		resized := w.resized
		w.resized = false

		if err := render(resized); err != nil {
			return err
		}

		w.win.SwapBuffers()
		glfw.PollEvents()
	}

	return nil
}

// Destroy destroys the window and its context. The Subsystem must still
// be alive.
func (w *Window) Destroy() {
	if w.prof != nil {
		w.prof.Stop()
	}

	w.win.Destroy()
	w.sub.windows -= 1
}
