package gpu

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
)

func init() {
	// the GL context is current on exactly one thread. Keep the main
	// goroutine on the thread that created it.
	runtime.LockOSThread()
}

// current holds the one live Context of this process.
var current atomic.Pointer[Context]

// Info describes the driver behind a Context.
type Info struct {
	Renderer string
	Version  string
}

// Context represents an initialized GL binding layer with a context current on
// the calling thread. All textures are created under a Context and become
// invalid once it is released.
//
// A Context and everything created from it must only be used from the thread
// that has the GL context current. The internal lock serializes the
// bind-then-operate sequences of this package but does not make the
// underlying API safe for concurrent use.
type Context struct {
	driver Driver
	info   Info

	mu sync.Mutex

	liveTextures int
}

// New creates the Context for the given driver. The driver must already be
// initialized and its GL context current. Only one Context may be alive at a
// time, New returns ErrContextExists otherwise.
func New(driver Driver) (*Context, error) {
	ctx := &Context{driver: driver}

	if !current.CompareAndSwap(nil, ctx) {
		return nil, ErrContextExists
	}

	ctx.info = Info{
		Renderer: driver.GetString(GLRenderer),
		Version:  driver.GetString(GLVersion),
	}

	slog.Info("Initialized gpu context",
		slog.String("renderer", ctx.info.Renderer),
		slog.String("version", ctx.info.Version),
	)

	return ctx, nil
}

// Current returns the live Context, or nil if there is none.
func Current() *Context {
	return current.Load()
}

func (c *Context) Driver() Driver {
	return c.driver
}

func (c *Context) Info() Info {
	return c.info
}

// LiveTextures returns the number of textures created under this
// context that were not yet released.
func (c *Context) LiveTextures() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.liveTextures
}

// Release gives up the process slot of this context. Textures that are still
// alive are reported, but not deleted: deleting them is only valid while the
// GL context exists, and the caller is about to destroy it.
func (c *Context) Release() {
	if !current.CompareAndSwap(c, nil) {
		return
	}

	if live := c.LiveTextures(); live > 0 {
		slog.Warn("Releasing gpu context with live textures", slog.Int("count", live))
	}
}

// locked runs fn while holding the context lock. Every sequence of driver
// calls that relies on the current binding goes through here.
func (c *Context) locked(fn func(driver Driver) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return fn(c.driver)
}

// UnbindTexture binds the zero texture to target.
func UnbindTexture(ctx *Context, target Target) {
	_ = ctx.locked(func(driver Driver) error {
		driver.BindTexture(target.GLEnum(), 0)
		return nil
	})
}
