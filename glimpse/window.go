package glimpse

// WindowOptions configures a new Window. Zero values are replaced
// with defaults.
type WindowOptions struct {
	Width  int
	Height int
	Title  string

	// OpenGL version of the context, defaults to 4.1 core.
	ContextVersionMajor int
	ContextVersionMinor int

	// Disable waiting for vertical sync when swapping buffers.
	DisableVSync bool

	// Record a cpu profile for the lifetime of the window.
	Profile bool
}

func (opts WindowOptions) withDefaults() WindowOptions {
	if opts.Width == 0 {
		opts.Width = 1000
	}

	if opts.Height == 0 {
		opts.Height = 600
	}

	if opts.Title == "" {
		opts.Title = "gltex"
	}

	if opts.ContextVersionMajor == 0 {
		opts.ContextVersionMajor = 4
		opts.ContextVersionMinor = 1
	}

	return opts
}
