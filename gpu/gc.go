package gpu

import (
	"log/slog"
)

type leakedTexture struct {
	handle Handle
	target Target
}

// reportLeakedTexture runs when a texture is garbage collected without being
// released. It runs on the cleanup goroutine, which never has the GL context
// current, so the texture object itself stays leaked.
func reportLeakedTexture(tex leakedTexture) {
	slog.Warn("Texture garbage collected without Release",
		slog.Uint64("handle", uint64(tex.handle)),
		slog.String("target", tex.target.String()),
	)
}
