package gpu

import "fmt"

//go:generate go tool stringer -type=Target

// Target is the dimensionality and layout a texture is bound as. It is a type
// safe alternative to passing raw GL enums around.
type Target uint8

const (
	Texture1D Target = iota
	Texture2D
	Texture3D
	Texture1DArray
	Texture2DArray
	TextureRectangle
	TextureCubeMap
	TextureCubeMapArray
	TextureBuffer
	Texture2DMultisample
	Texture2DMultisampleArray

	targetCount int = iota
)

// OpenGL texture target constants.
const (
	GLTexture1D                 uint32 = 0x0DE0
	GLTexture2D                 uint32 = 0x0DE1
	GLTexture3D                 uint32 = 0x806F
	GLTexture1DArray            uint32 = 0x8C18
	GLTexture2DArray            uint32 = 0x8C1A
	GLTextureRectangle          uint32 = 0x84F5
	GLTextureCubeMap            uint32 = 0x8513
	GLTextureCubeMapArray       uint32 = 0x9009
	GLTextureBuffer             uint32 = 0x8C2A
	GLTexture2DMultisample      uint32 = 0x9100
	GLTexture2DMultisampleArray uint32 = 0x9102

	// first of the six consecutive cube map face targets
	// (+X, -X, +Y, -Y, +Z, -Z)
	GLTextureCubeMapPositiveX uint32 = 0x8515
)

var glTargets = [targetCount]uint32{
	Texture1D:                 GLTexture1D,
	Texture2D:                 GLTexture2D,
	Texture3D:                 GLTexture3D,
	Texture1DArray:            GLTexture1DArray,
	Texture2DArray:            GLTexture2DArray,
	TextureRectangle:          GLTextureRectangle,
	TextureCubeMap:            GLTextureCubeMap,
	TextureCubeMapArray:       GLTextureCubeMapArray,
	TextureBuffer:             GLTextureBuffer,
	Texture2DMultisample:      GLTexture2DMultisample,
	Texture2DMultisampleArray: GLTexture2DMultisampleArray,
}

// Targets returns every Target in declaration order.
func Targets() []Target {
	targets := make([]Target, targetCount)
	for idx := range targets {
		targets[idx] = Target(idx)
	}

	return targets
}

// GLEnum converts the target into the GLenum expected by OpenGL functions.
// It panics for values outside of the declared targets.
func (t Target) GLEnum() uint32 {
	if int(t) >= targetCount {
		panic(fmt.Sprintf("invalid texture target %s", t))
	}

	return glTargets[t]
}

// uploadable reports whether pixel data from a file can be uploaded to a
// texture of this target. Buffer textures take their storage from a buffer
// object and multisample textures cannot be written to from client memory.
func (t Target) uploadable() bool {
	if int(t) >= targetCount {
		return false
	}

	switch t {
	case TextureBuffer, Texture2DMultisample, Texture2DMultisampleArray:
		return false
	default:
		return true
	}
}

// hasDepthWrap reports whether the target has a third texture coordinate.
func (t Target) hasDepthWrap() bool {
	switch t {
	case Texture3D, TextureCubeMap, TextureCubeMapArray:
		return true
	default:
		return false
	}
}
