// Package gldriver implements gpu.Driver on top of OpenGL 4.1 core.
package gldriver

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/oliverbestmann/gltex/gpu"
)

// the gpu package keeps its own copy of the GL enums. An "invalid array
// index" compile error here means they went out of sync with go-gl.
var _ = [1]struct{}{}[gl.TEXTURE_1D-gpu.GLTexture1D]
var _ = [1]struct{}{}[gl.TEXTURE_2D-gpu.GLTexture2D]
var _ = [1]struct{}{}[gl.TEXTURE_3D-gpu.GLTexture3D]
var _ = [1]struct{}{}[gl.TEXTURE_1D_ARRAY-gpu.GLTexture1DArray]
var _ = [1]struct{}{}[gl.TEXTURE_2D_ARRAY-gpu.GLTexture2DArray]
var _ = [1]struct{}{}[gl.TEXTURE_RECTANGLE-gpu.GLTextureRectangle]
var _ = [1]struct{}{}[gl.TEXTURE_CUBE_MAP-gpu.GLTextureCubeMap]
var _ = [1]struct{}{}[gl.TEXTURE_CUBE_MAP_ARRAY-gpu.GLTextureCubeMapArray]
var _ = [1]struct{}{}[gl.TEXTURE_BUFFER-gpu.GLTextureBuffer]
var _ = [1]struct{}{}[gl.TEXTURE_2D_MULTISAMPLE-gpu.GLTexture2DMultisample]
var _ = [1]struct{}{}[gl.TEXTURE_2D_MULTISAMPLE_ARRAY-gpu.GLTexture2DMultisampleArray]
var _ = [1]struct{}{}[gl.TEXTURE_CUBE_MAP_POSITIVE_X-gpu.GLTextureCubeMapPositiveX]
var _ = [1]struct{}{}[gl.TEXTURE_MIN_FILTER-gpu.GLTextureMinFilter]
var _ = [1]struct{}{}[gl.TEXTURE_MAX_LEVEL-gpu.GLTextureMaxLevel]
var _ = [1]struct{}{}[gl.UNPACK_ALIGNMENT-gpu.GLUnpackAlignment]
var _ = [1]struct{}{}[gl.SRGB8_ALPHA8-gpu.GLSRGB8Alpha8]
var _ = [1]struct{}{}[gl.OUT_OF_MEMORY-gpu.GLOutOfMemory]

// Init loads the OpenGL function pointers of the context current on the
// calling thread. It must be called once after the context was made current
// and before the Driver is used.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("initialize opengl: %w", err)
	}

	return nil
}

// Viewport sets the viewport to cover a framebuffer of the given size.
func Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Driver forwards every call to OpenGL.
type Driver struct{}

var _ gpu.Driver = Driver{}

func (Driver) GenTexture() gpu.Handle {
	var handle uint32
	gl.GenTextures(1, &handle)
	return gpu.Handle(handle)
}

func (Driver) DeleteTexture(handle gpu.Handle) {
	name := uint32(handle)
	gl.DeleteTextures(1, &name)
}

func (Driver) BindTexture(target uint32, handle gpu.Handle) {
	gl.BindTexture(target, uint32(handle))
}

func (Driver) TexParameter(target uint32, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (Driver) PixelStore(pname uint32, param int32) {
	gl.PixelStorei(pname, param)
}

func (Driver) TexImage1D(target uint32, format gpu.PixelFormat, width int32, pixels []byte) {
	gl.TexImage1D(target, 0, format.InternalFormat, width, 0, format.Format, format.Type, ptr(pixels))
}

func (Driver) TexImage2D(target uint32, format gpu.PixelFormat, width, height int32, pixels []byte) {
	gl.TexImage2D(target, 0, format.InternalFormat, width, height, 0, format.Format, format.Type, ptr(pixels))
}

func (Driver) TexImage3D(target uint32, format gpu.PixelFormat, width, height, depth int32, pixels []byte) {
	gl.TexImage3D(target, 0, format.InternalFormat, width, height, depth, 0, format.Format, format.Type, ptr(pixels))
}

func (Driver) TexLevelSize(target uint32) (width, height int32) {
	gl.GetTexLevelParameteriv(target, 0, gl.TEXTURE_WIDTH, &width)
	gl.GetTexLevelParameteriv(target, 0, gl.TEXTURE_HEIGHT, &height)
	return width, height
}

func (Driver) GetString(name uint32) string {
	str := gl.GetString(name)
	if str == nil {
		return ""
	}

	return gl.GoStr(str)
}

func (Driver) GetError() uint32 {
	return gl.GetError()
}

func ptr(pixels []byte) unsafe.Pointer {
	if len(pixels) == 0 {
		return nil
	}

	return unsafe.Pointer(&pixels[0])
}
