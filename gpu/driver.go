package gpu

// Handle is the name of a texture object as allocated by the driver.
// Zero is never a valid texture name.
type Handle uint32

// Driver is the subset of the OpenGL API this package talks to. Apart from
// GenTexture and DeleteTexture, every texture call operates on whatever is
// currently bound to the given target, exactly like the underlying API.
//
// A Driver must only be used on the thread that has the GL context current.
// Implementations do not check errors themselves; errors are collected by
// calling GetError, the same way OpenGL reports them.
type Driver interface {
	GenTexture() Handle
	DeleteTexture(handle Handle)
	BindTexture(target uint32, handle Handle)

	TexParameter(target uint32, pname uint32, param int32)
	PixelStore(pname uint32, param int32)

	// TexImage1D, TexImage2D and TexImage3D upload level 0 of the currently
	// bound texture. Pixels are tightly packed in the given format.
	TexImage1D(target uint32, format PixelFormat, width int32, pixels []byte)
	TexImage2D(target uint32, format PixelFormat, width, height int32, pixels []byte)
	TexImage3D(target uint32, format PixelFormat, width, height, depth int32, pixels []byte)

	// TexLevelSize reads width and height of level 0 of the texture
	// currently bound to target.
	TexLevelSize(target uint32) (width, height int32)

	GetString(name uint32) string
	GetError() uint32
}

// PixelFormat describes the memory layout of uploaded pixel data and the
// format the driver stores it in.
type PixelFormat struct {
	InternalFormat int32
	Format         uint32
	Type           uint32
}

// OpenGL enums used when configuring and uploading textures.
const (
	GLNoError                     uint32 = 0
	GLInvalidEnum                 uint32 = 0x0500
	GLInvalidValue                uint32 = 0x0501
	GLInvalidOperation            uint32 = 0x0502
	GLStackOverflow               uint32 = 0x0503
	GLStackUnderflow              uint32 = 0x0504
	GLOutOfMemory                 uint32 = 0x0505
	GLInvalidFramebufferOperation uint32 = 0x0506

	GLRenderer uint32 = 0x1F01
	GLVersion  uint32 = 0x1F02

	GLTextureMagFilter uint32 = 0x2800
	GLTextureMinFilter uint32 = 0x2801
	GLTextureWrapS     uint32 = 0x2802
	GLTextureWrapT     uint32 = 0x2803
	GLTextureWrapR     uint32 = 0x8072
	GLTextureBaseLevel uint32 = 0x813C
	GLTextureMaxLevel  uint32 = 0x813D

	GLNearest     uint32 = 0x2600
	GLLinear      uint32 = 0x2601
	GLClampToEdge uint32 = 0x812F
	GLRepeat      uint32 = 0x2901

	GLUnpackAlignment uint32 = 0x0CF5

	GLRGBA         uint32 = 0x1908
	GLRGBA8        uint32 = 0x8058
	GLSRGB8Alpha8  uint32 = 0x8C43
	GLUnsignedByte uint32 = 0x1401
)

var (
	FormatRGBA8 = PixelFormat{
		InternalFormat: int32(GLRGBA8),
		Format:         GLRGBA,
		Type:           GLUnsignedByte,
	}

	FormatSRGBA8 = PixelFormat{
		InternalFormat: int32(GLSRGB8Alpha8),
		Format:         GLRGBA,
		Type:           GLUnsignedByte,
	}
)

// drainErrors empties the driver error queue and returns the first error
// found, or GLNoError. OpenGL keeps one flag per error kind, so the loop is
// bounded by the number of distinct error codes.
func drainErrors(driver Driver) (first uint32, count int) {
	const maxErrorFlags = 8

	first = GLNoError

	for range maxErrorFlags {
		code := driver.GetError()
		if code == GLNoError {
			break
		}

		if first == GLNoError {
			first = code
		}

		count += 1
	}

	return first, count
}
