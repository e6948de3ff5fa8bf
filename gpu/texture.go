package gpu

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

const cubeFaces = 6

// Filter selects the minification and magnification filter of a texture.
type Filter uint8

const (
	// FilterLinear interpolates between the nearest texels. This is the default.
	FilterLinear Filter = iota

	// FilterNearest picks the nearest texel.
	FilterNearest
)

// Wrap selects how texture coordinates outside of [0, 1] are handled.
type Wrap uint8

const (
	// WrapClampToEdge clamps coordinates to the edge texels. This is the default.
	WrapClampToEdge Wrap = iota

	// WrapRepeat repeats the texture. Rectangle textures always clamp.
	WrapRepeat
)

type LoadOptions struct {
	Filter Filter
	Wrap   Wrap

	// Store the texture as sRGB encoded data.
	SRGB bool

	// Upload the bottom row of the image first, so that texture coordinate
	// (0, 0) addresses the bottom left corner of the image.
	FlipY bool

	// Decoder used by LoadTexture. Defaults to FileDecoder.
	Decoder Decoder
}

func (opts *LoadOptions) withDefaults() LoadOptions {
	var o LoadOptions
	if opts != nil {
		o = *opts
	}

	if o.Decoder == nil {
		o.Decoder = FileDecoder{}
	}

	return o
}

// noCopy makes go vet report copies of the struct embedding it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Texture owns exactly one GL texture object. The *Texture returned by
// LoadTexture is the only owner of the object: pass the pointer around, never
// the value, and call Release exactly when the texture is not needed anymore.
type Texture struct {
	noCopy noCopy

	ctx    *Context
	handle Handle
	target Target

	width    int
	height   int
	channels int

	cleanup runtime.Cleanup
}

// LoadTexture creates a texture for the given target and fills it with the
// image stored at path. The target must match the target the texture is later
// bound to.
//
// LoadTexture leaves the new texture bound to target. It must be called on
// the thread that has the GL context current.
func LoadTexture(ctx *Context, target Target, path string, opts *LoadOptions) (*Texture, error) {
	o := opts.withDefaults()

	return createTexture(ctx, target, o, func() (*Image, error) {
		img, err := o.Decoder.DecodeFile(path)
		if err != nil {
			return nil, &ImageDecodeError{Path: path, Err: err}
		}

		if !img.valid() {
			return nil, &ImageDecodeError{Path: path, Err: errInvalidPixels}
		}

		return img, nil
	})
}

// NewTextureFromImage works like LoadTexture, but takes an already
// decoded image.
func NewTextureFromImage(ctx *Context, target Target, img *Image, opts *LoadOptions) (*Texture, error) {
	if !img.valid() {
		return nil, fmt.Errorf("create texture: %w", errInvalidPixels)
	}

	return createTexture(ctx, target, opts.withDefaults(), func() (*Image, error) {
		return img, nil
	})
}

func createTexture(ctx *Context, target Target, opts LoadOptions, source func() (*Image, error)) (*Texture, error) {
	if !target.uploadable() {
		return nil, &UnsupportedTargetError{Target: target}
	}

	var tex *Texture

	err := ctx.locked(func(driver Driver) error {
		if code, count := drainErrors(driver); count > 0 {
			slog.Debug("Discarding stale driver errors",
				slog.String("first", ErrorName(code)),
				slog.Int("count", count),
			)
		}

		handle := driver.GenTexture()
		if code, _ := drainErrors(driver); handle == 0 || code != GLNoError {
			if handle != 0 {
				driver.DeleteTexture(handle)
			}

			return &ResourceAllocationError{Code: code}
		}

		// the handle is ours now and must be deleted on every error path below
		owned := true
		defer func() {
			if owned {
				driver.DeleteTexture(handle)
			}
		}()

		driver.BindTexture(target.GLEnum(), handle)

		img, err := source()
		if err != nil {
			return err
		}

		if opts.FlipY {
			img = img.FlipY()
		}

		if err := upload(driver, target, opts, img); err != nil {
			return err
		}

		configure(driver, target, opts)

		if code, _ := drainErrors(driver); code != GLNoError {
			return &DriverError{Op: "upload " + target.String() + " texture", Code: code}
		}

		tex = &Texture{
			ctx:      ctx,
			handle:   handle,
			target:   target,
			width:    img.Width,
			height:   img.Height,
			channels: img.Channels,
		}

		ctx.liveTextures += 1
		owned = false

		return nil
	})

	if err != nil {
		return nil, err
	}

	tex.cleanup = runtime.AddCleanup(tex, reportLeakedTexture, leakedTexture{
		handle: tex.handle,
		target: tex.target,
	})

	slog.Debug("Created texture",
		slog.Uint64("handle", uint64(tex.handle)),
		slog.String("target", target.String()),
		slog.Int("width", tex.width),
		slog.Int("height", tex.height),
	)

	return tex, nil
}

func upload(driver Driver, target Target, opts LoadOptions, img *Image) error {
	width, err := glsizei(img.Width)
	if err != nil {
		return fmt.Errorf("image width: %w", err)
	}

	height, err := glsizei(img.Height)
	if err != nil {
		return fmt.Errorf("image height: %w", err)
	}

	layoutError := func(reason string) error {
		return &ImageLayoutError{
			Target: target,
			Width:  img.Width,
			Height: img.Height,
			Reason: reason,
		}
	}

	format := FormatRGBA8
	if opts.SRGB {
		format = FormatSRGBA8
	}

	// rows of Image.Pix are tightly packed
	driver.PixelStore(GLUnpackAlignment, 1)

	glTarget := target.GLEnum()

	switch target {
	case Texture1D:
		if height != 1 {
			return layoutError("1D textures need an image with a single row")
		}

		driver.TexImage1D(glTarget, format, width, img.Pix)

	case Texture2D, TextureRectangle, Texture1DArray:
		driver.TexImage2D(glTarget, format, width, height, img.Pix)

	case Texture3D, Texture2DArray:
		driver.TexImage3D(glTarget, format, width, height, 1, img.Pix)

	case TextureCubeMap:
		if width != height {
			return layoutError("cube map faces must be square")
		}

		for face := range uint32(cubeFaces) {
			driver.TexImage2D(GLTextureCubeMapPositiveX+face, format, width, height, img.Pix)
		}

	case TextureCubeMapArray:
		if width != height {
			return layoutError("cube map faces must be square")
		}

		layers := bytes.Repeat(img.Pix, cubeFaces)
		driver.TexImage3D(glTarget, format, width, height, cubeFaces, layers)

	default:
		return &UnsupportedTargetError{Target: target}
	}

	return nil
}

// configure sets sampling parameters explicitly. Driver defaults differ
// between vendors and the default minification filter expects mipmaps.
func configure(driver Driver, target Target, opts LoadOptions) {
	glTarget := target.GLEnum()

	filter := int32(GLLinear)
	if opts.Filter == FilterNearest {
		filter = int32(GLNearest)
	}

	wrap := int32(GLClampToEdge)
	if opts.Wrap == WrapRepeat && target != TextureRectangle {
		wrap = int32(GLRepeat)
	}

	driver.TexParameter(glTarget, GLTextureMinFilter, filter)
	driver.TexParameter(glTarget, GLTextureMagFilter, filter)

	driver.TexParameter(glTarget, GLTextureWrapS, wrap)
	driver.TexParameter(glTarget, GLTextureWrapT, wrap)

	if target.hasDepthWrap() {
		driver.TexParameter(glTarget, GLTextureWrapR, wrap)
	}

	driver.TexParameter(glTarget, GLTextureBaseLevel, 0)

	if target != TextureRectangle {
		driver.TexParameter(glTarget, GLTextureMaxLevel, 0)
	}
}

// Bind binds the texture to the given target of the current texture unit.
// Precondition: the GL context is current on the calling thread. This is not
// checked.
func (t *Texture) Bind(target Target) {
	_ = t.ctx.locked(func(driver Driver) error {
		driver.BindTexture(target.GLEnum(), t.handle)
		return nil
	})
}

// Release deletes the texture object. The handle is moved out of the
// texture before it is deleted, a second call has nothing left to delete.
// The texture must not be used after calling Release.
func (t *Texture) Release() {
	handle := t.handle
	t.handle = 0

	if handle == 0 {
		return
	}

	t.cleanup.Stop()

	_ = t.ctx.locked(func(driver Driver) error {
		driver.DeleteTexture(handle)
		t.ctx.liveTextures -= 1
		return nil
	})
}

// QueryLevelSize asks the driver for the size of level 0. This binds the
// texture to its own target. A size the driver reports as negative is
// returned as zero.
func (t *Texture) QueryLevelSize() (width, height int) {
	queryTarget := t.target.GLEnum()
	if t.target == TextureCubeMap {
		queryTarget = GLTextureCubeMapPositiveX
	}

	_ = t.ctx.locked(func(driver Driver) error {
		driver.BindTexture(t.target.GLEnum(), t.handle)

		w, h := driver.TexLevelSize(queryTarget)

		w, errW := glsizei(w)
		h, errH := glsizei(h)
		if err := errors.Join(errW, errH); err != nil {
			slog.Warn("Driver reported an invalid texture size",
				slog.Uint64("handle", uint64(t.handle)),
				slog.Any("err", err),
			)

			return err
		}

		width, height = int(w), int(h)
		return nil
	})

	return width, height
}

func (t *Texture) Handle() Handle {
	return t.handle
}

// Target returns the target the texture was created with.
func (t *Texture) Target() Target {
	return t.target
}

func (t *Texture) Width() int {
	return t.width
}

func (t *Texture) Height() int {
	return t.height
}

// Channels returns the channel count of the decoded source image.
func (t *Texture) Channels() int {
	return t.channels
}

func (t *Texture) String() string {
	return fmt.Sprintf("Texture(%s, handle=%d, %dx%d)", t.target, t.handle, t.width, t.height)
}
