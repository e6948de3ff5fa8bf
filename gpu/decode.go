package gpu

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image holds decoded pixel data ready to be uploaded.
type Image struct {
	Width  int
	Height int

	// Channels is the number of channels of the source image:
	// 1 for gray or alpha only, 3 for opaque color and 4 for color
	// with alpha. Pix is always expanded to four channels.
	Channels int

	// Pix holds straight alpha RGBA8 pixels, top row first,
	// rows tightly packed.
	Pix []byte
}

var errInvalidPixels = errors.New("image has no valid pixel data")

func (img *Image) valid() bool {
	return img != nil && img.Width > 0 && img.Height > 0 && len(img.Pix) == img.Width*img.Height*4
}

// Decoder decodes an image file into pixel data.
type Decoder interface {
	DecodeFile(path string) (*Image, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(path string) (*Image, error)

func (fn DecoderFunc) DecodeFile(path string) (*Image, error) {
	return fn(path)
}

// FileDecoder decodes image files using the image package. Supported are
// png, jpeg, gif, bmp, tiff and webp.
type FileDecoder struct{}

func (FileDecoder) DecodeFile(path string) (*Image, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer fp.Close()

	src, format, err := image.Decode(fp)
	if err != nil {
		return nil, err
	}

	img, err := ImageFromGo(src)
	if err != nil {
		return nil, fmt.Errorf("convert %s image: %w", format, err)
	}

	return img, nil
}

// ImageFromGo converts an image.Image into an Image.
func ImageFromGo(src image.Image) (*Image, error) {
	bounds := src.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image has no pixels")
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)

	return &Image{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Channels: channelsOf(src),
		Pix:      nrgba.Pix,
	}, nil
}

// FlipY returns a copy of the image with the row order reversed.
func (img *Image) FlipY() *Image {
	stride := img.Width * 4

	flipped := *img
	flipped.Pix = make([]byte, len(img.Pix))

	for y := range img.Height {
		src := img.Pix[y*stride : (y+1)*stride]
		dst := flipped.Pix[(img.Height-1-y)*stride:]
		copy(dst[:stride], src)
	}

	return &flipped
}

func channelsOf(src image.Image) int {
	switch model := src.ColorModel(); model {
	case color.GrayModel, color.Gray16Model, color.AlphaModel, color.Alpha16Model:
		return 1

	case color.YCbCrModel, color.CMYKModel:
		return 3

	case color.RGBAModel, color.RGBA64Model, color.NRGBAModel, color.NRGBA64Model, color.NYCbCrAModel:
		// decoders use these models for truecolor files without alpha too
		if opaque, ok := src.(interface{ Opaque() bool }); ok && opaque.Opaque() {
			return 3
		}

		return 4

	default:
		if palette, ok := model.(color.Palette); ok {
			for _, c := range palette {
				if _, _, _, a := c.RGBA(); a != 0xffff {
					return 4
				}
			}

			return 3
		}

		return 4
	}
}
