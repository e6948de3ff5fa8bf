package gpu_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/oliverbestmann/gltex/gpu"
	"github.com/oliverbestmann/gltex/internal/fakegl"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T) (*gpu.Context, *fakegl.Driver) {
	t.Helper()

	driver := fakegl.New()

	ctx, err := gpu.New(driver)
	require.NoError(t, err)

	t.Cleanup(ctx.Release)

	return ctx, driver
}

func writeImage(t *testing.T, name string, img image.Image) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)

	fp, err := os.Create(path)
	require.NoError(t, err)

	defer fp.Close()

	require.NoError(t, png.Encode(fp, img))

	return path
}

// writeRGBA writes a png with an alpha channel. All pixels are opaque except
// for the top left one.
func writeRGBA(t *testing.T, name string, width, height int, fill color.NRGBA) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.SetNRGBA(x, y, fill)
		}
	}

	img.SetNRGBA(0, 0, color.NRGBA{R: fill.R, G: fill.G, B: fill.B, A: 0x80})

	return writeImage(t, name, img)
}

// writeOpaque writes an opaque png where every row has its own color.
func writeOpaque(t *testing.T, name string, width int, rows ...color.NRGBA) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, len(rows)))
	for y, c := range rows {
		for x := range width {
			img.SetNRGBA(x, y, c)
		}
	}

	return writeImage(t, name, img)
}

func pixelsOf(width int, rows ...color.NRGBA) []byte {
	var pix []byte
	for _, c := range rows {
		for range width {
			pix = append(pix, c.R, c.G, c.B, c.A)
		}
	}

	return pix
}

var (
	red   = color.NRGBA{R: 0xff, A: 0xff}
	green = color.NRGBA{G: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}
)
