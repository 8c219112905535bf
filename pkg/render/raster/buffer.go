package raster

import (
	"image"

	"github.com/matzehuels/qrgen/pkg/errors"
	"github.com/matzehuels/qrgen/pkg/grid"
	"github.com/matzehuels/qrgen/pkg/render/geometry"
)

// PixelBuffer is a complete rendered image held in memory: Width*Height RGB
// triples in row-major order.
//
// PixelBuffer implements RowSink; the zero value is ready to receive an
// image.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte

	rows int
}

// Render returns the full rendered image of g.
func Render(g grid.Grid, p geometry.Params) (*PixelBuffer, error) {
	var buf PixelBuffer
	if err := Encode(g, p, &buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

// WriteHeader allocates the buffer.
func (b *PixelBuffer) WriteHeader(h Header) error {
	if h.BitDepth != 8 || h.ColorModel != RGB {
		return errors.New(errors.ErrCodeInternal, "pixel buffer supports 8-bit RGB only, got %d-bit %s", h.BitDepth, h.ColorModel)
	}
	b.Width, b.Height = h.Width, h.Height
	b.Pix = make([]byte, 0, h.Width*h.Height*BytesPerPixel)
	b.rows = 0
	return nil
}

// WriteRow appends one row.
func (b *PixelBuffer) WriteRow(row []byte) error {
	if len(row) != b.Width*BytesPerPixel {
		return errors.New(errors.ErrCodeInternal, "row has %d bytes, want %d", len(row), b.Width*BytesPerPixel)
	}
	if b.rows >= b.Height {
		return errors.New(errors.ErrCodeInternal, "too many rows: image height is %d", b.Height)
	}
	b.Pix = append(b.Pix, row...)
	b.rows++
	return nil
}

// Flush checks that every row arrived.
func (b *PixelBuffer) Flush() error {
	if b.rows != b.Height {
		return errors.New(errors.ErrCodeInternal, "incomplete image: got %d of %d rows", b.rows, b.Height)
	}
	return nil
}

// RGB returns the pixel at (x, y).
func (b *PixelBuffer) RGB(x, y int) (r, g, bl byte) {
	i := (y*b.Width + x) * BytesPerPixel
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

// Image converts the buffer to an opaque *image.RGBA.
func (b *PixelBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for i, j := 0, 0; i < len(b.Pix); i, j = i+BytesPerPixel, j+4 {
		img.Pix[j+0] = b.Pix[i+0]
		img.Pix[j+1] = b.Pix[i+1]
		img.Pix[j+2] = b.Pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// Ensure PixelBuffer implements RowSink.
var _ RowSink = (*PixelBuffer)(nil)
