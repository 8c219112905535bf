package raster

import (
	"github.com/matzehuels/qrgen/pkg/errors"
	"github.com/matzehuels/qrgen/pkg/grid"
	"github.com/matzehuels/qrgen/pkg/render/geometry"
)

// Pixel values. Every channel of every pixel is one of these.
const (
	Black byte = 0
	White byte = 255
)

// BytesPerPixel is the size of one RGB triple.
const BytesPerPixel = 3

// ColorModel identifies the pixel layout of emitted rows.
type ColorModel int

// Supported color models.
const (
	RGB ColorModel = iota // 3 bytes per pixel, R G B
)

func (m ColorModel) String() string {
	switch m {
	case RGB:
		return "RGB"
	default:
		return "unknown"
	}
}

// Header describes the image a sink is about to receive.
type Header struct {
	Width      int
	Height     int
	BitDepth   int
	ColorModel ColorModel
}

// RowSink receives an encoded image. The encoder calls WriteHeader once,
// WriteRow exactly Height times in top-to-bottom order, then Flush once.
// The row slice is only valid for the duration of the call; sinks that keep
// it must copy.
//
// A sink does not own the underlying destination. Whoever opened it closes
// it, on success and on error.
type RowSink interface {
	WriteHeader(h Header) error
	WriteRow(row []byte) error
	Flush() error
}

// HeaderFor returns the header of the image that Encode produces for a grid
// of size n.
func HeaderFor(n int, p geometry.Params) Header {
	size := p.OutputSize(n)
	return Header{Width: size, Height: size, BitDepth: 8, ColorModel: RGB}
}

// Encode validates p and streams the rendered image of g into sink.
func Encode(g grid.Grid, p geometry.Params, sink RowSink) error {
	if err := grid.Validate(g); err != nil {
		return err
	}
	if err := p.ValidateFor(g.Size()); err != nil {
		return err
	}

	if err := sink.WriteHeader(HeaderFor(g.Size(), p)); err != nil {
		return sinkError(err, "write header")
	}
	err := Rows(g, p, func(y int, row []byte) error {
		if err := sink.WriteRow(row); err != nil {
			return sinkError(err, "write row %d", y)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := sink.Flush(); err != nil {
		return sinkError(err, "finalize image")
	}
	return nil
}

// Rows validates p and calls fn for every device row of the rendered image,
// top to bottom. The row slice is reused between calls. Iteration stops at
// the first error returned by fn.
func Rows(g grid.Grid, p geometry.Params, fn func(y int, row []byte) error) error {
	if err := grid.Validate(g); err != nil {
		return err
	}
	if err := p.ValidateFor(g.Size()); err != nil {
		return err
	}

	size := p.OutputSize(g.Size())
	row := make([]byte, size*BytesPerPixel)

	// Every device row inside one module row is identical, so the row is
	// only rebuilt when the module index changes.
	lastModule := 0
	for y := 0; y < size; y++ {
		if m := p.ModuleIndex(y); y == 0 || m != lastModule {
			fillRow(row, g, p, y)
			lastModule = m
		}
		if err := fn(y, row); err != nil {
			return err
		}
	}
	return nil
}

func fillRow(row []byte, g grid.Grid, p geometry.Params, y int) {
	for x := 0; x*BytesPerPixel < len(row); x++ {
		c := White
		if p.Dark(g, x, y) {
			c = Black
		}
		i := x * BytesPerPixel
		row[i+0] = c // R
		row[i+1] = c // G
		row[i+2] = c // B
	}
}

// sinkError wraps err as SINK_WRITE unless it already carries a code.
func sinkError(err error, format string, args ...any) error {
	if errors.GetCode(err) != "" {
		return err
	}
	return errors.Wrap(errors.ErrCodeSinkWrite, err, format, args...)
}
