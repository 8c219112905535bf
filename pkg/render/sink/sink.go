package sink

import (
	"io"

	"github.com/matzehuels/qrgen/pkg/errors"
	"github.com/matzehuels/qrgen/pkg/render/raster"
)

// Raster format names.
const (
	FormatPNG  = "png"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
)

// Formats lists the raster formats in preference order.
var Formats = []string{FormatPNG, FormatBMP, FormatTIFF}

// New returns the sink for format writing to w. Unknown formats yield an
// UNSUPPORTED_FORMAT error.
func New(format string, w io.Writer) (raster.RowSink, error) {
	switch format {
	case FormatPNG:
		return NewPNG(w), nil
	case FormatBMP:
		return NewBMP(w), nil
	case FormatTIFF:
		return NewTIFF(w), nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupportedFormat, "unsupported raster format: %q", format)
	}
}

// ContentType returns the MIME type of a raster format, or "" if unknown.
func ContentType(format string) string {
	switch format {
	case FormatPNG:
		return "image/png"
	case FormatBMP:
		return "image/bmp"
	case FormatTIFF:
		return "image/tiff"
	default:
		return ""
	}
}
