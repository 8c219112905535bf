package sink

import (
	"io"

	"golang.org/x/image/bmp"

	"github.com/matzehuels/qrgen/pkg/render/raster"
)

// NewBMP returns a sink that writes an uncompressed 24-bit BMP to w.
func NewBMP(w io.Writer) raster.RowSink {
	return newImageSink(w, FormatBMP, bmp.Encode)
}
