package sink

import (
	"image"
	"io"

	"golang.org/x/image/tiff"

	"github.com/matzehuels/qrgen/pkg/render/raster"
)

// NewTIFF returns a sink that writes a deflate-compressed TIFF to w.
func NewTIFF(w io.Writer) raster.RowSink {
	opts := &tiff.Options{Compression: tiff.Deflate}
	return newImageSink(w, FormatTIFF, func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, opts)
	})
}
