package sink

import (
	"image"
	"image/png"
	"io"

	"github.com/matzehuels/qrgen/pkg/render/raster"
)

// PNGOption configures PNG output.
type PNGOption func(*png.Encoder)

// WithCompression sets the zlib compression level (default png.DefaultCompression).
func WithCompression(level png.CompressionLevel) PNGOption {
	return func(e *png.Encoder) { e.CompressionLevel = level }
}

// NewPNG returns a sink that writes an 8-bit truecolor PNG to w.
// The image is opaque, so the encoder emits RGB without an alpha channel.
func NewPNG(w io.Writer, opts ...PNGOption) raster.RowSink {
	enc := &png.Encoder{CompressionLevel: png.DefaultCompression}
	for _, opt := range opts {
		opt(enc)
	}
	return newImageSink(w, FormatPNG, func(w io.Writer, img image.Image) error {
		return enc.Encode(w, img)
	})
}
