package sink

import (
	"image"
	"io"

	"github.com/matzehuels/qrgen/pkg/errors"
	"github.com/matzehuels/qrgen/pkg/render/raster"
)

// encodeFunc writes a finished image to w in some container format.
type encodeFunc func(w io.Writer, img image.Image) error

// imageSink assembles rows into an *image.RGBA and hands it to an encoder
// on Flush.
type imageSink struct {
	w      io.Writer
	format string
	encode encodeFunc

	img  *image.RGBA
	rows int
}

func newImageSink(w io.Writer, format string, encode encodeFunc) *imageSink {
	return &imageSink{w: w, format: format, encode: encode}
}

// WriteHeader allocates the image.
func (s *imageSink) WriteHeader(h raster.Header) error {
	if h.BitDepth != 8 || h.ColorModel != raster.RGB {
		return errors.New(errors.ErrCodeInternal, "%s sink supports 8-bit RGB only, got %d-bit %s", s.format, h.BitDepth, h.ColorModel)
	}
	if h.Width < 1 || h.Height < 1 {
		return errors.New(errors.ErrCodeInternal, "%s sink: empty image %dx%d", s.format, h.Width, h.Height)
	}
	s.img = image.NewRGBA(image.Rect(0, 0, h.Width, h.Height))
	s.rows = 0
	return nil
}

// WriteRow copies one RGB row into the image.
func (s *imageSink) WriteRow(row []byte) error {
	if s.img == nil {
		return errors.New(errors.ErrCodeInternal, "%s sink: row before header", s.format)
	}
	b := s.img.Bounds()
	if s.rows >= b.Dy() {
		return errors.New(errors.ErrCodeInternal, "%s sink: too many rows, height is %d", s.format, b.Dy())
	}
	if len(row) != b.Dx()*raster.BytesPerPixel {
		return errors.New(errors.ErrCodeInternal, "%s sink: row has %d bytes, want %d", s.format, len(row), b.Dx()*raster.BytesPerPixel)
	}

	dst := s.img.Pix[s.rows*s.img.Stride:]
	for i, j := 0, 0; i < len(row); i, j = i+raster.BytesPerPixel, j+4 {
		dst[j+0] = row[i+0]
		dst[j+1] = row[i+1]
		dst[j+2] = row[i+2]
		dst[j+3] = 0xff
	}
	s.rows++
	return nil
}

// Flush encodes the complete image to the writer.
func (s *imageSink) Flush() error {
	if s.img == nil {
		return errors.New(errors.ErrCodeInternal, "%s sink: flush before header", s.format)
	}
	if h := s.img.Bounds().Dy(); s.rows != h {
		return errors.New(errors.ErrCodeInternal, "%s sink: incomplete image, got %d of %d rows", s.format, s.rows, h)
	}
	if err := s.encode(s.w, s.img); err != nil {
		return errors.Wrap(errors.ErrCodeSinkWrite, err, "encode %s", s.format)
	}
	return nil
}

// Ensure imageSink implements raster.RowSink.
var _ raster.RowSink = (*imageSink)(nil)
