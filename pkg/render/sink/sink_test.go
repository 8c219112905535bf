package sink

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/matzehuels/qrgen/pkg/errors"
	"github.com/matzehuels/qrgen/pkg/grid"
	"github.com/matzehuels/qrgen/pkg/render/geometry"
	"github.com/matzehuels/qrgen/pkg/render/raster"
)

func renderTo(t *testing.T, format string, pic string, p geometry.Params) []byte {
	t.Helper()
	g, err := grid.Parse(pic)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	s, err := New(format, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := raster.Encode(g, p, s); err != nil {
		t.Fatalf("raster.Encode(%s): %v", format, err)
	}
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	decoders := map[string]func(io.Reader) (image.Image, error){
		FormatPNG:  png.Decode,
		FormatBMP:  bmp.Decode,
		FormatTIFF: tiff.Decode,
	}
	p := geometry.Params{Scale: 2, Border: 1}

	for _, format := range Formats {
		t.Run(format, func(t *testing.T) {
			data := renderTo(t, format, "#.\n.#", p)

			img, err := decoders[format](bytes.NewReader(data))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
				t.Fatalf("bounds = %v, want 8x8", b)
			}

			for y := 0; y < 8; y++ {
				for x := 0; x < 8; x++ {
					mx, my := x/2-1, y/2-1
					dark := (mx == 0 && my == 0) || (mx == 1 && my == 1)
					r, g, b, _ := img.At(x, y).RGBA()
					want := uint32(0xffff)
					if dark {
						want = 0
					}
					if r != want || g != want || b != want {
						t.Errorf("pixel (%d,%d) = (%d,%d,%d), want %d", x, y, r, g, b, want)
					}
				}
			}
		})
	}
}

func TestPNGIsTruecolorRGB(t *testing.T) {
	data := renderTo(t, FormatPNG, "#", geometry.Params{Scale: 1, Border: 0})

	// Signature (8) + IHDR length (4) + type (4) + width (4) + height (4) +
	// bit depth (1) puts the color type at offset 25.
	if len(data) < 26 {
		t.Fatalf("PNG too short: %d bytes", len(data))
	}
	if depth := data[24]; depth != 8 {
		t.Errorf("bit depth = %d, want 8", depth)
	}
	if ct := data[25]; ct != 2 {
		t.Errorf("color type = %d, want 2 (truecolor)", ct)
	}
}

func TestPNGIdempotent(t *testing.T) {
	p := geometry.Params{Scale: 3, Border: 2}
	a := renderTo(t, FormatPNG, "##\n.#", p)
	b := renderTo(t, FormatPNG, "##\n.#", p)
	if !bytes.Equal(a, b) {
		t.Error("PNG output is not reproducible")
	}
}

func TestNewUnsupported(t *testing.T) {
	if _, err := New("gif", io.Discard); !errors.Is(err, errors.ErrCodeUnsupportedFormat) {
		t.Errorf("New(gif) error = %v, want UNSUPPORTED_FORMAT", err)
	}
}

func TestNothingWrittenBeforeFlush(t *testing.T) {
	var buf bytes.Buffer
	s := NewPNG(&buf)
	if err := s.WriteHeader(raster.Header{Width: 1, Height: 2, BitDepth: 8, ColorModel: raster.RGB}); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteRow([]byte{0, 0, 0}); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("sink wrote %d bytes before the image was complete", buf.Len())
	}
	if err := s.Flush(); err == nil {
		t.Error("Flush should fail with a missing row")
	}
	if buf.Len() != 0 {
		t.Errorf("sink wrote %d bytes for an incomplete image", buf.Len())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrShortWrite }

func TestFlushWriteFailure(t *testing.T) {
	g, _ := grid.Parse("#")
	err := raster.Encode(g, geometry.Params{Scale: 1, Border: 0}, NewPNG(failingWriter{}))
	if !errors.Is(err, errors.ErrCodeSinkWrite) {
		t.Errorf("error = %v, want SINK_WRITE", err)
	}
}

func TestRejectsUnsupportedHeader(t *testing.T) {
	s := NewBMP(io.Discard)
	err := s.WriteHeader(raster.Header{Width: 1, Height: 1, BitDepth: 16, ColorModel: raster.RGB})
	if err == nil {
		t.Error("16-bit header should be rejected")
	}
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		FormatPNG:  "image/png",
		FormatBMP:  "image/bmp",
		FormatTIFF: "image/tiff",
		"gif":      "",
	}
	for format, want := range tests {
		if got := ContentType(format); got != want {
			t.Errorf("ContentType(%q) = %q, want %q", format, got, want)
		}
	}
}
