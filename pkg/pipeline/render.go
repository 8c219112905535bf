package pipeline

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/matzehuels/qrgen/pkg/errors"
	"github.com/matzehuels/qrgen/pkg/grid"
	"github.com/matzehuels/qrgen/pkg/observability"
	"github.com/matzehuels/qrgen/pkg/render/geometry"
	"github.com/matzehuels/qrgen/pkg/render/raster"
	"github.com/matzehuels/qrgen/pkg/render/sink"
	"github.com/matzehuels/qrgen/pkg/render/text"
	"github.com/matzehuels/qrgen/pkg/render/vector"
)

// RenderOptions selects the output format and its parameters.
type RenderOptions struct {
	Format    string
	Params    geometry.Params
	MergeRuns bool
	Invert    bool
}

// Render writes g to w in the requested format.
//
// Raster formats stream one pixel row at a time into the container sink; the
// vector and text formats are built in memory and written with a single
// call. Parameter errors are returned before anything reaches w.
func Render(ctx context.Context, w io.Writer, g grid.Grid, opts RenderOptions) error {
	start := time.Now()
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Format, g.Size())

	cw := &countingWriter{w: w}
	err := render(cw, g, opts)
	hooks.OnRenderComplete(ctx, opts.Format, cw.n, time.Since(start), err)
	return err
}

// RenderBytes renders g into memory.
func RenderBytes(ctx context.Context, g grid.Grid, opts RenderOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(ctx, &buf, g, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func render(w io.Writer, g grid.Grid, opts RenderOptions) error {
	switch {
	case opts.Format == FormatSVG:
		var svgOpts []vector.SVGOption
		if opts.MergeRuns {
			svgOpts = append(svgOpts, vector.WithMergedRuns())
		}
		return vector.WriteSVG(w, g, opts.Params.Border, svgOpts...)

	case IsRaster(opts.Format):
		s, err := sink.New(opts.Format, w)
		if err != nil {
			return err
		}
		return raster.Encode(g, opts.Params, s)

	case opts.Format == FormatText:
		var textOpts []text.Option
		if opts.Invert {
			textOpts = append(textOpts, text.WithInvert())
		}
		out, err := text.Render(g, opts.Params.Border, textOpts...)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, out); err != nil {
			return errors.Wrap(errors.ErrCodeSinkWrite, err, "write text")
		}
		return nil

	default:
		return ValidateFormat(opts.Format)
	}
}

// ContentType returns the MIME type for a format.
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatText:
		return "text/plain; charset=utf-8"
	default:
		if ct := sink.ContentType(format); ct != "" {
			return ct
		}
		return "application/octet-stream"
	}
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
