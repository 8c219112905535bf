package vector

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/qrgen/pkg/errors"
	"github.com/matzehuels/qrgen/pkg/grid"
	"github.com/matzehuels/qrgen/pkg/render/geometry"
)

const (
	svgHeader  = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"
	svgDoctype = "<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n"
	svgOpen    = "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %d %d\" stroke=\"none\">\n"
	svgRect    = "\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n"
	svgPath    = "\t<path d=\"%s\" fill=\"#000000\"/>\n"
	svgClose   = "</svg>\n"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	mergeRuns bool
}

// WithMergedRuns collapses horizontal runs of dark modules into single
// rectangles. The rendered shape is identical; only the path data shrinks.
func WithMergedRuns() SVGOption { return func(r *svgRenderer) { r.mergeRuns = true } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG returns the SVG document for g with the given border.
// A negative border yields an INVALID_PARAMS error and no output.
func RenderSVG(g grid.Grid, border int, opts ...SVGOption) ([]byte, error) {
	r := newSVGRenderer(opts...)

	if err := grid.Validate(g); err != nil {
		return nil, err
	}
	if err := geometry.ValidateBorderFor(g.Size(), border); err != nil {
		return nil, err
	}

	var frags []string
	if r.mergeRuns {
		frags = runFragments(g, border)
	} else {
		frags = moduleFragments(g, border)
	}

	dim := geometry.Dimension(g.Size(), border)

	var buf bytes.Buffer
	buf.WriteString(svgHeader)
	buf.WriteString(svgDoctype)
	fmt.Fprintf(&buf, svgOpen, dim, dim)
	buf.WriteString(svgRect)
	fmt.Fprintf(&buf, svgPath, strings.Join(frags, " "))
	buf.WriteString(svgClose)
	return buf.Bytes(), nil
}

// WriteSVG renders g and writes the document to w in a single write, so
// nothing reaches w when rendering fails. Write failures are reported as
// SINK_WRITE errors.
func WriteSVG(w io.Writer, g grid.Grid, border int, opts ...SVGOption) error {
	data, err := RenderSVG(g, border, opts...)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeSinkWrite, err, "write svg")
	}
	return nil
}

// Fragments returns the per-module path fragments of g in row-major order,
// one per dark module.
func Fragments(g grid.Grid, border int) ([]string, error) {
	if err := grid.Validate(g); err != nil {
		return nil, err
	}
	if err := geometry.ValidateBorderFor(g.Size(), border); err != nil {
		return nil, err
	}
	return moduleFragments(g, border), nil
}

// PathData returns the value of the path's d attribute: all fragments joined
// by single spaces.
func PathData(g grid.Grid, border int, opts ...SVGOption) (string, error) {
	r := newSVGRenderer(opts...)
	if err := grid.Validate(g); err != nil {
		return "", err
	}
	if err := geometry.ValidateBorderFor(g.Size(), border); err != nil {
		return "", err
	}
	if r.mergeRuns {
		return strings.Join(runFragments(g, border), " "), nil
	}
	return strings.Join(moduleFragments(g, border), " "), nil
}

func moduleFragments(g grid.Grid, border int) []string {
	n := g.Size()
	var frags []string
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if g.ModuleAt(x, y) {
				frags = append(frags, unitSquare(x+border, y+border))
			}
		}
	}
	return frags
}

func unitSquare(x, y int) string {
	return "M" + strconv.Itoa(x) + "," + strconv.Itoa(y) + "h1v1h-1z"
}
