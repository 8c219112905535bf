// Package text renders a module grid for terminals using Unicode half blocks.
//
// Each output line covers two module rows, so a symbol keeps a roughly square
// aspect ratio in a typical monospace font. The border is drawn in module
// units like the vector output. Terminals with a dark background need
// [WithInvert] so that dark modules come out dark.
package text

import (
	"strings"

	"github.com/matzehuels/qrgen/pkg/grid"
	"github.com/matzehuels/qrgen/pkg/render/geometry"
)

const (
	blockFull  = "█"
	blockUpper = "▀"
	blockLower = "▄"
	blockEmpty = " "
)

// Option configures text rendering.
type Option func(*renderer)

type renderer struct {
	invert bool
}

// WithInvert draws light modules instead of dark ones.
func WithInvert() Option { return func(r *renderer) { r.invert = true } }

// Render returns the grid as lines of half-block characters, each ending in
// '\n'. A negative border yields an INVALID_PARAMS error.
func Render(g grid.Grid, border int, opts ...Option) (string, error) {
	var r renderer
	for _, opt := range opts {
		opt(&r)
	}
	if err := grid.Validate(g); err != nil {
		return "", err
	}
	if err := geometry.ValidateBorderFor(g.Size(), border); err != nil {
		return "", err
	}

	n := g.Size()
	dim := geometry.Dimension(n, border)

	// filled reports whether canvas cell (cx, cy) gets ink. Cells below the
	// canvas (the padding half of an odd last line) never do.
	filled := func(cx, cy int) bool {
		if cy >= dim {
			return false
		}
		x, y := cx-border, cy-border
		dark := x >= 0 && x < n && y >= 0 && y < n && g.ModuleAt(x, y)
		return dark != r.invert
	}

	var sb strings.Builder
	for cy := 0; cy < dim; cy += 2 {
		for cx := 0; cx < dim; cx++ {
			top, bottom := filled(cx, cy), filled(cx, cy+1)
			switch {
			case top && bottom:
				sb.WriteString(blockFull)
			case top:
				sb.WriteString(blockUpper)
			case bottom:
				sb.WriteString(blockLower)
			default:
				sb.WriteString(blockEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
