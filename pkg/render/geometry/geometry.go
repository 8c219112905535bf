// Package geometry maps logical module coordinates to output-space
// coordinates and back.
//
// All rendering is governed by two parameters: Scale, the number of device
// units per module edge, and Border, the width of the light quiet zone around
// the grid measured in modules. For a grid of size N the output edge length is
//
//	OutputSize = (N + 2*Border) * Scale
//
// Module x covers the half-open device interval
// [(x+Border)*Scale, (x+Border+1)*Scale). The inverse maps device pixel p to
// module p/Scale - Border; indices outside [0, N) fall in the border.
//
// The vector encoder works in module units and only uses Border; the raster
// encoder uses both. Either way the output edge is capped at [MaxOutputSize].
package geometry

import (
	"github.com/matzehuels/qrgen/pkg/errors"
	"github.com/matzehuels/qrgen/pkg/grid"
)

// Default rendering parameters.
const (
	DefaultScale  = 8
	DefaultBorder = 4
)

// MaxOutputSize is the largest output edge accepted, in device units for
// raster output and module units for vector output. A 16384px square RGB
// image is 768 MiB.
const MaxOutputSize = 1 << 14

// Params holds the rendering parameters shared by both encoders.
type Params struct {
	Scale  int `json:"scale" toml:"scale" yaml:"scale"`    // device units per module edge
	Border int `json:"border" toml:"border" yaml:"border"` // quiet zone width in modules
}

// Defaults returns the default parameters (scale 8, border 4).
func Defaults() Params {
	return Params{Scale: DefaultScale, Border: DefaultBorder}
}

// Validate checks both parameters without knowing the grid. It returns an
// INVALID_PARAMS error when the border is negative, the scale is below one,
// or either alone exceeds MaxOutputSize.
func (p Params) Validate() error {
	if err := ValidateBorder(p.Border); err != nil {
		return err
	}
	if p.Scale < 1 {
		return errors.New(errors.ErrCodeInvalidParams, "scale must be at least 1, got %d", p.Scale)
	}
	if p.Scale > MaxOutputSize {
		return errors.New(errors.ErrCodeInvalidParams, "scale must be at most %d, got %d", MaxOutputSize, p.Scale)
	}
	return nil
}

// ValidateFor checks p against a grid of size n: on top of Validate, the
// raster edge (n + 2*border) * scale must not exceed MaxOutputSize.
func (p Params) ValidateFor(n int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := ValidateBorderFor(n, p.Border); err != nil {
		return err
	}
	// Both factors are at most MaxOutputSize here, so the product cannot
	// overflow.
	if size := p.OutputSize(n); size > MaxOutputSize {
		return errors.New(errors.ErrCodeInvalidParams,
			"output of %dx%d pixels exceeds the maximum of %d; lower scale or border", size, size, MaxOutputSize)
	}
	return nil
}

// ValidateBorder checks the border alone. The vector encoder ignores scale
// and only needs this check.
func ValidateBorder(border int) error {
	if border < 0 {
		return errors.New(errors.ErrCodeInvalidParams, "border must be non-negative, got %d", border)
	}
	if border > MaxOutputSize {
		return errors.New(errors.ErrCodeInvalidParams, "border must be at most %d, got %d", MaxOutputSize, border)
	}
	return nil
}

// ValidateBorderFor checks the border against a grid of size n: the canvas
// edge n + 2*border must not exceed MaxOutputSize.
func ValidateBorderFor(n, border int) error {
	if err := ValidateBorder(border); err != nil {
		return err
	}
	if n > MaxOutputSize {
		return errors.New(errors.ErrCodeInvalidParams, "grid size %d exceeds the maximum of %d", n, MaxOutputSize)
	}
	if dim := Dimension(n, border); dim > MaxOutputSize {
		return errors.New(errors.ErrCodeInvalidParams,
			"canvas of %d modules exceeds the maximum of %d; lower the border", dim, MaxOutputSize)
	}
	return nil
}

// Dimension returns the canvas edge length in module units, N + 2*border.
func Dimension(n, border int) int {
	return n + 2*border
}

// OutputSize returns the device edge length, (N + 2*Border) * Scale.
func (p Params) OutputSize(n int) int {
	return Dimension(n, p.Border) * p.Scale
}

// ModuleSpan returns the half-open device interval [lo, hi) covered by
// module index i along one axis.
func (p Params) ModuleSpan(i int) (lo, hi int) {
	lo = (i + p.Border) * p.Scale
	return lo, lo + p.Scale
}

// ModuleIndex maps a device coordinate (>= 0) to a module index along one
// axis. The result is negative or >= N for pixels in the border.
func (p Params) ModuleIndex(pixel int) int {
	return pixel/p.Scale - p.Border
}

// Dark reports whether device pixel (px, py) is dark: its module lies inside
// the grid and that module is dark. Border pixels are always light.
func (p Params) Dark(g grid.Grid, px, py int) bool {
	mx, my := p.ModuleIndex(px), p.ModuleIndex(py)
	n := g.Size()
	return mx >= 0 && mx < n && my >= 0 && my < n && g.ModuleAt(mx, my)
}
