package grid

import (
	"fmt"
	"strings"

	"github.com/matzehuels/qrgen/pkg/errors"
)

// Grid is a read-only square module matrix.
//
// ModuleAt is only defined for 0 <= x, y < Size(). Callers in this module
// never ask outside that range.
type Grid interface {
	Size() int
	ModuleAt(x, y int) bool
}

// Bitmap is an immutable Grid backed by a row-major bool slice.
type Bitmap struct {
	size    int
	modules []bool
}

// New returns a size×size Bitmap whose modules are produced by dark.
// The callback is invoked exactly once per module in row-major order.
func New(size int, dark func(x, y int) bool) (*Bitmap, error) {
	if size < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "grid size must be at least 1, got %d", size)
	}
	b := &Bitmap{size: size, modules: make([]bool, size*size)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			b.modules[y*size+x] = dark(x, y)
		}
	}
	return b, nil
}

// FromRows builds a Bitmap from rows[y][x]. All rows must have the same
// length as the number of rows.
func FromRows(rows [][]bool) (*Bitmap, error) {
	n := len(rows)
	for y, row := range rows {
		if len(row) != n {
			return nil, errors.New(errors.ErrCodeInvalidInput, "grid is not square: row %d has %d modules, want %d", y, len(row), n)
		}
	}
	return New(n, func(x, y int) bool { return rows[y][x] })
}

// Parse builds a Bitmap from a text picture. Each non-blank line is one row;
// '#' is dark and '.' is light. Leading and trailing whitespace of every line
// is ignored.
func Parse(s string) (*Bitmap, error) {
	var rows [][]bool
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for _, r := range line {
			switch r {
			case '#':
				row = append(row, true)
			case '.':
				row = append(row, false)
			default:
				return nil, errors.New(errors.ErrCodeInvalidInput, "unexpected character %q in grid picture", r)
			}
		}
		rows = append(rows, row)
	}
	return FromRows(rows)
}

// Size returns the edge length N.
func (b *Bitmap) Size() int { return b.size }

// ModuleAt reports whether module (x, y) is dark. Coordinates outside the
// grid report light.
func (b *Bitmap) ModuleAt(x, y int) bool {
	if x < 0 || y < 0 || x >= b.size || y >= b.size {
		return false
	}
	return b.modules[y*b.size+x]
}

// String renders the grid as a text picture accepted by Parse.
func (b *Bitmap) String() string {
	var sb strings.Builder
	sb.Grow(b.size * (b.size + 1))
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if b.ModuleAt(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DarkCount returns the number of dark modules in g.
func DarkCount(g Grid) int {
	n := 0
	size := g.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if g.ModuleAt(x, y) {
				n++
			}
		}
	}
	return n
}

// Validate checks that g can be rendered.
func Validate(g Grid) error {
	if g == nil {
		return errors.New(errors.ErrCodeInvalidInput, "grid is nil")
	}
	if n := g.Size(); n < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "grid size must be at least 1, got %d", n)
	}
	return nil
}

// Ensure Bitmap implements Grid.
var _ Grid = (*Bitmap)(nil)

// Ensure Bitmap prints as a picture.
var _ fmt.Stringer = (*Bitmap)(nil)
