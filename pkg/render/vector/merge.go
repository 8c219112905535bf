package vector

import (
	"strconv"

	"github.com/matzehuels/qrgen/pkg/grid"
)

// runFragments emits one rectangle per maximal horizontal run of dark
// modules, in the same row-major order as moduleFragments. A run of length
// one produces exactly the unmerged unit-square fragment.
func runFragments(g grid.Grid, border int) []string {
	n := g.Size()
	var frags []string
	for y := 0; y < n; y++ {
		x := 0
		for x < n {
			if !g.ModuleAt(x, y) {
				x++
				continue
			}
			start := x
			for x < n && g.ModuleAt(x, y) {
				x++
			}
			frags = append(frags, runRect(start+border, y+border, x-start))
		}
	}
	return frags
}

func runRect(x, y, w int) string {
	ws := strconv.Itoa(w)
	return "M" + strconv.Itoa(x) + "," + strconv.Itoa(y) + "h" + ws + "v1h-" + ws + "z"
}
