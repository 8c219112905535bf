package raster_test

import (
	"fmt"

	"github.com/matzehuels/qrgen/pkg/grid"
	"github.com/matzehuels/qrgen/pkg/render/geometry"
	"github.com/matzehuels/qrgen/pkg/render/raster"
)

func ExampleRender() {
	g, _ := grid.Parse("#.\n.#")

	buf, err := raster.Render(g, geometry.Params{Scale: 1, Border: 1})
	if err != nil {
		panic(err)
	}

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			if r, _, _ := buf.RGB(x, y); r == raster.Black {
				fmt.Print("#")
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println()
	}
	// Output:
	// ....
	// .#..
	// ..#.
	// ....
}
