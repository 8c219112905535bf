package grid_test

import (
	"fmt"

	"github.com/matzehuels/qrgen/pkg/grid"
)

func ExampleParse() {
	g, err := grid.Parse(`
		##.
		.#.
		..#
	`)
	if err != nil {
		panic(err)
	}

	fmt.Println("Size:", g.Size())
	fmt.Println("Dark modules:", grid.DarkCount(g))
	fmt.Println("Center dark:", g.ModuleAt(1, 1))
	// Output:
	// Size: 3
	// Dark modules: 4
	// Center dark: true
}
