package vector

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMergedRuns(t *testing.T) {
	g := mustParse(t, `
		###.
		.#.#
		....
		####
	`)

	d, err := PathData(g, 1, WithMergedRuns())
	if err != nil {
		t.Fatal(err)
	}
	want := "M1,1h3v1h-3z M2,2h1v1h-1z M4,2h1v1h-1z M1,4h4v1h-4z"
	if d != want {
		t.Errorf("PathData = %q, want %q", d, want)
	}
}

func TestMergedRunsSingletonsMatchDefault(t *testing.T) {
	// No two dark modules touch horizontally, so merging changes nothing.
	g := mustParse(t, "#.#\n.#.\n#.#")

	plain, err := PathData(g, 2)
	if err != nil {
		t.Fatal(err)
	}
	merged, err := PathData(g, 2, WithMergedRuns())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(plain, merged); diff != "" {
		t.Errorf("merged output differs (-plain +merged):\n%s", diff)
	}
}

func TestMergedRunsDocumentWellFormed(t *testing.T) {
	svg, err := RenderSVG(mustParse(t, "##\n##"), 4, WithMergedRuns())
	if err != nil {
		t.Fatal(err)
	}
	checkWellFormed(t, svg)
}
