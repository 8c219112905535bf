package vector

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/qrgen/pkg/errors"
	"github.com/matzehuels/qrgen/pkg/grid"
	"github.com/matzehuels/qrgen/pkg/render/geometry"
)

func mustParse(t *testing.T, pic string) *grid.Bitmap {
	t.Helper()
	g, err := grid.Parse(pic)
	if err != nil {
		t.Fatalf("grid.Parse: %v", err)
	}
	return g
}

func TestSingleDarkModule(t *testing.T) {
	g := mustParse(t, "#")

	d, err := PathData(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if d != "M0,0h1v1h-1z" {
		t.Errorf("PathData = %q, want %q", d, "M0,0h1v1h-1z")
	}

	svg, err := RenderSVG(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte(`viewBox="0 0 1 1"`)) {
		t.Errorf("missing viewBox \"0 0 1 1\":\n%s", svg)
	}
}

func TestGoldenDocument(t *testing.T) {
	g := mustParse(t, "#.\n.#")

	svg, err := RenderSVG(g, 1)
	if err != nil {
		t.Fatal(err)
	}

	want := "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
		"<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n" +
		"<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 4 4\" stroke=\"none\">\n" +
		"\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n" +
		"\t<path d=\"M1,1h1v1h-1z M2,2h1v1h-1z\" fill=\"#000000\"/>\n" +
		"</svg>\n"
	if diff := cmp.Diff(want, string(svg)); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestFragmentOrderRowMajor(t *testing.T) {
	g := mustParse(t, `
		.#.
		#.#
		##.
	`)

	frags, err := Fragments(g, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"M3,2h1v1h-1z",
		"M2,3h1v1h-1z",
		"M4,3h1v1h-1z",
		"M2,4h1v1h-1z",
		"M3,4h1v1h-1z",
	}
	if diff := cmp.Diff(want, frags); diff != "" {
		t.Errorf("fragments mismatch (-want +got):\n%s", diff)
	}
}

func TestFragmentCountMatchesDarkModules(t *testing.T) {
	pics := []string{
		"#",
		".",
		"##\n##",
		"#.#\n.#.\n#.#",
		".#..\n....\n..#.\n...#",
	}

	for _, pic := range pics {
		g := mustParse(t, pic)
		d, err := PathData(g, 4)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := len(strings.Fields(d)), grid.DarkCount(g); got != want {
			t.Errorf("%q: %d fragments, want %d", pic, got, want)
		}
		if strings.HasPrefix(d, " ") || strings.HasSuffix(d, " ") || strings.Contains(d, "  ") {
			t.Errorf("%q: separators are not single inner spaces: %q", pic, d)
		}
	}
}

func TestFirstFragmentHasNoSeparator(t *testing.T) {
	// (0,0) is light, so the first fragment comes from elsewhere.
	g := mustParse(t, "..\n.#")
	d, err := PathData(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if d != "M1,1h1v1h-1z" {
		t.Errorf("PathData = %q, want %q", d, "M1,1h1v1h-1z")
	}
}

func TestWellFormed(t *testing.T) {
	tests := []struct {
		name   string
		pic    string
		border int
	}{
		{"single dark", "#", 0},
		{"single light", ".", 0},
		{"single dark bordered", "#", 4},
		{"all light", "...\n...\n...", 1},
		{"checker", "#.#\n.#.\n#.#", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svg, err := RenderSVG(mustParse(t, tt.pic), tt.border)
			if err != nil {
				t.Fatal(err)
			}
			checkWellFormed(t, svg)
		})
	}
}

// checkWellFormed walks every token and checks the element structure.
func checkWellFormed(t *testing.T, svg []byte) {
	t.Helper()

	dec := xml.NewDecoder(bytes.NewReader(svg))
	dec.Strict = true

	var (
		stack    []string
		elements []string
		sawProc  bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("invalid XML: %v\n%s", err, svg)
		}
		switch tok := tok.(type) {
		case xml.ProcInst:
			sawProc = tok.Target == "xml"
		case xml.StartElement:
			stack = append(stack, tok.Name.Local)
			elements = append(elements, tok.Name.Local)
		case xml.EndElement:
			if len(stack) == 0 || stack[len(stack)-1] != tok.Name.Local {
				t.Fatalf("unbalanced </%s>", tok.Name.Local)
			}
			stack = stack[:len(stack)-1]
		}
	}

	if !sawProc {
		t.Error("missing <?xml ...?> header")
	}
	if len(stack) != 0 {
		t.Errorf("unclosed elements: %v", stack)
	}
	if diff := cmp.Diff([]string{"svg", "rect", "path"}, elements); diff != "" {
		t.Errorf("element sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestLineEndings(t *testing.T) {
	svg, err := RenderSVG(mustParse(t, "#.\n##"), 4)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(svg, []byte("\r")) {
		t.Error("document contains carriage returns")
	}
	if !bytes.HasSuffix(svg, []byte("</svg>\n")) {
		t.Error("document does not end with </svg> and a single newline")
	}
	if got := bytes.Count(svg, []byte("\n")); got != 6 {
		t.Errorf("document has %d lines, want 6", got)
	}
}

func TestNegativeBorder(t *testing.T) {
	g := mustParse(t, "#")

	if svg, err := RenderSVG(g, -1); !errors.Is(err, errors.ErrCodeInvalidParams) || svg != nil {
		t.Errorf("RenderSVG(-1) = %q, %v; want nil, INVALID_PARAMS", svg, err)
	}
	if _, err := Fragments(g, -1); !errors.Is(err, errors.ErrCodeInvalidParams) {
		t.Errorf("Fragments(-1) error = %v, want INVALID_PARAMS", err)
	}

	var buf bytes.Buffer
	if err := WriteSVG(&buf, g, -1); !errors.Is(err, errors.ErrCodeInvalidParams) {
		t.Errorf("WriteSVG(-1) error = %v, want INVALID_PARAMS", err)
	}
	if buf.Len() != 0 {
		t.Errorf("WriteSVG wrote %d bytes on error", buf.Len())
	}
}

func TestOversizedBorder(t *testing.T) {
	g := mustParse(t, "#")

	for _, border := range []int{geometry.MaxOutputSize, int(^uint(0) >> 1)} {
		if svg, err := RenderSVG(g, border); !errors.Is(err, errors.ErrCodeInvalidParams) || svg != nil {
			t.Errorf("RenderSVG(%d) = %d bytes, %v; want nil, INVALID_PARAMS", border, len(svg), err)
		}
		if _, err := PathData(g, border); !errors.Is(err, errors.ErrCodeInvalidParams) {
			t.Errorf("PathData(%d) error = %v, want INVALID_PARAMS", border, err)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, fmt.Errorf("broken pipe") }

func TestWriteSVGSinkFailure(t *testing.T) {
	err := WriteSVG(failingWriter{}, mustParse(t, "#"), 0)
	if !errors.Is(err, errors.ErrCodeSinkWrite) {
		t.Errorf("WriteSVG error = %v, want SINK_WRITE", err)
	}
}

func TestIdempotent(t *testing.T) {
	g := mustParse(t, "##.\n.#.\n#.#")
	a, err := RenderSVG(g, 4)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RenderSVG(g, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two renders of the same grid differ")
	}
}
