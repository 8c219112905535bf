// Package qr turns text into a module grid.
//
// The symbol itself is built by github.com/yeqown/go-qrcode/v2; this package
// only selects the error-correction level and captures the finished matrix
// into a [grid.Bitmap] that the renderers consume. The returned grid has no
// quiet zone: the border is a rendering parameter, not part of the symbol.
//
//	g, err := qr.Encode("https://example.com", qr.LevelHigh)
//	if err != nil {
//	    return err
//	}
//	svg, err := vector.RenderSVG(g, 4)
//
// [grid.Bitmap]: github.com/matzehuels/qrgen/pkg/grid.Bitmap
package qr
