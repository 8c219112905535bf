// Package sink provides raster container writers for rendered module grids.
//
// # Overview
//
// A "sink" receives the RGB rows produced by [raster.Encode] and frames them
// as an image file. This package provides:
//
//   - PNG: lossless, the default raster format ([NewPNG])
//   - BMP: uncompressed Windows bitmap ([NewBMP])
//   - TIFF: deflate-compressed TIFF ([NewTIFF])
//
// Every sink implements [raster.RowSink] and writes to an io.Writer it does
// not own. The container is only written on Flush, after the last row has
// arrived, so a failed render never leaves a half-framed image behind in the
// writer.
//
// Basic usage:
//
//	f, err := os.Create("out.png")
//	...
//	defer f.Close()
//	err = raster.Encode(g, params, sink.NewPNG(f))
//
// Use [New] to pick a sink by format name.
//
// [raster.Encode]: github.com/matzehuels/qrgen/pkg/render/raster.Encode
// [raster.RowSink]: github.com/matzehuels/qrgen/pkg/render/raster.RowSink
package sink
