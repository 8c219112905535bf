// Package raster renders a module grid into RGB pixel rows.
//
// # Overview
//
// The encoder walks device pixels row by row (top row first, left to right),
// maps each pixel back to a module with [geometry.Params.Dark], and emits
// pure black (0,0,0) for dark modules and pure white (255,255,255) for light
// modules and the border. No other values ever appear.
//
// Output is handed to a [RowSink] one row at a time, so the encoder never
// holds more than a single row. Container writers in package sink implement
// RowSink; [PixelBuffer] implements it too for callers that want the whole
// image in memory:
//
//	buf, err := raster.Render(g, geometry.Params{Scale: 8, Border: 4})
//
//	// or stream into a container
//	err := raster.Encode(g, params, sink.NewPNG(w))
//
// The only failure the encoder itself can produce is an INVALID_PARAMS error
// for a negative border or non-positive scale, reported before the sink sees
// anything. Sink failures are reported as SINK_WRITE errors.
//
// [geometry.Params.Dark]: github.com/matzehuels/qrgen/pkg/render/geometry.Params.Dark
package raster
