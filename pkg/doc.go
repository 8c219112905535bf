// Package pkg provides the core libraries for qrgen.
//
// # Overview
//
// qrgen turns text into QR codes. The pkg directory is organized into three
// areas:
//
//  1. Domain: [grid] (module matrices), [qr] (text to grid) and the
//     render packages (grid to bytes)
//  2. Infrastructure: [cache], [config], [output], [observability]
//  3. Orchestration: [pipeline] (encode → render) and [server] (HTTP)
//
// # Architecture
//
// The typical data flow:
//
//	text + error-correction level
//	         ↓
//	    [qr] package (symbol encoding)
//	         ↓
//	    [grid] package (immutable module matrix)
//	         ↓
//	    render/geometry (module ↔ device coordinates)
//	       ↙       ↘
//	render/raster  render/vector
//	       ↓           ↓
//	render/sink    SVG document
//	(PNG/BMP/TIFF)
//
// # Quick Start
//
//	g, err := qr.Encode("https://example.com", qr.LevelHigh)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	svg, err := vector.RenderSVG(g, 4)
//
//	f, _ := os.Create("code.png")
//	defer f.Close()
//	err = raster.Encode(g, geometry.Params{Scale: 8, Border: 4}, sink.NewPNG(f))
//
// Or go through the pipeline, which adds format dispatch, caching and
// observability hooks:
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Text:   "https://example.com",
//	    Format: pipeline.FormatSVG,
//	})
//
// # Errors
//
// Every failure a caller can act on carries an [errors.Code]. Rendering
// fails only on invalid parameters (INVALID_PARAMS); the glue adds
// UNSUPPORTED_FORMAT, SINK_ACQUISITION and SINK_WRITE.
//
// [grid]: github.com/matzehuels/qrgen/pkg/grid
// [qr]: github.com/matzehuels/qrgen/pkg/qr
// [cache]: github.com/matzehuels/qrgen/pkg/cache
// [config]: github.com/matzehuels/qrgen/pkg/config
// [output]: github.com/matzehuels/qrgen/pkg/output
// [observability]: github.com/matzehuels/qrgen/pkg/observability
// [pipeline]: github.com/matzehuels/qrgen/pkg/pipeline
// [server]: github.com/matzehuels/qrgen/pkg/server
// [errors.Code]: github.com/matzehuels/qrgen/pkg/errors#Code
package pkg
