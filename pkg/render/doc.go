// Package render groups the module-grid renderers.
//
// # Overview
//
// Every renderer consumes a [grid.Grid] and shares the coordinate rules of
// the [geometry] subpackage:
//
//   - [geometry]: scale and border, module ↔ device mapping
//   - [raster]: row-at-a-time RGB pixel rows for bitmap containers
//   - [sink]: PNG, BMP and TIFF containers fed by raster rows
//   - [vector]: SVG path documents in module units
//   - [text]: Unicode half-block rendering for terminals
//
// The raster and vector encoders are independent and share no state; both
// may run concurrently over the same grid.
//
// [grid.Grid]: github.com/matzehuels/qrgen/pkg/grid#Grid
// [geometry]: github.com/matzehuels/qrgen/pkg/render/geometry
// [raster]: github.com/matzehuels/qrgen/pkg/render/raster
// [sink]: github.com/matzehuels/qrgen/pkg/render/sink
// [vector]: github.com/matzehuels/qrgen/pkg/render/vector
// [text]: github.com/matzehuels/qrgen/pkg/render/text
package render
