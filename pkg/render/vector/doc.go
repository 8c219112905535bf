// Package vector renders a module grid as an SVG document.
//
// # Document
//
// The output is resolution independent. Coordinates are in module units, so
// the viewBox edge is N + 2*border and the raster scale plays no part:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
//	<svg xmlns="http://www.w3.org/2000/svg" version="1.1" viewBox="0 0 D D" stroke="none">
//		<rect width="100%" height="100%" fill="#FFFFFF"/>
//		<path d="..." fill="#000000"/>
//	</svg>
//
// Every line ends with a single '\n' on every platform.
//
// # Path Data
//
// Each dark module (x, y) contributes one fragment drawing a unit square from
// its top-left corner:
//
//	M{x+border},{y+border}h1v1h-1z
//
// Fragments appear in row-major order (y ascending, then x ascending) and are
// joined by single spaces. Adjacent modules are not merged, which keeps the
// output trivially verifiable and byte-for-byte reproducible.
//
// [WithMergedRuns] enables an optional post-processing pass that collapses
// each horizontal run of dark modules into one rectangle. It is off by
// default.
//
// # Usage
//
//	svg, err := vector.RenderSVG(g, 4)
//
//	// Write directly to a file or response
//	err := vector.WriteSVG(w, g, 4, vector.WithMergedRuns())
package vector
