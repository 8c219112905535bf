// Package grid defines the module matrix consumed by the renderers.
//
// A module matrix is a square N×N arrangement of boolean cells ("modules"),
// as produced by a QR-code encoder. Renderers only need two things from it:
// its edge length and whether a given module is dark. That capability is the
// [Grid] interface; [Bitmap] is the in-memory implementation used by the
// encoder adapter in package qr and throughout the tests.
//
// # Building Grids
//
// Grids come from the QR encoder in normal use:
//
//	g, err := qr.Encode("hello", qr.LevelHigh)
//
// or, for tests and golden files, from a text picture where '#' is dark and
// '.' is light:
//
//	g, err := grid.Parse(`
//	    #.
//	    .#
//	`)
//
// Grids are immutable once built and safe to share between goroutines.
package grid
