// Package pipeline provides the text → module grid → artifact pipeline for
// qrgen.
//
// The CLI and the HTTP server both go through this package so that format
// dispatch, defaults, caching and observability behave identically on every
// entry point.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Encode: text and error-correction level to a module grid ([qr.Encode])
//  2. Render: module grid to bytes in one output format ([Render])
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Text:   "https://example.com",
//	    Format: pipeline.FormatPNG,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("qr.png", result.Data, 0o644)
package pipeline

import (
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/qrgen/pkg/errors"
	"github.com/matzehuels/qrgen/pkg/qr"
	"github.com/matzehuels/qrgen/pkg/render/geometry"
	"github.com/matzehuels/qrgen/pkg/render/sink"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = sink.FormatPNG
	FormatBMP  = sink.FormatBMP
	FormatTIFF = sink.FormatTIFF
	FormatText = "text"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatBMP:  true,
	FormatTIFF: true,
	FormatText: true,
}

// extFormats maps lower-cased file extensions to formats.
var extFormats = map[string]string{
	".svg":  FormatSVG,
	".png":  FormatPNG,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
}

// StdoutPath is the output path that selects terminal text on stdout.
const StdoutPath = "-"

// DefaultTTL is how long rendered artifacts stay cached.
const DefaultTTL = 24 * time.Hour

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeUnsupportedFormat,
			"unsupported format: %q (must be one of: %s)", format, strings.Join(formatNames(), ", "))
	}
	return nil
}

// FormatFromPath picks the output format from a file name's extension,
// ignoring case. [StdoutPath] selects [FormatText].
func FormatFromPath(path string) (string, error) {
	if path == StdoutPath {
		return FormatText, nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeUnsupportedFormat,
		"unsupported file format %q: use a .svg, .png, .bmp or .tiff extension", filepath.Base(path))
}

// IsRaster reports whether format is rendered through the raster encoder.
func IsRaster(format string) bool {
	return slices.Contains(sink.Formats, format)
}

func formatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return names
}

// =============================================================================
// Options
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	Text      string          `json:"text"`
	Level     qr.Level        `json:"level,omitempty"`
	Format    string          `json:"format"`
	Params    geometry.Params `json:"params"`
	MergeRuns bool            `json:"merge_runs,omitempty"`

	// Invert swaps dark and light in text output.
	Invert bool `json:"invert,omitempty"`

	// Refresh bypasses cache lookups; the fresh result is still stored.
	Refresh bool `json:"refresh,omitempty"`
}

// SetDefaults fills zero-valued fields. A zero Scale becomes the default
// scale; Border is left alone since zero is a valid border.
func (o *Options) SetDefaults() {
	if o.Level == "" {
		o.Level = qr.DefaultLevel
	}
	if o.Params.Scale == 0 {
		o.Params.Scale = geometry.DefaultScale
	}
}

// Validate checks the options without encoding anything.
func (o *Options) Validate() error {
	if o.Text == "" {
		return errors.New(errors.ErrCodeInvalidInput, "text must not be empty")
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if _, err := qr.ParseLevel(string(o.Level)); err != nil {
		return err
	}
	return o.Params.Validate()
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Data is the rendered artifact.
	Data []byte

	// Format and ContentType describe Data.
	Format      string
	ContentType string

	// Cached reports whether Data came from the cache.
	Cached bool

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	GridSize   int
	DarkCount  int
	EncodeTime time.Duration
	RenderTime time.Duration
}
