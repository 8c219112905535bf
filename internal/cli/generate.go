package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/qrgen/pkg/config"
	"github.com/matzehuels/qrgen/pkg/grid"
	"github.com/matzehuels/qrgen/pkg/output"
	"github.com/matzehuels/qrgen/pkg/pipeline"
	"github.com/matzehuels/qrgen/pkg/qr"
)

// renderFlags are the rendering flags shared by the root and serve commands.
type renderFlags struct {
	scale  int
	border int
	level  string
	merge  bool
	invert bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVarP(&f.scale, "scale", "s", 0, "pixels per module for raster output (default 8)")
	fs.IntVarP(&f.border, "border", "b", 0, "quiet zone width in modules (default 4)")
	fs.StringVarP(&f.level, "level", "l", "", "error-correction level: low, medium, quartile, high (default high)")
	fs.BoolVar(&f.merge, "merge", false, "merge horizontal runs of dark modules in SVG output")
	fs.BoolVar(&f.invert, "invert", false, "swap dark and light in terminal output")
	_ = cmd.RegisterFlagCompletionFunc("level", completeLevel)
}

// options builds pipeline options from the config, overridden by any flag the
// user set explicitly.
func (f *renderFlags) options(cmd *cobra.Command, cfg config.Config) (pipeline.Options, error) {
	opts := pipeline.Options{
		Params:    cfg.Params(),
		MergeRuns: cfg.Render.MergeRuns,
	}
	level, err := cfg.Level()
	if err != nil {
		return opts, err
	}
	opts.Level = level

	fs := cmd.Flags()
	if fs.Changed("scale") {
		opts.Params.Scale = f.scale
	}
	if fs.Changed("border") {
		opts.Params.Border = f.border
	}
	if fs.Changed("level") {
		if opts.Level, err = qr.ParseLevel(f.level); err != nil {
			return opts, err
		}
	}
	if fs.Changed("merge") {
		opts.MergeRuns = f.merge
	}
	opts.Invert = f.invert
	return opts, nil
}

// runGenerate encodes text and writes it to out in the format its extension
// selects.
func (c *CLI) runGenerate(cmd *cobra.Command, flags renderFlags, text, out string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	opts, err := flags.options(cmd, cfg)
	if err != nil {
		return err
	}
	opts.Text = text
	if opts.Format, err = pipeline.FormatFromPath(out); err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	prog := newProgress(logger)
	runner := pipeline.NewRunner(nil, logger)
	g, _, err := runner.Encode(ctx, opts.Text, opts.Level)
	if err != nil {
		return err
	}
	logger.Debug("encoded symbol", "modules", g.Size(), "dark", grid.DarkCount(g), "level", opts.Level)

	if opts.Format == pipeline.FormatText {
		return pipeline.Render(ctx, c.out, g, opts.RenderOptions())
	}

	if err := writeArtifact(ctx, out, g, opts); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %dx%d %s", g.Size(), g.Size(), opts.Format))
	printSuccess(c.out, "QR code generated successfully to %s", out)
	return nil
}

// writeArtifact streams the rendered grid into path. Nothing is left at path
// when rendering fails.
func writeArtifact(ctx context.Context, path string, g grid.Grid, opts pipeline.Options) error {
	return output.WriteFile(path, func(w io.Writer) error {
		return pipeline.Render(ctx, w, g, opts.RenderOptions())
	})
}

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
