package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/qrgen/pkg/buildinfo"
	"github.com/matzehuels/qrgen/pkg/config"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "qrgen"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer
	verbose    bool
	configPath string
}

// New creates a new CLI instance with a default logger writing to w.
// Command results go to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command results (success lines, cache paths, text
// output) to w.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// RootCommand creates the root cobra command with all subcommands registered.
//
// The root command itself generates a QR code: `qrgen <text> <output>`.
func (c *CLI) RootCommand() *cobra.Command {
	var flags renderFlags

	root := &cobra.Command{
		Use:   "qrgen <text> <output>",
		Short: "qrgen renders text as a QR code",
		Long: `qrgen encodes text as a QR code and writes it to a file.

The output format follows the file extension: .svg for vector output, .png,
.bmp or .tif/.tiff for raster output. Use "-" as the output to print the
symbol to the terminal instead.`,
		Example: `  qrgen "https://example.com" code.svg
  qrgen --scale 4 --border 2 --level M "hello" code.png
  qrgen "hello" -`,
		Version:      buildinfo.Version,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := LogInfo
			if c.verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			installHooks(c.Logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, flags, args[0], args[1])
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/qrgen/config.toml)")
	flags.register(root)

	// Register all subcommands
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.levelsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig reads the --config file when given, else the default file when
// present, else the built-in defaults.
func (c *CLI) loadConfig() (config.Config, error) {
	if c.configPath != "" {
		cfg, err := config.Load(c.configPath)
		if err != nil {
			return cfg, err
		}
		c.Logger.Debug("loaded config", "path", c.configPath)
		return cfg, nil
	}

	cfg, path, err := config.LoadDefault(appName)
	if err != nil {
		return cfg, err
	}
	if path != "" {
		c.Logger.Debug("loaded config", "path", path)
	}
	return cfg, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/qrgen/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
