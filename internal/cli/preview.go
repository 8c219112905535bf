package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/qrgen/pkg/errors"
	"github.com/matzehuels/qrgen/pkg/grid"
	"github.com/matzehuels/qrgen/pkg/qr"
	"github.com/matzehuels/qrgen/pkg/render/geometry"
	"github.com/matzehuels/qrgen/pkg/render/text"
)

// maxPreviewBorder bounds the border the preview lets you grow to.
const maxPreviewBorder = 16

var previewFrameStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorDim)

// previewCommand creates the interactive terminal preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "preview <text>",
		Short: "Preview a QR code in the terminal",
		Long: `Preview renders the QR code for text with Unicode half blocks and lets you
adjust the border, error-correction level and colours interactively.

When stdout is not a terminal the symbol is printed once instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts, err := flags.options(cmd, cfg)
			if err != nil {
				return err
			}

			if err := geometry.ValidateBorder(opts.Params.Border); err != nil {
				return err
			}

			m := newPreviewModel(args[0], opts.Level, opts.Params.Border, opts.Invert)
			if m.err != nil {
				return m.err
			}
			if err := geometry.ValidateBorderFor(m.grid.Size(), m.border); err != nil {
				return err
			}

			if f, ok := c.out.(*os.File); !ok || !isTerminal(f) {
				_, err := fmt.Fprint(c.out, m.symbol())
				return err
			}

			p := tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithOutput(c.out))
			_, err = p.Run()
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

// =============================================================================
// previewModel - Interactive symbol preview
// =============================================================================

// previewModel is the bubbletea model for the terminal preview.
type previewModel struct {
	text   string
	level  qr.Level
	border int
	invert bool

	grid *grid.Bitmap
	err  error
}

func newPreviewModel(s string, level qr.Level, border int, invert bool) previewModel {
	m := previewModel{text: s, level: level, border: border, invert: invert}
	m.encode()
	return m
}

func (m *previewModel) encode() {
	m.grid, m.err = qr.Encode(m.text, m.level)
}

// nextLevel cycles through the error-correction levels.
func (m *previewModel) nextLevel() {
	for i, l := range qr.Levels {
		if l == m.level {
			m.level = qr.Levels[(i+1)%len(qr.Levels)]
			m.encode()
			return
		}
	}
	m.level = qr.DefaultLevel
	m.encode()
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "+", "=", "up", "k":
			if m.border < maxPreviewBorder {
				m.border++
			}
		case "-", "_", "down", "j":
			if m.border > 0 {
				m.border--
			}
		case "i":
			m.invert = !m.invert
		case "l", "tab":
			m.nextLevel()
		}
	}
	return m, nil
}

func (m previewModel) symbol() string {
	if m.err != nil {
		return ""
	}
	var opts []text.Option
	if m.invert {
		opts = append(opts, text.WithInvert())
	}
	s, err := text.Render(m.grid, m.border, opts...)
	if err != nil {
		return ""
	}
	return s
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("QR Preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("+/- border  l level  i invert  q quit"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(styleIconError.Render(iconError) + " " + errors.UserMessage(m.err))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(previewFrameStyle.Render(strings.TrimSuffix(m.symbol(), "\n")))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d×%d modules · level %s · border %d",
		m.grid.Size(), m.grid.Size(), m.level, m.border)))
	b.WriteString("\n")
	return b.String()
}
