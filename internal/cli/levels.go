package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/qrgen/pkg/errors"
	"github.com/matzehuels/qrgen/pkg/grid"
	"github.com/matzehuels/qrgen/pkg/qr"
	"github.com/matzehuels/qrgen/pkg/render/geometry"
)

// levelRow is one line of the levels table.
type levelRow struct {
	level   qr.Level
	modules int
	dark    int
	err     error
}

// levelsCommand creates the command comparing error-correction levels.
func (c *CLI) levelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "levels <text>",
		Short: "Compare symbol sizes across error-correction levels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := compareLevels(args[0])

			var failed int
			for _, r := range rows {
				if r.err != nil {
					failed++
				}
			}
			if failed == len(rows) {
				return rows[len(rows)-1].err
			}

			fmt.Fprintln(c.out, levelsTable(rows))
			for _, r := range rows {
				if r.err != nil {
					printError(c.out, "%s: %s", r.level, errors.UserMessage(r.err))
				}
			}
			return nil
		},
	}
}

func compareLevels(text string) []levelRow {
	rows := make([]levelRow, 0, len(qr.Levels))
	for _, level := range qr.Levels {
		g, err := qr.Encode(text, level)
		if err != nil {
			rows = append(rows, levelRow{level: level, err: err})
			continue
		}
		rows = append(rows, levelRow{level: level, modules: g.Size(), dark: grid.DarkCount(g)})
	}
	return rows
}

func levelsTable(rows []levelRow) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	p := geometry.Defaults()

	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		if r.err != nil {
			data = append(data, []string{string(r.level), "—", "—", "—"})
			continue
		}
		px := p.OutputSize(r.modules)
		data = append(data, []string{
			string(r.level),
			fmt.Sprintf("%d×%d", r.modules, r.modules),
			strconv.Itoa(r.dark),
			fmt.Sprintf("%d×%d", px, px),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Level", "Modules", "Dark", "PNG px").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		}).
		Render()
}
