package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/identicon/internal/identicon"
)

const (
	filledBlock = "██"
	emptyBlock  = "  "
)

// Preview draws the grid of img as colored terminal blocks, one row per line.
func Preview(img identicon.Image) string {
	cellStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(img.Color.Hex()))

	var b strings.Builder
	for row := 0; row < identicon.GridSize; row++ {
		for col := 0; col < identicon.GridSize; col++ {
			if img.Filled(row*identicon.GridSize + col) {
				b.WriteString(cellStyle.Render(filledBlock))
			} else {
				b.WriteString(emptyBlock)
			}
		}
		if row < identicon.GridSize-1 {
			b.WriteByte('\n')
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#6B6B6B")).
		Render(b.String())
}
