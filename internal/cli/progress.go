package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a one-line batch progress indicator.
type ProgressBar struct {
	completed int
	total     int
	label     string
	width     int
}

// NewProgressBar creates a new progress bar with the specified total and width.
func NewProgressBar(total int, width int) *ProgressBar {
	if width <= 0 {
		width = 15
	}
	return &ProgressBar{
		total: total,
		width: width,
	}
}

// Update sets the current progress and label.
func (p *ProgressBar) Update(completed int, label string) {
	p.completed = completed
	p.label = label
}

// Render returns the formatted progress bar.
func (p *ProgressBar) Render() string {
	if p.total == 0 {
		return ""
	}

	completed := min(p.completed, p.total)
	filled := p.width * completed / p.total
	bar := strings.Repeat("█", filled) + strings.Repeat("░", p.width-filled)

	progressStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981")).
		Bold(true)

	barStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981"))

	countStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B6B6B"))

	return barStyle.Render("["+bar+"]") +
		countStyle.Render(fmt.Sprintf(" %d/%d ", completed, p.total)) +
		progressStyle.Render(p.label)
}

// ClearLine clears the current terminal line on w for in-place updates.
func ClearLine(w io.Writer) {
	_, _ = fmt.Fprint(w, "\r\033[K")
}
