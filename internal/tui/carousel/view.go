package carousel

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// GutterWidth is reserved on each side for the scroll arrows.
const GutterWidth = 2

var arrowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)

// Render lays the pre-rendered cards side by side and shows the visible
// window of the row, with arrows in the gutters when scrolling is possible.
func Render(c *Controller, cards []string) string {
	if c == nil || len(cards) == 0 {
		return ""
	}

	gap := strings.Repeat(" ", CardGap)
	parts := make([]string, 0, len(cards)*2)
	for i, card := range cards {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, card)
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	start := int(math.Round(c.Offset()))
	end := start + c.ViewportWidth()
	lines := strings.Split(strip, "\n")
	height := len(lines)

	left := gutter(c.CanScrollLeft(), "‹", height)
	right := gutter(c.CanScrollRight(), "›", height)

	for i, line := range lines {
		visible := ansi.Cut(line, start, end)
		if pad := c.ViewportWidth() - ansi.StringWidth(visible); pad > 0 {
			visible += strings.Repeat(" ", pad)
		}
		lines[i] = visible
	}
	window := strings.Join(lines, "\n")

	return lipgloss.JoinHorizontal(lipgloss.Top, left, window, right)
}

func gutter(show bool, arrow string, height int) string {
	rows := make([]string, height)
	for i := range rows {
		rows[i] = strings.Repeat(" ", GutterWidth)
	}
	if show && height > 0 {
		rows[height/2] = arrowStyle.Render(arrow) + " "
	}
	return strings.Join(rows, "\n")
}
