package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ClampMin returns min if value is lower, otherwise value.
func ClampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}

// Clamp bounds value to [lo, hi]. hi wins when the range is empty.
func Clamp(value, lo, hi int) int {
	if value > hi {
		return hi
	}
	if value < lo {
		return lo
	}
	return value
}

const (
	SplitThreshold = 90
	SplitLeftRatio = 0.62
	SplitMinLeft   = 40
	SplitMinRight  = 24
)

// SplitWidths returns left/right widths for a two-panel layout.
func SplitWidths(total int, leftRatio float64, minLeft, minRight int) (int, int) {
	left := int(float64(total) * leftRatio)
	if left < minLeft {
		left = minLeft
	}

	right := total - left
	if right < minRight {
		right = minRight
		left = total - right
		if left < minLeft {
			left = minLeft
		}
	}

	return left, right
}

// Truncate shortens s to width cells, ending with an ellipsis when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// RenderHeader renders a header using style at the given width.
func RenderHeader(style lipgloss.Style, content string, width int) string {
	return style.Width(ClampMin(width, 20)).Render(content)
}

// RenderFooter renders a single-line footer with optional left and right content.
// When right is provided, it is right-aligned within the available width.
func RenderFooter(left, right string, width int) string {
	width = ClampMin(width, 20)
	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)

	// The footer style pads one cell on each side.
	inner := width - 2
	if left != "" && right != "" {
		availableLeft := inner - lipgloss.Width(right) - 2
		if availableLeft < 1 {
			left = ""
		} else if lipgloss.Width(left) > availableLeft {
			left = Truncate(left, availableLeft)
		}
	} else if lipgloss.Width(left) > inner {
		left = Truncate(left, inner)
	} else if lipgloss.Width(right) > inner {
		right = Truncate(right, inner)
	}

	content := left
	if right != "" {
		space := inner - lipgloss.Width(left) - lipgloss.Width(right)
		if space < 1 {
			space = 1
		}
		if left == "" {
			content = strings.Repeat(" ", space) + right
		} else {
			content = left + strings.Repeat(" ", space) + right
		}
	}

	return StyleFooter.Width(width).MaxHeight(1).Render(content)
}
