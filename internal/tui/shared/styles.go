package shared

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorBrandRed   = lipgloss.Color("#e50914")
	ColorDarkGrey   = lipgloss.Color("#2f2f2f")
	ColorBlack      = lipgloss.Color("#141414")
	ColorWhite      = lipgloss.Color("#ffffff")
	ColorLightGrey  = lipgloss.Color("#b3b3b3")
	ColorGreen      = lipgloss.Color("#46d369")
	ColorDimGrey    = lipgloss.Color("#555555")
	ColorBackground = lipgloss.Color("#0f0f0f")

	// Styles
	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorBrandRed).
			Bold(true).
			Padding(0, 1)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorBrandRed).
			Bold(true).
			Padding(0, 1)

	// StyleHeaderScrolled replaces StyleHeader once the page is scrolled.
	StyleHeaderScrolled = StyleHeader.
				Background(ColorBlack).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorDarkGrey)

	StyleFooter = lipgloss.NewStyle().
			Foreground(ColorLightGrey).
			Padding(0, 1)

	StyleRowTitle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true).
			PaddingLeft(2)

	StyleCard = lipgloss.NewStyle().
			Width(CardInnerWidth).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDarkGrey)

	StyleCardFocused = StyleCard.
				BorderForeground(ColorWhite)

	StyleMetadataKey = lipgloss.NewStyle().
				Foreground(ColorLightGrey)

	StyleMetadataValue = lipgloss.NewStyle().
				Foreground(ColorWhite)

	StyleHero = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(ColorBrandRed)

	StyleOverlay = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBrandRed)

	StyleSecondary = lipgloss.NewStyle().
			Foreground(ColorLightGrey)

	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorBrandRed).
			Bold(true)

	StyleMatch = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	StyleDim = lipgloss.NewStyle().
			Foreground(ColorDimGrey)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorBrandRed)

	StyleBadge = lipgloss.NewStyle().
			Foreground(ColorBlack).
			Background(ColorLightGrey).
			Padding(0, 1).
			MarginRight(1).
			Bold(true)

	StyleChip = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDarkGrey).
			Padding(0, 1)

	StyleButton = lipgloss.NewStyle().
			Foreground(ColorBlack).
			Background(ColorWhite).
			Padding(0, 2).
			MarginRight(1).
			Bold(true)

	StyleButtonSecondary = StyleButton.
				Foreground(ColorWhite).
				Background(ColorDarkGrey)

	StyleButtonDisabled = StyleButton.
				Foreground(ColorDimGrey).
				Background(ColorBlack)

	StyleRole = lipgloss.NewStyle().
			Foreground(ColorLightGrey).
			Italic(true)
)

// CardInnerWidth is the card content width; the border adds two columns.
const CardInnerWidth = 24

// SelectionIndicator marks the focused entry in plain lists.
func SelectionIndicator(selected bool) string {
	if selected {
		return StyleHighlight.Render("▌")
	}
	return " "
}
