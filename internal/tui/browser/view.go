package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Waddenn/streamflix/internal/catalog"
	"github.com/Waddenn/streamflix/internal/tui/carousel"
	"github.com/Waddenn/streamflix/internal/tui/shared"
)

const (
	headerHeight = 2
	footerHeight = 1
	// heroOverview is the overview length shown on the banner.
	heroOverview = 200
)

func (m *Model) View() string {
	if m.hasSelection {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, m.detail.View())
	}

	parts := []string{m.header()}
	if m.showSearch || m.textInput.Value() != "" {
		parts = append(parts, m.searchBar())
	}

	lines := m.pageLines()
	first := m.pageOffset / LineUnits
	height := m.bodyHeight()
	body := make([]string, 0, height)
	for i := first; i < first+height; i++ {
		if i < len(lines) {
			body = append(body, lines[i])
		} else {
			body = append(body, "")
		}
	}
	parts = append(parts, strings.Join(body, "\n"), m.footer())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) bodyHeight() int {
	h := m.height - headerHeight - footerHeight
	if m.showSearch || m.textInput.Value() != "" {
		h--
	}
	return shared.ClampMin(h, 3)
}

func (m *Model) header() string {
	brand := shared.StyleTitle.Padding(0).Render("STREAMFLIX")
	nav := shared.StyleSecondary.Render("  Home  Movies")
	if m.scrolled {
		return shared.RenderHeader(shared.StyleHeaderScrolled, brand+nav, m.width)
	}
	return shared.RenderHeader(shared.StyleHeader, brand+nav, m.width) + "\n"
}

func (m *Model) searchBar() string {
	if m.showSearch {
		return "  🔍 " + m.textInput.View()
	}
	return shared.StyleDim.Render(fmt.Sprintf("  [Filter: %s] / to edit", m.textInput.Value()))
}

func (m *Model) footer() string {
	hints := "←/→ move • ↑/↓ rows • enter info • space my list • [/] scroll • / search • r reload • q quit"
	if m.showSearch {
		hints = "type to filter • enter keep • esc clear"
	}

	var status []string
	if m.loader.Pending() {
		status = append(status, m.spinner.View()+"loading")
	}
	if failed := m.failedCategories(); failed > 0 {
		status = append(status, fmt.Sprintf("%d unavailable", failed))
	}
	if n := m.list.Len(); n > 0 {
		status = append(status, fmt.Sprintf("My List %d", n))
	}
	return shared.RenderFooter(hints, strings.Join(status, " • "), m.width)
}

func (m *Model) failedCategories() int {
	n := 0
	for _, c := range catalog.Categories {
		if m.loader.Result(c).Status == catalog.StatusError {
			n++
		}
	}
	return n
}

// pageLines renders the scrollable page.
func (m *Model) pageLines() []string {
	lines, _ := m.layout()
	return lines
}

// focusSpan is the [top, bottom) line range of the focused section.
func (m *Model) focusSpan() (int, int) {
	_, spans := m.layout()
	span, ok := spans[m.focusRow]
	if !ok {
		return 0, 0
	}
	return span[0], span[1]
}

// pageLayout is the rendered page and the [top, bottom) line range of each
// focusable section.
type pageLayout struct {
	lines []string
	spans map[int][2]int
}

// invalidate drops the rendered page; the next layout call renders it again.
func (m *Model) invalidate() {
	m.page = nil
}

// layout returns the rendered page, rendering it at most once per change.
func (m *Model) layout() ([]string, map[int][2]int) {
	if m.page == nil {
		m.page = m.renderPage()
	}
	return m.page.lines, m.page.spans
}

func (m *Model) renderPage() *pageLayout {
	var lines []string
	spans := make(map[int][2]int, len(m.rows)+1)
	add := func(focus int, block string) {
		start := len(lines)
		lines = append(lines, strings.Split(block, "\n")...)
		spans[focus] = [2]int{start, len(lines)}
	}

	add(heroFocus, m.hero())
	if genres := m.genreStrip(); genres != "" {
		lines = append(lines, "", genres)
	}
	for i, r := range m.rows {
		lines = append(lines, "")
		add(i, m.renderRow(i, r))
	}
	return &pageLayout{lines: lines, spans: spans}
}

func (m *Model) hero() string {
	width := shared.ClampMin(m.width-4, 20)
	f := m.loader.Featured()
	if f == nil {
		msg := "Nothing to show right now. Press r to reload."
		if m.loader.Pending() {
			msg = m.spinner.View() + " Loading catalog…"
		}
		return shared.StyleHero.Width(width).Render(msg)
	}

	var b strings.Builder
	b.WriteString(shared.StyleTitle.Padding(0).Render(strings.ToUpper(f.DisplayTitle())))

	meta := []string{shared.StyleHighlight.Render("★ " + f.Rating())}
	if y := f.Year(); y > 0 {
		meta = append(meta, fmt.Sprint(y))
	}
	meta = append(meta, shared.StyleBadge.Render("HD"))
	b.WriteString("\n" + strings.Join(meta, "  "))

	if f.Overview != "" {
		b.WriteString("\n\n" + lipgloss.NewStyle().Width(width-4).Foreground(shared.ColorLightGrey).
			Render(truncateText(f.Overview, heroOverview)))
	}

	play, info := shared.StyleButtonSecondary, shared.StyleButtonSecondary
	if m.focusRow == heroFocus {
		play, info = shared.StyleButton, shared.StyleButton
	}
	mute := "🔇"
	if !m.heroMuted {
		mute = "🔊"
	}
	b.WriteString("\n\n" + lipgloss.JoinHorizontal(lipgloss.Top,
		play.Render("▶ Play"), info.Render("ⓘ More Info"), shared.StyleDim.Render(" "+mute+" m")))

	return shared.StyleHero.Width(width).Render(b.String())
}

// truncateText cuts text to max characters and appends "...".
func truncateText(text string, max int) string {
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return string(r[:max]) + "..."
}

func (m *Model) genreStrip() string {
	genres := m.loader.Result(catalog.Genres).Genres
	if len(genres) == 0 {
		return ""
	}
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return lipgloss.NewStyle().
		Width(shared.ClampMin(m.width-4, 20)).
		PaddingLeft(2).
		Foreground(shared.ColorLightGrey).
		Render(strings.Join(names, " • "))
}

func (m *Model) renderRow(index int, r row) string {
	c := m.carousels[r.key]
	if c == nil {
		return ""
	}
	focusedRow := index == m.focusRow
	cards := make([]string, len(r.items))
	for i, it := range r.items {
		cards[i] = m.renderCard(it, focusedRow && i == m.focusCol[r.key])
	}
	title := shared.StyleRowTitle.Render(r.label)
	if focusedRow {
		title = shared.StyleRowTitle.Foreground(shared.ColorBrandRed).Render(r.label)
	}
	return title + "\n" + carousel.Render(c, cards)
}

// renderCard draws one card. The focused card is expanded with its list
// state and actions.
func (m *Model) renderCard(it catalog.Item, focused bool) string {
	width := shared.CardInnerWidth
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(shared.Truncate(it.DisplayTitle(), width)),
	}
	meta := "★ " + it.Rating()
	if y := it.Year(); y > 0 {
		meta = fmt.Sprintf("%d · %s", y, meta)
	}
	lines = append(lines, shared.StyleDim.Render(meta))

	if !focused {
		return shared.StyleCard.Render(strings.Join(lines, "\n"))
	}

	list := "+ My List"
	if m.list.Has(it.ID) {
		list = shared.StyleMatch.Render("✓ My List")
	}
	lines = append(lines,
		shared.StyleSecondary.Render(shared.Truncate(it.Overview, width)),
		list,
		shared.StyleDim.Render("enter info • space list"),
	)
	return shared.StyleCardFocused.Render(strings.Join(lines, "\n"))
}
