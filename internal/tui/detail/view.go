package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Waddenn/streamflix/internal/catalog"
	"github.com/Waddenn/streamflix/internal/player"
	"github.com/Waddenn/streamflix/internal/tui/shared"
)

const (
	// overlayChrome is the border plus padding on each axis.
	overlayChrome = 6
	footerHeight  = 1
)

func (m *Model) View() string {
	switch m.state {
	case StateIdle:
		return ""
	case StateLoading:
		return m.frame(lipgloss.Place(m.viewport.Width, m.viewport.Height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading details…"))
	case StateNotFound:
		return m.frame(lipgloss.Place(m.viewport.Width, m.viewport.Height, lipgloss.Center, lipgloss.Center,
			shared.StyleError.Render("Movie not found")))
	}
	return m.frame(m.viewport.View())
}

func (m *Model) frame(body string) string {
	hints := "esc close • ↑/↓ scroll"
	if m.state == StateReady {
		hints = "esc close • p preview • m mute • space list • l like • tab section • enter choose • o player"
	}
	footer := shared.StyleDim.Render(shared.Truncate(hints, m.viewport.Width))
	content := lipgloss.JoinVertical(lipgloss.Left, body, footer)
	return shared.StyleOverlay.
		Width(shared.ClampMin(m.width-2, 20)).
		Render(content)
}

// body is the scrollable overlay content for a loaded title.
func (m *Model) body() string {
	d := m.detail
	width := m.viewport.Width
	sections := []string{m.heroSection(d, width)}

	mainWidth, sideWidth := width, width
	sideBySide := width >= shared.SplitThreshold
	if sideBySide {
		mainWidth, sideWidth = shared.SplitWidths(width, shared.SplitLeftRatio, shared.SplitMinLeft, shared.SplitMinRight)
		mainWidth -= 2
	}
	main := m.mainColumn(d, mainWidth)
	side := m.sideColumn(d, sideWidth)
	if sideBySide {
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(mainWidth).MarginRight(2).Render(main), side))
	} else {
		sections = append(sections, main, side)
	}

	if similar := m.similarSection(d, width); similar != "" {
		sections = append(sections, similar)
	}
	if m.notice != "" {
		sections = append(sections, shared.StyleSecondary.Render(m.notice))
	}
	return strings.Join(sections, "\n\n")
}

func (m *Model) heroSection(d *catalog.Detail, width int) string {
	var b strings.Builder
	b.WriteString(shared.StyleTitle.Render(strings.ToUpper(d.DisplayTitle())))
	if d.Tagline != "" {
		b.WriteString("\n" + shared.StyleRole.Render(fmt.Sprintf("%q", d.Tagline)))
	}

	meta := []string{shared.StyleHighlight.Render(d.Rating() + " / 10")}
	if y := d.Year(); y > 0 {
		meta = append(meta, fmt.Sprint(y))
	}
	meta = append(meta, FormatRuntime(d.Runtime), shared.StyleBadge.Render(Certification(d.Adult)))
	b.WriteString("\n" + strings.Join(meta, "  "))

	if len(d.Genres) > 0 {
		chips := make([]string, 0, len(d.Genres))
		for _, g := range d.Genres {
			chips = append(chips, shared.StyleChip.Render(g.Name))
		}
		b.WriteString("\n" + lipgloss.JoinHorizontal(lipgloss.Top, chips...))
	}

	b.WriteString("\n\n" + m.buttons())

	if m.playingTrailer && m.selectedVideo != nil {
		sound := "muted"
		if !m.muted {
			sound = "sound on"
		}
		b.WriteString("\n\n" + shared.StyleMatch.Render("▶ "+m.selectedVideo.Name) +
			shared.StyleDim.Render(" ("+sound+")"))
		b.WriteString("\n" + shared.StyleDim.Render(shared.Truncate(player.EmbedURL(m.selectedVideo.Key, m.muted), width)))
	} else if img := d.HeroImage(m.opts.ImageBase); img != "" {
		b.WriteString("\n\n" + shared.StyleDim.Render(shared.Truncate(img, width)))
	}
	return shared.StyleHero.Width(width).Render(b.String())
}

func (m *Model) buttons() string {
	preview := shared.StyleButton.Render("▶ Play Preview")
	switch {
	case !m.PreviewEnabled():
		preview = shared.StyleButtonDisabled.Render("▶ No Preview")
	case m.playingTrailer:
		preview = shared.StyleButton.Render("■ Stop Preview")
	}

	list := "+ My List"
	if m.InMyList() {
		list = "✓ My List"
	}
	like := "♡ Like"
	if m.liked {
		like = "♥ Liked"
	}
	out := []string{preview, shared.StyleButtonSecondary.Render(list), shared.StyleButtonSecondary.Render(like)}
	if m.playingTrailer {
		mute := "🔇 Unmute"
		if !m.muted {
			mute = "🔊 Mute"
		}
		out = append(out, shared.StyleButtonSecondary.Render(mute))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

func heading(s string) string {
	return shared.StyleRowTitle.PaddingLeft(0).Render(s)
}

func (m *Model) mainColumn(d *catalog.Detail, width int) string {
	text := lipgloss.NewStyle().Width(width)
	parts := []string{heading("Overview"), text.Foreground(shared.ColorLightGrey).Render(d.Overview)}

	if cast := TopCast(d.Credits.Cast); len(cast) > 0 {
		parts = append(parts, "", heading("Cast"))
		for _, c := range cast {
			line := c.Name
			if c.Character != "" {
				line += shared.StyleRole.Render(" as " + c.Character)
			}
			parts = append(parts, shared.Truncate(line, width))
		}
	}

	if videos := VideoGrid(d.Videos); len(videos) > 0 {
		parts = append(parts, "", heading("Videos & Trailers"))
		for i, v := range videos {
			focused := m.section == sectionVideos && i == m.cursor
			playing := m.selectedVideo != nil && m.selectedVideo.Key == v.Key && m.playingTrailer
			label := v.Name
			if playing {
				label = "▶ " + label
			}
			line := shared.SelectionIndicator(focused) + " " + label + shared.StyleDim.Render(" · "+v.Type)
			parts = append(parts, shared.Truncate(line, width))
			if thumb := catalog.VideoThumbnail(v.Key); thumb != "" {
				parts = append(parts, shared.StyleDim.Render(shared.Truncate("    "+thumb, width)))
			}
		}
	}
	return strings.Join(parts, "\n")
}

func (m *Model) sideColumn(d *catalog.Detail, width int) string {
	var rows []string
	add := func(key, value string) {
		if value == "" {
			return
		}
		rows = append(rows, shared.StyleMetadataKey.Render(key), shared.StyleMetadataValue.Render(shared.Truncate(value, width)))
	}

	if dir := Director(d.Credits.Crew); dir != nil {
		add("Director", dir.Name)
	}
	if writers := Writers(d.Credits.Crew); len(writers) > 0 {
		names := make([]string, 0, len(writers))
		for _, w := range writers {
			names = append(names, w.Name)
		}
		add("Writers", strings.Join(names, ", "))
	}
	add("Original Language", strings.ToUpper(d.OriginalLanguage))
	add("Status", d.Status)
	if d.Budget > 0 {
		add("Budget", FormatCurrency(d.Budget))
	}
	if d.Revenue > 0 {
		add("Revenue", FormatCurrency(d.Revenue))
	}
	add("Vote Count", FormatVotes(d.VoteCount))

	if companies := Companies(d.ProductionCompanies); len(companies) > 0 {
		add("Production", companies[0].Name)
		rows = append(rows, "", heading("Production Companies"))
		for _, c := range companies {
			rows = append(rows, "• "+shared.Truncate(c.Name, width-2))
		}
	}
	return heading("More Info") + "\n" + strings.Join(rows, "\n")
}

func (m *Model) similarSection(d *catalog.Detail, width int) string {
	similar := SimilarTitles(d.Similar)
	if len(similar) == 0 {
		return ""
	}
	lines := []string{heading("More Like This")}
	for i, it := range similar {
		focused := m.section == sectionSimilar && i == m.cursor
		meta := it.Rating()
		if y := it.Year(); y > 0 {
			meta = fmt.Sprintf("%d · %s", y, meta)
		}
		line := shared.SelectionIndicator(focused) + " " + it.DisplayTitle() + shared.StyleDim.Render("  "+meta)
		lines = append(lines, shared.Truncate(line, width))
	}
	return strings.Join(lines, "\n")
}
