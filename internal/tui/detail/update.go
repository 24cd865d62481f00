package detail

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Waddenn/streamflix/internal/player"
	"github.com/Waddenn/streamflix/internal/tui/shared"
)

// Update handles overlay input and fetch results. Keys are only expected
// while the overlay is open.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case MsgDetailLoaded:
		m.apply(msg)
		return nil

	case spinner.TickMsg:
		if m.state != StateLoading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case shared.MsgPlayerStarted:
		if msg.Err != nil {
			m.notice = "Player unavailable: " + msg.Err.Error()
		} else {
			m.notice = "Playing " + msg.Title + " externally"
		}
		m.refresh()
		return nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "backspace", "q":
		return func() tea.Msg { return shared.MsgCloseDetail{} }
	case "up", "k":
		m.ScrollBy(-1)
		return nil
	case "down", "j":
		m.ScrollBy(1)
		return nil
	case "pgup":
		m.ScrollBy(-m.viewport.Height)
		return nil
	case "pgdown":
		m.ScrollBy(m.viewport.Height)
		return nil
	case "home", "g":
		m.viewport.GotoTop()
		return nil
	}

	if m.state != StateReady {
		return nil
	}

	switch msg.String() {
	case "p":
		m.TogglePreview()
	case "m":
		m.ToggleMute()
	case "l":
		m.ToggleLike()
	case " ", "+":
		m.ToggleMyList()
	case "tab":
		if m.section == sectionVideos {
			m.section = sectionSimilar
		} else {
			m.section = sectionVideos
		}
		m.cursor = 0
		m.refresh()
	case "left", "h":
		m.moveCursor(-1)
	case "right":
		m.moveCursor(1)
	case "enter":
		return m.activate()
	case "o":
		return m.openPlayer()
	}
	return nil
}

// ScrollBy moves the overlay body by delta lines.
func (m *Model) ScrollBy(delta int) {
	m.viewport.SetYOffset(m.viewport.YOffset + delta)
}

func (m *Model) sectionLen() int {
	if m.detail == nil {
		return 0
	}
	if m.section == sectionSimilar {
		return len(SimilarTitles(m.detail.Similar))
	}
	return len(VideoGrid(m.detail.Videos))
}

func (m *Model) moveCursor(delta int) {
	n := m.sectionLen()
	if n == 0 {
		return
	}
	m.cursor = shared.Clamp(m.cursor+delta, 0, n-1)
	m.refresh()
}

func (m *Model) activate() tea.Cmd {
	if m.sectionLen() == 0 {
		return nil
	}
	if m.section == sectionVideos {
		m.ChooseVideo(m.cursor)
		return nil
	}
	id := SimilarTitles(m.detail.Similar)[m.cursor].ID
	return func() tea.Msg { return shared.MsgOpenDetail{ID: id} }
}

func (m *Model) openPlayer() tea.Cmd {
	if m.selectedVideo == nil || m.detail == nil {
		return nil
	}
	cfg := m.opts.Player
	title := m.detail.DisplayTitle() + " - " + m.selectedVideo.Name
	key := m.selectedVideo.Key
	muted := m.muted
	logger := m.logger
	return func() tea.Msg {
		err := player.Open(cfg, title, key, muted, logger)
		return shared.MsgPlayerStarted{Title: title, Err: err}
	}
}
