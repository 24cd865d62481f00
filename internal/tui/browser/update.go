package browser

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Waddenn/streamflix/internal/tui/carousel"
	"github.com/Waddenn/streamflix/internal/tui/detail"
	"github.com/Waddenn/streamflix/internal/tui/loader"
	"github.com/Waddenn/streamflix/internal/tui/shared"
)

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.invalidate()
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail.SetSize(msg.Width, msg.Height)
		for _, c := range m.carousels {
			c.SetViewport(m.rowViewport())
		}
		m.SetPageOffset(m.pageOffset)
		return nil

	case loader.MsgCategoryLoaded:
		if m.loader.Apply(msg) {
			m.logger.Debug().Int("cycle", m.loader.Cycle()).Msg("featured item set")
		}
		m.syncRows()
		m.SetPageOffset(m.pageOffset)
		return nil

	case detail.MsgDetailLoaded, shared.MsgPlayerStarted:
		return m.detail.Update(msg)

	case spinner.TickMsg:
		var cmds []tea.Cmd
		if m.loader.Pending() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, m.detail.Update(msg))
		return tea.Batch(cmds...)

	case carousel.FrameMsg:
		for _, c := range m.carousels {
			if c.ID() == msg.ID {
				return c.Update(msg)
			}
		}
		return nil

	case shared.MsgOpenDetail:
		return m.OpenDetail(msg.ID)

	case shared.MsgCloseDetail:
		m.CloseDetail()
		return nil

	case tea.MouseMsg:
		if m.scrollLocked {
			return m.detail.Update(msg)
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.ScrollPage(-wheelLines)
		case tea.MouseButtonWheelDown:
			m.ScrollPage(wheelLines)
		}
		return nil

	case tea.KeyMsg:
		if m.hasSelection {
			if k := msg.String(); k == " " || k == "+" {
				if d := m.detail.Detail(); d != nil && m.detail.State() == detail.StateReady {
					m.remember(d.Item)
				}
			}
			cmd := m.detail.Update(msg)
			// List toggles inside the overlay show up in the My List row.
			m.syncRows()
			return cmd
		}
		if m.showSearch {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.showSearch = false
		m.textInput.Reset()
		m.textInput.Blur()
		m.syncRows()
		return nil
	case "enter":
		m.showSearch = false
		m.textInput.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.syncRows()
	m.SetPageOffset(m.pageOffset)
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit

	case "/":
		m.showSearch = true
		m.textInput.Focus()
		return textinput.Blink

	case "esc":
		if m.textInput.Value() != "" {
			m.textInput.Reset()
			m.syncRows()
		}
		return nil

	case "r":
		m.logger.Info().Msg("reload requested")
		return tea.Batch(m.loader.LoadAll(), m.spinner.Tick)

	case "m":
		m.heroMuted = !m.heroMuted
		return nil

	case "up", "k":
		if m.focusRow > heroFocus {
			m.focusRow--
		}
		m.invalidate()
		m.revealFocus()
		return nil

	case "down", "j":
		if m.focusRow < len(m.rows)-1 {
			m.focusRow++
		}
		m.invalidate()
		m.revealFocus()
		return nil

	case "pgup":
		m.ScrollPage(-m.bodyHeight())
		return nil

	case "pgdown":
		m.ScrollPage(m.bodyHeight())
		return nil

	case "left", "h":
		return m.moveFocus(-1)

	case "right", "l":
		return m.moveFocus(1)

	case "[":
		return m.scrollRow(carousel.Left)

	case "]":
		return m.scrollRow(carousel.Right)

	case "enter", "i", "p":
		if m.focusRow == heroFocus {
			if f := m.loader.Featured(); f != nil {
				return m.OpenDetail(f.ID)
			}
			return nil
		}
		if msg.String() == "p" {
			return nil
		}
		if it, ok := m.focusedItem(); ok {
			return m.OpenDetail(it.ID)
		}
		return nil

	case " ", "+":
		if it, ok := m.focusedItem(); ok {
			m.remember(it)
			m.list.Toggle(it.ID)
			m.syncRows()
		}
		return nil
	}
	return nil
}

// moveFocus moves the hovered card within the focused row and keeps it in
// view.
func (m *Model) moveFocus(delta int) tea.Cmd {
	r, ok := m.focusedRow()
	if !ok {
		return nil
	}
	col := m.focusCol[r.key] + delta
	if col < 0 || col >= len(r.items) {
		return nil
	}
	m.focusCol[r.key] = col
	if c := m.carousels[r.key]; c != nil {
		return c.EnsureVisible(col)
	}
	return nil
}

func (m *Model) scrollRow(dir carousel.Direction) tea.Cmd {
	r, ok := m.focusedRow()
	if !ok {
		return nil
	}
	c := m.carousels[r.key]
	if c == nil {
		return nil
	}
	return c.Scroll(dir)
}
