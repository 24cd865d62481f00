package browser

import (
	tea "github.com/charmbracelet/bubbletea"
)

// OpenDetail selects id and shows the overlay. A selection that is already
// open is replaced outright; the page scroll lock is taken only once.
func (m *Model) OpenDetail(id int) tea.Cmd {
	if id == 0 {
		return nil
	}
	m.selected = id
	m.hasSelection = true
	m.lockScroll()
	m.logger.Debug().Int("id", id).Msg("detail opened")
	return m.detail.Select(id)
}

// CloseDetail clears the selection, resumes page scroll and resets the
// overlay's sub-state.
func (m *Model) CloseDetail() {
	if !m.hasSelection {
		return
	}
	m.selected = 0
	m.hasSelection = false
	m.unlockScroll()
	m.detail.Close()
	// Membership may have changed from inside the overlay.
	m.syncRows()
	m.logger.Debug().Msg("detail closed")
}

func (m *Model) lockScroll() {
	if m.scrollLocked {
		return
	}
	m.scrollLocked = true
}

func (m *Model) unlockScroll() {
	m.scrollLocked = false
}

// ScrollPage moves the page by lines. It is ignored while the overlay holds
// the scroll lock.
func (m *Model) ScrollPage(lines int) {
	if m.scrollLocked {
		return
	}
	m.SetPageOffset(m.pageOffset + lines*LineUnits)
}

// SetPageOffset is the page scroll event: it clamps the offset and derives
// the header state from it.
func (m *Model) SetPageOffset(offset int) {
	maxOffset := m.maxPageOffset()
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	m.pageOffset = offset
	m.scrolled = m.pageOffset > ScrollThreshold
}

func (m *Model) maxPageOffset() int {
	lines := len(m.pageLines()) - m.bodyHeight()
	if lines < 0 {
		lines = 0
	}
	return lines * LineUnits
}

// revealFocus scrolls the page so the focused section is fully visible.
func (m *Model) revealFocus() {
	if m.scrollLocked {
		return
	}
	top, bottom := m.focusSpan()
	firstLine := m.pageOffset / LineUnits
	height := m.bodyHeight()
	switch {
	case top < firstLine:
		m.SetPageOffset(top * LineUnits)
	case bottom > firstLine+height:
		m.SetPageOffset((bottom - height) * LineUnits)
	}
}
