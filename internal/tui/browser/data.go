package browser

import (
	"github.com/Waddenn/streamflix/internal/catalog"
	"github.com/Waddenn/streamflix/internal/tui/carousel"
	"github.com/Waddenn/streamflix/internal/tui/shared"
)

const myListKey = "my-list"

// rowCategories are the item categories shown as rows, in display order.
var rowCategories = []catalog.Category{catalog.Trending, catalog.Popular, catalog.TopRated, catalog.Upcoming}

type row struct {
	key   string
	label string
	items []catalog.Item
}

// syncRows rebuilds the visible rows from the loader, the list store and the
// search filter, then brings the carousels in line. Rows without items are
// dropped together with their controller.
func (m *Model) syncRows() {
	m.invalidate()
	filter := m.filter()

	rows := make([]row, 0, len(rowCategories)+1)
	for _, c := range rowCategories {
		r := m.loader.Result(c)
		items := filterItems(r.Items, filter)
		if len(items) == 0 {
			continue
		}
		rows = append(rows, row{key: c.String(), label: r.Label, items: items})
	}
	if items := filterItems(m.myListItems(), filter); len(items) > 0 {
		rows = append(rows, row{key: myListKey, label: "My List", items: items})
	}

	var focusedKey string
	if m.focusRow >= 0 && m.focusRow < len(m.rows) {
		focusedKey = m.rows[m.focusRow].key
	}

	m.rows = rows
	live := make(map[string]bool, len(rows))
	for _, r := range rows {
		live[r.key] = true
		c, ok := m.carousels[r.key]
		if !ok || c == nil {
			m.carousels[r.key] = carousel.New(m.rowID(r.key), len(r.items), m.rowViewport())
		} else {
			c.SetItems(len(r.items))
		}
		m.focusCol[r.key] = shared.Clamp(m.focusCol[r.key], 0, len(r.items)-1)
	}
	for key := range m.carousels {
		if !live[key] {
			delete(m.carousels, key)
		}
	}

	m.focusRow = m.indexOf(focusedKey)
}

// indexOf keeps focus on the same row after a rebuild, falling back to the
// nearest valid row or the hero.
func (m *Model) indexOf(key string) int {
	if m.focusRow == heroFocus {
		return heroFocus
	}
	for i, r := range m.rows {
		if r.key == key {
			return i
		}
	}
	if len(m.rows) == 0 {
		return heroFocus
	}
	return shared.Clamp(m.focusRow, 0, len(m.rows)-1)
}

// rowID gives every row key a stable controller ID for frame routing.
func (m *Model) rowID(key string) int {
	if id, ok := m.rowIDs[key]; ok {
		return id
	}
	m.nextID++
	m.rowIDs[key] = m.nextID
	return m.nextID
}

func (m *Model) rowViewport() int {
	return shared.ClampMin(m.width-2*carousel.GutterWidth, carousel.CardWidth)
}

// myListItems returns list members in the order they first appear across
// the category rows, followed by members known only from the overlay.
func (m *Model) myListItems() []catalog.Item {
	if m.list.Len() == 0 {
		return nil
	}
	var out []catalog.Item
	seen := make(map[int]struct{})
	for _, c := range rowCategories {
		for _, it := range m.loader.Result(c).Items {
			if _, dup := seen[it.ID]; dup || !m.list.Has(it.ID) {
				continue
			}
			seen[it.ID] = struct{}{}
			out = append(out, it)
		}
	}
	for _, id := range m.knownOrder {
		if _, dup := seen[id]; dup || !m.list.Has(id) {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, m.known[id])
	}
	return out
}

// remember keeps a copy of an item toggled outside the category rows, so
// the My List row can show it.
func (m *Model) remember(it catalog.Item) {
	if it.ID == 0 {
		return
	}
	if _, ok := m.known[it.ID]; !ok {
		m.knownOrder = append(m.knownOrder, it.ID)
	}
	m.known[it.ID] = it
}

func (m *Model) focusedRow() (row, bool) {
	if m.focusRow < 0 || m.focusRow >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.focusRow], true
}

func (m *Model) focusedItem() (catalog.Item, bool) {
	r, ok := m.focusedRow()
	if !ok {
		return catalog.Item{}, false
	}
	col := m.focusCol[r.key]
	if col < 0 || col >= len(r.items) {
		return catalog.Item{}, false
	}
	return r.items[col], true
}
