package browser

import (
	"strings"

	"github.com/Waddenn/streamflix/internal/catalog"
)

func (m *Model) filter() string {
	return strings.ToLower(strings.TrimSpace(m.textInput.Value()))
}

// filterItems keeps items whose title contains filter, case-insensitively.
// Source order is preserved.
func filterItems(items []catalog.Item, filter string) []catalog.Item {
	if filter == "" {
		return items
	}
	var out []catalog.Item
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.DisplayTitle()), filter) {
			out = append(out, it)
		}
	}
	return out
}
