package browser

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Waddenn/streamflix/internal/catalog"
	"github.com/Waddenn/streamflix/internal/store"
	"github.com/Waddenn/streamflix/internal/tui/detail"
	"github.com/Waddenn/streamflix/internal/tui/loader"
	"github.com/Waddenn/streamflix/internal/tui/shared"
)

type fakeFetcher struct {
	lists   map[catalog.Category][]catalog.Item
	errs    map[catalog.Category]error
	genres  []catalog.Genre
	details map[int]*catalog.Detail
}

func (f *fakeFetcher) list(c catalog.Category) ([]catalog.Item, error) {
	if err := f.errs[c]; err != nil {
		return nil, err
	}
	return f.lists[c], nil
}

func (f *fakeFetcher) Trending(context.Context) ([]catalog.Item, error) {
	return f.list(catalog.Trending)
}
func (f *fakeFetcher) Popular(context.Context) ([]catalog.Item, error) {
	return f.list(catalog.Popular)
}
func (f *fakeFetcher) TopRated(context.Context) ([]catalog.Item, error) {
	return f.list(catalog.TopRated)
}
func (f *fakeFetcher) Upcoming(context.Context) ([]catalog.Item, error) {
	return f.list(catalog.Upcoming)
}
func (f *fakeFetcher) Genres(context.Context) ([]catalog.Genre, error) {
	if err := f.errs[catalog.Genres]; err != nil {
		return nil, err
	}
	return f.genres, nil
}

func (f *fakeFetcher) Movie(_ context.Context, id int) (*catalog.Detail, error) {
	d, ok := f.details[id]
	if !ok {
		return nil, fmt.Errorf("movie %d: %w", id, catalog.ErrNotFound)
	}
	return d, nil
}

func items(ids ...int) []catalog.Item {
	out := make([]catalog.Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, catalog.Item{
			ID:          id,
			Title:       fmt.Sprintf("Title %d", id),
			ReleaseDate: "2024-05-01",
			VoteAverage: 7.25,
			Overview:    "An overview.",
		})
	}
	return out
}

func newFetcher() *fakeFetcher {
	return &fakeFetcher{
		lists: map[catalog.Category][]catalog.Item{
			catalog.Trending: items(1, 2, 3),
			catalog.Popular:  items(4, 5, 6, 7, 8, 9),
			catalog.TopRated: items(10, 11),
			catalog.Upcoming: items(12),
		},
		errs:   map[catalog.Category]error{},
		genres: []catalog.Genre{{ID: 28, Name: "Action"}, {ID: 35, Name: "Comedy"}},
		details: map[int]*catalog.Detail{
			1: {Item: items(1)[0], Videos: []catalog.Video{{Key: "tr1", Name: "Trailer", Type: "Trailer"}}},
			2: {Item: items(2)[0]},
			4: {Item: items(4)[0]},
		},
	}
}

func newTestModel(t *testing.T, f *fakeFetcher) *Model {
	t.Helper()
	m := NewModel(f, store.NewMyList(), zerolog.Nop(), Options{})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 14})
	return m
}

// collect runs cmd and every batch below it, returning the data messages.
// Ticks are not fed back, so animations stay frozen.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
		return out
	case loader.MsgCategoryLoaded, detail.MsgDetailLoaded, shared.MsgOpenDetail, shared.MsgCloseDetail:
		return []tea.Msg{msg}
	}
	return nil
}

func feed(m *Model, cmd tea.Cmd) {
	for _, msg := range collect(cmd) {
		m.Update(msg)
	}
}

func press(m *Model, s string) tea.Cmd {
	var msg tea.KeyMsg
	switch s {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	return m.Update(msg)
}

func rowKeys(m *Model) []string {
	keys := make([]string, 0, len(m.rows))
	for _, r := range m.rows {
		keys = append(keys, r.key)
	}
	return keys
}

func TestInit_LoadsRowsAndFeatured(t *testing.T) {
	m := newTestModel(t, newFetcher())
	feed(m, m.Init())

	require.NotNil(t, m.Featured())
	assert.Equal(t, 1, m.Featured().ID)
	assert.False(t, m.Loader().Pending())
	assert.Equal(t, []string{"trending", "popular", "top-rated", "upcoming"}, rowKeys(m))
	assert.Len(t, m.carousels, 4)
	assert.Contains(t, m.genreStrip(), "Action")
	assert.NotEmpty(t, m.View())
}

func TestInit_EmptyCategoryHasNoRow(t *testing.T) {
	f := newFetcher()
	f.lists[catalog.Upcoming] = nil
	m := newTestModel(t, f)
	feed(m, m.Init())

	assert.NotContains(t, rowKeys(m), "upcoming")
	assert.NotContains(t, m.carousels, "upcoming")
}

func TestInit_FailedCategoryIsIsolated(t *testing.T) {
	f := newFetcher()
	f.errs[catalog.Popular] = fmt.Errorf("%w: boom", catalog.ErrMalformed)
	m := newTestModel(t, f)

	require.NotPanics(t, func() { feed(m, m.Init()) })

	assert.Equal(t, catalog.StatusError, m.Loader().Result(catalog.Popular).Status)
	assert.Equal(t, []string{"trending", "top-rated", "upcoming"}, rowKeys(m))
	assert.Contains(t, m.footer(), "1 unavailable")
}

func TestReload_FailureKeepsRows(t *testing.T) {
	f := newFetcher()
	m := newTestModel(t, f)
	feed(m, m.Init())

	f.errs[catalog.Trending] = errors.New("network down")
	feed(m, press(m, "r"))

	assert.Equal(t, catalog.StatusError, m.Loader().Result(catalog.Trending).Status)
	assert.Contains(t, rowKeys(m), "trending")
	assert.Equal(t, 1, m.Featured().ID)
}

func TestScrolled_Threshold(t *testing.T) {
	m := newTestModel(t, newFetcher())
	feed(m, m.Init())
	require.Greater(t, m.maxPageOffset(), ScrollThreshold+LineUnits)

	m.SetPageOffset(ScrollThreshold)
	assert.False(t, m.Scrolled())

	m.SetPageOffset(ScrollThreshold + 1)
	assert.True(t, m.Scrolled())

	m.SetPageOffset(0)
	assert.False(t, m.Scrolled())

	m.SetPageOffset(-40)
	assert.Equal(t, 0, m.PageOffset())
}

func TestOpenDetail_LocksPageScroll(t *testing.T) {
	m := newTestModel(t, newFetcher())
	feed(m, m.Init())

	feed(m, m.OpenDetail(1))
	id, ok := m.Selection()
	require.True(t, ok)
	assert.Equal(t, 1, id)
	assert.True(t, m.ScrollLocked())

	before := m.PageOffset()
	m.ScrollPage(5)
	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	assert.Equal(t, before, m.PageOffset())

	// Replacing the selection keeps a single lock.
	feed(m, m.OpenDetail(2))
	id, _ = m.Selection()
	assert.Equal(t, 2, id)
	assert.Equal(t, 2, m.Detail().ID())

	m.CloseDetail()
	_, ok = m.Selection()
	assert.False(t, ok)
	assert.False(t, m.ScrollLocked())
	assert.Equal(t, detail.StateIdle, m.Detail().State())

	m.ScrollPage(1)
	assert.Equal(t, LineUnits, m.PageOffset())
}

func TestOpenDetail_StaleResultIgnored(t *testing.T) {
	m := newTestModel(t, newFetcher())
	feed(m, m.Init())

	msgsA := collect(m.OpenDetail(1))
	feed(m, m.OpenDetail(2))
	for _, msg := range msgsA {
		m.Update(msg)
	}

	require.Equal(t, detail.StateReady, m.Detail().State())
	assert.Equal(t, 2, m.Detail().Detail().ID)
	id, _ := m.Selection()
	assert.Equal(t, 2, id)
}

func TestCloseAndReopen_ResetsPlayback(t *testing.T) {
	m := newTestModel(t, newFetcher())
	feed(m, m.Init())

	feed(m, m.OpenDetail(1))
	d := m.Detail()
	require.True(t, d.TogglePreview())
	require.True(t, d.ToggleMute())
	d.ToggleLike()
	require.True(t, d.PlayingTrailer())
	require.False(t, d.Muted())
	require.True(t, d.Liked())

	feed(m, press(m, "esc"))
	_, ok := m.Selection()
	require.False(t, ok)

	feed(m, m.OpenDetail(2))
	assert.False(t, d.PlayingTrailer())
	assert.True(t, d.Muted())
	assert.False(t, d.Liked())
}

func TestKeys_FocusAndOpen(t *testing.T) {
	m := newTestModel(t, newFetcher())
	feed(m, m.Init())

	// Hero has focus first; enter opens the featured title.
	feed(m, press(m, "enter"))
	id, ok := m.Selection()
	require.True(t, ok)
	assert.Equal(t, 1, id)
	feed(m, press(m, "esc"))

	press(m, "down")
	press(m, "down")
	press(m, "right")
	it, ok := m.focusedItem()
	require.True(t, ok)
	assert.Equal(t, 5, it.ID)

	feed(m, press(m, "enter"))
	id, _ = m.Selection()
	assert.Equal(t, 5, id)
	assert.Equal(t, detail.StateNotFound, m.Detail().State())
}

func TestMyList_ToggleFromCard(t *testing.T) {
	m := newTestModel(t, newFetcher())
	feed(m, m.Init())

	press(m, "down")
	press(m, " ")
	assert.True(t, m.list.Has(1))
	assert.Contains(t, rowKeys(m), myListKey)

	press(m, " ")
	assert.False(t, m.list.Has(1))
	assert.NotContains(t, rowKeys(m), myListKey)
}

func TestMyList_OverlayToggleShowsRow(t *testing.T) {
	m := newTestModel(t, newFetcher())
	feed(m, m.Init())

	feed(m, m.OpenDetail(4))
	press(m, " ")
	assert.True(t, m.Detail().InMyList())
	assert.Contains(t, rowKeys(m), myListKey)

	m.CloseDetail()
	assert.True(t, m.list.Has(4))
}

func TestMyList_OverlayToggleOutsideCategories(t *testing.T) {
	f := newFetcher()
	f.details[99] = &catalog.Detail{Item: catalog.Item{ID: 99, Title: "More Like This"}}
	m := newTestModel(t, f)
	feed(m, m.Init())

	feed(m, m.OpenDetail(99))
	require.Equal(t, detail.StateReady, m.Detail().State())
	press(m, " ")
	m.CloseDetail()

	require.True(t, m.list.Has(99))
	require.Contains(t, rowKeys(m), myListKey)
	last := m.rows[len(m.rows)-1]
	require.Len(t, last.items, 1)
	assert.Equal(t, "More Like This", last.items[0].Title)

	m.list.Toggle(99)
	m.syncRows()
	assert.NotContains(t, rowKeys(m), myListKey)
}

func TestMyListItems_FollowCategoryOrder(t *testing.T) {
	f := newFetcher()
	f.lists[catalog.Popular] = append(items(3), f.lists[catalog.Popular]...)
	m := newTestModel(t, f)
	feed(m, m.Init())

	m.list.Toggle(10)
	m.list.Toggle(3)
	m.list.Toggle(5)

	var ids []int
	for _, it := range m.myListItems() {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []int{3, 5, 10}, ids)
}

func TestSearch_FiltersRows(t *testing.T) {
	m := newTestModel(t, newFetcher())
	feed(m, m.Init())

	press(m, "/")
	require.True(t, m.showSearch)
	for _, r := range "title 1" {
		press(m, string(r))
	}

	// "title 1" matches 1, 10, 11 and 12; popular has no match.
	assert.Equal(t, []string{"trending", "top-rated", "upcoming"}, rowKeys(m))
	assert.NotContains(t, m.carousels, "popular")
	assert.Len(t, m.rows[0].items, 1)

	press(m, "enter")
	assert.False(t, m.showSearch)
	assert.Equal(t, "title 1", m.textInput.Value())

	press(m, "esc")
	assert.Equal(t, "", m.textInput.Value())
	assert.Len(t, m.rows, 4)
}

func TestLayout_RenderedOncePerUpdate(t *testing.T) {
	m := newTestModel(t, newFetcher())
	feed(m, m.Init())

	press(m, "down")
	lines, _ := m.layout()
	again := m.pageLines()
	require.NotEmpty(t, lines)
	assert.Same(t, &lines[0], &again[0])

	top, _ := m.focusSpan()
	press(m, "down")
	next, _ := m.focusSpan()
	assert.Greater(t, next, top)
	assert.NotSame(t, &lines[0], &m.pageLines()[0])
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", truncateText("short", 200))
	assert.Equal(t, "abc...", truncateText("abcdef", 3))
}
