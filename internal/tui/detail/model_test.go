package detail

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Waddenn/streamflix/internal/catalog"
	"github.com/Waddenn/streamflix/internal/store"
	"github.com/Waddenn/streamflix/internal/tui/shared"
)

type fakeFetcher struct {
	details map[int]*catalog.Detail
}

func (f *fakeFetcher) Trending(context.Context) ([]catalog.Item, error) { return nil, nil }
func (f *fakeFetcher) Popular(context.Context) ([]catalog.Item, error) { return nil, nil }
func (f *fakeFetcher) TopRated(context.Context) ([]catalog.Item, error) { return nil, nil }
func (f *fakeFetcher) Upcoming(context.Context) ([]catalog.Item, error) { return nil, nil }
func (f *fakeFetcher) Genres(context.Context) ([]catalog.Genre, error) { return nil, nil }

func (f *fakeFetcher) Movie(_ context.Context, id int) (*catalog.Detail, error) {
	d, ok := f.details[id]
	if !ok {
		return nil, fmt.Errorf("movie %d: %w", id, catalog.ErrNotFound)
	}
	return d, nil
}

func movie(id int, videos ...catalog.Video) *catalog.Detail {
	return &catalog.Detail{
		Item:    catalog.Item{ID: id, Title: fmt.Sprintf("Movie %d", id), ReleaseDate: "2020-01-01", VoteAverage: 7.5},
		Runtime: 125,
		Videos:  videos,
	}
}

func newTestModel(details ...*catalog.Detail) (*Model, *store.MyList) {
	f := &fakeFetcher{details: map[int]*catalog.Detail{}}
	for _, d := range details {
		f.details[d.ID] = d
	}
	list := store.NewMyList()
	m := New(f, list, zerolog.Nop(), Options{})
	m.SetSize(100, 40)
	return m, list
}

// fetchResult runs the fetch command out of a Select batch.
func fetchResult(t *testing.T, cmd tea.Cmd) MsgDetailLoaded {
	t.Helper()
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		if c == nil {
			continue
		}
		if msg, ok := c().(MsgDetailLoaded); ok {
			return msg
		}
	}
	t.Fatal("no detail fetch in batch")
	return MsgDetailLoaded{}
}

func open(t *testing.T, m *Model, id int) {
	t.Helper()
	m.Update(fetchResult(t, m.Select(id)))
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSelect_StaleResultDiscarded(t *testing.T) {
	m, _ := newTestModel(movie(1), movie(2))

	cmdA := m.Select(1)
	cmdB := m.Select(2)
	msgA := fetchResult(t, cmdA)
	msgB := fetchResult(t, cmdB)

	// A resolves after B was selected but before B resolves
	m.Update(msgA)
	assert.Equal(t, StateLoading, m.State())
	assert.Nil(t, m.Detail())

	m.Update(msgB)
	require.Equal(t, StateReady, m.State())
	assert.Equal(t, 2, m.Detail().ID)

	// A arriving late never overwrites B
	m.Update(msgA)
	assert.Equal(t, 2, m.Detail().ID)
	assert.Equal(t, 2, m.ID())
}

func TestSelect_ResultAfterCloseDiscarded(t *testing.T) {
	m, _ := newTestModel(movie(1))
	msg := fetchResult(t, m.Select(1))
	m.Close()
	m.Update(msg)
	assert.Equal(t, StateIdle, m.State())
	assert.Nil(t, m.Detail())
	assert.Empty(t, m.View())
}

func TestSelect_FailureIsNotFound(t *testing.T) {
	m, _ := newTestModel()
	open(t, m, 42)
	assert.Equal(t, StateNotFound, m.State())
	assert.Contains(t, m.View(), "Movie not found")

	m.Update(MsgDetailLoaded{Token: m.token, ID: 42})
	assert.Equal(t, StateNotFound, m.State(), "terminal until the selection changes")
}

func TestMainColumn_VideoThumbnails(t *testing.T) {
	d := movie(1, catalog.Video{Key: "tr1", Name: "Official Trailer", Type: "Trailer"})
	m, _ := newTestModel(d)
	open(t, m, 1)

	col := m.mainColumn(m.Detail(), 120)
	assert.Contains(t, col, "Videos & Trailers")
	assert.Contains(t, col, "https://img.youtube.com/vi/tr1/hqdefault.jpg")
}

func TestSelect_NilDetailIsNotFound(t *testing.T) {
	m, _ := newTestModel()
	m.Select(5)
	m.Update(MsgDetailLoaded{Token: m.token, ID: 5})
	assert.Equal(t, StateNotFound, m.State())
}

func TestLoaded_PicksTrailer(t *testing.T) {
	m, _ := newTestModel(
		movie(1, catalog.Video{Key: "t1", Type: "Teaser"}, catalog.Video{Key: "tr1", Type: "Trailer"}),
		movie(2, catalog.Video{Key: "t1", Type: "Teaser"}),
	)
	open(t, m, 1)
	require.NotNil(t, m.SelectedVideo())
	assert.Equal(t, "tr1", m.SelectedVideo().Key)
	assert.False(t, m.PlayingTrailer())

	open(t, m, 2)
	require.NotNil(t, m.SelectedVideo())
	assert.Equal(t, "t1", m.SelectedVideo().Key)
}

func TestTogglePreview_InertWithoutVideos(t *testing.T) {
	m, _ := newTestModel(movie(1))
	open(t, m, 1)
	assert.Nil(t, m.SelectedVideo())
	assert.False(t, m.PreviewEnabled())

	assert.False(t, m.TogglePreview())
	assert.False(t, m.PlayingTrailer())
	m.Update(key("p"))
	assert.False(t, m.PlayingTrailer())
	assert.Contains(t, m.viewport.View(), "No Preview")
}

func TestTogglePreview_WithVideo(t *testing.T) {
	m, _ := newTestModel(movie(1, catalog.Video{Key: "tr1", Name: "Official Trailer", Type: "Trailer"}))
	open(t, m, 1)

	m.Update(key("p"))
	assert.True(t, m.PlayingTrailer())
	assert.Contains(t, m.viewport.View(), "Stop Preview")

	m.Update(key("p"))
	assert.False(t, m.PlayingTrailer())
}

func TestToggleMute_OnlyWhilePlaying(t *testing.T) {
	m, _ := newTestModel(movie(1, catalog.Video{Key: "tr1", Type: "Trailer"}))
	open(t, m, 1)

	assert.False(t, m.ToggleMute())
	assert.True(t, m.Muted())

	m.TogglePreview()
	assert.True(t, m.ToggleMute())
	assert.False(t, m.Muted())
}

func TestCloseReopen_ResetsPlayback(t *testing.T) {
	m, _ := newTestModel(movie(1, catalog.Video{Key: "tr1", Type: "Trailer"}))
	open(t, m, 1)
	m.TogglePreview()
	m.ToggleMute()
	m.ToggleLike()
	require.True(t, m.PlayingTrailer())
	require.False(t, m.Muted())
	require.True(t, m.Liked())

	m.Close()
	assert.False(t, m.PlayingTrailer())
	assert.True(t, m.Muted())
	assert.False(t, m.Liked())
	assert.Nil(t, m.SelectedVideo())

	open(t, m, 1)
	assert.False(t, m.PlayingTrailer())
	assert.True(t, m.Muted())
	assert.False(t, m.Liked())
	assert.Equal(t, "tr1", m.SelectedVideo().Key)
}

func TestSelectOther_ResetsPlayback(t *testing.T) {
	m, _ := newTestModel(movie(1, catalog.Video{Key: "a", Type: "Trailer"}), movie(2))
	open(t, m, 1)
	m.TogglePreview()
	m.ToggleMute()

	m.Select(2)
	assert.False(t, m.PlayingTrailer())
	assert.True(t, m.Muted())
	assert.Nil(t, m.SelectedVideo())
}

func TestChooseVideo(t *testing.T) {
	videos := []catalog.Video{
		{Key: "v0", Type: "Trailer"}, {Key: "v1", Type: "Clip"}, {Key: "v2", Type: "Clip"},
		{Key: "v3", Type: "Clip"}, {Key: "v4", Type: "Clip"},
	}
	m, _ := newTestModel(movie(1, videos...))
	open(t, m, 1)
	m.ScrollBy(5)

	assert.True(t, m.ChooseVideo(2))
	assert.Equal(t, "v2", m.SelectedVideo().Key)
	assert.True(t, m.PlayingTrailer())
	assert.Equal(t, 0, m.viewport.YOffset)

	assert.False(t, m.ChooseVideo(4), "only the first four are in the grid")
	assert.Equal(t, "v2", m.SelectedVideo().Key)
}

func TestKeys_ChooseVideoFromGrid(t *testing.T) {
	m, _ := newTestModel(movie(1, catalog.Video{Key: "a", Type: "Trailer"}, catalog.Video{Key: "b", Type: "Clip"}))
	open(t, m, 1)
	m.Update(key("right"))
	m.Update(key("enter"))
	assert.Equal(t, "b", m.SelectedVideo().Key)
	assert.True(t, m.PlayingTrailer())
}

func TestKeys_SimilarOpensDetail(t *testing.T) {
	d := movie(1)
	d.Similar = []catalog.Item{{ID: 10, Title: "Ten"}, {ID: 11, Title: "Eleven"}}
	m, _ := newTestModel(d)
	open(t, m, 1)

	m.Update(key("tab"))
	m.Update(key("right"))
	cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, shared.MsgOpenDetail{ID: 11}, cmd())
}

func TestKeys_Close(t *testing.T) {
	m, _ := newTestModel(movie(1))
	open(t, m, 1)
	cmd := m.Update(key("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, shared.MsgCloseDetail{}, cmd())
}

func TestToggleMyList_WritesSharedStore(t *testing.T) {
	m, list := newTestModel(movie(1))
	open(t, m, 1)
	assert.False(t, m.InMyList())

	m.Update(key(" "))
	assert.True(t, list.Has(1))
	assert.True(t, m.InMyList())
	assert.Contains(t, m.viewport.View(), "✓ My List")

	list.Toggle(1)
	assert.False(t, m.InMyList(), "membership is read from the store")
}

func TestOpenPlayer_NoVideo(t *testing.T) {
	m, _ := newTestModel(movie(1))
	open(t, m, 1)
	assert.Nil(t, m.Update(key("o")))
}

func TestPlayerStartedNotice(t *testing.T) {
	m, _ := newTestModel(movie(1, catalog.Video{Key: "a", Type: "Trailer"}))
	open(t, m, 1)
	m.Update(shared.MsgPlayerStarted{Title: "Movie 1", Err: fmt.Errorf("exec: not found")})
	m.viewport.GotoBottom()
	assert.Contains(t, m.viewport.View(), "Player unavailable")
}

func TestView_Ready(t *testing.T) {
	d := movie(1, catalog.Video{Key: "a", Name: "Official Trailer", Type: "Trailer"})
	d.Tagline = "Free your mind"
	d.Budget = 63000000
	d.Credits = catalog.Credits{
		Cast: []catalog.CastMember{{Name: "Keanu Reeves", Character: "Neo"}},
		Crew: []catalog.CrewMember{{Name: "Lana Wachowski", Job: "Director"}},
	}
	m, _ := newTestModel(d)
	m.SetSize(120, 200)
	open(t, m, 1)

	out := m.View()
	assert.Contains(t, out, "MOVIE 1")
	assert.Contains(t, out, "Free your mind")
	assert.Contains(t, out, "2h 5m")
	assert.Contains(t, out, "PG-13")
	assert.Contains(t, out, "Lana Wachowski")
	assert.Contains(t, out, "$63,000,000")
	assert.Contains(t, out, "Official Trailer")
}
