// Package detail drives the movie detail overlay: it fetches one title's
// extended data and owns the overlay's playback and preference state.
package detail

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/Waddenn/streamflix/internal/catalog"
	"github.com/Waddenn/streamflix/internal/config"
	"github.com/Waddenn/streamflix/internal/store"
	"github.com/Waddenn/streamflix/internal/tui/shared"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateNotFound
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// MsgDetailLoaded is the result of the fetch started by Select.
type MsgDetailLoaded struct {
	Token  uint64
	ID     int
	Detail *catalog.Detail
	Err    error
}

// section is the focusable grid inside the overlay.
type section int

const (
	sectionVideos section = iota
	sectionSimilar
)

type Options struct {
	Timeout   time.Duration
	ImageBase string
	Player    config.Player
}

type Model struct {
	fetcher catalog.Fetcher
	list    *store.MyList
	logger  zerolog.Logger
	opts    Options

	state  State
	token  uint64
	id     int
	detail *catalog.Detail

	playingTrailer bool
	muted          bool
	selectedVideo  *catalog.Video
	liked          bool

	section section
	cursor  int
	notice  string

	viewport viewport.Model
	spinner  spinner.Model
	width    int
	height   int
}

func New(fetcher catalog.Fetcher, list *store.MyList, logger zerolog.Logger, opts Options) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = shared.StyleHighlight

	m := &Model{
		fetcher:  fetcher,
		list:     list,
		logger:   logger.With().Str("component", "detail").Logger(),
		opts:     opts,
		viewport: viewport.New(0, 0),
		spinner:  s,
	}
	m.resetPlayback()
	return m
}

func (m *Model) State() State { return m.state }
func (m *Model) ID() int { return m.id }
func (m *Model) Detail() *catalog.Detail { return m.detail }
func (m *Model) PlayingTrailer() bool { return m.playingTrailer }
func (m *Model) Muted() bool { return m.muted }
func (m *Model) SelectedVideo() *catalog.Video { return m.selectedVideo }
func (m *Model) Liked() bool { return m.liked }
func (m *Model) Open() bool { return m.state != StateIdle }

// InMyList always reflects the shared store.
func (m *Model) InMyList() bool {
	return m.id != 0 && m.list.Has(m.id)
}

// PreviewEnabled reports whether the preview control does anything.
func (m *Model) PreviewEnabled() bool { return m.selectedVideo != nil }

// Select replaces the target title. The previous bundle is dropped and any
// in-flight fetch for it becomes stale.
func (m *Model) Select(id int) tea.Cmd {
	m.token++
	m.id = id
	m.detail = nil
	m.state = StateLoading
	m.section = sectionVideos
	m.cursor = 0
	m.notice = ""
	m.resetPlayback()
	m.viewport.GotoTop()
	m.logger.Debug().Int("id", id).Uint64("token", m.token).Msg("detail requested")
	return tea.Batch(m.fetch(m.token, id), m.spinner.Tick)
}

func (m *Model) fetch(token uint64, id int) tea.Cmd {
	fetcher := m.fetcher
	timeout := m.opts.Timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		d, err := fetcher.Movie(ctx, id)
		return MsgDetailLoaded{Token: token, ID: id, Detail: d, Err: err}
	}
}

// Close resets every sub-state and invalidates the in-flight fetch.
func (m *Model) Close() {
	m.token++
	m.id = 0
	m.detail = nil
	m.state = StateIdle
	m.section = sectionVideos
	m.cursor = 0
	m.notice = ""
	m.resetPlayback()
	m.viewport.SetContent("")
	m.viewport.GotoTop()
}

func (m *Model) resetPlayback() {
	m.playingTrailer = false
	m.muted = true
	m.selectedVideo = nil
	m.liked = false
}

// apply reports whether msg belonged to the active request.
func (m *Model) apply(msg MsgDetailLoaded) bool {
	if msg.Token != m.token || msg.ID != m.id || m.state != StateLoading {
		m.logger.Debug().Int("id", msg.ID).Uint64("token", msg.Token).Msg("discarding stale detail")
		return false
	}
	if msg.Err != nil || msg.Detail == nil {
		err := msg.Err
		if err == nil {
			err = catalog.ErrNotFound
		}
		level := m.logger.Warn()
		if errors.Is(err, catalog.ErrNotFound) {
			level = m.logger.Info()
		}
		level.Err(err).Int("id", msg.ID).Msg("detail unavailable")
		m.state = StateNotFound
		return true
	}

	m.detail = msg.Detail
	m.selectedVideo = PickTrailer(msg.Detail.Videos)
	m.state = StateReady
	m.refresh()
	m.viewport.GotoTop()
	return true
}

// TogglePreview is a no-op when the title has no selected video.
func (m *Model) TogglePreview() bool {
	if m.selectedVideo == nil {
		return false
	}
	m.playingTrailer = !m.playingTrailer
	m.refresh()
	return true
}

// ChooseVideo plays entry i of the videos grid and scrolls the overlay to the top.
func (m *Model) ChooseVideo(i int) bool {
	if m.detail == nil {
		return false
	}
	grid := VideoGrid(m.detail.Videos)
	if i < 0 || i >= len(grid) {
		return false
	}
	v := grid[i]
	m.selectedVideo = &v
	m.playingTrailer = true
	m.refresh()
	m.viewport.GotoTop()
	return true
}

// ToggleMute only applies while a preview is playing.
func (m *Model) ToggleMute() bool {
	if !m.playingTrailer {
		return false
	}
	m.muted = !m.muted
	m.refresh()
	return true
}

func (m *Model) ToggleLike() {
	if m.state != StateReady {
		return
	}
	m.liked = !m.liked
	m.refresh()
}

// ToggleMyList writes the shared store and reports the new membership.
func (m *Model) ToggleMyList() bool {
	if m.id == 0 {
		return false
	}
	in := m.list.Toggle(m.id)
	m.refresh()
	return in
}

// SetSize sizes the overlay; the viewport keeps its scroll position.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	m.viewport.Width = shared.ClampMin(width-overlayChrome, 10)
	m.viewport.Height = shared.ClampMin(height-overlayChrome-footerHeight, 3)
	m.refresh()
}


func (m *Model) refresh() {
	if m.state != StateReady || m.detail == nil {
		return
	}
	offset := m.viewport.YOffset
	m.viewport.SetContent(m.body())
	m.viewport.SetYOffset(offset)
}
