package browser

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/Waddenn/streamflix/internal/catalog"
	"github.com/Waddenn/streamflix/internal/config"
	"github.com/Waddenn/streamflix/internal/store"
	"github.com/Waddenn/streamflix/internal/tui/carousel"
	"github.com/Waddenn/streamflix/internal/tui/detail"
	"github.com/Waddenn/streamflix/internal/tui/loader"
	"github.com/Waddenn/streamflix/internal/tui/shared"
)

const (
	// ScrollThreshold is the page offset past which the header turns opaque.
	ScrollThreshold = 50
	// LineUnits is how many scroll units one terminal line is worth.
	LineUnits = 10
	// wheelLines is the page movement of one mouse wheel notch.
	wheelLines = 3
)

// heroFocus is the focused row index while the featured banner has focus.
const heroFocus = -1

type Options struct {
	Timeout   time.Duration
	ImageBase string
	Player    config.Player
}

// Model is the browse session: it owns the selection, the featured item and
// the page scroll state, and composes the loader, the row carousels and the
// detail overlay.
type Model struct {
	loader *loader.Loader
	detail *detail.Model
	list   *store.MyList
	logger zerolog.Logger
	opts   Options

	width  int
	height int

	// Page scroll, in LineUnits per line.
	pageOffset int
	scrolled   bool

	// Selection and the page scroll lock it holds.
	selected     int
	hasSelection bool
	scrollLocked bool

	// Focus ("hover"): row index into rows, heroFocus for the banner.
	focusRow int
	focusCol map[string]int

	heroMuted bool

	// Toggled items, by ID, in first-toggle order.
	known      map[int]catalog.Item
	knownOrder []int

	rows      []row
	page      *pageLayout
	carousels map[string]*carousel.Controller
	nextID    int
	rowIDs    map[string]int

	spinner    spinner.Model
	textInput  textinput.Model
	showSearch bool
}

func NewModel(fetcher catalog.Fetcher, list *store.MyList, logger zerolog.Logger, opts Options) *Model {
	ti := textinput.New()
	ti.Placeholder = "Titles..."
	ti.CharLimit = 80
	ti.Width = 30

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = shared.StyleHighlight

	return &Model{
		loader: loader.New(fetcher, logger, opts.Timeout),
		detail: detail.New(fetcher, list, logger, detail.Options{
			Timeout:   opts.Timeout,
			ImageBase: opts.ImageBase,
			Player:    opts.Player,
		}),
		list:      list,
		logger:    logger.With().Str("component", "browser").Logger(),
		opts:      opts,
		width:     80,
		height:    24,
		focusRow:  heroFocus,
		focusCol:  make(map[string]int),
		heroMuted: true,
		known:     make(map[int]catalog.Item),
		carousels: make(map[string]*carousel.Controller),
		rowIDs:    make(map[string]int),
		spinner:   s,
		textInput: ti,
	}
}

// Init starts the first load cycle.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loader.LoadAll(), m.spinner.Tick)
}

func (m *Model) Loader() *loader.Loader { return m.loader }
func (m *Model) Detail() *detail.Model { return m.detail }

// Featured is the hero item, nil until trending arrives.
func (m *Model) Featured() *catalog.Item { return m.loader.Featured() }

// Scrolled drives the header style only.
func (m *Model) Scrolled() bool { return m.scrolled }

func (m *Model) PageOffset() int { return m.pageOffset }

// ScrollLocked reports whether page scrolling is suspended by the overlay.
func (m *Model) ScrollLocked() bool { return m.scrollLocked }

// Selection returns the selected item ID, if any.
func (m *Model) Selection() (int, bool) { return m.selected, m.hasSelection }

// HeroMuted is the mute state of the featured banner's preview.
func (m *Model) HeroMuted() bool { return m.heroMuted }
