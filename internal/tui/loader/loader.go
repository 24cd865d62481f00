// Package loader fetches the browse categories independently and keeps the
// latest result of each one.
package loader

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/Waddenn/streamflix/internal/catalog"
)

// MsgCategoryLoaded carries one category's fetch outcome.
type MsgCategoryLoaded struct {
	Cycle    int
	Category catalog.Category
	Items    []catalog.Item
	Genres   []catalog.Genre
	Err      error
}

// Result is the current state of one category slot.
type Result struct {
	Label  string
	Items  []catalog.Item
	Genres []catalog.Genre
	Status catalog.Status
	Err    error
}

type Loader struct {
	fetcher catalog.Fetcher
	logger  zerolog.Logger
	timeout time.Duration

	cycle    int
	results  map[catalog.Category]*Result
	featured *catalog.Item
	// featuredCycle is the cycle that last picked the featured item.
	featuredCycle int
}

func New(fetcher catalog.Fetcher, logger zerolog.Logger, timeout time.Duration) *Loader {
	l := &Loader{
		fetcher: fetcher,
		logger:  logger.With().Str("component", "loader").Logger(),
		timeout: timeout,
		results: make(map[catalog.Category]*Result, len(catalog.Categories)),
	}
	for _, c := range catalog.Categories {
		l.results[c] = &Result{Label: c.Label(), Status: catalog.StatusPending}
	}
	return l
}

// Cycle is the number of the current load cycle, starting at 1 after the
// first LoadAll.
func (l *Loader) Cycle() int { return l.cycle }

// LoadAll starts a new cycle and fetches every category concurrently.
// Slots keep their previous items until the new results arrive.
func (l *Loader) LoadAll() tea.Cmd {
	l.cycle++
	cmds := make([]tea.Cmd, 0, len(catalog.Categories))
	for _, c := range catalog.Categories {
		l.results[c].Status = catalog.StatusPending
		cmds = append(cmds, l.fetch(l.cycle, c))
	}
	l.logger.Debug().Int("cycle", l.cycle).Msg("load cycle started")
	return tea.Batch(cmds...)
}

func (l *Loader) fetch(cycle int, c catalog.Category) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := l.context()
		defer cancel()
		items, genres, err := fetchCategory(ctx, l.fetcher, c)
		return MsgCategoryLoaded{Cycle: cycle, Category: c, Items: items, Genres: genres, Err: err}
	}
}

func (l *Loader) context() (context.Context, context.CancelFunc) {
	if l.timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), l.timeout)
}

func fetchCategory(ctx context.Context, f catalog.Fetcher, c catalog.Category) ([]catalog.Item, []catalog.Genre, error) {
	switch c {
	case catalog.Trending:
		items, err := f.Trending(ctx)
		return items, nil, err
	case catalog.Popular:
		items, err := f.Popular(ctx)
		return items, nil, err
	case catalog.TopRated:
		items, err := f.TopRated(ctx)
		return items, nil, err
	case catalog.Upcoming:
		items, err := f.Upcoming(ctx)
		return items, nil, err
	default:
		genres, err := f.Genres(ctx)
		return nil, genres, err
	}
}

// Apply records a category result. Failures keep the previous items and are
// only logged. It reports whether the featured item changed.
func (l *Loader) Apply(msg MsgCategoryLoaded) bool {
	if msg.Cycle != l.cycle {
		l.logger.Debug().
			Int("cycle", msg.Cycle).
			Int("current", l.cycle).
			Str("category", msg.Category.String()).
			Msg("discarding stale category result")
		return false
	}
	slot, ok := l.results[msg.Category]
	if !ok {
		return false
	}

	if msg.Err != nil {
		slot.Status = catalog.StatusError
		slot.Err = msg.Err
		l.logger.Warn().Err(msg.Err).Str("category", msg.Category.String()).Msg("category fetch failed")
		return false
	}

	slot.Status = catalog.StatusSuccess
	slot.Err = nil
	if msg.Category == catalog.Genres {
		slot.Genres = dedupeGenres(msg.Genres)
		return false
	}
	slot.Items = Dedupe(msg.Items)
	l.logger.Debug().Str("category", msg.Category.String()).Int("items", len(slot.Items)).Msg("category loaded")

	if msg.Category == catalog.Trending && len(slot.Items) > 0 && l.featuredCycle != l.cycle {
		first := slot.Items[0]
		l.featured = &first
		l.featuredCycle = l.cycle
		return true
	}
	return false
}

// Result returns a copy of the slot for c.
func (l *Loader) Result(c catalog.Category) Result {
	if r, ok := l.results[c]; ok {
		return *r
	}
	return Result{Label: c.Label(), Status: catalog.StatusPending}
}

// Featured is nil until a trending result with at least one item arrives.
func (l *Loader) Featured() *catalog.Item { return l.featured }

// Pending reports whether any category of the current cycle is outstanding.
func (l *Loader) Pending() bool {
	for _, r := range l.results {
		if r.Status == catalog.StatusPending {
			return true
		}
	}
	return false
}

// Dedupe drops repeated IDs, keeping the first occurrence and source order.
func Dedupe(items []catalog.Item) []catalog.Item {
	seen := make(map[int]struct{}, len(items))
	out := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.ID]; ok {
			continue
		}
		seen[it.ID] = struct{}{}
		out = append(out, it)
	}
	return out
}

func dedupeGenres(genres []catalog.Genre) []catalog.Genre {
	seen := make(map[int]struct{}, len(genres))
	out := make([]catalog.Genre, 0, len(genres))
	for _, g := range genres {
		if _, ok := seen[g.ID]; ok {
			continue
		}
		seen[g.ID] = struct{}{}
		out = append(out, g)
	}
	return out
}
