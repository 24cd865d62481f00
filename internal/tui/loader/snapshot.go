package loader

import (
	"context"
	"sync"

	"github.com/sourcegraph/conc"

	"github.com/Waddenn/streamflix/internal/catalog"
)

// Snapshot is the outcome of one headless fetch of every category.
type Snapshot struct {
	Results  map[catalog.Category]Result
	Featured *catalog.Item
}

// FetchAll runs the same per-category fetches as LoadAll without a UI loop.
// A failing category is recorded as StatusError and never affects the others.
func FetchAll(ctx context.Context, f catalog.Fetcher) Snapshot {
	var (
		mu   sync.Mutex
		wg   conc.WaitGroup
		snap = Snapshot{Results: make(map[catalog.Category]Result, len(catalog.Categories))}
	)
	for _, c := range catalog.Categories {
		wg.Go(func() {
			items, genres, err := fetchCategory(ctx, f, c)
			r := Result{Label: c.Label(), Status: catalog.StatusSuccess, Items: Dedupe(items), Genres: dedupeGenres(genres)}
			if err != nil {
				r = Result{Label: c.Label(), Status: catalog.StatusError, Err: err}
			}
			mu.Lock()
			snap.Results[c] = r
			mu.Unlock()
		})
	}
	wg.Wait()

	if tr := snap.Results[catalog.Trending]; tr.Status == catalog.StatusSuccess && len(tr.Items) > 0 {
		first := tr.Items[0]
		snap.Featured = &first
	}
	return snap
}
