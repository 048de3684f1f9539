package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"meenakshitravels/models"
	"meenakshitravels/utils"
)

// Filters holds the list-endpoint filter state.
type Filters struct {
	Search   string
	Status   string
	Featured *bool
}

// ListController drives a paginated admin list: it holds the current page of
// items, debounces filter changes into a page-1 refetch, discards stale
// responses from overlapping requests, and remembers the last viewed page.
type ListController[T any] struct {
	client   *Client
	path     string
	limit    int
	debounce time.Duration
	prefKey  string

	mu         sync.Mutex
	items      []T
	pagination models.Pagination
	filters    Filters
	seq        uint64
	timer      *time.Timer

	// OnError receives fetch failures from debounced refetches, which run
	// off the caller's stack. Optional.
	OnError func(error)
}

// NewListController builds a controller for one collection endpoint, e.g.
// "/api/admin/service". prefKey names the preference that remembers the last
// viewed page; empty disables persistence.
func NewListController[T any](c *Client, path, prefKey string) *ListController[T] {
	return &ListController[T]{
		client:   c,
		path:     path,
		limit:    models.DefaultPageLimit,
		debounce: 500 * time.Millisecond,
		prefKey:  prefKey,
	}
}

// SetLimit overrides the page size.
func (lc *ListController[T]) SetLimit(limit int) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.limit = limit
}

// SetDebounce overrides the filter debounce interval.
func (lc *ListController[T]) SetDebounce(d time.Duration) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.debounce = d
}

// Items returns the current page of items.
func (lc *ListController[T]) Items() []T {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.items
}

// Pagination returns the current pagination block.
func (lc *ListController[T]) Pagination() models.Pagination {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.pagination
}

// Filters returns the current filter state.
func (lc *ListController[T]) Filters() Filters {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.filters
}

// PageLinks computes the pagination control for the current state: a window
// of radius pages around the current page plus first/last and ellipses.
func (lc *ListController[T]) PageLinks(radius int) []utils.PageLink {
	p := lc.Pagination()
	return utils.PageWindow(p.CurrentPage, p.TotalPages, radius)
}

// LastViewedPage returns the persisted page number, or 1.
func (lc *ListController[T]) LastViewedPage() int {
	if lc.prefKey == "" {
		return 1
	}
	raw, ok := lc.client.Prefs.Get(lc.prefKey)
	if !ok {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// SetFilters replaces the filter state and schedules a debounced refetch of
// page 1. Rapid successive calls collapse into a single fetch with the final
// values. Explicit FetchPage calls are not affected.
func (lc *ListController[T]) SetFilters(f Filters) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	lc.filters = f
	if lc.timer != nil {
		lc.timer.Stop()
	}
	lc.timer = time.AfterFunc(lc.debounce, func() {
		if err := lc.FetchPage(context.Background(), 1); err != nil && lc.OnError != nil {
			lc.OnError(err)
		}
	})
}

// FetchPage loads one page of results. A response that was overtaken by a
// later request is discarded rather than overwriting newer state.
func (lc *ListController[T]) FetchPage(ctx context.Context, page int) error {
	lc.mu.Lock()
	lc.seq++
	mine := lc.seq
	query := lc.buildQuery(page)
	lc.mu.Unlock()

	env, err := lc.client.do(ctx, http.MethodGet, lc.path+"?"+query, nil)
	if err != nil {
		return err
	}

	var items []T
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return err
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()
	if mine < lc.seq {
		// A newer request was dispatched while this one was in flight.
		return nil
	}

	lc.items = items
	if env.Pagination != nil {
		lc.pagination = *env.Pagination
	}
	if lc.prefKey != "" {
		_ = lc.client.Prefs.Set(lc.prefKey, strconv.Itoa(page))
	}
	return nil
}

// buildQuery renders page, limit and any non-default filter values. Callers
// must hold lc.mu.
func (lc *ListController[T]) buildQuery(page int) string {
	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	values.Set("limit", strconv.Itoa(lc.limit))
	if lc.filters.Search != "" {
		values.Set("search", lc.filters.Search)
	}
	if lc.filters.Status != "" {
		values.Set("status", lc.filters.Status)
	}
	if lc.filters.Featured != nil {
		values.Set("featured", strconv.FormatBool(*lc.filters.Featured))
	}
	return values.Encode()
}
