package listquery

import (
	"context"
	"sync"
)

// Result is one fetched page. TotalPages always equals
// ceil(TotalCount/PageSize) and CurrentPage stays within [1, TotalPages];
// the controller normalizes both on every fetch.
type Result[T any] struct {
	Items       []T
	TotalCount  int
	CurrentPage int
	PageSize    int
	TotalPages  int
}

// Fetcher performs the backend query for the current Query.
type Fetcher[T any] func(ctx context.Context, q Query) (Result[T], error)

// Controller serializes query mutations and fetches for one collection.
// Every mutation except SetPage resets the page to 1. Refresh calls are
// tagged with a sequence number, and every applied mutation advances it, so
// a response fetched for an older query can never overwrite the result of a
// newer one.
type Controller[T any] struct {
	mu      sync.Mutex
	fetch   Fetcher[T]
	query   Query
	result  Result[T]
	fetched bool
	lastErr error
	pending int
	seq     uint64
}

func NewController[T any](fetch Fetcher[T]) *Controller[T] {
	return &Controller[T]{
		fetch: fetch,
		query: DefaultQuery(),
	}
}

func (c *Controller[T]) SetSearch(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.query.Search == text {
		return
	}
	c.query.Search = text
	c.query.Page = 1
	c.seq++
}

func (c *Controller[T]) SetFilter(name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.query.Filters[name] == value {
		return
	}
	if value == "" {
		delete(c.query.Filters, name)
	} else {
		c.query.Filters[name] = value
	}
	c.query.Page = 1
	c.seq++
}

func (c *Controller[T]) SetSort(field, order string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.query.SortBy == field && c.query.SortOrder == order {
		return
	}
	c.query.SortBy = field
	c.query.SortOrder = order
	c.query.Page = 1
	c.seq++
}

func (c *Controller[T]) SetPageSize(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n < 1 || c.query.PageSize == n {
		return
	}
	c.query.PageSize = n
	c.query.Page = 1
	c.seq++
}

// SetPage reports whether the change was applied. Targets outside
// [1, last known totalPages] are rejected; before the first fetch the only
// known page is 1.
func (c *Controller[T]) SetPage(n int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n < 1 || n > c.knownTotalPages() {
		return false
	}
	c.query.Page = n
	c.seq++
	return true
}

// Clear resets search, filters and sort to defaults and the page to 1.
// The page size survives.
func (c *Controller[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	size := c.query.PageSize
	c.query = DefaultQuery()
	c.query.PageSize = size
	c.seq++
}

// Refresh issues one fetch for the query as it stands now. When several
// refreshes overlap, only the response belonging to the newest one may
// replace the stored result; older responses are dropped on arrival. A
// failed refresh keeps the previous result and records the error. It is
// never retried automatically.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	tag := c.seq
	q := c.query.clone()
	c.pending++
	c.mu.Unlock()

	result, err := c.fetch(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending--
	if tag != c.seq {
		// The query changed (or a newer refresh started) while this
		// one was in flight; its response no longer applies.
		return nil
	}
	if err != nil {
		c.lastErr = err
		return err
	}
	normalize(&result, q)
	c.result = result
	c.fetched = true
	c.lastErr = nil
	// Keep the query page aligned with what the backend actually served.
	c.query.Page = result.CurrentPage
	return nil
}

func (c *Controller[T]) Query() Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query.clone()
}

// Result returns the last successfully fetched page and whether any fetch
// has succeeded yet. Zero items with ok=true is a valid empty result, not
// an error.
func (c *Controller[T]) Result() (Result[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result, c.fetched
}

func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending > 0
}

func (c *Controller[T]) knownTotalPages() int {
	if !c.fetched {
		return 1
	}
	return c.result.TotalPages
}

// normalize enforces the page arithmetic the views rely on even when the
// backend omits or miscomputes the derived fields.
func normalize[T any](r *Result[T], q Query) {
	if r.PageSize < 1 {
		r.PageSize = q.PageSize
	}
	r.TotalPages = (r.TotalCount + r.PageSize - 1) / r.PageSize
	if r.TotalPages < 1 {
		r.TotalPages = 1
	}
	if r.CurrentPage < 1 {
		r.CurrentPage = q.Page
	}
	if r.CurrentPage > r.TotalPages {
		r.CurrentPage = r.TotalPages
	}
}
