package listquery

import (
	"context"
	"errors"
	"testing"
)

// pagesFetcher fakes a backend holding totalCount items.
func pagesFetcher(totalCount int) Fetcher[int] {
	return func(ctx context.Context, q Query) (Result[int], error) {
		return Result[int]{
			Items:       make([]int, 0),
			TotalCount:  totalCount,
			CurrentPage: q.Page,
			PageSize:    q.PageSize,
			TotalPages:  (totalCount + q.PageSize - 1) / q.PageSize,
		}, nil
	}
}

func TestMutationsResetPage(t *testing.T) {
	mutations := map[string]func(c *Controller[int]){
		"search":   func(c *Controller[int]) { c.SetSearch("kinematyka") },
		"filter":   func(c *Controller[int]) { c.SetFilter(FilterLevel, "rozszerzony") },
		"sort":     func(c *Controller[int]) { c.SetSort("prompt", "asc") },
		"pageSize": func(c *Controller[int]) { c.SetPageSize(20) },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			c := NewController(pagesFetcher(50))
			if err := c.Refresh(context.Background()); err != nil {
				t.Fatalf("Refresh failed: %v", err)
			}
			if !c.SetPage(3) {
				t.Fatal("Expected SetPage(3) to be applied with 5 pages available")
			}
			mutate(c)
			if got := c.Query().Page; got != 1 {
				t.Errorf("Expected page reset to 1 after %s mutation, got %d", name, got)
			}
		})
	}
}

func TestUnchangedMutationKeepsPage(t *testing.T) {
	c := NewController(pagesFetcher(50))
	c.SetSearch("energia")
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	c.SetPage(2)

	// Re-submitting the same values must not reset pagination.
	c.SetSearch("energia")
	c.SetSort(DefaultSortBy, DefaultSortOrder)
	c.SetPageSize(DefaultPageSize)
	if got := c.Query().Page; got != 2 {
		t.Errorf("Expected page 2 to survive no-op mutations, got %d", got)
	}
}

func TestSetPageBounds(t *testing.T) {
	c := NewController(pagesFetcher(50))

	// Before any fetch only page 1 is known.
	if c.SetPage(2) {
		t.Error("Expected SetPage(2) rejected before first fetch")
	}
	if c.SetPage(0) || c.SetPage(-1) {
		t.Error("Expected pages below 1 rejected")
	}
	if !c.SetPage(1) {
		t.Error("Expected SetPage(1) accepted")
	}

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if c.SetPage(6) {
		t.Error("Expected SetPage(6) rejected with 5 pages")
	}
	if !c.SetPage(5) {
		t.Error("Expected SetPage(5) accepted with 5 pages")
	}
}

func TestResultNormalization(t *testing.T) {
	// Backend omits the derived fields entirely.
	c := NewController(func(ctx context.Context, q Query) (Result[int], error) {
		return Result[int]{TotalCount: 25}, nil
	})
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	result, ok := c.Result()
	if !ok {
		t.Fatal("Expected a fetched result")
	}
	if result.TotalPages != 3 {
		t.Errorf("Expected totalPages ceil(25/10)=3, got %d", result.TotalPages)
	}
	if result.CurrentPage != 1 {
		t.Errorf("Expected currentPage 1, got %d", result.CurrentPage)
	}
}

func TestEmptyResultIsValid(t *testing.T) {
	c := NewController(pagesFetcher(0))
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	result, ok := c.Result()
	if !ok {
		t.Fatal("Expected zero items to count as a fetched result")
	}
	if len(result.Items) != 0 || result.TotalCount != 0 {
		t.Errorf("Expected an empty result, got %+v", result)
	}
	if result.TotalPages != 1 {
		t.Errorf("Expected totalPages clamped to 1, got %d", result.TotalPages)
	}
	if c.Err() != nil {
		t.Errorf("Expected no error for an empty result, got %v", c.Err())
	}
}

func TestClearResetsEverythingButPageSize(t *testing.T) {
	c := NewController(pagesFetcher(100))
	c.SetSearch("praca")
	c.SetFilter(FilterLevel, "podstawowy")
	c.SetSort("prompt", "asc")
	c.SetPageSize(20)

	c.Clear()

	q := c.Query()
	if q.Search != "" || len(q.Filters) != 0 {
		t.Errorf("Expected search and filters cleared, got %+v", q)
	}
	if q.SortBy != DefaultSortBy || q.SortOrder != DefaultSortOrder {
		t.Errorf("Expected default sort, got %s/%s", q.SortBy, q.SortOrder)
	}
	if q.Page != 1 {
		t.Errorf("Expected page 1 after clear, got %d", q.Page)
	}
	if q.PageSize != 20 {
		t.Errorf("Expected page size to survive clear, got %d", q.PageSize)
	}
}

func TestFailedRefreshKeepsPreviousResult(t *testing.T) {
	fail := false
	c := NewController(func(ctx context.Context, q Query) (Result[int], error) {
		if fail {
			return Result[int]{}, errors.New("backend down")
		}
		return Result[int]{Items: []int{1, 2}, TotalCount: 2, CurrentPage: 1, PageSize: q.PageSize, TotalPages: 1}, nil
	})

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	fail = true
	c.SetSearch("grawitacja")
	if err := c.Refresh(context.Background()); err == nil {
		t.Fatal("Expected the failed refresh to report its error")
	}

	result, ok := c.Result()
	if !ok || len(result.Items) != 2 {
		t.Errorf("Expected the previous result to survive a failed refresh, got %+v", result)
	}
	if c.Err() == nil {
		t.Error("Expected the error flag to be set")
	}

	fail = false
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if c.Err() != nil {
		t.Errorf("Expected the error flag cleared by a successful refresh, got %v", c.Err())
	}
}

// Two filter changes land before the first fetch resolves; the stale
// response must be dropped and the final state must reflect both filters.
func TestStaleResponseIsDropped(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	first := true

	c := NewController(func(ctx context.Context, q Query) (Result[int], error) {
		if first {
			first = false
			close(started)
			<-release
			return Result[int]{Items: []int{-1}, TotalCount: 1, CurrentPage: 1, PageSize: q.PageSize, TotalPages: 1}, nil
		}
		if q.Filter(FilterLevel) != "podstawowy" || q.Filter(FilterSubject) != "mechanika" {
			t.Errorf("Expected both filters in the second fetch, got %+v", q.Filters)
		}
		return Result[int]{Items: []int{42}, TotalCount: 1, CurrentPage: 1, PageSize: q.PageSize, TotalPages: 1}, nil
	})

	c.SetFilter(FilterLevel, "podstawowy")

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Refresh(context.Background())
	}()
	<-started

	c.SetFilter(FilterSubject, "mechanika")
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	close(release)
	<-done

	result, ok := c.Result()
	if !ok {
		t.Fatal("Expected a fetched result")
	}
	if len(result.Items) != 1 || result.Items[0] != 42 {
		t.Errorf("Expected the newer response to win, got %+v", result.Items)
	}
}
