// Package listquery owns the combined search/filter/sort/paginate state for
// one backend-paged collection and keeps it synchronized with the matching
// result page.
package listquery

// Filter names understood by the backend list endpoints.
const (
	FilterLevel   = "level"
	FilterSubject = "subject"
	FilterDate    = "dateFilter"
)

const (
	DefaultPageSize  = 10
	DefaultSortBy    = "createdAt"
	DefaultSortOrder = "desc"
)

// Query is the request half of the list contract. Page is 1-based.
type Query struct {
	Page      int
	PageSize  int
	Search    string
	SortBy    string
	SortOrder string
	Filters   map[string]string
}

func DefaultQuery() Query {
	return Query{
		Page:      1,
		PageSize:  DefaultPageSize,
		SortBy:    DefaultSortBy,
		SortOrder: DefaultSortOrder,
		Filters:   map[string]string{},
	}
}

// Filter returns the named filter value, "" when unset.
func (q Query) Filter(name string) string {
	return q.Filters[name]
}

// clone keeps callers from sharing the filter map with the controller.
func (q Query) clone() Query {
	filters := make(map[string]string, len(q.Filters))
	for k, v := range q.Filters {
		filters[k] = v
	}
	q.Filters = filters
	return q
}
