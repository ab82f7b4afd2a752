package paginator

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PaginateQuery is the page/limit pair a caller asked for.
type PaginateQuery struct {
	Page  int
	Limit int
}

// Adjust clamps the query into a valid range.
func (q *PaginateQuery) Adjust() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
}

// Offset returns the number of rows to skip.
func (q PaginateQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Paginator is the pagination metadata returned next to a page of results.
type Paginator struct {
	Total       int `json:"total"`
	Count       int `json:"count"`
	PerPage     int `json:"per_page"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// New builds the metadata for a page holding count of total rows.
func New(q PaginateQuery, total, count int) Paginator {
	totalPages := 0
	if q.Limit > 0 {
		totalPages = (total + q.Limit - 1) / q.Limit
	}
	return Paginator{
		Total:       total,
		Count:       count,
		PerPage:     q.Limit,
		CurrentPage: q.Page,
		TotalPages:  totalPages,
	}
}
