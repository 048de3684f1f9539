package models

// ListQuery carries the common list-endpoint query parameters.
type ListQuery struct {
	Page     int
	Limit    int
	Search   string
	Status   string
	Featured *bool
}

// Pagination is the envelope block returned alongside list data.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	Limit       int   `json:"limit"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

const DefaultPageLimit = 10

// Normalize clamps page/limit to usable values.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageLimit
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
}

// NewPagination computes the envelope block from a total count and query.
func NewPagination(total int64, q ListQuery) Pagination {
	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	if totalPages < 1 {
		totalPages = 1
	}
	return Pagination{
		CurrentPage: q.Page,
		TotalPages:  totalPages,
		TotalItems:  total,
		Limit:       q.Limit,
		HasNextPage: q.Page < totalPages,
		HasPrevPage: q.Page > 1,
	}
}
