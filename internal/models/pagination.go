package models

// ListParams carries the common query parameters for paginated list endpoints.
type ListParams struct {
	Page   int
	Limit  int
	Search string
	Status string
}

// PaginationInfo describes the page window of a list response.
type PaginationInfo struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPaginationInfo computes the page count for a total row count.
// A zero total still reports one page so clients always have a valid window.
func NewPaginationInfo(page, limit, total int) PaginationInfo {
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	return PaginationInfo{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
