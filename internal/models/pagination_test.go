package models

import "testing"

func TestNewPaginationInfo(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int
		totalPages int
	}{
		{"exact multiple", 1, 10, 30, 3},
		{"partial last page", 2, 10, 31, 4},
		{"single row", 1, 10, 1, 1},
		{"zero total still one page", 1, 10, 0, 1},
		{"total below limit", 1, 25, 7, 1},
		{"limit one", 3, 1, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaginationInfo(tt.page, tt.limit, tt.total)
			if p.Page != tt.page {
				t.Errorf("Page = %d, want %d", p.Page, tt.page)
			}
			if p.Limit != tt.limit {
				t.Errorf("Limit = %d, want %d", p.Limit, tt.limit)
			}
			if p.Total != tt.total {
				t.Errorf("Total = %d, want %d", p.Total, tt.total)
			}
			if p.TotalPages != tt.totalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.totalPages)
			}
		})
	}
}
