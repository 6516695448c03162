package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"amc-backend/internal/models"
)

func TestParseListParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  models.ListParams
	}{
		{"defaults", "", models.ListParams{Page: 1, Limit: 10}},
		{"explicit values", "page=3&limit=25&search=acme&status=active",
			models.ListParams{Page: 3, Limit: 25, Search: "acme", Status: "active"}},
		{"zero page clamped", "page=0&limit=5", models.ListParams{Page: 1, Limit: 5}},
		{"negative page clamped", "page=-2", models.ListParams{Page: 1, Limit: 10}},
		{"limit capped", "limit=500", models.ListParams{Page: 1, Limit: 100}},
		{"garbage numbers fall back", "page=abc&limit=xyz", models.ListParams{Page: 1, Limit: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/customers?"+tt.query, nil)
			got := ParseListParams(r)
			if got != tt.want {
				t.Errorf("ParseListParams() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestErrorWritesJSONBody(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusNotFound, "customer not found")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["error"] != "customer not found" {
		t.Errorf("error = %q, want %q", body["error"], "customer not found")
	}
}

func TestListEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	List(rec, []string{"a", "b"}, models.NewPaginationInfo(1, 10, 2))

	var body struct {
		Data       []string              `json:"data"`
		Pagination models.PaginationInfo `json:"pagination"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(body.Data) != 2 {
		t.Errorf("data length = %d, want 2", len(body.Data))
	}
	if body.Pagination.Total != 2 || body.Pagination.TotalPages != 1 {
		t.Errorf("pagination = %+v, want total 2 over 1 page", body.Pagination)
	}
}
