package utils

import (
	"encoding/json"
	"net/http"
	"strconv"

	"amc-backend/internal/models"
)

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// List writes the standard paginated list envelope.
func List(w http.ResponseWriter, data interface{}, pagination models.PaginationInfo) {
	JSON(w, http.StatusOK, map[string]interface{}{
		"data":       data,
		"pagination": pagination,
	})
}

// ParseListParams reads page, limit, search and status from the query string.
// Page and limit are clamped to sane values so a bad query never produces an
// unbounded scan.
func ParseListParams(r *http.Request) models.ListParams {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	return models.ListParams{
		Page:   page,
		Limit:  limit,
		Search: q.Get("search"),
		Status: q.Get("status"),
	}
}
