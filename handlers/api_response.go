package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"meenakshitravels/models"
)

// ApiResponse is the envelope every JSON endpoint returns.
type ApiResponse struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message,omitempty"`
	Data       interface{}        `json:"data,omitempty"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp ApiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// parseListQuery reads the common list parameters: page, limit, search,
// status, featured. Absent or malformed values fall back to defaults.
func parseListQuery(r *http.Request) models.ListQuery {
	q := models.ListQuery{}
	values := r.URL.Query()

	if v, err := strconv.Atoi(values.Get("page")); err == nil {
		q.Page = v
	}
	if v, err := strconv.Atoi(values.Get("limit")); err == nil {
		q.Limit = v
	}
	q.Search = values.Get("search")
	q.Status = values.Get("status")
	if raw := values.Get("featured"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			q.Featured = &v
		}
	}

	q.Normalize()
	return q
}
