package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Envelope is the uniform response shape for every API route.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

type pagedData struct {
	Items      any        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

func respondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Envelope{Success: true, Data: data})
}

func respondMessage(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, Envelope{Success: true, Data: data, Message: message})
}

func respondError(w http.ResponseWriter, status int, errorText string) {
	writeJSON(w, status, Envelope{Success: false, Error: errorText})
}

func respondPage(w http.ResponseWriter, status int, items any, page int, limit int, total int64) {
	page, limit = normalizePage(page, limit)
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	writeJSON(w, status, Envelope{
		Success: true,
		Data: pagedData{
			Items: items,
			Pagination: Pagination{
				Page:  page,
				Limit: limit,
				Total: total,
				Pages: pages,
			},
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func normalizePage(page int, limit int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func parsePageQuery(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return normalizePage(page, limit)
}
