package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func respondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// respondMessage writes the {"message": ...} error body the web
// client expects.
func respondMessage(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, map[string]string{"message": message})
}

// respondRawJSON writes an already-serialized body (cache hits).
func respondRawJSON(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(body))
}

// queryInt reads an integer query parameter, falling back to the
// default on absent or non-numeric input.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// filterQuery reads an equality filter; the client's "All" sentinel
// means no filter.
func filterQuery(r *http.Request, name string) string {
	value := r.URL.Query().Get(name)
	if value == "All" {
		return ""
	}
	return value
}

// urlParamInt parses a numeric path parameter. The ok result is false
// for non-numeric input, which callers treat as not-found.
func urlParamInt(r *http.Request, name string) (int, bool) {
	value, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, false
	}
	return value, true
}
