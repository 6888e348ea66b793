// Package http provides HTTP handlers for authentication and expense routes.
package http

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the uniform error body shape.
type errorResponse struct {
	Error string `json:"error"`
}

// successResponse acknowledges a mutation without returning the record.
// Callers re-fetch the list to observe new state.
type successResponse struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}
