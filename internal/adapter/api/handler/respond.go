package handler

import (
	"encoding/json"
	"net/http"

	"github.com/user/provider-registry/internal/validation"
)

// respondJSON writes v as the JSON response body with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// respondError writes a generic error message.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// respondProblems writes a validation problem: per-field violation
// messages, on a status distinct from a generic bad request.
func respondProblems(w http.ResponseWriter, problems validation.Problems) {
	respondJSON(w, http.StatusUnprocessableEntity, map[string]validation.Problems{"errors": problems})
}
