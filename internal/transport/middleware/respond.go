package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError matches the error body shape of the REST handlers so clients
// see one format whether a request fails in middleware or in a handler.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}{code, message})
}
