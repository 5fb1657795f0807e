package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/amaumene/movienarr/internal/media"
)

type errorResponse struct {
	Error string `json:"error"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// pathKind parses the {kind} path segment; a bad kind writes the 400
// itself and reports ok=false
func pathKind(w http.ResponseWriter, r *http.Request) (media.Kind, bool) {
	kind, err := media.ParseKind(r.PathValue("kind"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return kind, true
}
