package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/decklist-exporter/internal/api/apierr"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}
