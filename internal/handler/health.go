package handler

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status            string `json:"status"`
	Message           string `json:"message"`
	SheetsConfigured  bool   `json:"sheets_configured"`
	ContentConfigured bool   `json:"content_configured"`
}

// Health reports liveness plus whether the two external integrations have
// credentials. It never calls out to them.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:            "ok",
		Message:           "SEC MEP Engineering API",
		SheetsConfigured:  h.sink.IsConfigured(),
		ContentConfigured: h.content.IsConfigured(),
	})
}
