package handler

import (
	"net/http"

	"github.com/sec-engineering/site-api/internal/content"
	"github.com/sec-engineering/site-api/pkg/sheets"
)

type Handler struct {
	sink        sheets.Sink
	content     *content.Client
	frontendURL string
}

func New(sink sheets.Sink, contentClient *content.Client, frontendURL string) *Handler {
	return &Handler{sink: sink, content: contentClient, frontendURL: frontendURL}
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
