package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/sec-engineering/site-api/internal/content"
)

// ContentHandler serves the content façade as JSON. Envelopes are returned
// as-is: an unconfigured content source is a 200 with configured=false (the
// page renders a placeholder), an upstream failure is a 500 with the fetch
// error embedded, and a missing entity is a 404.
type ContentHandler struct {
	queries *content.Queries
}

// NewContentHandler creates a ContentHandler over the given façade.
func NewContentHandler(queries *content.Queries) *ContentHandler {
	return &ContentHandler{queries: queries}
}

// envelopeStatus maps a query envelope to an HTTP status.
func envelopeStatus(configured bool, errMsg string) int {
	switch {
	case errMsg == "" || !configured:
		return http.StatusOK
	case strings.Contains(errMsg, "not found"):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeEnvelope(w http.ResponseWriter, status int, envelope any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope)
}

// Projects handles GET /api/content/projects with an optional ?category= filter.
func (h *ContentHandler) Projects(w http.ResponseWriter, r *http.Request) {
	result := h.queries.Projects(r.Context(), r.URL.Query().Get("category"))
	writeEnvelope(w, envelopeStatus(result.Configured, result.Error), result)
}

// ProjectBySlug handles GET /api/content/projects/{slug}.
func (h *ContentHandler) ProjectBySlug(w http.ResponseWriter, r *http.Request) {
	result := h.queries.ProjectBySlug(r.Context(), r.PathValue("slug"))
	writeEnvelope(w, envelopeStatus(result.Configured, result.Error), result)
}

// FeaturedProjects handles GET /api/content/featured-projects with an
// optional ?limit= (default 4).
func (h *ContentHandler) FeaturedProjects(w http.ResponseWriter, r *http.Request) {
	limit := 4
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	result := h.queries.FeaturedProjects(r.Context(), limit)
	writeEnvelope(w, envelopeStatus(result.Configured, result.Error), result)
}

// Team handles GET /api/content/team.
func (h *ContentHandler) Team(w http.ResponseWriter, r *http.Request) {
	result := h.queries.TeamMembers(r.Context())
	writeEnvelope(w, envelopeStatus(result.Configured, result.Error), result)
}

// Services handles GET /api/content/services.
func (h *ContentHandler) Services(w http.ResponseWriter, r *http.Request) {
	result := h.queries.Services(r.Context())
	writeEnvelope(w, envelopeStatus(result.Configured, result.Error), result)
}

// About handles GET /api/content/about.
func (h *ContentHandler) About(w http.ResponseWriter, r *http.Request) {
	result := h.queries.About(r.Context())
	writeEnvelope(w, envelopeStatus(result.Configured, result.Error), result)
}

// Careers handles GET /api/content/careers.
func (h *ContentHandler) Careers(w http.ResponseWriter, r *http.Request) {
	result := h.queries.Careers(r.Context())
	writeEnvelope(w, envelopeStatus(result.Configured, result.Error), result)
}

// Contact handles GET /api/content/contact.
func (h *ContentHandler) Contact(w http.ResponseWriter, r *http.Request) {
	result := h.queries.Contact(r.Context())
	writeEnvelope(w, envelopeStatus(result.Configured, result.Error), result)
}
