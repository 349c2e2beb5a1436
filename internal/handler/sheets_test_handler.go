package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/sec-engineering/site-api/internal/model"
	"github.com/sec-engineering/site-api/pkg/sheets"
)

// SheetsTestHandler exposes an operator-only connectivity check that appends
// a marker row to the submissions sheet. It is gated by a shared secret, not
// by the submission guard: it is not a public form.
type SheetsTestHandler struct {
	sink  sheets.Sink
	token string
	now   func() time.Time
}

// NewSheetsTestHandler creates a SheetsTestHandler. token is the required
// bearer secret; empty means the endpoint is misconfigured and every call
// responds 500.
func NewSheetsTestHandler(sink sheets.Sink, token string) *SheetsTestHandler {
	return &SheetsTestHandler{sink: sink, token: token, now: time.Now}
}

type sheetsTestRequest struct {
	Note string `json:"note"`
}

// bearerToken extracts the token from an "Authorization: Bearer x" header.
func bearerToken(r *http.Request) string {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// Run handles POST /api/sheets-test.
func (h *SheetsTestHandler) Run(w http.ResponseWriter, r *http.Request) {
	if h.token == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "SHEETS_TEST_TOKEN is not configured."})
		return
	}

	provided := bearerToken(r)
	if provided == "" || provided != h.token {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized."})
		return
	}

	// The body is optional; a malformed one just falls back to the default note.
	var req sheetsTestRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	note := strings.TrimSpace(req.Note)
	if note == "" {
		note = "manual connectivity test"
	}

	submittedAt := h.now().UTC().Format(time.RFC3339)

	row := model.SubmissionRow{
		"submitted_at":    submittedAt,
		"submission_type": model.SubmissionTypeSheetsCheck,
		"name":            "system",
		"email":           "system@example.com",
		"phone":           "n/a",
		"note":            note,
	}

	if err := h.sink.AppendSubmission(r.Context(), row); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": "Failed to append test row: " + err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success":     true,
		"submittedAt": submittedAt,
		"message":     "Test row appended to Google Sheet.",
	})
}
