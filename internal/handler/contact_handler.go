package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/sec-engineering/site-api/internal/guard"
	"github.com/sec-engineering/site-api/internal/model"
	"github.com/sec-engineering/site-api/internal/validate"
	"github.com/sec-engineering/site-api/pkg/sheets"
)

// ContactHandler handles contact inquiry submissions.
type ContactHandler struct {
	guard *guard.Guard
	sink  sheets.Sink
	now   func() time.Time
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(g *guard.Guard, sink sheets.Sink) *ContactHandler {
	return &ContactHandler{guard: g, sink: sink, now: time.Now}
}

// contactRequest is the expected JSON body for POST /api/contact-inquiry.
// website is the honeypot; startedAt is the form render timestamp.
type contactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ProjectType string `json:"projectType"`
	Message     string `json:"message"`
	Website     string `json:"website"`
	StartedAt   string `json:"startedAt"`
}

type contactSummary struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ProjectType   string `json:"projectType"`
	MessageLength int    `json:"messageLength"`
}

type contactResponse struct {
	Success     bool           `json:"success"`
	SubmittedAt string         `json:"submittedAt"`
	Summary     contactSummary `json:"summary"`
}

// Submit handles POST /api/contact-inquiry.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid JSON payload."})
		return
	}

	inquiry := validate.ContactInquiry{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		ProjectType: strings.TrimSpace(req.ProjectType),
		Message:     strings.TrimSpace(req.Message),
	}
	website := strings.TrimSpace(req.Website)
	startedAt := strings.TrimSpace(req.StartedAt)

	if decision := h.guard.Check(r.Context(), "contact", r, website, startedAt); !decision.OK {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(decision.Status)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": decision.Message})
		return
	}

	if errs := inquiry.Validate(); len(errs) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": validate.CoarseContactMessage(inquiry, errs)})
		return
	}

	submittedAt := h.now().UTC().Format(time.RFC3339)

	row := model.SubmissionRow{
		"submitted_at":    submittedAt,
		"submission_type": model.SubmissionTypeContact,
		"name":            inquiry.Name,
		"email":           inquiry.Email,
		"phone":           inquiry.Phone,
		"project_type":    inquiry.ProjectType,
		"message":         inquiry.Message,
	}

	if err := h.sink.AppendSubmission(r.Context(), row); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": "Unable to write inquiry to Google Sheet: " + err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(contactResponse{
		Success:     true,
		SubmittedAt: submittedAt,
		Summary: contactSummary{
			Name:          inquiry.Name,
			Email:         inquiry.Email,
			Phone:         inquiry.Phone,
			ProjectType:   inquiry.ProjectType,
			MessageLength: len(inquiry.Message),
		},
	})
}
