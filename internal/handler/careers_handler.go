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

// maxCareersRequestBytes caps the whole multipart body: the resume ceiling
// plus headroom for the text fields.
const maxCareersRequestBytes = validate.MaxResumeBytes + 1*1024*1024

// CareersHandler handles careers application submissions.
type CareersHandler struct {
	guard *guard.Guard
	sink  sheets.Sink
	now   func() time.Time
}

// NewCareersHandler creates a CareersHandler.
func NewCareersHandler(g *guard.Guard, sink sheets.Sink) *CareersHandler {
	return &CareersHandler{guard: g, sink: sink, now: time.Now}
}

type careersSummary struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Position        string  `json:"position"`
	LicenseStatus   string  `json:"licenseStatus"`
	YearsExperience float64 `json:"yearsExperience"`
	HasCoverMessage bool    `json:"hasCoverMessage"`
	ResumeName      string  `json:"resumeName"`
}

type careersResponse struct {
	Success     bool           `json:"success"`
	SubmittedAt string         `json:"submittedAt"`
	Summary     careersSummary `json:"summary"`
}

// Submit handles POST /api/careers-application (multipart form).
// Pipeline: guard → validate → normalize → append. The resume binary is
// accepted and validated but only its metadata reaches the sheet.
func (h *CareersHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxCareersRequestBytes)
	if err := r.ParseMultipartForm(maxCareersRequestBytes); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid form payload."})
		return
	}

	app := validate.CareersApplication{
		Name:            strings.TrimSpace(r.FormValue("name")),
		Email:           strings.TrimSpace(r.FormValue("email")),
		Phone:           strings.TrimSpace(r.FormValue("phone")),
		Position:        strings.TrimSpace(r.FormValue("position")),
		LicenseStatus:   strings.TrimSpace(r.FormValue("licenseStatus")),
		YearsExperience: strings.TrimSpace(r.FormValue("yearsExperience")),
		CoverMessage:    strings.TrimSpace(r.FormValue("coverMessage")),
	}
	website := r.FormValue("website")
	startedAt := r.FormValue("startedAt")

	if file, header, err := r.FormFile("resume"); err == nil {
		_ = file.Close()
		app.Resume = &validate.ResumeMeta{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
		}
	}

	if decision := h.guard.Check(r.Context(), "careers", r, website, startedAt); !decision.OK {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(decision.Status)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": decision.Message})
		return
	}

	if errs := app.Validate(); len(errs) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": validate.CoarseCareersMessage(app, errs)})
		return
	}

	years, _ := validate.YearsValue(app.YearsExperience)
	submittedAt := h.now().UTC().Format(time.RFC3339)

	row := model.SubmissionRow{
		"submitted_at":     submittedAt,
		"submission_type":  model.SubmissionTypeCareers,
		"name":             app.Name,
		"email":            app.Email,
		"phone":            app.Phone,
		"position":         app.Position,
		"license_status":   app.LicenseStatus,
		"years_experience": years,
		"cover_message":    app.CoverMessage,
		"resume_name":      app.Resume.Filename,
		"resume_type":      app.Resume.ContentType,
		"resume_size":      app.Resume.Size,
	}

	if err := h.sink.AppendSubmission(r.Context(), row); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": "Unable to write submission to Google Sheet: " + err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(careersResponse{
		Success:     true,
		SubmittedAt: submittedAt,
		Summary: careersSummary{
			Name:            app.Name,
			Email:           app.Email,
			Phone:           app.Phone,
			Position:        app.Position,
			LicenseStatus:   app.LicenseStatus,
			YearsExperience: years,
			HasCoverMessage: app.CoverMessage != "",
			ResumeName:      app.Resume.Filename,
		},
	})
}
