package validate

import (
	"strconv"
	"strings"
)

// The endpoint boundary reports a single aggregate message, deliberately
// coarser than the per-field map: the API is the second line of defense
// behind the interactive form and should not enumerate rule failures.

// YearsValue parses the years-of-experience field. ok is false when the
// value is empty or not numeric.
func YearsValue(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	years, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return years, true
}

// CoarseCareersMessage collapses field errors into the single message the
// careers endpoint responds with.
func CoarseCareersMessage(a CareersApplication, errs Errors) string {
	_, yearsNumeric := YearsValue(a.YearsExperience)

	requiredMissing := strings.TrimSpace(a.Name) == "" ||
		strings.TrimSpace(a.Email) == "" ||
		strings.TrimSpace(a.Phone) == "" ||
		strings.TrimSpace(a.Position) == "" ||
		strings.TrimSpace(a.LicenseStatus) == "" ||
		!yearsNumeric

	switch {
	case requiredMissing:
		return "Missing required fields for careers application."
	case errs["email"] != "":
		return "Invalid email address."
	case errs["phone"] != "":
		return "Invalid phone number."
	case errs["yearsExperience"] != "":
		return "Years of experience must be between 0 and 70."
	case a.Resume == nil:
		return "Resume file is required."
	case errs["resume"] == "Resume must be PDF, DOC, or DOCX.":
		return "Resume must be PDF, DOC, or DOCX."
	case errs["resume"] != "":
		return "Resume file must be 10MB or smaller."
	default:
		return "Missing required fields for careers application."
	}
}

// CoarseContactMessage collapses field errors into the single message the
// contact endpoint responds with.
func CoarseContactMessage(c ContactInquiry, errs Errors) string {
	requiredMissing := strings.TrimSpace(c.Name) == "" ||
		strings.TrimSpace(c.Email) == "" ||
		strings.TrimSpace(c.Phone) == "" ||
		strings.TrimSpace(c.ProjectType) == "" ||
		strings.TrimSpace(c.Message) == ""

	switch {
	case requiredMissing:
		return "Missing required fields for contact inquiry."
	case errs["email"] != "":
		return "Invalid email address."
	case errs["phone"] != "":
		return "Invalid phone number."
	default:
		return "Missing required fields for contact inquiry."
	}
}
