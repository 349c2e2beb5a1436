// Package validate holds the field-level rules for each submission kind.
// Validation returns one message per failing field so interactive callers can
// attach errors inline; the HTTP handlers collapse the map into the coarser
// aggregate messages sent over the wire.
package validate

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// MaxYearsExperience bounds the years-of-experience field.
	MaxYearsExperience = 70
	// MaxResumeBytes is the resume upload size ceiling (10 MiB).
	MaxResumeBytes = 10 * 1024 * 1024
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9()+\-\s.]{7,}$`)
)

// acceptedResumeTypes are the document content types a resume may carry.
var acceptedResumeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// Errors maps a field name to a human-readable message. Empty means valid.
type Errors map[string]string

// IsEmail reports whether value has a local@domain-with-dot shape.
func IsEmail(value string) bool {
	return emailRe.MatchString(value)
}

// IsPhone reports whether value is at least 7 characters of digits and
// common phone punctuation.
func IsPhone(value string) bool {
	return phoneRe.MatchString(value)
}

// ResumeMeta describes an uploaded resume. Only this metadata is validated
// and recorded; the binary itself is never persisted.
type ResumeMeta struct {
	Filename    string
	ContentType string
	Size        int64
}

// CareersApplication is the raw field bag for a careers submission.
// String fields are expected pre-trimmed by the caller.
type CareersApplication struct {
	Name            string
	Email           string
	Phone           string
	Position        string
	LicenseStatus   string
	YearsExperience string
	CoverMessage    string
	Resume          *ResumeMeta
}

// Validate returns per-field errors for the application.
func (a CareersApplication) Validate() Errors {
	errs := Errors{}

	if strings.TrimSpace(a.Name) == "" {
		errs["name"] = "Name is required."
	}

	if strings.TrimSpace(a.Email) == "" {
		errs["email"] = "Email is required."
	} else if !IsEmail(strings.TrimSpace(a.Email)) {
		errs["email"] = "Enter a valid email address."
	}

	if strings.TrimSpace(a.Phone) == "" {
		errs["phone"] = "Phone is required."
	} else if !IsPhone(strings.TrimSpace(a.Phone)) {
		errs["phone"] = "Enter a valid phone number."
	}

	if strings.TrimSpace(a.Position) == "" {
		errs["position"] = "Position is required."
	}

	if strings.TrimSpace(a.LicenseStatus) == "" {
		errs["licenseStatus"] = "License status is required."
	}

	if strings.TrimSpace(a.YearsExperience) == "" {
		errs["yearsExperience"] = "Years of experience is required."
	} else {
		years, err := strconv.ParseFloat(strings.TrimSpace(a.YearsExperience), 64)
		if err != nil || years < 0 || years > MaxYearsExperience {
			errs["yearsExperience"] = "Enter a value between 0 and 70."
		}
	}

	if a.Resume == nil {
		errs["resume"] = "Resume file is required."
	} else if !acceptedResumeTypes[a.Resume.ContentType] {
		errs["resume"] = "Resume must be PDF, DOC, or DOCX."
	} else if a.Resume.Size > MaxResumeBytes {
		errs["resume"] = "Resume must be 10MB or smaller."
	}

	return errs
}

// ContactInquiry is the raw field bag for a contact submission.
type ContactInquiry struct {
	Name        string
	Email       string
	Phone       string
	ProjectType string
	Message     string
}

// Validate returns per-field errors for the inquiry.
func (c ContactInquiry) Validate() Errors {
	errs := Errors{}

	if strings.TrimSpace(c.Name) == "" {
		errs["name"] = "Name is required."
	}

	if strings.TrimSpace(c.Email) == "" {
		errs["email"] = "Email is required."
	} else if !IsEmail(strings.TrimSpace(c.Email)) {
		errs["email"] = "Enter a valid email address."
	}

	if strings.TrimSpace(c.Phone) == "" {
		errs["phone"] = "Phone is required."
	} else if !IsPhone(strings.TrimSpace(c.Phone)) {
		errs["phone"] = "Enter a valid phone number."
	}

	if strings.TrimSpace(c.ProjectType) == "" {
		errs["projectType"] = "Project type is required."
	}

	if strings.TrimSpace(c.Message) == "" {
		errs["message"] = "Message is required."
	}

	return errs
}
