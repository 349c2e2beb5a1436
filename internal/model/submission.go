package model

// Submission type discriminators written to the submission_type column.
const (
	SubmissionTypeCareers     = "careers_application"
	SubmissionTypeContact     = "contact_inquiry"
	SubmissionTypeSheetsCheck = "sheets_connectivity_test"
)

// SubmissionColumns is the declared header of the submissions sheet.
// The sink writes every row positionally against this exact order, so the
// order here is load-bearing: changing it changes the meaning of existing
// columns in the spreadsheet.
var SubmissionColumns = []string{
	"submitted_at",
	"submission_type",
	"name",
	"email",
	"phone",
	"position",
	"license_status",
	"years_experience",
	"cover_message",
	"resume_name",
	"resume_type",
	"resume_size",
	"project_type",
	"message",
	"note",
}

// SubmissionRow maps column names to cell values for one submission.
// Only known columns are written; anything else is ignored by OrderedValues.
type SubmissionRow map[string]any

// OrderedValues returns the row's values in declared column order.
// Columns absent from the row serialize as "" (never nil) so spreadsheet
// columns stay aligned for every submission kind.
func (r SubmissionRow) OrderedValues() []any {
	values := make([]any, len(SubmissionColumns))
	for i, column := range SubmissionColumns {
		v, ok := r[column]
		if !ok || v == nil {
			values[i] = ""
			continue
		}
		values[i] = v
	}
	return values
}
