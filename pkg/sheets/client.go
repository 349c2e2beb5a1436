// Package sheets provides the durable append sink for form submissions,
// backed by a Google Sheet written through a service-account identity.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/sec-engineering/site-api/internal/model"
)

const (
	// DefaultSpreadsheetID is the submissions sheet used when no override is set.
	DefaultSpreadsheetID = "1BumOnqpe_018pL0fz-ZpLvOp_vpKZoWR6o2ndjhjAOI"
	// DefaultTabName is the sheet tab rows are appended to.
	DefaultTabName = "Submissions"
)

// ErrNotConfigured is returned when the service-account credential is absent.
var ErrNotConfigured = errors.New("sheets: not configured")

// Config carries the sink's external configuration.
type Config struct {
	// ClientEmail is the service-account email (GOOGLE_SERVICE_ACCOUNT_EMAIL).
	ClientEmail string
	// PrivateKey is the service-account private key. Literal `\n` sequences
	// (the usual env-var encoding of PEM line breaks) are normalized to
	// newlines before use.
	PrivateKey string
	// SpreadsheetID overrides DefaultSpreadsheetID when set.
	SpreadsheetID string
	// TabName overrides DefaultTabName when set.
	TabName string
}

// Sink appends normalized submission rows to the tabular store.
type Sink interface {
	// AppendSubmission writes one row with values in declared column order.
	// It verifies (and if needed rewrites) the header row first, then appends.
	// Any failure propagates as a single error; there is no retry.
	AppendSubmission(ctx context.Context, row model.SubmissionRow) error
	// IsConfigured reports whether a credential is present.
	IsConfigured() bool
}

// valuesAPI is the slice of the Sheets values API the sink needs.
// RealClient binds it to Google; tests substitute a fake.
type valuesAPI interface {
	get(ctx context.Context, spreadsheetID, valueRange string) ([][]any, error)
	update(ctx context.Context, spreadsheetID, valueRange string, values [][]any) error
	append(ctx context.Context, spreadsheetID, valueRange string, values [][]any) error
}

// RealClient is the production Sink over the Google Sheets API.
type RealClient struct {
	cfg Config

	initOnce sync.Once
	api      valuesAPI
	initErr  error
}

// NewClient creates a RealClient. The Sheets service itself is built lazily
// on the first append, so an unconfigured client is constructible and simply
// fails each append with ErrNotConfigured.
func NewClient(cfg Config) *RealClient {
	if cfg.SpreadsheetID == "" {
		cfg.SpreadsheetID = DefaultSpreadsheetID
	}
	if cfg.TabName == "" {
		cfg.TabName = DefaultTabName
	}
	return &RealClient{cfg: cfg}
}

// IsConfigured reports whether the service-account credential is present.
func (c *RealClient) IsConfigured() bool {
	return c.cfg.ClientEmail != "" && c.cfg.PrivateKey != ""
}

// normalizedPrivateKey converts `\n` escapes back into PEM line breaks.
func (c *RealClient) normalizedPrivateKey() string {
	return strings.ReplaceAll(c.cfg.PrivateKey, `\n`, "\n")
}

func (c *RealClient) service() (valuesAPI, error) {
	c.initOnce.Do(func() {
		conf := &jwt.Config{
			Email:      c.cfg.ClientEmail,
			PrivateKey: []byte(c.normalizedPrivateKey()),
			Scopes:     []string{sheets.SpreadsheetsScope},
			TokenURL:   google.JWTTokenURL,
		}
		svc, err := sheets.NewService(context.Background(),
			option.WithTokenSource(conf.TokenSource(context.Background())))
		if err != nil {
			c.initErr = fmt.Errorf("create sheets service: %w", err)
			return
		}
		c.api = &googleValuesAPI{svc: svc}
	})
	return c.api, c.initErr
}

// headerRange is the cell range holding the declared column names, e.g.
// "Submissions!A1:O1" for a 15-column schema.
func (c *RealClient) headerRange() string {
	return fmt.Sprintf("%s!A1:%c1", c.cfg.TabName, rune('A'+len(model.SubmissionColumns)-1))
}

func (c *RealClient) appendRange() string {
	return c.cfg.TabName + "!A:Z"
}

// AppendSubmission verifies the header row, then appends one data row with
// values in declared column order. Unset columns are already serialized to
// empty strings by SubmissionRow.OrderedValues.
func (c *RealClient) AppendSubmission(ctx context.Context, row model.SubmissionRow) error {
	if !c.IsConfigured() {
		return fmt.Errorf("%w: set GOOGLE_SERVICE_ACCOUNT_EMAIL and GOOGLE_SERVICE_ACCOUNT_PRIVATE_KEY", ErrNotConfigured)
	}

	api, err := c.service()
	if err != nil {
		return err
	}

	if err := c.ensureHeaders(ctx, api); err != nil {
		return err
	}

	if err := api.append(ctx, c.cfg.SpreadsheetID, c.appendRange(), [][]any{row.OrderedValues()}); err != nil {
		return fmt.Errorf("append submission row: %w", err)
	}
	return nil
}

// ensureHeaders reads the header row and rewrites it with the canonical
// column sequence on any positional mismatch. Running before every append
// keeps the sink self-healing against a wiped or hand-edited header, at the
// cost of one read per append.
func (c *RealClient) ensureHeaders(ctx context.Context, api valuesAPI) error {
	rows, err := api.get(ctx, c.cfg.SpreadsheetID, c.headerRange())
	if err != nil {
		return fmt.Errorf("read header row: %w", err)
	}

	var existing []any
	if len(rows) > 0 {
		existing = rows[0]
	}

	matches := true
	for i, column := range model.SubmissionColumns {
		var cell string
		if i < len(existing) {
			cell = fmt.Sprint(existing[i])
		}
		if cell != column {
			matches = false
			break
		}
	}
	if matches {
		return nil
	}

	header := make([]any, len(model.SubmissionColumns))
	for i, column := range model.SubmissionColumns {
		header[i] = column
	}
	if err := api.update(ctx, c.cfg.SpreadsheetID, c.headerRange(), [][]any{header}); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}
	return nil
}

// googleValuesAPI adapts *sheets.Service to the valuesAPI seam.
type googleValuesAPI struct {
	svc *sheets.Service
}

func (g *googleValuesAPI) get(ctx context.Context, spreadsheetID, valueRange string) ([][]any, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(spreadsheetID, valueRange).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

func (g *googleValuesAPI) update(ctx context.Context, spreadsheetID, valueRange string, values [][]any) error {
	_, err := g.svc.Spreadsheets.Values.Update(spreadsheetID, valueRange, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return err
}

func (g *googleValuesAPI) append(ctx context.Context, spreadsheetID, valueRange string, values [][]any) error {
	_, err := g.svc.Spreadsheets.Values.Append(spreadsheetID, valueRange, &sheets.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}
