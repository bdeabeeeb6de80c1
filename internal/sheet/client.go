package sheet

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Store is the interface the rest of the application uses to talk to the
// remote table store.  Reads return the full worksheet grid including the
// header row; writes are either a single row append or a single cell update.
// The store offers no transactions and no locking, so callers must treat
// every call as independent.  Row and Col in UpdateCell are 1-based
// spreadsheet coordinates: a caller holding a 0-based index into the data
// rows of a snapshot adds 2 (one for 1-based addressing, one for the header
// row) before calling.
type Store interface {
	ReadTable(ctx context.Context, name string) ([][]string, error)
	AppendRow(ctx context.Context, table string, values []string) error
	UpdateCell(ctx context.Context, table string, row, col int, value string) error
}

// HeaderOffset converts a 0-based index into a snapshot's data rows to the
// 1-based spreadsheet row it came from (header row occupies row 1).
func HeaderOffset(dataIndex int) int { return dataIndex + 2 }

// sheetStore implements Store over the Google Sheets v4 API.  Reads get a
// bounded timeout and a single retry, since a re-read is harmless.  Writes
// get the timeout but never a retry: an append is not idempotent and a blind
// retry would duplicate a ledger row.
type sheetStore struct {
	svc           *sheets.Service
	spreadsheetID string
	callTimeout   time.Duration
}

// New builds a Store for the given spreadsheet.  creds is either inline
// service-account JSON or a path to a key file; empty falls back to
// application default credentials.  The handle is constructed once at
// startup and injected everywhere it is needed.
func New(ctx context.Context, spreadsheetID, creds string) (Store, error) {
	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	creds = strings.TrimSpace(creds)
	if creds != "" {
		if strings.HasPrefix(creds, "{") {
			opts = append(opts, option.WithCredentialsJSON([]byte(creds)))
		} else {
			opts = append(opts, option.WithCredentialsFile(creds))
		}
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}
	return &sheetStore{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		callTimeout:   10 * time.Second,
	}, nil
}

// ReadTable fetches the full grid of a worksheet.  Every cell is normalized
// to a string; type interpretation belongs to the snapshot loader.
func (s *sheetStore) ReadTable(ctx context.Context, name string) ([][]string, error) {
	var resp *sheets.ValueRange
	err := s.withRetry(ctx, func(callCtx context.Context) error {
		var callErr error
		resp, callErr = s.svc.Spreadsheets.Values.Get(s.spreadsheetID, name).
			ValueRenderOption("UNFORMATTED_VALUE").
			Context(callCtx).Do()
		return callErr
	})
	if err != nil {
		return nil, classify(err, name)
	}
	grid := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, v := range row {
			cells = append(cells, cellString(v))
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

// AppendRow appends one row to the bottom of a worksheet.  No retry.
func (s *sheetStore) AppendRow(ctx context.Context, table string, values []string) error {
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()
	vr := &sheets.ValueRange{Values: [][]interface{}{toInterfaces(values)}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, table, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(callCtx).Do()
	if err != nil {
		return classify(err, table)
	}
	return nil
}

// UpdateCell writes a single cell addressed by 1-based row and column.  No retry.
func (s *sheetStore) UpdateCell(ctx context.Context, table string, row, col int, value string) error {
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()
	vr := &sheets.ValueRange{Values: [][]interface{}{{value}}}
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, cellRange(table, row, col), vr).
		ValueInputOption("RAW").
		Context(callCtx).Do()
	if err != nil {
		return classify(err, table)
	}
	return nil
}

// withRetry runs an idempotent call with the bounded timeout and retries it
// once when the failure looks transient.
func (s *sheetStore) withRetry(ctx context.Context, call func(context.Context) error) error {
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	err := call(callCtx)
	cancel()
	if err == nil || !transient(err) {
		return err
	}
	callCtx, cancel = context.WithTimeout(ctx, s.callTimeout)
	defer cancel()
	return call(callCtx)
}

// transient reports whether an error is worth a single retry: rate limiting,
// server-side failures, or a transport error with no HTTP status at all.
func transient(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == 429 || gerr.Code >= 500
	}
	return true
}

// classify maps raw API errors onto the store's error taxonomy.  The Sheets
// API reports an unknown worksheet as a 400 range-parse failure, which is
// the only 4xx we turn into ErrTableNotFound; auth and transport problems
// become ConnectionError.
func classify(err error, table string) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch {
		case gerr.Code == 400 && strings.Contains(gerr.Message, "Unable to parse range"):
			return fmt.Errorf("%w: %s", ErrTableNotFound, table)
		case gerr.Code == 404:
			return fmt.Errorf("%w: %s", ErrTableNotFound, table)
		}
	}
	return &ConnectionError{Err: err}
}

// cellRange builds an A1 reference like "Draft_Pool!G5" from 1-based
// coordinates.  Worksheet titles with spaces need single quotes.
func cellRange(table string, row, col int) string {
	name := table
	if strings.ContainsAny(name, " !") {
		name = "'" + strings.ReplaceAll(name, "'", "''") + "'"
	}
	return fmt.Sprintf("%s!%s%d", name, columnLetter(col), row)
}

// columnLetter converts a 1-based column number to its A1 letter form
// (1 -> A, 26 -> Z, 27 -> AA).
func columnLetter(col int) string {
	letters := ""
	for col > 0 {
		col--
		letters = string(rune('A'+col%26)) + letters
		col /= 26
	}
	return letters
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// cellString renders an API cell value as a string.  Unformatted numeric
// cells arrive as float64 and format with the fewest digits that round-trip,
// so a guess written as "12.5" reads back as "12.5".
func cellString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "TRUE"
		}
		return "FALSE"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
