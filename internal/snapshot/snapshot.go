// Package snapshot fetches point-in-time copies of the league's worksheets
// and caches them for a bounded time to stay inside the spreadsheet API
// quota.  A Snapshot is immutable once built: aggregation and rendering work
// entirely from it and never touch the store again.
package snapshot

import "time"

// Well-known worksheet names.  The spreadsheet is the source of truth for
// the schema; these constants only name the tables this service reads.
const (
	TablePlayers        = "Players"
	TableDraftPool      = "Draft_Pool"
	TablePurchasedFilms = "Purchased_Films"
	TablePredictions    = "OWBO_Predictions"
)

// Row is one data row keyed by header column name.  Cells keep their raw
// string form; numeric interpretation goes through Coerce.
type Row map[string]string

// Table is an ordered sequence of rows plus the header they were keyed by.
// Row order matches the worksheet top to bottom, which matters: standings
// tie-breaks and cell addressing both rely on it.
type Table struct {
	Header []string `json:"header"`
	Rows   []Row    `json:"rows"`
}

// Snapshot maps table name to its contents for one aggregation/render cycle.
type Snapshot struct {
	Tables  map[string]Table `json:"tables"`
	TakenAt time.Time        `json:"taken_at"`
}

// Table returns the named table, or an empty one when the snapshot does not
// contain it.  Callers that must distinguish "missing" from "empty" check
// the Load error instead.
func (s *Snapshot) Table(name string) Table {
	if s == nil {
		return Table{}
	}
	return s.Tables[name]
}

// FromGrid converts a raw worksheet grid (header row first) into a Table.
// Short rows pad with empty cells; cells beyond the header are dropped, the
// same shape gspread's get_all_records produces.
func FromGrid(grid [][]string) Table {
	if len(grid) == 0 {
		return Table{}
	}
	header := grid[0]
	rows := make([]Row, 0, len(grid)-1)
	for _, line := range grid[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(line) {
				row[col] = line[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return Table{Header: header, Rows: rows}
}
