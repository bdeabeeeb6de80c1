package model

import (
	"strings"

	"github.com/iliyamo/box-office-league/internal/snapshot"
)

// DraftFilm is a catalog entry in the Draft_Pool sheet: a film that can be
// bought (or has already been bought) this season.  The availability flag is
// the authoritative source of "can this be purchased" and is flipped to
// unavailable exactly once, by the purchase transaction.
//
// Fields:
//
//	Title                   – film title, unique per season.
//	Genre                   – display genre.
//	ReleaseDate             – theatrical release date (free-form sheet text).
//	ProjectedGrossMillions  – the OWBO estimate used to price the film.
//	CurrentGrossMillions    – latest gross, maintained by the scoring bot.
//	LBSScore                – quality rating in [0,5], assigned after release.
//	Available               – whether the film is still purchasable.
type DraftFilm struct {
	Title                  string  `json:"title"`                    // Draft_Pool.Title
	Genre                  string  `json:"genre"`                    // Draft_Pool.Genre
	ReleaseDate            string  `json:"release_date"`             // Draft_Pool.Release_Date
	ProjectedGrossMillions float64 `json:"projected_gross_millions"` // Draft_Pool.Projected_OWBO_Million
	CurrentGrossMillions   float64 `json:"current_gross_millions"`   // Draft_Pool.Current_Total_Gross
	LBSScore               string  `json:"lbs_score"`                // Draft_Pool.Actual_LBS_Score (raw cell)
	Available              bool    `json:"available"`                // Draft_Pool.Available
}

// Draft_Pool sheet column names.
const (
	ColTitle       = "Title"
	ColGenre       = "Genre"
	ColReleaseDate = "Release_Date"
	ColProjected   = "Projected_OWBO_Million"
	ColCurrent     = "Current_Total_Gross"
	ColLBSScore    = "Actual_LBS_Score"
	ColAvailable   = "Available"
)

// DraftFilmFromRow decodes a raw Draft_Pool row.  The LBS score keeps its raw
// cell value: the display layer decides between a numeric badge and a
// "pending" state, and a lossy early conversion would erase that distinction.
func DraftFilmFromRow(r snapshot.Row) DraftFilm {
	return DraftFilm{
		Title:                  r[ColTitle],
		Genre:                  r[ColGenre],
		ReleaseDate:            r[ColReleaseDate],
		ProjectedGrossMillions: snapshot.Coerce(r[ColProjected]),
		CurrentGrossMillions:   snapshot.Coerce(r[ColCurrent]),
		LBSScore:               r[ColLBSScore],
		Available:              AvailableFlag(r[ColAvailable]),
	}
}

// DraftFilmsFromTable decodes every row of the Draft_Pool table in source order.
func DraftFilmsFromTable(t snapshot.Table) []DraftFilm {
	films := make([]DraftFilm, 0, len(t.Rows))
	for _, r := range t.Rows {
		films = append(films, DraftFilmFromRow(r))
	}
	return films
}

// AvailableFlag interprets the availability cell.  The sheet historically
// holds a checkbox (TRUE/FALSE) but hand-edited rows have carried
// "available"/"yes" too; anything unrecognized counts as unavailable so a
// mangled cell can never make a film purchasable.
func AvailableFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "available", "yes", "1":
		return true
	}
	return false
}
