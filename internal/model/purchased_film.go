package model

import "github.com/iliyamo/box-office-league/internal/snapshot"

// PurchasedFilm is one row of the Purchased_Films ledger: a film bound to the
// player who bought it.  Rows are created only by the purchase transaction
// and are never deleted; the external scoring bot updates gross and score in
// place as the season progresses.
//
// Fields:
//
//	Title                   – film title, copied from the Draft_Pool entry.
//	Owner                   – name of the purchasing player (soft reference
//	                          into Players; the sheet enforces nothing).
//	Genre                   – display genre.
//	ReleaseDate             – theatrical release date.
//	ProjectedGrossMillions  – the OWBO estimate at purchase time.
//	CurrentGrossMillions    – latest gross, maintained by the scoring bot.
//	LBSScore                – raw quality-score cell; may be blank pre-release.
type PurchasedFilm struct {
	Title                  string  `json:"title"`                    // Purchased_Films.Title
	Owner                  string  `json:"owner"`                    // Purchased_Films.Owner
	Genre                  string  `json:"genre"`                    // Purchased_Films.Genre
	ReleaseDate            string  `json:"release_date"`             // Purchased_Films.Release_Date
	ProjectedGrossMillions float64 `json:"projected_gross_millions"` // Purchased_Films.Projected_OWBO_Million
	CurrentGrossMillions   float64 `json:"current_gross_millions"`   // Purchased_Films.Current_Total_Gross
	LBSScore               string  `json:"lbs_score"`                // Purchased_Films.Actual_LBS_Score (raw cell)
}

// ColOwner is the ledger's owner column; the remaining ledger columns share
// their names with Draft_Pool.
const ColOwner = "Owner"

// PurchasedFilmFromRow decodes a raw Purchased_Films row.
func PurchasedFilmFromRow(r snapshot.Row) PurchasedFilm {
	return PurchasedFilm{
		Title:                  r[ColTitle],
		Owner:                  r[ColOwner],
		Genre:                  r[ColGenre],
		ReleaseDate:            r[ColReleaseDate],
		ProjectedGrossMillions: snapshot.Coerce(r[ColProjected]),
		CurrentGrossMillions:   snapshot.Coerce(r[ColCurrent]),
		LBSScore:               r[ColLBSScore],
	}
}

// PurchasedFilmsFromTable decodes every row of the ledger in source order.
func PurchasedFilmsFromTable(t snapshot.Table) []PurchasedFilm {
	films := make([]PurchasedFilm, 0, len(t.Rows))
	for _, r := range t.Rows {
		films = append(films, PurchasedFilmFromRow(r))
	}
	return films
}
