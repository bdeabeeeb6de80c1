package model

import "github.com/iliyamo/box-office-league/internal/snapshot"

// Prediction is one row of the OWBO_Predictions sheet: a player's guess at a
// film's opening-weekend box office.  Rows are append-only; the scoring bot
// fills the remaining columns (accuracy, awarded points) later.
//
// Fields:
//
//	Player        – self-reported player name.
//	Film          – title of the film being predicted.
//	GuessMillions – predicted gross in millions; never negative.
//	SubmittedAt   – RFC3339 submission timestamp.
type Prediction struct {
	Player        string  `json:"player"`         // OWBO_Predictions.Player_Name
	Film          string  `json:"film"`           // OWBO_Predictions.Title
	GuessMillions float64 `json:"guess_millions"` // OWBO_Predictions.Predicted_OWBO_Million
	SubmittedAt   string  `json:"submitted_at"`   // OWBO_Predictions.Submitted_At
}

// OWBO_Predictions sheet column names.
const (
	ColPredictedOWBO = "Predicted_OWBO_Million"
	ColSubmittedAt   = "Submitted_At"
)

// PredictionFromRow decodes a raw OWBO_Predictions row.
func PredictionFromRow(r snapshot.Row) Prediction {
	return Prediction{
		Player:        r[ColPlayerName],
		Film:          r[ColTitle],
		GuessMillions: snapshot.Coerce(r[ColPredictedOWBO]),
		SubmittedAt:   r[ColSubmittedAt],
	}
}

// PredictionsFromTable decodes every row of the predictions sheet in source order.
func PredictionsFromTable(t snapshot.Table) []Prediction {
	preds := make([]Prediction, 0, len(t.Rows))
	for _, r := range t.Rows {
		preds = append(preds, PredictionFromRow(r))
	}
	return preds
}
