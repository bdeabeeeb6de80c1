// Package queue defines message payloads exchanged over the message broker.
package queue

// PurchaseCompletedEvent is published when a film purchase runs all of its
// steps successfully.  It contains enough information for downstream
// consumers to notify the league or feed analytics without re-reading the
// spreadsheet.
type PurchaseCompletedEvent struct {
	Buyer                  string  `json:"buyer"`
	Title                  string  `json:"title"`
	Genre                  string  `json:"genre"`
	CostPoints             float64 `json:"cost_points"`
	ProjectedGrossMillions float64 `json:"projected_gross_millions"`
	PurchasedAt            string  `json:"purchased_at"`
}

// PartialTransactionAlert is published when a multi-step write sequence
// fails after partially mutating the store, e.g. a film flagged unavailable
// with no ledger row behind it.  The league operator consumes these and
// repairs the sheet by hand; nothing retries automatically.
type PartialTransactionAlert struct {
	Op             string   `json:"op"`
	Player         string   `json:"player"`
	Film           string   `json:"film"`
	CompletedSteps []string `json:"completed_steps"`
	Error          string   `json:"error"`
	OccurredAt     string   `json:"occurred_at"`
}
