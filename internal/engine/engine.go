package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iliyamo/box-office-league/internal/logger"
	"github.com/iliyamo/box-office-league/internal/model"
	"github.com/iliyamo/box-office-league/internal/queue"
	"github.com/iliyamo/box-office-league/internal/sheet"
	"github.com/iliyamo/box-office-league/internal/snapshot"
)

// Step names recorded in the completion cursor of a purchase.  Lookup and
// pricing are read-only; only the steps from StepFlipAvailability onward
// mutate the store.
const (
	StepLookupFilm       = "lookup_film"
	StepFlipAvailability = "flip_availability"
	StepAppendLedger     = "append_ledger_row"
	StepInvalidateCache  = "invalidate_cache"
)

// Publisher is the operator event sink.  Implementations must never block a
// transaction on broker trouble: errors are for logging only.
type Publisher interface {
	PublishPurchaseCompleted(ctx context.Context, event queue.PurchaseCompletedEvent) error
	PublishPartialTransaction(ctx context.Context, alert queue.PartialTransactionAlert) error
}

// Engine executes purchases and prediction submissions as ordered sequences
// of independent spreadsheet writes.  All collaborators are injected at
// startup; nothing here resolves credentials or clients ambiently.
type Engine struct {
	store            sheet.Store
	loader           *snapshot.Loader
	pub              Publisher
	log              *logger.Logger
	pointsPerMillion float64
}

// New builds an Engine.  pointsPerMillion is the fixed pricing rule: cost in
// draft points = projected gross millions ÷ pointsPerMillion.
func New(store sheet.Store, loader *snapshot.Loader, pub Publisher, log *logger.Logger, pointsPerMillion float64) *Engine {
	if pointsPerMillion <= 0 {
		pointsPerMillion = 10
	}
	return &Engine{
		store:            store,
		loader:           loader,
		pub:              pub,
		log:              log,
		pointsPerMillion: pointsPerMillion,
	}
}

// PredictionReceipt acknowledges a stored prediction with the exact values
// that were written.
type PredictionReceipt struct {
	Player        string  `json:"player"`
	Film          string  `json:"film"`
	GuessMillions float64 `json:"guess_millions"`
	SubmittedAt   string  `json:"submitted_at"`
	Message       string  `json:"message"`
}

// PurchaseReceipt acknowledges a completed purchase.
type PurchaseReceipt struct {
	Buyer                  string  `json:"buyer"`
	Title                  string  `json:"title"`
	CostPoints             float64 `json:"cost_points"`
	ProjectedGrossMillions float64 `json:"projected_gross_millions"`
	Message                string  `json:"message"`
}

// SubmitPrediction validates the guess and appends one row to the
// OWBO_Predictions sheet.  The scoring columns stay blank for the scoring
// bot to fill.  A single append has no partial state: it either lands or it
// fails with a *WriteError carrying the cause.
func (e *Engine) SubmitPrediction(ctx context.Context, player, film string, guess float64, at time.Time) (*PredictionReceipt, error) {
	player = strings.TrimSpace(player)
	film = strings.TrimSpace(film)
	if player == "" {
		return nil, &ValidationError{Field: "player", Reason: "must not be blank"}
	}
	if film == "" {
		return nil, &ValidationError{Field: "film", Reason: "must not be blank"}
	}
	if guess < 0 {
		return nil, &ValidationError{Field: "guess", Reason: "must not be negative"}
	}

	submittedAt := at.UTC().Format(time.RFC3339)
	row := []string{
		player,
		film,
		formatMillions(guess),
		submittedAt,
		"", // Actual_OWBO_Million, filled by the scoring bot
		"", // Points_Awarded, filled by the scoring bot
	}
	if err := e.store.AppendRow(ctx, snapshot.TablePredictions, row); err != nil {
		return nil, &WriteError{Step: "append_prediction", Err: err}
	}
	e.loader.Invalidate(ctx, snapshot.TablePredictions)
	e.log.Info("prediction stored",
		"player", player, "film", film, "guess_millions", guess)
	return &PredictionReceipt{
		Player:        player,
		Film:          film,
		GuessMillions: guess,
		SubmittedAt:   submittedAt,
		Message:       fmt.Sprintf("%s predicted $%sM for %q", player, formatMillions(guess), film),
	}, nil
}

// PurchaseFilm runs the purchase sequence: fresh Draft_Pool lookup, pricing,
// availability flip, ledger append, cache invalidation.  The steps are
// independent remote calls with no rollback; a failure after the flip
// surfaces as a *PartialTransactionError carrying the completion cursor, and
// is additionally logged and published so an operator can repair the
// stranded film by hand.
func (e *Engine) PurchaseFilm(ctx context.Context, buyer, title string) (*PurchaseReceipt, error) {
	buyer = strings.TrimSpace(buyer)
	title = strings.TrimSpace(title)
	if buyer == "" {
		return nil, &ValidationError{Field: "player", Reason: "must not be blank"}
	}
	if title == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be blank"}
	}

	// Step 1: look the film up on a fresh read, never a cached snapshot.
	// The row index for the flip must come from this same lookup, or a
	// concurrent edit could leave us updating somebody else's row.
	grid, err := e.store.ReadTable(ctx, snapshot.TableDraftPool)
	if err != nil {
		return nil, err
	}
	pool := snapshot.FromGrid(grid)
	availCol := columnIndex(pool.Header, model.ColAvailable)
	if availCol < 0 {
		return nil, fmt.Errorf("%s sheet has no %s column", snapshot.TableDraftPool, model.ColAvailable)
	}
	rowIdx := -1
	var film model.DraftFilm
	for i, r := range pool.Rows {
		if strings.EqualFold(strings.TrimSpace(r[model.ColTitle]), title) {
			rowIdx = i
			film = model.DraftFilmFromRow(r)
			break
		}
	}
	if rowIdx < 0 || !film.Available {
		return nil, &NotAvailableError{Title: title}
	}

	// Step 2: price it.  Fixed conversion rule, no negotiation.
	cost := film.ProjectedGrossMillions / e.pointsPerMillion

	// Step 3: flip the availability flag.  First mutating step; a failure
	// here leaves the store untouched and is a plain WriteError.
	if err := e.store.UpdateCell(ctx, snapshot.TableDraftPool,
		sheet.HeaderOffset(rowIdx), availCol+1, "FALSE"); err != nil {
		return nil, &WriteError{Step: StepFlipAvailability, Err: err}
	}
	completed := []string{StepFlipAvailability}

	// Step 4: append the ledger row.  If this fails the film is stranded:
	// unavailable with no owner.  Report, alert, never retry.
	ledgerRow := []string{
		film.Title,
		buyer,
		film.Genre,
		film.ReleaseDate,
		formatMillions(film.ProjectedGrossMillions),
		formatMillions(film.CurrentGrossMillions),
		film.LBSScore,
	}
	if err := e.store.AppendRow(ctx, snapshot.TablePurchasedFilms, ledgerRow); err != nil {
		partial := &PartialTransactionError{
			Op:        "purchase_film",
			Completed: completed,
			Err:       err,
		}
		e.log.Error("purchase left store inconsistent",
			"buyer", buyer, "title", film.Title, "completed", completed, "error", err)
		e.publishPartial(ctx, buyer, film.Title, partial)
		return nil, partial
	}
	completed = append(completed, StepAppendLedger)

	// Step 5: drop cached snapshots so the next standings read sees the
	// purchase.  Budget deduction is deliberately absent: the league's
	// reconciliation bot owns the Players sheet.
	e.loader.Invalidate(ctx,
		snapshot.TableDraftPool, snapshot.TablePurchasedFilms, snapshot.TablePlayers)

	e.log.Info("film purchased",
		"buyer", buyer, "title", film.Title, "cost_points", cost)
	if e.pub != nil {
		event := queue.PurchaseCompletedEvent{
			Buyer:                  buyer,
			Title:                  film.Title,
			Genre:                  film.Genre,
			CostPoints:             cost,
			ProjectedGrossMillions: film.ProjectedGrossMillions,
			PurchasedAt:            time.Now().UTC().Format(time.RFC3339),
		}
		if err := e.pub.PublishPurchaseCompleted(ctx, event); err != nil {
			e.log.Warn("purchase event publish failed", "title", film.Title, "error", err)
		}
	}
	return &PurchaseReceipt{
		Buyer:                  buyer,
		Title:                  film.Title,
		CostPoints:             cost,
		ProjectedGrossMillions: film.ProjectedGrossMillions,
		Message: fmt.Sprintf("%s bought %q for %s points",
			buyer, film.Title, formatMillions(cost)),
	}, nil
}

func (e *Engine) publishPartial(ctx context.Context, player, film string, partial *PartialTransactionError) {
	if e.pub == nil {
		return
	}
	alert := queue.PartialTransactionAlert{
		Op:             partial.Op,
		Player:         player,
		Film:           film,
		CompletedSteps: partial.Completed,
		Error:          partial.Err.Error(),
		OccurredAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := e.pub.PublishPartialTransaction(ctx, alert); err != nil {
		e.log.Error("partial transaction alert publish failed",
			"player", player, "film", film, "error", err)
	}
}

// formatMillions renders a monetary value with the fewest digits that
// round-trip, so "12.5" stays "12.5" through the sheet and back.
func formatMillions(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func columnIndex(header []string, name string) int {
	for i, col := range header {
		if col == name {
			return i
		}
	}
	return -1
}
