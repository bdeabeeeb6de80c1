package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/box-office-league/internal/engine"
	"github.com/iliyamo/box-office-league/internal/logger"
	"github.com/iliyamo/box-office-league/internal/sheet"
)

// MarketHandler accepts the two player-initiated mutations.  Identity is the
// self-reported player field of the request body: the deployment is a
// trusted small group and the claimed name is logged on every write so abuse
// is at least auditable.  Write failures surface to the initiating player
// immediately; the partial-transaction class additionally reaches the
// operator through the engine's alert queue.
type MarketHandler struct {
	Engine *engine.Engine
	Log    *logger.Logger
}

// NewMarketHandler constructs a MarketHandler.  Both dependencies must be
// non-nil.
func NewMarketHandler(eng *engine.Engine, log *logger.Logger) *MarketHandler {
	if eng == nil || log == nil {
		panic("nil dependency passed to NewMarketHandler")
	}
	return &MarketHandler{Engine: eng, Log: log}
}

// PurchaseFilm handles POST /v1/market/purchase.  The request body carries
// the buying player and the film title; on success the response echoes the
// purchase receipt with the computed cost.
func (h *MarketHandler) PurchaseFilm(c echo.Context) error {
	var body struct {
		Player string `json:"player"`
		Title  string `json:"title"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	h.Log.Info("purchase requested", "player", body.Player, "title", body.Title)

	receipt, err := h.Engine.PurchaseFilm(c.Request().Context(), body.Player, body.Title)
	if err != nil {
		return h.writeFailure(c, err)
	}
	return c.JSON(http.StatusCreated, receipt)
}

// SubmitPrediction handles POST /v1/predictions.  The guess is the player's
// predicted opening-weekend gross in millions; it must be non-negative.
func (h *MarketHandler) SubmitPrediction(c echo.Context) error {
	var body struct {
		Player string  `json:"player"`
		Film   string  `json:"film"`
		Guess  float64 `json:"guess"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	h.Log.Info("prediction requested", "player", body.Player, "film", body.Film, "guess", body.Guess)

	receipt, err := h.Engine.SubmitPrediction(c.Request().Context(), body.Player, body.Film, body.Guess, time.Now())
	if err != nil {
		return h.writeFailure(c, err)
	}
	return c.JSON(http.StatusCreated, receipt)
}

// writeFailure maps engine errors onto HTTP outcomes.  The distinctions
// matter to the shell: validation and availability problems are the player's
// to fix, a write error is safe to retry after a fresh look, and a partial
// transaction must not be retried at all.
func (h *MarketHandler) writeFailure(c echo.Context, err error) error {
	var (
		valErr     *engine.ValidationError
		availErr   *engine.NotAvailableError
		writeErr   *engine.WriteError
		partialErr *engine.PartialTransactionError
		connErr    *sheet.ConnectionError
	)
	switch {
	case errors.As(err, &valErr):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": valErr.Error()})
	case errors.As(err, &availErr):
		return c.JSON(http.StatusConflict, echo.Map{"error": availErr.Error()})
	case errors.As(err, &partialErr):
		// The store is now inconsistent.  Tell the player plainly and do
		// not invite a retry; the operator alert has already gone out.
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":           "transaction incomplete",
			"message":         "the purchase partially failed; the league operator has been alerted — do not retry",
			"completed_steps": partialErr.Completed,
		})
	case errors.As(err, &writeErr):
		return c.JSON(http.StatusBadGateway, echo.Map{"error": writeErr.Error()})
	case errors.As(err, &connErr):
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"error":   "store_unreachable",
			"message": "the league spreadsheet is unreachable; nothing was written",
		})
	case errors.Is(err, sheet.ErrTableNotFound):
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	default:
		h.Log.Error("write path failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
