package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/box-office-league/internal/league"
	"github.com/iliyamo/box-office-league/internal/logger"
	"github.com/iliyamo/box-office-league/internal/model"
	"github.com/iliyamo/box-office-league/internal/sheet"
	"github.com/iliyamo/box-office-league/internal/snapshot"
)

// StandingsHandler serves the read-only league views.  All of them work from
// cached snapshots; the aggregation itself is pure, so a handler is just
// load + derive + encode.  Read-path failures degrade into a user-visible
// message at this boundary and never crash the page.
type StandingsHandler struct {
	Loader           *snapshot.Loader
	Log              *logger.Logger
	PointsPerMillion float64
}

// NewStandingsHandler constructs a StandingsHandler.  Loader and Log must be
// non-nil.
func NewStandingsHandler(loader *snapshot.Loader, log *logger.Logger, pointsPerMillion float64) *StandingsHandler {
	if loader == nil || log == nil {
		panic("nil dependency passed to NewStandingsHandler")
	}
	if pointsPerMillion <= 0 {
		pointsPerMillion = 10
	}
	return &StandingsHandler{Loader: loader, Log: log, PointsPerMillion: pointsPerMillion}
}

// rankedPlayer decorates a player with their standings position.
type rankedPlayer struct {
	Rank int `json:"rank"`
	model.Player
}

// filmView decorates a purchased film with its display score: the LBS score
// mapped onto [0,1], or a pending flag when the cell is blank, malformed or
// out of range.
type filmView struct {
	model.PurchasedFilm
	ScoreFraction float64 `json:"score_fraction"`
	ScorePending  bool    `json:"score_pending"`
}

func newFilmView(f model.PurchasedFilm) filmView {
	frac, ok := league.ScoreFraction(f.LBSScore)
	return filmView{PurchasedFilm: f, ScoreFraction: frac, ScorePending: !ok}
}

// GetStandings handles GET /v1/standings.  It returns the full ranked table
// plus the season leader; an empty roster is reported explicitly instead of
// faulting on the first row.
func (h *StandingsHandler) GetStandings(c echo.Context) error {
	ctx := c.Request().Context()
	snap, err := h.Loader.Load(ctx, snapshot.Cached, snapshot.TablePlayers)
	if err != nil {
		return h.degraded(c, err)
	}
	players := model.PlayersFromTable(snap.Table(snapshot.TablePlayers))
	ranked := league.Rank(players)
	table := make([]rankedPlayer, 0, len(ranked))
	for i, p := range ranked {
		table = append(table, rankedPlayer{Rank: i + 1, Player: p})
	}

	resp := echo.Map{"standings": table, "taken_at": snap.TakenAt}
	if leader, err := league.Leader(players); err == nil {
		resp["leader"] = leader
	} else {
		resp["leader"] = nil
		resp["message"] = league.ErrNoLeader.Error()
	}
	return c.JSON(http.StatusOK, resp)
}

// GetPlayerFilms handles GET /v1/players/:name/films: the named player's
// portfolio sorted by current gross.  An unknown or film-less player gets an
// empty list; the sheet has no referential integrity to tell the two apart.
func (h *StandingsHandler) GetPlayerFilms(c echo.Context) error {
	owner := c.Param("name")
	if owner == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "player name is required"})
	}
	ctx := c.Request().Context()
	snap, err := h.Loader.Load(ctx, snapshot.Cached, snapshot.TablePurchasedFilms)
	if err != nil {
		return h.degraded(c, err)
	}
	films := model.PurchasedFilmsFromTable(snap.Table(snapshot.TablePurchasedFilms))
	roster := league.Roster(films, owner)
	views := make([]filmView, 0, len(roster))
	for _, f := range roster {
		views = append(views, newFilmView(f))
	}
	return c.JSON(http.StatusOK, echo.Map{"owner": owner, "films": views})
}

// GetFilms handles GET /v1/films: every owned film in the league, current
// gross descending.  This is the film gallery view.
func (h *StandingsHandler) GetFilms(c echo.Context) error {
	ctx := c.Request().Context()
	snap, err := h.Loader.Load(ctx, snapshot.Cached, snapshot.TablePurchasedFilms)
	if err != nil {
		return h.degraded(c, err)
	}
	films := model.PurchasedFilmsFromTable(snap.Table(snapshot.TablePurchasedFilms))
	owned := league.OwnedFilms(films)
	views := make([]filmView, 0, len(owned))
	for _, f := range owned {
		views = append(views, newFilmView(f))
	}
	return c.JSON(http.StatusOK, echo.Map{"films": views})
}

// poolEntry decorates a draft pool film with its cost in draft points under
// the league's fixed conversion rate, so the shell can warn a buyer before
// they commit.
type poolEntry struct {
	model.DraftFilm
	CostPoints float64 `json:"cost_points"`
}

// GetPool handles GET /v1/pool: the draft pool with availability flags and
// computed purchase costs.
func (h *StandingsHandler) GetPool(c echo.Context) error {
	ctx := c.Request().Context()
	snap, err := h.Loader.Load(ctx, snapshot.Cached, snapshot.TableDraftPool)
	if err != nil {
		return h.degraded(c, err)
	}
	films := model.DraftFilmsFromTable(snap.Table(snapshot.TableDraftPool))
	entries := make([]poolEntry, 0, len(films))
	for _, f := range films {
		entries = append(entries, poolEntry{
			DraftFilm:  f,
			CostPoints: f.ProjectedGrossMillions / h.PointsPerMillion,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"pool": entries})
}

// GetPredictions handles GET /v1/predictions: the append-only prediction
// log, newest rows last (sheet order).
func (h *StandingsHandler) GetPredictions(c echo.Context) error {
	ctx := c.Request().Context()
	snap, err := h.Loader.Load(ctx, snapshot.Cached, snapshot.TablePredictions)
	if err != nil {
		return h.degraded(c, err)
	}
	preds := model.PredictionsFromTable(snap.Table(snapshot.TablePredictions))
	return c.JSON(http.StatusOK, echo.Map{"predictions": preds})
}

// degraded converts read-path errors into a user-visible degraded state.
// The dashboard never crashes on an unreachable store or missing table; it
// reports what happened and lets the caller retry.
func (h *StandingsHandler) degraded(c echo.Context, err error) error {
	var connErr *sheet.ConnectionError
	if errors.As(err, &connErr) {
		h.Log.Warn("read path degraded: store unreachable", "error", err)
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"error":   "store_unreachable",
			"message": "the league spreadsheet is unreachable; standings will be back shortly",
		})
	}
	if errors.Is(err, sheet.ErrTableNotFound) {
		h.Log.Error("read path degraded: missing table", "error", err)
		return c.JSON(http.StatusBadGateway, echo.Map{
			"error":   "table_missing",
			"message": err.Error(),
		})
	}
	h.Log.Error("read path failed", "error", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
