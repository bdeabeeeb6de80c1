package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/box-office-league/internal/engine"
	"github.com/iliyamo/box-office-league/internal/logger"
	"github.com/iliyamo/box-office-league/internal/snapshot"
)

func marketStore() *fakeStore {
	return &fakeStore{grids: map[string][][]string{
		snapshot.TableDraftPool: {
			{"Title", "Genre", "Release_Date", "Projected_OWBO_Million", "Current_Total_Gross", "Actual_LBS_Score", "Available"},
			{"Solar Flare", "Sci-Fi", "2026-07-03", "250", "0", "", "TRUE"},
			{"Quiet Harvest", "Drama", "2026-02-14", "80", "61.2", "4.5", "FALSE"},
		},
	}}
}

func newMarketHandler(store *fakeStore) *MarketHandler {
	loader := snapshot.NewLoader(store, nil, time.Minute, logger.NewNop())
	eng := engine.New(store, loader, nil, logger.NewNop(), 10)
	return NewMarketHandler(eng, logger.NewNop())
}

func post(t *testing.T, h echo.HandlerFunc, path, payload string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestPurchaseFilmEndpoint(t *testing.T) {
	h := newMarketHandler(marketStore())
	rec, body := post(t, h.PurchaseFilm, "/v1/market/purchase",
		`{"player":"Ava","title":"Solar Flare"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "Ava", body["buyer"])
	require.Equal(t, 25.0, body["cost_points"])
}

func TestPurchaseSoldFilmConflicts(t *testing.T) {
	h := newMarketHandler(marketStore())
	rec, body := post(t, h.PurchaseFilm, "/v1/market/purchase",
		`{"player":"Ava","title":"Quiet Harvest"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, body["error"], "not available")
}

func TestPurchaseValidationFailure(t *testing.T) {
	h := newMarketHandler(marketStore())
	rec, _ := post(t, h.PurchaseFilm, "/v1/market/purchase", `{"title":"Solar Flare"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitPredictionEndpoint(t *testing.T) {
	h := newMarketHandler(marketStore())
	rec, body := post(t, h.SubmitPrediction, "/v1/predictions",
		`{"player":"Ben","film":"Solar Flare","guess":12.5}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, 12.5, body["guess_millions"])
	require.Equal(t, "Ben", body["player"])
}

func TestSubmitNegativePredictionRejected(t *testing.T) {
	h := newMarketHandler(marketStore())
	rec, body := post(t, h.SubmitPrediction, "/v1/predictions",
		`{"player":"Ben","film":"Solar Flare","guess":-4}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, body["error"], "guess")
}
