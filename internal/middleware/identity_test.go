package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestPlayerIdentityFromHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/market/purchase", nil)
	req.Header.Set("X-Player", "  Ava ")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got string
	h := PlayerIdentity()(func(c echo.Context) error {
		got = currentPlayer(c)
		return nil
	})
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Ava" {
		t.Fatalf("currentPlayer = %q, want Ava", got)
	}
}

func TestCurrentPlayerDefaultsToAnon(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/predictions", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	if got := currentPlayer(c); got != "anon" {
		t.Fatalf("currentPlayer without header = %q, want anon", got)
	}
}
