package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/box-office-league/internal/config"
	"github.com/iliyamo/box-office-league/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/box-office-league/internal/middleware" // import middleware for identity and rate limiting
)

// RegisterRoutes registers the health check on the provided Echo instance.
// This endpoint can be used by load balancers or monitoring systems to
// verify that the service is up and running.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterStandings registers the read-only league views under /v1.  These
// routes serve cached snapshots and require no identity: anyone in the
// league can browse the standings, the film gallery, the draft pool and the
// prediction log.
func RegisterStandings(e *echo.Echo, s *handler.StandingsHandler) {
	// Full ranked standings table plus the season leader
	e.GET("/v1/standings", s.GetStandings)
	// One player's film portfolio sorted by current gross
	e.GET("/v1/players/:name/films", s.GetPlayerFilms)
	// Every owned film in the league (the gallery view)
	e.GET("/v1/films", s.GetFilms)
	// The draft pool with availability and computed cost in points
	e.GET("/v1/pool", s.GetPool)
	// The append-only prediction log
	e.GET("/v1/predictions", s.GetPredictions)
}

// RegisterMarket registers the two mutating routes.  Identity stays
// self-reported (trusted small group), but the claimed player name feeds the
// rate-limiter key, and every write is a live spreadsheet call so the
// token-bucket limiter guards both routes.
func RegisterMarket(e *echo.Echo, m *handler.MarketHandler, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	g := e.Group("/v1")
	g.Use(middleware.PlayerIdentity())
	g.Use(middleware.NewTokenBucket(rlCfg, rdb))
	// Buy a film out of the draft pool
	g.POST("/market/purchase", m.PurchaseFilm)
	// Log an opening-weekend box office prediction
	g.POST("/predictions", m.SubmitPrediction)
}
