package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/box-office-league/internal/config"
	"github.com/iliyamo/box-office-league/internal/engine"
	"github.com/iliyamo/box-office-league/internal/handler"
	"github.com/iliyamo/box-office-league/internal/logger"
	"github.com/iliyamo/box-office-league/internal/queue"
	"github.com/iliyamo/box-office-league/internal/router"
	queue_publisher "github.com/iliyamo/box-office-league/internal/service"
	"github.com/iliyamo/box-office-league/internal/sheet"
	"github.com/iliyamo/box-office-league/internal/snapshot"
)

func main() {
	_ = godotenv.Load() // best effort; real deployments set the environment directly

	cfg := config.Load()
	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zlog.Sync()

	// The spreadsheet client is built once here and injected everywhere;
	// business logic never resolves credentials on its own.
	store, err := sheet.New(context.Background(), cfg.SpreadsheetID, cfg.GoogleCreds)
	if err != nil {
		zlog.Fatal("sheets client init failed", "error", err)
	}

	// Redis may be absent; the loader falls back to in-process memoization
	// and the rate limiter disables itself.
	rdb := config.NewRedisClient()
	if rdb == nil {
		zlog.Warn("redis unavailable; snapshot cache is in-process and rate limiting is off")
	}

	loader := snapshot.NewLoader(store, rdb, cfg.SnapshotTTL, zlog)
	eng := engine.New(store, loader, queue_publisher.EventPublisher{}, zlog, cfg.PointsPerMillion)

	// Drain partial-transaction alerts into the operator log in the
	// background.  The consumer reconnects on its own; a broker outage
	// never takes the API down.
	go func() {
		if err := queue.StartPartialTransactionConsumer(); err != nil {
			zlog.Error("partial transaction consumer stopped", "error", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e)
	router.RegisterStandings(e, handler.NewStandingsHandler(loader, zlog, cfg.PointsPerMillion))
	router.RegisterMarket(e, handler.NewMarketHandler(eng, zlog), config.LoadRateLimitConfig(), rdb)

	addr := ":" + cfg.Port
	zlog.Info("listening", "addr", addr, "env", cfg.Env, "snapshot_ttl", cfg.SnapshotTTL)

	if err := e.Start(addr); err != nil {
		zlog.Fatal("server stopped", "error", err)
	}
}
