// Command sync runs a single consistency sweep: overdue scheduled visits
// are flipped to completed, then every KOL's derived dates are recomputed.
// It is intended to be invoked by an external cron job, not as an
// in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/medfield/msl-backend/internal/adapter/postgres"
	kolrepo "github.com/medfield/msl-backend/internal/adapter/postgres/kol"
	visitrepo "github.com/medfield/msl-backend/internal/adapter/postgres/visit"
	"github.com/medfield/msl-backend/internal/app"
	"github.com/medfield/msl-backend/internal/config"
	kolsvc "github.com/medfield/msl-backend/internal/service/kol"
	syncersvc "github.com/medfield/msl-backend/internal/service/syncer"
	visitsvc "github.com/medfield/msl-backend/internal/service/visit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	clock := clockwork.NewRealClock()
	txManager := postgres.NewTxManager(pool)

	kols := kolrepo.New(pool)
	visits := visitrepo.New(pool)

	kolService := kolsvc.NewService(logger, kols, visits, txManager, clock)
	visitService := visitsvc.NewService(logger, visits, kols, kolService, clock)
	syncer := syncersvc.NewService(logger, visitService, kolService, kols)

	res, err := syncer.Sync(ctx)
	if err != nil {
		logger.Error("consistency sweep failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("consistency sweep completed",
		slog.Int("visits_updated", res.VisitsUpdated),
		slog.Int("kols_touched", res.KOLsTouched),
	)
}
