package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/medfield/msl-backend/internal/adapter/postgres"
	audiorepo "github.com/medfield/msl-backend/internal/adapter/postgres/audio"
	clientrepo "github.com/medfield/msl-backend/internal/adapter/postgres/client"
	documentrepo "github.com/medfield/msl-backend/internal/adapter/postgres/document"
	kolrepo "github.com/medfield/msl-backend/internal/adapter/postgres/kol"
	visitrepo "github.com/medfield/msl-backend/internal/adapter/postgres/visit"
	"github.com/medfield/msl-backend/internal/adapter/transcription"
	"github.com/medfield/msl-backend/internal/auth"
	"github.com/medfield/msl-backend/internal/config"
	audiosvc "github.com/medfield/msl-backend/internal/service/audio"
	authsvc "github.com/medfield/msl-backend/internal/service/auth"
	briefingsvc "github.com/medfield/msl-backend/internal/service/briefing"
	chatsvc "github.com/medfield/msl-backend/internal/service/chat"
	dashboardsvc "github.com/medfield/msl-backend/internal/service/dashboard"
	documentsvc "github.com/medfield/msl-backend/internal/service/document"
	kolsvc "github.com/medfield/msl-backend/internal/service/kol"
	syncersvc "github.com/medfield/msl-backend/internal/service/syncer"
	visitsvc "github.com/medfield/msl-backend/internal/service/visit"
)

// App wires configuration, storage, and every service into a running
// process. Transport is attached by the caller; the core is usable as-is.
type App struct {
	Cfg  *config.Config
	Log  *slog.Logger
	Pool *pgxpool.Pool

	KOLs      *kolsvc.Service
	Visits    *visitsvc.Service
	Documents *documentsvc.Service
	Audio     *audiosvc.Service
	Chat      *chatsvc.Service
	Briefings *briefingsvc.Service
	Dashboard *dashboardsvc.Service
	Auth      *authsvc.Service
	Syncer    *syncersvc.Service

	clock clockwork.Clock
}

// New loads configuration, connects to the database, and constructs the
// full service graph. The returned App owns the connection pool; call
// Close when done.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	clock := clockwork.NewRealClock()
	txManager := postgres.NewTxManager(pool)

	kols := kolrepo.New(pool)
	visits := visitrepo.New(pool)
	documents := documentrepo.New(pool)
	audios := audiorepo.New(pool)
	clients := clientrepo.New(pool)

	transcriber, err := newTranscriber(cfg.Transcription, clock)
	if err != nil {
		pool.Close()
		return nil, err
	}

	kolService := kolsvc.NewService(logger, kols, visits, txManager, clock)
	visitService := visitsvc.NewService(logger, visits, kols, kolService, clock)
	documentService := documentsvc.NewService(logger, documents)
	audioService := audiosvc.NewService(logger, audios, visits, transcriber, clock)
	chatService := chatsvc.NewService(logger, documents, kols, visits, clock)
	briefingService := briefingsvc.NewService(logger, kols, visits, clock, briefingsvc.Config{
		LookaheadDays:     cfg.Briefing.LookaheadDays,
		NotesPreviewChars: cfg.Briefing.NotesPreviewChars,
	})
	dashboardService := dashboardsvc.NewService(logger, kols, visits, clock, cfg.Dashboard.CompletedVisitsTarget)
	authService := authsvc.NewService(logger, clients,
		auth.NewJWTManager(cfg.Auth.BearerSecret, cfg.Auth.BearerIssuer))
	syncerService := syncersvc.NewService(logger, visitService, kolService, kols)

	return &App{
		Cfg:  cfg,
		Log:  logger,
		Pool: pool,

		KOLs:      kolService,
		Visits:    visitService,
		Documents: documentService,
		Audio:     audioService,
		Chat:      chatService,
		Briefings: briefingService,
		Dashboard: dashboardService,
		Auth:      authService,
		Syncer:    syncerService,

		clock: clock,
	}, nil
}

// Run blocks until ctx is cancelled, executing the consistency sweep on
// the configured interval. The first sweep runs immediately so a freshly
// started process does not serve stale visit statuses for up to an hour.
func (a *App) Run(ctx context.Context) error {
	a.Log.Info("sweep loop started", slog.Duration("interval", a.Cfg.Syncer.Interval))

	a.sweep(ctx)

	ticker := a.clock.NewTicker(a.Cfg.Syncer.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.Log.Info("shutting down")
			return nil
		case <-ticker.Chan():
			a.sweep(ctx)
		}
	}
}

// Close releases the database pool.
func (a *App) Close() {
	a.Pool.Close()
}

func (a *App) sweep(ctx context.Context) {
	res, err := a.Syncer.Sync(ctx)
	if err != nil {
		a.Log.ErrorContext(ctx, "consistency sweep failed", slog.String("error", err.Error()))
		return
	}

	a.Log.InfoContext(ctx, "consistency sweep completed",
		slog.Int("visits_updated", res.VisitsUpdated),
		slog.Int("kols_touched", res.KOLsTouched),
	)
}

func newTranscriber(cfg config.TranscriptionConfig, clock clockwork.Clock) (transcription.Transcriber, error) {
	switch strings.ToLower(cfg.Provider) {
	case "whisper":
		return transcription.NewWhisper(cfg.OpenAIAPIKey, cfg.Language), nil
	case "stub":
		return transcription.NewStub(clock, cfg.StubDelay), nil
	default:
		return nil, fmt.Errorf("unknown transcription provider %q", cfg.Provider)
	}
}
