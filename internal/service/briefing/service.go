// Package briefing builds deterministic pre-visit guidance from visit
// history and the KOL's engagement level. Despite the name there is no
// generative AI involved; everything is templated.
package briefing

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/medfield/msl-backend/internal/domain"
)

type kolRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.KOL, error)
}

type visitRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Visit, error)
	FirstScheduledInWindow(ctx context.Context, kolID uuid.UUID, from, to time.Time) (*domain.Visit, error)
	LastCompletedWithReport(ctx context.Context, kolID uuid.UUID) (*domain.Visit, error)
}

// Config tunes the briefing generator.
type Config struct {
	// LookaheadDays bounds the search window for the upcoming visit.
	LookaheadDays int
	// NotesPreviewChars caps the prior-visit notes excerpt.
	NotesPreviewChars int
}

// Service implements briefing generation.
type Service struct {
	kols   kolRepo
	visits visitRepo
	clock  clockwork.Clock
	cfg    Config
	log    *slog.Logger
}

// NewService creates a new briefing service.
func NewService(log *slog.Logger, kols kolRepo, visits visitRepo, clock clockwork.Clock, cfg Config) *Service {
	return &Service{
		kols:   kols,
		visits: visits,
		clock:  clock,
		cfg:    cfg,
		log:    log.With("service", "briefing"),
	}
}
