// Package visit implements the visit lifecycle: scheduling with slot
// conflict detection, partial updates with level-change side effects,
// deletion, and the overdue-status sweep. Every mutation ends by asking
// the recalculator to re-derive the owning KOL's visit dates.
package visit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/medfield/msl-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type visitRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Visit, error)
	List(ctx context.Context, filter domain.VisitFilter) ([]*domain.Visit, int, error)
	Create(ctx context.Context, v *domain.Visit) (*domain.Visit, error)
	Update(ctx context.Context, v *domain.Visit) (*domain.Visit, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindScheduledSlot(ctx context.Context, kolID uuid.UUID, date domain.Date, timeOfDay string) (*domain.Visit, error)
	MarkOverdueCompleted(ctx context.Context, today domain.Date) (int, error)
}

type kolRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.KOL, error)
	SetLevel(ctx context.Context, id uuid.UUID, level int) error
}

// recalculator re-derives a KOL's lastVisit/nextVisit. Implemented by the
// kol service; kept narrow so the dependency points one way only.
type recalculator interface {
	Recompute(ctx context.Context, kolID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the visit lifecycle business logic.
type Service struct {
	visits visitRepo
	kols   kolRepo
	recalc recalculator
	clock  clockwork.Clock
	log    *slog.Logger
}

// NewService creates a new visit service.
func NewService(log *slog.Logger, visits visitRepo, kols kolRepo, recalc recalculator, clock clockwork.Clock) *Service {
	return &Service{
		visits: visits,
		kols:   kols,
		recalc: recalc,
		clock:  clock,
		log:    log.With("service", "visit"),
	}
}
