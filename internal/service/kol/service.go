// Package kol implements KOL management and the derived-state
// recalculation every visit mutation path depends on.
package kol

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/medfield/msl-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type kolRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.KOL, error)
	List(ctx context.Context, filter domain.KOLFilter) ([]*domain.KOL, int, error)
	Create(ctx context.Context, k *domain.KOL) (*domain.KOL, error)
	Update(ctx context.Context, id uuid.UUID, params domain.KOLUpdateParams) (*domain.KOL, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateDerived(ctx context.Context, id uuid.UUID, lastVisit, nextVisit *domain.Date) error
}

type visitRepo interface {
	LastCompletedWithReport(ctx context.Context, kolID uuid.UUID) (*domain.Visit, error)
	NextScheduled(ctx context.Context, kolID uuid.UUID, from time.Time) (*domain.Visit, error)
	DeleteByKOL(ctx context.Context, kolID uuid.UUID) (int, error)
	UpdateKOLSnapshot(ctx context.Context, kolID uuid.UUID, name, specialty string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the KOL business logic.
type Service struct {
	kols   kolRepo
	visits visitRepo
	tx     txManager
	clock  clockwork.Clock
	log    *slog.Logger
}

// NewService creates a new KOL service.
func NewService(log *slog.Logger, kols kolRepo, visits visitRepo, tx txManager, clock clockwork.Clock) *Service {
	return &Service{
		kols:   kols,
		visits: visits,
		tx:     tx,
		clock:  clock,
		log:    log.With("service", "kol"),
	}
}
