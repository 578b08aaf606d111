// Package chat implements the knowledge-base assistant. Replies are
// templated around a keyword search over documents; there is no language
// model behind it.
package chat

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/medfield/msl-backend/internal/domain"
)

// maxSources caps how many documents a reply cites.
const maxSources = 5

type documentRepo interface {
	SearchRelevant(ctx context.Context, terms []string, limit int) ([]*domain.Document, error)
}

type kolRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.KOL, error)
}

type visitRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Visit, error)
}

// Service implements the chat business logic.
type Service struct {
	documents documentRepo
	kols      kolRepo
	visits    visitRepo
	clock     clockwork.Clock
	log       *slog.Logger
}

// NewService creates a new chat service.
func NewService(log *slog.Logger, documents documentRepo, kols kolRepo, visits visitRepo, clock clockwork.Clock) *Service {
	return &Service{
		documents: documents,
		kols:      kols,
		visits:    visits,
		clock:     clock,
		log:       log.With("service", "chat"),
	}
}
