package visit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medfield/msl-backend/internal/domain"
)

// Get returns a visit by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Visit, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	v, err := s.visits.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get visit: %w", err)
	}
	return v, nil
}

// List returns visits matching the filter plus pagination metadata.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Visit, domain.ListMeta, error) {
	if err := input.Validate(); err != nil {
		return nil, domain.ListMeta{}, err
	}

	visits, total, err := s.visits.List(ctx, input.Filter)
	if err != nil {
		return nil, domain.ListMeta{}, fmt.Errorf("list visits: %w", err)
	}

	meta := domain.ListMeta{Total: total, Offset: input.Filter.Offset}
	if input.Filter.Limit > 0 {
		limit := input.Filter.Limit
		meta.Limit = &limit
	}
	return visits, meta, nil
}
