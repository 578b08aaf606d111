package kol

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medfield/msl-backend/internal/domain"
)

// Get returns a KOL by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.KOL, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	k, err := s.kols.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get kol: %w", err)
	}
	return k, nil
}

// List returns KOLs matching the filter plus pagination metadata.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.KOL, domain.ListMeta, error) {
	if err := input.Validate(); err != nil {
		return nil, domain.ListMeta{}, err
	}

	kols, total, err := s.kols.List(ctx, input.Filter)
	if err != nil {
		return nil, domain.ListMeta{}, fmt.Errorf("list kols: %w", err)
	}

	meta := domain.ListMeta{Total: total, Offset: input.Filter.Offset}
	if input.Filter.Limit > 0 {
		limit := input.Filter.Limit
		meta.Limit = &limit
	}
	return kols, meta, nil
}
