package kol

import (
	"context"
	"fmt"
	"strings"

	"github.com/medfield/msl-backend/internal/domain"
)

// Create registers a new KOL.
// Returns domain.ErrConflict if the email is already registered.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.KOL, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tags := input.Tags
	if tags == nil {
		tags = []domain.Tag{}
	}

	created, err := s.kols.Create(ctx, &domain.KOL{
		Name:        strings.TrimSpace(input.Name),
		Photo:       input.Photo,
		Specialty:   strings.TrimSpace(input.Specialty),
		Institution: strings.TrimSpace(input.Institution),
		Email:       strings.TrimSpace(input.Email),
		CRM:         input.CRM,
		Profile:     input.Profile,
		Level:       input.Level,
		Tags:        tags,
	})
	if err != nil {
		return nil, fmt.Errorf("create kol: %w", err)
	}

	s.log.InfoContext(ctx, "kol created", "kol_id", created.ID, "level", created.Level)
	return created, nil
}
