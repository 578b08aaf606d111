package kol

import (
	"context"
	"fmt"

	"github.com/medfield/msl-backend/internal/domain"
)

// Update applies a partial update to a KOL. A name or specialty change is
// propagated onto the denormalized snapshots of the KOL's visits; this
// bulk write is the only path that refreshes them.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.KOL, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.KOL
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.kols.Update(txCtx, input.ID, domain.KOLUpdateParams{
			Name:        input.Name,
			Photo:       input.Photo,
			Specialty:   input.Specialty,
			Institution: input.Institution,
			Email:       input.Email,
			CRM:         input.CRM,
			Profile:     input.Profile,
			Level:       input.Level,
			Tags:        input.Tags,
		})
		if updateErr != nil {
			return fmt.Errorf("update kol: %w", updateErr)
		}

		if input.Name != nil || input.Specialty != nil {
			if err := s.visits.UpdateKOLSnapshot(txCtx, updated.ID, updated.Name, updated.Specialty); err != nil {
				return fmt.Errorf("propagate kol snapshot: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "kol updated", "kol_id", updated.ID)
	return updated, nil
}
