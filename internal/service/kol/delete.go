package kol

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medfield/msl-backend/internal/domain"
)

// DeleteResult reports the outcome of a cascading KOL deletion.
type DeleteResult struct {
	DeletedVisits int
}

// Delete removes a KOL and all of its visits. Returns how many visits
// went with it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (DeleteResult, error) {
	if id == uuid.Nil {
		return DeleteResult{}, domain.NewValidationError("id", "required")
	}

	var result DeleteResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.kols.GetByID(txCtx, id); err != nil {
			return fmt.Errorf("get kol: %w", err)
		}

		deleted, err := s.visits.DeleteByKOL(txCtx, id)
		if err != nil {
			return fmt.Errorf("delete kol visits: %w", err)
		}
		result.DeletedVisits = deleted

		if err := s.kols.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete kol: %w", err)
		}
		return nil
	})
	if err != nil {
		return DeleteResult{}, err
	}

	s.log.InfoContext(ctx, "kol deleted", "kol_id", id, "deleted_visits", result.DeletedVisits)
	return result, nil
}
