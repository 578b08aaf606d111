package visit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medfield/msl-backend/internal/domain"
)

// Delete removes a visit and recomputes the owning KOL so stale derived
// references are cleared.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	v, err := s.visits.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get visit: %w", err)
	}

	if err := s.visits.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete visit: %w", err)
	}

	if err := s.recalc.Recompute(ctx, v.KOLID); err != nil {
		return fmt.Errorf("recompute kol: %w", err)
	}

	s.log.InfoContext(ctx, "visit deleted", "visit_id", id, "kol_id", v.KOLID)
	return nil
}
