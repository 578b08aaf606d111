package kol

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/medfield/msl-backend/internal/domain"
)

// Recompute re-derives a KOL's lastVisit/nextVisit from its visit set and
// persists both unconditionally. A missing KOL is a silent no-op: the
// caller may be cleaning up after a deletion and the reference can
// legitimately be gone already.
//
// Recompute-from-scratch keeps the derived fields correct by construction;
// every visit mutation path must call it afterwards.
func (s *Service) Recompute(ctx context.Context, kolID uuid.UUID) error {
	if _, err := s.kols.GetByID(ctx, kolID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("get kol: %w", err)
	}

	var lastVisit *domain.Date
	last, err := s.visits.LastCompletedWithReport(ctx, kolID)
	switch {
	case err == nil:
		d := last.Date
		lastVisit = &d
	case errors.Is(err, domain.ErrNotFound):
	default:
		return fmt.Errorf("find last completed visit: %w", err)
	}

	var nextVisit *domain.Date
	next, err := s.visits.NextScheduled(ctx, kolID, s.clock.Now().UTC())
	switch {
	case err == nil:
		d := next.Date
		nextVisit = &d
	case errors.Is(err, domain.ErrNotFound):
	default:
		return fmt.Errorf("find next scheduled visit: %w", err)
	}

	if err := s.kols.UpdateDerived(ctx, kolID, lastVisit, nextVisit); err != nil {
		return fmt.Errorf("update derived fields: %w", err)
	}
	return nil
}
