package visit

import (
	"context"
	"errors"
	"fmt"

	"github.com/medfield/msl-backend/internal/domain"
)

// Update applies a shallow merge of the provided fields onto a visit.
// A transition into completed triggers a recompute (it may establish a new
// lastVisit); a provided levelChange writes its target value as the KOL's
// level. A final recompute always runs so reschedules reflect in nextVisit.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Visit, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.visits.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get visit: %w", err)
	}

	wasCompleted := current.Status == domain.VisitStatusCompleted

	merge(current, input)

	updated, err := s.visits.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("update visit: %w", err)
	}

	if !wasCompleted && updated.Status == domain.VisitStatusCompleted {
		if err := s.recalc.Recompute(ctx, updated.KOLID); err != nil {
			return nil, fmt.Errorf("recompute kol: %w", err)
		}
	}

	if input.LevelChange != nil {
		// Missing KOL is tolerated here, mirroring the lenient recompute path.
		if err := s.kols.SetLevel(ctx, updated.KOLID, input.LevelChange.To); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("apply level change: %w", err)
		}
	}

	if err := s.recalc.Recompute(ctx, updated.KOLID); err != nil {
		return nil, fmt.Errorf("recompute kol: %w", err)
	}

	s.log.InfoContext(ctx, "visit updated", "visit_id", updated.ID, "status", updated.Status)
	return updated, nil
}

func merge(v *domain.Visit, input UpdateInput) {
	if input.Date != nil {
		v.Date = *input.Date
	}
	if input.Time != nil {
		v.Time = *input.Time
	}
	if input.Format != nil {
		v.Format = *input.Format
	}
	if input.RemoteLink != nil {
		v.RemoteLink = input.RemoteLink
	}
	if input.Agenda != nil {
		v.Agenda = *input.Agenda
	}
	if input.Status != nil {
		v.Status = *input.Status
	}
	if input.Notes != nil {
		v.Notes = input.Notes
	}
	if input.Tags != nil {
		v.Tags = input.Tags
	}
	if input.LevelChange != nil {
		v.LevelChange = input.LevelChange
	}
}
