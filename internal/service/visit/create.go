package visit

import (
	"context"
	"errors"
	"fmt"

	"github.com/medfield/msl-backend/internal/domain"
)

// Create schedules a visit. The KOL must exist, the date must not lie
// before today (midnight granularity, time-of-day ignored), and the exact
// (kol, date, time) slot must be free of other scheduled visits. The new
// record snapshots the KOL's name/specialty and always starts scheduled.
//
// The slot check is read-then-write; the store's partial unique index is
// what actually closes the race under concurrent creates.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Visit, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	kol, err := s.kols.GetByID(ctx, input.KOLID)
	if err != nil {
		return nil, fmt.Errorf("get kol: %w", err)
	}

	today := domain.DateOf(s.clock.Now().UTC())
	if input.Date.Before(today) {
		return nil, fmt.Errorf("cannot schedule a visit in the past: %w", domain.ErrInvalidState)
	}

	blocking, err := s.visits.FindScheduledSlot(ctx, input.KOLID, input.Date, input.Time)
	switch {
	case err == nil:
		return nil, &domain.SlotConflictError{ConflictingVisitID: blocking.ID}
	case errors.Is(err, domain.ErrNotFound):
	default:
		return nil, fmt.Errorf("check scheduling slot: %w", err)
	}

	tags := input.Tags
	if tags == nil {
		tags = []domain.Tag{}
	}

	created, err := s.visits.Create(ctx, &domain.Visit{
		KOLID:        input.KOLID,
		KOLName:      kol.Name,
		KOLSpecialty: kol.Specialty,
		Date:         input.Date,
		Time:         input.Time,
		Format:       input.Format,
		RemoteLink:   input.RemoteLink,
		Agenda:       input.Agenda,
		Status:       domain.VisitStatusScheduled,
		Tags:         tags,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// Lost the race to a concurrent create; report the winner.
			if winner, slotErr := s.visits.FindScheduledSlot(ctx, input.KOLID, input.Date, input.Time); slotErr == nil {
				return nil, &domain.SlotConflictError{ConflictingVisitID: winner.ID}
			}
		}
		return nil, fmt.Errorf("create visit: %w", err)
	}

	if err := s.recalc.Recompute(ctx, input.KOLID); err != nil {
		return nil, fmt.Errorf("recompute kol: %w", err)
	}

	s.log.InfoContext(ctx, "visit created",
		"visit_id", created.ID, "kol_id", created.KOLID, "date", created.Date.String(), "time", created.Time)
	return created, nil
}
