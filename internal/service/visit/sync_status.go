package visit

import (
	"context"
	"fmt"

	"github.com/medfield/msl-backend/internal/domain"
)

// SyncStatus flips every scheduled visit dated strictly before today to
// completed and returns the count of records changed. No notes are set,
// and no recompute runs here: the sweeper follows up with a full per-KOL
// re-derivation pass.
func (s *Service) SyncStatus(ctx context.Context) (int, error) {
	today := domain.DateOf(s.clock.Now().UTC())

	updated, err := s.visits.MarkOverdueCompleted(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("mark overdue visits: %w", err)
	}

	if updated > 0 {
		s.log.InfoContext(ctx, "overdue visits completed", "count", updated)
	}
	return updated, nil
}
