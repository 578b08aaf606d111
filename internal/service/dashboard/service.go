// Package dashboard aggregates the metrics snapshot: totals, mean
// engagement level, level histogram, and period-over-period trends.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
)

type kolRepo interface {
	Count(ctx context.Context) (int, error)
	CountCreatedBefore(ctx context.Context, cutoff time.Time) (int, error)
	AvgLevel(ctx context.Context) (float64, error)
	AvgLevelCreatedBefore(ctx context.Context, cutoff time.Time) (float64, error)
	LevelHistogram(ctx context.Context) (map[int]int, error)
}

type visitRepo interface {
	CountScheduled(ctx context.Context) (int, error)
	CountScheduledCreatedBefore(ctx context.Context, cutoff time.Time) (int, error)
	CountCompletedWithReportBetween(ctx context.Context, start, end time.Time) (int, error)
}

// Service implements the dashboard metrics aggregation.
type Service struct {
	kols   kolRepo
	visits visitRepo
	clock  clockwork.Clock
	target int
	log    *slog.Logger
}

// NewService creates a new dashboard service. target is the monthly
// completed-visits goal reported alongside actuals.
func NewService(log *slog.Logger, kols kolRepo, visits visitRepo, clock clockwork.Clock, target int) *Service {
	return &Service{
		kols:   kols,
		visits: visits,
		clock:  clock,
		target: target,
		log:    log.With("service", "dashboard"),
	}
}
