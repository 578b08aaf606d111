package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/medfield/msl-backend/internal/domain"
)

const trendLabel = "vs. previous period"

// MetricsInput bounds the reporting and comparison periods. All fields are
// optional: the reporting period defaults to the current calendar month,
// and the comparison period to the immediately preceding window of equal
// length in days.
type MetricsInput struct {
	Start           *domain.Date
	End             *domain.Date
	ComparisonStart *domain.Date
	ComparisonEnd   *domain.Date
}

// GetMetrics assembles the dashboard snapshot.
//
// The KOL totals and mean level are all-time figures; only
// completedVisitsMonth is bounded by the reporting period. Their trend
// baselines therefore use a created-before-cutoff count at
// comparisonStart rather than a windowed count, while
// completedVisitsMonth compares against the comparison date window. The
// asymmetry is intentional and materially changes results.
func (s *Service) GetMetrics(ctx context.Context, input MetricsInput) (*domain.Metrics, error) {
	now := s.clock.Now().UTC()

	start, end := s.reportingPeriod(input, now)
	compStart, compEnd := comparisonPeriod(input, start, end)

	totalKOLs, err := s.kols.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count kols: %w", err)
	}

	scheduledVisits, err := s.visits.CountScheduled(ctx)
	if err != nil {
		return nil, fmt.Errorf("count scheduled visits: %w", err)
	}

	completedVisits, err := s.visits.CountCompletedWithReportBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("count completed visits: %w", err)
	}

	avgLevel, err := s.kols.AvgLevel(ctx)
	if err != nil {
		return nil, fmt.Errorf("avg level: %w", err)
	}

	histogram, err := s.kols.LevelHistogram(ctx)
	if err != nil {
		return nil, fmt.Errorf("level histogram: %w", err)
	}
	distribution := make(map[int]int, domain.MaxLevel+1)
	for level := domain.MinLevel; level <= domain.MaxLevel; level++ {
		distribution[level] = histogram[level]
	}

	trends := &domain.MetricsTrends{}

	prevTotalKOLs, err := s.kols.CountCreatedBefore(ctx, compStart)
	if err != nil {
		return nil, fmt.Errorf("count previous kols: %w", err)
	}
	trends.TotalKOLs = trend(float64(totalKOLs), float64(prevTotalKOLs))

	prevScheduled, err := s.visits.CountScheduledCreatedBefore(ctx, compStart)
	if err != nil {
		return nil, fmt.Errorf("count previous scheduled visits: %w", err)
	}
	trends.ScheduledVisits = trend(float64(scheduledVisits), float64(prevScheduled))

	prevCompleted, err := s.visits.CountCompletedWithReportBetween(ctx, compStart, compEnd)
	if err != nil {
		return nil, fmt.Errorf("count previous completed visits: %w", err)
	}
	trends.CompletedVisitsMonth = trend(float64(completedVisits), float64(prevCompleted))

	prevAvgLevel, err := s.kols.AvgLevelCreatedBefore(ctx, compStart)
	if err != nil {
		return nil, fmt.Errorf("previous avg level: %w", err)
	}
	trends.AvgEngagementLevel = trend(avgLevel, prevAvgLevel)

	if trends.IsEmpty() {
		trends = nil
	}

	return &domain.Metrics{
		TotalKOLs:            totalKOLs,
		ScheduledVisits:      scheduledVisits,
		CompletedVisitsMonth: completedVisits,
		AvgEngagementLevel:   round2(avgLevel),
		LevelDistribution:    distribution,
		Trends:               trends,
		Targets:              domain.MetricsTargets{CompletedVisitsMonth: s.target},
	}, nil
}

// reportingPeriod resolves [start, end] with current-calendar-month
// defaults. The end bound always stretches to end of day.
func (s *Service) reportingPeriod(input MetricsInput, now time.Time) (time.Time, time.Time) {
	var start time.Time
	if input.Start != nil {
		start = input.Start.Time()
	} else {
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}

	var end time.Time
	if input.End != nil {
		end = input.End.EndOfDay()
	} else {
		// Day zero of the next month is the last day of this one.
		end = domain.DateOf(time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.UTC)).EndOfDay()
	}

	return start, end
}

// comparisonPeriod resolves the comparison window: explicit bounds when
// both are given, otherwise the preceding period of equal length in days
// ending the day before start.
func comparisonPeriod(input MetricsInput, start, end time.Time) (time.Time, time.Time) {
	if input.ComparisonStart != nil && input.ComparisonEnd != nil {
		return input.ComparisonStart.Time(), input.ComparisonEnd.EndOfDay()
	}

	periodDays := int(math.Ceil(end.Sub(start).Hours() / 24))
	compEnd := domain.DateOf(start).AddDays(-1).EndOfDay()
	compStart := domain.DateOf(compEnd).AddDays(-periodDays).Time()
	return compStart, compEnd
}

// trend returns the period-over-period percentage change rounded to two
// decimals, or nil when the baseline is zero.
func trend(current, previous float64) *domain.Trend {
	if previous == 0 {
		return nil
	}
	return &domain.Trend{
		Value: round2((current - previous) / previous * 100),
		Label: trendLabel,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
