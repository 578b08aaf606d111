// Package syncer implements the periodic consistency sweep: overdue
// visit statuses first, then a full re-derivation pass over every KOL.
package syncer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

type visitSyncer interface {
	SyncStatus(ctx context.Context) (int, error)
}

type recalculator interface {
	Recompute(ctx context.Context, kolID uuid.UUID) error
}

type kolRepo interface {
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}

// Result reports what a sweep touched. Briefings is always zero; they are
// generated on demand, never by the sweep.
type Result struct {
	VisitsUpdated int `json:"visits"`
	KOLsTouched   int `json:"kols"`
	Briefings     int `json:"briefings"`
}

// Service implements the consistency sweep.
type Service struct {
	visits visitSyncer
	recalc recalculator
	kols   kolRepo
	log    *slog.Logger
}

// NewService creates a new syncer service.
func NewService(log *slog.Logger, visits visitSyncer, recalc recalculator, kols kolRepo) *Service {
	return &Service{
		visits: visits,
		recalc: recalc,
		kols:   kols,
		log:    log.With("service", "syncer"),
	}
}

// Sync flips overdue scheduled visits to completed, then recomputes the
// derived fields of every KOL sequentially to bound store load. Intended
// for periodic or on-demand invocation, not per request.
func (s *Service) Sync(ctx context.Context) (Result, error) {
	visitsUpdated, err := s.visits.SyncStatus(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("sync visit statuses: %w", err)
	}

	ids, err := s.kols.ListIDs(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list kol ids: %w", err)
	}

	touched := 0
	for _, id := range ids {
		if err := s.recalc.Recompute(ctx, id); err != nil {
			return Result{}, fmt.Errorf("recompute kol %s: %w", id, err)
		}
		touched++
	}

	result := Result{VisitsUpdated: visitsUpdated, KOLsTouched: touched}
	s.log.InfoContext(ctx, "sync completed", "visits_updated", result.VisitsUpdated, "kols_touched", result.KOLsTouched)
	return result, nil
}
