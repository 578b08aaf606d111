package briefing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/medfield/msl-backend/internal/domain"
)

const briefingDateLayout = "02/01/2006"

// Generate assembles the briefing for a KOL's upcoming visit.
//
// When visitID is nil the target is the earliest scheduled visit inside
// the lookahead window, end-of-day inclusive on the last day; an explicit
// visitID must name a scheduled visit of that KOL. The continuity reminder
// draws on the most recent completed visit with notes regardless of the
// window.
func (s *Service) Generate(ctx context.Context, kolID uuid.UUID, visitID *uuid.UUID) (*domain.Briefing, error) {
	if kolID == uuid.Nil {
		return nil, domain.NewValidationError("kol_id", "required")
	}

	kol, err := s.kols.GetByID(ctx, kolID)
	if err != nil {
		return nil, fmt.Errorf("get kol: %w", err)
	}

	target, err := s.resolveTargetVisit(ctx, kolID, visitID)
	if err != nil {
		return nil, err
	}

	lastVisit, err := s.visits.LastCompletedWithReport(ctx, kolID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find last completed visit: %w", err)
	}

	briefing := &domain.Briefing{
		KOLID:              kol.ID.String(),
		ContinuityReminder: continuityReminder(kol, lastVisit, target, s.cfg.NotesPreviewChars),
		ContentSuggestion:  contentSuggestion(target),
		LevelAlert:         levelAlert(kol.Level),
		GeneratedAt:        s.clock.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}

	s.log.InfoContext(ctx, "briefing generated", "kol_id", kolID, "visit_id", target.ID)
	return briefing, nil
}

func (s *Service) resolveTargetVisit(ctx context.Context, kolID uuid.UUID, visitID *uuid.UUID) (*domain.Visit, error) {
	if visitID != nil {
		v, err := s.visits.GetByID(ctx, *visitID)
		if err != nil {
			return nil, fmt.Errorf("get visit: %w", err)
		}
		if v.KOLID != kolID || v.Status != domain.VisitStatusScheduled {
			return nil, fmt.Errorf("no scheduled visit %s for this kol: %w", *visitID, domain.ErrNotFound)
		}
		return v, nil
	}

	now := s.clock.Now().UTC()
	windowEnd := domain.DateOf(now).AddDays(s.cfg.LookaheadDays).EndOfDay()

	v, err := s.visits.FirstScheduledInWindow(ctx, kolID, now, windowEnd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("no visit scheduled in the next %d days: %w", s.cfg.LookaheadDays, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("find upcoming visit: %w", err)
	}
	return v, nil
}

func continuityReminder(kol *domain.KOL, lastVisit, target *domain.Visit, previewChars int) string {
	if lastVisit == nil {
		return fmt.Sprintf(
			"First visit with this KOL. Introduce yourself and build an initial relationship focused on %s.",
			joinTags(target.Tags))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "On the last visit (%s), %s showed interest in %s. ",
		lastVisit.Date.Format(briefingDateLayout), kol.FirstName(), joinTags(lastVisit.Tags))
	if lastVisit.Notes != nil && *lastVisit.Notes != "" {
		preview := *lastVisit.Notes
		// Truncate on runes; a byte slice could split a multibyte character.
		if runes := []rune(preview); len(runes) > previewChars {
			preview = string(runes[:previewChars])
		}
		fmt.Fprintf(&b, "%s... Retake this point.", preview)
	}
	return b.String()
}

func contentSuggestion(target *domain.Visit) string {
	suggestion := fmt.Sprintf(
		"For the defined topic %q, use the relevant documents available in the knowledge base.",
		joinTags(target.Tags))
	if target.Agenda != "" {
		suggestion += fmt.Sprintf(" Focus on the agenda: %s", target.Agenda)
	}
	return suggestion
}

func levelAlert(level int) *string {
	var msg string
	switch {
	case level < 3:
		msg = fmt.Sprintf("This KOL is at level %d. The suggested goal is to grow engagement through relevant information.", level)
	case level < 5:
		msg = fmt.Sprintf("This KOL is at level %d. Consider strategies to strengthen the relationship and pursue practical commitments.", level)
	default:
		msg = fmt.Sprintf("This KOL is at level %d. Maintain the strategic relationship and explore partnership opportunities.", level)
	}
	return &msg
}

func joinTags(tags []domain.Tag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
