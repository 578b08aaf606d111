package audio

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/medfield/msl-backend/internal/domain"
)

const isoTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// GetStatus returns the polling view of a transcription job.
func (s *Service) GetStatus(ctx context.Context, visitID, audioID uuid.UUID) (*domain.AudioStatusView, error) {
	if visitID == uuid.Nil || audioID == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	a, err := s.audios.GetByVisitAndID(ctx, visitID, audioID)
	if err != nil {
		return nil, fmt.Errorf("get audio job: %w", err)
	}
	return toStatusView(a), nil
}

func toStatusView(a *domain.Audio) *domain.AudioStatusView {
	view := &domain.AudioStatusView{
		ID:             a.ID.String(),
		VisitID:        a.VisitID.String(),
		Status:         a.Status,
		Progress:       a.Progress,
		CreatedAt:      a.CreatedAt.UTC().Format(isoTimestampLayout),
		Transcript:     a.Transcript,
		AudioURL:       a.AudioURL,
		Duration:       a.Duration,
		ProcessedAt:    formatTimePtr(a.ProcessedAt),
		Error:          a.Error,
		FailedAt:       formatTimePtr(a.FailedAt),
		ManuallyEdited: a.ManuallyEdited,
	}
	// The estimate only means anything while the job is running.
	if a.Status == domain.AudioStatusProcessing {
		view.EstimatedTimeRemaining = a.EstimatedProcessingTime
	}
	return view
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(isoTimestampLayout)
	return &formatted
}
