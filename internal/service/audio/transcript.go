package audio

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/medfield/msl-backend/internal/domain"
)

// UpdateTranscript overwrites a job's transcript with a manual edit and
// propagates the new text onto the owning visit. The propagation is
// one-way; editing the visit never writes back to the job.
func (s *Service) UpdateTranscript(ctx context.Context, visitID, audioID uuid.UUID, transcript string) (*domain.Audio, error) {
	if visitID == uuid.Nil || audioID == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	if strings.TrimSpace(transcript) == "" {
		return nil, domain.NewValidationError("transcript", "required")
	}

	updated, err := s.audios.SetTranscript(ctx, visitID, audioID, transcript)
	if err != nil {
		return nil, fmt.Errorf("update transcript: %w", err)
	}

	if err := s.visits.SetAudioTranscript(ctx, visitID, &transcript); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("propagate transcript to visit: %w", err)
	}

	s.log.InfoContext(ctx, "transcript manually edited", "audio_id", audioID, "visit_id", visitID)
	return updated, nil
}

// Delete removes a transcription job and clears the transcript from the
// owning visit.
func (s *Service) Delete(ctx context.Context, visitID, audioID uuid.UUID) error {
	if visitID == uuid.Nil || audioID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.audios.Delete(ctx, visitID, audioID); err != nil {
		return fmt.Errorf("delete audio job: %w", err)
	}

	if err := s.visits.SetAudioTranscript(ctx, visitID, nil); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("clear visit transcript: %w", err)
	}

	s.log.InfoContext(ctx, "audio job deleted", "audio_id", audioID, "visit_id", visitID)
	return nil
}
