package audio

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/medfield/msl-backend/internal/domain"
)

// Attach registers an audio recording against a visit and starts its
// transcription in the background. The returned job is still processing;
// callers poll GetStatus for the outcome.
func (s *Service) Attach(ctx context.Context, visitID uuid.UUID, audioURL string) (*domain.Audio, error) {
	if visitID == uuid.Nil {
		return nil, domain.NewValidationError("visit_id", "required")
	}
	if strings.TrimSpace(audioURL) == "" {
		return nil, domain.NewValidationError("audio_url", "required")
	}

	if _, err := s.visits.GetByID(ctx, visitID); err != nil {
		return nil, fmt.Errorf("get visit: %w", err)
	}

	estimate := estimatedProcessingSeconds
	created, err := s.audios.Create(ctx, &domain.Audio{
		VisitID:                 visitID,
		Status:                  domain.AudioStatusProcessing,
		AudioURL:                audioURL,
		EstimatedProcessingTime: &estimate,
	})
	if err != nil {
		return nil, fmt.Errorf("create audio job: %w", err)
	}

	// The job outlives the request; detach from its cancellation.
	go s.process(context.WithoutCancel(ctx), created.ID, visitID, audioURL)

	s.log.InfoContext(ctx, "audio job started", "audio_id", created.ID, "visit_id", visitID)
	return created, nil
}

// process runs the transcription and records the outcome. Errors end in
// the failed state, never with a caller.
func (s *Service) process(ctx context.Context, audioID, visitID uuid.UUID, audioURL string) {
	result, err := s.transcriber.Transcribe(ctx, audioURL)
	if err != nil {
		s.log.ErrorContext(ctx, "transcription failed", "audio_id", audioID, "error", err)
		if markErr := s.audios.MarkFailed(ctx, audioID, err.Error(), s.clock.Now().UTC()); markErr != nil {
			s.log.ErrorContext(ctx, "failed to record transcription failure", "audio_id", audioID, "error", markErr)
		}
		return
	}

	now := s.clock.Now().UTC()
	if err := s.audios.MarkCompleted(ctx, audioID, result.Transcript, now); err != nil {
		s.log.ErrorContext(ctx, "failed to record transcript", "audio_id", audioID, "error", err)
		return
	}

	if err := s.visits.SetAudioTranscript(ctx, visitID, &result.Transcript); err != nil {
		s.log.ErrorContext(ctx, "failed to propagate transcript to visit", "visit_id", visitID, "error", err)
	}
}
