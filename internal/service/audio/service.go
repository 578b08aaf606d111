// Package audio implements transcription jobs for visit recordings. A
// job runs detached from the request that started it: failures flip the
// job to failed and are never raised to any caller.
package audio

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/medfield/msl-backend/internal/adapter/transcription"
	"github.com/medfield/msl-backend/internal/domain"
)

// estimatedProcessingSeconds is the fixed estimate reported while a job
// is processing.
const estimatedProcessingSeconds = 60

type audioRepo interface {
	GetByVisitAndID(ctx context.Context, visitID, id uuid.UUID) (*domain.Audio, error)
	Create(ctx context.Context, a *domain.Audio) (*domain.Audio, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, transcript string, at time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string, at time.Time) error
	SetTranscript(ctx context.Context, visitID, id uuid.UUID, transcript string) (*domain.Audio, error)
	Delete(ctx context.Context, visitID, id uuid.UUID) error
}

type visitRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Visit, error)
	SetAudioTranscript(ctx context.Context, id uuid.UUID, transcript *string) error
}

type transcriber interface {
	Transcribe(ctx context.Context, audioURL string) (transcription.Result, error)
}

// Service implements the transcription-job business logic.
type Service struct {
	audios      audioRepo
	visits      visitRepo
	transcriber transcriber
	clock       clockwork.Clock
	log         *slog.Logger
}

// NewService creates a new audio service.
func NewService(log *slog.Logger, audios audioRepo, visits visitRepo, transcriber transcriber, clock clockwork.Clock) *Service {
	return &Service{
		audios:      audios,
		visits:      visits,
		transcriber: transcriber,
		clock:       clock,
		log:         log.With("service", "audio"),
	}
}
