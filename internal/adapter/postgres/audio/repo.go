// Package audio implements the transcription-job repository using
// PostgreSQL. Jobs are always addressed through their visit so a caller
// cannot read another visit's job by guessing ids.
package audio

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/medfield/msl-backend/internal/adapter/postgres"
	"github.com/medfield/msl-backend/internal/domain"
)

// Repo provides transcription-job persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audio repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const audioColumns = `id, visit_id, status, audio_url, transcript, duration, progress,
       error, estimated_processing_time, manually_edited,
       created_at, updated_at, processed_at, failed_at`

const getByVisitAndIDSQL = `
SELECT ` + audioColumns + `
FROM audios
WHERE id = $1 AND visit_id = $2`

const insertSQL = `
INSERT INTO audios (visit_id, status, audio_url, duration, progress, estimated_processing_time)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + audioColumns

const markCompletedSQL = `
UPDATE audios
SET status = 'completed', transcript = $2, progress = 100,
    processed_at = $3, updated_at = $3
WHERE id = $1`

const markFailedSQL = `
UPDATE audios
SET status = 'failed', error = $2, failed_at = $3, updated_at = $3
WHERE id = $1`

const setTranscriptSQL = `
UPDATE audios
SET transcript = $3, manually_edited = true, updated_at = now()
WHERE id = $1 AND visit_id = $2
RETURNING ` + audioColumns

const deleteSQL = `DELETE FROM audios WHERE id = $1 AND visit_id = $2`

// GetByVisitAndID returns a transcription job scoped to its visit.
// Returns domain.ErrNotFound when either part of the key misses.
func (r *Repo) GetByVisitAndID(ctx context.Context, visitID, id uuid.UUID) (*domain.Audio, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getByVisitAndIDSQL, id, visitID)
	a, err := scanAudio(row)
	if err != nil {
		return nil, postgres.MapError(err, "audio", id)
	}
	return a, nil
}

// Create inserts a new transcription job and returns the persisted record.
// Returns domain.ErrNotFound if the referenced visit does not exist.
func (r *Repo) Create(ctx context.Context, a *domain.Audio) (*domain.Audio, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, insertSQL,
		a.VisitID, string(a.Status), a.AudioURL, a.Duration, a.Progress,
		a.EstimatedProcessingTime,
	)
	created, err := scanAudio(row)
	if err != nil {
		return nil, postgres.MapError(err, "audio", uuid.Nil)
	}
	return created, nil
}

// MarkCompleted finishes a job with its transcript at the given instant.
func (r *Repo) MarkCompleted(ctx context.Context, id uuid.UUID, transcript string, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, markCompletedSQL, id, transcript, at); err != nil {
		return postgres.MapError(err, "audio", id)
	}
	return nil
}

// MarkFailed records a job failure at the given instant.
func (r *Repo) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, markFailedSQL, id, errMsg, at); err != nil {
		return postgres.MapError(err, "audio", id)
	}
	return nil
}

// SetTranscript overwrites a job's transcript with a manual edit and
// returns the updated record.
func (r *Repo) SetTranscript(ctx context.Context, visitID, id uuid.UUID, transcript string) (*domain.Audio, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, setTranscriptSQL, id, visitID, transcript)
	a, err := scanAudio(row)
	if err != nil {
		return nil, postgres.MapError(err, "audio", id)
	}
	return a, nil
}

// Delete removes a job. Returns domain.ErrNotFound if absent.
func (r *Repo) Delete(ctx context.Context, visitID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id, visitID)
	if err != nil {
		return postgres.MapError(err, "audio", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("audio %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanAudio(row pgx.Row) (*domain.Audio, error) {
	var (
		a      domain.Audio
		status string
	)
	err := row.Scan(
		&a.ID, &a.VisitID, &status, &a.AudioURL, &a.Transcript, &a.Duration,
		&a.Progress, &a.Error, &a.EstimatedProcessingTime, &a.ManuallyEdited,
		&a.CreatedAt, &a.UpdatedAt, &a.ProcessedAt, &a.FailedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Status = domain.AudioStatus(status)
	return &a, nil
}
