// Package visit implements the visit repository using PostgreSQL.
// Besides plain CRUD it carries the slot-lookup and window queries the
// visit and briefing services depend on, and the bulk statements used
// when KOL records change underneath their visits.
package visit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/medfield/msl-backend/internal/adapter/postgres"
	"github.com/medfield/msl-backend/internal/domain"
)

// Repo provides visit persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new visit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const visitColumns = `id, kol_id, kol_name, kol_specialty, date, visit_time, format,
       remote_link, agenda, status, notes, audio_transcript, tags, level_change,
       created_at, updated_at`

const getByIDSQL = `
SELECT ` + visitColumns + `
FROM visits
WHERE id = $1`

const insertSQL = `
INSERT INTO visits (kol_id, kol_name, kol_specialty, date, visit_time, format,
                    remote_link, agenda, status, notes, tags, level_change)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + visitColumns

const updateSQL = `
UPDATE visits
SET date = $2, visit_time = $3, format = $4, remote_link = $5, agenda = $6,
    status = $7, notes = $8, tags = $9, level_change = $10, updated_at = now()
WHERE id = $1
RETURNING ` + visitColumns

const deleteSQL = `DELETE FROM visits WHERE id = $1`

const deleteByKOLSQL = `DELETE FROM visits WHERE kol_id = $1`

const findScheduledSlotSQL = `
SELECT ` + visitColumns + `
FROM visits
WHERE kol_id = $1 AND date = $2 AND visit_time = $3 AND status = 'scheduled'
LIMIT 1`

const lastCompletedWithReportSQL = `
SELECT ` + visitColumns + `
FROM visits
WHERE kol_id = $1 AND status = 'completed' AND notes IS NOT NULL AND notes <> ''
ORDER BY date DESC, visit_time DESC
LIMIT 1`

const nextScheduledSQL = `
SELECT ` + visitColumns + `
FROM visits
WHERE kol_id = $1 AND status = 'scheduled' AND date >= $2
ORDER BY date ASC, visit_time ASC
LIMIT 1`

const firstScheduledInWindowSQL = `
SELECT ` + visitColumns + `
FROM visits
WHERE kol_id = $1 AND status = 'scheduled' AND date >= $2 AND date <= $3
ORDER BY date ASC, visit_time ASC
LIMIT 1`

const markOverdueCompletedSQL = `
UPDATE visits
SET status = 'completed', updated_at = now()
WHERE status = 'scheduled' AND date < $1`

const updateKOLSnapshotSQL = `
UPDATE visits
SET kol_name = $2, kol_specialty = $3, updated_at = now()
WHERE kol_id = $1`

const setAudioTranscriptSQL = `
UPDATE visits
SET audio_transcript = $2, updated_at = now()
WHERE id = $1`

const countScheduledSQL = `SELECT count(*) FROM visits WHERE status = 'scheduled'`

const countScheduledCreatedBeforeSQL = `
SELECT count(*) FROM visits WHERE status = 'scheduled' AND created_at < $1`

const countCompletedWithReportBetweenSQL = `
SELECT count(*)
FROM visits
WHERE status = 'completed' AND notes IS NOT NULL AND notes <> ''
  AND date >= $1 AND date <= $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a visit by primary key.
// Returns domain.ErrNotFound if the visit does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Visit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getByIDSQL, id)
	v, err := scanVisit(row)
	if err != nil {
		return nil, postgres.MapError(err, "visit", id)
	}
	return v, nil
}

// List returns visits matching the filter, newest first, plus the total
// match count ignoring limit/offset.
func (r *Repo) List(ctx context.Context, filter domain.VisitFilter) ([]*domain.Visit, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := filterPredicates(filter)

	builder := sq.Select("id", "kol_id", "kol_name", "kol_specialty", "date", "visit_time",
		"format", "remote_link", "agenda", "status", "notes", "audio_transcript",
		"tags", "level_change", "created_at", "updated_at").
		From("visits").
		Where(where).
		OrderBy("date DESC", "visit_time DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	} else if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build visit list query: %w", err)
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list visits: %w", err)
	}
	defer rows.Close()

	visits, err := scanVisits(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list visits: %w", err)
	}

	countSQL, countArgs, err := sq.Select("count(*)").From("visits").Where(where).
		PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build visit count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count visits: %w", err)
	}

	return visits, total, nil
}

// FindScheduledSlot returns the scheduled visit occupying the given
// KOL/date/time slot, or domain.ErrNotFound when the slot is free.
func (r *Repo) FindScheduledSlot(ctx context.Context, kolID uuid.UUID, date domain.Date, timeOfDay string) (*domain.Visit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, findScheduledSlotSQL, kolID, date.Time(), timeOfDay)
	v, err := scanVisit(row)
	if err != nil {
		return nil, postgres.MapError(err, "visit", uuid.Nil)
	}
	return v, nil
}

// LastCompletedWithReport returns the most recent completed visit that has
// non-empty notes, or domain.ErrNotFound.
func (r *Repo) LastCompletedWithReport(ctx context.Context, kolID uuid.UUID) (*domain.Visit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, lastCompletedWithReportSQL, kolID)
	v, err := scanVisit(row)
	if err != nil {
		return nil, postgres.MapError(err, "visit", uuid.Nil)
	}
	return v, nil
}

// NextScheduled returns the earliest scheduled visit on or after the given
// instant, or domain.ErrNotFound. The date column holds midnight dates, so
// passing the current instant excludes today once the day has started.
func (r *Repo) NextScheduled(ctx context.Context, kolID uuid.UUID, from time.Time) (*domain.Visit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, nextScheduledSQL, kolID, from)
	v, err := scanVisit(row)
	if err != nil {
		return nil, postgres.MapError(err, "visit", uuid.Nil)
	}
	return v, nil
}

// FirstScheduledInWindow returns the earliest scheduled visit inside the
// [from, to] window, or domain.ErrNotFound.
func (r *Repo) FirstScheduledInWindow(ctx context.Context, kolID uuid.UUID, from, to time.Time) (*domain.Visit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, firstScheduledInWindowSQL, kolID, from, to)
	v, err := scanVisit(row)
	if err != nil {
		return nil, postgres.MapError(err, "visit", uuid.Nil)
	}
	return v, nil
}

// CountScheduled returns the number of currently scheduled visits.
func (r *Repo) CountScheduled(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, countScheduledSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count scheduled visits: %w", err)
	}
	return n, nil
}

// CountScheduledCreatedBefore returns the number of scheduled visits whose
// records were created before the cutoff.
func (r *Repo) CountScheduledCreatedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, countScheduledCreatedBeforeSQL, cutoff).Scan(&n); err != nil {
		return 0, fmt.Errorf("count scheduled visits before: %w", err)
	}
	return n, nil
}

// CountCompletedWithReportBetween returns the number of completed visits
// with notes whose date falls in [start, end].
func (r *Repo) CountCompletedWithReportBetween(ctx context.Context, start, end time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, countCompletedWithReportBetweenSQL, start, end).Scan(&n); err != nil {
		return 0, fmt.Errorf("count completed visits: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new visit and returns the persisted record.
// Returns domain.ErrConflict if the scheduled slot is already taken and
// domain.ErrNotFound if the referenced KOL does not exist.
func (r *Repo) Create(ctx context.Context, v *domain.Visit) (*domain.Visit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	lc, err := levelChangeJSON(v.LevelChange)
	if err != nil {
		return nil, err
	}

	row := q.QueryRow(ctx, insertSQL,
		v.KOLID, v.KOLName, v.KOLSpecialty, v.Date.Time(), v.Time, string(v.Format),
		v.RemoteLink, v.Agenda, string(v.Status), v.Notes, tagsToStrings(v.Tags), lc,
	)
	created, err := scanVisit(row)
	if err != nil {
		return nil, postgres.MapError(err, "visit", uuid.Nil)
	}
	return created, nil
}

// Update rewrites the mutable fields of a visit and returns the updated
// record. The caller supplies the fully merged visit.
func (r *Repo) Update(ctx context.Context, v *domain.Visit) (*domain.Visit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	lc, err := levelChangeJSON(v.LevelChange)
	if err != nil {
		return nil, err
	}

	row := q.QueryRow(ctx, updateSQL,
		v.ID, v.Date.Time(), v.Time, string(v.Format), v.RemoteLink, v.Agenda,
		string(v.Status), v.Notes, tagsToStrings(v.Tags), lc,
	)
	updated, err := scanVisit(row)
	if err != nil {
		return nil, postgres.MapError(err, "visit", v.ID)
	}
	return updated, nil
}

// Delete removes a visit. Returns domain.ErrNotFound if absent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "visit", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("visit %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByKOL removes every visit of a KOL and returns how many were
// deleted.
func (r *Repo) DeleteByKOL(ctx context.Context, kolID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteByKOLSQL, kolID)
	if err != nil {
		return 0, postgres.MapError(err, "visit", uuid.Nil)
	}
	return int(tag.RowsAffected()), nil
}

// MarkOverdueCompleted flips scheduled visits dated strictly before today
// to completed and returns how many changed.
func (r *Repo) MarkOverdueCompleted(ctx context.Context, today domain.Date) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, markOverdueCompletedSQL, today.Time())
	if err != nil {
		return 0, fmt.Errorf("mark overdue visits completed: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// UpdateKOLSnapshot rewrites the denormalized KOL name/specialty on all
// visits of a KOL.
func (r *Repo) UpdateKOLSnapshot(ctx context.Context, kolID uuid.UUID, name, specialty string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, updateKOLSnapshotSQL, kolID, name, specialty); err != nil {
		return fmt.Errorf("update visit kol snapshot: %w", err)
	}
	return nil
}

// SetAudioTranscript writes (or clears, on nil) the transcript attached to
// a visit.
func (r *Repo) SetAudioTranscript(ctx context.Context, id uuid.UUID, transcript *string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setAudioTranscriptSQL, id, transcript)
	if err != nil {
		return postgres.MapError(err, "visit", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("visit %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func filterPredicates(filter domain.VisitFilter) sq.And {
	where := sq.And{}
	if filter.Status != nil {
		where = append(where, sq.Eq{"status": string(*filter.Status)})
	}
	if filter.KOLID != nil {
		where = append(where, sq.Eq{"kol_id": *filter.KOLID})
	}
	if filter.DateStart != nil {
		where = append(where, sq.GtOrEq{"date": filter.DateStart.Time()})
	}
	if filter.DateEnd != nil {
		where = append(where, sq.LtOrEq{"date": filter.DateEnd.Time()})
	}
	if filter.Format != nil {
		where = append(where, sq.Eq{"format": string(*filter.Format)})
	}
	if filter.HasReport != nil {
		// Notes-only, regardless of status. A scheduled visit with notes
		// counts as reported here; the completed-with-report queries used
		// for derived dates are separate.
		if *filter.HasReport {
			where = append(where,
				sq.NotEq{"notes": nil},
				sq.NotEq{"notes": ""},
			)
		} else {
			where = append(where, sq.Or{
				sq.Eq{"notes": nil},
				sq.Eq{"notes": ""},
			})
		}
	}
	return where
}

func tagsToStrings(tags []domain.Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}

func levelChangeJSON(lc *domain.LevelChange) ([]byte, error) {
	if lc == nil {
		return nil, nil
	}
	b, err := json.Marshal(lc)
	if err != nil {
		return nil, fmt.Errorf("marshal level change: %w", err)
	}
	return b, nil
}

func scanVisit(row pgx.Row) (*domain.Visit, error) {
	var (
		v           domain.Visit
		date        time.Time
		format      string
		status      string
		tags        []string
		levelChange []byte
	)
	err := row.Scan(
		&v.ID, &v.KOLID, &v.KOLName, &v.KOLSpecialty, &date, &v.Time, &format,
		&v.RemoteLink, &v.Agenda, &status, &v.Notes, &v.AudioTranscript,
		&tags, &levelChange, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.Date = domain.DateOf(date)
	v.Format = domain.VisitFormat(format)
	v.Status = domain.VisitStatus(status)
	v.Tags = make([]domain.Tag, len(tags))
	for i, t := range tags {
		v.Tags[i] = domain.Tag(t)
	}
	if len(levelChange) > 0 {
		var lc domain.LevelChange
		if err := json.Unmarshal(levelChange, &lc); err != nil {
			return nil, fmt.Errorf("unmarshal level change: %w", err)
		}
		v.LevelChange = &lc
	}
	return &v, nil
}

func scanVisits(rows pgx.Rows) ([]*domain.Visit, error) {
	visits := []*domain.Visit{}
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, err
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}
