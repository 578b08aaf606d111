// Package kol implements the KOL repository using PostgreSQL.
// Fixed-shape queries use raw SQL consts; filtered listings are built
// with squirrel.
package kol

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/medfield/msl-backend/internal/adapter/postgres"
	"github.com/medfield/msl-backend/internal/domain"
)

// Repo provides KOL persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new KOL repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const kolColumns = `id, name, photo, specialty, institution, email, crm, profile,
       level, last_visit, next_visit, tags, created_at, updated_at`

const getByIDSQL = `
SELECT ` + kolColumns + `
FROM kols
WHERE id = $1`

const insertSQL = `
INSERT INTO kols (name, photo, specialty, institution, email, crm, profile, level, tags)
VALUES ($1, $2, $3, $4, lower($5), $6, $7, $8, $9)
RETURNING ` + kolColumns

const deleteSQL = `DELETE FROM kols WHERE id = $1`

const listIDsSQL = `SELECT id FROM kols`

const updateDerivedSQL = `
UPDATE kols
SET last_visit = $2, next_visit = $3, updated_at = now()
WHERE id = $1`

const setLevelSQL = `
UPDATE kols
SET level = $2, updated_at = now()
WHERE id = $1`

const levelHistogramSQL = `
SELECT level, count(*)
FROM kols
GROUP BY level`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a KOL by primary key.
// Returns domain.ErrNotFound if the KOL does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.KOL, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getByIDSQL, id)
	k, err := scanKOL(row)
	if err != nil {
		return nil, postgres.MapError(err, "kol", id)
	}
	return k, nil
}

// List returns KOLs matching the filter ordered by creation time descending,
// along with the total match count (ignoring limit/offset).
func (r *Repo) List(ctx context.Context, filter domain.KOLFilter) ([]*domain.KOL, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := filterPredicates(filter)

	builder := sq.Select("id", "name", "photo", "specialty", "institution", "email", "crm",
		"profile", "level", "last_visit", "next_visit", "tags", "created_at", "updated_at").
		From("kols").
		Where(where).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	} else if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build kol list query: %w", err)
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list kols: %w", err)
	}
	defer rows.Close()

	kols, err := scanKOLs(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list kols: %w", err)
	}

	countSQL, countArgs, err := sq.Select("count(*)").From("kols").Where(where).
		PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build kol count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count kols: %w", err)
	}

	return kols, total, nil
}

// ListIDs returns the ids of every KOL, for full re-derivation passes.
func (r *Repo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listIDsSQL)
	if err != nil {
		return nil, fmt.Errorf("list kol ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan kol id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Count returns the all-time KOL count.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM kols`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count kols: %w", err)
	}
	return n, nil
}

// CountCreatedBefore returns how many KOLs existed before the cutoff.
func (r *Repo) CountCreatedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM kols WHERE created_at < $1`, cutoff).Scan(&n); err != nil {
		return 0, fmt.Errorf("count kols created before: %w", err)
	}
	return n, nil
}

// AvgLevel returns the mean engagement level over all KOLs, 0 when none.
func (r *Repo) AvgLevel(ctx context.Context) (float64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var avg float64
	if err := q.QueryRow(ctx, `SELECT coalesce(avg(level), 0) FROM kols`).Scan(&avg); err != nil {
		return 0, fmt.Errorf("avg kol level: %w", err)
	}
	return avg, nil
}

// AvgLevelCreatedBefore returns the mean level over KOLs created before the
// cutoff, 0 when none.
func (r *Repo) AvgLevelCreatedBefore(ctx context.Context, cutoff time.Time) (float64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var avg float64
	if err := q.QueryRow(ctx, `SELECT coalesce(avg(level), 0) FROM kols WHERE created_at < $1`, cutoff).Scan(&avg); err != nil {
		return 0, fmt.Errorf("avg kol level before: %w", err)
	}
	return avg, nil
}

// LevelHistogram returns the KOL count per occupied level. Callers fill in
// the empty buckets.
func (r *Repo) LevelHistogram(ctx context.Context) (map[int]int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, levelHistogramSQL)
	if err != nil {
		return nil, fmt.Errorf("kol level histogram: %w", err)
	}
	defer rows.Close()

	hist := make(map[int]int)
	for rows.Next() {
		var level, count int
		if err := rows.Scan(&level, &count); err != nil {
			return nil, fmt.Errorf("scan level bucket: %w", err)
		}
		hist[level] = count
	}
	return hist, rows.Err()
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new KOL and returns the persisted record.
// Returns domain.ErrConflict if the email is already registered.
func (r *Repo) Create(ctx context.Context, k *domain.KOL) (*domain.KOL, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, insertSQL,
		k.Name, k.Photo, k.Specialty, k.Institution, k.Email, k.CRM,
		string(k.Profile), k.Level, tagsToStrings(k.Tags),
	)
	created, err := scanKOL(row)
	if err != nil {
		return nil, postgres.MapError(err, "kol", uuid.Nil)
	}
	return created, nil
}

// Update applies partial-update params and returns the updated record.
// Returns domain.ErrNotFound if the KOL does not exist and
// domain.ErrConflict on an email collision.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.KOLUpdateParams) (*domain.KOL, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Update("kols").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + kolColumns).
		PlaceholderFormat(sq.Dollar)

	if params.Name != nil {
		builder = builder.Set("name", *params.Name)
	}
	if params.Photo != nil {
		builder = builder.Set("photo", *params.Photo)
	}
	if params.Specialty != nil {
		builder = builder.Set("specialty", *params.Specialty)
	}
	if params.Institution != nil {
		builder = builder.Set("institution", *params.Institution)
	}
	if params.Email != nil {
		builder = builder.Set("email", sq.Expr("lower(?)", *params.Email))
	}
	if params.CRM != nil {
		builder = builder.Set("crm", *params.CRM)
	}
	if params.Profile != nil {
		builder = builder.Set("profile", string(*params.Profile))
	}
	if params.Level != nil {
		builder = builder.Set("level", *params.Level)
	}
	if params.Tags != nil {
		builder = builder.Set("tags", tagsToStrings(params.Tags))
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build kol update query: %w", err)
	}

	row := q.QueryRow(ctx, sqlStr, args...)
	updated, err := scanKOL(row)
	if err != nil {
		return nil, postgres.MapError(err, "kol", id)
	}
	return updated, nil
}

// Delete removes a KOL. Returns domain.ErrNotFound if absent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "kol", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("kol %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// UpdateDerived persists the derived lastVisit/nextVisit fields
// unconditionally, including explicit nulls.
func (r *Repo) UpdateDerived(ctx context.Context, id uuid.UUID, lastVisit, nextVisit *domain.Date) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, updateDerivedSQL, id, dateOrNil(lastVisit), dateOrNil(nextVisit)); err != nil {
		return postgres.MapError(err, "kol", id)
	}
	return nil
}

// SetLevel writes a new engagement level.
func (r *Repo) SetLevel(ctx context.Context, id uuid.UUID, level int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, setLevelSQL, id, level); err != nil {
		return postgres.MapError(err, "kol", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func filterPredicates(filter domain.KOLFilter) sq.And {
	where := sq.And{}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		where = append(where, sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"specialty": pattern},
			sq.ILike{"institution": pattern},
		})
	}
	if filter.Level != nil {
		where = append(where, sq.Eq{"level": *filter.Level})
	}
	if filter.Profile != nil {
		where = append(where, sq.Eq{"profile": string(*filter.Profile)})
	}
	if filter.Specialty != nil {
		where = append(where, sq.Eq{"specialty": *filter.Specialty})
	}
	if filter.Institution != nil {
		where = append(where, sq.Eq{"institution": *filter.Institution})
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

func dateOrNil(d *domain.Date) any {
	if d == nil {
		return nil
	}
	return d.Time()
}

func scanKOL(row pgx.Row) (*domain.KOL, error) {
	var (
		k         domain.KOL
		profile   string
		tags      []string
		lastVisit *time.Time
		nextVisit *time.Time
	)
	err := row.Scan(
		&k.ID, &k.Name, &k.Photo, &k.Specialty, &k.Institution, &k.Email, &k.CRM,
		&profile, &k.Level, &lastVisit, &nextVisit, &tags, &k.CreatedAt, &k.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	k.Profile = domain.Profile(profile)
	k.Tags = make([]domain.Tag, len(tags))
	for i, t := range tags {
		k.Tags[i] = domain.Tag(t)
	}
	if lastVisit != nil {
		d := domain.DateOf(*lastVisit)
		k.LastVisit = &d
	}
	if nextVisit != nil {
		d := domain.DateOf(*nextVisit)
		k.NextVisit = &d
	}
	return &k, nil
}

func scanKOLs(rows pgx.Rows) ([]*domain.KOL, error) {
	kols := []*domain.KOL{}
	for rows.Next() {
		k, err := scanKOL(rows)
		if err != nil {
			return nil, err
		}
		kols = append(kols, k)
	}
	return kols, rows.Err()
}
