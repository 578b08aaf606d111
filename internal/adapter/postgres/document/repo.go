// Package document implements the document repository using PostgreSQL.
package document

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/medfield/msl-backend/internal/adapter/postgres"
	"github.com/medfield/msl-backend/internal/domain"
)

// Repo provides document persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new document repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const documentColumns = `id, title, category, description, url, type, date, tags, created_at, updated_at`

const getByIDSQL = `
SELECT ` + documentColumns + `
FROM documents
WHERE id = $1`

const insertSQL = `
INSERT INTO documents (title, category, description, url, type, date, tags)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + documentColumns

const deleteSQL = `DELETE FROM documents WHERE id = $1`

const searchRelevantSQL = `
SELECT ` + documentColumns + `
FROM documents
WHERE title ~* $1 OR description ~* $1 OR tags && $2::text[]
ORDER BY date DESC
LIMIT $3`

// GetByID returns a document by primary key.
// Returns domain.ErrNotFound if the document does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getByIDSQL, id)
	d, err := scanDocument(row)
	if err != nil {
		return nil, postgres.MapError(err, "document", id)
	}
	return d, nil
}

// List returns documents matching the filter, newest first, plus the total
// match count ignoring limit/offset.
func (r *Repo) List(ctx context.Context, filter domain.DocumentFilter) ([]*domain.Document, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{}
	if filter.Category != nil {
		where = append(where, sq.Eq{"category": string(*filter.Category)})
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		where = append(where, sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
		})
	}
	if len(filter.Tags) > 0 {
		where = append(where, sq.Expr("tags && ?::text[]", filter.Tags))
	}

	builder := sq.Select("id", "title", "category", "description", "url", "type",
		"date", "tags", "created_at", "updated_at").
		From("documents").
		Where(where).
		OrderBy("date DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	} else if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build document list query: %w", err)
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	docs, err := scanDocuments(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list documents: %w", err)
	}

	countSQL, countArgs, err := sq.Select("count(*)").From("documents").Where(where).
		PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build document count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count documents: %w", err)
	}

	return docs, total, nil
}

// SearchRelevant returns up to limit documents whose title, description or
// tags match any of the given terms, newest first. Terms are matched as
// case-insensitive substrings.
func (r *Repo) SearchRelevant(ctx context.Context, terms []string, limit int) ([]*domain.Document, error) {
	if len(terms) == 0 {
		return []*domain.Document{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	escaped := make([]string, len(terms))
	for i, t := range terms {
		escaped[i] = regexpQuote(t)
	}
	pattern := strings.Join(escaped, "|")

	rows, err := q.Query(ctx, searchRelevantSQL, pattern, terms, limit)
	if err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}
	defer rows.Close()

	docs, err := scanDocuments(rows)
	if err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}
	return docs, nil
}

// Create inserts a new document and returns the persisted record.
func (r *Repo) Create(ctx context.Context, d *domain.Document) (*domain.Document, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, insertSQL,
		d.Title, string(d.Category), d.Description, d.URL, string(d.Type),
		d.Date.Time(), d.Tags,
	)
	created, err := scanDocument(row)
	if err != nil {
		return nil, postgres.MapError(err, "document", uuid.Nil)
	}
	return created, nil
}

// Update applies partial-update params and returns the updated record.
// Returns domain.ErrNotFound if the document does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.DocumentUpdateParams) (*domain.Document, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Update("documents").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + documentColumns).
		PlaceholderFormat(sq.Dollar)

	if params.Title != nil {
		builder = builder.Set("title", *params.Title)
	}
	if params.Category != nil {
		builder = builder.Set("category", string(*params.Category))
	}
	if params.Description != nil {
		builder = builder.Set("description", *params.Description)
	}
	if params.URL != nil {
		builder = builder.Set("url", *params.URL)
	}
	if params.Type != nil {
		builder = builder.Set("type", string(*params.Type))
	}
	if params.Date != nil {
		builder = builder.Set("date", params.Date.Time())
	}
	if params.Tags != nil {
		builder = builder.Set("tags", params.Tags)
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build document update query: %w", err)
	}

	row := q.QueryRow(ctx, sqlStr, args...)
	updated, err := scanDocument(row)
	if err != nil {
		return nil, postgres.MapError(err, "document", id)
	}
	return updated, nil
}

// Delete removes a document. Returns domain.ErrNotFound if absent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "document", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// regexpQuote escapes POSIX regexp metacharacters so a term matches
// literally inside the alternation pattern.
func regexpQuote(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`\.+*?()|[]{}^$`, r) {
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func scanDocument(row pgx.Row) (*domain.Document, error) {
	var (
		d        domain.Document
		category string
		docType  string
		date     time.Time
	)
	err := row.Scan(
		&d.ID, &d.Title, &category, &d.Description, &d.URL, &docType,
		&date, &d.Tags, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	d.Category = domain.DocumentCategory(category)
	d.Type = domain.DocumentType(docType)
	d.Date = domain.DateOf(date)
	return &d, nil
}

func scanDocuments(rows pgx.Rows) ([]*domain.Document, error) {
	docs := []*domain.Document{}
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
