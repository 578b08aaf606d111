// Package client implements the API-client credential repository using
// PostgreSQL.
package client

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/medfield/msl-backend/internal/adapter/postgres"
	"github.com/medfield/msl-backend/internal/domain"
)

// Repo provides client-credential persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new client repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const clientColumns = `id, token, name, active, created_at, updated_at`

const getByTokenSQL = `
SELECT ` + clientColumns + `
FROM clients
WHERE token = $1 AND active`

const insertSQL = `
INSERT INTO clients (token, name, active)
VALUES ($1, $2, $3)
RETURNING ` + clientColumns

// GetByToken returns the active client owning the token.
// Returns domain.ErrNotFound when no active client matches.
func (r *Repo) GetByToken(ctx context.Context, token string) (*domain.Client, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getByTokenSQL, token)
	c, err := scanClient(row)
	if err != nil {
		return nil, postgres.MapError(err, "client", uuid.Nil)
	}
	return c, nil
}

// Create registers a new client credential.
// Returns domain.ErrConflict if the token is already registered.
func (r *Repo) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, insertSQL, c.Token, c.Name, c.Active)
	created, err := scanClient(row)
	if err != nil {
		return nil, postgres.MapError(err, "client", uuid.Nil)
	}
	return created, nil
}

func scanClient(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	err := row.Scan(&c.ID, &c.Token, &c.Name, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
