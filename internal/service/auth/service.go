// Package auth verifies the two credentials a request may carry: a client
// API key stored in the database and an HS256 bearer token.
package auth

import (
	"context"
	"log/slog"

	"github.com/medfield/msl-backend/internal/domain"
)

// clientRepo defines the client repository interface needed by auth service.
type clientRepo interface {
	GetByToken(ctx context.Context, token string) (*domain.Client, error)
}

// tokenVerifier defines the bearer token validation interface needed by auth service.
type tokenVerifier interface {
	ValidateToken(token string) (string, error)
}

// Service implements request authentication.
type Service struct {
	clients clientRepo
	bearer  tokenVerifier
	log     *slog.Logger
}

// NewService creates a new auth service instance.
func NewService(log *slog.Logger, clients clientRepo, bearer tokenVerifier) *Service {
	return &Service{
		clients: clients,
		bearer:  bearer,
		log:     log.With("service", "auth"),
	}
}
