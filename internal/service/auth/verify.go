package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/medfield/msl-backend/internal/domain"
)

// VerifyAPIKey resolves an API key to its client record. Unknown or
// deactivated keys return ErrUnauthorized.
func (s *Service) VerifyAPIKey(ctx context.Context, key string) (*domain.Client, error) {
	if key == "" {
		return nil, fmt.Errorf("empty api key: %w", domain.ErrUnauthorized)
	}

	client, err := s.clients.GetByToken(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("unknown api key: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("get client by token: %w", err)
	}

	return client, nil
}

// VerifyBearer validates a bearer token and returns its subject.
func (s *Service) VerifyBearer(ctx context.Context, token string) (string, error) {
	subject, err := s.bearer.ValidateToken(token)
	if err != nil {
		s.log.WarnContext(ctx, "bearer token rejected", "error", err)
		return "", fmt.Errorf("validate bearer: %w", domain.ErrUnauthorized)
	}

	return subject, nil
}

// Authorize checks both credentials and returns the client identity.
// Both must be valid; the subject of the bearer token is not required to
// match the client record.
func (s *Service) Authorize(ctx context.Context, apiKey, bearerToken string) (*domain.Client, error) {
	client, err := s.VerifyAPIKey(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	if _, err := s.VerifyBearer(ctx, bearerToken); err != nil {
		return nil, err
	}

	return client, nil
}
