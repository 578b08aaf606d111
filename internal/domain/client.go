package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client is an API credential used for coarse request authentication.
// It is not part of the relationship domain proper.
type Client struct {
	ID        uuid.UUID
	Token     string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
