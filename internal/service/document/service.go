// Package document implements knowledge-base document management.
package document

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/medfield/msl-backend/internal/domain"
)

type documentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, filter domain.DocumentFilter) ([]*domain.Document, int, error)
	Create(ctx context.Context, d *domain.Document) (*domain.Document, error)
	Update(ctx context.Context, id uuid.UUID, params domain.DocumentUpdateParams) (*domain.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements the document business logic.
type Service struct {
	documents documentRepo
	log       *slog.Logger
}

// NewService creates a new document service.
func NewService(log *slog.Logger, documents documentRepo) *Service {
	return &Service{
		documents: documents,
		log:       log.With("service", "document"),
	}
}

// CreateInput holds the parameters for adding a document.
type CreateInput struct {
	Title       string
	Category    domain.DocumentCategory
	Description string
	URL         string
	Type        domain.DocumentType
	Date        domain.Date
	Tags        []string
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if strings.TrimSpace(i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if strings.TrimSpace(i.URL) == "" {
		errs = append(errs, domain.FieldError{Field: "url", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown type"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the partial-update parameters for a document.
type UpdateInput struct {
	ID          uuid.UUID
	Title       *string
	Category    *domain.DocumentCategory
	Description *string
	URL         *string
	Type        *domain.DocumentType
	Date        *domain.Date
	Tags        []string
}

// Validate checks all fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown type"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
