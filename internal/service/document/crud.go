package document

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medfield/msl-backend/internal/domain"
)

// Create adds a new document to the knowledge base.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Document, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	created, err := s.documents.Create(ctx, &domain.Document{
		Title:       input.Title,
		Category:    input.Category,
		Description: input.Description,
		URL:         input.URL,
		Type:        input.Type,
		Date:        input.Date,
		Tags:        tags,
	})
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	s.log.InfoContext(ctx, "document created", "document_id", created.ID, "category", created.Category)
	return created, nil
}

// Get returns a document by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	d, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}

// List returns documents matching the filter plus pagination metadata.
func (s *Service) List(ctx context.Context, filter domain.DocumentFilter) ([]*domain.Document, domain.ListMeta, error) {
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, domain.ListMeta{}, domain.NewValidationError("pagination", "must be non-negative")
	}
	if filter.Category != nil && !filter.Category.IsValid() {
		return nil, domain.ListMeta{}, domain.NewValidationError("category", "unknown category")
	}

	docs, total, err := s.documents.List(ctx, filter)
	if err != nil {
		return nil, domain.ListMeta{}, fmt.Errorf("list documents: %w", err)
	}

	meta := domain.ListMeta{Total: total, Offset: filter.Offset}
	if filter.Limit > 0 {
		limit := filter.Limit
		meta.Limit = &limit
	}
	return docs, meta, nil
}

// Update applies a partial update to a document.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Document, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.documents.Update(ctx, input.ID, domain.DocumentUpdateParams{
		Title:       input.Title,
		Category:    input.Category,
		Description: input.Description,
		URL:         input.URL,
		Type:        input.Type,
		Date:        input.Date,
		Tags:        input.Tags,
	})
	if err != nil {
		return nil, fmt.Errorf("update document: %w", err)
	}

	s.log.InfoContext(ctx, "document updated", "document_id", updated.ID)
	return updated, nil
}

// Delete removes a document.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.documents.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}

	s.log.InfoContext(ctx, "document deleted", "document_id", id)
	return nil
}
