package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document is a knowledge-base item. It has no relationship to KOLs or
// visits beyond being surfaced by the chat component's free-text search.
type Document struct {
	ID          uuid.UUID
	Title       string
	Category    DocumentCategory
	Description string
	URL         string
	Type        DocumentType
	Date        Date
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DocumentUpdateParams holds the partial-update fields for a document.
// Nil means "leave unchanged".
type DocumentUpdateParams struct {
	Title       *string
	Category    *DocumentCategory
	Description *string
	URL         *string
	Type        *DocumentType
	Date        *Date
	Tags        []string
}
