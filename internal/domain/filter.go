package domain

import "github.com/google/uuid"

// KOLFilter contains filtering/pagination parameters for KOL listings.
// Search matches name, specialty or institution case-insensitively.
type KOLFilter struct {
	Search      *string
	Level       *int
	Profile     *Profile
	Specialty   *string
	Institution *string
	Limit       int // 0 = no limit
	Offset      int
}

// VisitFilter contains filtering/pagination parameters for visit listings.
// DateStart/DateEnd bound the visit date inclusively; the end bound covers
// the whole end day. HasReport filters on notes presence alone, whatever
// the status.
type VisitFilter struct {
	Status    *VisitStatus
	KOLID     *uuid.UUID
	DateStart *Date
	DateEnd   *Date
	Format    *VisitFormat
	HasReport *bool
	Limit     int
	Offset    int
}

// DocumentFilter contains filtering/pagination parameters for document
// listings. Search matches title or description; Tags matches any overlap.
type DocumentFilter struct {
	Category *DocumentCategory
	Search   *string
	Tags     []string
	Limit    int
	Offset   int
}

// ListMeta describes a paginated result set.
type ListMeta struct {
	Total  int  `json:"total"`
	Limit  *int `json:"limit"`
	Offset int  `json:"offset"`
}
