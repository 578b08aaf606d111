package domain

import (
	"time"

	"github.com/google/uuid"
)

// Visit is a single scheduled or completed engagement with a KOL.
//
// KOLName and KOLSpecialty are denormalized snapshots taken at creation
// time. They are refreshed in bulk only when the KOL edit path changes the
// name or specialty; a rename outside that path leaves them stale. That
// staleness window is intentional.
type Visit struct {
	ID              uuid.UUID
	KOLID           uuid.UUID
	KOLName         string
	KOLSpecialty    string
	Date            Date
	Time            string // "HH:MM"
	Format          VisitFormat
	RemoteLink      *string
	Agenda          string
	Status          VisitStatus
	Notes           *string
	AudioTranscript *string
	Tags            []Tag
	LevelChange     *LevelChange
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// LevelChange records an engagement-level adjustment decided during a visit.
type LevelChange struct {
	From          int    `json:"from"`
	To            int    `json:"to"`
	Justification string `json:"justification,omitempty"`
}

// HasReport reports whether the visit outcome was recorded: a completed
// visit carrying non-empty notes.
func (v *Visit) HasReport() bool {
	return v.Status == VisitStatusCompleted && v.Notes != nil && *v.Notes != ""
}

// VisitUpdateParams holds the partial-update fields for a visit. Nil means
// "leave unchanged". The update is a shallow merge onto the stored record.
type VisitUpdateParams struct {
	Date            *Date
	Time            *string
	Format          *VisitFormat
	RemoteLink      *string
	Agenda          *string
	Status          *VisitStatus
	Notes           *string
	AudioTranscript *string
	Tags            []Tag
	LevelChange     *LevelChange
}
