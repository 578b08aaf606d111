package domain

import (
	"time"

	"github.com/google/uuid"
)

// Engagement level bounds. Levels are discrete tiers from cold contact (0)
// to strategic partner (6).
const (
	MinLevel = 0
	MaxLevel = 6
)

// KOL is a key opinion leader tracked for relationship engagement.
//
// LastVisit and NextVisit are derived caches, not source of truth: they are
// recomputed from the visit set after every visit mutation and may be stale
// between a mutation and the next recompute.
type KOL struct {
	ID          uuid.UUID
	Name        string
	Photo       *string
	Specialty   string
	Institution string
	Email       string
	CRM         *string
	Profile     Profile
	Level       int
	LastVisit   *Date
	NextVisit   *Date
	Tags        []Tag
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FirstName returns the leading word of the KOL's name, used by briefing
// templates.
func (k *KOL) FirstName() string {
	for i, r := range k.Name {
		if r == ' ' {
			return k.Name[:i]
		}
	}
	return k.Name
}

// KOLUpdateParams holds the partial-update fields for a KOL. Nil means
// "leave unchanged".
type KOLUpdateParams struct {
	Name        *string
	Photo       *string
	Specialty   *string
	Institution *string
	Email       *string
	CRM         *string
	Profile     *Profile
	Level       *int
	Tags        []Tag
}
