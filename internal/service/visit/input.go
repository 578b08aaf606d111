package visit

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/medfield/msl-backend/internal/domain"
)

var timeOfDayRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// CreateInput holds the parameters for scheduling a visit. New visits are
// always persisted as scheduled.
type CreateInput struct {
	KOLID      uuid.UUID
	Date       domain.Date
	Time       string
	Format     domain.VisitFormat
	RemoteLink *string
	Agenda     string
	Tags       []domain.Tag
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.KOLID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "kol_id", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if !timeOfDayRe.MatchString(i.Time) {
		errs = append(errs, domain.FieldError{Field: "time", Message: "must be HH:MM"})
	}
	if !i.Format.IsValid() {
		errs = append(errs, domain.FieldError{Field: "format", Message: "unknown format"})
	}
	if strings.TrimSpace(i.Agenda) == "" {
		errs = append(errs, domain.FieldError{Field: "agenda", Message: "required"})
	}
	for _, t := range i.Tags {
		if !t.IsValid() {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "unknown tag: " + string(t)})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the partial-update parameters for a visit. Nil fields
// are left unchanged; provided fields are shallow-merged onto the record.
type UpdateInput struct {
	ID          uuid.UUID
	Date        *domain.Date
	Time        *string
	Format      *domain.VisitFormat
	RemoteLink  *string
	Agenda      *string
	Status      *domain.VisitStatus
	Notes       *string
	Tags        []domain.Tag
	LevelChange *domain.LevelChange
}

// Validate checks all fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Time != nil && !timeOfDayRe.MatchString(*i.Time) {
		errs = append(errs, domain.FieldError{Field: "time", Message: "must be HH:MM"})
	}
	if i.Format != nil && !i.Format.IsValid() {
		errs = append(errs, domain.FieldError{Field: "format", Message: "unknown format"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.LevelChange != nil {
		if i.LevelChange.To < domain.MinLevel || i.LevelChange.To > domain.MaxLevel {
			errs = append(errs, domain.FieldError{Field: "level_change.to", Message: "must be between 0 and 6"})
		}
	}
	for _, t := range i.Tags {
		if !t.IsValid() {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "unknown tag: " + string(t)})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the filtering parameters for listing visits.
type ListInput struct {
	Filter domain.VisitFilter
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Filter.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Filter.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if i.Filter.Status != nil && !i.Filter.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.Filter.Format != nil && !i.Filter.Format.IsValid() {
		errs = append(errs, domain.FieldError{Field: "format", Message: "unknown format"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
