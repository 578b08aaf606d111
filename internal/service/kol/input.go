package kol

import (
	"strings"

	"github.com/google/uuid"

	"github.com/medfield/msl-backend/internal/domain"
)

// CreateInput holds the parameters for registering a KOL.
type CreateInput struct {
	Name        string
	Photo       *string
	Specialty   string
	Institution string
	Email       string
	CRM         *string
	Profile     domain.Profile
	Level       int
	Tags        []domain.Tag
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if strings.TrimSpace(i.Specialty) == "" {
		errs = append(errs, domain.FieldError{Field: "specialty", Message: "required"})
	}
	if strings.TrimSpace(i.Institution) == "" {
		errs = append(errs, domain.FieldError{Field: "institution", Message: "required"})
	}
	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !strings.Contains(i.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if !i.Profile.IsValid() {
		errs = append(errs, domain.FieldError{Field: "profile", Message: "unknown profile"})
	}
	if i.Level < domain.MinLevel || i.Level > domain.MaxLevel {
		errs = append(errs, domain.FieldError{Field: "level", Message: "must be between 0 and 6"})
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

// UpdateInput holds the partial-update parameters for a KOL. Nil fields
// are left unchanged.
type UpdateInput struct {
	ID          uuid.UUID
	Name        *string
	Photo       *string
	Specialty   *string
	Institution *string
	Email       *string
	CRM         *string
	Profile     *domain.Profile
	Level       *int
	Tags        []domain.Tag
}

// Validate checks all fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if i.Specialty != nil && strings.TrimSpace(*i.Specialty) == "" {
		errs = append(errs, domain.FieldError{Field: "specialty", Message: "must not be empty"})
	}
	if i.Email != nil && !strings.Contains(*i.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if i.Profile != nil && !i.Profile.IsValid() {
		errs = append(errs, domain.FieldError{Field: "profile", Message: "unknown profile"})
	}
	if i.Level != nil && (*i.Level < domain.MinLevel || *i.Level > domain.MaxLevel) {
		errs = append(errs, domain.FieldError{Field: "level", Message: "must be between 0 and 6"})
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

// ListInput holds the filtering parameters for listing KOLs.
type ListInput struct {
	Filter domain.KOLFilter
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
	if i.Filter.Level != nil && (*i.Filter.Level < domain.MinLevel || *i.Filter.Level > domain.MaxLevel) {
		errs = append(errs, domain.FieldError{Field: "level", Message: "must be between 0 and 6"})
	}
	if i.Filter.Profile != nil && !i.Filter.Profile.IsValid() {
		errs = append(errs, domain.FieldError{Field: "profile", Message: "unknown profile"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
