package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/eventlane/eventlane-backend/internal/domain"
)

// CreateEventInput holds the parameters for creating an event. A nil Slug
// means "derive from the name"; a supplied value is normalized and
// disambiguated, not stored verbatim.
type CreateEventInput struct {
	CategoryID  *uuid.UUID
	Name        string
	Slug        *string
	Description *string
	StartsAt    time.Time
	EndsAt      *time.Time
}

// Validate checks all fields and collects all errors.
func (i *CreateEventInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 200)"})
	}

	if i.Slug != nil && *i.Slug == "" {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "must not be empty when supplied"})
	}
	if i.Slug != nil && len(*i.Slug) > 200 {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "too long (max 200)"})
	}

	if i.Description != nil && len(*i.Description) > 5000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 5000)"})
	}

	if i.StartsAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "starts_at", Message: "required"})
	}
	if i.EndsAt != nil && !i.StartsAt.IsZero() && !i.EndsAt.After(i.StartsAt) {
		errs = append(errs, domain.FieldError{Field: "ends_at", Message: "must be after starts_at"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateEventInput holds the parameters for updating an event. Nil means
// "not touched". Changing the name regenerates the slug unless Slug is
// supplied in the same call, in which case the supplied value wins.
type UpdateEventInput struct {
	ID          uuid.UUID
	CategoryID  *uuid.UUID
	Name        *string
	Slug        *string
	Description *string
	StartsAt    *time.Time
	EndsAt      *time.Time
}

// Validate checks all fields and collects all errors.
func (i *UpdateEventInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	if i.Name != nil {
		if *i.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		} else if len(*i.Name) > 200 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 200)"})
		}
	}

	if i.Slug != nil && *i.Slug == "" {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "must not be empty when supplied"})
	}
	if i.Slug != nil && len(*i.Slug) > 200 {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "too long (max 200)"})
	}

	if i.Description != nil && len(*i.Description) > 5000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 5000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
