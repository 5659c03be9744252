package category

import (
	"github.com/google/uuid"

	"github.com/eventlane/eventlane-backend/internal/domain"
)

// CreateCategoryInput holds the parameters for creating a category. A nil
// Slug means "derive from the name".
type CreateCategoryInput struct {
	Name        string
	Slug        *string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i *CreateCategoryInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 120 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 120)"})
	}

	if i.Slug != nil && *i.Slug == "" {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "must not be empty when supplied"})
	}
	if i.Slug != nil && len(*i.Slug) > 120 {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "too long (max 120)"})
	}

	if i.Description != nil && len(*i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 2000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateCategoryInput holds the parameters for updating a category.
// Nil means "not touched".
type UpdateCategoryInput struct {
	ID          uuid.UUID
	Name        *string
	Slug        *string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i *UpdateCategoryInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	if i.Name != nil {
		if *i.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		} else if len(*i.Name) > 120 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 120)"})
		}
	}

	if i.Slug != nil && *i.Slug == "" {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "must not be empty when supplied"})
	}

	if i.Description != nil && len(*i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 2000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
