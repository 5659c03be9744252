package ticket

import (
	"strings"

	"github.com/google/uuid"

	"github.com/eventlane/eventlane-backend/internal/domain"
)

// IssueTicketInput holds the parameters for issuing a ticket.
type IssueTicketInput struct {
	TicketTypeID uuid.UUID
	HolderName   string
	HolderEmail  *string
}

// Validate checks all fields and collects all errors.
func (i *IssueTicketInput) Validate() error {
	var errs []domain.FieldError

	if i.TicketTypeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "ticket_type_id", Message: "required"})
	}

	if i.HolderName == "" {
		errs = append(errs, domain.FieldError{Field: "holder_name", Message: "required"})
	} else if len(i.HolderName) > 200 {
		errs = append(errs, domain.FieldError{Field: "holder_name", Message: "too long (max 200)"})
	}

	if i.HolderEmail != nil && !strings.Contains(*i.HolderEmail, "@") {
		errs = append(errs, domain.FieldError{Field: "holder_email", Message: "invalid address"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateTicketInput holds the parameters for updating a ticket's holder
// details. Nil means "not touched". Identifiers are immutable and have no
// input fields at all.
type UpdateTicketInput struct {
	ID          uuid.UUID
	HolderName  *string
	HolderEmail *string
}

// Validate checks all fields and collects all errors.
func (i *UpdateTicketInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	if i.HolderName != nil {
		if *i.HolderName == "" {
			errs = append(errs, domain.FieldError{Field: "holder_name", Message: "must not be empty"})
		} else if len(*i.HolderName) > 200 {
			errs = append(errs, domain.FieldError{Field: "holder_name", Message: "too long (max 200)"})
		}
	}

	if i.HolderEmail != nil && *i.HolderEmail != "" && !strings.Contains(*i.HolderEmail, "@") {
		errs = append(errs, domain.FieldError{Field: "holder_email", Message: "invalid address"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateTicketTypeInput holds the parameters for creating a ticket type.
type CreateTicketTypeInput struct {
	EventID         uuid.UUID
	Name            string
	ReferencePrefix string
	PriceCents      int64
	Quantity        int
}

// Validate checks all fields and collects all errors. The reference prefix
// is uppercased before validation so "ga" and "GA" mean the same thing.
func (i *CreateTicketTypeInput) Validate() error {
	var errs []domain.FieldError

	if i.EventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "event_id", Message: "required"})
	}

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 120 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 120)"})
	}

	i.ReferencePrefix = strings.ToUpper(strings.TrimSpace(i.ReferencePrefix))
	if i.ReferencePrefix == "" {
		errs = append(errs, domain.FieldError{Field: "reference_prefix", Message: "required"})
	} else if len(i.ReferencePrefix) > 8 {
		errs = append(errs, domain.FieldError{Field: "reference_prefix", Message: "too long (max 8)"})
	} else if !isUpperAlnum(i.ReferencePrefix) {
		errs = append(errs, domain.FieldError{Field: "reference_prefix", Message: "must be letters and digits only"})
	}

	if i.PriceCents < 0 {
		errs = append(errs, domain.FieldError{Field: "price_cents", Message: "must not be negative"})
	}
	if i.Quantity < 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateTicketTypeInput holds the parameters for updating a ticket type.
// Nil means "not touched". The reference prefix is intentionally immutable:
// changing it would orphan the codes of already-issued tickets.
type UpdateTicketTypeInput struct {
	ID         uuid.UUID
	Name       *string
	PriceCents *int64
	Quantity   *int
}

// Validate checks all fields and collects all errors.
func (i *UpdateTicketTypeInput) Validate() error {
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

	if i.PriceCents != nil && *i.PriceCents < 0 {
		errs = append(errs, domain.FieldError{Field: "price_cents", Message: "must not be negative"})
	}
	if i.Quantity != nil && *i.Quantity < 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func isUpperAlnum(s string) bool {
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
