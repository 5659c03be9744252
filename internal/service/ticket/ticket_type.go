package ticket

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/eventlane/eventlane-backend/internal/domain"
	"github.com/eventlane/eventlane-backend/internal/lifecycle"
)

// CreateTicketType creates a sellable ticket class for an event.
func (s *Service) CreateTicketType(ctx context.Context, input CreateTicketTypeInput) (*domain.TicketType, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tt := &domain.TicketType{
		EventID:         input.EventID,
		Name:            input.Name,
		ReferencePrefix: input.ReferencePrefix,
		PriceCents:      input.PriceCents,
		Quantity:        input.Quantity,
	}

	created, err := s.types.Create(ctx, tt)
	if err != nil {
		return nil, fmt.Errorf("create ticket type: %w", err)
	}

	if err := s.typePipeline.Run(ctx, lifecycle.AfterCreate, created); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateTicketType changes a ticket type's name, price, or capacity.
// Shrinking quantity below the issued count is rejected, since the already
// issued tickets cannot be un-sold by an edit.
func (s *Service) UpdateTicketType(ctx context.Context, input UpdateTicketTypeInput) (*domain.TicketType, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tt, err := s.types.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("load ticket type: %w", err)
	}

	changed := false
	if input.Name != nil && *input.Name != tt.Name {
		tt.Name = *input.Name
		changed = true
	}
	if input.PriceCents != nil && *input.PriceCents != tt.PriceCents {
		tt.PriceCents = *input.PriceCents
		changed = true
	}
	if input.Quantity != nil && *input.Quantity != tt.Quantity {
		if *input.Quantity != 0 && *input.Quantity < tt.Issued {
			return nil, domain.NewValidationError("quantity",
				fmt.Sprintf("below issued count (%d)", tt.Issued))
		}
		tt.Quantity = *input.Quantity
		changed = true
	}

	if !changed {
		return tt, nil
	}

	updated, err := s.types.Update(ctx, tt)
	if err != nil {
		return nil, fmt.Errorf("update ticket type: %w", err)
	}

	if err := s.typePipeline.Run(ctx, lifecycle.AfterUpdate, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTicketType removes a ticket type. Types with issued tickets cannot
// be deleted; revoke the tickets first.
func (s *Service) DeleteTicketType(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	tt, err := s.types.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load ticket type: %w", err)
	}
	if tt.Issued > 0 {
		return fmt.Errorf("ticket type %s has %d issued tickets: %w", id, tt.Issued, domain.ErrConflict)
	}

	if err := s.types.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete ticket type: %w", err)
	}

	return s.typePipeline.Run(ctx, lifecycle.AfterDelete, tt)
}

// GetTicketType returns a ticket type by ID.
func (s *Service) GetTicketType(ctx context.Context, id uuid.UUID) (*domain.TicketType, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	return s.types.GetByID(ctx, id)
}

// ListTicketTypes returns all ticket types of an event.
func (s *Service) ListTicketTypes(ctx context.Context, eventID uuid.UUID) ([]*domain.TicketType, error) {
	if eventID == uuid.Nil {
		return nil, domain.NewValidationError("event_id", "required")
	}
	return s.types.ListByEvent(ctx, eventID)
}
