package ticket

import (
	"context"
	"fmt"

	"github.com/eventlane/eventlane-backend/internal/domain"
	"github.com/eventlane/eventlane-backend/internal/lifecycle"
)

// UpdateTicket changes a ticket's holder details. Reference code and secret
// token are never touched: a ticket keeps its identity for life. A call
// that changes nothing skips the lifecycle, including activity logging.
func (s *Service) UpdateTicket(ctx context.Context, input UpdateTicketInput) (*domain.Ticket, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	t, err := s.tickets.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("load ticket: %w", err)
	}

	params := domain.TicketUpdateParams{}
	changed := false
	if input.HolderName != nil && *input.HolderName != t.HolderName {
		params.HolderName = input.HolderName
		changed = true
	}
	if input.HolderEmail != nil {
		if t.HolderEmail == nil || *t.HolderEmail != *input.HolderEmail {
			params.HolderEmail = input.HolderEmail
			changed = true
		}
	}

	if !changed {
		return t, nil
	}

	updated, err := s.tickets.Update(ctx, t.ID, params)
	if err != nil {
		return nil, fmt.Errorf("update ticket: %w", err)
	}

	if err := s.ticketPipeline.Run(ctx, lifecycle.AfterUpdate, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
