package ticket

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventlane/eventlane-backend/internal/domain"
	"github.com/eventlane/eventlane-backend/internal/lifecycle"
)

// IssueTicket reserves capacity on the ticket type and creates the ticket
// in one transaction, so a sold-out type never over-issues. Identifiers are
// assigned in the before-create stage; should one collide with an existing
// row, the reservation rolls back and the whole transaction retries with
// fresh identifiers. Activity is logged after the commit.
func (s *Service) IssueTicket(ctx context.Context, input IssueTicketInput) (*domain.Ticket, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tt, err := s.types.GetByID(ctx, input.TicketTypeID)
	if err != nil {
		return nil, fmt.Errorf("load ticket type: %w", err)
	}

	t := &domain.Ticket{
		EventID:      tt.EventID,
		TicketTypeID: tt.ID,
		HolderName:   input.HolderName,
		HolderEmail:  input.HolderEmail,
	}

	var created *domain.Ticket
	for attempt := 1; attempt <= writeAttempts; attempt++ {
		err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			if rerr := s.types.Reserve(txCtx, tt.ID); rerr != nil {
				return fmt.Errorf("reserve capacity: %w", rerr)
			}

			if perr := s.ticketPipeline.Run(txCtx, lifecycle.BeforeCreate, t); perr != nil {
				return perr
			}

			var cerr error
			created, cerr = s.tickets.Create(txCtx, t)
			if cerr != nil {
				return fmt.Errorf("create ticket: %w", cerr)
			}
			return nil
		})
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, err
		}
		// identifier collision: discard and reissue
		t.ReferenceCode = ""
		t.SecretToken = ""
	}
	if err != nil {
		return nil, err
	}

	if err := s.ticketPipeline.Run(ctx, lifecycle.AfterCreate, created); err != nil {
		return nil, err
	}
	return created, nil
}
