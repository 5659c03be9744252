package ticket

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/eventlane/eventlane-backend/internal/domain"
	"github.com/eventlane/eventlane-backend/internal/lifecycle"
)

// RevokeTicket soft-deletes a ticket and releases its capacity back to the
// ticket type, in one transaction. Attribution and the activity record run
// after the commit: the deletion itself never depends on knowing who asked
// for it or on the activity store being up.
func (s *Service) RevokeTicket(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	var revoked *domain.Ticket
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var derr error
		revoked, derr = s.tickets.SoftDelete(txCtx, id)
		if derr != nil {
			return fmt.Errorf("revoke ticket: %w", derr)
		}

		if rerr := s.types.Release(txCtx, revoked.TicketTypeID); rerr != nil {
			return fmt.Errorf("release capacity: %w", rerr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return s.ticketPipeline.Run(ctx, lifecycle.AfterDelete, revoked)
}
