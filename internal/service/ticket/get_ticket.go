package ticket

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/eventlane/eventlane-backend/internal/domain"
)

// GetTicket returns a live ticket by ID.
func (s *Service) GetTicket(ctx context.Context, id uuid.UUID) (*domain.Ticket, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	return s.tickets.GetByID(ctx, id)
}

// GetTicketByReference returns a live ticket by its human-facing reference
// code, as printed on the ticket.
func (s *Service) GetTicketByReference(ctx context.Context, code string) (*domain.Ticket, error) {
	if code == "" {
		return nil, domain.NewValidationError("reference_code", "required")
	}
	return s.tickets.GetByReference(ctx, code)
}

// GetTicketBySecret returns a live ticket by its secret token, the lookup
// path behind scannable codes. Unknown tokens return domain.ErrNotFound
// with no hint whether the token ever existed.
func (s *Service) GetTicketBySecret(ctx context.Context, token string) (*domain.Ticket, error) {
	if token == "" {
		return nil, domain.NewValidationError("secret_token", "required")
	}
	return s.tickets.GetBySecret(ctx, token)
}

// ListTickets returns all live tickets of an event.
func (s *Service) ListTickets(ctx context.Context, eventID uuid.UUID) ([]*domain.Ticket, error) {
	if eventID == uuid.Nil {
		return nil, domain.NewValidationError("event_id", "required")
	}
	return s.tickets.ListByEvent(ctx, eventID)
}

// TicketActivity returns the newest activity records for one ticket.
func (s *Service) TicketActivity(ctx context.Context, id uuid.UUID) ([]domain.ActivityRecord, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	records, err := s.records.ListByEntity(ctx, domain.EntityTypeTicket, id, s.cfg.ListLimit)
	if err != nil {
		return nil, fmt.Errorf("list ticket activity: %w", err)
	}
	return records, nil
}
