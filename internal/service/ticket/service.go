package ticket

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/eventlane/eventlane-backend/internal/config"
	"github.com/eventlane/eventlane-backend/internal/domain"
	"github.com/eventlane/eventlane-backend/internal/lifecycle"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type ticketRepo interface {
	Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error)
	Update(ctx context.Context, id uuid.UUID, params domain.TicketUpdateParams) (*domain.Ticket, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Ticket, error)
	SetDeletedBy(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Ticket, error)
	GetByReference(ctx context.Context, code string) (*domain.Ticket, error)
	GetBySecret(ctx context.Context, token string) (*domain.Ticket, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*domain.Ticket, error)
}

type ticketTypeRepo interface {
	Create(ctx context.Context, tt *domain.TicketType) (*domain.TicketType, error)
	Update(ctx context.Context, tt *domain.TicketType) (*domain.TicketType, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TicketType, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*domain.TicketType, error)
	Reserve(ctx context.Context, id uuid.UUID) error
	Release(ctx context.Context, id uuid.UUID) error
}

type activityReader interface {
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.ActivityRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// writeAttempts bounds retries when an issued reference code or secret
// token collides with an existing one. The random space makes that
// cryptographically improbable; the unique index is the backstop.
const writeAttempts = 3

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements ticket and ticket type business logic. Ticket issuance
// reserves capacity and writes the ticket in one transaction; identifiers
// are issued in the before-create stage so they are part of the first write
// and never regenerated afterwards.
type Service struct {
	log     *slog.Logger
	tickets ticketRepo
	types   ticketTypeRepo
	records activityReader
	tx      txManager
	issuer  *lifecycle.Issuer

	ticketPipeline *lifecycle.Pipeline[*domain.Ticket]
	typePipeline   *lifecycle.Pipeline[*domain.TicketType]

	cfg config.ActivityConfig
}

// NewService creates a new Ticket service.
func NewService(
	logger *slog.Logger,
	tickets ticketRepo,
	types ticketTypeRepo,
	activity *lifecycle.ActivityLogger,
	records activityReader,
	tx txManager,
	lcCfg config.LifecycleConfig,
	actCfg config.ActivityConfig,
) *Service {
	s := &Service{
		log:     logger.With("service", "ticket"),
		tickets: tickets,
		types:   types,
		records: records,
		tx:      tx,
		issuer:  lifecycle.NewIssuer(lcCfg.ReferenceLength, lcCfg.SecretLength),
		cfg:     actCfg,
	}

	attribution := lifecycle.NewAttribution(tickets)

	s.ticketPipeline = lifecycle.NewPipeline[*domain.Ticket]().
		On(lifecycle.BeforeCreate, s.issueIdentifiers).
		On(lifecycle.AfterCreate, lifecycle.LogCreated[*domain.Ticket](activity)).
		On(lifecycle.AfterUpdate, lifecycle.LogUpdated[*domain.Ticket](activity)).
		On(lifecycle.AfterDelete,
			lifecycle.StampDeleter[*domain.Ticket](attribution),
			lifecycle.LogDeleted[*domain.Ticket](activity),
		)

	s.typePipeline = lifecycle.NewPipeline[*domain.TicketType]().
		On(lifecycle.AfterCreate, lifecycle.LogCreated[*domain.TicketType](activity)).
		On(lifecycle.AfterUpdate, lifecycle.LogUpdated[*domain.TicketType](activity)).
		On(lifecycle.AfterDelete, lifecycle.LogDeleted[*domain.TicketType](activity))

	return s
}

// issueIdentifiers fills the reference code and secret token of an unsaved
// ticket. Already-set identifiers are left alone, so re-running the stage
// on a write retry never rotates a ticket's identity.
func (s *Service) issueIdentifiers(ctx context.Context, t *domain.Ticket) error {
	if t.ReferenceCode != "" && t.SecretToken != "" {
		return nil
	}

	if t.ReferenceCode == "" {
		tt, err := s.types.GetByID(ctx, t.TicketTypeID)
		if err != nil {
			return fmt.Errorf("load ticket type: %w", err)
		}
		code, err := s.issuer.ReferenceCode(tt.ReferencePrefix)
		if err != nil {
			return err
		}
		t.ReferenceCode = code
	}

	if t.SecretToken == "" {
		token, err := s.issuer.SecretToken()
		if err != nil {
			return err
		}
		t.SecretToken = token
	}
	return nil
}
