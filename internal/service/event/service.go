package event

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/eventlane/eventlane-backend/internal/config"
	"github.com/eventlane/eventlane-backend/internal/domain"
	"github.com/eventlane/eventlane-backend/internal/lifecycle"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type eventRepo interface {
	Create(ctx context.Context, e *domain.Event) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) (*domain.Event, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	SetDeletedBy(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
}

type activityReader interface {
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.ActivityRecord, error)
}

// writeAttempts bounds retries when a concurrent writer takes the resolved
// slug between the uniqueness pre-check and the row write. Each retry
// re-resolves against the now-visible slug set.
const writeAttempts = 3

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the event business logic. Slug resolution, deletion
// attribution, and activity logging run through the lifecycle pipeline built
// at construction; operations never call those components directly.
type Service struct {
	log      *slog.Logger
	events   eventRepo
	records  activityReader
	pipeline *lifecycle.Pipeline[*domain.Event]
	cfg      config.ActivityConfig
}

// NewService creates a new Event service.
func NewService(
	logger *slog.Logger,
	events eventRepo,
	activity *lifecycle.ActivityLogger,
	records activityReader,
	lcCfg config.LifecycleConfig,
	actCfg config.ActivityConfig,
) *Service {
	resolver := lifecycle.NewSlugResolver(events, lcCfg.SlugMaxAttempts)
	attribution := lifecycle.NewAttribution(events)

	pipeline := lifecycle.NewPipeline[*domain.Event]().
		On(lifecycle.BeforeCreate, lifecycle.ResolveSlugOnCreate[*domain.Event](resolver)).
		On(lifecycle.BeforeUpdate, lifecycle.ResolveSlugOnUpdate[*domain.Event](resolver)).
		On(lifecycle.AfterCreate, lifecycle.LogCreated[*domain.Event](activity)).
		On(lifecycle.AfterUpdate, lifecycle.LogUpdated[*domain.Event](activity)).
		On(lifecycle.AfterDelete,
			lifecycle.StampDeleter[*domain.Event](attribution),
			lifecycle.LogDeleted[*domain.Event](activity),
		)

	return &Service{
		log:      logger.With("service", "event"),
		events:   events,
		records:  records,
		pipeline: pipeline,
		cfg:      actCfg,
	}
}
