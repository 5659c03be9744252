package category

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/eventlane/eventlane-backend/internal/config"
	"github.com/eventlane/eventlane-backend/internal/domain"
	"github.com/eventlane/eventlane-backend/internal/lifecycle"
)

type categoryRepo interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id uuid.UUID, params domain.CategoryUpdateParams) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
}

// writeAttempts bounds retries when a concurrent writer takes the resolved
// slug between the uniqueness pre-check and the row write.
const writeAttempts = 3

// Service implements the category business logic. Categories share the
// event slug machinery but are hard-deleted: the delete path logs activity
// without stamping attribution on the row, because the row is gone.
type Service struct {
	log        *slog.Logger
	categories categoryRepo
	pipeline   *lifecycle.Pipeline[*domain.Category]
}

// NewService creates a new Category service.
func NewService(
	logger *slog.Logger,
	categories categoryRepo,
	activity *lifecycle.ActivityLogger,
	lcCfg config.LifecycleConfig,
) *Service {
	resolver := lifecycle.NewSlugResolver(categories, lcCfg.SlugMaxAttempts)

	pipeline := lifecycle.NewPipeline[*domain.Category]().
		On(lifecycle.BeforeCreate, lifecycle.ResolveSlugOnCreate[*domain.Category](resolver)).
		On(lifecycle.BeforeUpdate, lifecycle.ResolveSlugOnUpdate[*domain.Category](resolver)).
		On(lifecycle.AfterCreate, lifecycle.LogCreated[*domain.Category](activity)).
		On(lifecycle.AfterUpdate, lifecycle.LogUpdated[*domain.Category](activity)).
		On(lifecycle.AfterDelete, lifecycle.LogDeleted[*domain.Category](activity))

	return &Service{
		log:        logger.With("service", "category"),
		categories: categories,
		pipeline:   pipeline,
	}
}
