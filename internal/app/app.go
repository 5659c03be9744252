// Package app wires configuration, storage, lifecycle components, and
// services into a runnable application.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventlane/eventlane-backend/internal/adapter/postgres"
	activityrepo "github.com/eventlane/eventlane-backend/internal/adapter/postgres/activity"
	categoryrepo "github.com/eventlane/eventlane-backend/internal/adapter/postgres/category"
	eventrepo "github.com/eventlane/eventlane-backend/internal/adapter/postgres/event"
	ticketrepo "github.com/eventlane/eventlane-backend/internal/adapter/postgres/ticket"
	tickettyperepo "github.com/eventlane/eventlane-backend/internal/adapter/postgres/tickettype"
	"github.com/eventlane/eventlane-backend/internal/config"
	"github.com/eventlane/eventlane-backend/internal/lifecycle"
	categorysvc "github.com/eventlane/eventlane-backend/internal/service/category"
	eventsvc "github.com/eventlane/eventlane-backend/internal/service/event"
	ticketsvc "github.com/eventlane/eventlane-backend/internal/service/ticket"
)

// App holds the built application graph.
type App struct {
	Log  *slog.Logger
	Pool *pgxpool.Pool

	Events     *eventsvc.Service
	Categories *categorysvc.Service
	Tickets    *ticketsvc.Service

	Activity *activityrepo.Repo
}

// Build connects to the database and assembles repositories, lifecycle
// components, and services. The caller owns the returned App and must call
// Close when done.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	events := eventrepo.New(pool)
	categories := categoryrepo.New(pool)
	ticketTypes := tickettyperepo.New(pool)
	tickets := ticketrepo.New(pool)
	activity := activityrepo.New(pool)

	tx := postgres.NewTxManager(pool)
	activityLogger := lifecycle.NewActivityLogger(activity, logger)

	logger.InfoContext(ctx, "application assembled",
		slog.String("version", BuildVersion()),
	)

	return &App{
		Log:  logger,
		Pool: pool,
		Events: eventsvc.NewService(
			logger, events, activityLogger, activity, cfg.Lifecycle, cfg.Activity,
		),
		Categories: categorysvc.NewService(
			logger, categories, activityLogger, cfg.Lifecycle,
		),
		Tickets: ticketsvc.NewService(
			logger, tickets, ticketTypes, activityLogger, activity, tx,
			cfg.Lifecycle, cfg.Activity,
		),
		Activity: activity,
	}, nil
}

// Close releases the application's resources.
func (a *App) Close() {
	a.Pool.Close()
}
