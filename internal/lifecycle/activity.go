package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/eventlane/eventlane-backend/internal/domain"
	"github.com/eventlane/eventlane-backend/pkg/ctxutil"
)

type activityStore interface {
	Append(ctx context.Context, record domain.ActivityRecord) error
}

// ActivityLogger appends structured audit records for entity mutations.
// Appending is best-effort by contract: a failed append is reported through
// the operational log and swallowed, never failing the mutation that
// triggered it. The activity write and the entity write are deliberately
// not transactional with each other.
type ActivityLogger struct {
	store activityStore
	log   *slog.Logger
}

// NewActivityLogger creates an activity logger over the given append-only store.
func NewActivityLogger(store activityStore, log *slog.Logger) *ActivityLogger {
	return &ActivityLogger{store: store, log: log.With("component", "activity")}
}

// Record appends one activity record with the given fields plus ambient
// request context (actor, request id, client ip, user agent) read from ctx.
// The request id lands in metadata so one request's records can be pulled
// together later; a caller-supplied value under the same key wins.
func (l *ActivityLogger) Record(ctx context.Context, action, description string, meta map[string]any) {
	if rid := ctxutil.RequestIDFromCtx(ctx); rid != "" {
		if meta == nil {
			meta = map[string]any{}
		}
		if _, ok := meta[domain.MetaRequestID]; !ok {
			meta[domain.MetaRequestID] = rid
		}
	}

	record := domain.ActivityRecord{
		ID:          uuid.New(),
		Action:      action,
		Description: description,
		Meta:        meta,
		IP:          ctxutil.ClientIPFromCtx(ctx),
		UserAgent:   ctxutil.UserAgentFromCtx(ctx),
		CreatedAt:   time.Now().UTC(),
	}
	if actorID, ok := ctxutil.ActorIDFromCtx(ctx); ok {
		record.ActorID = &actorID
	}

	if err := l.store.Append(ctx, record); err != nil {
		l.log.ErrorContext(ctx, "activity append failed",
			slog.String("action", action),
			slog.Any("error", err),
		)
	}
}

// Created records the standard "<entity>.created" entry for e.
func (l *ActivityLogger) Created(ctx context.Context, e Loggable, extra map[string]any) {
	l.recordFor(ctx, e, domain.VerbCreated, extra)
}

// Updated records the standard "<entity>.updated" entry for e.
func (l *ActivityLogger) Updated(ctx context.Context, e Loggable, extra map[string]any) {
	l.recordFor(ctx, e, domain.VerbUpdated, extra)
}

// Deleted records the standard "<entity>.deleted" entry for e.
func (l *ActivityLogger) Deleted(ctx context.Context, e Loggable, extra map[string]any) {
	l.recordFor(ctx, e, domain.VerbDeleted, extra)
}

func (l *ActivityLogger) recordFor(ctx context.Context, e Loggable, verb domain.ActivityVerb, extra map[string]any) {
	description := fmt.Sprintf("%s '%s' was %s", e.Kind().Label(), e.DisplayName(), verb)

	// defaults first, caller overrides second
	meta := map[string]any{
		domain.MetaModelID:   e.LogID().String(),
		domain.MetaModelType: e.Kind().String(),
	}
	for k, v := range extra {
		meta[k] = v
	}

	l.Record(ctx, e.Kind().Action(verb), description, meta)
}
