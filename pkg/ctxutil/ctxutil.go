package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	actorIDKey   ctxKey = "actor_id"
	requestIDKey ctxKey = "request_id"
	clientIPKey  ctxKey = "client_ip"
	userAgentKey ctxKey = "user_agent"
)

// WithActorID stores the authenticated principal's ID in the context.
func WithActorID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, actorIDKey, id)
}

// ActorIDFromCtx extracts the principal's ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
// A missing actor is not an error: system-initiated work has no principal.
func ActorIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(actorIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithClientInfo stores the caller's IP address and user agent in the context.
// Empty values are stored as-is and read back as absent.
func WithClientInfo(ctx context.Context, ip, userAgent string) context.Context {
	ctx = context.WithValue(ctx, clientIPKey, ip)
	return context.WithValue(ctx, userAgentKey, userAgent)
}

// ClientIPFromCtx extracts the caller's IP address from the context.
// Returns nil if absent or empty.
func ClientIPFromCtx(ctx context.Context) *string {
	ip, ok := ctx.Value(clientIPKey).(string)
	if !ok || ip == "" {
		return nil
	}
	return &ip
}

// UserAgentFromCtx extracts the caller's user agent from the context.
// Returns nil if absent or empty.
func UserAgentFromCtx(ctx context.Context) *string {
	ua, ok := ctx.Value(userAgentKey).(string)
	if !ok || ua == "" {
		return nil
	}
	return &ua
}
