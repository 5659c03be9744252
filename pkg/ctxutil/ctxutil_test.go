package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestActorID_RoundTrip(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	ctx := WithActorID(context.Background(), id)

	got, ok := ActorIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected actor ID to be present")
	}
	if got != id {
		t.Errorf("got %s, want %s", got, id)
	}
}

func TestActorID_Missing(t *testing.T) {
	t.Parallel()

	if _, ok := ActorIDFromCtx(context.Background()); ok {
		t.Error("expected no actor ID in empty context")
	}
}

func TestActorID_NilUUID(t *testing.T) {
	t.Parallel()

	ctx := WithActorID(context.Background(), uuid.Nil)
	if _, ok := ActorIDFromCtx(ctx); ok {
		t.Error("uuid.Nil should read back as absent")
	}
}

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Errorf("got %q, want %q", got, "req-123")
	}
	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Errorf("expected empty string for missing request ID, got %q", got)
	}
}

func TestClientInfo_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithClientInfo(context.Background(), "203.0.113.9", "scanner/2.1")

	ip := ClientIPFromCtx(ctx)
	if ip == nil || *ip != "203.0.113.9" {
		t.Errorf("ip: got %v, want 203.0.113.9", ip)
	}
	ua := UserAgentFromCtx(ctx)
	if ua == nil || *ua != "scanner/2.1" {
		t.Errorf("user agent: got %v, want scanner/2.1", ua)
	}
}

func TestClientInfo_EmptyIsAbsent(t *testing.T) {
	t.Parallel()

	ctx := WithClientInfo(context.Background(), "", "")
	if ip := ClientIPFromCtx(ctx); ip != nil {
		t.Errorf("expected nil ip, got %v", *ip)
	}
	if ua := UserAgentFromCtx(ctx); ua != nil {
		t.Errorf("expected nil user agent, got %v", *ua)
	}
	if ip := ClientIPFromCtx(context.Background()); ip != nil {
		t.Errorf("expected nil ip on empty context, got %v", *ip)
	}
}
