package domain

import (
	"time"

	"github.com/google/uuid"
)

// Metadata keys the activity logger always fills in for entity records.
// Caller-supplied metadata wins on key collision.
const (
	MetaModelID   = "model_id"
	MetaModelType = "model_type"
	MetaRequestID = "request_id"
)

// ActivityRecord is one append-only audit entry. Records are created once
// and never updated or deleted by this subsystem; they outlive the entities
// they reference.
type ActivityRecord struct {
	ID          uuid.UUID      `db:"id"`
	ActorID     *uuid.UUID     `db:"actor_id"` // nil for system actions
	Action      string         `db:"action"`   // dotted "<entity>.<verb>" tag
	Description string         `db:"description"`
	Meta        map[string]any `db:"meta"`
	IP          *string        `db:"ip"`
	UserAgent   *string        `db:"user_agent"`
	CreatedAt   time.Time      `db:"created_at"`
}
