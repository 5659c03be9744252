// Package lifecycle implements the entity lifecycle engine: slug resolution,
// identifier issuance, deletion attribution, and activity logging, composed
// per entity type by a staged hook pipeline.
//
// The engine never reads framework globals. The acting principal and client
// request details travel on the context via pkg/ctxutil, populated by the
// caller at the boundary.
package lifecycle

import (
	"github.com/google/uuid"

	"github.com/eventlane/eventlane-backend/internal/domain"
)

// Loggable is the capability an entity needs to participate in activity
// logging and attribution: a stable ID, a type tag, and a display name for
// human-readable descriptions. Entities without a natural name must still
// return something stable (tickets use their reference code).
type Loggable interface {
	LogID() uuid.UUID
	Kind() domain.EntityType
	DisplayName() string
}

// Slugged is the capability an entity needs for slug resolution.
type Slugged interface {
	Loggable
	SlugSource() string
	CurrentSlug() string
	SetSlug(string)
}
