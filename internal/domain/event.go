package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a published happening that tickets are sold for.
// Events are soft-deleted; DeletedBy attributes the deletion to a principal.
type Event struct {
	ID          uuid.UUID  `db:"id"`
	CategoryID  *uuid.UUID `db:"category_id"`
	Name        string     `db:"name"`
	Slug        string     `db:"slug"`
	Description *string    `db:"description"`
	StartsAt    time.Time  `db:"starts_at"`
	EndsAt      *time.Time `db:"ends_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
	DeletedBy   *uuid.UUID `db:"deleted_by"`
}

func (e *Event) LogID() uuid.UUID    { return e.ID }
func (e *Event) Kind() EntityType    { return EntityTypeEvent }
func (e *Event) DisplayName() string { return e.Name }

// SlugSource is the text the slug derives from.
func (e *Event) SlugSource() string  { return e.Name }
func (e *Event) CurrentSlug() string { return e.Slug }
func (e *Event) SetSlug(s string)    { e.Slug = s }

// EventUpdateParams carries the fields of an update request. Nil means
// "not touched"; slug regeneration depends on which fields are dirty.
type EventUpdateParams struct {
	CategoryID  *uuid.UUID
	Name        *string
	Slug        *string
	Description *string
	StartsAt    *time.Time
	EndsAt      *time.Time
}
