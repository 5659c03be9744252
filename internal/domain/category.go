package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category groups events. Categories are hard-deleted; only events and
// tickets carry soft-delete attribution.
type Category struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Slug        string    `db:"slug"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (c *Category) LogID() uuid.UUID    { return c.ID }
func (c *Category) Kind() EntityType    { return EntityTypeCategory }
func (c *Category) DisplayName() string { return c.Name }

func (c *Category) SlugSource() string  { return c.Name }
func (c *Category) CurrentSlug() string { return c.Slug }
func (c *Category) SetSlug(s string)    { c.Slug = s }

// CategoryUpdateParams carries the fields of an update request.
// Nil means "not touched".
type CategoryUpdateParams struct {
	Name        *string
	Slug        *string
	Description *string
}
