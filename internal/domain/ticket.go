package domain

import (
	"time"

	"github.com/google/uuid"
)

// TicketType defines a sellable class of tickets for an event, e.g.
// "General Admission". ReferencePrefix seeds the reference codes of
// tickets issued for this type.
type TicketType struct {
	ID              uuid.UUID `db:"id"`
	EventID         uuid.UUID `db:"event_id"`
	Name            string    `db:"name"`
	ReferencePrefix string    `db:"reference_prefix"`
	PriceCents      int64     `db:"price_cents"`
	Quantity        int       `db:"quantity"` // 0 means unlimited
	Issued          int       `db:"issued"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (t *TicketType) LogID() uuid.UUID    { return t.ID }
func (t *TicketType) Kind() EntityType    { return EntityTypeTicketType }
func (t *TicketType) DisplayName() string { return t.Name }

// Ticket is an issued admission. ReferenceCode and SecretToken are assigned
// once at creation and never regenerated: the reference code is the
// human-facing ticket number, the secret token backs the scannable QR
// lookup and must not be guessable.
type Ticket struct {
	ID            uuid.UUID  `db:"id"`
	EventID       uuid.UUID  `db:"event_id"`
	TicketTypeID  uuid.UUID  `db:"ticket_type_id"`
	ReferenceCode string     `db:"reference_code"`
	SecretToken   string     `db:"secret_token"`
	HolderName    string     `db:"holder_name"`
	HolderEmail   *string    `db:"holder_email"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
	DeletedBy     *uuid.UUID `db:"deleted_by"`
}

func (t *Ticket) LogID() uuid.UUID { return t.ID }
func (t *Ticket) Kind() EntityType { return EntityTypeTicket }

// DisplayName is the reference code: tickets have no name field, and the
// code is the identity shown to humans.
func (t *Ticket) DisplayName() string {
	if t.ReferenceCode != "" {
		return t.ReferenceCode
	}
	return t.ID.String()
}

// TicketUpdateParams carries the fields of an update request.
// Nil means "not touched". Reference code and secret token are immutable
// and deliberately absent.
type TicketUpdateParams struct {
	HolderName  *string
	HolderEmail *string
}
