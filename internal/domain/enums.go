package domain

// EntityType identifies the kind of domain entity. The string value doubles
// as the type tag in activity actions ("ticket.deleted") and metadata.
type EntityType string

const (
	EntityTypeEvent      EntityType = "event"
	EntityTypeCategory   EntityType = "category"
	EntityTypeTicketType EntityType = "ticket_type"
	EntityTypeTicket     EntityType = "ticket"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeEvent, EntityTypeCategory, EntityTypeTicketType, EntityTypeTicket:
		return true
	}
	return false
}

// Label returns the human-readable form used in activity descriptions.
func (e EntityType) Label() string {
	switch e {
	case EntityTypeEvent:
		return "Event"
	case EntityTypeCategory:
		return "Category"
	case EntityTypeTicketType:
		return "Ticket type"
	case EntityTypeTicket:
		return "Ticket"
	}
	return string(e)
}

// ActivityVerb is the dotted suffix of an activity action tag.
type ActivityVerb string

const (
	VerbCreated ActivityVerb = "created"
	VerbUpdated ActivityVerb = "updated"
	VerbDeleted ActivityVerb = "deleted"
)

func (v ActivityVerb) String() string { return string(v) }

func (v ActivityVerb) IsValid() bool {
	switch v {
	case VerbCreated, VerbUpdated, VerbDeleted:
		return true
	}
	return false
}

// Action builds the dotted "<entity>.<verb>" tag for an activity record.
func (e EntityType) Action(v ActivityVerb) string {
	return string(e) + "." + string(v)
}
