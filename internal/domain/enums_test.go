package domain

import "testing"

func TestEntityType_IsValid(t *testing.T) {
	t.Parallel()

	valid := []EntityType{EntityTypeEvent, EntityTypeCategory, EntityTypeTicketType, EntityTypeTicket}
	for _, et := range valid {
		if !et.IsValid() {
			t.Errorf("%q should be valid", et)
		}
	}
	if EntityType("attendee").IsValid() {
		t.Error("unknown entity type should be invalid")
	}
	if EntityType("").IsValid() {
		t.Error("empty entity type should be invalid")
	}
}

func TestEntityType_Action(t *testing.T) {
	t.Parallel()

	tests := []struct {
		et   EntityType
		verb ActivityVerb
		want string
	}{
		{EntityTypeTicket, VerbDeleted, "ticket.deleted"},
		{EntityTypeEvent, VerbCreated, "event.created"},
		{EntityTypeCategory, VerbUpdated, "category.updated"},
		{EntityTypeTicketType, VerbCreated, "ticket_type.created"},
	}
	for _, tt := range tests {
		if got := tt.et.Action(tt.verb); got != tt.want {
			t.Errorf("%s.Action(%s) = %q, want %q", tt.et, tt.verb, got, tt.want)
		}
	}
}

func TestEntityType_Label(t *testing.T) {
	t.Parallel()

	if got := EntityTypeTicketType.Label(); got != "Ticket type" {
		t.Errorf("Label() = %q, want %q", got, "Ticket type")
	}
	if got := EntityTypeEvent.Label(); got != "Event" {
		t.Errorf("Label() = %q, want %q", got, "Event")
	}
}

func TestTicket_DisplayName(t *testing.T) {
	t.Parallel()

	tk := &Ticket{ReferenceCode: "GA-7KQ2M4X9PLZB"}
	if got := tk.DisplayName(); got != "GA-7KQ2M4X9PLZB" {
		t.Errorf("DisplayName() = %q, want reference code", got)
	}

	// Without a code the id is the stable fallback.
	tk2 := &Ticket{}
	if got := tk2.DisplayName(); got != tk2.ID.String() {
		t.Errorf("DisplayName() = %q, want id fallback", got)
	}
}
