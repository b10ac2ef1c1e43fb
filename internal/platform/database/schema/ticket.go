package schema

// RefTicketTable represents the 'name_tickets' table
//
// A single-row table whose serial primary key is the ticket counter;
// see internal/ticket for the allocation dance.
type RefTicketTable struct {
	Table string
	ID    string
	Stub  string
}

// RefTicket is the schema definition for name_tickets
var RefTicket = RefTicketTable{
	Table: "name_tickets",
	ID:    "id",
	Stub:  "stub",
}
