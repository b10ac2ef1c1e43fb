package schema

// RefNoteTable represents the 'notes' table
type RefNoteTable struct {
	Table    string
	ID       string
	NameID   string
	Note     string
	NoteType string
}

// RefNote is the schema definition for notes
var RefNote = RefNoteTable{
	Table:    "notes",
	ID:       "id",
	NameID:   "name_id",
	Note:     "note",
	NoteType: "note_type",
}
