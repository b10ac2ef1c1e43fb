// Package note holds the free-text annotations attached to a name
// record. Every type is public except Nonpublic, which only editors
// see.
package note

// Type classifies a note.
type Type int

const (
	TypeBiographical Type = iota
	TypeDeletion
	TypeNonpublic
	TypeSource
	TypeOther
)

// Valid reports whether the value is a member of the closed enum.
func (t Type) Valid() bool {
	return t >= TypeBiographical && t <= TypeOther
}

// Label returns the display label for the note type.
func (t Type) Label() string {
	switch t {
	case TypeBiographical:
		return "Biographical/Historical"
	case TypeDeletion:
		return "Deletion Information"
	case TypeNonpublic:
		return "Nonpublic"
	case TypeSource:
		return "Source"
	case TypeOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Note is one annotation row.
type Note struct {
	ID     int64  `json:"id"`
	NameID int64  `json:"-"`
	Note   string `json:"note"`
	Type   Type   `json:"note_type"`
}

// IsPublic reports whether the note appears without editor privileges.
func (n *Note) IsPublic() bool {
	return n.Type != TypeNonpublic
}

const (
	FieldNote     = "note"
	FieldNoteType = "note_type"
)
