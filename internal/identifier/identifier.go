// Package identifier links name records to external authority systems
// (VIAF, LCNAF, ORCID, local catalogs). The identifier types form an
// admin-managed catalog; the identifiers themselves hang off names.
package identifier

// IdentifierType is one catalog entry.
type IdentifierType struct {
	ID       int64  `json:"id"`
	Label    string `json:"label"`
	IconPath string `json:"icon_path,omitempty"`
	Homepage string `json:"homepage,omitempty"`
}

// Identifier is one external identifier on a name record. Hidden rows
// (Visible false) only appear to editors.
type Identifier struct {
	ID           int64  `json:"id"`
	NameID       int64  `json:"-"`
	TypeID       int64  `json:"type_id"`
	Value        string `json:"value"`
	Visible      bool   `json:"visible"`
	DisplayOrder int    `json:"display_order"`
}

const (
	FieldLabel        = "label"
	FieldIconPath     = "icon_path"
	FieldHomepage     = "homepage"
	FieldTypeID       = "type_id"
	FieldValue        = "value"
	FieldDisplayOrder = "display_order"
)
