package schema

// RefIdentifierTypeTable represents the 'identifier_types' table
type RefIdentifierTypeTable struct {
	Table    string
	ID       string
	Label    string
	IconPath string
	Homepage string
}

// RefIdentifierType is the schema definition for identifier_types
var RefIdentifierType = RefIdentifierTypeTable{
	Table:    "identifier_types",
	ID:       "id",
	Label:    "label",
	IconPath: "icon_path",
	Homepage: "homepage",
}

// RefIdentifierTable represents the 'identifiers' table
type RefIdentifierTable struct {
	Table        string
	ID           string
	NameID       string
	TypeID       string
	Value        string
	Visible      string
	DisplayOrder string
}

// RefIdentifier is the schema definition for identifiers
var RefIdentifier = RefIdentifierTable{
	Table:        "identifiers",
	ID:           "id",
	NameID:       "name_id",
	TypeID:       "type_id",
	Value:        "value",
	Visible:      "visible",
	DisplayOrder: "display_order",
}
