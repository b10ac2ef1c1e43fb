package schema

// RefLocationTable represents the 'locations' table
type RefLocationTable struct {
	Table     string
	ID        string
	NameID    string
	Latitude  string
	Longitude string
	Status    string
}

// RefLocation is the schema definition for locations
var RefLocation = RefLocationTable{
	Table:     "locations",
	ID:        "id",
	NameID:    "name_id",
	Latitude:  "latitude",
	Longitude: "longitude",
	Status:    "status",
}
