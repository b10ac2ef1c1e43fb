// Package schema is the single source of truth for table and column
// names used by the repository layer's generated SQL.
package schema

// RefNameTable represents the 'names' table
type RefNameTable struct {
	Table          string
	ID             string
	Name           string
	NormalizedName string
	NameType       string
	BeginDate      string
	EndDate        string
	Disambiguation string
	Biography      string
	RecordStatus   string
	MergedWithID   string
	NameID         string
	DateCreated    string
	LastModified   string
}

// RefName is the schema definition for names
var RefName = RefNameTable{
	Table:          "names",
	ID:             "id",
	Name:           "name",
	NormalizedName: "normalized_name",
	NameType:       "name_type",
	BeginDate:      "begin_date",
	EndDate:        "end_date",
	Disambiguation: "disambiguation",
	Biography:      "biography",
	RecordStatus:   "record_status",
	MergedWithID:   "merged_with_id",
	NameID:         "name_id",
	DateCreated:    "date_created",
	LastModified:   "last_modified",
}

func (t RefNameTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.NormalizedName, t.NameType, t.BeginDate, t.EndDate,
		t.Disambiguation, t.Biography, t.RecordStatus, t.MergedWithID,
		t.NameID, t.DateCreated, t.LastModified,
	}
}
