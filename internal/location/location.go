// Package location holds the geographic coordinates attached to a name
// record. At most one location per record is Current; saving a Current
// location demotes every other Current sibling to Former in the same
// transaction.
package location

import "github.com/shopspring/decimal"

// Status marks a location as the record's present site or a past one.
type Status int

const (
	StatusCurrent Status = iota
	StatusFormer
)

// Valid reports whether the value is a member of the closed enum.
func (s Status) Valid() bool {
	return s == StatusCurrent || s == StatusFormer
}

// Label returns the display label for the status.
func (s Status) Label() string {
	switch s {
	case StatusCurrent:
		return "Current"
	case StatusFormer:
		return "Former"
	default:
		return "Unknown"
	}
}

// Location is one coordinate row. Coordinates are held as fixed-point
// decimals to round-trip NUMERIC(13,10) exactly.
type Location struct {
	ID        int64           `json:"id"`
	NameID    int64           `json:"-"`
	Latitude  decimal.Decimal `json:"latitude"`
	Longitude decimal.Decimal `json:"longitude"`
	Status    Status          `json:"status"`
}

// IsCurrent reports whether this is the record's present location.
func (l *Location) IsCurrent() bool {
	return l.Status == StatusCurrent
}

const (
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
	FieldStatus    = "status"
)
