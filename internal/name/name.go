// Package name implements the central authority record: its typed
// classification, lifecycle status, merge pointer, derived normalized
// form, and the query surface built on top of the visible set.
package name

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type classifies what kind of entity a record describes.
type Type int

const (
	TypePersonal Type = iota
	TypeOrganization
	TypeEvent
	TypeSoftware
	TypeBuilding
)

// Valid reports whether the value is a member of the closed enum.
func (t Type) Valid() bool {
	return t >= TypePersonal && t <= TypeBuilding
}

// Label returns the display label for the type.
func (t Type) Label() string {
	switch t {
	case TypePersonal:
		return "Personal"
	case TypeOrganization:
		return "Organization"
	case TypeEvent:
		return "Event"
	case TypeSoftware:
		return "Software"
	case TypeBuilding:
		return "Building"
	default:
		return "Unknown"
	}
}

// SchemaURL returns the schema.org type for the record types that have
// one (Personal, Organization, Building); empty otherwise.
func (t Type) SchemaURL() string {
	switch t {
	case TypePersonal:
		return "http://schema.org/Person"
	case TypeOrganization:
		return "http://schema.org/Organization"
	case TypeBuilding:
		return "http://schema.org/Place"
	default:
		return ""
	}
}

// DateLabels returns the display labels for the begin and end dates,
// which read differently per record type (Date of Birth vs Founded
// Date vs Erected Date).
func (t Type) DateLabels() (begin, end string) {
	switch t {
	case TypePersonal:
		return "Date of Birth", "Date of Death"
	case TypeOrganization:
		return "Founded Date", "Defunct"
	case TypeBuilding:
		return "Erected Date", "Demolished Date"
	case TypeEvent, TypeSoftware:
		return "Begin Date", "End Date"
	default:
		return "Born/Founded Date", "Died/Defunct Date"
	}
}

// Status is the record lifecycle flag. Records are never hard-deleted;
// "deletion" flips the status and leaves the row in place.
type Status int

const (
	StatusActive Status = iota
	StatusDeleted
	StatusSuppressed
)

// Valid reports whether the value is a member of the closed enum.
func (s Status) Valid() bool {
	return s >= StatusActive && s <= StatusSuppressed
}

// Label returns the display label for the status.
func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusDeleted:
		return "Deleted"
	case StatusSuppressed:
		return "Suppressed"
	default:
		return "Unknown"
	}
}

// Name is an authority record.
//
// NameID is the public identifier token derived from a ticket at first
// save and never recomputed. NormalizedName is always the NACO
// normalization of Name as of the most recent save.
type Name struct {
	ID             int64     `json:"-"`
	NameID         string    `json:"name_id"`
	Name           string    `json:"name"`
	NormalizedName string    `json:"normalized_name"`
	Type           Type      `json:"name_type"`
	Begin          string    `json:"begin"`
	End            string    `json:"end"`
	Disambiguation string    `json:"disambiguation"`
	Biography      string    `json:"biography,omitempty"`
	Status         Status    `json:"record_status"`
	MergedWith     *string   `json:"merged_with,omitempty"` // public token of the merge target
	MergedWithID   *int64    `json:"-"`
	DateCreated    time.Time `json:"date_created"`
	LastModified   time.Time `json:"last_modified"`
}

// # Type predicates

func (n *Name) IsPersonal() bool     { return n.Type == TypePersonal }
func (n *Name) IsOrganization() bool { return n.Type == TypeOrganization }
func (n *Name) IsEvent() bool        { return n.Type == TypeEvent }
func (n *Name) IsSoftware() bool     { return n.Type == TypeSoftware }
func (n *Name) IsBuilding() bool     { return n.Type == TypeBuilding }

// # Status predicates

func (n *Name) IsActive() bool     { return n.Status == StatusActive }
func (n *Name) IsDeleted() bool    { return n.Status == StatusDeleted }
func (n *Name) IsSuppressed() bool { return n.Status == StatusSuppressed }

// IsVisible reports whether the record appears in default views: it
// must be Active and must not be merged into another record, regardless
// of status.
func (n *Name) IsVisible() bool {
	return n.IsActive() && n.MergedWithID == nil
}

// Filter holds the parameters for a paginated name search.
type Filter struct {
	// Query is matched (after normalization) against the normalized
	// name and all normalized variants.
	Query string
	// Type restricts results to one record type when non-nil.
	Type *Type
}

// StatsColumn selects which timestamp the monthly statistics bucket on.
type StatsColumn int

const (
	StatsCreated StatsColumn = iota
	StatsModified
)

// TypeCounts partitions the visible record count by type.
type TypeCounts struct {
	Total        int `json:"total"`
	Personal     int `json:"personal"`
	Organization int `json:"organization"`
	Event        int `json:"event"`
	Software     int `json:"software"`
	Building     int `json:"building"`
}

// Add folds one type's bucket into the tally. Total always advances by
// count, so it equals the sum of the buckets.
func (counts *TypeCounts) Add(t Type, count int) {
	counts.Total += count

	switch t {
	case TypePersonal:
		counts.Personal = count
	case TypeOrganization:
		counts.Organization = count
	case TypeEvent:
		counts.Event = count
	case TypeSoftware:
		counts.Software = count
	case TypeBuilding:
		counts.Building = count
	}
}

// MonthCount is one bucket of the created/modified time series.
type MonthCount struct {
	Month time.Time `json:"month"`
	Count int       `json:"count"`
}

// Stats is the payload for the statistics endpoint.
type Stats struct {
	TypeCounts TypeCounts   `json:"name_types"`
	Created    []MonthCount `json:"created_by_month"`
	Modified   []MonthCount `json:"modified_by_month"`
}

// # Read models for the detail view
//
// The name record is the aggregate root: the detail endpoint reads the
// owned rows through this package rather than fanning out to the
// per-record services.

// IdentifierView is an identifier row joined with its catalog entry.
type IdentifierView struct {
	ID        int64  `json:"id"`
	TypeLabel string `json:"type"`
	IconPath  string `json:"icon_path,omitempty"`
	Value     string `json:"value"`
}

// NoteView is a note row as exposed on the detail view.
type NoteView struct {
	ID        int64  `json:"id"`
	Note      string `json:"note"`
	NoteType  int    `json:"note_type"`
	TypeLabel string `json:"type"`
}

// VariantView is a variant row as exposed on the detail view.
type VariantView struct {
	ID          int64  `json:"id"`
	VariantType int    `json:"variant_type"`
	TypeLabel   string `json:"type"`
	Variant     string `json:"variant"`
}

// LocationView is a location row as exposed on the detail view.
type LocationView struct {
	ID        int64           `json:"id"`
	Latitude  decimal.Decimal `json:"latitude"`
	Longitude decimal.Decimal `json:"longitude"`
	Current   bool            `json:"current"`
}

// Detail is the full record view: the name row plus its owned records
// and the derived presentation fields.
type Detail struct {
	Name

	BiographyHTML string           `json:"biography_html,omitempty"`
	SchemaURL     string           `json:"schema_url,omitempty"`
	Identifiers   []IdentifierView `json:"identifiers"`
	Notes         []NoteView       `json:"notes"`
	Variants      []VariantView    `json:"variants"`
	Locations     []LocationView   `json:"locations"`
}

// MapPoint is one geocoded visible record for the map view.
type MapPoint struct {
	NameID    string          `json:"name_id"`
	Name      string          `json:"name"`
	Latitude  decimal.Decimal `json:"latitude"`
	Longitude decimal.Decimal `json:"longitude"`
	Current   bool            `json:"current"`
}

// Global field names for validation
const (
	FieldName           = "name"
	FieldNameType       = "name_type"
	FieldBegin          = "begin"
	FieldEnd            = "end"
	FieldDisambiguation = "disambiguation"
	FieldRecordStatus   = "record_status"
	FieldMergedWith     = "merged_with"
)
