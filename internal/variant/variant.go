// Package variant holds the alternate forms of a name record. Each
// variant carries a normalized form that search matches against,
// recomputed from the display form on every save.
package variant

// Type classifies a variant form.
type Type int

const (
	TypeAcronym Type = iota
	TypeAbbreviation
	TypeTranslation
	TypeExpansion
	TypeOther
)

// Valid reports whether the value is a member of the closed enum.
func (t Type) Valid() bool {
	return t >= TypeAcronym && t <= TypeOther
}

// Label returns the display label for the variant type.
func (t Type) Label() string {
	switch t {
	case TypeAcronym:
		return "Acronym"
	case TypeAbbreviation:
		return "Abbreviation"
	case TypeTranslation:
		return "Translation"
	case TypeExpansion:
		return "Expansion"
	case TypeOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Variant is one alternate form row.
type Variant struct {
	ID                int64  `json:"id"`
	NameID            int64  `json:"-"`
	Type              Type   `json:"variant_type"`
	Variant           string `json:"variant"`
	NormalizedVariant string `json:"normalized_variant"`
}

const (
	FieldVariant     = "variant"
	FieldVariantType = "variant_type"
)
