package schema

// RefVariantTable represents the 'variants' table
type RefVariantTable struct {
	Table             string
	ID                string
	NameID            string
	VariantType       string
	Variant           string
	NormalizedVariant string
}

// RefVariant is the schema definition for variants
var RefVariant = RefVariantTable{
	Table:             "variants",
	ID:                "id",
	NameID:            "name_id",
	VariantType:       "variant_type",
	Variant:           "variant",
	NormalizedVariant: "normalized_variant",
}
