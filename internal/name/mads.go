package name

import "encoding/xml"

// MADS (Metadata Authority Description Schema) is the XML authority
// dialect the record detail is also published in.

const madsNamespace = "http://www.loc.gov/mads/v2"

type madsNamePart struct {
	Value string `xml:",chardata"`
}

type madsName struct {
	Type      string         `xml:"type,attr,omitempty"`
	NameParts []madsNamePart `xml:"namePart"`
}

type madsAuthority struct {
	Name madsName `xml:"name"`
}

type madsVariant struct {
	Name madsName `xml:"name"`
}

type madsIdentifier struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

type madsNote struct {
	Type  string `xml:"type,attr,omitempty"`
	Value string `xml:",chardata"`
}

type madsRecordInfo struct {
	CreationDate string `xml:"recordCreationDate"`
	ChangeDate   string `xml:"recordChangeDate"`
}

type madsRecord struct {
	XMLName     xml.Name         `xml:"mads"`
	Namespace   string           `xml:"xmlns,attr"`
	Authority   madsAuthority    `xml:"authority"`
	Variants    []madsVariant    `xml:"variant"`
	Identifiers []madsIdentifier `xml:"identifier"`
	Notes       []madsNote       `xml:"note"`
	RecordInfo  madsRecordInfo   `xml:"recordInfo"`
}

// madsNameType maps the record type onto the MADS name@type vocabulary.
// Software and Building have no MADS equivalent and are left untyped.
func madsNameType(t Type) string {
	switch t {
	case TypePersonal:
		return "personal"
	case TypeOrganization:
		return "corporate"
	case TypeEvent:
		return "conference"
	default:
		return ""
	}
}

func madsNoteType(noteType int) string {
	switch noteType {
	case 0:
		return "history"
	case 3:
		return "source"
	default:
		return ""
	}
}

// newMADSRecord builds the MADS document for a record detail view. The
// detail is expected to already be filtered to public rows.
func newMADSRecord(detail *Detail) *madsRecord {
	record := &madsRecord{
		Namespace: madsNamespace,
		Authority: madsAuthority{
			Name: madsName{
				Type:      madsNameType(detail.Type),
				NameParts: []madsNamePart{{Value: detail.Name.Name}},
			},
		},
		Identifiers: []madsIdentifier{
			{Type: "local", Value: detail.NameID},
		},
		RecordInfo: madsRecordInfo{
			CreationDate: detail.DateCreated.Format("2006-01-02"),
			ChangeDate:   detail.LastModified.Format("2006-01-02"),
		},
	}

	for _, v := range detail.Variants {
		record.Variants = append(record.Variants, madsVariant{
			Name: madsName{NameParts: []madsNamePart{{Value: v.Variant}}},
		})
	}

	for _, id := range detail.Identifiers {
		record.Identifiers = append(record.Identifiers, madsIdentifier{
			Type: id.TypeLabel, Value: id.Value,
		})
	}

	for _, n := range detail.Notes {
		record.Notes = append(record.Notes, madsNote{
			Type: madsNoteType(n.NoteType), Value: n.Note,
		})
	}

	return record
}
