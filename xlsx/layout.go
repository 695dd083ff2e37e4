package xlsx

// DefaultSheet is the worksheet holding the vocabulary unless --sheet says
// otherwise.
const DefaultSheet = "vocabulary"

// Section sentinels in column A. The row extractor switches sections on an
// exact match; everything below a sentinel belongs to that section until the
// next sentinel.
const (
	SentinelConcept    = "Concept URI"
	SentinelCollection = "Collection URI"
)

// Concept scheme header cells. Labels sit in column A, values in column B,
// rows 1 through 11.
var SchemeCells = []struct {
	Label string
	Ref   string
}{
	{"Concept Scheme URI", "B1"},
	{"Title", "B2"},
	{"Description", "B3"},
	{"Created", "B4"},
	{"Modified", "B5"},
	{"Creator", "B6"},
	{"Publisher", "B7"},
	{"Version", "B8"},
	{"Provenance", "B9"},
	{"Custodian", "B10"},
	{"PID", "B11"},
}

// Column headings written next to the sentinels. The extractor keys on
// position, not on these labels; they are for the curator.
var (
	ConceptColumns = []string{SentinelConcept, "Pref Label", "Alternate Labels",
		"Definition", "Children URIs", "Other IDs", "Home Vocab URI",
		"Provenance"}
	CollectionColumns = []string{SentinelCollection, "Pref Label", "Definition",
		"Members URIs", "Provenance"}
)
