package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validScheme() ConceptScheme {
	return ConceptScheme{
		URI:         "https://example.org/voc",
		Title:       "Test Vocabulary",
		Description: "A vocabulary used in tests.",
		Created:     "2024-01-15",
		Modified:    "2024-06-01",
		Creator:     "Jane Doe",
		Publisher:   "Example Org",
		Version:     "1.0",
		Provenance:  "Curated by hand",
		Custodian:   "Jane Doe",
	}
}

func TestConceptScheme_Validate(t *testing.T) {
	cs := validScheme()
	require.NoError(t, cs.Validate())
}

func TestConceptScheme_Validate_MissingTitle(t *testing.T) {
	cs := validScheme()
	cs.Title = "  "

	err := cs.Validate()
	require.Error(t, err)

	ferr, ok := err.(*FieldError)
	require.True(t, ok)
	assert.Equal(t, SectionConceptScheme, ferr.Entity)
	assert.Equal(t, "Title", ferr.Field)
}

func TestConceptScheme_Validate_NormalizesDates(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"iso date", "2024-01-15", "2024-01-15"},
		{"datetime cell text", "2024-01-15 00:00:00", "2024-01-15"},
		{"dotted date", "15.01.2024", "2024-01-15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := validScheme()
			cs.Created = tt.in
			require.NoError(t, cs.Validate())
			assert.Equal(t, tt.want, cs.Created)
		})
	}
}

func TestConceptScheme_Validate_BadDate(t *testing.T) {
	cs := validScheme()
	cs.Modified = "next tuesday"

	err := cs.Validate()
	require.Error(t, err)
	ferr := err.(*FieldError)
	assert.Equal(t, "Modified", ferr.Field)
	assert.Equal(t, "next tuesday", ferr.Value)
}

func TestConceptScheme_Validate_PIDOptionalButChecked(t *testing.T) {
	cs := validScheme()
	cs.PID = ""
	require.NoError(t, cs.Validate())

	cs.PID = "not-an-iri"
	err := cs.Validate()
	require.Error(t, err)
	assert.Equal(t, "PID", err.(*FieldError).Field)
}

func TestConcept_Validate(t *testing.T) {
	c := Concept{
		URI:        "https://example.org/voc/0001",
		PrefLabel:  "catalyst",
		Definition: "A substance that speeds up a reaction.",
		Children:   []string{"https://example.org/voc/0002"},
	}
	require.NoError(t, c.Validate())
}

func TestConcept_Validate_BadChildIRI(t *testing.T) {
	c := Concept{
		URI:        "https://example.org/voc/0001",
		PrefLabel:  "catalyst",
		Definition: "A substance that speeds up a reaction.",
		Children:   []string{"ftp://example.org/nope"},
	}

	err := c.Validate()
	require.Error(t, err)
	ferr := err.(*FieldError)
	assert.Equal(t, SectionConcept, ferr.Entity)
	assert.Equal(t, "Children URI", ferr.Field)
}

func TestCollection_Validate_MissingDefinition(t *testing.T) {
	c := Collection{
		URI:       "https://example.org/voc/coll-1",
		PrefLabel: "metals",
	}

	err := c.Validate()
	require.Error(t, err)
	assert.Equal(t, "Definition", err.(*FieldError).Field)
}

func TestVocabulary_Validate_DuplicateURI(t *testing.T) {
	v := Vocabulary{
		ConceptScheme: validScheme(),
		Concepts: []Concept{
			{URI: "https://example.org/voc/0001", PrefLabel: "a", Definition: "d"},
			{URI: "https://example.org/voc/0001", PrefLabel: "b", Definition: "d"},
		},
	}

	err := v.Validate()
	require.Error(t, err)

	var dup *DuplicateURIError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "https://example.org/voc/0001", dup.URI)
	assert.Equal(t, SectionConcept, dup.Section)
}

func TestVocabulary_Validate_DuplicateAcrossSections(t *testing.T) {
	v := Vocabulary{
		Concepts: []Concept{
			{URI: "https://example.org/voc/0001", PrefLabel: "a", Definition: "d"},
		},
		Collections: []Collection{
			{URI: "https://example.org/voc/0001", PrefLabel: "c", Definition: "d"},
		},
	}

	var dup *DuplicateURIError
	require.ErrorAs(t, v.Validate(), &dup)
	assert.Equal(t, SectionCollection, dup.Section)
}

func TestVocabulary_Validate_DanglingChild(t *testing.T) {
	v := Vocabulary{
		Concepts: []Concept{
			{
				URI: "https://example.org/voc/0001", PrefLabel: "a", Definition: "d",
				Children: []string{"https://example.org/voc/9999"},
			},
		},
	}

	var dangling *DanglingReferenceError
	require.ErrorAs(t, v.Validate(), &dangling)
	assert.Equal(t, "https://example.org/voc/9999", dangling.Ref)
}

func TestVocabulary_Validate_MemberMayReferenceCollection(t *testing.T) {
	v := Vocabulary{
		Concepts: []Concept{
			{URI: "https://example.org/voc/0001", PrefLabel: "a", Definition: "d"},
		},
		Collections: []Collection{
			{
				URI: "https://example.org/voc/coll-1", PrefLabel: "c", Definition: "d",
				Members: []string{"https://example.org/voc/0001", "https://example.org/voc/coll-2"},
			},
			{URI: "https://example.org/voc/coll-2", PrefLabel: "c2", Definition: "d"},
		},
	}
	require.NoError(t, v.Validate())
}
