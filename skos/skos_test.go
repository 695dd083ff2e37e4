package skos

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LARAontologies/voc4cat-tool/model"
)

func testVocabulary() *model.Vocabulary {
	return &model.Vocabulary{
		ConceptScheme: model.ConceptScheme{
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
		},
		Concepts: []model.Concept{
			{
				URI:        "https://example.org/voc/0001",
				PrefLabel:  "catalyst",
				AltLabels:  []string{"accelerant"},
				Definition: "A substance that speeds up a reaction.",
				Children:   []string{"https://example.org/voc/0002"},
			},
			{
				URI:        "https://example.org/voc/0002",
				PrefLabel:  "photocatalyst",
				Definition: "A catalyst activated by light.",
			},
		},
		Collections: []model.Collection{
			{
				URI:        "https://example.org/voc/coll-1",
				PrefLabel:  "catalyst types",
				Definition: "All catalyst concepts.",
				Members:    []string{"https://example.org/voc/0001", "https://example.org/voc/0002"},
			},
		},
	}
}

func TestFromVocabulary_TopConcepts(t *testing.T) {
	g := FromVocabulary(testVocabulary())

	var topConceptOf, hasTopConcept, narrower, broader []Triple
	for _, tr := range g.Triples() {
		switch tr.Predicate {
		case PropTopConceptOf:
			topConceptOf = append(topConceptOf, tr)
		case PropHasTopConcept:
			hasTopConcept = append(hasTopConcept, tr)
		case PropNarrower:
			narrower = append(narrower, tr)
		case PropBroader:
			broader = append(broader, tr)
		}
	}

	// 0002 is a child of 0001, so only 0001 is a top concept
	require.Len(t, topConceptOf, 1)
	assert.Equal(t, "https://example.org/voc/0001", topConceptOf[0].Subject)
	require.Len(t, hasTopConcept, 1)
	assert.Equal(t, "https://example.org/voc/0001", hasTopConcept[0].Object.Value)

	require.Len(t, narrower, 1)
	require.Len(t, broader, 1)
	assert.Equal(t, "https://example.org/voc/0002", broader[0].Subject)
	assert.Equal(t, "https://example.org/voc/0001", broader[0].Object.Value)
}

func TestSerialize_Turtle(t *testing.T) {
	g := FromVocabulary(testVocabulary())

	out, err := g.Serialize(FormatTurtle)
	require.NoError(t, err)

	assert.Contains(t, out, "@prefix skos: <http://www.w3.org/2004/02/skos/core#> .")
	assert.Contains(t, out, "<https://example.org/voc>")
	assert.Contains(t, out, `skos:prefLabel "catalyst"@en`)
	assert.Contains(t, out, `"2024-01-15"^^xsd:date`)
	assert.Contains(t, out, "skos:member <https://example.org/voc/0001>")
	// prefix header is sorted, so dcterms comes before skos
	assert.Less(t, strings.Index(out, "@prefix dcterms:"), strings.Index(out, "@prefix skos:"))
}

func TestSerialize_Deterministic(t *testing.T) {
	first, err := FromVocabulary(testVocabulary()).Serialize(FormatTurtle)
	require.NoError(t, err)
	second, err := FromVocabulary(testVocabulary()).Serialize(FormatTurtle)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	nt1, err := FromVocabulary(testVocabulary()).Serialize(FormatNTriples)
	require.NoError(t, err)
	nt2, err := FromVocabulary(testVocabulary()).Serialize(FormatNTriples)
	require.NoError(t, err)
	assert.Equal(t, nt1, nt2)
}

func TestSerialize_EscapesLiterals(t *testing.T) {
	g := NewGraph()
	g.Add("https://example.org/s", PropDefinition,
		LangLiteral("a \"quoted\" value\nwith newline", "en"))

	out, err := g.Serialize(FormatNTriples)
	require.NoError(t, err)
	assert.Contains(t, out, `"a \"quoted\" value\nwith newline"@en`)
}

func TestSerialize_UnsupportedFormat(t *testing.T) {
	_, err := NewGraph().Serialize(Format("rdfxml"))
	require.Error(t, err)
}

func TestParseFile_RoundTrip(t *testing.T) {
	voc := testVocabulary()
	path := filepath.Join(t.TempDir(), "voc.ttl")
	require.NoError(t, FromVocabulary(voc).WriteFile(path, FormatTurtle))

	g, err := ParseFile(path, "ttl")
	require.NoError(t, err)

	got, err := ExtractVocabulary(g)
	require.NoError(t, err)

	assert.Equal(t, voc.ConceptScheme.URI, got.ConceptScheme.URI)
	assert.Equal(t, voc.ConceptScheme.Title, got.ConceptScheme.Title)
	assert.Equal(t, voc.ConceptScheme.Created, got.ConceptScheme.Created)
	assert.Equal(t, voc.ConceptScheme.Version, got.ConceptScheme.Version)

	require.Len(t, got.Concepts, 2)
	// extraction orders by URI
	assert.Equal(t, "https://example.org/voc/0001", got.Concepts[0].URI)
	assert.Equal(t, "catalyst", got.Concepts[0].PrefLabel)
	assert.Equal(t, []string{"accelerant"}, got.Concepts[0].AltLabels)
	assert.Equal(t, []string{"https://example.org/voc/0002"}, got.Concepts[0].Children)

	require.Len(t, got.Collections, 1)
	assert.Equal(t, []string{
		"https://example.org/voc/0001",
		"https://example.org/voc/0002",
	}, got.Collections[0].Members)
}

func TestParseFile_UnsupportedSerialization(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voc.rdf")
	require.NoError(t, os.WriteFile(path, []byte("<rdf/>"), 0644))

	_, err := ParseFile(path, "xml")
	require.Error(t, err)

	var unparsable *ErrUnparsableFormat
	require.ErrorAs(t, err, &unparsable)
	assert.Equal(t, "xml", unparsable.Token)
}

func TestParseFile_NTriples(t *testing.T) {
	nt, err := FromVocabulary(testVocabulary()).Serialize(FormatNTriples)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "voc.nt")
	require.NoError(t, os.WriteFile(path, []byte(nt), 0644))

	g, err := ParseFile(path, "nt")
	require.NoError(t, err)
	got, err := ExtractVocabulary(g)
	require.NoError(t, err)
	assert.Len(t, got.Concepts, 2)
}
