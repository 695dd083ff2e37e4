package skos

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	rdf2go "github.com/deiu/rdf2go"

	"github.com/LARAontologies/voc4cat-tool/model"
)

// parseMimeTypes maps RDF serialization tokens to the MIME types the parser
// understands. Tokens without an entry (xml, n3) cannot be parsed.
var parseMimeTypes = map[string]string{
	"ttl":     "text/turtle",
	"nt":      "text/turtle", // N-Triples is a subset of Turtle
	"json-ld": "application/ld+json",
}

// ErrUnparsableFormat is returned for RDF serializations the parser does not
// support.
type ErrUnparsableFormat struct {
	// Token is the serialization token, e.g. "xml".
	Token string
}

// Error implements the error interface.
func (e *ErrUnparsableFormat) Error() string {
	return fmt.Sprintf("reading RDF in %q serialization is not implemented; supported: ttl, nt, json-ld", e.Token)
}

// ParseFile reads an RDF file into a graph. The serialization token must be
// one produced by the file-ending dispatch (ttl, xml, json-ld, nt, n3).
func ParseFile(path, token string) (*rdf2go.Graph, error) {
	mime, ok := parseMimeTypes[token]
	if !ok {
		return nil, &ErrUnparsableFormat{Token: token}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open RDF file: %w", err)
	}
	defer f.Close()

	base := "file://" + filepath.ToSlash(path)
	g := rdf2go.NewGraph(base)
	if err := g.Parse(f, mime); err != nil {
		return nil, fmt.Errorf("parse RDF file %s: %w", path, err)
	}
	return g, nil
}

// ExtractVocabulary reads a SKOS vocabulary out of a parsed graph. Concepts
// and collections are ordered by URI since graphs carry no row order.
func ExtractVocabulary(g *rdf2go.Graph) (*model.Vocabulary, error) {
	schemeTriple := g.One(nil, rdf2go.NewResource(RDFType), rdf2go.NewResource(ClassConceptScheme))
	if schemeTriple == nil {
		return nil, fmt.Errorf("no skos:ConceptScheme found in graph")
	}
	schemeURI := schemeTriple.Subject.RawValue()

	cs := model.ConceptScheme{
		URI:         schemeURI,
		Title:       objectValue(g, schemeURI, DcTitle),
		Description: objectValue(g, schemeURI, DcDescription),
		Created:     objectValue(g, schemeURI, DcCreated),
		Modified:    objectValue(g, schemeURI, DcModified),
		Creator:     objectValue(g, schemeURI, DcCreator),
		Publisher:   objectValue(g, schemeURI, DcPublisher),
		Version:     objectValue(g, schemeURI, OwlVersionInfo),
		Provenance:  objectValue(g, schemeURI, PropHistoryNote),
		Custodian:   objectValue(g, schemeURI, DcatContactPoint),
		PID:         objectValue(g, schemeURI, DcIdentifier),
	}

	var concepts []model.Concept
	for _, uri := range subjectsOfType(g, ClassConcept) {
		concepts = append(concepts, model.Concept{
			URI:          uri,
			PrefLabel:    objectValue(g, uri, PropPrefLabel),
			AltLabels:    objectValues(g, uri, PropAltLabel),
			Definition:   objectValue(g, uri, PropDefinition),
			Children:     objectValues(g, uri, PropNarrower),
			OtherIDs:     objectValues(g, uri, DcIdentifier),
			HomeVocabURI: objectValue(g, uri, RdfsIsDefinedBy),
			Provenance:   objectValue(g, uri, PropHistoryNote),
		})
	}

	var collections []model.Collection
	for _, uri := range subjectsOfType(g, ClassCollection) {
		collections = append(collections, model.Collection{
			URI:        uri,
			PrefLabel:  objectValue(g, uri, PropPrefLabel),
			Definition: objectValue(g, uri, PropDefinition),
			Members:    objectValues(g, uri, PropMember),
			Provenance: objectValue(g, uri, PropHistoryNote),
		})
	}

	return &model.Vocabulary{ConceptScheme: cs, Concepts: concepts, Collections: collections}, nil
}

// SubjectsOfType returns the sorted subject IRIs carrying rdf:type class.
func SubjectsOfType(g *rdf2go.Graph, class string) []string {
	return subjectsOfType(g, class)
}

func subjectsOfType(g *rdf2go.Graph, class string) []string {
	triples := g.All(nil, rdf2go.NewResource(RDFType), rdf2go.NewResource(class))
	uris := make([]string, 0, len(triples))
	seen := make(map[string]bool, len(triples))
	for _, t := range triples {
		uri := t.Subject.RawValue()
		if !seen[uri] {
			seen[uri] = true
			uris = append(uris, uri)
		}
	}
	sort.Strings(uris)
	return uris
}

// objectValue returns the first object value for (subject, predicate), with
// language-tagged literals preferred in the default language.
func objectValue(g *rdf2go.Graph, subject, predicate string) string {
	values := objectValues(g, subject, predicate)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// objectValues returns all object values for (subject, predicate), sorted.
func objectValues(g *rdf2go.Graph, subject, predicate string) []string {
	triples := g.All(rdf2go.NewResource(subject), rdf2go.NewResource(predicate), nil)
	values := make([]string, 0, len(triples))
	for _, t := range triples {
		v := strings.TrimSpace(t.Object.RawValue())
		if v != "" {
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}
