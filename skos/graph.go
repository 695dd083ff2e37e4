// Package skos builds and serializes SKOS vocabulary graphs, and extracts
// vocabulary entities back out of parsed RDF.
package skos

import (
	"github.com/LARAontologies/voc4cat-tool/model"
)

// DefaultLanguage is the language tag attached to label and definition
// literals.
const DefaultLanguage = "en"

// Object is the object position of a triple: either an IRI reference or a
// literal with optional language tag or datatype.
type Object struct {
	Value    string
	IsIRI    bool
	Lang     string
	Datatype string
}

// IRI returns an IRI object.
func IRI(value string) Object {
	return Object{Value: value, IsIRI: true}
}

// Literal returns a plain literal object.
func Literal(value string) Object {
	return Object{Value: value}
}

// LangLiteral returns a language-tagged literal object.
func LangLiteral(value, lang string) Object {
	return Object{Value: value, Lang: lang}
}

// TypedLiteral returns a datatyped literal object.
func TypedLiteral(value, datatype string) Object {
	return Object{Value: value, Datatype: datatype}
}

// Triple is a single graph statement.
type Triple struct {
	Subject   string
	Predicate string
	Object    Object
}

// Graph holds an ordered list of triples plus the prefix map used during
// serialization. Triple order is insertion order, which makes serialized
// output deterministic for identical input.
type Graph struct {
	triples  []Triple
	prefixes map[string]string
}

// NewGraph returns an empty graph with the default SKOS prefixes.
func NewGraph() *Graph {
	return &Graph{prefixes: defaultPrefixes()}
}

// Add appends a triple to the graph.
func (g *Graph) Add(subject, predicate string, object Object) {
	g.triples = append(g.triples, Triple{Subject: subject, Predicate: predicate, Object: object})
}

// Triples returns the graph's statements in insertion order.
func (g *Graph) Triples() []Triple {
	return g.triples
}

// Len returns the number of statements in the graph.
func (g *Graph) Len() int {
	return len(g.triples)
}

// FromVocabulary builds the SKOS graph for a validated vocabulary.
//
// Concepts that are not referenced as a child of any other concept become
// top concepts of the scheme.
func FromVocabulary(v *model.Vocabulary) *Graph {
	g := NewGraph()
	cs := v.ConceptScheme

	g.Add(cs.URI, RDFType, IRI(ClassConceptScheme))
	g.Add(cs.URI, DcTitle, LangLiteral(cs.Title, DefaultLanguage))
	g.Add(cs.URI, DcDescription, LangLiteral(cs.Description, DefaultLanguage))
	g.Add(cs.URI, DcCreated, TypedLiteral(cs.Created, XsdDate))
	g.Add(cs.URI, DcModified, TypedLiteral(cs.Modified, XsdDate))
	g.Add(cs.URI, DcCreator, Literal(cs.Creator))
	g.Add(cs.URI, DcPublisher, Literal(cs.Publisher))
	g.Add(cs.URI, OwlVersionInfo, Literal(cs.Version))
	g.Add(cs.URI, PropHistoryNote, Literal(cs.Provenance))
	g.Add(cs.URI, DcatContactPoint, Literal(cs.Custodian))
	if cs.PID != "" {
		g.Add(cs.URI, DcIdentifier, IRI(cs.PID))
	}

	// A concept is a top concept when no other concept lists it as a child.
	isChild := make(map[string]bool)
	for _, c := range v.Concepts {
		for _, child := range c.Children {
			isChild[child] = true
		}
	}

	for _, c := range v.Concepts {
		g.Add(c.URI, RDFType, IRI(ClassConcept))
		g.Add(c.URI, PropPrefLabel, LangLiteral(c.PrefLabel, DefaultLanguage))
		for _, alt := range c.AltLabels {
			g.Add(c.URI, PropAltLabel, LangLiteral(alt, DefaultLanguage))
		}
		g.Add(c.URI, PropDefinition, LangLiteral(c.Definition, DefaultLanguage))
		for _, child := range c.Children {
			g.Add(c.URI, PropNarrower, IRI(child))
			g.Add(child, PropBroader, IRI(c.URI))
		}
		for _, id := range c.OtherIDs {
			g.Add(c.URI, DcIdentifier, Literal(id))
		}
		if c.HomeVocabURI != "" {
			g.Add(c.URI, RdfsIsDefinedBy, IRI(c.HomeVocabURI))
		}
		if c.Provenance != "" {
			g.Add(c.URI, PropHistoryNote, Literal(c.Provenance))
		}
		g.Add(c.URI, PropInScheme, IRI(cs.URI))
		if !isChild[c.URI] {
			g.Add(c.URI, PropTopConceptOf, IRI(cs.URI))
			g.Add(cs.URI, PropHasTopConcept, IRI(c.URI))
		}
	}

	for _, c := range v.Collections {
		g.Add(c.URI, RDFType, IRI(ClassCollection))
		g.Add(c.URI, PropPrefLabel, LangLiteral(c.PrefLabel, DefaultLanguage))
		g.Add(c.URI, PropDefinition, LangLiteral(c.Definition, DefaultLanguage))
		for _, member := range c.Members {
			g.Add(c.URI, PropMember, IRI(member))
		}
		if c.Provenance != "" {
			g.Add(c.URI, PropHistoryNote, Literal(c.Provenance))
		}
		g.Add(c.URI, PropInScheme, IRI(cs.URI))
	}

	return g
}
