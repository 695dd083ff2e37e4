// Package profile validates parsed RDF graphs against publication profiles.
// A profile is a named set of rules a vocabulary must satisfy before it is
// accepted for conversion or publication.
package profile

import (
	"fmt"
	"sort"
	"strings"

	rdf2go "github.com/deiu/rdf2go"

	"github.com/LARAontologies/voc4cat-tool/skos"
)

// Profile names one supported validation profile.
type Profile struct {
	Token string
	IRI   string
	Name  string
}

var registry = map[string]Profile{
	"vocpub": {
		Token: "vocpub",
		IRI:   "https://w3id.org/profile/vocpub",
		Name:  "VocPub",
	},
}

// DefaultToken is used when no profile is requested.
const DefaultToken = "vocpub"

// Tokens returns the supported profile tokens, sorted.
func Tokens() []string {
	tokens := make([]string, 0, len(registry))
	for t := range registry {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}

// Lookup resolves a profile token.
func Lookup(token string) (Profile, error) {
	p, ok := registry[token]
	if !ok {
		return Profile{}, fmt.Errorf("profile %q is not supported; valid profiles: %s",
			token, strings.Join(Tokens(), ", "))
	}
	return p, nil
}

// Result is the outcome of one validation run.
type Result struct {
	Conforms   bool
	Violations []string
}

// Report renders the validation outcome as text, one line per violation.
func (r *Result) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Conforms: %t\n", r.Conforms)
	for _, v := range r.Violations {
		b.WriteString("Violation: ")
		b.WriteString(v)
		b.WriteString("\n")
	}
	return b.String()
}

// rule checks one profile requirement against the graph.
type rule struct {
	message string
	check   func(g *rdf2go.Graph) bool
}

// vocpubRules covers the requirements of the VocPub profile the pipeline
// depends on. No SHACL engine is involved; each rule inspects the graph
// directly.
var vocpubRules = []rule{
	{
		message: "exactly one skos:ConceptScheme is required",
		check: func(g *rdf2go.Graph) bool {
			return len(skos.SubjectsOfType(g, skos.ClassConceptScheme)) == 1
		},
	},
	{
		message: "the skos:ConceptScheme requires a dcterms:title",
		check:   schemeHasProperty(skos.DcTitle),
	},
	{
		message: "the skos:ConceptScheme requires a dcterms:description",
		check:   schemeHasProperty(skos.DcDescription),
	},
	{
		message: "the skos:ConceptScheme requires dcterms:created and dcterms:modified dates",
		check: func(g *rdf2go.Graph) bool {
			return schemeHasProperty(skos.DcCreated)(g) && schemeHasProperty(skos.DcModified)(g)
		},
	},
	{
		message: "at least one skos:Concept is required",
		check: func(g *rdf2go.Graph) bool {
			return len(skos.SubjectsOfType(g, skos.ClassConcept)) > 0
		},
	},
	{
		message: "every skos:Concept requires a skos:prefLabel",
		check:   everyConceptHas(skos.PropPrefLabel),
	},
	{
		message: "every skos:Concept requires a skos:definition",
		check:   everyConceptHas(skos.PropDefinition),
	},
}

func schemeHasProperty(predicate string) func(g *rdf2go.Graph) bool {
	return func(g *rdf2go.Graph) bool {
		for _, uri := range skos.SubjectsOfType(g, skos.ClassConceptScheme) {
			if g.One(rdf2go.NewResource(uri), rdf2go.NewResource(predicate), nil) == nil {
				return false
			}
		}
		return true
	}
}

func everyConceptHas(predicate string) func(g *rdf2go.Graph) bool {
	return func(g *rdf2go.Graph) bool {
		for _, uri := range skos.SubjectsOfType(g, skos.ClassConcept) {
			if g.One(rdf2go.NewResource(uri), rdf2go.NewResource(predicate), nil) == nil {
				return false
			}
		}
		return true
	}
}

// Validate runs the profile's rules over the graph. An unknown token fails
// before any rule runs.
func Validate(g *rdf2go.Graph, token string) (*Result, error) {
	if _, err := Lookup(token); err != nil {
		return nil, err
	}
	res := &Result{Conforms: true}
	for _, r := range vocpubRules {
		if !r.check(g) {
			res.Conforms = false
			res.Violations = append(res.Violations, r.message)
		}
	}
	return res, nil
}
