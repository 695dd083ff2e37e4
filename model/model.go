// Package model defines the SKOS vocabulary domain entities and their
// field-level validation. Entities validate themselves on assembly and
// report failures as structured FieldError values.
package model

import (
	"net/url"
	"strings"
	"time"
)

// Section names used in error context.
const (
	SectionConceptScheme = "ConceptScheme"
	SectionConcept       = "Concept"
	SectionCollection    = "Collection"
)

// dateLayouts are the accepted spreadsheet date formats, normalized to
// ISO 8601 (2006-01-02) during validation.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"02.01.2006",
	"01/02/2006",
}

// ConceptScheme is the top-level metadata record describing a vocabulary.
// One per vocabulary, read from the fixed B1..B11 header block.
type ConceptScheme struct {
	URI         string
	Title       string
	Description string
	Created     string
	Modified    string
	Creator     string
	Publisher   string
	Version     string
	Provenance  string
	Custodian   string
	PID         string
}

// Validate checks all required fields. The first violation is returned as a
// *FieldError; no aggregation is performed.
func (cs *ConceptScheme) Validate() error {
	if err := requireIRI(SectionConceptScheme, "URI", cs.URI); err != nil {
		return err
	}
	if err := requireText(SectionConceptScheme, "Title", cs.Title); err != nil {
		return err
	}
	if err := requireText(SectionConceptScheme, "Description", cs.Description); err != nil {
		return err
	}
	created, err := normalizeDate(SectionConceptScheme, "Created", cs.Created)
	if err != nil {
		return err
	}
	cs.Created = created
	modified, err := normalizeDate(SectionConceptScheme, "Modified", cs.Modified)
	if err != nil {
		return err
	}
	cs.Modified = modified
	if err := requireText(SectionConceptScheme, "Creator", cs.Creator); err != nil {
		return err
	}
	if err := requireText(SectionConceptScheme, "Publisher", cs.Publisher); err != nil {
		return err
	}
	if err := requireText(SectionConceptScheme, "Version", cs.Version); err != nil {
		return err
	}
	if err := requireText(SectionConceptScheme, "Provenance", cs.Provenance); err != nil {
		return err
	}
	if err := requireText(SectionConceptScheme, "Custodian", cs.Custodian); err != nil {
		return err
	}
	if cs.PID != "" {
		if err := requireIRI(SectionConceptScheme, "PID", cs.PID); err != nil {
			return err
		}
	}
	return nil
}

// Concept is a single vocabulary term.
type Concept struct {
	URI          string
	PrefLabel    string
	AltLabels    []string
	Definition   string
	Children     []string
	OtherIDs     []string
	HomeVocabURI string
	Provenance   string
}

// Validate checks required fields and IRI well-formedness.
func (c *Concept) Validate() error {
	if err := requireIRI(SectionConcept, "Concept URI", c.URI); err != nil {
		return err
	}
	if err := requireText(SectionConcept, "Pref. Label", c.PrefLabel); err != nil {
		return err
	}
	if err := requireText(SectionConcept, "Definition", c.Definition); err != nil {
		return err
	}
	for _, child := range c.Children {
		if err := requireIRI(SectionConcept, "Children URI", child); err != nil {
			return err
		}
	}
	if c.HomeVocabURI != "" {
		if err := requireIRI(SectionConcept, "Home Vocab URI", c.HomeVocabURI); err != nil {
			return err
		}
	}
	return nil
}

// Collection groups concepts (and other collections) by URI reference.
type Collection struct {
	URI        string
	PrefLabel  string
	Definition string
	Members    []string
	Provenance string
}

// Validate checks required fields and IRI well-formedness.
func (c *Collection) Validate() error {
	if err := requireIRI(SectionCollection, "Collection URI", c.URI); err != nil {
		return err
	}
	if err := requireText(SectionCollection, "Pref. Label", c.PrefLabel); err != nil {
		return err
	}
	if err := requireText(SectionCollection, "Definition", c.Definition); err != nil {
		return err
	}
	for _, member := range c.Members {
		if err := requireIRI(SectionCollection, "Members URI", member); err != nil {
			return err
		}
	}
	return nil
}

// Vocabulary aggregates one ConceptScheme with ordered concepts and
// collections. It is built once per conversion and consumed immediately.
type Vocabulary struct {
	ConceptScheme ConceptScheme
	Concepts      []Concept
	Collections   []Collection
}

// Validate enforces vocabulary-level invariants: concept and collection URIs
// are unique, and every children/members reference resolves to a URI defined
// in this vocabulary.
func (v *Vocabulary) Validate() error {
	defined := make(map[string]bool, len(v.Concepts)+len(v.Collections))
	for _, c := range v.Concepts {
		if defined[c.URI] {
			return &DuplicateURIError{Section: SectionConcept, URI: c.URI}
		}
		defined[c.URI] = true
	}
	for _, c := range v.Collections {
		if defined[c.URI] {
			return &DuplicateURIError{Section: SectionCollection, URI: c.URI}
		}
		defined[c.URI] = true
	}
	for _, c := range v.Concepts {
		for _, child := range c.Children {
			if !defined[child] {
				return &DanglingReferenceError{Section: SectionConcept, URI: c.URI, Ref: child}
			}
		}
	}
	for _, c := range v.Collections {
		for _, member := range c.Members {
			if !defined[member] {
				return &DanglingReferenceError{Section: SectionCollection, URI: c.URI, Ref: member}
			}
		}
	}
	return nil
}

// requireText fails when value is empty or whitespace.
func requireText(entity, field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Entity: entity, Field: field, Reason: "required field is missing"}
	}
	return nil
}

// requireIRI fails when value is not an absolute http(s) IRI.
func requireIRI(entity, field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Entity: entity, Field: field, Reason: "required field is missing"}
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &FieldError{
			Entity: entity,
			Field:  field,
			Value:  value,
			Reason: "not a valid http(s) IRI",
		}
	}
	return nil
}

// normalizeDate parses value with the accepted layouts and returns the
// ISO 8601 date form.
func normalizeDate(entity, field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", &FieldError{Entity: entity, Field: field, Reason: "required field is missing"}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", &FieldError{
		Entity: entity,
		Field:  field,
		Value:  value,
		Reason: "not a recognized date",
	}
}
