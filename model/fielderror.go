package model

import "fmt"

// FieldError reports a single field that failed domain validation.
// It carries structured context so callers can add row/section information
// without parsing error strings.
type FieldError struct {
	// Entity is the entity kind, e.g. "ConceptScheme", "Concept", "Collection".
	Entity string

	// Field is the field name as it appears in the spreadsheet template.
	Field string

	// Value is the offending raw value (may be empty for missing fields).
	Value string

	// Reason describes why validation failed.
	Reason string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s field %q: %s (got %q)", e.Entity, e.Field, e.Reason, e.Value)
	}
	return fmt.Sprintf("%s field %q: %s", e.Entity, e.Field, e.Reason)
}

// DuplicateURIError reports a concept or collection URI that appears more
// than once in a vocabulary.
type DuplicateURIError struct {
	// Section is "Concept" or "Collection".
	Section string

	// URI is the duplicated identifier.
	URI string
}

// Error implements the error interface.
func (e *DuplicateURIError) Error() string {
	return fmt.Sprintf("duplicate %s URI %q", e.Section, e.URI)
}

// DanglingReferenceError reports a children/members entry that references a
// URI not defined in the vocabulary.
type DanglingReferenceError struct {
	// Section is "Concept" or "Collection".
	Section string

	// URI is the referencing entity.
	URI string

	// Ref is the unresolved reference.
	Ref string
}

// Error implements the error interface.
func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("%s %q references %q which is not defined in the vocabulary", e.Section, e.URI, e.Ref)
}
