package convert

import (
	"fmt"
	"strings"
)

// Kind classifies a conversion failure.
type Kind string

const (
	// KindConfig covers bad input files, unknown extensions, template
	// version mismatches and unknown profiles.
	KindConfig Kind = "config"
	// KindField covers a cell value that fails domain validation.
	KindField Kind = "field"
	// KindConformance covers RDF that fails a profile validation gate.
	KindConformance Kind = "conformance"
	// KindNotImplemented covers requested operations the tool cannot
	// perform, such as parsing RDF/XML.
	KindNotImplemented Kind = "not-implemented"
)

// ConversionError is the error type surfaced by the conversion orchestrators.
// It locates the failure (section, row, field) when one cell is to blame,
// and carries the full validator report for conformance failures.
type ConversionError struct {
	Kind    Kind
	Section string
	Row     int
	Field   string
	Reason  string
	Report  string
	Err     error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Section != "" {
		fmt.Fprintf(&b, " [%s]", e.Section)
	}
	if e.Row > 0 {
		fmt.Fprintf(&b, " row %d", e.Row)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " field %q", e.Field)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	if e.Report != "" {
		b.WriteString("\n")
		b.WriteString(e.Report)
	}
	return b.String()
}

// Unwrap exposes the wrapped error for errors.Is/As.
func (e *ConversionError) Unwrap() error { return e.Err }

func configErrorf(format string, args ...any) *ConversionError {
	return &ConversionError{Kind: KindConfig, Reason: fmt.Sprintf(format, args...)}
}
