package skos

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"
)

// Serialize renders the graph in the requested format. Output is
// deterministic: prefixes are sorted and subjects appear in first-insertion
// order.
func (g *Graph) Serialize(format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return g.toTurtle(), nil
	case FormatNTriples:
		return g.toNTriples(), nil
	case FormatJSONLD:
		return g.toJSONLD(), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteFile serializes the graph and writes it to path.
func (g *Graph) WriteFile(path string, format Format) error {
	out, err := g.Serialize(format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return fmt.Errorf("write RDF file: %w", err)
	}
	return nil
}

// subjectGroups returns subjects in first-insertion order with their triples.
func (g *Graph) subjectGroups() ([]string, map[string][]Triple) {
	order := make([]string, 0)
	grouped := make(map[string][]Triple)
	for _, t := range g.triples {
		if _, seen := grouped[t.Subject]; !seen {
			order = append(order, t.Subject)
		}
		grouped[t.Subject] = append(grouped[t.Subject], t)
	}
	return order, grouped
}

// sortedPrefixes returns prefix names in sorted order.
func (g *Graph) sortedPrefixes() []string {
	keys := make([]string, 0, len(g.prefixes))
	for k := range g.prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// toTurtle serializes to Turtle format.
func (g *Graph) toTurtle() string {
	var sb strings.Builder

	for _, prefix := range g.sortedPrefixes() {
		fmt.Fprintf(&sb, "@prefix %s: <%s> .\n", prefix, g.prefixes[prefix])
	}
	sb.WriteString("\n")

	order, grouped := g.subjectGroups()
	for _, subject := range order {
		triples := grouped[subject]
		fmt.Fprintf(&sb, "<%s>\n", subject)
		for i, t := range triples {
			fmt.Fprintf(&sb, "    %s %s", g.shorten(t.Predicate), g.formatObjectTurtle(t.Object))
			if i < len(triples)-1 {
				sb.WriteString(" ;\n")
			} else {
				sb.WriteString(" .\n")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// toNTriples serializes to N-Triples format.
func (g *Graph) toNTriples() string {
	var sb strings.Builder
	for _, t := range g.triples {
		fmt.Fprintf(&sb, "<%s> <%s> %s .\n", t.Subject, t.Predicate, formatObjectNTriples(t.Object))
	}
	return sb.String()
}

// toJSONLD serializes to JSON-LD format.
func (g *Graph) toJSONLD() string {
	var sb strings.Builder

	sb.WriteString("{\n")
	sb.WriteString("  \"@context\": {\n")
	prefixes := g.sortedPrefixes()
	for i, prefix := range prefixes {
		fmt.Fprintf(&sb, "    %q: %q", prefix, g.prefixes[prefix])
		if i < len(prefixes)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  },\n")
	sb.WriteString("  \"@graph\": [\n")

	order, grouped := g.subjectGroups()
	for i, subject := range order {
		g.writeSubjectJSONLD(&sb, subject, grouped[subject])
		if i < len(order)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("  ]\n")
	sb.WriteString("}\n")

	return sb.String()
}

// writeSubjectJSONLD writes one subject node in JSON-LD format.
func (g *Graph) writeSubjectJSONLD(sb *strings.Builder, subject string, triples []Triple) {
	sb.WriteString("    {\n")
	fmt.Fprintf(sb, "      \"@id\": %q", subject)
	for _, t := range triples {
		sb.WriteString(",\n")
		fmt.Fprintf(sb, "      %q: %s", t.Predicate, formatObjectJSONLD(t.Object))
	}
	sb.WriteString("\n    }")
}

// shorten compacts an IRI to prefix:local when a registered prefix matches.
func (g *Graph) shorten(iri string) string {
	for _, prefix := range g.sortedPrefixes() {
		ns := g.prefixes[prefix]
		if strings.HasPrefix(iri, ns) {
			local := iri[len(ns):]
			if local != "" && !strings.ContainsAny(local, "/#") {
				return prefix + ":" + local
			}
		}
	}
	return "<" + iri + ">"
}

// formatObjectTurtle formats an object value for Turtle output.
func (g *Graph) formatObjectTurtle(o Object) string {
	if o.IsIRI {
		return "<" + o.Value + ">"
	}
	lit := "\"" + escapeString(o.Value) + "\""
	if o.Lang != "" {
		return lit + "@" + o.Lang
	}
	if o.Datatype != "" {
		return lit + "^^" + g.shorten(o.Datatype)
	}
	return lit
}

// formatObjectNTriples formats an object value for N-Triples output.
func formatObjectNTriples(o Object) string {
	if o.IsIRI {
		return "<" + o.Value + ">"
	}
	lit := "\"" + escapeString(o.Value) + "\""
	if o.Lang != "" {
		return lit + "@" + o.Lang
	}
	if o.Datatype != "" {
		return lit + "^^<" + o.Datatype + ">"
	}
	return lit
}

// formatObjectJSONLD formats an object value for JSON-LD output.
func formatObjectJSONLD(o Object) string {
	if o.IsIRI {
		return fmt.Sprintf("{\"@id\": %q}", o.Value)
	}
	if o.Lang != "" {
		return fmt.Sprintf("{\"@value\": \"%s\", \"@language\": \"%s\"}", escapeString(o.Value), o.Lang)
	}
	if o.Datatype != "" {
		return fmt.Sprintf("{\"@value\": \"%s\", \"@type\": \"%s\"}", escapeString(o.Value), o.Datatype)
	}
	return "\"" + escapeString(o.Value) + "\""
}

// escapeString escapes special characters for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
