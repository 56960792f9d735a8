// Package export serializes an assembled triple graph to standard RDF
// text formats.
package export

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fslgroup/ppodgraph/graph"
)

// Exporter serializes graphs with a fixed namespace-prefix block. The
// prefix block is declarative only; statements are always written with
// full IRIs so output never depends on prefix coverage.
type Exporter struct {
	prefixes map[string]string
}

// NewExporter creates an exporter binding the given prefixes.
func NewExporter(prefixes map[string]string) *Exporter {
	return &Exporter{prefixes: prefixes}
}

// Export serializes the graph to the specified format. Output is
// deterministic: prefixes sort by name and statements follow the
// graph's insertion order.
func (e *Exporter) Export(g *graph.Graph, format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return e.toTurtle(g), nil
	case FormatNTriples:
		return e.toNTriples(g), nil
	case FormatJSONLD:
		return e.toJSONLD(g), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// bySubject groups triples by subject, preserving first-appearance
// order of subjects and insertion order within each group.
func bySubject(g *graph.Graph) ([]string, map[string][]graph.Triple) {
	groups := make(map[string][]graph.Triple)
	var order []string
	for _, t := range g.All() {
		if _, seen := groups[t.Subject]; !seen {
			order = append(order, t.Subject)
		}
		groups[t.Subject] = append(groups[t.Subject], t)
	}
	return order, groups
}

// toTurtle serializes to Turtle format.
func (e *Exporter) toTurtle(g *graph.Graph) string {
	var sb strings.Builder

	names := make([]string, 0, len(e.prefixes))
	for name := range e.prefixes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&sb, "@prefix %s: <%s> .\n", name, e.prefixes[name])
	}
	sb.WriteString("\n")

	subjects, groups := bySubject(g)
	for _, subj := range subjects {
		triples := groups[subj]
		fmt.Fprintf(&sb, "<%s>\n", subj)
		for i, t := range triples {
			fmt.Fprintf(&sb, "    <%s> %s", t.Predicate, formatTerm(t.Object))
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

// toNTriples serializes to N-Triples format, one statement per line in
// insertion order.
func (e *Exporter) toNTriples(g *graph.Graph) string {
	var sb strings.Builder
	for _, t := range g.All() {
		fmt.Fprintf(&sb, "<%s> <%s> %s .\n", t.Subject, t.Predicate, formatTerm(t.Object))
	}
	return sb.String()
}

// toJSONLD serializes to JSON-LD format: a @context carrying the prefix
// block and a flat @graph of subject nodes.
func (e *Exporter) toJSONLD(g *graph.Graph) string {
	var sb strings.Builder

	sb.WriteString("{\n  \"@context\": {\n")
	names := make([]string, 0, len(e.prefixes))
	for name := range e.prefixes {
		names = append(names, name)
	}
	sort.Strings(names)
	for i, name := range names {
		fmt.Fprintf(&sb, "    %s: %s", strconv.Quote(name), strconv.Quote(e.prefixes[name]))
		if i < len(names)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  },\n  \"@graph\": [\n")

	subjects, groups := bySubject(g)
	for i, subj := range subjects {
		e.writeNodeJSONLD(&sb, subj, groups[subj])
		if i < len(subjects)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("  ]\n}\n")
	return sb.String()
}

// writeNodeJSONLD writes one subject node, grouping repeated predicates
// into arrays.
func (e *Exporter) writeNodeJSONLD(sb *strings.Builder, subj string, triples []graph.Triple) {
	var predOrder []string
	objects := make(map[string][]graph.Term)
	for _, t := range triples {
		if _, seen := objects[t.Predicate]; !seen {
			predOrder = append(predOrder, t.Predicate)
		}
		objects[t.Predicate] = append(objects[t.Predicate], t.Object)
	}

	sb.WriteString("    {\n")
	fmt.Fprintf(sb, "      \"@id\": %s", strconv.Quote(subj))
	for _, pred := range predOrder {
		sb.WriteString(",\n")
		fmt.Fprintf(sb, "      %s: [", strconv.Quote(pred))
		for i, obj := range objects[pred] {
			if i > 0 {
				sb.WriteString(", ")
			}
			if obj.Kind == graph.IRI {
				fmt.Fprintf(sb, "{\"@id\": %s}", strconv.Quote(obj.Value))
			} else {
				sb.WriteString(strconv.Quote(obj.Value))
			}
		}
		sb.WriteString("]")
	}
	sb.WriteString("\n    }")
}

// formatTerm renders an object term for Turtle and N-Triples output.
func formatTerm(t graph.Term) string {
	if t.Kind == graph.IRI {
		return fmt.Sprintf("<%s>", t.Value)
	}
	return fmt.Sprintf("\"%s\"", escapeString(t.Value))
}

// escapeString escapes special characters in strings for RDF
// serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
