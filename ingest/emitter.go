package ingest

import (
	"strings"

	"github.com/fslgroup/ppodgraph/graph"
	"github.com/fslgroup/ppodgraph/hashid"
	"github.com/fslgroup/ppodgraph/schema"
	"github.com/fslgroup/ppodgraph/vocabulary"
)

// wildcard is the sentinel cell value that expands to every member of
// an enumerable vocabulary (counties, ecoregions).
const wildcard = "All"

// Emitter turns one cell into zero or more triples according to its
// column's descriptor.
type Emitter struct {
	base     string
	registry *vocabulary.Registry
	diag     *Diagnostics

	// useCases maps recognized boolean flag predicates to the use-case
	// individual IRI the flag denotes.
	useCases map[string]string

	// useCasePred is the generic "in use case" predicate emitted in
	// place of a flag column's own predicate.
	useCasePred string
}

// NewEmitter builds an emitter over the given identifier base,
// vocabulary registry, and use-case table.
func NewEmitter(base string, reg *vocabulary.Registry, diag *Diagnostics, useCasePred string, useCases map[string]string) *Emitter {
	return &Emitter{
		base:        base,
		registry:    reg,
		diag:        diag,
		useCases:    useCases,
		useCasePred: useCasePred,
	}
}

// Emit adds the triples for one populated cell to g. subjectLabel is
// only used in diagnostics.
func (e *Emitter) Emit(g *graph.Graph, d schema.Descriptor, subject, cell, subjectLabel string) {
	// Wildcard expansion happens on the raw cell, before any splitting,
	// and only for the enumerable vocabularies. Expansion reflects the
	// dictionary's population at emission time.
	if cell == wildcard && e.registry.Enumerable(vocabulary.Name(d.Target)) {
		if dict, ok := e.registry.Get(vocabulary.Name(d.Target)); ok {
			cell = strings.Join(dict.Terms(), ",")
		}
	}

	values := []string{cell}
	if d.Multi {
		parts := strings.Split(cell, ",")
		values = values[:0]
		for _, p := range parts {
			values = append(values, strings.TrimSpace(p))
		}
	}

	for _, v := range values {
		switch d.Kind {
		case schema.KindLiteral:
			if obj, ok := e.useCases[d.IRI]; ok && (v == "X" || v == "x") {
				// Flag columns assert membership in a use case, not the
				// letter X: rewrite onto the generic predicate with the
				// use case's own IRI as object.
				g.AddIRI(subject, e.useCasePred, obj)
				continue
			}
			if d.Target == string(vocabulary.Counties) {
				v += " County"
			}
			g.AddLiteral(subject, d.IRI, v)

		case schema.KindInternalRef:
			// No existence check: forward references across sheets are
			// resolved purely by identical labels hashing identically.
			g.AddIRI(subject, d.IRI, e.base+d.Target+"_"+hashid.MakeID(v))

		case schema.KindVocabRef:
			iri, ok := e.registry.Resolve(vocabulary.Name(d.Target), v)
			if !ok {
				e.diag.Miss(subjectLabel, v, d.Target)
				continue
			}
			g.AddIRI(subject, d.IRI, iri)

		case schema.KindExternalRef:
			g.AddIRI(subject, d.IRI, v)
		}
	}
}
