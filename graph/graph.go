// Package graph provides the in-memory triple store the converter
// assembles and the optional NATS publishing of its contents.
package graph

import "fmt"

// TermKind distinguishes IRI objects from literal objects.
type TermKind int

const (
	// IRI marks an object that is a reference to another resource.
	IRI TermKind = iota

	// Literal marks a plain string object.
	Literal
)

// Term is the object position of a triple: either an IRI or a literal.
type Term struct {
	Value string
	Kind  TermKind
}

// IRITerm returns an IRI-valued term.
func IRITerm(iri string) Term { return Term{Value: iri, Kind: IRI} }

// LiteralTerm returns a literal-valued term.
func LiteralTerm(s string) Term { return Term{Value: s, Kind: Literal} }

// Triple is a single subject/predicate/object statement. Subject and
// Predicate are always IRIs.
type Triple struct {
	Subject   string
	Predicate string
	Object    Term
}

func (t Triple) String() string {
	return fmt.Sprintf("<%s> <%s> %v", t.Subject, t.Predicate, t.Object.Value)
}

// Graph is an append-only deduplicating set of triples. Insertion order
// of first occurrence is preserved so serialization is deterministic.
// There is no removal and no mutation of stored triples.
type Graph struct {
	seen    map[Triple]struct{}
	ordered []Triple
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{seen: make(map[Triple]struct{})}
}

// Add inserts a triple. Duplicate triples are ignored.
func (g *Graph) Add(t Triple) {
	if _, ok := g.seen[t]; ok {
		return
	}
	g.seen[t] = struct{}{}
	g.ordered = append(g.ordered, t)
}

// AddIRI is shorthand for adding a triple with an IRI object.
func (g *Graph) AddIRI(subject, predicate, object string) {
	g.Add(Triple{Subject: subject, Predicate: predicate, Object: IRITerm(object)})
}

// AddLiteral is shorthand for adding a triple with a literal object.
func (g *Graph) AddLiteral(subject, predicate, object string) {
	g.Add(Triple{Subject: subject, Predicate: predicate, Object: LiteralTerm(object)})
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int { return len(g.ordered) }

// All returns the triples in first-insertion order. The returned slice
// is shared; callers must not modify it.
func (g *Graph) All() []Triple { return g.ordered }

// Has reports whether the graph contains the exact triple.
func (g *Graph) Has(t Triple) bool {
	_, ok := g.seen[t]
	return ok
}
