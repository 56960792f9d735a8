// Package schema defines the per-column predicate descriptors that drive
// triple generation. Each workbook sheet has a Schema mapping its column
// headers to a Descriptor saying how that column's cells become triples.
package schema

import "fmt"

// Kind selects the rendering rule for a column's cell values.
type Kind int

const (
	// KindLiteral emits the cell value as a string literal.
	KindLiteral Kind = iota

	// KindInternalRef emits an IRI minted by hashing the cell value into
	// the target entity class's namespace.
	KindInternalRef

	// KindVocabRef resolves the cell value through a named vocabulary
	// dictionary.
	KindVocabRef

	// KindExternalRef emits the cell value itself as an IRI, typically a
	// user-supplied hyperlink.
	KindExternalRef
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindInternalRef:
		return "internal-ref"
	case KindVocabRef:
		return "vocab-ref"
	case KindExternalRef:
		return "external-ref"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Descriptor describes how one column's cell becomes one or more triples.
//
// Target is the entity-class prefix for KindInternalRef and the
// vocabulary name for KindVocabRef; it is empty for the other kinds.
// Use the constructors below rather than building Descriptors by hand:
// they keep the target/kind invariant out of reach of typos.
type Descriptor struct {
	Kind   Kind
	IRI    string // predicate IRI
	Label  string // human-readable predicate label, for rdfs:label emission
	Target string
	Multi  bool // comma-split the cell into independent values
}

// Literal returns a single-valued literal descriptor.
func Literal(iri, label string) Descriptor {
	return Descriptor{Kind: KindLiteral, IRI: iri, Label: label}
}

// LiteralMulti returns a comma-split literal descriptor.
func LiteralMulti(iri, label string) Descriptor {
	return Descriptor{Kind: KindLiteral, IRI: iri, Label: label, Multi: true}
}

// Ref returns a single-valued internal reference into the entity class
// identified by prefix (e.g. "org", "prj").
func Ref(iri, label, prefix string) Descriptor {
	return Descriptor{Kind: KindInternalRef, IRI: iri, Label: label, Target: prefix}
}

// RefMulti returns a comma-split internal reference descriptor.
func RefMulti(iri, label, prefix string) Descriptor {
	return Descriptor{Kind: KindInternalRef, IRI: iri, Label: label, Target: prefix, Multi: true}
}

// Vocab returns a single-valued controlled-vocabulary descriptor
// resolving through the named dictionary.
func Vocab(iri, label, dict string) Descriptor {
	return Descriptor{Kind: KindVocabRef, IRI: iri, Label: label, Target: dict}
}

// VocabMulti returns a comma-split controlled-vocabulary descriptor.
func VocabMulti(iri, label, dict string) Descriptor {
	return Descriptor{Kind: KindVocabRef, IRI: iri, Label: label, Target: dict, Multi: true}
}

// URL returns a single-valued external reference descriptor.
func URL(iri, label string) Descriptor {
	return Descriptor{Kind: KindExternalRef, IRI: iri, Label: label}
}

// URLMulti returns a comma-split external reference descriptor.
func URLMulti(iri, label string) Descriptor {
	return Descriptor{Kind: KindExternalRef, IRI: iri, Label: label, Multi: true}
}

// Validate checks descriptor shape: predicate IRI present, target set
// exactly when the kind requires one.
func (d Descriptor) Validate() error {
	if d.IRI == "" {
		return fmt.Errorf("descriptor %q: empty predicate IRI", d.Label)
	}
	needsTarget := d.Kind == KindInternalRef || d.Kind == KindVocabRef
	if needsTarget && d.Target == "" {
		return fmt.Errorf("descriptor %q (%s): missing target", d.Label, d.Kind)
	}
	if !needsTarget && d.Target != "" {
		return fmt.Errorf("descriptor %q (%s): unexpected target %q", d.Label, d.Kind, d.Target)
	}
	return nil
}

// Schema maps a sheet's column headers to their descriptors.
type Schema map[string]Descriptor

// Validate checks every descriptor in the schema and, through resolve,
// that every vocabulary a VocabRef names actually exists. Passing the
// registry's lookup here moves unknown-vocabulary failures from
// row-processing time to configuration-load time.
func (s Schema) Validate(resolve func(name string) bool) error {
	for col, d := range s {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("column %q: %w", col, err)
		}
		if d.Kind == KindVocabRef && resolve != nil && !resolve(d.Target) {
			return fmt.Errorf("column %q: unknown vocabulary %q", col, d.Target)
		}
	}
	return nil
}
