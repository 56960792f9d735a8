// Package vocabulary provides controlled-vocabulary dictionaries mapping
// term strings from workbook cells to IRIs, and a registry enumerating
// the dictionaries a conversion run knows about.
package vocabulary

import (
	"sort"

	"github.com/fslgroup/ppodgraph/hashid"
)

// Dictionary maps controlled-vocabulary terms to IRIs. Keys are the
// exact strings expected in source cells; lookups are case- and
// whitespace-sensitive. Dictionaries are built once before ingestion
// and read-only afterwards.
type Dictionary struct {
	name  Name
	terms map[string]string
}

// Pair is one term/IRI row from an external lookup table.
type Pair struct {
	Term string
	IRI  string
}

// FromPairs builds a dictionary from a two-column lookup table. Later
// duplicate terms overwrite earlier ones (last-row-wins), matching the
// producing scripts' convention.
func FromPairs(name Name, pairs []Pair) *Dictionary {
	d := &Dictionary{name: name, terms: make(map[string]string, len(pairs))}
	for _, p := range pairs {
		if p.Term == "" {
			continue
		}
		d.terms[p.Term] = p.IRI
	}
	return d
}

// FromColumn builds a dictionary by hashing each distinct non-empty
// value in a vocabulary listing column: term -> base + prefix + "_" +
// MakeID(term). skip drops leading rows (some columns carry a header or
// blank first cell).
func FromColumn(name Name, values []string, base, prefix string, skip int) *Dictionary {
	d := &Dictionary{name: name, terms: make(map[string]string)}
	for i, v := range values {
		if i < skip || v == "" {
			continue
		}
		d.terms[v] = base + prefix + "_" + hashid.MakeID(v)
	}
	return d
}

// FromTerms builds a dictionary from an explicit term→IRI map. Used for
// vocabularies whose IRIs follow a naming scheme other than hashing
// (e.g. CWHR habitat codes).
func FromTerms(name Name, terms map[string]string) *Dictionary {
	d := &Dictionary{name: name, terms: make(map[string]string, len(terms))}
	for term, iri := range terms {
		if term == "" {
			continue
		}
		d.terms[term] = iri
	}
	return d
}

// Merge combines dictionaries under a new name; later arguments win on
// duplicate terms.
func Merge(name Name, dicts ...*Dictionary) *Dictionary {
	d := &Dictionary{name: name, terms: make(map[string]string)}
	for _, src := range dicts {
		for term, iri := range src.terms {
			d.terms[term] = iri
		}
	}
	return d
}

// Name returns the registry name of the dictionary.
func (d *Dictionary) Name() Name { return d.name }

// Lookup resolves a term to its IRI. A miss is not fatal: callers
// report it and skip the triple.
func (d *Dictionary) Lookup(term string) (string, bool) {
	iri, ok := d.terms[term]
	return iri, ok
}

// Len returns the number of terms.
func (d *Dictionary) Len() int { return len(d.terms) }

// Terms returns all terms in sorted order. Sorting keeps wildcard
// expansion and label emission deterministic across runs.
func (d *Dictionary) Terms() []string {
	out := make([]string, 0, len(d.terms))
	for term := range d.terms {
		out = append(out, term)
	}
	sort.Strings(out)
	return out
}
