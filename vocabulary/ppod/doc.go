// Package ppod carries the static configuration of the California PPOD
// conversion: the namespaces and class IRIs of the output graph, the
// per-sheet predicate schemas, the fixed relation-name and use-case
// tables, and the Vocabularies-sheet column layout.
//
// Everything here is data, loaded once and never mutated. The
// interpretation of these tables lives in the ingest package.
package ppod
