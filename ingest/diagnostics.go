package ingest

import (
	"fmt"
	"io"
	"sync"
)

// Diagnostics collects the advisory output of a conversion run:
// vocabulary lookup misses and skipped relation rows. Misses are not
// fatal; the line stream exists so the source data can be located and
// fixed.
type Diagnostics struct {
	mu        sync.Mutex
	w         io.Writer
	misses    int
	rowErrors int
}

// NewDiagnostics writes diagnostic lines to w. A nil writer discards
// the lines but still counts them.
func NewDiagnostics(w io.Writer) *Diagnostics {
	return &Diagnostics{w: w}
}

// Miss records a vocabulary lookup failure. The line format is fixed;
// downstream tooling greps for it.
func (d *Diagnostics) Miss(entityLabel, value, dictName string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.misses++
	if d.w != nil {
		fmt.Fprintf(d.w, "%s: %s not in %s\n", entityLabel, value, dictName)
	}
}

// RowError records a skipped relation row (e.g. an unknown relation
// name in a triple-encoded sheet).
func (d *Diagnostics) RowError(sheet string, row int, msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rowErrors++
	if d.w != nil {
		fmt.Fprintf(d.w, "%s row %d: %s\n", sheet, row+1, msg)
	}
}

// Misses returns the number of vocabulary misses recorded.
func (d *Diagnostics) Misses() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.misses
}

// RowErrors returns the number of skipped relation rows.
func (d *Diagnostics) RowErrors() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rowErrors
}
