package ingest

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/fslgroup/ppodgraph/graph"
	"github.com/fslgroup/ppodgraph/table"
	"github.com/fslgroup/ppodgraph/vocabulary"
	"github.com/fslgroup/ppodgraph/vocabulary/ppod"
)

// Source bundles the input tables of one conversion run: the workbook
// itself plus the three external lookup tables the vocabularies draw
// from. The counties table carries IRIs in column A and terms in column
// B; the commodities table the reverse; the habitat table is a single
// column of CWHR type names.
type Source struct {
	Workbook    *table.Workbook
	Counties    *table.Table
	Commodities *table.Table
	Habitats    *table.Table
}

// Options tunes a run. The zero value converts under the default PPOD
// namespace, discards diagnostics lines, and stays silent.
type Options struct {
	Base        string
	Diagnostics io.Writer
	Logger      *slog.Logger
}

// Result is the outcome of a run. The graph is populated even when the
// returned error is non-nil; sheet-level failures abort only their own
// sheet.
type Result struct {
	Graph     *graph.Graph
	Registry  *vocabulary.Registry
	Misses    int
	RowErrors int
}

// BuildRegistry constructs every vocabulary dictionary from the
// workbook's listing sheets and the external lookup tables, registered
// in the order their label triples are emitted.
func BuildRegistry(src Source, base string) (*vocabulary.Registry, error) {
	vocab, ok := src.Workbook.Table(ppod.SheetVocabularies)
	if !ok {
		return nil, fmt.Errorf("workbook: missing sheet %q", ppod.SheetVocabularies)
	}
	intIssues, ok := src.Workbook.Table(ppod.SheetIssuesIntegrated)
	if !ok {
		return nil, fmt.Errorf("workbook: missing sheet %q", ppod.SheetIssuesIntegrated)
	}
	compIssues, ok := src.Workbook.Table(ppod.SheetIssuesComponent)
	if !ok {
		return nil, fmt.Errorf("workbook: missing sheet %q", ppod.SheetIssuesComponent)
	}
	switch {
	case src.Counties == nil:
		return nil, errors.New("missing counties lookup table")
	case src.Commodities == nil:
		return nil, errors.New("missing commodities lookup table")
	case src.Habitats == nil:
		return nil, errors.New("missing habitat lookup table")
	}

	cols := ppod.VocabColumns()
	fromCol := func(vc ppod.VocabColumn) *vocabulary.Dictionary {
		return vocabulary.FromColumn(vc.Name, vocab.Column(vc.Column), base, vc.Prefix, vc.Skip)
	}

	// Registration order is label-emission order: the ecoregion column
	// first, then the externally-sourced dictionaries, then the rest of
	// the vocabulary sheet, with commodities last.
	dicts := []*vocabulary.Dictionary{
		fromCol(cols[0]),
		issuesDict(intIssues, compIssues),
		vocabulary.FromPairs(vocabulary.Counties, rawPairs(src.Counties, 1, 0)),
		habitatDict(src.Habitats, base),
	}
	for _, vc := range cols[1:] {
		dicts = append(dicts, fromCol(vc))
	}
	dicts = append(dicts, vocabulary.FromPairs(vocabulary.Commodities, rawPairs(src.Commodities, 0, 1)))

	reg := vocabulary.NewRegistry()
	for _, d := range dicts {
		if err := reg.Add(d); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// issuesDict merges the component and integrated issue listings into a
// single dictionary; integrated terms win on collision.
func issuesDict(integrated, component *table.Table) *vocabulary.Dictionary {
	return vocabulary.Merge(vocabulary.Issues,
		vocabulary.FromPairs(vocabulary.Issues, prefixedPairs(component, ppod.CompIssuePrefix)),
		vocabulary.FromPairs(vocabulary.Issues, prefixedPairs(integrated, ppod.IntIssuePrefix)),
	)
}

// prefixedPairs reads an issues listing positionally: column A holds the
// IRI suffix, column B the term.
func prefixedPairs(t *table.Table, prefix string) []vocabulary.Pair {
	pairs := make([]vocabulary.Pair, 0, t.Len())
	for r := 0; r < t.Len(); r++ {
		pairs = append(pairs, vocabulary.Pair{
			Term: t.CellAt(r, 1),
			IRI:  prefix + t.CellAt(r, 0),
		})
	}
	return pairs
}

// rawPairs reads a two-column lookup table positionally, taking the term
// and IRI from the given column positions.
func rawPairs(t *table.Table, termCol, iriCol int) []vocabulary.Pair {
	pairs := make([]vocabulary.Pair, 0, t.Len())
	for r := 0; r < t.Len(); r++ {
		pairs = append(pairs, vocabulary.Pair{
			Term: t.CellAt(r, termCol),
			IRI:  t.CellAt(r, iriCol),
		})
	}
	return pairs
}

// habitatDict maps each CWHR habitat type name to an IRI carrying the
// name itself rather than a hash; the published habitat identifiers
// predate the hashing scheme.
func habitatDict(t *table.Table, base string) *vocabulary.Dictionary {
	terms := make(map[string]string, t.Len())
	for r := 0; r < t.Len(); r++ {
		name := t.CellAt(r, 0)
		if name == "" {
			continue
		}
		terms[name] = base + ppod.PrefixHabitatType + "_" + name
	}
	return vocabulary.FromTerms(vocabulary.HabitatTypes, terms)
}

// Run executes one full conversion: build the vocabularies, validate
// the sheet schemas against them, emit the label triples, then ingest
// every sheet in the fixed order. A missing sheet or a column without a
// descriptor fails that sheet and is folded into the returned error;
// the rest of the workbook still converts.
func Run(src Source, opts Options) (*Result, error) {
	base := opts.Base
	if base == "" {
		base = ppod.AuxPrefix
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	reg, err := BuildRegistry(src, base)
	if err != nil {
		return nil, err
	}
	for _, s := range ppod.SchemasInLabelOrder() {
		if err := s.Validate(reg.Has); err != nil {
			return nil, fmt.Errorf("schema validation: %w", err)
		}
	}

	diag := NewDiagnostics(opts.Diagnostics)
	em := NewEmitter(base, reg, diag, ppod.UseCasePredicate, useCaseIRIs())
	ing := NewIngester(IngesterConfig{
		Base:           base,
		TypePredicate:  ppod.RDFType,
		LabelPredicate: ppod.RDFSLabel,
		RoleClass:      ppod.ClassRole,
		RolePrefix:     ppod.PrefixRole,
	}, em, reg, diag)

	g := graph.New()
	addVocabularyLabels(g, reg)
	addPredicateLabels(g)
	addUseCaseLabels(g)

	var errs []error
	run := func(name string, fn func(t *table.Table) error) {
		t, ok := src.Workbook.Table(name)
		if !ok {
			errs = append(errs, fmt.Errorf("workbook: missing sheet %q", name))
			return
		}
		if err := fn(t); err != nil {
			errs = append(errs, err)
			return
		}
		log.Debug("ingested sheet", "sheet", name, "rows", t.Len())
	}
	run(ppod.SheetOrganizations, func(t *table.Table) error {
		return ing.IngestEntities(g, t, ppod.Organizations, ppod.ClassOrganization, ppod.PrefixOrg)
	})
	run(ppod.SheetPrograms, func(t *table.Table) error {
		return ing.IngestEntities(g, t, ppod.Programs, ppod.ClassProgram, ppod.PrefixProgram)
	})
	run(ppod.SheetProjects, func(t *table.Table) error {
		return ing.IngestEntities(g, t, ppod.Projects, ppod.ClassProject, ppod.PrefixProject)
	})
	run(ppod.SheetPeople, func(t *table.Table) error {
		return ing.IngestEntities(g, t, ppod.People, ppod.ClassPerson, ppod.PrefixPerson)
	})

	// The participation sheets below mint Role instances.
	g.AddLiteral(ppod.ClassRole, ppod.RDFSLabel, "Role")

	run(ppod.SheetPeopleOrg, func(t *table.Table) error {
		return ing.IngestPersonOrg(g, t, ppod.PersonOrg)
	})
	run(ppod.SheetPeopleProj, func(t *table.Table) error {
		return ing.IngestPersonProj(g, t, ppod.PersonProj)
	})
	run(ppod.SheetPeopleProgram, func(t *table.Table) error {
		return ing.IngestPersonProgram(g, t, ppod.PersonProgram)
	})
	run(ppod.SheetGuidelines, func(t *table.Table) error {
		return ing.IngestEntities(g, t, ppod.Guidelines, ppod.ClassGuideline, ppod.PrefixGuideline)
	})
	run(ppod.SheetOrgGM, func(t *table.Table) error {
		return ing.IngestRelations(g, t, ppod.OrgGM, ppod.PrefixOrg)
	})
	run(ppod.SheetOrgProjGM, func(t *table.Table) error {
		return ing.IngestTernaryRoles(g, t, vocabulary.OrgGMRelations, ppod.PrefixGuideline)
	})
	run(ppod.SheetDatasets, func(t *table.Table) error {
		return ing.IngestEntities(g, t, ppod.Datasets, ppod.ClassDataset, ppod.PrefixDataset)
	})
	run(ppod.SheetTools, func(t *table.Table) error {
		return ing.IngestEntities(g, t, ppod.Tools, ppod.ClassTool, ppod.PrefixTool)
	})

	log.Info("conversion finished",
		"triples", g.Len(),
		"vocab_misses", diag.Misses(),
		"row_errors", diag.RowErrors(),
		"sheet_errors", len(errs))

	return &Result{
		Graph:     g,
		Registry:  reg,
		Misses:    diag.Misses(),
		RowErrors: diag.RowErrors(),
	}, errors.Join(errs...)
}

// useCaseIRIs flattens the static use-case table into the flag
// predicate to individual IRI mapping the emitter rewrites through.
func useCaseIRIs() map[string]string {
	out := make(map[string]string, len(ppod.UseCases))
	for pred, uc := range ppod.UseCases {
		out[pred] = uc.IRI
	}
	return out
}

// addVocabularyLabels emits an rdfs:label for every registered term.
// County labels carry the " County" suffix the bare terms omit.
func addVocabularyLabels(g *graph.Graph, reg *vocabulary.Registry) {
	for _, d := range reg.All() {
		for _, term := range d.Terms() {
			iri, _ := d.Lookup(term)
			label := term
			if d.Name() == vocabulary.Counties {
				label += " County"
			}
			g.AddLiteral(iri, ppod.RDFSLabel, label)
		}
	}
}

// addPredicateLabels emits one rdfs:label per predicate IRI, walking
// the sheet schemas in their fixed order; the first label seen for an
// IRI wins over later schemas reusing it.
func addPredicateLabels(g *graph.Graph) {
	seen := make(map[string]bool)
	for _, s := range ppod.SchemasInLabelOrder() {
		cols := make([]string, 0, len(s))
		for col := range s {
			cols = append(cols, col)
		}
		sort.Strings(cols)
		for _, col := range cols {
			d := s[col]
			if seen[d.IRI] {
				continue
			}
			seen[d.IRI] = true
			g.AddLiteral(d.IRI, ppod.RDFSLabel, d.Label)
		}
	}
}

// addUseCaseLabels emits labels for the use-case individuals.
func addUseCaseLabels(g *graph.Graph) {
	preds := make([]string, 0, len(ppod.UseCases))
	for p := range ppod.UseCases {
		preds = append(preds, p)
	}
	sort.Strings(preds)
	for _, p := range preds {
		uc := ppod.UseCases[p]
		g.AddLiteral(uc.IRI, ppod.RDFSLabel, uc.Label)
	}
}
