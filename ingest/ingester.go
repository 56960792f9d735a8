package ingest

import (
	"fmt"

	"github.com/fslgroup/ppodgraph/graph"
	"github.com/fslgroup/ppodgraph/hashid"
	"github.com/fslgroup/ppodgraph/schema"
	"github.com/fslgroup/ppodgraph/table"
	"github.com/fslgroup/ppodgraph/vocabulary"
)

// IngesterConfig carries the fixed IRIs the ingester stamps onto every
// node it mints.
type IngesterConfig struct {
	Base           string
	TypePredicate  string
	LabelPredicate string
	RoleClass      string
	RolePrefix     string
}

// Ingester walks tables row by row and adds their triples to a graph.
// Entity sheets describe one node per row; role sheets mint a synthetic
// Role node per row; relation sheets encode bare subject/relation/object
// triples.
type Ingester struct {
	cfg      IngesterConfig
	em       *Emitter
	registry *vocabulary.Registry
	diag     *Diagnostics
}

// NewIngester builds an ingester emitting through em.
func NewIngester(cfg IngesterConfig, em *Emitter, reg *vocabulary.Registry, diag *Diagnostics) *Ingester {
	return &Ingester{cfg: cfg, em: em, registry: reg, diag: diag}
}

// checkColumns verifies every header column has a descriptor. A column
// without one is a configuration error and aborts the whole table
// rather than silently dropping data.
func (ing *Ingester) checkColumns(t *table.Table, s schema.Schema) error {
	for _, col := range t.Columns {
		if _, ok := s[col]; !ok {
			return fmt.Errorf("sheet %s: column %q has no descriptor", t.Name, col)
		}
	}
	return nil
}

// IngestEntities processes an entity sheet: the first column is the
// canonical label, the subject IRI is minted from its hash, and every
// populated cell emits through its column descriptor. Rows with an
// empty label cell are blank lines in the export and are skipped.
func (ing *Ingester) IngestEntities(g *graph.Graph, t *table.Table, s schema.Schema, classIRI, prefix string) error {
	if err := ing.checkColumns(t, s); err != nil {
		return err
	}
	for r := 0; r < t.Len(); r++ {
		label := t.CellAt(r, 0)
		if label == "" {
			continue
		}
		subject := ing.cfg.Base + prefix + "_" + hashid.MakeID(label)
		g.AddIRI(subject, ing.cfg.TypePredicate, classIRI)
		g.AddLiteral(subject, ing.cfg.LabelPredicate, label)

		for c, col := range t.Columns {
			cell := t.CellAt(r, c)
			if cell == "" {
				continue
			}
			ing.em.Emit(g, s[col], subject, cell, label)
		}
	}
	return nil
}

// roleRow describes one row of a role sheet after its defaults are
// applied: the concatenated text the Role node's identifier is hashed
// from, the node's label, and any per-column cell substitutions.
type roleRow struct {
	key       string
	label     string
	overrides map[int]string
}

func (ing *Ingester) ingestRoleRows(g *graph.Graph, t *table.Table, s schema.Schema, describe func(r int) roleRow) error {
	if err := ing.checkColumns(t, s); err != nil {
		return err
	}
	for r := 0; r < t.Len(); r++ {
		if t.CellAt(r, 0) == "" && t.CellAt(r, 1) == "" {
			continue
		}
		row := describe(r)
		subject := ing.cfg.Base + ing.cfg.RolePrefix + "_" + hashid.MakeID(row.key)
		g.AddLiteral(subject, ing.cfg.LabelPredicate, row.label)
		g.AddIRI(subject, ing.cfg.TypePredicate, ing.cfg.RoleClass)

		for c, col := range t.Columns {
			cell := t.CellAt(r, c)
			if v, ok := row.overrides[c]; ok {
				cell = v
			}
			if cell == "" {
				continue
			}
			ing.em.Emit(g, s[col], subject, cell, row.key)
		}
	}
	return nil
}

// IngestPersonOrg processes a person/organization role sheet. The role
// title comes from the verbatim position column, falling back to the
// position type column, then to "Unstated role"; the resolved title
// participates in the identifier hash and replaces the verbatim cell on
// emission.
func (ing *Ingester) IngestPersonOrg(g *graph.Graph, t *table.Table, s schema.Schema) error {
	return ing.ingestRoleRows(g, t, s, func(r int) roleRow {
		role := t.CellAt(r, 2)
		if role == "" {
			role = t.CellAt(r, 3)
		}
		if role == "" {
			role = "Unstated role"
		}
		return roleRow{
			key:       t.CellAt(r, 0) + t.CellAt(r, 1) + role,
			label:     role,
			overrides: map[int]string{2: role},
		}
	})
}

// IngestPersonProj processes a person/project role sheet. An absent
// role defaults to "Participant" for the identifier and label, while
// the role column itself emits "Unstated role".
func (ing *Ingester) IngestPersonProj(g *graph.Graph, t *table.Table, s schema.Schema) error {
	return ing.ingestRoleRows(g, t, s, func(r int) roleRow {
		role := t.CellAt(r, 2)
		overrides := map[int]string{}
		if role == "" {
			role = "Participant"
			overrides[2] = "Unstated role"
		}
		return roleRow{
			key:       t.CellAt(r, 0) + t.CellAt(r, 1) + role,
			label:     role,
			overrides: overrides,
		}
	})
}

// IngestPersonProgram processes a person/program role sheet. No
// defaults apply; the role text is taken as-is.
func (ing *Ingester) IngestPersonProgram(g *graph.Graph, t *table.Table, s schema.Schema) error {
	return ing.ingestRoleRows(g, t, s, func(r int) roleRow {
		role := t.CellAt(r, 2)
		return roleRow{
			key:   t.CellAt(r, 0) + t.CellAt(r, 1) + role,
			label: role,
		}
	})
}

// IngestRelations processes a pure relation sheet laid out as
// subject / relation name / object. The relation name selects a
// descriptor from relations; an unknown name is reported and the row
// skipped.
func (ing *Ingester) IngestRelations(g *graph.Graph, t *table.Table, relations schema.Schema, subjPrefix string) error {
	for r := 0; r < t.Len(); r++ {
		subj, rel, obj := t.CellAt(r, 0), t.CellAt(r, 1), t.CellAt(r, 2)
		if subj == "" && rel == "" && obj == "" {
			continue
		}
		d, ok := relations[rel]
		if !ok {
			ing.diag.RowError(t.Name, r, fmt.Sprintf("unknown relation %q", rel))
			continue
		}
		g.AddIRI(
			ing.cfg.Base+subjPrefix+"_"+hashid.MakeID(subj),
			d.IRI,
			ing.cfg.Base+d.Target+"_"+hashid.MakeID(obj),
		)
	}
	return nil
}

// IngestTernaryRoles processes the guideline/organization/project sheet:
// column A names the guideline subject, column B a relation resolved
// through dict, and columns C through E concatenate into the Role node's
// identifier with column D as its label. A relation name missing from
// dict is reported and the row skipped whole.
func (ing *Ingester) IngestTernaryRoles(g *graph.Graph, t *table.Table, dict vocabulary.Name, subjPrefix string) error {
	for r := 0; r < t.Len(); r++ {
		subj, rel := t.CellAt(r, 0), t.CellAt(r, 1)
		if subj == "" && rel == "" {
			continue
		}
		pred, ok := ing.registry.Resolve(dict, rel)
		if !ok {
			ing.diag.RowError(t.Name, r, fmt.Sprintf("%s not in %s", rel, dict))
			continue
		}
		key := t.CellAt(r, 2) + t.CellAt(r, 3) + t.CellAt(r, 4)
		role := ing.cfg.Base + ing.cfg.RolePrefix + "_" + hashid.MakeID(key)
		g.AddLiteral(role, ing.cfg.LabelPredicate, t.CellAt(r, 3))
		g.AddIRI(role, ing.cfg.TypePredicate, ing.cfg.RoleClass)
		g.AddIRI(ing.cfg.Base+subjPrefix+"_"+hashid.MakeID(subj), pred, role)
	}
	return nil
}
