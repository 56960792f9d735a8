package vocabulary

import "fmt"

// Name identifies a vocabulary dictionary. Schemas refer to
// dictionaries by these names; the fixed set below is the complete
// enumeration, so a schema naming anything else fails validation at
// load time instead of mid-ingestion.
type Name string

const (
	Counties       Name = "counties"
	Ecoregions     Name = "ecoregions"
	Issues         Name = "issues"
	HabitatTypes   Name = "habitat-types"
	GeoFeatures    Name = "geo-features"
	OrgTypes       Name = "org-types"
	OrgActivities  Name = "org-activities"
	ProjTypes      Name = "proj-types"
	ProgTypes      Name = "prog-types"
	GMTypes        Name = "gm-types"
	GovLevels      Name = "gov-levels"
	PositionTypes  Name = "position-types"
	ProjRoles      Name = "proj-roles"
	OrgGMRelations Name = "org-gm-relations"
	OrgProjRelations Name = "org-proj-relations"
	Commodities    Name = "commodities"
)

// known is the complete set of registrable names.
var known = map[Name]bool{
	Counties: true, Ecoregions: true, Issues: true, HabitatTypes: true,
	GeoFeatures: true, OrgTypes: true, OrgActivities: true,
	ProjTypes: true, ProgTypes: true, GMTypes: true, GovLevels: true,
	PositionTypes: true, ProjRoles: true, OrgGMRelations: true,
	OrgProjRelations: true, Commodities: true,
}

// enumerable marks the vocabularies whose full membership the "All"
// sentinel expands to. Only counties and ecoregions carry that meaning
// in the workbook.
var enumerable = map[Name]bool{
	Counties:   true,
	Ecoregions: true,
}

// Registry holds the dictionaries for one conversion run. It replaces
// the original's process-wide mutable dictionaries: built once, passed
// by reference into the emitter and ingester.
type Registry struct {
	dicts map[Name]*Dictionary
	order []Name
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{dicts: make(map[Name]*Dictionary)}
}

// Add registers a dictionary under its name. Unknown or duplicate names
// are configuration errors.
func (r *Registry) Add(d *Dictionary) error {
	if !known[d.Name()] {
		return fmt.Errorf("unknown vocabulary name %q", d.Name())
	}
	if _, dup := r.dicts[d.Name()]; dup {
		return fmt.Errorf("vocabulary %q registered twice", d.Name())
	}
	r.dicts[d.Name()] = d
	r.order = append(r.order, d.Name())
	return nil
}

// Get returns the dictionary registered under name.
func (r *Registry) Get(name Name) (*Dictionary, bool) {
	d, ok := r.dicts[name]
	return d, ok
}

// Has reports whether name is registered. Shaped for schema.Validate.
func (r *Registry) Has(name string) bool {
	_, ok := r.dicts[Name(name)]
	return ok
}

// Resolve looks term up in the named dictionary.
func (r *Registry) Resolve(name Name, term string) (string, bool) {
	d, ok := r.dicts[name]
	if !ok {
		return "", false
	}
	return d.Lookup(term)
}

// Enumerable reports whether the "All" sentinel expands over name.
func (r *Registry) Enumerable(name Name) bool {
	return enumerable[name]
}

// All returns the dictionaries in registration order.
func (r *Registry) All() []*Dictionary {
	out := make([]*Dictionary, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.dicts[name])
	}
	return out
}
