package ingest_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fslgroup/ppodgraph/graph"
	"github.com/fslgroup/ppodgraph/ingest"
	"github.com/fslgroup/ppodgraph/table"
	"github.com/fslgroup/ppodgraph/vocabulary"
	"github.com/fslgroup/ppodgraph/vocabulary/ppod"
)

func mustSheet(t *testing.T, name, csv string) *table.Table {
	t.Helper()
	tbl, err := table.ReadCSV(name, strings.NewReader(csv))
	require.NoError(t, err)
	return tbl
}

// testSource assembles a miniature but complete workbook exercising
// every sheet kind.
func testSource(t *testing.T) ingest.Source {
	t.Helper()
	wb := table.NewWorkbook()

	wb.Add(mustSheet(t, ppod.SheetVocabularies,
		"Ecoregion_USDA,OrgType,OrgActivity,ProjType,ProgType,GMType,GovLevel,PositionType,PeopleProjRole,orgGMRelation,orgProjRelation,GeoFeature\n"+
			"Ecoregions,Nonprofit,Stewardship,Restoration,Grant,Act,state,Director,Lead,Overseen By,Lead,River\n"+
			"Sacramento Valley,,,,,,,,,,,\n"+
			"Klamath Mountains,,,,,,,,,,,\n"))
	wb.Add(mustSheet(t, ppod.SheetIssuesIntegrated,
		"ID,Issue\nFSI_001,Water Quality\n"))
	wb.Add(mustSheet(t, ppod.SheetIssuesComponent,
		"ID,Issue\nCFI_001,Air Quality\nCFI_009,Water Quality\n"))

	wb.Add(mustSheet(t, ppod.SheetOrganizations,
		"Organization,County,hasOrgType,Issues,usecaseSac,URL\n"+
			"Audubon California,All,Nonprofit,Water Quality,X,https://example.org/audubon\n"+
			"Point Blue,Atlantis,,,,\n"+
			",Yuba,,,,\n"))
	wb.Add(mustSheet(t, ppod.SheetPrograms,
		"Program\nRiver Program\n"))
	wb.Add(mustSheet(t, ppod.SheetProjects,
		"Project,Organization (Lead)\nCreek Restoration,Audubon California\n"))
	wb.Add(mustSheet(t, ppod.SheetPeople,
		"Full Name\nPat Smith\nJane Doe\n"))
	wb.Add(mustSheet(t, ppod.SheetPeopleOrg,
		"Full Name,Organization,Position (Verbatim),Position (Type),Year (Start),Year (End)\n"+
			"Pat Smith,Audubon California,Program Director,Director,2019,2021\n"+
			"Pat Smith,Audubon California,,Director,,\n"+
			"Jane Doe,Audubon California,,,,\n"))
	wb.Add(mustSheet(t, ppod.SheetPeopleProj,
		"Full Name,Project,ProjRole\nJane Doe,Creek Restoration,\n"))
	wb.Add(mustSheet(t, ppod.SheetPeopleProgram,
		"Full Name,Program,Role,Role (Type),Year (Start),Year (End)\n"+
			"Jane Doe,River Program,Volunteer,,,\n"))
	wb.Add(mustSheet(t, ppod.SheetGuidelines,
		"GM_Name,GMType\nEndangered Species Act,Act\n"))
	wb.Add(mustSheet(t, ppod.SheetOrgGM,
		"Organization,Relation,GM_Name\n"+
			"Audubon California,Created,Endangered Species Act\n"+
			"Audubon California,Bogus Relation,Endangered Species Act\n"))
	wb.Add(mustSheet(t, ppod.SheetOrgProjGM,
		"GM_Name,Relation,Organization,Role,Project\n"+
			"Endangered Species Act,Overseen By,Creek Restoration,Lead,Audubon California\n"+
			"Endangered Species Act,Unknown Rel,Creek Restoration,Lead,Audubon California\n"))
	wb.Add(mustSheet(t, ppod.SheetDatasets,
		"Name\nSurvey Data\n"))
	wb.Add(mustSheet(t, ppod.SheetTools,
		"Tool,inDataset\nCalFlora,Survey Data\n"))

	return ingest.Source{
		Workbook: wb,
		Counties: mustSheet(t, "CACounties_WD",
			"IRI,County\n"+
				"http://www.wikidata.org/entity/Q108059,Yolo\n"+
				"http://www.wikidata.org/entity/Q109661,Yuba\n"),
		Commodities: mustSheet(t, "commodities",
			"Commodity,IRI\nAlmonds,http://example.org/commodity/almonds\n"),
		Habitats: mustSheet(t, "CWHR_Habitat_Lookup_Table",
			"Habitat\nAnnual Grassland\n"),
	}
}

func TestBuildRegistry(t *testing.T) {
	reg, err := ingest.BuildRegistry(testSource(t), base)
	require.NoError(t, err)

	t.Run("hashed sheet columns", func(t *testing.T) {
		iri, ok := reg.Resolve(vocabulary.Ecoregions, "Sacramento Valley")
		require.True(t, ok)
		assert.Equal(t, base+"eco_eef290", iri)

		_, ok = reg.Resolve(vocabulary.Ecoregions, "Ecoregions")
		assert.False(t, ok, "first ecoregion row is skipped")

		iri, ok = reg.Resolve(vocabulary.OrgGMRelations, "Overseen By")
		require.True(t, ok)
		assert.Equal(t, base+"pst_a875b1", iri, "relation terms mint under the position-type prefix")
	})

	t.Run("county lookup keeps source IRIs", func(t *testing.T) {
		iri, ok := reg.Resolve(vocabulary.Counties, "Yuba")
		require.True(t, ok)
		assert.Equal(t, "http://www.wikidata.org/entity/Q109661", iri)
	})

	t.Run("integrated issues win over component", func(t *testing.T) {
		iri, ok := reg.Resolve(vocabulary.Issues, "Water Quality")
		require.True(t, ok)
		assert.Equal(t, ppod.IntIssuePrefix+"FSI_001", iri)

		iri, ok = reg.Resolve(vocabulary.Issues, "Air Quality")
		require.True(t, ok)
		assert.Equal(t, ppod.CompIssuePrefix+"CFI_001", iri)
	})

	t.Run("habitat terms append the name", func(t *testing.T) {
		iri, ok := reg.Resolve(vocabulary.HabitatTypes, "Annual Grassland")
		require.True(t, ok)
		assert.Equal(t, base+"whr_Annual Grassland", iri)
	})

	t.Run("commodity column order", func(t *testing.T) {
		iri, ok := reg.Resolve(vocabulary.Commodities, "Almonds")
		require.True(t, ok)
		assert.Equal(t, "http://example.org/commodity/almonds", iri)
	})
}

func TestRun(t *testing.T) {
	var diag bytes.Buffer
	res, err := ingest.Run(testSource(t), ingest.Options{Base: base, Diagnostics: &diag})
	require.NoError(t, err)
	g := res.Graph

	hasIRI := func(s, p, o string) bool {
		return g.Has(graph.Triple{Subject: s, Predicate: p, Object: graph.IRITerm(o)})
	}
	hasLit := func(s, p, o string) bool {
		return g.Has(graph.Triple{Subject: s, Predicate: p, Object: graph.LiteralTerm(o)})
	}

	t.Run("entity minting", func(t *testing.T) {
		org := base + "org_7f6c7a"
		assert.True(t, hasIRI(org, ppod.RDFType, ppod.ClassOrganization))
		assert.True(t, hasLit(org, ppod.RDFSLabel, "Audubon California"))
		assert.True(t, hasIRI(base+"prj_63045d", ppod.RDFType, ppod.ClassProject))
		assert.True(t, hasIRI(base+"prg_1fddc6", ppod.RDFType, ppod.ClassProgram))
		assert.True(t, hasIRI(base+"per_523b01", ppod.RDFType, ppod.ClassPerson))
		assert.True(t, hasIRI(base+"gmt_ebd55c", ppod.RDFType, ppod.ClassGuideline))
		assert.True(t, hasIRI(base+"dat_36a45f", ppod.RDFType, ppod.ClassDataset))
		assert.True(t, hasIRI(base+"tol_b3b1e2", ppod.RDFType, ppod.ClassTool))
	})

	t.Run("cross-sheet references merge by label hash", func(t *testing.T) {
		assert.True(t, hasIRI(base+"prj_63045d", ppod.PropLeadOrg, base+"org_7f6c7a"))
		// The dataset reference prefix differs from the Datasets sheet
		// prefix, so tool inputs dangle.
		assert.True(t, hasIRI(base+"tol_b3b1e2", ppod.PropHasInput, base+"dts_36a45f"))
	})

	t.Run("wildcard county expansion", func(t *testing.T) {
		org := base + "org_7f6c7a"
		assert.True(t, hasIRI(org, ppod.PropInCounty, "http://www.wikidata.org/entity/Q108059"))
		assert.True(t, hasIRI(org, ppod.PropInCounty, "http://www.wikidata.org/entity/Q109661"))
	})

	t.Run("use case flag rewrite", func(t *testing.T) {
		assert.True(t, hasIRI(base+"org_7f6c7a", ppod.UseCasePredicate, ppod.AuxPrefix+"usecaseSac"))
	})

	t.Run("vocabulary miss reported and skipped", func(t *testing.T) {
		assert.Contains(t, diag.String(), "Point Blue: Atlantis not in counties\n")
		assert.Equal(t, 1, res.Misses)
	})

	t.Run("blank label row skipped", func(t *testing.T) {
		empty := base + "org_000000"
		assert.False(t, hasIRI(empty, ppod.RDFType, ppod.ClassOrganization))
	})

	t.Run("person-org roles", func(t *testing.T) {
		full := base + "rol_af0a94"
		assert.True(t, hasLit(full, ppod.RDFSLabel, "Program Director"))
		assert.True(t, hasIRI(full, ppod.RDFType, ppod.ClassRole))
		assert.True(t, hasIRI(full, ppod.PropHasParticipant, base+"per_523b01"))
		assert.True(t, hasIRI(full, ppod.PropRoleOf, base+"org_7f6c7a"))
		assert.True(t, hasLit(full, ppod.DCTitle, "Program Director"))
		assert.True(t, hasIRI(full, ppod.FSLS+"positionType", base+"pst_e6b1a6"))

		// Verbatim position empty: the type column supplies the title.
		fallback := base + "rol_a640eb"
		assert.True(t, hasLit(fallback, ppod.RDFSLabel, "Director"))
		assert.True(t, hasLit(fallback, ppod.DCTitle, "Director"))

		// Both empty: the fixed default.
		unstated := base + "rol_7b569a"
		assert.True(t, hasLit(unstated, ppod.RDFSLabel, "Unstated role"))
		assert.True(t, hasLit(unstated, ppod.DCTitle, "Unstated role"))
	})

	t.Run("person-proj default role", func(t *testing.T) {
		role := base + "rol_240f45"
		assert.True(t, hasLit(role, ppod.RDFSLabel, "Participant"))
		assert.True(t, hasIRI(role, ppod.PropInvolvedIn, base+"prj_63045d"))
		assert.True(t, hasLit(role, ppod.PropHasRole, "Unstated role"))
	})

	t.Run("person-program role from own row", func(t *testing.T) {
		role := base + "rol_fadf6a"
		assert.True(t, hasLit(role, ppod.RDFSLabel, "Volunteer"))
		assert.True(t, hasIRI(role, ppod.PropHasParticipant, base+"per_8eb897"))
		assert.True(t, hasIRI(role, ppod.PropInvolvedIn, base+"prg_1fddc6"))
	})

	t.Run("role class labeled", func(t *testing.T) {
		assert.True(t, hasLit(ppod.ClassRole, ppod.RDFSLabel, "Role"))
	})

	t.Run("org-gm relation rows", func(t *testing.T) {
		assert.True(t, hasIRI(base+"org_7f6c7a", ppod.PropCreatorOf, base+"gmt_ebd55c"))
		assert.Contains(t, diag.String(), `unknown relation "Bogus Relation"`)
	})

	t.Run("gm-project-org ternary rows", func(t *testing.T) {
		role := base + "rol_925853"
		assert.True(t, hasLit(role, ppod.RDFSLabel, "Lead"))
		assert.True(t, hasIRI(role, ppod.RDFType, ppod.ClassRole))
		assert.True(t, hasIRI(base+"gmt_ebd55c", base+"pst_a875b1", role))
		assert.Contains(t, diag.String(), "Unknown Rel not in org-gm-relations")
		assert.Equal(t, 2, res.RowErrors)
	})

	t.Run("vocabulary labels", func(t *testing.T) {
		assert.True(t, hasLit("http://www.wikidata.org/entity/Q109661", ppod.RDFSLabel, "Yuba County"))
		assert.True(t, hasLit(base+"eco_eef290", ppod.RDFSLabel, "Sacramento Valley"))
		assert.True(t, hasLit(ppod.IntIssuePrefix+"FSI_001", ppod.RDFSLabel, "Water Quality"))
	})

	t.Run("predicate labels first-seen-wins", func(t *testing.T) {
		assert.True(t, hasLit(ppod.DCTitle, ppod.RDFSLabel, "title"))
		// RO_0000087 is labeled by the person-proj schema before the
		// tools schema reuses it.
		assert.True(t, hasLit(ppod.PropHasRole, ppod.RDFSLabel, "has role"))
		assert.False(t, hasLit(ppod.PropHasRole, ppod.RDFSLabel, "has output"))
	})

	t.Run("use case individuals labeled", func(t *testing.T) {
		assert.True(t, hasLit(ppod.AuxPrefix+"usecaseSac", ppod.RDFSLabel, "Sacramento case"))
	})
}

func TestRunDeterministic(t *testing.T) {
	r1, err := ingest.Run(testSource(t), ingest.Options{Base: base})
	require.NoError(t, err)
	r2, err := ingest.Run(testSource(t), ingest.Options{Base: base})
	require.NoError(t, err)
	assert.Equal(t, r1.Graph.All(), r2.Graph.All())
}

func TestRunMissingSheet(t *testing.T) {
	src := testSource(t)
	wb := table.NewWorkbook()
	for _, name := range src.Workbook.Names() {
		if name == ppod.SheetTools {
			continue
		}
		tbl, _ := src.Workbook.Table(name)
		wb.Add(tbl)
	}
	src.Workbook = wb

	res, err := ingest.Run(src, ingest.Options{Base: base})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing sheet "Tools"`)
	assert.NotNil(t, res.Graph, "other sheets still convert")
	assert.Positive(t, res.Graph.Len())
}

func TestRunUndescribedColumnAbortsSheet(t *testing.T) {
	src := testSource(t)
	src.Workbook.Add(mustSheet(t, ppod.SheetDatasets,
		"Name,Mystery Column\nSurvey Data,oops\n"))

	res, err := ingest.Run(src, ingest.Options{Base: base})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "Mystery Column"`)
	assert.False(t, res.Graph.Has(graph.Triple{
		Subject:   base + "dat_36a45f",
		Predicate: ppod.RDFType,
		Object:    graph.IRITerm(ppod.ClassDataset),
	}), "aborted sheet contributes nothing")
}
