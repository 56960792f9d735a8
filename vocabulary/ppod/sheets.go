package ppod

import "github.com/fslgroup/ppodgraph/vocabulary"

// Workbook sheet names.
const (
	SheetVocabularies    = "Vocabularies"
	SheetOrganizations   = "Organizations"
	SheetProjects        = "Projects"
	SheetPrograms        = "Programs"
	SheetPeople          = "People"
	SheetPeopleOrg       = "PeopleOrg"
	SheetPeopleProj      = "PeopleProj"
	SheetPeopleProgram   = "PeopleProgram"
	SheetGuidelines      = "Guidelines_Mandates"
	SheetOrgGM           = "OrgGM"
	SheetOrgProjGM       = "OrgProjGM"
	SheetDatasets        = "Datasets"
	SheetTools           = "Tools"
	SheetIssuesIntegrated = "Issues (Integrated)"
	SheetIssuesComponent  = "Issues (Component)"
)

// VocabColumn describes one column of the Vocabularies sheet that
// becomes a hashed dictionary.
type VocabColumn struct {
	Column string          // column header on the Vocabularies sheet
	Name   vocabulary.Name // registry name of the resulting dictionary
	Prefix string          // identifier prefix for minted term IRIs
	Skip   int             // leading rows to drop
}

// VocabColumns lists the Vocabularies-sheet columns in the order their
// dictionaries are registered. The Ecoregion column carries a stray
// first cell in the source sheet, hence its skip of 1. The orgGMRelation
// column reuses the position-type prefix and orgProjRelation the
// project-role prefix, matching the identifiers already published from
// this workbook.
func VocabColumns() []VocabColumn {
	return []VocabColumn{
		{Column: "Ecoregion_USDA", Name: vocabulary.Ecoregions, Prefix: PrefixEcoregion, Skip: 1},
		{Column: "OrgType", Name: vocabulary.OrgTypes, Prefix: PrefixOrgType},
		{Column: "OrgActivity", Name: vocabulary.OrgActivities, Prefix: PrefixOrgActivity},
		{Column: "ProjType", Name: vocabulary.ProjTypes, Prefix: PrefixProjType},
		{Column: "ProgType", Name: vocabulary.ProgTypes, Prefix: PrefixProgType},
		{Column: "GMType", Name: vocabulary.GMTypes, Prefix: PrefixGMType},
		{Column: "GovLevel", Name: vocabulary.GovLevels, Prefix: PrefixGovLevel},
		{Column: "PositionType", Name: vocabulary.PositionTypes, Prefix: PrefixPositionType},
		{Column: "PeopleProjRole", Name: vocabulary.ProjRoles, Prefix: PrefixProjRole},
		{Column: "orgGMRelation", Name: vocabulary.OrgGMRelations, Prefix: PrefixPositionType},
		{Column: "orgProjRelation", Name: vocabulary.OrgProjRelations, Prefix: PrefixProjRole},
		{Column: "GeoFeature", Name: vocabulary.GeoFeatures, Prefix: PrefixGeoFeature},
	}
}
