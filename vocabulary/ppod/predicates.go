package ppod

import (
	"github.com/fslgroup/ppodgraph/schema"
	"github.com/fslgroup/ppodgraph/vocabulary"
)

// Shared predicate IRIs appearing in more than one sheet schema.
const (
	DCTitle     = "http://purl.org/dc/terms/title"
	DCDate      = "http://purl.org/dc/terms/date"
	DCIsPartOf  = "http://purl.org/dc/terms/isPartOf"
	DCReferences = "http://purl.org/dc/terms/references"
	SkosAltLabel = "http://www.w3.org/2004/02/skos/core#altLabel"

	PropHasURL    = "http://dev.poderopedia.com/vocab/hasURL"
	PropStartYear = "http://dbpedia.org/ontology/startYear"
	PropEndYear   = "http://dbpedia.org/ontology/endYear"
	PropFundedBy  = "http://purl.org/cerif/frapo/isFundedBy"

	PropInCounty     = FSLS + "inCounty"
	PropInEcoregion  = FSLS + "inEcoregion"
	PropAssocGeo     = FSLS + "assocGeo"
	PropIssue        = FSLS + "FSI_000239"
	PropTaxa         = FSLS + "taxa"
	PropHabitatType  = FSLS + "habitatType"
	PropCommodity    = FSLS + "commodity"
	PropEcoProcess   = FSLS + "ecologicalProcess"
	PropGMName       = FSLS + "GM_Name"
	PropLeadOrg      = FSLS + "leadOrg"
	PropLeadIndiv    = FSLS + "leadIndividual"

	PropHasParticipant = "http://purl.obolibrary.org/obo/RO_0000057"
	PropRoleOf         = "http://purl.obolibrary.org/obo/RO_0000081"
	PropHasRole        = "http://purl.obolibrary.org/obo/RO_0000087"
	PropInvolvedIn     = "http://purl.obolibrary.org/obo/RO_0002331"
	PropParticipatesIn = "http://purl.obolibrary.org/obo/RO_0000056"
	PropOccursIn       = "http://purl.obolibrary.org/obo/BFO_0000066"
	PropInputOf        = "http://purl.obolibrary.org/obo/RO_0002352"
	PropOutputOf       = "http://purl.obolibrary.org/obo/RO_0002353"
	PropHasInput       = "http://purl.obolibrary.org/obo/RO_0002233"

	PropCreatorOf    = "http://iflastandards.info/ns/fr/frbr/frbrer/P2008"
	PropWasCreatedBy = "http://iflastandards.info/ns/fr/frbr/frbrer/P2007"

	PropCollaborator  = "http://vivoweb.org/ontology/core#hasCollaborator"
	PropAffiliatedOrg = "http://vivoweb.org/ontology/core#affiliatedOrganization"
	PropFundingAgent  = "http://vivoweb.org/ontology/core#fundingAgentFor"
	PropFundingVehicle = "http://vivoweb.org/ontology/core#hasFundingVehicle"
	PropContact        = "http://vivoweb.org/ontology/core#contactInformation"
)

// Dictionary name strings as schema targets.
var (
	dictCounties      = string(vocabulary.Counties)
	dictEcoregions    = string(vocabulary.Ecoregions)
	dictIssues        = string(vocabulary.Issues)
	dictHabitatTypes  = string(vocabulary.HabitatTypes)
	dictGeoFeatures   = string(vocabulary.GeoFeatures)
	dictOrgTypes      = string(vocabulary.OrgTypes)
	dictOrgActivities = string(vocabulary.OrgActivities)
	dictProjTypes     = string(vocabulary.ProjTypes)
	dictProgTypes     = string(vocabulary.ProgTypes)
	dictGMTypes       = string(vocabulary.GMTypes)
	dictGovLevels     = string(vocabulary.GovLevels)
	dictPositionTypes = string(vocabulary.PositionTypes)
	dictCommodities   = string(vocabulary.Commodities)
)

// Organizations maps the Organizations sheet columns to descriptors.
var Organizations = schema.Schema{
	"Organization":       schema.Literal(DCTitle, "title"),
	"Alias":              schema.Literal(SkosAltLabel, "alias"),
	"isPartOf":           schema.RefMulti(DCIsPartOf, "is part of", PrefixOrg),
	"isMemberOf":         schema.RefMulti("http://www.w3.org/ns/org#memberOf", "is member of", PrefixOrg),
	"County":             schema.VocabMulti(PropInCounty, "in county", dictCounties),
	"Ecoregion":          schema.VocabMulti(PropInEcoregion, "in ecoregion", dictEcoregions),
	"hasGeography":       schema.VocabMulti(PropAssocGeo, "associated geography", dictGeoFeatures),
	"hasOrgType":         schema.VocabMulti("http://www.w3.org/ns/org#classification", "organization type", dictOrgTypes),
	"Partners":           schema.RefMulti(PropCollaborator, "has partner", PrefixOrg),
	"Funding":            schema.RefMulti(PropFundedBy, "is funded by", PrefixOrg),
	"hasOrgActivity":     schema.VocabMulti(PropParticipatesIn, "participates in", dictOrgActivities),
	"Issues":             schema.VocabMulti(PropIssue, "related sustainability issue", dictIssues),
	"URL":                schema.URLMulti(PropHasURL, "has URL"),
	"Contact":            schema.Literal(PropContact, "contact"),
	"Taxa":               schema.LiteralMulti(PropTaxa, "taxa"),
	"Land Cover - CWHR":  schema.VocabMulti(PropHabitatType, "habitat type", dictHabitatTypes),
	"Commodity":          schema.VocabMulti(PropCommodity, "commodity", dictCommodities),
	"Ecological Process": schema.Literal(PropEcoProcess, "ecological process"),
	"GM_Name":            schema.RefMulti(PropGMName, "guideline/mandate name", PrefixGuideline),
	"usecaseConservation": schema.Literal(FSLS+"usecaseCons", "use case: Conservation"),
	"usecaseMeat":        schema.Literal(FSLS+"usecaseMeat", "use case: meat"),
	"usecaseSac":         schema.Literal(FSLS+"usecaseSac", "use case: Sacramento"),
	"usecaseSCAG":        schema.Literal(FSLS+"usecaseSCAG", "use case: SCAG"),
	"usecaseEcuador":     schema.Literal(FSLS+"usecaseEcuador", "use case: Ecuador"),
}

// Projects maps the Projects sheet columns to descriptors.
var Projects = schema.Schema{
	"Project":                schema.Literal(DCTitle, "title"),
	"Alias":                  schema.Literal(SkosAltLabel, "alias"),
	"isPartOf":               schema.RefMulti(DCIsPartOf, "is part of", PrefixProject),
	"ProjType":               schema.VocabMulti(FSLS+"projType", "project type", dictProjTypes),
	"ProjProg":               schema.RefMulti(PropOccursIn, "occurs in", PrefixProgram),
	"Organization (Lead)":    schema.RefMulti(PropLeadOrg, "lead organization", PrefixOrg),
	"Organization (Funding)": schema.RefMulti(PropFundingAgent, "funding organization", PrefixOrg),
	"OrgFundProg":            schema.RefMulti(PropFundingVehicle, "funding provided via", PrefixProgram),
	"Lead Individual":        schema.Literal(PropLeadIndiv, "lead individual"),
	"Partners":               schema.RefMulti(PropAffiliatedOrg, "partner organization", PrefixOrg),
	"Location":               schema.Literal("http://purl.obolibrary.org/obo/RO_0001025", "located in"),
	"County":                 schema.VocabMulti(PropInCounty, "in county", dictCounties),
	"Ecoregion":              schema.VocabMulti(PropInEcoregion, "in ecoregion", dictEcoregions),
	"Watershed":              schema.Literal(FSLS+"inWatershed", "in watershed"),
	"Issues":                 schema.VocabMulti(PropIssue, "related sustainability issue", dictIssues),
	"has description":        schema.URL(FSLS+"projDetails", "project details"),
	"Indicators":             schema.Literal(FSLS+"hasIndicator", "has indicator"),
	"inDataset":              schema.RefMulti(PropInputOf, "input of", "dts"),
	"outDataset":             schema.RefMulti(PropOutputOf, "output of", "dts"),
	"Strategies":             schema.LiteralMulti(FSLS+"hasStrategy", "has strategy"),
	"URL":                    schema.URLMulti(PropHasURL, "has URL"),
	"Taxa":                   schema.LiteralMulti(PropTaxa, "taxa"),
	"Land Cover - CWHR":      schema.VocabMulti(PropHabitatType, "habitat type", dictHabitatTypes),
	"Ecological Process":     schema.Literal(PropEcoProcess, "ecological process"),
	"Start Year":             schema.Literal(PropStartYear, "startYear"),
	"End Year":               schema.Literal(PropEndYear, "endYear"),
	"Funding":                schema.RefMulti(PropFundedBy, "isFundedBy", PrefixOrg),
	"Latitude":               schema.Literal("https://www.w3.org/2003/01/geo/wgs84_pos#lat", "latitude"),
	"Longitude":              schema.Literal("https://www.w3.org/2003/01/geo/wgs84_pos#long", "longitude"),
	"FSL doc":                schema.URL(FSLS+"FSLdoc", "FSL doc"),
	"Use Case (Meat)":        schema.Literal(FSLS+"usecaseMeat", "use case: meat"),
	"Use Case (EPA)":         schema.Literal(FSLS+"usecaseEPA", "use case: EPA"),
	"Use Case (JPA)":         schema.Literal(FSLS+"usecaseJPA", "use case: JPA"),
}

// Programs maps the Programs sheet columns to descriptors.
var Programs = schema.Schema{
	"Program":         schema.Literal(DCTitle, "title"),
	"Alias":           schema.Literal(SkosAltLabel, "alias"),
	"ProgType":        schema.VocabMulti(FSLS+"progType", "program type", dictProgTypes),
	"Organization":    schema.RefMulti(PropLeadOrg, "lead organization", PrefixOrg),
	"Partners":        schema.RefMulti(PropAffiliatedOrg, "partner organization", PrefixOrg),
	"Issues":          schema.VocabMulti(PropIssue, "related sustainability issue", dictIssues),
	"Lead Individual": schema.Literal(PropLeadIndiv, "lead individual"),
	"GM_Name":         schema.RefMulti(PropGMName, "guideline/mandate name", PrefixGuideline),
	"County":          schema.VocabMulti(PropInCounty, "in county", dictCounties),
	"Ecoregion":       schema.VocabMulti(PropInEcoregion, "in ecoregion", dictEcoregions),
	"URL":             schema.URLMulti(PropHasURL, "has URL"),
	"Taxa":            schema.LiteralMulti(PropTaxa, "taxa"),
	"Use Case (Meat)": schema.Literal(FSLS+"usecaseMeat", "use case: meat"),
	"Use Case (EPA)":  schema.Literal(FSLS+"usecaseEPA", "use case: EPA"),
	"Use Case (JPA)":  schema.Literal(FSLS+"usecaseJPA", "use case: JPA"),
	"Use Case (SCAG)": schema.Literal(FSLS+"usecaseSCAG", "use case: SCAG"),
}

// People maps the People sheet columns to descriptors.
var People = schema.Schema{
	"Full Name":          schema.Literal("http://xmlns.com/foaf/0.1/name", "full name"),
	"Last Name":          schema.Literal("http://xmlns.com/foaf/0.1/lastName", "last name"),
	"First Name":         schema.Literal("http://xmlns.com/foaf/0.1/firstName", "first name"),
	"Email":              schema.Literal("http://xmlns.com/foaf/0.1/mbox", "email"),
	"Phone":              schema.Literal("http://xmlns.com/foaf/0.1/phone", "phone"),
	"Issues":             schema.VocabMulti(PropIssue, "related sustainability issue", dictIssues),
	"Notes":              schema.Literal(FSLS+"FSI_000243", "note"),
	"usecaseConservation": schema.Literal(FSLS+"usecaseCons", "use case: Conservation"),
	"usecaseMeat":        schema.Literal(FSLS+"usecaseMeat", "use case: meat"),
	"usecaseSac":         schema.Literal(FSLS+"usecaseSac", "use case: Sacramento"),
	"usecaseSCAG":        schema.Literal(FSLS+"usecaseSCAG", "use case: SCAG"),
	"usecaseEcuador":     schema.Literal(FSLS+"usecaseEcuador", "use case: Ecuador"),
	"usecaseBayAreaRAMP": schema.Literal(FSLS+"usecaseBayAreaRAMP", "use case: Bay Area RAMP"),
}

// PersonOrg maps the PeopleOrg relation sheet columns to descriptors.
// Subjects here are Role nodes, not people.
var PersonOrg = schema.Schema{
	"Full Name":           schema.Ref(PropHasParticipant, "has participant", PrefixPerson),
	"Organization":        schema.Ref(PropRoleOf, "role of", PrefixOrg),
	"Position (Verbatim)": schema.Literal(DCTitle, "title"),
	"Position (Type)":     schema.VocabMulti(FSLS+"positionType", "position type", dictPositionTypes),
	"Year (Start)":        schema.Literal(PropStartYear, "startYear"),
	"Year (End)":          schema.Literal(PropEndYear, "endYear"),
}

// PersonProj maps the PeopleProj relation sheet columns to descriptors.
var PersonProj = schema.Schema{
	"Full Name": schema.Ref(PropHasParticipant, "has participant", PrefixPerson),
	"Project":   schema.Ref(PropInvolvedIn, "involved in", PrefixProject),
	"ProjRole":  schema.Literal(PropHasRole, "has role"),
}

// PersonProgram maps the PeopleProgram relation sheet columns to
// descriptors.
var PersonProgram = schema.Schema{
	"Full Name":    schema.Ref(PropHasParticipant, "has participant", PrefixPerson),
	"Program":      schema.Ref(PropInvolvedIn, "involved in", PrefixProgram),
	"Role":         schema.Literal(PropHasRole, "has role"),
	"Role (Type)":  schema.URL(FSLS+"roleType", "role type"),
	"Year (Start)": schema.Literal(PropStartYear, "start year"),
	"Year (End)":   schema.Literal(PropEndYear, "end year"),
}

// Guidelines maps the Guidelines_Mandates sheet columns to descriptors.
var Guidelines = schema.Schema{
	"GM_Name":            schema.Literal(DCTitle, "Name"),
	"Alias":              schema.Literal(SkosAltLabel, "alias"),
	"GMType":             schema.VocabMulti(FSLS+"gmType", "guideline/mandate type", dictGMTypes),
	"Year":               schema.Literal(DCDate, "date"),
	"Issues":             schema.VocabMulti(PropIssue, "related sustainability issue", dictIssues),
	"GovLevel":           schema.VocabMulti(FSLS+"govLevel", "government level", dictGovLevels),
	"Counties":           schema.VocabMulti(PropInCounty, "in county", dictCounties),
	"Ecoregions":         schema.VocabMulti(PropInEcoregion, "in ecoregion", dictEcoregions),
	"URL":                schema.URL(PropHasURL, "has URL"),
	"Taxa":               schema.Literal(PropTaxa, "taxa"),
	"Land Cover - CWHR":  schema.VocabMulti(PropHabitatType, "habitat type", dictHabitatTypes),
	"Ecological Process": schema.Literal(PropEcoProcess, "ecological process"),
	"Use Case (Meat)":    schema.Literal(FSLS+"usecaseMeat", "use case: meat"),
	"Use Case (EPA)":     schema.Literal(FSLS+"usecaseEPA", "use case: EPA"),
}

// OrgGM is the fixed relation-name table for the OrgGM sheet, whose
// rows encode explicit organization→guideline triples. The middle
// column's text selects the predicate here; a name missing from this
// table is a reportable row error. Distinct from the hashed
// org-gm-relations dictionary built off the Vocabularies sheet, which
// the OrgProjGM pass resolves its predicates through.
var OrgGM = schema.Schema{
	"Created":             schema.Ref(PropCreatorOf, "creator of", PrefixGuideline),
	"Was Created By":      schema.Ref(PropWasCreatedBy, "was created by", PrefixGuideline),
	"Implements":          schema.Ref("https://w3id.org/dingo#implements", "implements", PrefixGuideline),
	"Mandates":            schema.Ref(FSLS+"mandates", "mandates", PrefixGuideline),
	"Is Bound By":         schema.Ref(FSLS+"isboundby", "is bound by", PrefixGuideline),
	"Funds Established By": schema.Ref(PropFundingVehicle, "has funding vehicle", PrefixGuideline),
	"Is Certified By":     schema.Ref(FSLS+"iscertifiedby", "is certified by", PrefixGuideline),
	"Enforces":            schema.Ref(FSLS+"enforces", "enforces", PrefixGuideline),
}

// OrgProjGM maps the Role-forming columns (C, D, E) of the OrgProjGM
// sheet. The sheet's rows are ingested by dedicated relation logic, but
// these descriptors still contribute predicate labels.
var OrgProjGM = schema.Schema{
	"Organization":    schema.Ref(PropHasParticipant, "has participant", PrefixOrg),
	"OrgProjRelation": schema.Vocab(PropHasRole, "has role", string(vocabulary.OrgProjRelations)),
	"Project":         schema.Ref(PropInvolvedIn, "involved in", PrefixProject),
}

// Datasets maps the Datasets sheet columns to descriptors.
var Datasets = schema.Schema{
	"Name":                     schema.Literal(DCTitle, "title"),
	"Organization (Created By)": schema.Ref(PropWasCreatedBy, "was created by", PrefixOrg),
	"Issues":                   schema.VocabMulti(PropIssue, "related sustainability issue", dictIssues),
	"GM_Name":                  schema.RefMulti(FSLS+"mandatedBy", "mandated by", PrefixGuideline),
	"URL":                      schema.URL(PropHasURL, "has URL"),
	"Use Case (Meat)":          schema.Literal(FSLS+"usecaseMeat", "use case: meat"),
	"Use Case (JPA)":           schema.Literal(FSLS+"usecaseJPA", "use case: JPA"),
	"Use Case (EPA)":           schema.Literal(FSLS+"usecaseEPA", "use case: EPA"),
}

// Tools maps the Tools sheet columns to descriptors.
var Tools = schema.Schema{
	"Tool":         schema.Literal(DCTitle, "title"),
	"Alias":        schema.Literal(SkosAltLabel, "alias"),
	"Organization": schema.Ref(PropWasCreatedBy, "was created by", PrefixOrg),
	"Issues":       schema.VocabMulti(PropIssue, "related sustainability issue", dictIssues),
	"inDataset":    schema.RefMulti(PropHasInput, "has input", "dts"),
	"outDataset":   schema.RefMulti(PropHasRole, "has output", "dts"),
	"ToolDetails":  schema.Literal(DCReferences, "references"),
	"URL":          schema.URL(PropHasURL, "has URL"),
}

// SchemasInLabelOrder lists every schema in the fixed order the
// predicate-label pass walks them; the first label seen for a predicate
// IRI wins.
func SchemasInLabelOrder() []schema.Schema {
	return []schema.Schema{
		Organizations, Projects, Programs, People,
		PersonOrg, PersonProj, PersonProgram,
		Guidelines, OrgGM, OrgProjGM, Datasets, Tools,
	}
}
