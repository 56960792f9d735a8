package ppod

// Base namespaces for the PPOD graph.
const (
	// AuxPrefix is the base IRI under which all hashed PPOD identifiers
	// (entities, roles, locally-minted vocabulary terms) are coined.
	AuxPrefix = "https://raw.githubusercontent.com/adhollander/FSLschemas/main/CA_PPODterms.ttl#"

	// FSLS is the FSL supplementary ontology namespace carrying most of
	// the project-specific predicates.
	FSLS = "https://raw.githubusercontent.com/adhollander/FSLschemas/main/fsisupp.owl#"

	// IntIssuePrefix holds the integrated sustainability issue terms.
	IntIssuePrefix = "https://raw.githubusercontent.com/adhollander/FSLschemas/main/sustsource.owl#"

	// CompIssuePrefix holds the component sustainability issue terms.
	CompIssuePrefix = "https://raw.githubusercontent.com/adhollander/FSLschemas/main/sustsourceindiv.rdf#"

	RDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFS = "http://www.w3.org/2000/01/rdf-schema#"

	RDFType   = RDF + "type"
	RDFSLabel = RDFS + "label"
)

// Class IRIs for the major sheet types.
const (
	ClassOrganization    = "http://xmlns.com/foaf/0.1/Organization"
	ClassProject         = "http://vivoweb.org/ontology/core#Project"
	ClassProgram         = "http://vivoweb.org/ontology/core#Program"
	ClassPerson          = "http://xmlns.com/foaf/0.1/Person"
	ClassGuideline       = "http://www.sdsconsortium.org/schemas/sds-okn.owl#BestPracticesAndMandates"
	ClassDataset         = "http://vivoweb.org/ontology/core#Dataset"
	ClassTool            = "http://www.sdsconsortium.org/schemas/sds-okn.owl#Tool"
	ClassIntegratedIssue = "https://raw.githubusercontent.com/adhollander/FSLschemas/main/sustsource.owl#IntegratedIssue"
	ClassComponentIssue  = "https://raw.githubusercontent.com/adhollander/FSLschemas/main/sustsource.owl#ComponentIssue"

	// ClassRole is the BFO role class typing the synthetic nodes minted
	// for person/organization participation rows.
	ClassRole = "http://purl.obolibrary.org/obo/BFO_0000023"
)

// Identifier prefixes per entity class. Hashed identifiers look like
// AuxPrefix + prefix + "_" + MakeID(label).
const (
	PrefixOrg       = "org"
	PrefixProject   = "prj"
	PrefixProgram   = "prg"
	PrefixPerson    = "per"
	PrefixRole      = "rol"
	PrefixGuideline = "gmt"
	PrefixDataset   = "dat"
	PrefixTool      = "tol"
)

// Identifier prefixes for locally-minted vocabulary terms.
const (
	PrefixEcoregion     = "eco"
	PrefixOrgType       = "oty"
	PrefixOrgActivity   = "oac"
	PrefixProjType      = "pjt"
	PrefixProgType      = "pgt"
	PrefixGMType        = "gmn"
	PrefixGovLevel      = "gvl"
	PrefixPositionType  = "pst"
	PrefixProjRole      = "prl"
	PrefixGeoFeature    = "geo"
	PrefixHabitatType   = "whr"
)

// UseCasePredicate is the generic "in use case" predicate. Flag columns
// marked "X" emit through it instead of through their own column
// predicate, pointing at the use case's individual IRI.
const UseCasePredicate = FSLS + "usecase"

// UseCase is one entry of the static use-case table.
type UseCase struct {
	IRI   string
	Label string
}

// UseCases maps each recognized boolean use-case flag predicate to the
// use case individual it denotes. Membership in this table is what
// makes a column a flag column.
var UseCases = map[string]UseCase{
	FSLS + "usecaseCons":        {IRI: AuxPrefix + "usecaseConservation", Label: "Conservation use case"},
	FSLS + "usecaseMeat":        {IRI: AuxPrefix + "usecaseMeat", Label: "Meat use case"},
	FSLS + "usecaseSac":         {IRI: AuxPrefix + "usecaseSac", Label: "Sacramento case"},
	FSLS + "usecaseSCAG":        {IRI: AuxPrefix + "usecaseSCAG", Label: "SCAG use case"},
	FSLS + "usecaseEcuador":     {IRI: AuxPrefix + "usecaseEcuador", Label: "Ecuador use case"},
	FSLS + "usecaseBayAreaRAMP": {IRI: AuxPrefix + "BayAreaRAMP", Label: "Bay Area RAMP use case"},
	FSLS + "usecaseEPA":         {IRI: AuxPrefix + "usecaseEPA", Label: "EPA use case"},
	FSLS + "usecaseJPA":         {IRI: AuxPrefix + "usecaseJPA", Label: "JPA use case"},
}

// Prefixes is the fixed namespace-prefix block bound on the serialized
// output.
var Prefixes = map[string]string{
	"rdf":     RDF,
	"rdfs":    RDFS,
	"skos":    "http://www.w3.org/2004/02/skos/core#",
	"dcterms": "http://purl.org/dc/terms/",
	"obo":     "http://purl.obolibrary.org/obo/",
	"fsls":    FSLS,
	"vivo":    "http://vivoweb.org/ontology/core#",
	"poder":   "http://dev.poderopedia.com/vocab/",
	"frbr":    "http://iflastandards.info/ns/fr/frbr/frbrer/",
	"dbpedia": "http://dbpedia.org/ontology/",
	"dg":      "https://w3id.org/dingo#",
	"frapo":   "http://purl.org/cerif/frapo/",
	"fslp":    AuxPrefix,
}
