package x12

// Common segment tags.
const (
	TagISA = "ISA"
	TagIEA = "IEA"
	TagGS  = "GS"
	TagGE  = "GE"
	TagST  = "ST"
	TagSE  = "SE"
	TagHL  = "HL"
	TagNM1 = "NM1"
	TagEB  = "EB"
	TagAAA = "AAA"
	TagTRN = "TRN"
	TagDTP = "DTP"
	TagREF = "REF"
	TagDMG = "DMG"
	TagEQ  = "EQ"
	TagBHT = "BHT"
	TagPRV = "PRV"
	TagN3  = "N3"
	TagN4  = "N4"
	TagCLP = "CLP"
	TagSTC = "STC"
	TagCAS = "CAS"
	TagDTM = "DTM"
	TagBPR = "BPR"
	TagN1  = "N1"
	TagCLM = "CLM"
	TagHI  = "HI"
	TagLX  = "LX"
	TagSV1 = "SV1"
	TagPER = "PER"
)

// NM1 entity identifier codes.
const (
	EntityPayer      = "PR"
	EntityProvider   = "1P"
	EntitySubscriber = "IL"
	EntityDependent  = "QD"
	EntityPatient    = "QC"
	EntitySubmitter  = "41"
	EntityReceiver   = "40"
	EntityBilling    = "85"
	EntityPayee      = "PE"
)

// HL hierarchical level codes.
const (
	LevelInfoSource        = "20" // payer
	LevelInfoReceiver      = "21" // provider
	LevelSubscriber        = "22"
	LevelDependent         = "23"
	LevelProviderOfService = "19" // 276 service provider level
)

// CoverageCodes maps EB01 eligibility information codes to display text.
// Unknown codes resolve to the empty string, never an error.
var CoverageCodes = map[string]string{
	"1": "Active Coverage",
	"6": "Inactive Coverage",
	"7": "Policy Cancelled",
	"8": "Policy Not Renewed",
	"I": "Non-Covered",
	"F": "Financial/Remaining Benefits",
}

// CoverageDescription resolves an EB01 code through CoverageCodes.
func CoverageDescription(code string) string {
	return CoverageCodes[code]
}

// ServiceTypes maps EQ service type codes to display names. The set covers
// the inquiry codes the eligibility flow offers; payers accept many more.
var ServiceTypes = map[string]string{
	"1":  "Medical Care",
	"30": "Health Benefit Plan Coverage",
	"33": "Chiropractic",
	"35": "Dental Care",
	"47": "Hospital",
	"86": "Emergency Services",
	"88": "Pharmacy",
	"98": "Professional (Physician)",
}

// functionalIdentifierCodes maps a transaction set code to its GS01
// functional identifier.
var functionalIdentifierCodes = map[string]string{
	"270": "HS",
	"271": "HB",
	"276": "HR",
	"277": "HN",
	"835": "HP",
	"837": "HC",
}

// implementationVersions maps a transaction set code to its GS08
// implementation convention reference.
var implementationVersions = map[string]string{
	"270": "005010X279A1",
	"271": "005010X279A1",
	"276": "005010X212",
	"277": "005010X212",
	"835": "005010X221A1",
	"837": "005010X222A1",
}
