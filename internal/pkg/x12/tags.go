package x12

// Envelope and loop segment tags shared by the 837P encoder and the 835 decoder.
const (
	TagInterchangeHeader  = "ISA"
	TagInterchangeTrailer = "IEA"
	TagGroupHeader        = "GS"
	TagGroupTrailer       = "GE"
	TagTransactionHeader  = "ST"
	TagTransactionTrailer = "SE"

	TagBeginningHierarchical = "BHT"
	TagHierarchicalLevel     = "HL"
	TagName                  = "NM1"
	TagContact               = "PER"
	TagProviderInfo          = "PRV"
	TagAddressLine           = "N3"
	TagCityStateZip          = "N4"
	TagReference             = "REF"
	TagSubscriberInfo        = "SBR"
	TagDemographics          = "DMG"
	TagClaim                 = "CLM"
	TagHealthCareDiagnosis   = "HI"
	TagLineCounter           = "LX"
	TagProfessionalService   = "SV1"
	TagDateOrPeriod          = "DTP"

	TagFinancialInfo       = "BPR"
	TagReassociationTrace  = "TRN"
	TagPartyIdentification = "N1"
	TagDateTimeReference   = "DTM"
	TagClaimPayment        = "CLP"
	TagClaimAdjustment     = "CAS"
	TagServicePayment      = "SVC"
	TagSupplementalAmount  = "AMT"
	TagSupplementalQty     = "QTY"
	TagRemarkCode          = "LQ"
	TagProviderAdjustment  = "PLB"
)

// ISA is emitted as a fixed-width segment: the element separator sits directly
// after the tag and the component separator is the penultimate byte of the
// 106-byte header.
const (
	isaElementSeparatorOffset   = 3
	isaComponentSeparatorOffset = 104
	isaMinHeaderLength          = 105
)
