package reasoncodes

// DenialCategory is the PT-domain bucket a claim adjustment reason falls into.
// Codes outside every known set are NotDenial: plenty of adjustment reasons
// (contractual write-downs, deductibles) are routine and not denials at all.
type DenialCategory string

const (
	NotDenial            DenialCategory = "not_denial"
	VisitLimitExceeded   DenialCategory = "visit_limit_exceeded"
	NoPriorAuthorization DenialCategory = "no_prior_authorization"
	BundledService       DenialCategory = "bundled_service"
	MedicalNecessity     DenialCategory = "medical_necessity"
	NotCovered           DenialCategory = "not_covered"
	OtherDenial          DenialCategory = "other_denial"
)

// Description returns a reviewer-facing label for the category.
func (c DenialCategory) Description() string {
	switch c {
	case VisitLimitExceeded:
		return "Visit limit exceeded"
	case NoPriorAuthorization:
		return "No prior authorization"
	case BundledService:
		return "Service bundled into another procedure"
	case MedicalNecessity:
		return "Medical necessity not established"
	case NotCovered:
		return "Service not covered"
	case OtherDenial:
		return "Denied for another reason"
	default:
		return "Not a denial"
	}
}

var (
	visitLimitCodes = codeSet("35", "119", "149", "222")
	priorAuthCodes  = codeSet("62", "197", "198")
	bundledCodes    = codeSet("97", "234", "B15", "M15", "N19", "N20")
	necessityCodes  = codeSet("50", "55", "151", "167")
	notCoveredCodes = codeSet("26", "27", "49", "96", "109", "204")
	otherDenials    = codeSet("16", "18", "29", "31", "A1", "B7")
)

// ClassifyDenial maps a claim adjustment reason code onto its denial category.
func ClassifyDenial(code string) DenialCategory {
	switch {
	case visitLimitCodes[code]:
		return VisitLimitExceeded
	case priorAuthCodes[code]:
		return NoPriorAuthorization
	case bundledCodes[code]:
		return BundledService
	case necessityCodes[code]:
		return MedicalNecessity
	case notCoveredCodes[code]:
		return NotCovered
	case otherDenials[code]:
		return OtherDenial
	default:
		return NotDenial
	}
}

// IsDenial reports whether the code belongs to any denial category.
func IsDenial(code string) bool {
	return ClassifyDenial(code) != NotDenial
}

func codeSet(codes ...string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	return set
}
