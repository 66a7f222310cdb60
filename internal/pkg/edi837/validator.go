package edi837

import (
	"fmt"

	"claimgate-service/internal/pkg/x12"

	"github.com/shopspring/decimal"
)

// Severity grades one validation finding. Errors block encoding; warnings
// accompany a successful encode.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one validation result tied to the input field that produced it.
type Finding struct {
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// HasErrors reports whether any finding carries error severity.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// chargeTolerance is the allowed drift between the claim total and the sum of
// line charges before the reconciliation warning fires.
var chargeTolerance = decimal.NewFromFloat(0.01)

// Validate runs every rule over the claim input and returns the ordered
// finding list. Rules are independent and never short-circuit: one call
// surfaces every problem at once so the caller UI can render them together.
func Validate(input *Claim837PInput) []Finding {
	v := &validator{}
	if input == nil {
		v.errorf("claim", "claim input is required")
		return v.findings
	}

	v.checkSubmitter(&input.Submitter)
	v.checkBillingProvider(&input.BillingProvider)
	v.checkRenderingProvider(&input.RenderingProvider)
	v.checkSubscriber(&input.Subscriber)
	v.checkClaimHeader(&input.Claim)
	v.checkServiceLines(input)
	v.checkChargeReconciliation(input)
	return v.findings
}

type validator struct {
	findings []Finding
}

func (v *validator) errorf(field, format string, args ...interface{}) {
	v.findings = append(v.findings, Finding{Field: field, Message: fmt.Sprintf(format, args...), Severity: SeverityError})
}

func (v *validator) warnf(field, format string, args ...interface{}) {
	v.findings = append(v.findings, Finding{Field: field, Message: fmt.Sprintf(format, args...), Severity: SeverityWarning})
}

func (v *validator) checkSubmitter(s *Submitter) {
	if s.Name == "" {
		v.errorf("submitter.name", "submitter name is required")
	}
	if s.ID == "" {
		v.errorf("submitter.id", "submitter identifier is required")
	}
	if s.ContactName == "" {
		v.errorf("submitter.contact_name", "submitter contact name is required")
	}
	if s.ContactPhone == "" {
		v.errorf("submitter.contact_phone", "submitter contact phone is required")
	} else if !x12.ValidPhone(s.ContactPhone) {
		v.errorf("submitter.contact_phone", "contact phone must carry at least 10 digits")
	}
}

func (v *validator) checkBillingProvider(p *BillingProvider) {
	if p.OrganizationName == "" {
		v.errorf("billing_provider.organization_name", "billing provider organization name is required")
	}
	if p.NPI == "" {
		v.errorf("billing_provider.npi", "billing provider NPI is required")
	} else if !x12.ValidNPI(p.NPI) {
		v.errorf("billing_provider.npi", "NPI must be exactly 10 digits, got %q", p.NPI)
	}
	if p.TaxID == "" {
		v.errorf("billing_provider.tax_id", "billing provider tax ID is required")
	} else if !x12.ValidTaxID(x12.NormalizeTaxID(p.TaxID)) {
		v.errorf("billing_provider.tax_id", "tax ID must be exactly 9 digits, got %q", p.TaxID)
	}
	if p.TaxonomyCode == "" {
		v.errorf("billing_provider.taxonomy_code", "billing provider taxonomy code is required")
	}
	v.checkAddress("billing_provider.address", &p.Address)
}

func (v *validator) checkRenderingProvider(p *RenderingProvider) {
	if p.LastName == "" {
		v.errorf("rendering_provider.last_name", "rendering provider last name is required")
	}
	if p.NPI == "" {
		v.errorf("rendering_provider.npi", "rendering provider NPI is required")
	} else if !x12.ValidNPI(p.NPI) {
		v.errorf("rendering_provider.npi", "NPI must be exactly 10 digits, got %q", p.NPI)
	}
}

func (v *validator) checkSubscriber(s *Subscriber) {
	if s.LastName == "" {
		v.errorf("subscriber.last_name", "subscriber last name is required")
	}
	if s.FirstName == "" {
		v.errorf("subscriber.first_name", "subscriber first name is required")
	}
	if s.MemberID == "" {
		v.errorf("subscriber.member_id", "payer member ID is required")
	}
	if s.DateOfBirth == "" {
		v.errorf("subscriber.date_of_birth", "subscriber date of birth is required")
	} else if !x12.ValidCalendarDate(s.DateOfBirth) {
		v.errorf("subscriber.date_of_birth", "date of birth must match YYYY-MM-DD, got %q", s.DateOfBirth)
	}
	if s.PayerName == "" {
		v.errorf("subscriber.payer_name", "payer name is required")
	}
	if s.PayerID == "" {
		v.errorf("subscriber.payer_id", "payer identifier is required")
	}
	v.checkAddress("subscriber.address", &s.Address)
}

func (v *validator) checkAddress(field string, a *Address) {
	if a.Line1 == "" {
		v.errorf(field+".line1", "street line is required")
	}
	if a.City == "" {
		v.errorf(field+".city", "city is required")
	}
	if a.State == "" {
		v.errorf(field+".state", "state is required")
	} else if !x12.ValidStateCode(a.State) {
		v.errorf(field+".state", "state code must be exactly 2 letters, got %q", a.State)
	}
	if a.Zip == "" {
		v.errorf(field+".zip", "postal code is required")
	}
}

func (v *validator) checkClaimHeader(c *ClaimHeader) {
	if c.ClaimID == "" {
		v.errorf("claim.claim_id", "claim ID is required")
	} else if len(c.ClaimID) > 20 {
		v.errorf("claim.claim_id", "claim ID must not exceed 20 characters, got %d", len(c.ClaimID))
	}
	if !c.TotalCharge.IsPositive() {
		v.errorf("claim.total_charge", "total charge must be positive")
	}
	if c.PlaceOfService == "" {
		v.errorf("claim.place_of_service", "place of service is required")
	}
	if c.ServiceDate == "" {
		v.errorf("claim.service_date", "claim service date is required")
	} else if !x12.ValidCalendarDate(c.ServiceDate) {
		v.errorf("claim.service_date", "service date must match YYYY-MM-DD, got %q", c.ServiceDate)
	}
	switch n := len(c.DiagnosisCodes); {
	case n == 0:
		v.errorf("claim.diagnosis_codes", "at least 1 diagnosis code is required")
	case n > 12:
		v.errorf("claim.diagnosis_codes", "at most 12 diagnosis codes are allowed, got %d", n)
	}
	for i, code := range c.DiagnosisCodes {
		if code == "" {
			v.errorf(fmt.Sprintf("claim.diagnosis_codes[%d]", i), "diagnosis code must not be empty")
		}
	}
}

func (v *validator) checkServiceLines(input *Claim837PInput) {
	if len(input.ServiceLines) == 0 {
		v.errorf("service_lines", "at least 1 service line is required")
		return
	}
	diagnosisCount := len(input.Claim.DiagnosisCodes)
	for i := range input.ServiceLines {
		line := &input.ServiceLines[i]
		field := fmt.Sprintf("service_lines[%d]", i)

		if line.ProcedureCode == "" {
			v.errorf(field+".procedure_code", "procedure code is required")
		} else if !x12.ValidProcedureCode(line.ProcedureCode) {
			v.errorf(field+".procedure_code", "procedure code must be 5 alphanumeric characters, got %q", line.ProcedureCode)
		}
		if len(line.Modifiers) > 4 {
			v.errorf(field+".modifiers", "at most 4 modifiers are allowed, got %d", len(line.Modifiers))
		}
		for j, mod := range line.Modifiers {
			if !x12.ValidModifier(mod) {
				v.errorf(fmt.Sprintf("%s.modifiers[%d]", field, j), "modifier must be 2 alphanumeric characters, got %q", mod)
			}
		}
		if !line.Units.IsPositive() {
			v.errorf(field+".units", "units must be positive")
		}
		if !line.Charge.IsPositive() {
			v.errorf(field+".charge", "charge must be positive")
		}
		if line.ServiceDate == "" {
			v.errorf(field+".service_date", "line service date is required")
		} else if !x12.ValidCalendarDate(line.ServiceDate) {
			v.errorf(field+".service_date", "service date must match YYYY-MM-DD, got %q", line.ServiceDate)
		}
		switch n := len(line.DiagnosisPointers); {
		case n == 0:
			v.errorf(field+".diagnosis_pointers", "at least 1 diagnosis pointer is required")
		case n > 4:
			v.errorf(field+".diagnosis_pointers", "at most 4 diagnosis pointers are allowed, got %d", n)
		}
		for j, ptr := range line.DiagnosisPointers {
			if ptr < 1 || ptr > diagnosisCount {
				v.errorf(fmt.Sprintf("%s.diagnosis_pointers[%d]", field, j),
					"diagnosis pointer %d does not resolve: claim carries %d diagnosis code(s)", ptr, diagnosisCount)
			}
		}
	}
}

func (v *validator) checkChargeReconciliation(input *Claim837PInput) {
	if len(input.ServiceLines) == 0 {
		return
	}
	sum := decimal.Zero
	for i := range input.ServiceLines {
		sum = sum.Add(input.ServiceLines[i].Charge)
	}
	if sum.Sub(input.Claim.TotalCharge).Abs().GreaterThan(chargeTolerance) {
		v.warnf("claim.total_charge",
			"sum of line charges %s does not match claim total %s",
			sum.StringFixed(2), input.Claim.TotalCharge.StringFixed(2))
	}
}
