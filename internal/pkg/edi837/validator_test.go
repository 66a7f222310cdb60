package edi837

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClaimInput() *Claim837PInput {
	return &Claim837PInput{
		Submitter: Submitter{
			Name:         "RIVERBEND PHYSICAL THERAPY",
			ID:           "RBPT01",
			ContactName:  "ANNA KOWALSKI",
			ContactPhone: "5551234567",
		},
		ReceiverName: "ACME HEALTH PLAN",
		ReceiverID:   "ACMEHP",
		BillingProvider: BillingProvider{
			OrganizationName: "RIVERBEND PHYSICAL THERAPY LLC",
			NPI:              "1234567893",
			TaxID:            "123456789",
			TaxonomyCode:     "225100000X",
			Address:          Address{Line1: "100 MAIN ST", City: "SPRINGFIELD", State: "IL", Zip: "62701"},
		},
		RenderingProvider: RenderingProvider{
			FirstName:    "JORDAN",
			LastName:     "LEE",
			NPI:          "1987654321",
			TaxonomyCode: "2251X0800X",
		},
		Subscriber: Subscriber{
			FirstName:   "PAT",
			LastName:    "DOE",
			MemberID:    "W123456789",
			DateOfBirth: "1980-04-12",
			Gender:      "F",
			Address:     Address{Line1: "22 OAK AVE", City: "SPRINGFIELD", State: "IL", Zip: "62702"},
			PayerName:   "ACME HEALTH PLAN",
			PayerID:     "60054",
		},
		Claim: ClaimHeader{
			ClaimID:        "CLAIM0001",
			TotalCharge:    decimal.NewFromFloat(285.00),
			PlaceOfService: "11",
			ServiceDate:    "2024-01-10",
			DiagnosisCodes: []string{"M54.50"},
		},
		ServiceLines: []ServiceLine{
			{ProcedureCode: "97110", Modifiers: []string{"GP"}, Units: decimal.NewFromInt(2), Charge: decimal.NewFromFloat(120.00), ServiceDate: "2024-01-10", DiagnosisPointers: []int{1}},
			{ProcedureCode: "97140", Modifiers: []string{"GP"}, Units: decimal.NewFromInt(1), Charge: decimal.NewFromFloat(90.00), ServiceDate: "2024-01-10", DiagnosisPointers: []int{1}},
			{ProcedureCode: "97530", Units: decimal.NewFromInt(1), Charge: decimal.NewFromFloat(75.00), ServiceDate: "2024-01-10", DiagnosisPointers: []int{1}},
		},
	}
}

func findingFields(findings []Finding, severity Severity) []string {
	var fields []string
	for _, f := range findings {
		if f.Severity == severity {
			fields = append(fields, f.Field)
		}
	}
	return fields
}

func TestValidateCleanClaim(t *testing.T) {
	findings := Validate(validClaimInput())
	assert.Empty(t, findings)
}

func TestValidateMissingBillingNPI(t *testing.T) {
	input := validClaimInput()
	input.BillingProvider.NPI = ""

	findings := Validate(input)
	require.True(t, HasErrors(findings))
	assert.Contains(t, findingFields(findings, SeverityError), "billing_provider.npi")
}

func TestValidateFormatRules(t *testing.T) {
	input := validClaimInput()
	input.BillingProvider.NPI = "12345"
	input.BillingProvider.TaxID = "12-34"
	input.Subscriber.DateOfBirth = "04/12/1980"
	input.Subscriber.Address.State = "Illinois"
	input.ServiceLines[0].ProcedureCode = "971"
	input.ServiceLines[0].Modifiers = []string{"GPX"}

	fields := findingFields(Validate(input), SeverityError)
	assert.Contains(t, fields, "billing_provider.npi")
	assert.Contains(t, fields, "billing_provider.tax_id")
	assert.Contains(t, fields, "subscriber.date_of_birth")
	assert.Contains(t, fields, "subscriber.address.state")
	assert.Contains(t, fields, "service_lines[0].procedure_code")
	assert.Contains(t, fields, "service_lines[0].modifiers[0]")
}

func TestValidateRulesDoNotShortCircuit(t *testing.T) {
	input := validClaimInput()
	input.Submitter.Name = ""
	input.BillingProvider.NPI = ""
	input.Claim.ClaimID = ""

	findings := Validate(input)
	fields := findingFields(findings, SeverityError)
	assert.Contains(t, fields, "submitter.name")
	assert.Contains(t, fields, "billing_provider.npi")
	assert.Contains(t, fields, "claim.claim_id")
}

func TestValidateDiagnosisPointers(t *testing.T) {
	t.Run("Out Of Range Pointer", func(t *testing.T) {
		input := validClaimInput()
		input.ServiceLines[1].DiagnosisPointers = []int{2}

		findings := Validate(input)
		require.True(t, HasErrors(findings))
		assert.Contains(t, findingFields(findings, SeverityError), "service_lines[1].diagnosis_pointers[0]")
	})

	t.Run("Zero Pointer", func(t *testing.T) {
		input := validClaimInput()
		input.ServiceLines[0].DiagnosisPointers = []int{0}
		assert.True(t, HasErrors(Validate(input)))
	})

	t.Run("Too Many Pointers", func(t *testing.T) {
		input := validClaimInput()
		input.Claim.DiagnosisCodes = []string{"M54.50", "M25.551", "M62.81", "R26.2", "M79.1"}
		input.ServiceLines[0].DiagnosisPointers = []int{1, 2, 3, 4, 5}
		assert.Contains(t, findingFields(Validate(input), SeverityError), "service_lines[0].diagnosis_pointers")
	})
}

func TestValidateCardinality(t *testing.T) {
	t.Run("No Diagnosis Codes", func(t *testing.T) {
		input := validClaimInput()
		input.Claim.DiagnosisCodes = nil
		assert.Contains(t, findingFields(Validate(input), SeverityError), "claim.diagnosis_codes")
	})

	t.Run("Thirteen Diagnosis Codes", func(t *testing.T) {
		input := validClaimInput()
		input.Claim.DiagnosisCodes = make([]string, 13)
		for i := range input.Claim.DiagnosisCodes {
			input.Claim.DiagnosisCodes[i] = "M54.50"
		}
		assert.Contains(t, findingFields(Validate(input), SeverityError), "claim.diagnosis_codes")
	})

	t.Run("No Service Lines", func(t *testing.T) {
		input := validClaimInput()
		input.ServiceLines = nil
		assert.Contains(t, findingFields(Validate(input), SeverityError), "service_lines")
	})
}

func TestValidateChargeReconciliationWarning(t *testing.T) {
	input := validClaimInput()
	input.Claim.TotalCharge = decimal.NewFromFloat(300.00)

	findings := Validate(input)
	assert.False(t, HasErrors(findings), "mismatched totals must stay a warning")
	assert.Contains(t, findingFields(findings, SeverityWarning), "claim.total_charge")
}

func TestValidateChargeToleranceWithinPenny(t *testing.T) {
	input := validClaimInput()
	input.Claim.TotalCharge = decimal.NewFromFloat(285.01)
	assert.Empty(t, Validate(input))
}
