package remitsummary

import (
	"testing"

	"claimgate-service/internal/pkg/edi835"
	"claimgate-service/internal/pkg/reasoncodes"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(value string) *decimal.Decimal {
	d := dec(value)
	return &d
}

func adjustment(raw string, group edi835.AdjustmentGroup, details ...edi835.AdjustmentDetail) edi835.Adjustment {
	return edi835.Adjustment{Group: group, RawGroup: raw, Details: details}
}

func co(code, amount string) edi835.Adjustment {
	return adjustment("CO", edi835.GroupContractual, edi835.AdjustmentDetail{ReasonCode: code, Amount: dec(amount)})
}

func pr(code, amount string) edi835.Adjustment {
	return adjustment("PR", edi835.GroupPatientResponsibility, edi835.AdjustmentDetail{ReasonCode: code, Amount: dec(amount)})
}

func sampleTransaction() *edi835.Transaction {
	return &edi835.Transaction{
		TraceNumber:       "EFT20240120",
		PaymentMethodCode: "ACH",
		PaymentMethod:     edi835.MethodACH,
		PaymentDate:       "20240120",
		TotalPaid:         dec("145.00"),
		Payer:             edi835.Payer{Name: "ACME HEALTH PLAN"},
		Payee:             edi835.Payee{Name: "DOWNTOWN PHYSICAL THERAPY", NPI: "1234567893"},
		Claims: []edi835.RemittanceClaim{
			{
				ClaimID:            "CLAIM0001",
				StatusCode:         "1",
				Status:             edi835.StatusPaid,
				ChargedAmount:      dec("200.00"),
				PaidAmount:         dec("145.00"),
				PatientResponsible: dec("20.00"),
				Lines: []edi835.ServiceLinePayment{
					{
						ProcedureCode: "97110",
						Modifiers:     []string{"GP"},
						ChargedAmount: dec("120.00"),
						PaidAmount:    dec("85.00"),
						UnitsBilled:   dec("3"),
						UnitsPaid:     dec("3"),
						Adjustments:   []edi835.Adjustment{co("45", "35.00")},
					},
					{
						ProcedureCode: "97140",
						ChargedAmount: dec("80.00"),
						PaidAmount:    dec("60.00"),
						UnitsBilled:   dec("2"),
						UnitsPaid:     dec("2"),
						Adjustments:   []edi835.Adjustment{co("45", "20.00")},
					},
				},
			},
			{
				ClaimID:       "CLAIM0002",
				StatusCode:    "4",
				Status:        edi835.StatusDenied,
				ChargedAmount: dec("150.00"),
				PaidAmount:    dec("0.00"),
				Adjustments: []edi835.Adjustment{
					adjustment("CO", edi835.GroupContractual,
						edi835.AdjustmentDetail{ReasonCode: "197", Amount: dec("150.00")}),
				},
			},
		},
		ProviderAdjustments: []edi835.ProviderAdjustment{
			{
				ProviderID:   "1234567893",
				FiscalPeriod: "20241231",
				Details: []edi835.ProviderAdjustmentDetail{
					{ReasonCode: "WO", ReferenceID: "REF889", Amount: dec("25.00")},
					{ReasonCode: "L6", Amount: dec("-3.10")},
				},
			},
		},
	}
}

func TestBuildTotalsAndCounts(t *testing.T) {
	summary := Build(sampleTransaction())
	require.NotNil(t, summary)

	assert.Equal(t, "EFT20240120", summary.TraceNumber)
	assert.Equal(t, edi835.MethodACH, summary.PaymentMethod)
	assert.Equal(t, "ACME HEALTH PLAN", summary.PayerName)
	assert.Equal(t, "DOWNTOWN PHYSICAL THERAPY", summary.PayeeName)

	assert.True(t, summary.TotalCharged.Equal(dec("350.00")), "charged: %s", summary.TotalCharged)
	assert.True(t, summary.TotalPaid.Equal(dec("145.00")))
	assert.True(t, summary.TotalContractual.Equal(dec("205.00")), "contractual: %s", summary.TotalContractual)
	assert.True(t, summary.TotalPatientResp.Equal(dec("20.00")))

	assert.Equal(t, 1, summary.ClaimsPaid)
	assert.Equal(t, 1, summary.ClaimsDenied)
	assert.Equal(t, 0, summary.ClaimsReversed)
}

func TestLineAdjustmentsAddToClaimLevel(t *testing.T) {
	tx := sampleTransaction()
	tx.Claims[0].Adjustments = []edi835.Adjustment{co("45", "10.00")}

	summary := Build(tx)
	// 10 claim-level + 35 + 20 line-level.
	assert.True(t, summary.Claims[0].Contractual.Equal(dec("65.00")),
		"contractual: %s", summary.Claims[0].Contractual)
}

func TestAllowedAmountFallbacks(t *testing.T) {
	t.Run("explicit claim amount wins", func(t *testing.T) {
		tx := sampleTransaction()
		tx.Claims[0].AllowedAmount = decPtr("170.00")
		tx.Claims[0].Lines[0].AllowedAmount = decPtr("999.00")

		summary := Build(tx)
		assert.True(t, summary.Claims[0].Allowed.Equal(dec("170.00")))
	})

	t.Run("line amounts sum when claim amount absent", func(t *testing.T) {
		tx := sampleTransaction()
		tx.Claims[0].Lines[0].AllowedAmount = decPtr("100.00")
		tx.Claims[0].Lines[1].AllowedAmount = decPtr("65.00")

		summary := Build(tx)
		assert.True(t, summary.Claims[0].Allowed.Equal(dec("165.00")))
	})

	t.Run("charged minus contractual when nothing reported", func(t *testing.T) {
		summary := Build(sampleTransaction())
		// 200 charged - 55 line contractual.
		assert.True(t, summary.Claims[0].Allowed.Equal(dec("145.00")),
			"allowed: %s", summary.Claims[0].Allowed)
	})
}

func TestPatientResponsibilityFallsBackToGroupSums(t *testing.T) {
	tx := sampleTransaction()
	tx.Claims[0].PatientResponsible = decimal.Zero
	tx.Claims[0].Lines[0].Adjustments = append(tx.Claims[0].Lines[0].Adjustments, pr("3", "15.00"))

	summary := Build(tx)
	assert.True(t, summary.Claims[0].PatientResponsible.Equal(dec("15.00")))
}

func TestDeniedClaimFlagsAndCategory(t *testing.T) {
	summary := Build(sampleTransaction())

	assert.True(t, hasFlag(summary, FlagClaimDenied, "CLAIM0002"))
	assert.Equal(t,
		[]reasoncodes.DenialCategory{reasoncodes.NoPriorAuthorization},
		summary.Claims[1].DenialCategories)
	assert.True(t, hasFlag(summary, FlagDenialCategory, "CLAIM0002"))
}

func TestReversalFlag(t *testing.T) {
	tx := sampleTransaction()
	tx.Claims[1].StatusCode = "22"
	tx.Claims[1].Status = edi835.StatusReversal
	tx.Claims[1].PaidAmount = dec("-150.00")
	tx.Claims[1].Adjustments = nil

	summary := Build(tx)
	assert.True(t, hasFlag(summary, FlagClaimReversed, "CLAIM0002"))
	assert.False(t, hasFlag(summary, FlagClaimDenied, "CLAIM0002"))
	assert.Equal(t, 1, summary.ClaimsReversed)
}

func TestPartialDenialFlag(t *testing.T) {
	tx := sampleTransaction()
	tx.Claims[0].Lines[1].PaidAmount = decimal.Zero
	tx.Claims[0].Lines[1].Adjustments = []edi835.Adjustment{pr("119", "80.00")}

	summary := Build(tx)
	assert.True(t, hasFlag(summary, FlagPartialDenial, "CLAIM0001"))
	require.True(t, summary.Claims[0].Lines[1].Denied)
	require.Len(t, summary.Claims[0].Lines[1].DenialReasons, 1)
	assert.Contains(t, summary.Claims[0].Lines[1].DenialReasons[0], "119")
	assert.Equal(t,
		[]reasoncodes.DenialCategory{reasoncodes.VisitLimitExceeded},
		summary.Claims[0].DenialCategories)
}

func TestZeroAmountContractualDetailNotListedAsDenialReason(t *testing.T) {
	tx := sampleTransaction()
	tx.Claims[0].Lines[1].PaidAmount = decimal.Zero
	tx.Claims[0].Lines[1].Adjustments = []edi835.Adjustment{
		adjustment("CO", edi835.GroupContractual,
			edi835.AdjustmentDetail{ReasonCode: "45", Amount: decimal.Zero},
			edi835.AdjustmentDetail{ReasonCode: "97", Amount: dec("80.00")},
		),
	}

	summary := Build(tx)
	reasons := summary.Claims[0].Lines[1].DenialReasons
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "97")
}

func TestUnitsReducedFlag(t *testing.T) {
	tx := sampleTransaction()
	tx.Claims[0].Lines[0].UnitsPaid = dec("2")

	summary := Build(tx)
	found := false
	for _, flag := range summary.Flags {
		if flag.Type == FlagUnitsReduced {
			found = true
			assert.Equal(t, "CLAIM0001", flag.ClaimID)
			assert.Equal(t, 1, flag.Line)
			assert.Contains(t, flag.Message, "97110")
		}
	}
	assert.True(t, found)
}

func TestUnderpaymentFlag(t *testing.T) {
	t.Run("flags paid below allowed minus patient share", func(t *testing.T) {
		tx := sampleTransaction()
		tx.Claims[0].AllowedAmount = decPtr("180.00")
		// expected 180 - 20 = 160, paid 145

		summary := Build(tx)
		assert.True(t, hasFlag(summary, FlagUnderpayment, "CLAIM0001"))
	})

	t.Run("penny drift tolerated", func(t *testing.T) {
		tx := sampleTransaction()
		tx.Claims[0].AllowedAmount = decPtr("165.01")
		// expected 145.01, paid 145.00

		summary := Build(tx)
		assert.False(t, hasFlag(summary, FlagUnderpayment, "CLAIM0001"))
	})

	t.Run("denied claims skipped", func(t *testing.T) {
		summary := Build(sampleTransaction())
		assert.False(t, hasFlag(summary, FlagUnderpayment, "CLAIM0002"))
	})
}

func TestZeroPaymentFlagIsCriticalAndFirst(t *testing.T) {
	tx := sampleTransaction()
	tx.TotalPaid = decimal.Zero

	summary := Build(tx)
	require.NotEmpty(t, summary.Flags)
	assert.Equal(t, FlagZeroPayment, summary.Flags[0].Type)
	assert.Equal(t, SeverityCritical, summary.Flags[0].Severity)
}

func TestDenialCategoriesDeduplicated(t *testing.T) {
	tx := sampleTransaction()
	tx.Claims[1].Adjustments = []edi835.Adjustment{
		adjustment("CO", edi835.GroupContractual,
			edi835.AdjustmentDetail{ReasonCode: "197", Amount: dec("100.00")},
			edi835.AdjustmentDetail{ReasonCode: "198", Amount: dec("50.00")},
		),
	}

	summary := Build(tx)
	assert.Equal(t,
		[]reasoncodes.DenialCategory{reasoncodes.NoPriorAuthorization},
		summary.Claims[1].DenialCategories)
}

func TestProviderAdjustmentsFlattened(t *testing.T) {
	summary := Build(sampleTransaction())
	require.Len(t, summary.ProviderAdjustments, 2)

	first := summary.ProviderAdjustments[0]
	assert.Equal(t, "1234567893", first.ProviderID)
	assert.Equal(t, "WO", first.ReasonCode)
	assert.Equal(t, "REF889", first.ReferenceID)
	assert.True(t, first.Amount.Equal(dec("25.00")))
	assert.NotEmpty(t, first.Description)

	assert.True(t, summary.ProviderAdjustments[1].Amount.Equal(dec("-3.10")))
}

func hasFlag(summary *PaymentSummary, flagType FlagType, claimID string) bool {
	for _, flag := range summary.Flags {
		if flag.Type == flagType && flag.ClaimID == claimID {
			return true
		}
	}
	return false
}
