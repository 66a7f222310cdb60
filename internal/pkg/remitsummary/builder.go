// Package remitsummary aggregates decoded remittance transactions into
// flagged payment summaries and renders the reviewer-facing text report.
package remitsummary

import (
	"fmt"

	"claimgate-service/internal/pkg/edi835"
	"claimgate-service/internal/pkg/reasoncodes"

	"github.com/shopspring/decimal"
)

// FlagType names one alert condition detected during aggregation.
type FlagType string

const (
	FlagZeroPayment    FlagType = "zero_payment"
	FlagClaimDenied    FlagType = "claim_denied"
	FlagClaimReversed  FlagType = "claim_reversed"
	FlagPartialDenial  FlagType = "partial_denial"
	FlagUnitsReduced   FlagType = "units_reduced"
	FlagUnderpayment   FlagType = "underpayment"
	FlagDenialCategory FlagType = "denial_category"
)

// FlagSeverity grades a flag for the reviewer.
type FlagSeverity string

const (
	SeverityInfo     FlagSeverity = "info"
	SeverityWarning  FlagSeverity = "warning"
	SeverityCritical FlagSeverity = "critical"
)

// Flag is one typed alert, optionally scoped to a claim and line.
type Flag struct {
	Type     FlagType     `json:"type"`
	Severity FlagSeverity `json:"severity"`
	Message  string       `json:"message"`
	ClaimID  string       `json:"claim_id,omitempty"`
	Line     int          `json:"line,omitempty"` // 1-based, 0 when claim- or transaction-scoped
}

// LineSummary is the aggregated view of one service-line payment.
type LineSummary struct {
	ProcedureCode string   `json:"procedure_code"`
	Modifiers     []string `json:"modifiers,omitempty"`

	Charged            decimal.Decimal `json:"charged"`
	Allowed            decimal.Decimal `json:"allowed"`
	Paid               decimal.Decimal `json:"paid"`
	PatientResponsible decimal.Decimal `json:"patient_responsibility"`
	Contractual        decimal.Decimal `json:"contractual_adjustment"`
	Other              decimal.Decimal `json:"other_adjustment"`
	UnitsBilled        decimal.Decimal `json:"units_billed"`
	UnitsPaid          decimal.Decimal `json:"units_paid"`

	Denied        bool     `json:"denied"`
	DenialReasons []string `json:"denial_reasons,omitempty"`
}

// ClaimSummary is the aggregated view of one claim payment.
type ClaimSummary struct {
	ClaimID            string                      `json:"claim_id"`
	PayerControlNumber string                      `json:"payer_control_number,omitempty"`
	StatusCode         string                      `json:"status_code"`
	Status             edi835.ClaimStatusCategory  `json:"status"`
	PatientName        string                      `json:"patient_name,omitempty"`
	Charged            decimal.Decimal             `json:"charged"`
	Allowed            decimal.Decimal             `json:"allowed"`
	Paid               decimal.Decimal             `json:"paid"`
	PatientResponsible decimal.Decimal             `json:"patient_responsibility"`
	Contractual        decimal.Decimal             `json:"contractual_adjustment"`
	Other              decimal.Decimal             `json:"other_adjustment"`
	Lines              []LineSummary               `json:"lines,omitempty"`
	DenialCategories   []reasoncodes.DenialCategory `json:"denial_categories,omitempty"`
}

// ProviderAdjustmentSummary is one flattened provider-level adjustment entry.
type ProviderAdjustmentSummary struct {
	ProviderID   string          `json:"provider_id"`
	FiscalPeriod string          `json:"fiscal_period,omitempty"`
	ReasonCode   string          `json:"reason_code"`
	Description  string          `json:"description"`
	ReferenceID  string          `json:"reference_id,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
}

// PaymentSummary aggregates one remittance transaction: one check or EFT.
type PaymentSummary struct {
	TraceNumber       string               `json:"trace_number"`
	PaymentMethod     edi835.PaymentMethod `json:"payment_method"`
	PaymentMethodCode string               `json:"payment_method_code"`
	PaymentDate       string               `json:"payment_date,omitempty"`
	PayerName         string               `json:"payer_name"`
	PayeeName         string               `json:"payee_name"`

	TotalPaid          decimal.Decimal `json:"total_paid"`
	TotalCharged       decimal.Decimal `json:"total_charged"`
	TotalAllowed       decimal.Decimal `json:"total_allowed"`
	TotalPatientResp   decimal.Decimal `json:"total_patient_responsibility"`
	TotalContractual   decimal.Decimal `json:"total_contractual_adjustment"`
	TotalOther         decimal.Decimal `json:"total_other_adjustment"`

	ClaimsPaid     int `json:"claims_paid"`
	ClaimsDenied   int `json:"claims_denied"`
	ClaimsReversed int `json:"claims_reversed"`
	ClaimsOther    int `json:"claims_other"`

	Claims              []ClaimSummary              `json:"claims"`
	ProviderAdjustments []ProviderAdjustmentSummary `json:"provider_adjustments,omitempty"`
	Flags               []Flag                      `json:"flags,omitempty"`
}

// underpaymentTolerance absorbs penny-rounding drift before the underpayment
// flag fires.
var underpaymentTolerance = decimal.NewFromFloat(0.01)

// Build aggregates one decoded transaction into a flagged payment summary.
func Build(tx *edi835.Transaction) *PaymentSummary {
	s := &PaymentSummary{
		TraceNumber:       tx.TraceNumber,
		PaymentMethod:     tx.PaymentMethod,
		PaymentMethodCode: tx.PaymentMethodCode,
		PaymentDate:       tx.PaymentDate,
		PayerName:         tx.Payer.Name,
		PayeeName:         tx.Payee.Name,
		TotalPaid:         tx.TotalPaid,
	}

	for i := range tx.Claims {
		claim := summarizeClaim(&tx.Claims[i])
		s.Claims = append(s.Claims, claim)

		s.TotalCharged = s.TotalCharged.Add(claim.Charged)
		s.TotalAllowed = s.TotalAllowed.Add(claim.Allowed)
		s.TotalPatientResp = s.TotalPatientResp.Add(claim.PatientResponsible)
		s.TotalContractual = s.TotalContractual.Add(claim.Contractual)
		s.TotalOther = s.TotalOther.Add(claim.Other)

		switch claim.Status {
		case edi835.StatusPaid:
			s.ClaimsPaid++
		case edi835.StatusDenied:
			s.ClaimsDenied++
		case edi835.StatusReversal:
			s.ClaimsReversed++
		default:
			s.ClaimsOther++
		}

		s.Flags = append(s.Flags, claimFlags(&claim)...)
	}

	for _, plb := range tx.ProviderAdjustments {
		for _, detail := range plb.Details {
			s.ProviderAdjustments = append(s.ProviderAdjustments, ProviderAdjustmentSummary{
				ProviderID:   plb.ProviderID,
				FiscalPeriod: plb.FiscalPeriod,
				ReasonCode:   detail.ReasonCode,
				Description:  reasoncodes.ProviderAdjustmentDescription(detail.ReasonCode),
				ReferenceID:  detail.ReferenceID,
				Amount:       detail.Amount,
			})
		}
	}

	if s.TotalPaid.IsZero() && s.TotalCharged.IsPositive() {
		s.Flags = append([]Flag{{
			Type:     FlagZeroPayment,
			Severity: SeverityCritical,
			Message:  fmt.Sprintf("no payment issued against %s in charges", s.TotalCharged.StringFixed(2)),
		}}, s.Flags...)
	}
	return s
}

func summarizeClaim(claim *edi835.RemittanceClaim) ClaimSummary {
	cs := ClaimSummary{
		ClaimID:            claim.ClaimID,
		PayerControlNumber: claim.PayerControlNumber,
		StatusCode:         claim.StatusCode,
		Status:             claim.Status,
		Charged:            claim.ChargedAmount,
		Paid:               claim.PaidAmount,
	}
	if claim.PatientLastName != "" {
		cs.PatientName = claim.PatientLastName
		if claim.PatientFirstName != "" {
			cs.PatientName = claim.PatientLastName + ", " + claim.PatientFirstName
		}
	}

	// Group sums accumulate across the claim and its lines: line amounts add
	// to the claim-level amounts, they never replace them.
	contractual, patientResp, other := groupSums(claim.Adjustments)
	for i := range claim.Lines {
		ls := summarizeLine(&claim.Lines[i])
		cs.Lines = append(cs.Lines, ls)
		contractual = contractual.Add(ls.Contractual)
		patientResp = patientResp.Add(ls.PatientResponsible)
		other = other.Add(ls.Other)
	}
	cs.Contractual = contractual
	cs.Other = other

	cs.PatientResponsible = claim.PatientResponsible
	if cs.PatientResponsible.IsZero() {
		cs.PatientResponsible = patientResp
	}

	// Allowed-amount fallback chain: explicit supplemental amount, then the
	// sum of explicitly reported line allowed amounts, then charged minus
	// contractual. Which branch fires depends on what the payer populated;
	// see the design notes before "fixing" any apparent inconsistency here.
	switch {
	case claim.AllowedAmount != nil:
		cs.Allowed = *claim.AllowedAmount
	case anyLineAllowed(claim.Lines):
		sum := decimal.Zero
		for i := range claim.Lines {
			if claim.Lines[i].AllowedAmount != nil {
				sum = sum.Add(*claim.Lines[i].AllowedAmount)
			}
		}
		cs.Allowed = sum
	default:
		cs.Allowed = cs.Charged.Sub(cs.Contractual)
	}

	cs.DenialCategories = denialCategories(claim)
	return cs
}

func summarizeLine(line *edi835.ServiceLinePayment) LineSummary {
	ls := LineSummary{
		ProcedureCode:      line.ProcedureCode,
		Modifiers:          line.Modifiers,
		Charged:            line.ChargedAmount,
		Paid:               line.PaidAmount,
		UnitsBilled:        line.UnitsBilled,
		UnitsPaid:          line.UnitsPaid,
	}
	ls.Contractual, ls.PatientResponsible, ls.Other = groupSums(line.Adjustments)

	if line.AllowedAmount != nil {
		ls.Allowed = *line.AllowedAmount
	} else {
		ls.Allowed = ls.Charged.Sub(ls.Contractual)
	}

	ls.Denied = line.PaidAmount.IsZero() && line.ChargedAmount.IsPositive()
	if ls.Denied {
		for _, adj := range line.Adjustments {
			for _, detail := range adj.Details {
				if detail.Amount.IsZero() && adj.Group == edi835.GroupContractual {
					continue
				}
				ls.DenialReasons = append(ls.DenialReasons,
					fmt.Sprintf("%s: %s", detail.ReasonCode, reasoncodes.ClaimAdjustmentDescription(detail.ReasonCode)))
			}
		}
	}
	return ls
}

func groupSums(adjustments []edi835.Adjustment) (contractual, patientResp, other decimal.Decimal) {
	for _, adj := range adjustments {
		for _, detail := range adj.Details {
			switch adj.Group {
			case edi835.GroupContractual:
				contractual = contractual.Add(detail.Amount)
			case edi835.GroupPatientResponsibility:
				patientResp = patientResp.Add(detail.Amount)
			default:
				other = other.Add(detail.Amount)
			}
		}
	}
	return contractual, patientResp, other
}

func anyLineAllowed(lines []edi835.ServiceLinePayment) bool {
	for i := range lines {
		if lines[i].AllowedAmount != nil {
			return true
		}
	}
	return false
}

func denialCategories(claim *edi835.RemittanceClaim) []reasoncodes.DenialCategory {
	seen := map[reasoncodes.DenialCategory]bool{}
	var categories []reasoncodes.DenialCategory
	record := func(code string) {
		category := reasoncodes.ClassifyDenial(code)
		if category == reasoncodes.NotDenial || seen[category] {
			return
		}
		seen[category] = true
		categories = append(categories, category)
	}
	for _, adj := range claim.Adjustments {
		for _, detail := range adj.Details {
			record(detail.ReasonCode)
		}
	}
	for i := range claim.Lines {
		for _, adj := range claim.Lines[i].Adjustments {
			for _, detail := range adj.Details {
				record(detail.ReasonCode)
			}
		}
	}
	return categories
}

func claimFlags(claim *ClaimSummary) []Flag {
	var flags []Flag
	add := func(t FlagType, severity FlagSeverity, line int, format string, args ...interface{}) {
		flags = append(flags, Flag{
			Type: t, Severity: severity, Message: fmt.Sprintf(format, args...),
			ClaimID: claim.ClaimID, Line: line,
		})
	}

	switch claim.Status {
	case edi835.StatusDenied:
		add(FlagClaimDenied, SeverityWarning, 0, "claim denied in full (%s charged)", claim.Charged.StringFixed(2))
	case edi835.StatusReversal:
		add(FlagClaimReversed, SeverityWarning, 0, "claim payment reversed (%s)", claim.Paid.StringFixed(2))
	}

	deniedLines := 0
	for i := range claim.Lines {
		line := &claim.Lines[i]
		if line.Denied {
			deniedLines++
		}
		if line.UnitsPaid.LessThan(line.UnitsBilled) {
			add(FlagUnitsReduced, SeverityInfo, i+1, "units reduced from %s to %s on %s",
				line.UnitsBilled.String(), line.UnitsPaid.String(), line.ProcedureCode)
		}
	}
	if deniedLines > 0 && deniedLines < len(claim.Lines) && claim.Status != edi835.StatusDenied {
		add(FlagPartialDenial, SeverityWarning, 0, "%d of %d service lines denied", deniedLines, len(claim.Lines))
	}

	if claim.Status != edi835.StatusDenied && claim.Status != edi835.StatusReversal {
		expected := claim.Allowed.Sub(claim.PatientResponsible)
		if expected.Sub(claim.Paid).GreaterThan(underpaymentTolerance) {
			add(FlagUnderpayment, SeverityWarning, 0, "paid %s against expected %s",
				claim.Paid.StringFixed(2), expected.StringFixed(2))
		}
	}

	for _, category := range claim.DenialCategories {
		add(FlagDenialCategory, SeverityInfo, 0, "%s", category.Description())
	}
	return flags
}
