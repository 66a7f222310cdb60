package remitsummary

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const reportWidth = 78

// Render produces the fixed-width text report for one payment summary.
// The layout targets monospace review in a terminal or a printed worklist.
func Render(s *PaymentSummary) string {
	var b strings.Builder

	rule := strings.Repeat("=", reportWidth)
	thin := strings.Repeat("-", reportWidth)

	b.WriteString(rule + "\n")
	b.WriteString(center("REMITTANCE ADVICE SUMMARY") + "\n")
	b.WriteString(rule + "\n")

	writeField(&b, "Payer", s.PayerName)
	writeField(&b, "Payee", s.PayeeName)
	writeField(&b, "Trace Number", s.TraceNumber)
	writeField(&b, "Payment Method", fmt.Sprintf("%s (%s)", s.PaymentMethod, s.PaymentMethodCode))
	if s.PaymentDate != "" {
		writeField(&b, "Payment Date", s.PaymentDate)
	}
	b.WriteString(thin + "\n")

	writeAmount(&b, "Total Charged", s.TotalCharged)
	writeAmount(&b, "Total Allowed", s.TotalAllowed)
	writeAmount(&b, "Total Paid", s.TotalPaid)
	writeAmount(&b, "Patient Responsibility", s.TotalPatientResp)
	writeAmount(&b, "Contractual Adjustments", s.TotalContractual)
	writeAmount(&b, "Other Adjustments", s.TotalOther)
	b.WriteString(fmt.Sprintf("%-24s paid %d / denied %d / reversed %d / other %d\n",
		"Claims", s.ClaimsPaid, s.ClaimsDenied, s.ClaimsReversed, s.ClaimsOther))

	if len(s.Flags) > 0 {
		b.WriteString(thin + "\n")
		b.WriteString("FLAGS\n")
		for _, flag := range s.Flags {
			scope := ""
			if flag.ClaimID != "" {
				scope = " " + flag.ClaimID
				if flag.Line > 0 {
					scope += fmt.Sprintf(" line %d", flag.Line)
				}
			}
			b.WriteString(fmt.Sprintf("  [%-8s]%s %s\n", strings.ToUpper(string(flag.Severity)), scope, flag.Message))
		}
	}

	for i := range s.Claims {
		writeClaim(&b, thin, &s.Claims[i])
	}

	if len(s.ProviderAdjustments) > 0 {
		b.WriteString(thin + "\n")
		b.WriteString("PROVIDER-LEVEL ADJUSTMENTS\n")
		for _, plb := range s.ProviderAdjustments {
			ref := plb.ReferenceID
			if ref == "" {
				ref = "-"
			}
			b.WriteString(fmt.Sprintf("  %-10s %-12s %12s  %s\n",
				plb.ReasonCode, ref, plb.Amount.StringFixed(2), plb.Description))
		}
	}

	b.WriteString(rule + "\n")
	return b.String()
}

func writeClaim(b *strings.Builder, thin string, claim *ClaimSummary) {
	b.WriteString(thin + "\n")
	header := fmt.Sprintf("CLAIM %s", claim.ClaimID)
	if claim.PatientName != "" {
		header += "  " + claim.PatientName
	}
	b.WriteString(fmt.Sprintf("%-*s%s\n", reportWidth-len(claim.Status)-9, header,
		fmt.Sprintf("[%s]", strings.ToUpper(string(claim.Status)))))
	if claim.PayerControlNumber != "" {
		writeField(b, "Payer Control No", claim.PayerControlNumber)
	}
	b.WriteString(fmt.Sprintf("%-24s charged %10s  allowed %10s  paid %10s\n", "",
		claim.Charged.StringFixed(2), claim.Allowed.StringFixed(2), claim.Paid.StringFixed(2)))
	b.WriteString(fmt.Sprintf("%-24s pt-resp %10s  contrct %10s  other %11s\n", "",
		claim.PatientResponsible.StringFixed(2), claim.Contractual.StringFixed(2), claim.Other.StringFixed(2)))

	if len(claim.Lines) > 0 {
		b.WriteString(fmt.Sprintf("  %-8s %-8s %10s %10s %10s %10s  %s\n",
			"PROC", "MODS", "CHARGED", "ALLOWED", "PAID", "PT-RESP", "STATUS"))
		for _, line := range claim.Lines {
			status := "paid"
			if line.Denied {
				status = "DENIED"
			}
			b.WriteString(fmt.Sprintf("  %-8s %-8s %10s %10s %10s %10s  %s\n",
				line.ProcedureCode, strings.Join(line.Modifiers, ","),
				line.Charged.StringFixed(2), line.Allowed.StringFixed(2),
				line.Paid.StringFixed(2), line.PatientResponsible.StringFixed(2), status))
			for _, reason := range line.DenialReasons {
				b.WriteString("           > " + reason + "\n")
			}
		}
	}

	for _, category := range claim.DenialCategories {
		b.WriteString("  Denial category: " + category.Description() + "\n")
	}
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("%-24s %s\n", label+":", value))
}

func writeAmount(b *strings.Builder, label string, amount decimal.Decimal) {
	b.WriteString(fmt.Sprintf("%-24s %14s\n", label, amount.StringFixed(2)))
}

func center(text string) string {
	pad := (reportWidth - len(text)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + text
}
