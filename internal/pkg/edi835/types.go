// Package edi835 implements the inbound remittance-advice side of the codec:
// delimiter detection, structural checks, and best-effort extraction of
// claim-payment records from one remittance transaction.
package edi835

import "github.com/shopspring/decimal"

// ClaimStatusCategory buckets the payer's claim status code. The raw code is
// preserved alongside so unknown codes still round-trip into descriptions.
type ClaimStatusCategory string

const (
	StatusPaid     ClaimStatusCategory = "paid"
	StatusDenied   ClaimStatusCategory = "denied"
	StatusReversal ClaimStatusCategory = "reversal"
	StatusOther    ClaimStatusCategory = "other"
)

// ClassifyStatus maps a claim status code onto its category.
func ClassifyStatus(code string) ClaimStatusCategory {
	switch code {
	case "1", "2", "3", "19", "20", "21":
		return StatusPaid
	case "4":
		return StatusDenied
	case "22":
		return StatusReversal
	default:
		return StatusOther
	}
}

// AdjustmentGroup classifies one adjustment segment's group code.
type AdjustmentGroup string

const (
	GroupContractual           AdjustmentGroup = "contractual_obligation"
	GroupPatientResponsibility AdjustmentGroup = "patient_responsibility"
	GroupOtherAdjustment       AdjustmentGroup = "other_adjustment"
	GroupPayerInitiated        AdjustmentGroup = "payer_initiated"
	GroupCorrection            AdjustmentGroup = "correction_reversal"
	GroupUnknown               AdjustmentGroup = "unknown"
)

// ClassifyGroup maps a raw group code onto its classification.
func ClassifyGroup(code string) AdjustmentGroup {
	switch code {
	case "CO":
		return GroupContractual
	case "PR":
		return GroupPatientResponsibility
	case "OA":
		return GroupOtherAdjustment
	case "PI":
		return GroupPayerInitiated
	case "CR":
		return GroupCorrection
	default:
		return GroupUnknown
	}
}

// PaymentMethod classifies how the transaction's funds move.
type PaymentMethod string

const (
	MethodACH        PaymentMethod = "ach"
	MethodCheck      PaymentMethod = "check"
	MethodWire       PaymentMethod = "wire"
	MethodNonPayment PaymentMethod = "non_payment"
	MethodOther      PaymentMethod = "other"
)

// ClassifyPaymentMethod maps a raw payment method code onto its category.
func ClassifyPaymentMethod(code string) PaymentMethod {
	switch code {
	case "ACH":
		return MethodACH
	case "CHK":
		return MethodCheck
	case "FWT", "BOP":
		return MethodWire
	case "NON":
		return MethodNonPayment
	default:
		return MethodOther
	}
}

// AdjustmentDetail is one (reason, amount, optional quantity) triple.
type AdjustmentDetail struct {
	ReasonCode string           `json:"reason_code"`
	Amount     decimal.Decimal  `json:"amount"`
	Quantity   *decimal.Decimal `json:"quantity,omitempty"`
}

// Adjustment is one adjustment segment: a shared group code and up to six
// detail triples.
type Adjustment struct {
	Group    AdjustmentGroup    `json:"group"`
	RawGroup string             `json:"raw_group"`
	Details  []AdjustmentDetail `json:"details"`
}

// ServiceLinePayment is the payer's disposition of one billed procedure.
type ServiceLinePayment struct {
	ProcedureQualifier string   `json:"procedure_qualifier"`
	ProcedureCode      string   `json:"procedure_code"`
	Modifiers          []string `json:"modifiers,omitempty"`

	ChargedAmount decimal.Decimal `json:"charged_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	UnitsPaid     decimal.Decimal `json:"units_paid"`
	UnitsBilled   decimal.Decimal `json:"units_billed"`
	ServiceDate   string          `json:"service_date,omitempty"`

	// AllowedAmount is nil when the payer did not report it: absence and a
	// reported zero drive different fallback behavior downstream.
	AllowedAmount *decimal.Decimal `json:"allowed_amount,omitempty"`
	Adjustments   []Adjustment     `json:"adjustments,omitempty"`
	RemarkCodes   []string         `json:"remark_codes,omitempty"`
}

// RemittanceClaim is one claim-payment record.
type RemittanceClaim struct {
	ClaimID            string              `json:"claim_id"`
	StatusCode         string              `json:"status_code"`
	Status             ClaimStatusCategory `json:"status"`
	ChargedAmount      decimal.Decimal     `json:"charged_amount"`
	PaidAmount         decimal.Decimal     `json:"paid_amount"`
	PatientResponsible decimal.Decimal     `json:"patient_responsibility"`
	PayerControlNumber string              `json:"payer_control_number,omitempty"`
	FacilityCode       string              `json:"facility_code,omitempty"`
	FrequencyCode      string              `json:"frequency_code,omitempty"`
	PatientLastName    string              `json:"patient_last_name,omitempty"`
	PatientFirstName   string              `json:"patient_first_name,omitempty"`

	AllowedAmount *decimal.Decimal     `json:"allowed_amount,omitempty"`
	Adjustments   []Adjustment         `json:"adjustments,omitempty"`
	Lines         []ServiceLinePayment `json:"lines,omitempty"`
}

// ProviderAdjustmentDetail is one provider-level (reason, reference, amount)
// triple.
type ProviderAdjustmentDetail struct {
	ReasonCode  string          `json:"reason_code"`
	ReferenceID string          `json:"reference_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

// ProviderAdjustment carries transaction-level recoupments and withholds not
// tied to any single claim.
type ProviderAdjustment struct {
	ProviderID   string                     `json:"provider_id"`
	FiscalPeriod string                     `json:"fiscal_period"`
	Details      []ProviderAdjustmentDetail `json:"details"`
}

// Address is a decoded postal address.
type Address struct {
	Line1 string `json:"line1,omitempty"`
	Line2 string `json:"line2,omitempty"`
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`
	Zip   string `json:"zip,omitempty"`
}

// Payer identifies the paying organization.
type Payer struct {
	Name         string   `json:"name"`
	ID           string   `json:"id,omitempty"`
	Address      *Address `json:"address,omitempty"`
	ContactName  string   `json:"contact_name,omitempty"`
	ContactPhone string   `json:"contact_phone,omitempty"`
}

// Payee identifies the paid provider organization.
type Payee struct {
	Name    string   `json:"name"`
	NPI     string   `json:"npi,omitempty"`
	TaxID   string   `json:"tax_id,omitempty"`
	Address *Address `json:"address,omitempty"`
}

// Transaction is one decoded remittance advice: one check or EFT.
type Transaction struct {
	InterchangeControlNumber string `json:"interchange_control_number"`
	TransactionControlNumber string `json:"transaction_control_number"`

	PaymentMethodCode string          `json:"payment_method_code"`
	PaymentMethod     PaymentMethod   `json:"payment_method"`
	TotalPaid         decimal.Decimal `json:"total_paid"`
	CreditDebitFlag   string          `json:"credit_debit_flag"`
	TraceNumber       string          `json:"trace_number"`
	PaymentDate       string          `json:"payment_date,omitempty"`
	ProductionDate    string          `json:"production_date,omitempty"`

	Payer Payer `json:"payer"`
	Payee Payee `json:"payee"`

	Claims              []RemittanceClaim    `json:"claims"`
	ProviderAdjustments []ProviderAdjustment `json:"provider_adjustments,omitempty"`
}

// DecodeResult is the outcome of one decode call. Decoding never panics or
// returns a Go error: structural failure is communicated through Success and
// the error list.
type DecodeResult struct {
	Success     bool         `json:"success"`
	Transaction *Transaction `json:"transaction,omitempty"`
	Errors      []string     `json:"errors,omitempty"`
}
