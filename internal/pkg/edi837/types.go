// Package edi837 implements the outbound professional-claim side of the
// codec: structured claim input, the pre-flight validation engine, and the
// encoder that serializes one claim into one interchange.
package edi837

import "github.com/shopspring/decimal"

// Address is a postal address carried on provider and subscriber loops.
type Address struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2,omitempty"`
	City  string `json:"city"`
	State string `json:"state" validate:"omitempty,statecode"`
	Zip   string `json:"zip"`
}

// Submitter identifies the organization transmitting the claim and its
// technical contact.
type Submitter struct {
	Name         string `json:"name"`
	ID           string `json:"id"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email,omitempty"`
}

// BillingProvider is the pay-to organization.
type BillingProvider struct {
	OrganizationName string  `json:"organization_name"`
	NPI              string  `json:"npi" validate:"omitempty,npi"`
	TaxID            string  `json:"tax_id" validate:"omitempty,taxid"`
	TaxonomyCode     string  `json:"taxonomy_code"`
	Address          Address `json:"address"`
}

// RenderingProvider is the individual clinician who performed the services.
type RenderingProvider struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	NPI          string `json:"npi" validate:"omitempty,npi"`
	TaxonomyCode string `json:"taxonomy_code"`
}

// Subscriber is the insured patient. Only self-subscriber claims are encoded;
// the relationship code is fixed accordingly.
type Subscriber struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	MemberID    string  `json:"member_id"`
	DateOfBirth string  `json:"date_of_birth"` // 4-2-2 calendar form
	Gender      string  `json:"gender"`        // M, F or U
	Address     Address `json:"address"`
	PayerName   string  `json:"payer_name"`
	PayerID     string  `json:"payer_id"`
}

// ClaimHeader carries the claim-level fields of one professional claim.
type ClaimHeader struct {
	ClaimID         string          `json:"claim_id"` // patient control number, max 20 chars
	TotalCharge     decimal.Decimal `json:"total_charge"`
	PlaceOfService  string          `json:"place_of_service"`
	ServiceDate     string          `json:"service_date" validate:"omitempty,servicedate"` // 4-2-2 calendar form
	DiagnosisCodes  []string        `json:"diagnosis_codes"`
	PriorAuthNumber string          `json:"prior_auth_number,omitempty"`
	FrequencyCode   string          `json:"frequency_code,omitempty"` // defaults to original submission
}

// ServiceLine is one billed procedure.
type ServiceLine struct {
	ProcedureCode     string          `json:"procedure_code" validate:"omitempty,procedurecode"`
	Modifiers         []string        `json:"modifiers,omitempty"` // up to 4
	Units             decimal.Decimal `json:"units"`
	Charge            decimal.Decimal `json:"charge"`
	ServiceDate       string          `json:"service_date" validate:"omitempty,servicedate"`
	DiagnosisPointers []int           `json:"diagnosis_pointers"` // 1-based into ClaimHeader.DiagnosisCodes
}

// Claim837PInput is the full encode-side input: one claim, one subscriber,
// one billing/rendering provider pair, destined for one payer.
type Claim837PInput struct {
	Submitter         Submitter         `json:"submitter"`
	ReceiverName      string            `json:"receiver_name"`
	ReceiverID        string            `json:"receiver_id"`
	BillingProvider   BillingProvider   `json:"billing_provider"`
	RenderingProvider RenderingProvider `json:"rendering_provider"`
	Subscriber        Subscriber        `json:"subscriber"`
	Claim             ClaimHeader       `json:"claim"`
	ServiceLines      []ServiceLine     `json:"service_lines" validate:"omitempty,dive"`
	// Production indicates live submission; test interchanges carry the
	// usage-indicator flag instead.
	Production bool `json:"production"`
}
