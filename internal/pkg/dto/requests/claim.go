package requests

import (
	"claimgate-service/internal/pkg/edi837"
)

// ValidateClaim carries a claim transaction for validation only. structonly
// keeps the validator from descending into the claim: this endpoint's job is
// to surface the full findings list, not to reject on the first bad field.
type ValidateClaim struct {
	Claim edi837.Claim837PInput `json:"claim" validate:"required,structonly"`
}

// SubmitClaim carries a claim transaction for encoding and transmission.
type SubmitClaim struct {
	Claim edi837.Claim837PInput `json:"claim" validate:"required"`
	// DryRun encodes and stores the submission without transmitting it.
	DryRun bool `json:"dry_run"`
}
