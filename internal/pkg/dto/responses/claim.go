package responses

import (
	"claimgate-service/internal/pkg/edi837"
)

type ValidateClaim struct {
	Valid    bool             `json:"valid"`
	Findings []edi837.Finding `json:"findings,omitempty"`
}

type SubmitClaim struct {
	SubmissionID             string `json:"submission_id"`
	Status                   string `json:"status"`
	FileName                 string `json:"file_name"`
	InterchangeControlNumber string `json:"interchange_control_number"`
	TransactionControlNumber string `json:"transaction_control_number"`
	SegmentCount             int    `json:"segment_count"`
	// Compact is the transmission form; Readable is the newline-delimited
	// rendering for human review. Both tokenize to the same segments.
	Compact  string           `json:"compact"`
	Readable string           `json:"readable"`
	Warnings []edi837.Finding `json:"warnings,omitempty"`
}

type ClaimSubmission struct {
	SubmissionID string `json:"submission_id"`
	ClaimID      string `json:"claim_id"`
	Status       string `json:"status"`
	FileName     string `json:"file_name"`
	SubmittedAt  string `json:"submitted_at,omitempty"`
	Compact      string `json:"compact,omitempty"`
	Readable     string `json:"readable,omitempty"`
}
