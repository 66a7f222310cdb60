package responses

import (
	"claimgate-service/internal/pkg/edi835"
	"claimgate-service/internal/pkg/remitsummary"
)

type DecodeRemittance struct {
	Success     bool                `json:"success"`
	Errors      []string            `json:"errors,omitempty"`
	Transaction *edi835.Transaction `json:"transaction,omitempty"`
}

type SummarizeRemittance struct {
	Summary *remitsummary.PaymentSummary `json:"summary"`
}

type RemittanceReport struct {
	TraceNumber string `json:"trace_number"`
	Report      string `json:"report"`
	Cached      bool   `json:"cached"`
}

type AcceptRemittance struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
}
