package models

// Remittance is one decoded 835 transaction retained for reporting.
type Remittance struct {
	ID          string `bson:"_id"`
	TraceNumber string `bson:"traceNumber"`
	PayerName   string `bson:"payerName"`
	PayeeNPI    string `bson:"payeeNpi"`
	PaymentDate string `bson:"paymentDate,omitempty"`
	TotalPaid   string `bson:"totalPaid"`
	Source      string `bson:"source,omitempty"`

	// RawPayload keeps the original interchange so summaries and reports can
	// always be rebuilt from source.
	RawPayload string `bson:"rawPayload"`

	ClaimsPaid     int `bson:"claimsPaid"`
	ClaimsDenied   int `bson:"claimsDenied"`
	ClaimsReversed int `bson:"claimsReversed"`

	TimeModel `bson:",inline"`
}
