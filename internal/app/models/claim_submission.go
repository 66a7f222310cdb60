package models

// ClaimSubmission is one encoded 837P interchange and its transmission state.
type ClaimSubmission struct {
	ID           string `bson:"_id"`
	ClaimID      string `bson:"claimId"`
	SubmitterID  string `bson:"submitterId"`
	BillingNPI   string `bson:"billingNpi"`
	Status       string `bson:"status"`
	FileName     string `bson:"fileName"`
	ObjectBucket string `bson:"objectBucket,omitempty"`

	InterchangeControlNumber string `bson:"interchangeControlNumber"`
	GroupControlNumber       string `bson:"groupControlNumber"`
	TransactionControlNumber string `bson:"transactionControlNumber"`
	SegmentCount             int    `bson:"segmentCount"`

	Compact  string `bson:"compact"`
	Readable string `bson:"readable"`

	TotalCharge string `bson:"totalCharge"`
	Warnings    []ClaimFinding `bson:"warnings,omitempty"`

	TimeModel `bson:",inline"`
}

// ClaimFinding mirrors an encoder finding for persistence.
type ClaimFinding struct {
	Field    string `bson:"field"`
	Message  string `bson:"message"`
	Severity string `bson:"severity"`
}
