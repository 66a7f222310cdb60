package requests

// DecodeRemittance carries a raw remittance interchange as text.
type DecodeRemittance struct {
	Payload string `json:"payload" validate:"required"`
	// Source labels where the file came from (sftp drop, portal download, ...).
	Source string `json:"source,omitempty" validate:"omitempty,max=64"`
}

// SummarizeRemittance decodes and aggregates in one call.
type SummarizeRemittance struct {
	Payload string `json:"payload" validate:"required"`
	Source  string `json:"source,omitempty" validate:"omitempty,max=64"`
}

// AcceptRemittance queues a raw remittance file for asynchronous processing.
type AcceptRemittance struct {
	Payload string `json:"payload" validate:"required"`
	Source  string `json:"source,omitempty" validate:"omitempty,max=64"`
}
