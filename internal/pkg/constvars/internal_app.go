package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_API_KEY_AUTH             ContextKey = "api_key_auth"
)

const (
	ResourceClaims      = "claims"
	ResourceRemittances = "remittances"
)

// Submission lifecycle states for outbound claim files.
const (
	SubmissionStatusValidated = "validated"
	SubmissionStatusEncoded   = "encoded"
	SubmissionStatusSubmitted = "submitted"
	SubmissionStatusFailed    = "failed"
)
