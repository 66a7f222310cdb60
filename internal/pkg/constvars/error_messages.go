package constvars

// Client-facing messages. These never leak internals.
const (
	ErrClientCannotProcessRequest          = "Cannot process the request, kindly check your input"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientClaimNotFound                 = "Claim submission not found"
	ErrClientRemittanceNotFound            = "Remittance not found"
	ErrClientClaimInvalid                  = "Claim failed validation, see findings"
	ErrClientRemittanceUnreadable          = "Remittance file could not be decoded"
	ErrClientGatewayUnavailable            = "Payer gateway is unavailable, the claim was not transmitted"
)

// Developer-facing messages, logged but hidden from production responses.
const (
	ErrDevValidationFailed       = "Request validation failed"
	ErrDevInvalidInput           = "Invalid input"
	ErrDevCannotParseJSON        = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON      = "Failed to marshal value to JSON"
	ErrDevCannotReadRequestBody  = "Failed to read request body"
	ErrDevServerDeadlineExceeded = "Deadline exceeded while processing request"

	ErrDevDBFailedToFindDocument    = "Failed to find document on database"
	ErrDevDBFailedToInsertDocument  = "Failed to insert document to database"
	ErrDevDBFailedToUpdateDocument  = "Failed to update document on database"
	ErrDevDBFailedToIterateDocument = "Failed to iterate documents from database"

	ErrDevRedisSetData = "Failed to set data to redis"
	ErrDevRedisGetData = "Failed to get data from redis: %s"
	ErrDevRedisDelData = "Failed to delete data from redis"

	ErrDevMinioFailedToCreateObject = "Failed to create object on bucket: %s"
	ErrDevMinioFailedToListObjects  = "Failed to list objects on bucket: %s"
	ErrDevMinioFailedToGetObject    = "Failed to get object from bucket: %s"
	ErrDevMinioFailedToRemoveObject = "Failed to remove object from bucket: %s"
	ErrDevGatewayEmptyObject        = "Refusing zero-length gateway object: %s"

	ErrDevRabbitMQPublishMessage = "Failed to publish message to queue: %s"
	ErrDevRabbitMQConsumeMessage = "Failed to consume message from queue: %s"

	ErrDevClaimEncodeFailed     = "Failed to encode claim transaction"
	ErrDevClaimNotExists        = "Claim submission does not exist"
	ErrDevRemitDecodeFailed     = "Failed to decode remittance payload"
	ErrDevRemittanceNotExists   = "Remittance does not exist"
	ErrDevGatewaySubmitExceeded = "Payer gateway submission retries exhausted"
)

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"max":          "maximum at %s characters long",
	"min":          "must be at least %s characters long",
	"len":          "must be %s characters long",
	"oneof":        "must be one of [%s]",
	"alphanum":     "must contain only alphanumeric characters",
	"npi":          "must be a valid 10-digit NPI",
	"taxid":        "must be a 9-digit tax identifier",
	"servicedate":  "must be a calendar date formatted YYYY-MM-DD",
	"statecode":    "must be a two-letter state code",
	"procedurecode": "must be a 5-character procedure code",
}

// TagsWithParams marks validator tags whose message embeds the tag parameter.
var TagsWithParams = map[string]bool{
	"max":   true,
	"min":   true,
	"len":   true,
	"oneof": true,
}
