package constvars

const (
	SuccessValidateClaim    = "Successfully validated claim"
	SuccessSubmitClaim      = "Successfully submitted claim to payer gateway"
	SuccessGetClaim         = "Successfully retrieved claim submission"
	SuccessDecodeRemittance = "Successfully decoded remittance"
	SuccessSummarize        = "Successfully built payment summary"
	SuccessGetReport        = "Successfully rendered remittance report"
	SuccessEnqueueRemit     = "Remittance accepted for processing"
)
