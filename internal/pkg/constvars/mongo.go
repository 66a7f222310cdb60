package constvars

const (
	MongoCollectionClaimSubmissions = "claim_submissions"
	MongoCollectionRemittances      = "remittances"
)
