package constvars

const (
	MIMETextPlain            = "text/plain"
	MIMETextPlainCharsetUTF8 = "text/plain; charset=utf-8"
	MIMEApplicationJSON      = "application/json"
	MIMEApplicationEDIX12    = "application/edi-x12"
	MIMEOctetStream          = "application/octet-stream"
)

const (
	StatusOK       = 200
	StatusCreated  = 201
	StatusAccepted = 202

	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusUnprocessableEntity = 422
	StatusTooManyRequests     = 429

	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-Id"
	HeaderAPIKey      = "x-api-key"
)
