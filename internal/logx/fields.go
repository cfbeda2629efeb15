package logx

const (
	FieldDurationMs   = "duration-ms"
	FieldError        = "error"
	FieldHTTPRequest  = "http-request"
	FieldHTTPResponse = "http-response"
	FieldOffers       = "offers"
	FieldPartNumber   = "part-number"
	FieldRequestBody  = "request-body"
	FieldRequestID    = "request-id"
	FieldResponseBody = "response-body"
	FieldStatus       = "status"
	FieldURL          = "url"
	FieldVendor       = "vendor"
)
