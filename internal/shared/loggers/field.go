package loggers

const (
	FieldApp          = "app"
	FieldComponent    = "component"
	FieldHttpMethod   = "http_method"
	FieldHttpPath     = "http_path"
	FieldHttpStatus   = "http_status"
	FieldClientFamily = "client_family"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldCountry       = "country"
	FieldUpstreamScope = "upstream_scope"
	FieldRelayCount    = "relay_count"
)
