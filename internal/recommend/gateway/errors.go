package gateway

import "fmt"

// ConfigurationError reports missing or unusable startup configuration,
// discovered at call time. Maps to HTTP 500.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Msg
}

// UpstreamError reports a failure originating in the remote model API:
// transport errors, non-2xx responses, or responses without usable text.
// Maps to HTTP 502.
type UpstreamError struct {
	Msg string
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream error: %s: %v", e.Msg, e.Err)
	}
	return "upstream error: " + e.Msg
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// SchemaError reports model output that could not be parsed as JSON or did
// not match the declared result schema. Raw preserves the offending text
// for diagnostic logging, never for response bodies. Maps to HTTP 502.
type SchemaError struct {
	Msg string
	Raw string
}

func (e *SchemaError) Error() string {
	return "schema error: " + e.Msg
}
