// Package response defines the uniform result wrapper every use case
// returns. The transport layer discriminates success from failure by the
// presence of an error code, never by catching errors across layers.
package response

// Body is the envelope handed back to the transport layer. A success
// carries Data; a failure carries Code and optionally Details. StatusCode
// is an HTTP-style outcome class in both shapes.
type Body struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Data       any      `json:"data,omitempty"`
	Code       string   `json:"code,omitempty"`
	Details    *Details `json:"details,omitempty"`
}

// Details carries a machine-readable business code alongside an error.
type Details struct {
	Code string `json:"code"`
}

// Build wraps a successful result.
func Build(data any, statusCode int, message string) Body {
	return Body{
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	}
}

// BuildError wraps a failed result.
func BuildError(statusCode int, code, message string, details *Details) Body {
	return Body{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
		Details:    details,
	}
}

// IsError reports whether the body is the error shape.
func (b Body) IsError() bool {
	return b.Code != ""
}
