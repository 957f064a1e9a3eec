// Package apierror holds the JSON error envelopes of the HTTP surface.
// respondError translates the typed service errors (DiaCerrado, StockInsuficiente,
// VentaYaAnulada, ...) into these; clients only ever see a detail string,
// never a stack trace or a raw gorm error.
package apierror

// APIError is the envelope for all 4xx/5xx responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
