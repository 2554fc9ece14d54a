package errors

// Error codes for standardized error responses
const (
	// Validation errors
	ErrCodeInvalidRequest = "invalid_request"

	// Resource errors
	ErrCodeNotFound      = "not_found"
	ErrCodeUnprocessable = "unprocessable"

	// Server errors
	ErrCodeInternalError      = "internal_error"
	ErrCodeServiceUnavailable = "service_unavailable"
)
