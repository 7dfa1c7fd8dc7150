package apperror

const (
	// Client errors (4xx)
	CodeValidation = "VALIDATION_ERROR"
	CodeBadRequest = "BAD_REQUEST"
	CodeConflict   = "CONFLICT"
	CodeNotFound   = "NOT_FOUND"

	// Server errors (5xx)
	CodeStorage            = "STORAGE_ERROR"
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
