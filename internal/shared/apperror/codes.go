package apperror

// Machine-readable codes carried in the error envelope. Clients branch on
// these values, so they are append-only.
const (
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"

	// CodeProcessing marks a duplicate request whose first submission is
	// still in flight behind an idempotency lock.
	CodeProcessing = "PROCESSING"

	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
