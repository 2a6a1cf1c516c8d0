package error

// AuditErrorCode defines error codes for audit request errors.
// Format: AUDIT-XXYYYY where XX is category and YYYY is specific error.
type AuditErrorCode string

const (
	// Request errors (01XXXX)
	ErrCodeInvalidRequestBody AuditErrorCode = "AUDIT-010001"
)
