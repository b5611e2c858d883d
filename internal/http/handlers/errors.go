package handlers

// Error codes for the response envelope. Codes are lowercase snake_case;
// generic codes mirror HTTP status semantics, domain-specific codes cover
// business failures a status alone cannot convey.
const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Domain-specific:
	ErrCodeTurnFailed     = "turn_failed"
	ErrCodeSettingsFailed = "settings_failed"
)
