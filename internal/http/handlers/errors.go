// Package handlers defines HTTP-layer error codes used across all API
// endpoints. The constants below are the stable, machine-readable `code`
// values carried by every error envelope (see response.go); handlers pick
// the most specific matching code and pass it to fail() together with the
// HTTP status and a human-readable message.
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeForbidden        = "forbidden"
	ErrCodeNotFound         = "not_found"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Domain-specific:
	ErrCodeCreateFailed = "create_failed"
	ErrCodeListFailed   = "list_failed"
	ErrCodeSeedFailed   = "seed_failed"
)
