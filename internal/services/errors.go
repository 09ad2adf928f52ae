// Package services defines the business logic for catalog ingestion and
// lead capture. This file centralizes the service-level error values so
// they can be consistently returned by service methods and mapped to HTTP
// results at the handler layer.
package services

import "errors"

var (
	// ErrMissingFields is returned when a submission lacks one or more
	// required text fields. Validation happens before any blob or
	// database I/O, so a rejected submission leaves no side effects.
	ErrMissingFields = errors.New("missing fields")

	// ErrMissingEmail is returned when a newsletter subscription carries
	// no email address.
	ErrMissingEmail = errors.New("missing email")
)
