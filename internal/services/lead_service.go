// Package services – LeadService
//
// Lead capture: contact-form submissions and newsletter subscriptions.
// Both are validate-then-insert with a server-assigned creation timestamp;
// there is no image pipeline on this path.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-landing-backend/internal/domain"
	"github.com/tbourn/go-landing-backend/internal/repo"
)

// LeadService implements the lead-capture use cases.
type LeadService struct {
	// DB is the database handle used for all lead operations.
	DB *gorm.DB
}

// CreateContact validates and persists a contact-form submission. All four
// fields are required; ErrMissingFields is returned before any I/O when one
// is empty. The returned row carries the assigned identity and the
// server-side creation timestamp.
func (s *LeadService) CreateContact(ctx context.Context, fullName, email, mobile, city string) (*domain.Contact, error) {
	if fullName == "" || email == "" || mobile == "" || city == "" {
		return nil, ErrMissingFields
	}
	return repo.CreateContact(ctx, s.DB, fullName, email, mobile, city)
}

// ListContacts returns all contact submissions newest-first.
func (s *LeadService) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	return repo.ListContacts(ctx, s.DB)
}

// CreateSubscription validates and persists a newsletter signup.
func (s *LeadService) CreateSubscription(ctx context.Context, email string) (*domain.Subscription, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	return repo.CreateSubscription(ctx, s.DB, email)
}

// ListSubscriptions returns all newsletter signups newest-first.
func (s *LeadService) ListSubscriptions(ctx context.Context) ([]domain.Subscription, error) {
	return repo.ListSubscriptions(ctx, s.DB)
}
