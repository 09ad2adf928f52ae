// Package repo – lead-capture repositories (contact submissions and
// newsletter subscriptions). Both kinds are append-only; the creation
// timestamp is stamped here, server-side, in UTC.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-landing-backend/internal/domain"
)

// CreateContact inserts a contact-form submission with a server-assigned
// creation timestamp and returns the persisted row.
func CreateContact(ctx context.Context, db *gorm.DB, fullName, email, mobile, city string) (*domain.Contact, error) {
	c := &domain.Contact{
		FullName:  fullName,
		Email:     email,
		Mobile:    mobile,
		City:      city,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// ListContacts returns all contact submissions newest-first.
func ListContacts(ctx context.Context, db *gorm.DB) ([]domain.Contact, error) {
	var out []domain.Contact
	if err := db.WithContext(ctx).Order("id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSubscription inserts a newsletter signup with a server-assigned
// creation timestamp and returns the persisted row.
func CreateSubscription(ctx context.Context, db *gorm.DB, email string) (*domain.Subscription, error) {
	s := &domain.Subscription{
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// ListSubscriptions returns all newsletter signups newest-first.
func ListSubscriptions(ctx context.Context, db *gorm.DB) ([]domain.Subscription, error) {
	var out []domain.Subscription
	if err := db.WithContext(ctx).Order("id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
