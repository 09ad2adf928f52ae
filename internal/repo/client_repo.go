// Package repo – Client repository. Same thin shape as the Project
// repository: insert returning the persisted row, and a newest-first list.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-landing-backend/internal/domain"
)

// CreateClient inserts a testimonial and returns the persisted row.
func CreateClient(ctx context.Context, db *gorm.DB, name, designation, description string, image *string) (*domain.Client, error) {
	c := &domain.Client{
		Name:        name,
		Designation: designation,
		Description: description,
		Image:       image,
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// ListClients returns all testimonials newest-first.
func ListClients(ctx context.Context, db *gorm.DB) ([]domain.Client, error) {
	var out []domain.Client
	if err := db.WithContext(ctx).Order("id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
