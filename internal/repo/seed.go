// Package repo – re-seed support. ReplaceContent wipes and repopulates the
// two catalog kinds inside one transaction so a half-applied seed can never
// be observed. Lead kinds (contacts, subscriptions) are never touched.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-landing-backend/internal/domain"
)

// ReplaceContent deletes all projects and clients and inserts the given
// replacements atomically.
func ReplaceContent(ctx context.Context, db *gorm.DB, projects []domain.Project, clients []domain.Client) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.Project{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&domain.Client{}).Error; err != nil {
			return err
		}
		if len(projects) > 0 {
			if err := tx.Create(&projects).Error; err != nil {
				return err
			}
		}
		if len(clients) > 0 {
			if err := tx.Create(&clients).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
