// Package repo implements the data persistence layer for the content
// domain, backed by GORM. This file provides repository functions for the
// Project model.
//
// The repository follows a "thin" approach: it performs persistence and
// simple query composition, leaving validation and image resolution to the
// services package. Raw GORM errors are propagated unchanged; the service
// and handler layers translate them into user-facing failures.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-landing-backend/internal/domain"
)

// CreateProject inserts a catalog project and returns the persisted row,
// including its store-assigned identity. image may be nil when the
// submission carried no file.
func CreateProject(ctx context.Context, db *gorm.DB, name, description string, image *string) (*domain.Project, error) {
	p := &domain.Project{
		Name:        name,
		Description: description,
		Image:       image,
	}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// ListProjects returns all projects newest-first (identity descending).
func ListProjects(ctx context.Context, db *gorm.DB) ([]domain.Project, error) {
	var out []domain.Project
	if err := db.WithContext(ctx).Order("id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
