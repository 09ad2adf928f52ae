// Package domain defines the persistence models for the marketing-site
// content backend: catalog entries (projects, client testimonials) and
// lead-generation records (contact submissions, newsletter subscriptions).
// These types are mapped with GORM and form the core data layer.
//
// The domain is insert-only: rows are never updated or deleted through the
// public API (the administrative re-seed is the single destructive path, and
// it replaces catalog data wholesale). Identity is an autoincrement integer
// assigned by the store; listings order by identity descending so the newest
// record comes first.
package domain

import "time"

// Project is a catalog entry shown on the public landing page.
//
// Fields:
//   - ID: autoincrement primary key, assigned at insertion.
//   - Name / Description: required text fields.
//   - Image: optional public URL of the stored thumbnail (nil when the
//     submission carried no file). The JSON value is null in that case,
//     matching the API contract.
type Project struct {
	ID          uint    `json:"id"          gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name"        gorm:"type:varchar(255);not null"`
	Description string  `json:"description" gorm:"type:text;not null"`
	Image       *string `json:"image"       gorm:"type:varchar(512)"`
}

// TableName returns the database table name for Project.
func (Project) TableName() string { return "projects" }

// Client is a testimonial entry: a person, their designation, and a quote.
// The optional image is the person's photo, normalized to the standard
// thumbnail size at ingestion.
type Client struct {
	ID          uint    `json:"id"          gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name"        gorm:"type:varchar(255);not null"`
	Designation string  `json:"designation" gorm:"type:varchar(255);not null"`
	Description string  `json:"description" gorm:"type:text;not null"`
	Image       *string `json:"image"       gorm:"type:varchar(512)"`
}

// TableName returns the database table name for Client.
func (Client) TableName() string { return "clients" }

// Contact is a lead captured from the public contact form. All fields are
// required; CreatedAt is stamped server-side at insertion. Rows are
// append-only and read only from the administrative view.
type Contact struct {
	ID        uint      `json:"id"        gorm:"primaryKey;autoIncrement"`
	FullName  string    `json:"fullName"  gorm:"type:varchar(255);not null"`
	Email     string    `json:"email"     gorm:"type:varchar(255);not null"`
	Mobile    string    `json:"mobile"    gorm:"type:varchar(64);not null"`
	City      string    `json:"city"      gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
}

// TableName returns the database table name for Contact.
func (Contact) TableName() string { return "contacts" }

// Subscription is a newsletter signup: an email plus a server-assigned
// creation timestamp. Append-only, admin-listed only.
type Subscription struct {
	ID        uint      `json:"id"        gorm:"primaryKey;autoIncrement"`
	Email     string    `json:"email"     gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
}

// TableName returns the database table name for Subscription.
func (Subscription) TableName() string { return "subscriptions" }
