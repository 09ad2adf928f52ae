// Package services – ContentService
//
// This file implements the ingestion pipeline for the two catalog kinds
// (projects, client testimonials). Each ingestion runs the same sequence:
//
//  1. validate required text fields (before any I/O),
//  2. resolve the optional image: save the upload as a blob, normalize it
//     to the standard thumbnail, fall back to the original blob when the
//     transform fails,
//  3. insert the record and return the persisted row.
//
// The fallback in step 2 is deliberate: a catalog entry must never be left
// without a servable image merely because resizing failed. A blob-save
// failure, by contrast, aborts the ingestion before anything is persisted,
// so no record can ever reference a blob that was never written.
package services

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tbourn/go-landing-backend/internal/domain"
	"github.com/tbourn/go-landing-backend/internal/media"
	"github.com/tbourn/go-landing-backend/internal/repo"
	"github.com/tbourn/go-landing-backend/internal/storage"
)

// ingestedImages counts catalog ingestions that carried an image, split by
// transform outcome. "fallback" means the thumbnail transform failed and
// the original blob is being served instead.
var ingestedImages = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "catalog_images_ingested_total",
		Help: "Catalog image ingestions by transform outcome.",
	},
	[]string{"outcome"},
)

func init() {
	prometheus.MustRegister(ingestedImages)
}

// ContentService implements ingestion and listing for catalog records.
// All dependencies are injected at construction; there is no process-wide
// default store or upload directory.
type ContentService struct {
	// DB is the database handle used for all catalog operations.
	DB *gorm.DB
	// Blobs stores uploaded and transformed image files.
	Blobs *storage.BlobStore
	// Images normalizes uploads to the standard thumbnail size.
	Images *media.Normalizer
}

// NewContentService wires a ContentService from its dependencies.
func NewContentService(db *gorm.DB, blobs *storage.BlobStore, images *media.Normalizer) *ContentService {
	return &ContentService{DB: db, Blobs: blobs, Images: images}
}

// CreateProject validates and persists a catalog project, resolving the
// optional image through the blob store and normalizer. It returns the
// persisted row including its assigned identity.
//
// Errors:
//   - ErrMissingFields when name or description is empty (no I/O happened).
//   - A wrapped storage error when the upload cannot be written (nothing
//     was persisted; handlers map this to a 500).
//   - The raw DB error when the insert fails.
func (s *ContentService) CreateProject(ctx context.Context, name, description string, image domain.ImageRef) (*domain.Project, error) {
	if name == "" || description == "" {
		return nil, ErrMissingFields
	}
	url, err := s.resolveImage(image)
	if err != nil {
		return nil, err
	}
	return repo.CreateProject(ctx, s.DB, name, description, url)
}

// ListProjects returns all projects newest-first.
func (s *ContentService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return repo.ListProjects(ctx, s.DB)
}

// CreateClient validates and persists a testimonial. Semantics match
// CreateProject, with designation as an additional required field.
func (s *ContentService) CreateClient(ctx context.Context, name, designation, description string, image domain.ImageRef) (*domain.Client, error) {
	if name == "" || designation == "" || description == "" {
		return nil, ErrMissingFields
	}
	url, err := s.resolveImage(image)
	if err != nil {
		return nil, err
	}
	return repo.CreateClient(ctx, s.DB, name, designation, description, url)
}

// ListClients returns all testimonials newest-first.
func (s *ContentService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return repo.ListClients(ctx, s.DB)
}

// resolveImage turns an ImageRef into the public URL persisted on the
// record, or nil when the submission carried no image.
//
// For a pending upload the original is written first; only then is the
// thumbnail derived. When normalization fails the original blob is served
// as-is and kept on disk; the failure is logged, never propagated.
func (s *ContentService) resolveImage(image domain.ImageRef) (*string, error) {
	switch ref := image.(type) {
	case nil, domain.ImageAbsent:
		return nil, nil
	case domain.ImagePending:
		origPath, err := s.Blobs.Save(ref.Data, ref.Name)
		if err != nil {
			return nil, fmt.Errorf("store upload: %w", err)
		}
		servePath, err := s.Images.Normalize(origPath)
		if err != nil {
			log.Warn().Err(err).Str("blob", origPath).Msg("image normalization failed, serving original")
			servePath = origPath
			ingestedImages.WithLabelValues("fallback").Inc()
		} else {
			ingestedImages.WithLabelValues("normalized").Inc()
		}
		url := s.Blobs.PublicURL(servePath)
		return &url, nil
	case domain.ImageStored:
		url := s.Blobs.PublicURL(ref.Path)
		return &url, nil
	default:
		return nil, fmt.Errorf("unsupported image reference %T", image)
	}
}

// Demo catalog restored by Reseed.
var (
	seedProjects = []domain.Project{
		{Name: "Consultation", Description: "Project Name, Location"},
		{Name: "Design", Description: "Project Name, Location"},
		{Name: "Marketing & Design", Description: "Project Name, Location"},
		{Name: "Consultation & Marketing", Description: "Project Name, Location"},
		{Name: "Evaluation", Description: "Project Name, Location"},
	}
	seedClients = []domain.Client{
		{Name: "Rowhan Smith", Designation: "CEO, Foreclosure", Description: "Lorem ipsum dolor sit amet..."},
		{Name: "Shipra Kayak", Designation: "Brand Designer", Description: "Lorem ipsum dolor sit amet..."},
		{Name: "John Lepore", Designation: "CEO, Foreclosure", Description: "Lorem ipsum dolor sit amet..."},
		{Name: "Marry Freeman", Designation: "Marketing Manager at Mixit", Description: "Lorem ipsum dolor sit amet..."},
		{Name: "Lucy", Designation: "Sales Rep at Alibaba", Description: "Lorem ipsum dolor sit amet..."},
	}
)

// Reseed replaces all catalog data (projects and testimonials) with the
// demo dataset, atomically. Lead records are untouched. This is a
// destructive administrative operation; the HTTP layer gates it behind a
// shared secret and refuses to mount it when none is configured.
func (s *ContentService) Reseed(ctx context.Context) error {
	projects := make([]domain.Project, len(seedProjects))
	copy(projects, seedProjects)
	clients := make([]domain.Client, len(seedClients))
	copy(clients, seedClients)
	return repo.ReplaceContent(ctx, s.DB, projects, clients)
}
