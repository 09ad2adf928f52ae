// Handler wiring.
//
// Handlers are transport-thin: they read form or JSON input, delegate to
// application services, and translate results (including sentinel errors)
// into HTTP responses. They depend on abstract service interfaces so
// transport concerns stay separate from business logic.
package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-landing-backend/internal/domain"
)

// ContentService defines the catalog operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ContentService interface {
	// CreateProject ingests a catalog project with an optional image.
	CreateProject(ctx context.Context, name, description string, image domain.ImageRef) (*domain.Project, error)
	// ListProjects returns all projects newest-first.
	ListProjects(ctx context.Context) ([]domain.Project, error)
	// CreateClient ingests a testimonial with an optional image.
	CreateClient(ctx context.Context, name, designation, description string, image domain.ImageRef) (*domain.Client, error)
	// ListClients returns all testimonials newest-first.
	ListClients(ctx context.Context) ([]domain.Client, error)
	// Reseed replaces all catalog data with the demo dataset.
	Reseed(ctx context.Context) error
}

// LeadService defines the lead-capture operations consumed by HTTP handlers.
type LeadService interface {
	// CreateContact persists a contact-form submission.
	CreateContact(ctx context.Context, fullName, email, mobile, city string) (*domain.Contact, error)
	// ListContacts returns all contact submissions newest-first.
	ListContacts(ctx context.Context) ([]domain.Contact, error)
	// CreateSubscription persists a newsletter signup.
	CreateSubscription(ctx context.Context, email string) (*domain.Subscription, error)
	// ListSubscriptions returns all signups newest-first.
	ListSubscriptions(ctx context.Context) ([]domain.Subscription, error)
}

// Handlers groups the HTTP endpoints for catalog, leads, and re-seeding.
type Handlers struct {
	content ContentService
	leads   LeadService
	seedKey string
}

// New constructs a Handlers instance bound to the given services. seedKey
// is the shared secret required by the re-seed endpoint; the router only
// mounts that endpoint when the key is non-empty.
func New(content ContentService, leads LeadService, seedKey string) *Handlers {
	return &Handlers{content: content, leads: leads, seedKey: seedKey}
}

// formImage extracts the optional "image" file from a multipart form.
//
// A missing file is not an error (the image is optional for catalog kinds)
// and yields ImageAbsent. Any other failure (malformed multipart, a body
// over the configured cap, an unreadable part) is reported to the caller,
// which maps it to a 400.
func formImage(c *gin.Context) (domain.ImageRef, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return domain.ImageAbsent{}, nil
		}
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return domain.ImagePending{Data: data, Name: fh.Filename}, nil
}
