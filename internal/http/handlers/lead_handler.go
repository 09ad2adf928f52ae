// Lead-capture HTTP handlers.
//
// Contact submissions and newsletter subscriptions are JSON-only (no file
// upload on these paths) and append-only. Listings back the administrative
// view; there is no public listing of leads.
//
//   - GET/POST /contacts
//   - GET/POST /subscriptions
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-landing-backend/internal/services"
)

// CreateContactRequest is the JSON payload for a contact-form submission.
// All fields are required; presence is validated by the service so the
// error message matches the multipart endpoints.
type CreateContactRequest struct {
	FullName string `json:"fullName" example:"Jane Cooper"`
	Email    string `json:"email"    example:"jane@example.com"`
	Mobile   string `json:"mobile"   example:"+1 212 555 0199"`
	City     string `json:"city"     example:"Seattle"`
}

// CreateSubscriptionRequest is the JSON payload for a newsletter signup.
type CreateSubscriptionRequest struct {
	Email string `json:"email" example:"jane@example.com"`
}

// ListContacts godoc
// @ID          listContacts
// @Summary     List contact submissions (admin)
// @Tags        Leads
// @Produce     json
// @Success     200 {array}  domain.Contact
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /contacts [get]
func (h *Handlers) ListContacts(c *gin.Context) {
	out, err := h.leads.ListContacts(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}

// CreateContact godoc
// @ID          createContact
// @Summary     Submit the contact form
// @Tags        Leads
// @Accept      json
// @Produce     json
// @Param       body body handlers.CreateContactRequest true "Contact payload"
// @Success     201 {object} domain.Contact
// @Failure     400 {object} handlers.ErrorResponse "Missing fields"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /contacts [post]
func (h *Handlers) CreateContact(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Missing fields")
		return
	}

	contact, err := h.leads.CreateContact(c.Request.Context(), req.FullName, req.Email, req.Mobile, req.City)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Missing fields")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, contact)
}

// ListSubscriptions godoc
// @ID          listSubscriptions
// @Summary     List newsletter signups (admin)
// @Tags        Leads
// @Produce     json
// @Success     200 {array}  domain.Subscription
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /subscriptions [get]
func (h *Handlers) ListSubscriptions(c *gin.Context) {
	out, err := h.leads.ListSubscriptions(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}

// CreateSubscription godoc
// @ID          createSubscription
// @Summary     Subscribe to the newsletter
// @Tags        Leads
// @Accept      json
// @Produce     json
// @Param       body body handlers.CreateSubscriptionRequest true "Subscription payload"
// @Success     201 {object} domain.Subscription
// @Failure     400 {object} handlers.ErrorResponse "Missing email"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /subscriptions [post]
func (h *Handlers) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Missing email")
		return
	}

	sub, err := h.leads.CreateSubscription(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, services.ErrMissingEmail) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Missing email")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, sub)
}
