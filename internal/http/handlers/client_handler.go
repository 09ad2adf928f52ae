// Client (testimonial) HTTP handlers.
//
//   - GET  /clients  (list, newest first)
//   - POST /clients  (multipart create with optional photo)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-landing-backend/internal/services"
)

// ListClients godoc
// @ID          listClients
// @Summary     List client testimonials
// @Tags        Clients
// @Produce     json
// @Success     200 {array}  domain.Client
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /clients [get]
func (h *Handlers) ListClients(c *gin.Context) {
	out, err := h.content.ListClients(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}

// CreateClient godoc
// @ID          createClient
// @Summary     Create a client testimonial
// @Description Ingests a testimonial from a multipart form; the optional
// @Description photo goes through the same thumbnail pipeline as projects.
// @Tags        Clients
// @Accept      multipart/form-data
// @Produce     json
//
// @Param       name        formData string true  "Client name"
// @Param       designation formData string true  "Role or title"
// @Param       description formData string true  "Testimonial text"
// @Param       image       formData file   false "Optional photo upload"
//
// @Success     201 {object} domain.Client
// @Failure     400 {object} handlers.ErrorResponse "Missing fields"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /clients [post]
func (h *Handlers) CreateClient(c *gin.Context) {
	name := c.PostForm("name")
	designation := c.PostForm("designation")
	description := c.PostForm("description")

	image, err := formImage(c)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid upload")
		return
	}

	cl, err := h.content.CreateClient(c.Request.Context(), name, designation, description, image)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Missing fields")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, cl)
}
