// Project HTTP handlers.
//
// This file exposes the REST endpoints for the project catalog:
//   - GET  /projects        (list, newest first)
//   - POST /projects        (multipart create with optional image)
//   - POST /projects-json   (JSON create without image, debug convenience)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-landing-backend/internal/domain"
	"github.com/tbourn/go-landing-backend/internal/services"
)

// CreateProjectJSONRequest is the payload for the image-less JSON insert.
type CreateProjectJSONRequest struct {
	Name        string `json:"name" example:"Consultation"`
	Description string `json:"description" example:"Project Name, Location"`
}

// ListProjects godoc
// @ID          listProjects
// @Summary     List catalog projects
// @Description Returns every project, newest first.
// @Tags        Projects
// @Produce     json
// @Success     200 {array}  domain.Project
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /projects [get]
func (h *Handlers) ListProjects(c *gin.Context) {
	out, err := h.content.ListProjects(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}

// CreateProject godoc
// @ID          createProject
// @Summary     Create a catalog project
// @Description Ingests a project from a multipart form. The optional image
// @Description is stored, normalized to the standard thumbnail, and linked
// @Description to the created record.
// @Tags        Projects
// @Accept      multipart/form-data
// @Produce     json
//
// @Param       name        formData string true  "Project name"
// @Param       description formData string true  "Project description"
// @Param       image       formData file   false "Optional image upload"
//
// @Success     201 {object} domain.Project
// @Failure     400 {object} handlers.ErrorResponse "Missing fields"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /projects [post]
func (h *Handlers) CreateProject(c *gin.Context) {
	name := c.PostForm("name")
	description := c.PostForm("description")

	image, err := formImage(c)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid upload")
		return
	}

	p, err := h.content.CreateProject(c.Request.Context(), name, description, image)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Missing fields")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, p)
}

// CreateProjectJSON godoc
// @ID          createProjectJSON
// @Summary     Create a catalog project from JSON (no image)
// @Tags        Projects
// @Accept      json
// @Produce     json
// @Param       body body handlers.CreateProjectJSONRequest true "Project payload"
// @Success     201 {object} domain.Project
// @Failure     400 {object} handlers.ErrorResponse "Missing fields"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /projects-json [post]
func (h *Handlers) CreateProjectJSON(c *gin.Context) {
	var req CreateProjectJSONRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Missing fields")
		return
	}

	p, err := h.content.CreateProject(c.Request.Context(), req.Name, req.Description, domain.ImageAbsent{})
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Missing fields")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, p)
}
