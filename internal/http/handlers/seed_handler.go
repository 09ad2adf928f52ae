// Administrative re-seed handler.
//
// POST /seed destructively replaces all catalog data with the demo
// dataset. It is gated by a shared secret supplied in the X-Seed-Key
// header; the router refuses to mount the route at all when no key is
// configured, so the endpoint cannot exist unprotected.
package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HeaderSeedKey carries the shared secret for the re-seed endpoint.
const HeaderSeedKey = "X-Seed-Key"

// ReseedContent godoc
// @ID          reseedContent
// @Summary     Reset catalog data to the demo dataset (admin)
// @Description Wipes and repopulates projects and testimonials atomically.
// @Description Lead records are untouched.
// @Tags        Admin
// @Produce     json
// @Param       X-Seed-Key header string true "Shared seed secret"
// @Success     200 {object} map[string]string
// @Failure     403 {object} handlers.ErrorResponse "Forbidden"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /seed [post]
func (h *Handlers) ReseedContent(c *gin.Context) {
	provided := c.GetHeader(HeaderSeedKey)
	if h.seedKey == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(h.seedKey)) != 1 {
		fail(c, http.StatusForbidden, ErrCodeForbidden, "Forbidden")
		return
	}

	if err := h.content.Reseed(c.Request.Context()); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSeedFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, gin.H{"status": "seeded"})
}
