package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/trackcase/backend/internal/application/ref"
	"github.com/trackcase/backend/internal/infrastructure/persistence/models"
)

// RefHandler exposes one reference table over REST. Reads are served from the
// reference cache; writes invalidate it first.
type RefHandler[T any, PT interface {
	*T
	models.Persistable
}] struct {
	BaseHandler
	svc *ref.TypeService[T, PT]
}

// NewRefHandler creates a handler over one reference-type service.
func NewRefHandler[T any, PT interface {
	*T
	models.Persistable
}](svc *ref.TypeService[T, PT]) *RefHandler[T, PT] {
	return &RefHandler[T, PT]{svc: svc}
}

// Register mounts the reference routes under the given path segment.
func (h *RefHandler[T, PT]) Register(rg *gin.RouterGroup, path string) {
	rg.GET("/"+path, h.List)
	rg.GET("/"+path+"/:id", h.Get)
	rg.POST("/"+path, h.Create)
	rg.PUT("/"+path+"/:id", h.Update)
	rg.DELETE("/"+path+"/:id", h.Delete)
}

// List handles GET /<ref>
func (h *RefHandler[T, PT]) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// Get handles GET /<ref>/:id
func (h *RefHandler[T, PT]) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.HandleError(c, err)
		return
	}
	row, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, row)
}

// Create handles POST /<ref>
func (h *RefHandler[T, PT]) Create(c *gin.Context) {
	var row T
	if err := c.ShouldBindJSON(&row); err != nil {
		h.BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	created, err := h.svc.Create(c.Request.Context(), &row)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// Update handles PUT /<ref>/:id
func (h *RefHandler[T, PT]) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.HandleError(c, err)
		return
	}
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete handles DELETE /<ref>/:id
func (h *RefHandler[T, PT]) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id, parseBoolQuery(c, "is_hard_delete")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
