package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/trackcase/backend/internal/application/cases"
	"github.com/trackcase/backend/internal/infrastructure/persistence/models"
	"github.com/trackcase/backend/internal/interfaces/http/dto"
	"github.com/trackcase/backend/internal/interfaces/http/middleware"
)

// CrudHandler exposes one entity type's lifecycle over REST. All nine tracked
// entity types share this implementation; per-entity behavior lives in the
// service the handler wraps.
type CrudHandler[T any, PT interface {
	*T
	models.Persistable
}] struct {
	BaseHandler
	svc *cases.CrudService[T, PT]
}

// NewCrudHandler creates a REST handler over one entity service.
func NewCrudHandler[T any, PT interface {
	*T
	models.Persistable
}](svc *cases.CrudService[T, PT]) *CrudHandler[T, PT] {
	return &CrudHandler[T, PT]{svc: svc}
}

// Register mounts the CRUD routes under the given path segment.
func (h *CrudHandler[T, PT]) Register(rg *gin.RouterGroup, path string) {
	rg.POST("/"+path, h.Create)
	rg.GET("/"+path, h.List)
	rg.GET("/"+path+"/:id", h.Get)
	rg.PUT("/"+path+"/:id", h.Update)
	rg.DELETE("/"+path+"/:id", h.Delete)
}

// Create handles POST /<entity>
func (h *CrudHandler[T, PT]) Create(c *gin.Context) {
	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		h.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	created, err := h.svc.Create(c.Request.Context(), middleware.GetUserName(c), &entity)
	if err != nil {
		// The row may have been written even when history logging failed;
		// the error code tells the client which case it is.
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// Get handles GET /<entity>/:id
func (h *CrudHandler[T, PT]) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.HandleError(c, err)
		return
	}

	entity, err := h.svc.Get(c.Request.Context(), id, parseReadOptions(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entity)
}

// List handles GET /<entity>
func (h *CrudHandler[T, PT]) List(c *gin.Context) {
	q, err := parseListQuery(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page, err := h.svc.List(c.Request.Context(), q, parseReadOptions(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, paginationMeta(page.TotalItems, page.TotalPages, page.PageNumber, page.PerPage))
}

// Update handles PUT /<entity>/:id. With is_restore set the soft-delete
// marker is cleared instead of applying a patch.
func (h *CrudHandler[T, PT]) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.HandleError(c, err)
		return
	}
	userName := middleware.GetUserName(c)

	if parseBoolQuery(c, "is_restore") {
		restored, err := h.svc.Restore(c.Request.Context(), userName, id)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, restored)
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), userName, id, patch)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete handles DELETE /<entity>/:id. Soft by default, physical with
// is_hard_delete.
func (h *CrudHandler[T, PT]) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.HandleError(c, err)
		return
	}

	hard := parseBoolQuery(c, "is_hard_delete")
	if err := h.svc.Delete(c.Request.Context(), middleware.GetUserName(c), id, hard); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func paginationMeta(totalItems int64, totalPages, pageNumber, perPage int) dto.Meta {
	return dto.Meta{
		TotalItems: totalItems,
		TotalPages: totalPages,
		PageNumber: pageNumber,
		PerPage:    perPage,
	}
}
