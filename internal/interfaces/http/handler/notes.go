package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/trackcase/backend/internal/application/cases"
	"github.com/trackcase/backend/internal/infrastructure/persistence/models"
	"github.com/trackcase/backend/internal/interfaces/http/middleware"
)

// NoteRequest is the payload for creating or updating a note.
type NoteRequest struct {
	NoteText string `json:"note_text" binding:"required"`
}

// NoteHandler exposes the notes of one entity type, nested under the entity's
// path. The build closure constructs the concrete note row since the generic
// code cannot set the parent foreign key itself.
type NoteHandler[N any, PN interface {
	*N
	models.Persistable
}] struct {
	BaseHandler
	svc   *cases.NoteService[N, PN]
	build func(userName string, parentID uint, noteText string) PN
}

// NewNoteHandler creates a note handler over one note service.
func NewNoteHandler[N any, PN interface {
	*N
	models.Persistable
}](svc *cases.NoteService[N, PN], build func(userName string, parentID uint, noteText string) PN) *NoteHandler[N, PN] {
	return &NoteHandler[N, PN]{svc: svc, build: build}
}

// Register mounts the note routes under the parent entity's path segment.
func (h *NoteHandler[N, PN]) Register(rg *gin.RouterGroup, parentPath string) {
	rg.POST("/"+parentPath+"/:id/notes", h.Create)
	rg.GET("/"+parentPath+"/:id/notes", h.List)
	rg.PUT("/"+parentPath+"/:id/notes/:note_id", h.Update)
	rg.DELETE("/"+parentPath+"/:id/notes/:note_id", h.Delete)
}

// Create handles POST /<entity>/:id/notes
func (h *NoteHandler[N, PN]) Create(c *gin.Context) {
	parentID, err := parseID(c, "id")
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	note := h.build(middleware.GetUserName(c), parentID, req.NoteText)
	created, err := h.svc.Create(c.Request.Context(), note, parentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// List handles GET /<entity>/:id/notes
func (h *NoteHandler[N, PN]) List(c *gin.Context) {
	parentID, err := parseID(c, "id")
	if err != nil {
		h.HandleError(c, err)
		return
	}

	notes, err := h.svc.List(c.Request.Context(), parentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, notes)
}

// Update handles PUT /<entity>/:id/notes/:note_id
func (h *NoteHandler[N, PN]) Update(c *gin.Context) {
	noteID, err := parseID(c, "note_id")
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), noteID, map[string]any{"note_text": req.NoteText})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete handles DELETE /<entity>/:id/notes/:note_id
func (h *NoteHandler[N, PN]) Delete(c *gin.Context) {
	noteID, err := parseID(c, "note_id")
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), noteID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
