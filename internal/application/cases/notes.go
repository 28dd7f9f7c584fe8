package cases

import (
	"context"

	"github.com/trackcase/backend/internal/infrastructure/persistence"
	"github.com/trackcase/backend/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
)

// NoteService manages the free-text annotations attached to one entity type.
// Notes carry no status and no history; deletes are physical.
type NoteService[N any, PN interface {
	*N
	models.Persistable
}] struct {
	store        *persistence.Store[N, PN]
	fkColumn     string
	parentExists func(ctx context.Context, parentID uint) error
	logger       *zap.Logger
}

// NewNoteService creates a note service. parentExists verifies the owning
// entity before a note is attached.
func NewNoteService[N any, PN interface {
	*N
	models.Persistable
}](store *persistence.Store[N, PN], fkColumn string, parentExists func(ctx context.Context, parentID uint) error, logger *zap.Logger) *NoteService[N, PN] {
	return &NoteService[N, PN]{
		store:        store,
		fkColumn:     fkColumn,
		parentExists: parentExists,
		logger:       logger.Named(store.Descriptor().Name),
	}
}

// Create attaches a note to an existing parent.
func (s *NoteService[N, PN]) Create(ctx context.Context, note PN, parentID uint) (PN, error) {
	if err := s.parentExists(ctx, parentID); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// List returns all notes for one parent, newest first.
func (s *NoteService[N, PN]) List(ctx context.Context, parentID uint) ([]N, error) {
	return s.store.ListWhere(ctx, s.fkColumn, parentID, false, "id DESC")
}

// Update rewrites a note's text.
func (s *NoteService[N, PN]) Update(ctx context.Context, id uint, patch map[string]any) (PN, error) {
	return s.store.Update(ctx, id, patch)
}

// Delete removes a note permanently.
func (s *NoteService[N, PN]) Delete(ctx context.Context, id uint) error {
	return s.store.Delete(ctx, id, true)
}
