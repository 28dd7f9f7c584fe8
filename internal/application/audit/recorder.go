package audit

import (
	"context"

	"github.com/trackcase/backend/internal/domain/shared"
	"github.com/trackcase/backend/internal/infrastructure/persistence"
	"github.com/trackcase/backend/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
)

// Recorder appends audit snapshots to one entity's history table. History
// rows are append-only; they are never updated and are removed only by Purge
// ahead of a parent hard delete.
type Recorder[H any, PH interface {
	*H
	models.Persistable
}] struct {
	store    *persistence.Store[H, PH]
	fkColumn string
	logger   *zap.Logger
}

// NewRecorder creates a recorder writing through the given history store.
// fkColumn is the history table's parent foreign key column.
func NewRecorder[H any, PH interface {
	*H
	models.Persistable
}](store *persistence.Store[H, PH], fkColumn string, logger *zap.Logger) *Recorder[H, PH] {
	return &Recorder[H, PH]{
		store:    store,
		fkColumn: fkColumn,
		logger:   logger.Named("audit"),
	}
}

// Record appends one snapshot row. A failure here must not roll back the
// primary write that already succeeded, so it is reported as a history-write
// error for the caller to surface as-is.
func (r *Recorder[H, PH]) Record(ctx context.Context, row PH) error {
	if err := r.store.Create(ctx, row); err != nil {
		r.logger.Error("history append failed", zap.Error(err))
		return shared.NewHistoryWrite(err)
	}
	return nil
}

// List returns all history rows for one parent, newest first.
func (r *Recorder[H, PH]) List(ctx context.Context, parentID uint) ([]H, error) {
	return r.store.ListWhere(ctx, r.fkColumn, parentID, true, "id DESC")
}

// Purge bulk-deletes every history row for one parent. Unlike Record this is
// fatal: a hard delete must not leave orphaned history behind.
func (r *Recorder[H, PH]) Purge(ctx context.Context, parentID uint) error {
	return r.store.DeleteWhere(ctx, r.fkColumn, parentID)
}
