package cases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/trackcase/backend/internal/application/guard"
	"github.com/trackcase/backend/internal/domain/shared"
	"github.com/trackcase/backend/internal/infrastructure/cache"
	"github.com/trackcase/backend/internal/infrastructure/persistence"
	"github.com/trackcase/backend/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
)

// ReadOptions control how much of an entity's sub-graph a read loads.
type ReadOptions struct {
	IncludeExtra   bool
	IncludeHistory bool
	IncludeDeleted bool
}

// CrudService orchestrates one entity type's lifecycle on top of the generic
// persistence engine: status validation on writes, dependency guarding on
// deletes and status changes, audit snapshots after every mutation, and
// optional enrichment on reads.
type CrudService[T any, PT interface {
	*T
	models.Persistable
}] struct {
	component     string
	store         *persistence.Store[T, PT]
	refs          *cache.ReferenceCache
	guard         *guard.StatusGuard
	recordHistory func(ctx context.Context, userName string, entity PT) error
	purgeHistory  func(ctx context.Context, id uint) error
	afterCreate   func(ctx context.Context, userName string, entity PT) error
	enrich        func(ctx context.Context, entity PT, opts ReadOptions) error
	logger        *zap.Logger
}

// CrudOption configures a CrudService.
type CrudOption[T any, PT interface {
	*T
	models.Persistable
}] func(*CrudService[T, PT])

// WithGuard attaches the status-dependency guard run before deletes and
// status changes.
func WithGuard[T any, PT interface {
	*T
	models.Persistable
}](g *guard.StatusGuard) CrudOption[T, PT] {
	return func(s *CrudService[T, PT]) { s.guard = g }
}

// WithHistory attaches the audit closures: record appends a snapshot after a
// successful mutation, purge removes all snapshots ahead of a hard delete.
func WithHistory[T any, PT interface {
	*T
	models.Persistable
}](record func(ctx context.Context, userName string, entity PT) error, purge func(ctx context.Context, id uint) error) CrudOption[T, PT] {
	return func(s *CrudService[T, PT]) {
		s.recordHistory = record
		s.purgeHistory = purge
	}
}

// WithAfterCreate attaches a side effect run after a successful create.
func WithAfterCreate[T any, PT interface {
	*T
	models.Persistable
}](hook func(ctx context.Context, userName string, entity PT) error) CrudOption[T, PT] {
	return func(s *CrudService[T, PT]) { s.afterCreate = hook }
}

// WithEnrich attaches the read-time sub-graph loader.
func WithEnrich[T any, PT interface {
	*T
	models.Persistable
}](enrich func(ctx context.Context, entity PT, opts ReadOptions) error) CrudOption[T, PT] {
	return func(s *CrudService[T, PT]) { s.enrich = enrich }
}

// NewCrudService creates the lifecycle service for one entity type.
func NewCrudService[T any, PT interface {
	*T
	models.Persistable
}](component string, store *persistence.Store[T, PT], refs *cache.ReferenceCache, logger *zap.Logger, opts ...CrudOption[T, PT]) *CrudService[T, PT] {
	s := &CrudService[T, PT]{
		component: component,
		store:     store,
		refs:      refs,
		logger:    logger.Named(store.Descriptor().Name),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store exposes the underlying persistence engine for wiring code.
func (s *CrudService[T, PT]) Store() *persistence.Store[T, PT] { return s.store }

// Create validates the entity's status against its component, persists it and
// appends the first audit snapshot. The entity survives a history failure; the
// returned error then carries the history-write code so the caller can report
// the partial success.
func (s *CrudService[T, PT]) Create(ctx context.Context, userName string, entity PT) (PT, error) {
	if err := s.validateStatus(ctx, entity); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, entity); err != nil {
		return nil, err
	}
	if s.recordHistory != nil {
		if err := s.recordHistory(ctx, userName, entity); err != nil {
			return entity, err
		}
	}
	if s.afterCreate != nil {
		if err := s.afterCreate(ctx, userName, entity); err != nil {
			return entity, err
		}
	}
	return entity, nil
}

// Get loads one entity, optionally with its sub-graph and history.
func (s *CrudService[T, PT]) Get(ctx context.Context, id uint, opts ReadOptions) (PT, error) {
	entity, err := s.store.GetByID(ctx, id, opts.IncludeDeleted)
	if err != nil {
		return nil, err
	}
	if s.enrich != nil && (opts.IncludeExtra || opts.IncludeHistory) {
		if err := s.enrich(ctx, entity, opts); err != nil {
			return nil, err
		}
	}
	return entity, nil
}

// List returns a filtered, sorted page of entities. Each returned row gets
// the same optional sub-graph and history loading as a single read.
func (s *CrudService[T, PT]) List(ctx context.Context, q shared.ListQuery, opts ReadOptions) (shared.Paginated[T], error) {
	page, err := s.store.List(ctx, q)
	if err != nil {
		return page, err
	}
	if s.enrich != nil && (opts.IncludeExtra || opts.IncludeHistory) {
		for i := range page.Items {
			if err := s.enrich(ctx, PT(&page.Items[i]), opts); err != nil {
				return shared.Paginated[T]{}, err
			}
		}
	}
	return page, nil
}

// Update applies a partial payload to one entity. A status change embedded in
// the patch runs through the guard first; the refreshed entity is snapshotted
// into history afterwards.
func (s *CrudService[T, PT]) Update(ctx context.Context, userName string, id uint, patch map[string]any) (PT, error) {
	current, err := s.store.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if newStatus, ok := patchStatusID(patch); ok {
		if err := s.validateStatusID(ctx, newStatus); err != nil {
			return nil, err
		}
		if s.guard != nil {
			if statused, ok := any(current).(models.Statused); ok {
				if err := s.guard.CheckStatusChange(ctx, id, statused.StatusID(), newStatus); err != nil {
					return nil, err
				}
			}
		}
	}

	updated, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if s.recordHistory != nil {
		if err := s.recordHistory(ctx, userName, updated); err != nil {
			return updated, err
		}
	}
	return updated, nil
}

// Delete soft-deletes by default or removes the row physically when hard is
// set. Both paths run the dependency guard first. A hard delete purges the
// entity's history; a soft delete snapshots the state being deleted and then
// marks the row, so a failed snapshot leaves the row untouched.
func (s *CrudService[T, PT]) Delete(ctx context.Context, userName string, id uint, hard bool) error {
	current, err := s.store.GetByID(ctx, id, true)
	if err != nil {
		return err
	}
	if s.guard != nil {
		if err := s.guard.CheckDelete(ctx, id); err != nil {
			return err
		}
	}

	if hard {
		if s.purgeHistory != nil {
			if err := s.purgeHistory(ctx, id); err != nil {
				return err
			}
		}
		return s.store.Delete(ctx, id, true)
	}

	if current.Deleted() {
		return shared.NewNotFound(s.store.Descriptor().Name, id)
	}
	if s.recordHistory != nil {
		if err := s.recordHistory(ctx, userName, current); err != nil {
			return err
		}
	}
	return s.store.Delete(ctx, id, false)
}

// Restore clears the soft-delete marker and snapshots the restored state.
func (s *CrudService[T, PT]) Restore(ctx context.Context, userName string, id uint) (PT, error) {
	entity, err := s.store.Restore(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.recordHistory != nil {
		if err := s.recordHistory(ctx, userName, entity); err != nil {
			return entity, err
		}
	}
	return entity, nil
}

// validateStatus checks that the entity's status belongs to its component.
func (s *CrudService[T, PT]) validateStatus(ctx context.Context, entity PT) error {
	statused, ok := any(entity).(models.Statused)
	if !ok || s.component == "" {
		return nil
	}
	return s.validateStatusID(ctx, statused.StatusID())
}

func (s *CrudService[T, PT]) validateStatusID(ctx context.Context, statusID uint) error {
	if s.component == "" {
		return nil
	}
	statuses, err := s.refs.ComponentStatuses(ctx)
	if err != nil {
		return err
	}
	for _, status := range statuses {
		if status.ID == statusID && status.ComponentName == s.component {
			return nil
		}
	}
	return shared.NewValidation(fmt.Sprintf("status %d is not defined for component %s", statusID, s.component))
}

// patchStatusID extracts a status change from a raw patch. JSON numbers bind
// as float64 or json.Number depending on the decoder.
func patchStatusID(patch map[string]any) (uint, bool) {
	value, present := patch["component_status_id"]
	if !present || value == nil {
		return 0, false
	}
	switch n := value.(type) {
	case float64:
		return uint(n), true
	case int:
		return uint(n), true
	case int64:
		return uint(n), true
	case uint:
		return n, true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return uint(i), true
	}
	return 0, false
}
