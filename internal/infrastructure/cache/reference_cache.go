package cache

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/trackcase/backend/internal/domain/shared"
	"github.com/trackcase/backend/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Loader fetches all rows of one reference kind from the database.
type Loader func(ctx context.Context) (any, error)

// ReferenceCache is a lazy in-memory cache over the small, rarely-changing
// reference tables (component statuses and the type/method lookups). Each
// kind is loaded on first access and pinned until invalidated; writes to a
// reference table must call Invalidate before touching the database so a
// concurrent reader can never re-pin stale data.
type ReferenceCache struct {
	entries sync.Map // map[string]any, keyed by reference kind
	loaders map[string]Loader
	group   sync.Mutex // serializes loads so a burst of misses hits the DB once
	logger  *zap.Logger

	hits   int64
	misses int64
}

// ReferenceCacheOption is a functional option for configuring the cache.
type ReferenceCacheOption func(*ReferenceCache)

// WithLogger sets the logger for the cache.
func WithLogger(logger *zap.Logger) ReferenceCacheOption {
	return func(c *ReferenceCache) {
		c.logger = logger
	}
}

// WithLoader registers or overrides the loader for a reference kind.
func WithLoader(kind string, loader Loader) ReferenceCacheOption {
	return func(c *ReferenceCache) {
		c.loaders[kind] = loader
	}
}

// NewReferenceCache creates a reference cache with database-backed loaders for
// every reference kind.
func NewReferenceCache(db *gorm.DB, opts ...ReferenceCacheOption) *ReferenceCache {
	c := &ReferenceCache{
		logger: zap.NewNop(),
		loaders: map[string]Loader{
			models.RefComponentStatuses: listLoader[models.ComponentStatus](db),
			models.RefCaseTypes:         listLoader[models.CaseType](db),
			models.RefFilingTypes:       listLoader[models.FilingType](db),
			models.RefHearingTypes:      listLoader[models.HearingType](db),
			models.RefTaskTypes:         listLoader[models.TaskType](db),
			models.RefCollectionMethods: listLoader[models.CollectionMethod](db),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// listLoader builds a Loader that selects all live rows of one reference
// table ordered by id.
func listLoader[T any](db *gorm.DB) Loader {
	return func(ctx context.Context) (any, error) {
		var rows []T
		if err := db.WithContext(ctx).
			Where("is_deleted = ?", false).
			Order("id ASC").
			Find(&rows).Error; err != nil {
			return nil, shared.NewPersistence(err)
		}
		return rows, nil
	}
}

// Get returns the cached rows for a kind, loading them on first access.
func (c *ReferenceCache) Get(ctx context.Context, kind string) (any, error) {
	if value, ok := c.entries.Load(kind); ok {
		atomic.AddInt64(&c.hits, 1)
		return value, nil
	}

	c.group.Lock()
	defer c.group.Unlock()

	// Another goroutine may have loaded while we waited.
	if value, ok := c.entries.Load(kind); ok {
		atomic.AddInt64(&c.hits, 1)
		return value, nil
	}

	loader, ok := c.loaders[kind]
	if !ok {
		return nil, shared.NewValidation("unknown reference kind " + kind)
	}

	atomic.AddInt64(&c.misses, 1)
	c.logger.Debug("reference cache miss", zap.String("kind", kind))

	value, err := loader(ctx)
	if err != nil {
		return nil, err
	}
	c.entries.Store(kind, value)
	return value, nil
}

// Invalidate drops the cached rows for a kind. Called before every write to
// the corresponding reference table.
func (c *ReferenceCache) Invalidate(kind string) {
	c.entries.Delete(kind)
	c.logger.Debug("reference cache invalidated", zap.String("kind", kind))
}

// InvalidateAll drops every cached kind.
func (c *ReferenceCache) InvalidateAll() {
	c.entries.Range(func(key, _ any) bool {
		c.entries.Delete(key)
		return true
	})
	c.logger.Debug("reference cache invalidated", zap.String("kind", "all"))
}

// Stats returns cumulative hit and miss counts.
func (c *ReferenceCache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// ComponentStatuses returns all component status rows.
func (c *ReferenceCache) ComponentStatuses(ctx context.Context) ([]models.ComponentStatus, error) {
	value, err := c.Get(ctx, models.RefComponentStatuses)
	if err != nil {
		return nil, err
	}
	return value.([]models.ComponentStatus), nil
}

// CaseTypes returns all case type rows.
func (c *ReferenceCache) CaseTypes(ctx context.Context) ([]models.CaseType, error) {
	value, err := c.Get(ctx, models.RefCaseTypes)
	if err != nil {
		return nil, err
	}
	return value.([]models.CaseType), nil
}

// FilingTypes returns all filing type rows.
func (c *ReferenceCache) FilingTypes(ctx context.Context) ([]models.FilingType, error) {
	value, err := c.Get(ctx, models.RefFilingTypes)
	if err != nil {
		return nil, err
	}
	return value.([]models.FilingType), nil
}

// HearingTypes returns all hearing type rows.
func (c *ReferenceCache) HearingTypes(ctx context.Context) ([]models.HearingType, error) {
	value, err := c.Get(ctx, models.RefHearingTypes)
	if err != nil {
		return nil, err
	}
	return value.([]models.HearingType), nil
}

// TaskTypes returns all task type rows.
func (c *ReferenceCache) TaskTypes(ctx context.Context) ([]models.TaskType, error) {
	value, err := c.Get(ctx, models.RefTaskTypes)
	if err != nil {
		return nil, err
	}
	return value.([]models.TaskType), nil
}

// CollectionMethods returns all collection method rows.
func (c *ReferenceCache) CollectionMethods(ctx context.Context) ([]models.CollectionMethod, error) {
	value, err := c.Get(ctx, models.RefCollectionMethods)
	if err != nil {
		return nil, err
	}
	return value.([]models.CollectionMethod), nil
}

// ActiveStatusIDs returns the set of status ids whose IsActive flag is set for
// one component. Used by the status-change guard.
func (c *ReferenceCache) ActiveStatusIDs(ctx context.Context, component string) (map[uint]bool, error) {
	statuses, err := c.ComponentStatuses(ctx)
	if err != nil {
		return nil, err
	}
	active := make(map[uint]bool)
	for _, s := range statuses {
		if s.ComponentName == component && s.IsActive {
			active[s.ID] = true
		}
	}
	return active, nil
}

// StatusActive reports whether a status id belongs to the component's active
// set.
func (c *ReferenceCache) StatusActive(ctx context.Context, component string, statusID uint) (bool, error) {
	active, err := c.ActiveStatusIDs(ctx, component)
	if err != nil {
		return false, err
	}
	return active[statusID], nil
}

// HearingTypeName returns the name of a hearing type by id.
func (c *ReferenceCache) HearingTypeName(ctx context.Context, id uint) (string, error) {
	types, err := c.HearingTypes(ctx)
	if err != nil {
		return "", err
	}
	for _, t := range types {
		if t.ID == id {
			return t.Name, nil
		}
	}
	return "", shared.NewNotFound("hearing type", id)
}

// TaskTypeIDByName returns the id of a task type by its exact name.
func (c *ReferenceCache) TaskTypeIDByName(ctx context.Context, name string) (uint, error) {
	types, err := c.TaskTypes(ctx)
	if err != nil {
		return 0, err
	}
	for _, t := range types {
		if t.Name == name {
			return t.ID, nil
		}
	}
	return 0, shared.NewValidation("unknown task type " + name)
}
