package ref

import (
	"context"

	"github.com/trackcase/backend/internal/infrastructure/cache"
	"github.com/trackcase/backend/internal/infrastructure/persistence"
	"github.com/trackcase/backend/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TypeService manages one reference table. Reads go through the reference
// cache; every write invalidates the cached kind before touching the
// database, so the cache can hold stale rows only until the next read.
type TypeService[T any, PT interface {
	*T
	models.Persistable
}] struct {
	kind  string
	store *persistence.Store[T, PT]
	refs  *cache.ReferenceCache
}

// NewTypeService creates the service for one reference kind.
func NewTypeService[T any, PT interface {
	*T
	models.Persistable
}](kind string, store *persistence.Store[T, PT], refs *cache.ReferenceCache) *TypeService[T, PT] {
	return &TypeService[T, PT]{kind: kind, store: store, refs: refs}
}

// List returns all live rows of the kind, served from the cache.
func (s *TypeService[T, PT]) List(ctx context.Context) ([]T, error) {
	value, err := s.refs.Get(ctx, s.kind)
	if err != nil {
		return nil, err
	}
	return value.([]T), nil
}

// Get returns one row by id.
func (s *TypeService[T, PT]) Get(ctx context.Context, id uint) (PT, error) {
	return s.store.GetByID(ctx, id, false)
}

// Create invalidates the cached kind, then inserts the row.
func (s *TypeService[T, PT]) Create(ctx context.Context, row PT) (PT, error) {
	s.refs.Invalidate(s.kind)
	if err := s.store.Create(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

// Update invalidates the cached kind, then applies the patch.
func (s *TypeService[T, PT]) Update(ctx context.Context, id uint, patch map[string]any) (PT, error) {
	s.refs.Invalidate(s.kind)
	return s.store.Update(ctx, id, patch)
}

// Delete invalidates the cached kind, then soft-deletes the row (or removes
// it when hard is set).
func (s *TypeService[T, PT]) Delete(ctx context.Context, id uint, hard bool) error {
	s.refs.Invalidate(s.kind)
	return s.store.Delete(ctx, id, hard)
}

// Services bundles the reference-table services.
type Services struct {
	ComponentStatuses *TypeService[models.ComponentStatus, *models.ComponentStatus]
	CaseTypes         *TypeService[models.CaseType, *models.CaseType]
	FilingTypes       *TypeService[models.FilingType, *models.FilingType]
	HearingTypes      *TypeService[models.HearingType, *models.HearingType]
	TaskTypes         *TypeService[models.TaskType, *models.TaskType]
	CollectionMethods *TypeService[models.CollectionMethod, *models.CollectionMethod]
}

// NewServices wires a service per reference table over one cache.
func NewServices(db *gorm.DB, refs *cache.ReferenceCache, logger *zap.Logger) *Services {
	return &Services{
		ComponentStatuses: NewTypeService(models.RefComponentStatuses,
			persistence.NewStore[models.ComponentStatus, *models.ComponentStatus](db, models.ComponentStatusDescriptor, persistence.ComponentStatusColumns, logger), refs),
		CaseTypes: NewTypeService(models.RefCaseTypes,
			persistence.NewStore[models.CaseType, *models.CaseType](db, models.RefTypeDescriptor("case type"), persistence.RefTypeColumns, logger), refs),
		FilingTypes: NewTypeService(models.RefFilingTypes,
			persistence.NewStore[models.FilingType, *models.FilingType](db, models.RefTypeDescriptor("filing type"), persistence.RefTypeColumns, logger), refs),
		HearingTypes: NewTypeService(models.RefHearingTypes,
			persistence.NewStore[models.HearingType, *models.HearingType](db, models.RefTypeDescriptor("hearing type"), persistence.RefTypeColumns, logger), refs),
		TaskTypes: NewTypeService(models.RefTaskTypes,
			persistence.NewStore[models.TaskType, *models.TaskType](db, models.RefTypeDescriptor("task type"), persistence.RefTypeColumns, logger), refs),
		CollectionMethods: NewTypeService(models.RefCollectionMethods,
			persistence.NewStore[models.CollectionMethod, *models.CollectionMethod](db, models.RefTypeDescriptor("collection method"), persistence.RefTypeColumns, logger), refs),
	}
}
