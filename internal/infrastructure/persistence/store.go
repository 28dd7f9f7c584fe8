package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trackcase/backend/internal/domain/shared"
	"github.com/trackcase/backend/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store is the generic persistence engine. It is parameterized over one model
// type and driven by that type's entity descriptor and column whitelist, so
// every entity type shares one implementation of create/read/update/delete,
// dynamic filtering, sorting, pagination and soft-delete semantics.
//
// The store does not cascade and does not block on dependent rows; callers
// run the status-dependency guard before mutating.
type Store[T any, PT interface {
	*T
	models.Persistable
}] struct {
	db     *gorm.DB
	desc   shared.EntityDescriptor
	cols   ColumnSet
	logger *zap.Logger
	now    func() time.Time
}

// StoreOption configures a Store.
type StoreOption[T any, PT interface {
	*T
	models.Persistable
}] func(*Store[T, PT])

// WithClock overrides the store's time source, used by tests.
func WithClock[T any, PT interface {
	*T
	models.Persistable
}](now func() time.Time) StoreOption[T, PT] {
	return func(s *Store[T, PT]) {
		s.now = now
	}
}

// NewStore creates a persistence engine for one entity type.
func NewStore[T any, PT interface {
	*T
	models.Persistable
}](db *gorm.DB, desc shared.EntityDescriptor, cols ColumnSet, logger *zap.Logger, opts ...StoreOption[T, PT]) *Store[T, PT] {
	s := &Store[T, PT]{
		db:     db,
		desc:   desc,
		cols:   cols,
		logger: logger.Named(desc.Name),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Descriptor returns the entity descriptor the store was built with.
func (s *Store[T, PT]) Descriptor() shared.EntityDescriptor { return s.desc }

// Now returns the store's current time.
func (s *Store[T, PT]) Now() time.Time { return s.now() }

// Create stamps the engine-managed fields and persists the entity, filling in
// its generated id.
func (s *Store[T, PT]) Create(ctx context.Context, entity PT) error {
	entity.StampCreate(s.now())
	if err := s.db.WithContext(ctx).Create(entity).Error; err != nil {
		s.logger.Error("create failed", zap.Error(err))
		return shared.NewPersistence(err)
	}
	return nil
}

// GetByID returns the row with the given id. Soft-deleted rows are excluded
// unless includeDeleted is set.
func (s *Store[T, PT]) GetByID(ctx context.Context, id uint, includeDeleted bool) (PT, error) {
	var row T
	query := s.db.WithContext(ctx).Where("id = ?", id)
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}
	if err := query.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFound(s.desc.Name, id)
		}
		return nil, shared.NewPersistence(err)
	}
	return &row, nil
}

// GetByIDs returns the subset of rows matching the given ids, without
// pagination or metadata.
func (s *Store[T, PT]) GetByIDs(ctx context.Context, ids []uint, includeDeleted bool) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	var rows []T
	query := s.db.WithContext(ctx).Where("id IN ?", ids)
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, shared.NewPersistence(err)
	}
	return rows, nil
}

// List applies the soft-delete filter, the query's predicates, a single sort
// key and pagination, returning the page plus metadata. PerPage is clamped to
// shared.MaxPerPage.
func (s *Store[T, PT]) List(ctx context.Context, q shared.ListQuery) (shared.Paginated[T], error) {
	q = q.Normalize()

	var zero shared.Paginated[T]
	base := s.db.WithContext(ctx).Model(new(T))
	if !q.IncludeDeleted {
		base = base.Where("is_deleted = ?", false)
	}

	base, err := s.applyFilters(base, q.Filters)
	if err != nil {
		return zero, err
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return zero, shared.NewPersistence(err)
	}

	query := base.Session(&gorm.Session{})
	if q.Sort != nil {
		order, err := s.orderClause(*q.Sort)
		if err != nil {
			return zero, err
		}
		query = query.Order(order)
	} else {
		query = query.Order("id ASC")
	}

	offset := (q.PageNumber - 1) * q.PerPage
	var rows []T
	if err := query.Offset(offset).Limit(q.PerPage).Find(&rows).Error; err != nil {
		return zero, shared.NewPersistence(err)
	}

	return shared.NewPaginated(rows, total, q.PageNumber, q.PerPage), nil
}

// Update loads the live row, applies the descriptor-filtered patch, stamps
// modified and returns the updated row. Protected fields and nulls on
// non-scalar fields never reach the database; see EntityDescriptor.ApplyPatch.
func (s *Store[T, PT]) Update(ctx context.Context, id uint, patch map[string]any) (PT, error) {
	row, err := s.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	updates := s.desc.ApplyPatch(patch)
	updates["modified"] = s.now()

	if err := s.db.WithContext(ctx).Model(row).Updates(updates).Error; err != nil {
		s.logger.Error("update failed", zap.Uint("id", id), zap.Error(err))
		return nil, shared.NewPersistence(err)
	}
	return s.GetByID(ctx, id, false)
}

// Delete removes the row physically when hard is set, otherwise applies the
// soft-delete marker. The caller is responsible for dependency pre-checks.
func (s *Store[T, PT]) Delete(ctx context.Context, id uint, hard bool) error {
	if hard {
		result := s.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
		if result.Error != nil {
			return shared.NewPersistence(result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.NewNotFound(s.desc.Name, id)
		}
		return nil
	}

	now := s.now()
	result := s.db.WithContext(ctx).Model(new(T)).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]any{
			"is_deleted":   true,
			"deleted_date": now,
			"modified":     now,
		})
	if result.Error != nil {
		return shared.NewPersistence(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFound(s.desc.Name, id)
	}
	return nil
}

// Restore clears the soft-delete marker and returns the restored row.
func (s *Store[T, PT]) Restore(ctx context.Context, id uint) (PT, error) {
	if _, err := s.GetByID(ctx, id, true); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(new(T)).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_deleted":   false,
			"deleted_date": nil,
			"modified":     s.now(),
		}).Error; err != nil {
		return nil, shared.NewPersistence(err)
	}
	return s.GetByID(ctx, id, false)
}

// CountWhere counts rows matching column = value. Soft-deleted rows are
// included when includeDeleted is set; the deletion guard counts them so a
// soft-deleted child still blocks a hard delete of its parent.
func (s *Store[T, PT]) CountWhere(ctx context.Context, column string, value any, includeDeleted bool) (int64, error) {
	query := s.db.WithContext(ctx).Model(new(T)).Where(column+" = ?", value)
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, shared.NewPersistence(err)
	}
	return count, nil
}

// CountWhereStatusIn counts live rows matching column = value whose component
// status is in the given set. Used by the status-change guard.
func (s *Store[T, PT]) CountWhereStatusIn(ctx context.Context, column string, value any, statusIDs []uint) (int64, error) {
	if len(statusIDs) == 0 {
		return 0, nil
	}
	var count int64
	if err := s.db.WithContext(ctx).Model(new(T)).
		Where(column+" = ?", value).
		Where("is_deleted = ?", false).
		Where("component_status_id IN ?", statusIDs).
		Count(&count).Error; err != nil {
		return 0, shared.NewPersistence(err)
	}
	return count, nil
}

// ListWhere returns all rows matching column = value, ordered by id. Used for
// enrichment sub-graph loading and history reads.
func (s *Store[T, PT]) ListWhere(ctx context.Context, column string, value any, includeDeleted bool, order string) ([]T, error) {
	query := s.db.WithContext(ctx).Where(column+" = ?", value)
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}
	if order == "" {
		order = "id ASC"
	}
	var rows []T
	if err := query.Order(order).Find(&rows).Error; err != nil {
		return nil, shared.NewPersistence(err)
	}
	return rows, nil
}

// DeleteWhere bulk-deletes all rows matching column = value. Used to purge
// history before a parent hard delete.
func (s *Store[T, PT]) DeleteWhere(ctx context.Context, column string, value any) error {
	if err := s.db.WithContext(ctx).Where(column+" = ?", value).Delete(new(T)).Error; err != nil {
		return shared.NewPersistence(err)
	}
	return nil
}

// applyFilters validates and applies each filter predicate.
func (s *Store[T, PT]) applyFilters(query *gorm.DB, filters []shared.FilterSpec) (*gorm.DB, error) {
	for _, f := range filters {
		if !s.cols[f.Column] {
			return nil, shared.NewValidation(fmt.Sprintf("unknown filter column %q for %s", f.Column, s.desc.Name))
		}
		op, ok := f.Op.SQLOperator()
		if !ok {
			return nil, shared.NewUnsupportedOperation(fmt.Sprintf("unsupported filter operator %q", string(f.Op)))
		}
		query = query.Where(fmt.Sprintf("%s %s ?", f.Column, op), f.Value)
	}
	return query, nil
}

// orderClause validates the sort spec and renders the ORDER BY clause.
func (s *Store[T, PT]) orderClause(sort shared.SortSpec) (string, error) {
	if !s.cols[sort.Column] {
		return "", shared.NewValidation(fmt.Sprintf("unknown sort column %q for %s", sort.Column, s.desc.Name))
	}
	direction, err := NormalizeSortDirection(sort.Direction)
	if err != nil {
		return "", err
	}
	return sort.Column + " " + direction, nil
}
