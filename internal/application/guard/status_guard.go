package guard

import (
	"context"
	"fmt"

	"github.com/trackcase/backend/internal/domain/shared"
	"github.com/trackcase/backend/internal/infrastructure/cache"
	"github.com/trackcase/backend/internal/infrastructure/persistence"
	"github.com/trackcase/backend/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
)

// ChildRelation describes one dependent collection of a parent entity. The
// count closures keep the guard decoupled from the child's concrete store
// type.
type ChildRelation struct {
	// Name of the child entity, used in refusal messages.
	Name string
	// Component of the child, scoping its active status set.
	Component string
	// CountAll counts every child row including soft-deleted ones.
	CountAll func(ctx context.Context, parentID uint) (int64, error)
	// CountActive counts live child rows whose status is in the given set.
	CountActive func(ctx context.Context, parentID uint, statusIDs []uint) (int64, error)
}

// Relation builds a ChildRelation backed by a child store and the foreign key
// column pointing at the parent.
func Relation[T any, PT interface {
	*T
	models.Persistable
}](name, component string, store *persistence.Store[T, PT], fkColumn string) ChildRelation {
	return ChildRelation{
		Name:      name,
		Component: component,
		CountAll: func(ctx context.Context, parentID uint) (int64, error) {
			return store.CountWhere(ctx, fkColumn, parentID, true)
		},
		CountActive: func(ctx context.Context, parentID uint, statusIDs []uint) (int64, error) {
			return store.CountWhereStatusIn(ctx, fkColumn, parentID, statusIDs)
		},
	}
}

// StatusGuard enforces the dependency rules between a parent entity and its
// children before deletes and status changes.
type StatusGuard struct {
	entity    string
	component string
	children  []ChildRelation
	refs      *cache.ReferenceCache
	logger    *zap.Logger
}

// NewStatusGuard creates a guard for one parent entity type.
func NewStatusGuard(entity, component string, refs *cache.ReferenceCache, children []ChildRelation, logger *zap.Logger) *StatusGuard {
	return &StatusGuard{
		entity:    entity,
		component: component,
		children:  children,
		refs:      refs,
		logger:    logger.Named("guard"),
	}
}

// CheckDelete refuses the delete when any child row exists. Soft-deleted
// children still count: removing the parent would strand their rows either
// way.
func (g *StatusGuard) CheckDelete(ctx context.Context, parentID uint) error {
	for _, child := range g.children {
		count, err := child.CountAll(ctx, parentID)
		if err != nil {
			return err
		}
		if count > 0 {
			g.logger.Info("delete refused",
				zap.String("entity", g.entity),
				zap.Uint("id", parentID),
				zap.String("child", child.Name),
				zap.Int64("count", count))
			return shared.NewDependencyConflict(fmt.Sprintf(
				"cannot delete %s %d: %d dependent %s record(s) exist", g.entity, parentID, count, child.Name))
		}
	}
	return nil
}

// CheckStatusChange refuses moving the parent out of its active status set
// while any live child is still in its own active set. Transitions within the
// active set and no-op changes pass without touching the children.
func (g *StatusGuard) CheckStatusChange(ctx context.Context, parentID uint, currentStatusID, newStatusID uint) error {
	if newStatusID == currentStatusID {
		return nil
	}

	newActive, err := g.refs.StatusActive(ctx, g.component, newStatusID)
	if err != nil {
		return err
	}
	if newActive {
		return nil
	}

	for _, child := range g.children {
		activeSet, err := g.refs.ActiveStatusIDs(ctx, child.Component)
		if err != nil {
			return err
		}
		ids := make([]uint, 0, len(activeSet))
		for id := range activeSet {
			ids = append(ids, id)
		}
		count, err := child.CountActive(ctx, parentID, ids)
		if err != nil {
			return err
		}
		if count > 0 {
			g.logger.Info("status change refused",
				zap.String("entity", g.entity),
				zap.Uint("id", parentID),
				zap.String("child", child.Name),
				zap.Int64("active", count))
			return shared.NewDependencyConflict(fmt.Sprintf(
				"cannot change status of %s %d: %d active %s record(s) exist", g.entity, parentID, count, child.Name))
		}
	}
	return nil
}
