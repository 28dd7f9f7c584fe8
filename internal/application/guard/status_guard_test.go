package guard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackcase/backend/internal/domain/shared"
	"github.com/trackcase/backend/internal/infrastructure/cache"
	"github.com/trackcase/backend/internal/infrastructure/persistence"
	"github.com/trackcase/backend/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type guardFixture struct {
	db          *gorm.DB
	courts      *persistence.Store[models.Court, *models.Court]
	judges      *persistence.Store[models.Judge, *models.Judge]
	guard       *StatusGuard
	openID      uint
	closedID    uint
	appointedID uint
	retiredID   uint
}

func setupGuard(t *testing.T) *guardFixture {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ComponentStatus{}, &models.Court{}, &models.Judge{}))

	statuses := []models.ComponentStatus{
		{ComponentName: models.ComponentCourt, StatusName: "OPEN", IsActive: true},
		{ComponentName: models.ComponentCourt, StatusName: "CLOSED", IsActive: false},
		{ComponentName: models.ComponentJudge, StatusName: "APPOINTED", IsActive: true},
		{ComponentName: models.ComponentJudge, StatusName: "RETIRED", IsActive: false},
	}
	require.NoError(t, db.Create(&statuses).Error)

	refs := cache.NewReferenceCache(db)
	courts := persistence.NewStore[models.Court, *models.Court](db, models.CourtDescriptor, persistence.CourtColumns, zap.NewNop())
	judges := persistence.NewStore[models.Judge, *models.Judge](db, models.JudgeDescriptor, persistence.JudgeColumns, zap.NewNop())

	g := NewStatusGuard("court", models.ComponentCourt, refs, []ChildRelation{
		Relation("judge", models.ComponentJudge, judges, "court_id"),
	}, zap.NewNop())

	return &guardFixture{
		db:          db,
		courts:      courts,
		judges:      judges,
		guard:       g,
		openID:      statuses[0].ID,
		closedID:    statuses[1].ID,
		appointedID: statuses[2].ID,
		retiredID:   statuses[3].ID,
	}
}

func (f *guardFixture) createCourt(t *testing.T, name string) *models.Court {
	court := &models.Court{Name: name, ComponentStatusID: f.openID}
	require.NoError(t, f.courts.Create(context.Background(), court))
	return court
}

func (f *guardFixture) createJudge(t *testing.T, name string, courtID, statusID uint) *models.Judge {
	judge := &models.Judge{Name: name, CourtID: courtID, ComponentStatusID: statusID}
	require.NoError(t, f.judges.Create(context.Background(), judge))
	return judge
}

func assertConflict(t *testing.T, err error) {
	t.Helper()
	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, shared.CodeDependencyConflict, de.Code)
}

func TestStatusGuard_CheckDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("passes without children", func(t *testing.T) {
		f := setupGuard(t)
		court := f.createCourt(t, "Empty Court")

		assert.NoError(t, f.guard.CheckDelete(ctx, court.ID))
	})

	t.Run("refuses with live child", func(t *testing.T) {
		f := setupGuard(t)
		court := f.createCourt(t, "Busy Court")
		f.createJudge(t, "Judge A", court.ID, f.appointedID)

		assertConflict(t, f.guard.CheckDelete(ctx, court.ID))
	})

	t.Run("refuses with soft-deleted child", func(t *testing.T) {
		f := setupGuard(t)
		court := f.createCourt(t, "Haunted Court")
		judge := f.createJudge(t, "Judge B", court.ID, f.appointedID)
		require.NoError(t, f.judges.Delete(ctx, judge.ID, false))

		assertConflict(t, f.guard.CheckDelete(ctx, court.ID))
	})

	t.Run("other parents' children do not block", func(t *testing.T) {
		f := setupGuard(t)
		court := f.createCourt(t, "Quiet Court")
		other := f.createCourt(t, "Other Court")
		f.createJudge(t, "Judge C", other.ID, f.appointedID)

		assert.NoError(t, f.guard.CheckDelete(ctx, court.ID))
	})
}

func TestStatusGuard_CheckStatusChange(t *testing.T) {
	ctx := context.Background()

	t.Run("same status is a no-op", func(t *testing.T) {
		f := setupGuard(t)
		court := f.createCourt(t, "Court A")
		f.createJudge(t, "Judge A", court.ID, f.appointedID)

		assert.NoError(t, f.guard.CheckStatusChange(ctx, court.ID, f.openID, f.openID))
	})

	t.Run("moving to an active status always passes", func(t *testing.T) {
		f := setupGuard(t)
		court := f.createCourt(t, "Court B")
		f.createJudge(t, "Judge B", court.ID, f.appointedID)

		assert.NoError(t, f.guard.CheckStatusChange(ctx, court.ID, f.closedID, f.openID))
	})

	t.Run("refuses leaving active set with active child", func(t *testing.T) {
		f := setupGuard(t)
		court := f.createCourt(t, "Court C")
		f.createJudge(t, "Judge C", court.ID, f.appointedID)

		assertConflict(t, f.guard.CheckStatusChange(ctx, court.ID, f.openID, f.closedID))
	})

	t.Run("inactive children do not block", func(t *testing.T) {
		f := setupGuard(t)
		court := f.createCourt(t, "Court D")
		f.createJudge(t, "Judge D", court.ID, f.retiredID)

		assert.NoError(t, f.guard.CheckStatusChange(ctx, court.ID, f.openID, f.closedID))
	})

	t.Run("soft-deleted children do not block", func(t *testing.T) {
		f := setupGuard(t)
		court := f.createCourt(t, "Court E")
		judge := f.createJudge(t, "Judge E", court.ID, f.appointedID)
		require.NoError(t, f.judges.Delete(ctx, judge.ID, false))

		assert.NoError(t, f.guard.CheckStatusChange(ctx, court.ID, f.openID, f.closedID))
	})
}
