package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackcase/backend/internal/domain/shared"
	"github.com/trackcase/backend/internal/infrastructure/persistence"
	"github.com/trackcase/backend/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRecorder(t *testing.T) (*Recorder[models.CourtHistory, *models.CourtHistory], *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CourtHistory{}))

	store := persistence.NewStore[models.CourtHistory, *models.CourtHistory](
		db, models.HistoryDescriptor("court history"), persistence.HistoryColumns("court_id"), zap.NewNop())
	return NewRecorder(store, "court_id", zap.NewNop()), db
}

func TestRecorder_Record(t *testing.T) {
	recorder, _ := setupRecorder(t)
	ctx := context.Background()

	err := recorder.Record(ctx, &models.CourtHistory{
		UserName: "jsmith",
		CourtID:  1,
		Name:     "Boston Immigration Court",
	})
	require.NoError(t, err)

	rows, err := recorder.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "jsmith", rows[0].UserName)
}

func TestRecorder_RecordFailure(t *testing.T) {
	recorder, db := setupRecorder(t)

	// Tear down the table so the append fails underneath the recorder.
	require.NoError(t, db.Migrator().DropTable(&models.CourtHistory{}))

	err := recorder.Record(context.Background(), &models.CourtHistory{UserName: "jsmith", CourtID: 1})

	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, shared.CodeHistoryWrite, de.Code)
	assert.True(t, errors.Is(err, de))
}

func TestRecorder_ListNewestFirst(t *testing.T) {
	recorder, _ := setupRecorder(t)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, recorder.Record(ctx, &models.CourtHistory{
			UserName: "jsmith", CourtID: 5, Name: name,
		}))
	}
	require.NoError(t, recorder.Record(ctx, &models.CourtHistory{
		UserName: "jsmith", CourtID: 99, Name: "other parent",
	}))

	rows, err := recorder.List(ctx, 5)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "third", rows[0].Name)
	assert.Equal(t, "first", rows[2].Name)
}

func TestRecorder_Purge(t *testing.T) {
	recorder, _ := setupRecorder(t)
	ctx := context.Background()

	require.NoError(t, recorder.Record(ctx, &models.CourtHistory{UserName: "jsmith", CourtID: 7}))
	require.NoError(t, recorder.Record(ctx, &models.CourtHistory{UserName: "jsmith", CourtID: 7}))
	require.NoError(t, recorder.Record(ctx, &models.CourtHistory{UserName: "jsmith", CourtID: 8}))

	require.NoError(t, recorder.Purge(ctx, 7))

	rows, err := recorder.List(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = recorder.List(ctx, 8)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
