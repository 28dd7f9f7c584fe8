package cases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackcase/backend/internal/domain/shared"
	"github.com/trackcase/backend/internal/infrastructure/cache"
	"github.com/trackcase/backend/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testUser = "jsmith"

type serviceFixture struct {
	db       *gorm.DB
	refs     *cache.ReferenceCache
	services *Services
	statuses map[string]uint // "COURT/OPEN" -> id
	types    map[string]uint // "hearing/MASTER", "task/DUE_AT_HEARING", "case/ASYLUM" -> id
}

func setupServices(t *testing.T) *serviceFixture {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.ComponentStatus{}, &models.CaseType{}, &models.FilingType{},
		&models.HearingType{}, &models.TaskType{}, &models.CollectionMethod{},
		&models.Court{}, &models.CourtHistory{}, &models.CourtNote{},
		&models.Judge{}, &models.JudgeHistory{}, &models.JudgeNote{},
		&models.Client{}, &models.ClientHistory{}, &models.ClientNote{},
		&models.CourtCase{}, &models.CourtCaseHistory{}, &models.CourtCaseNote{},
		&models.Filing{}, &models.FilingHistory{}, &models.FilingNote{},
		&models.HearingCalendar{}, &models.HearingCalendarHistory{}, &models.HearingCalendarNote{},
		&models.TaskCalendar{}, &models.TaskCalendarHistory{}, &models.TaskCalendarNote{},
		&models.CaseCollection{}, &models.CaseCollectionHistory{}, &models.CaseCollectionNote{},
		&models.CashCollection{}, &models.CashCollectionHistory{}, &models.CashCollectionNote{},
	)
	require.NoError(t, err)

	f := &serviceFixture{
		db:       db,
		statuses: map[string]uint{},
		types:    map[string]uint{},
	}

	statusRows := []models.ComponentStatus{
		{ComponentName: models.ComponentCourt, StatusName: "OPEN", IsActive: true},
		{ComponentName: models.ComponentCourt, StatusName: "CLOSED", IsActive: false},
		{ComponentName: models.ComponentJudge, StatusName: "APPOINTED", IsActive: true},
		{ComponentName: models.ComponentJudge, StatusName: "RETIRED", IsActive: false},
		{ComponentName: models.ComponentClient, StatusName: "ACTIVE", IsActive: true},
		{ComponentName: models.ComponentClient, StatusName: "INACTIVE", IsActive: false},
		{ComponentName: models.ComponentCourtCase, StatusName: "OPEN", IsActive: true},
		{ComponentName: models.ComponentCourtCase, StatusName: "CLOSED", IsActive: false},
		{ComponentName: models.ComponentHearingCalendar, StatusName: "SCHEDULED", IsActive: true},
		{ComponentName: models.ComponentHearingCalendar, StatusName: "HEARD", IsActive: false},
		{ComponentName: models.ComponentTaskCalendar, StatusName: "PENDING", IsActive: true},
		{ComponentName: models.ComponentTaskCalendar, StatusName: "DONE", IsActive: false},
	}
	require.NoError(t, db.Create(&statusRows).Error)
	for _, s := range statusRows {
		f.statuses[s.ComponentName+"/"+s.StatusName] = s.ID
	}

	hearingTypes := []models.HearingType{{Name: "MASTER"}, {Name: "MERIT"}, {Name: "BOND"}}
	require.NoError(t, db.Create(&hearingTypes).Error)
	for _, ht := range hearingTypes {
		f.types["hearing/"+ht.Name] = ht.ID
	}
	taskTypes := []models.TaskType{{Name: "DUE_AT_HEARING"}}
	require.NoError(t, db.Create(&taskTypes).Error)
	f.types["task/DUE_AT_HEARING"] = taskTypes[0].ID
	caseTypes := []models.CaseType{{Name: "ASYLUM"}}
	require.NoError(t, db.Create(&caseTypes).Error)
	f.types["case/ASYLUM"] = caseTypes[0].ID

	f.refs = cache.NewReferenceCache(db)
	f.services = NewServices(db, f.refs, zap.NewNop())
	return f
}

func (f *serviceFixture) status(t *testing.T, key string) uint {
	t.Helper()
	id, ok := f.statuses[key]
	require.True(t, ok, "unknown status %s", key)
	return id
}

func (f *serviceFixture) createCourt(t *testing.T, name string) *models.Court {
	court, err := f.services.Courts.Create(context.Background(), testUser, &models.Court{
		Name:              name,
		ComponentStatusID: f.status(t, "COURT/OPEN"),
	})
	require.NoError(t, err)
	return court
}

func (f *serviceFixture) createCaseChain(t *testing.T) *models.CourtCase {
	ctx := context.Background()
	court := f.createCourt(t, "Chain Court")
	judge, err := f.services.Judges.Create(ctx, testUser, &models.Judge{
		Name: "Chain Judge", CourtID: court.ID, ComponentStatusID: f.status(t, "JUDGE/APPOINTED"),
	})
	require.NoError(t, err)
	judgeID := judge.ID
	client, err := f.services.Clients.Create(ctx, testUser, &models.Client{
		Name: "Chain Client", JudgeID: &judgeID, ComponentStatusID: f.status(t, "CLIENT/ACTIVE"),
	})
	require.NoError(t, err)
	courtCase, err := f.services.CourtCases.Create(ctx, testUser, &models.CourtCase{
		CaseTypeID: f.types["case/ASYLUM"], ClientID: client.ID,
		ComponentStatusID: f.status(t, "COURT_CASE/OPEN"),
	})
	require.NoError(t, err)
	return courtCase
}

func codeOf(t *testing.T, err error) string {
	t.Helper()
	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	return de.Code
}

func TestCrudService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and snapshots", func(t *testing.T) {
		f := setupServices(t)
		court := f.createCourt(t, "Boston Immigration Court")
		assert.NotZero(t, court.ID)

		history, err := f.services.CourtHistory.List(ctx, court.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, testUser, history[0].UserName)
		assert.Equal(t, "Boston Immigration Court", history[0].Name)
	})

	t.Run("rejects status of another component", func(t *testing.T) {
		f := setupServices(t)
		_, err := f.services.Courts.Create(ctx, testUser, &models.Court{
			Name:              "Wrong Status Court",
			ComponentStatusID: f.status(t, "JUDGE/APPOINTED"),
		})
		assert.Equal(t, shared.CodeValidation, codeOf(t, err))
	})
}

func TestCrudService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("patches and snapshots", func(t *testing.T) {
		f := setupServices(t)
		court := f.createCourt(t, "Patch Court")

		updated, err := f.services.Courts.Update(ctx, testUser, court.ID, map[string]any{
			"city": "Boston",
		})
		require.NoError(t, err)
		require.NotNil(t, updated.City)
		assert.Equal(t, "Boston", *updated.City)

		history, err := f.services.CourtHistory.List(ctx, court.ID)
		require.NoError(t, err)
		assert.Len(t, history, 2)
	})

	t.Run("status change through active set passes", func(t *testing.T) {
		f := setupServices(t)
		court := f.createCourt(t, "Closable Court")

		_, err := f.services.Courts.Update(ctx, testUser, court.ID, map[string]any{
			"component_status_id": float64(f.status(t, "COURT/CLOSED")),
		})
		assert.NoError(t, err)
	})

	t.Run("status change blocked by active child", func(t *testing.T) {
		f := setupServices(t)
		court := f.createCourt(t, "Guarded Court")
		_, err := f.services.Judges.Create(ctx, testUser, &models.Judge{
			Name: "Active Judge", CourtID: court.ID,
			ComponentStatusID: f.status(t, "JUDGE/APPOINTED"),
		})
		require.NoError(t, err)

		_, err = f.services.Courts.Update(ctx, testUser, court.ID, map[string]any{
			"component_status_id": float64(f.status(t, "COURT/CLOSED")),
		})
		assert.Equal(t, shared.CodeDependencyConflict, codeOf(t, err))
	})
}

func TestCrudService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked by dependent rows", func(t *testing.T) {
		f := setupServices(t)
		court := f.createCourt(t, "Occupied Court")
		judge, err := f.services.Judges.Create(ctx, testUser, &models.Judge{
			Name: "Resident Judge", CourtID: court.ID,
			ComponentStatusID: f.status(t, "JUDGE/APPOINTED"),
		})
		require.NoError(t, err)

		err = f.services.Courts.Delete(ctx, testUser, court.ID, false)
		assert.Equal(t, shared.CodeDependencyConflict, codeOf(t, err))

		// Soft-deleted children still block.
		require.NoError(t, f.services.Judges.Delete(ctx, testUser, judge.ID, false))
		err = f.services.Courts.Delete(ctx, testUser, court.ID, false)
		assert.Equal(t, shared.CodeDependencyConflict, codeOf(t, err))
	})

	t.Run("soft delete snapshots the deleted state", func(t *testing.T) {
		f := setupServices(t)
		court := f.createCourt(t, "Soft Court")

		require.NoError(t, f.services.Courts.Delete(ctx, testUser, court.ID, false))

		_, err := f.services.Courts.Get(ctx, court.ID, ReadOptions{})
		assert.Equal(t, shared.CodeNotFound, codeOf(t, err))

		deleted, err := f.services.Courts.Get(ctx, court.ID, ReadOptions{IncludeDeleted: true})
		require.NoError(t, err)
		assert.True(t, deleted.IsDeleted)

		history, err := f.services.CourtHistory.List(ctx, court.ID)
		require.NoError(t, err)
		assert.Len(t, history, 2)
	})

	t.Run("failed snapshot leaves the row live", func(t *testing.T) {
		f := setupServices(t)
		court := f.createCourt(t, "Unsnapshotted Court")
		require.NoError(t, f.db.Migrator().DropTable(&models.CourtHistory{}))

		err := f.services.Courts.Delete(ctx, testUser, court.ID, false)
		assert.Equal(t, shared.CodeHistoryWrite, codeOf(t, err))

		live, err := f.services.Courts.Get(ctx, court.ID, ReadOptions{})
		require.NoError(t, err)
		assert.False(t, live.IsDeleted)
	})

	t.Run("hard delete purges history", func(t *testing.T) {
		f := setupServices(t)
		court := f.createCourt(t, "Purged Court")

		require.NoError(t, f.services.Courts.Delete(ctx, testUser, court.ID, true))

		history, err := f.services.CourtHistory.List(ctx, court.ID)
		require.NoError(t, err)
		assert.Empty(t, history)

		_, err = f.services.Courts.Get(ctx, court.ID, ReadOptions{IncludeDeleted: true})
		assert.Equal(t, shared.CodeNotFound, codeOf(t, err))
	})
}

func TestCrudService_Restore(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()
	court := f.createCourt(t, "Phoenix Court")
	require.NoError(t, f.services.Courts.Delete(ctx, testUser, court.ID, false))

	restored, err := f.services.Courts.Restore(ctx, testUser, court.ID)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted)
	assert.Nil(t, restored.DeletedDate)

	history, err := f.services.CourtHistory.List(ctx, court.ID)
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestCrudService_GetEnrichment(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()
	court := f.createCourt(t, "Enriched Court")
	_, err := f.services.Judges.Create(ctx, testUser, &models.Judge{
		Name: "Listed Judge", CourtID: court.ID,
		ComponentStatusID: f.status(t, "JUDGE/APPOINTED"),
	})
	require.NoError(t, err)

	plain, err := f.services.Courts.Get(ctx, court.ID, ReadOptions{})
	require.NoError(t, err)
	assert.Empty(t, plain.Judges)
	assert.Empty(t, plain.History)

	full, err := f.services.Courts.Get(ctx, court.ID, ReadOptions{IncludeExtra: true, IncludeHistory: true})
	require.NoError(t, err)
	assert.Len(t, full.Judges, 1)
	assert.Len(t, full.History, 1)
}

func TestCrudService_ListEnrichment(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()
	court := f.createCourt(t, "Listed Court")
	_, err := f.services.Judges.Create(ctx, testUser, &models.Judge{
		Name: "Row Judge", CourtID: court.ID,
		ComponentStatusID: f.status(t, "JUDGE/APPOINTED"),
	})
	require.NoError(t, err)

	flat, err := f.services.Courts.List(ctx, shared.ListQuery{}, ReadOptions{})
	require.NoError(t, err)
	require.Len(t, flat.Items, 1)
	assert.Empty(t, flat.Items[0].Judges)
	assert.Empty(t, flat.Items[0].History)

	full, err := f.services.Courts.List(ctx, shared.ListQuery{}, ReadOptions{IncludeExtra: true, IncludeHistory: true})
	require.NoError(t, err)
	require.Len(t, full.Items, 1)
	assert.Len(t, full.Items[0].Judges, 1)
	assert.Len(t, full.Items[0].History, 1)
}

func TestHearingTaskHook(t *testing.T) {
	ctx := context.Background()

	t.Run("master hearing schedules its task", func(t *testing.T) {
		f := setupServices(t)
		courtCase := f.createCaseChain(t)
		hearingDate := time.Now().UTC().AddDate(0, 0, 60).Truncate(time.Second)

		hearing, err := f.services.Hearings.Create(ctx, testUser, &models.HearingCalendar{
			HearingDate:       hearingDate,
			HearingTypeID:     f.types["hearing/MASTER"],
			CourtCaseID:       courtCase.ID,
			ComponentStatusID: f.status(t, "HEARING_CALENDAR/SCHEDULED"),
		})
		require.NoError(t, err)

		var tasks []models.TaskCalendar
		require.NoError(t, f.db.Where("hearing_calendar_id = ?", hearing.ID).Find(&tasks).Error)
		require.Len(t, tasks, 1)

		task := tasks[0]
		assert.WithinDuration(t, hearingDate.AddDate(0, 0, -30), task.TaskDate, time.Second)
		assert.WithinDuration(t, hearingDate.AddDate(0, 0, -3), task.DueDate, time.Second)
		assert.Equal(t, f.types["task/DUE_AT_HEARING"], task.TaskTypeID)
		assert.Equal(t, f.status(t, "TASK_CALENDAR/PENDING"), task.ComponentStatusID)

		// Auto-created tasks are snapshotted like any other write.
		history, err := f.services.TaskHistory.List(ctx, task.ID)
		require.NoError(t, err)
		assert.Len(t, history, 1)
	})

	t.Run("merit hearing uses the shorter lead", func(t *testing.T) {
		f := setupServices(t)
		courtCase := f.createCaseChain(t)
		hearingDate := time.Now().UTC().AddDate(0, 0, 60).Truncate(time.Second)

		hearing, err := f.services.Hearings.Create(ctx, testUser, &models.HearingCalendar{
			HearingDate:       hearingDate,
			HearingTypeID:     f.types["hearing/MERIT"],
			CourtCaseID:       courtCase.ID,
			ComponentStatusID: f.status(t, "HEARING_CALENDAR/SCHEDULED"),
		})
		require.NoError(t, err)

		var tasks []models.TaskCalendar
		require.NoError(t, f.db.Where("hearing_calendar_id = ?", hearing.ID).Find(&tasks).Error)
		require.Len(t, tasks, 1)
		assert.WithinDuration(t, hearingDate.AddDate(0, 0, -15), tasks[0].TaskDate, time.Second)
	})

	t.Run("imminent hearing clamps the task date to now", func(t *testing.T) {
		f := setupServices(t)
		courtCase := f.createCaseChain(t)
		before := time.Now().UTC()
		hearingDate := before.AddDate(0, 0, 5)

		hearing, err := f.services.Hearings.Create(ctx, testUser, &models.HearingCalendar{
			HearingDate:       hearingDate,
			HearingTypeID:     f.types["hearing/MASTER"],
			CourtCaseID:       courtCase.ID,
			ComponentStatusID: f.status(t, "HEARING_CALENDAR/SCHEDULED"),
		})
		require.NoError(t, err)

		var tasks []models.TaskCalendar
		require.NoError(t, f.db.Where("hearing_calendar_id = ?", hearing.ID).Find(&tasks).Error)
		require.Len(t, tasks, 1)
		assert.False(t, tasks[0].TaskDate.UTC().Before(before.Truncate(time.Second)))
		assert.True(t, tasks[0].TaskDate.Before(hearingDate))
	})

	t.Run("other hearing types get no task", func(t *testing.T) {
		f := setupServices(t)
		courtCase := f.createCaseChain(t)

		hearing, err := f.services.Hearings.Create(ctx, testUser, &models.HearingCalendar{
			HearingDate:       time.Now().UTC().AddDate(0, 0, 60),
			HearingTypeID:     f.types["hearing/BOND"],
			CourtCaseID:       courtCase.ID,
			ComponentStatusID: f.status(t, "HEARING_CALENDAR/SCHEDULED"),
		})
		require.NoError(t, err)

		var count int64
		require.NoError(t, f.db.Model(&models.TaskCalendar{}).
			Where("hearing_calendar_id = ?", hearing.ID).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestNoteService(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches to an existing parent", func(t *testing.T) {
		f := setupServices(t)
		court := f.createCourt(t, "Annotated Court")

		note, err := f.services.CourtNotes.Create(ctx, &models.CourtNote{
			UserName: testUser, CourtID: court.ID, NoteText: "venue changed",
		}, court.ID)
		require.NoError(t, err)
		assert.NotZero(t, note.ID)

		notes, err := f.services.CourtNotes.List(ctx, court.ID)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "venue changed", notes[0].NoteText)
	})

	t.Run("refuses a missing parent", func(t *testing.T) {
		f := setupServices(t)

		_, err := f.services.CourtNotes.Create(ctx, &models.CourtNote{
			UserName: testUser, CourtID: 9999, NoteText: "orphan",
		}, 9999)
		assert.Equal(t, shared.CodeNotFound, codeOf(t, err))
	})

	t.Run("updates and deletes permanently", func(t *testing.T) {
		f := setupServices(t)
		court := f.createCourt(t, "Edited Court")
		note, err := f.services.CourtNotes.Create(ctx, &models.CourtNote{
			UserName: testUser, CourtID: court.ID, NoteText: "draft",
		}, court.ID)
		require.NoError(t, err)

		updated, err := f.services.CourtNotes.Update(ctx, note.ID, map[string]any{"note_text": "final"})
		require.NoError(t, err)
		assert.Equal(t, "final", updated.NoteText)

		require.NoError(t, f.services.CourtNotes.Delete(ctx, note.ID))
		var count int64
		require.NoError(t, f.db.Model(&models.CourtNote{}).Where("id = ?", note.ID).Count(&count).Error)
		assert.Zero(t, count)
	})
}
