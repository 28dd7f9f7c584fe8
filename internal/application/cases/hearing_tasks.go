package cases

import (
	"context"
	"time"

	"github.com/trackcase/backend/internal/domain/shared"
	"github.com/trackcase/backend/internal/infrastructure/cache"
	"github.com/trackcase/backend/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
)

// Hearing types that trigger an automatic preparation task, and the lead
// times applied when they do. The task lands well before the hearing and its
// due date sits just ahead of the hearing itself.
const (
	HearingTypeMaster = "MASTER"
	HearingTypeMerit  = "MERIT"

	TaskTypeDueAtHearing = "DUE_AT_HEARING"

	masterTaskLeadDays = 30
	meritTaskLeadDays  = 15
	taskDueLeadDays    = 3
)

// HearingTaskHook returns the after-create side effect for hearing calendars:
// scheduling a MASTER or MERIT hearing also schedules its preparation task.
// Other hearing types get no task. The task date is clamped to now so a
// hearing scheduled on short notice still produces an actionable task.
func HearingTaskHook(tasks *CrudService[models.TaskCalendar, *models.TaskCalendar], refs *cache.ReferenceCache, now func() time.Time, logger *zap.Logger) func(ctx context.Context, userName string, hearing *models.HearingCalendar) error {
	log := logger.Named("hearing_tasks")
	return func(ctx context.Context, userName string, hearing *models.HearingCalendar) error {
		typeName, err := refs.HearingTypeName(ctx, hearing.HearingTypeID)
		if err != nil {
			return err
		}

		var leadDays int
		switch typeName {
		case HearingTypeMaster:
			leadDays = masterTaskLeadDays
		case HearingTypeMerit:
			leadDays = meritTaskLeadDays
		default:
			return nil
		}

		taskTypeID, err := refs.TaskTypeIDByName(ctx, TaskTypeDueAtHearing)
		if err != nil {
			return err
		}
		statusID, err := defaultActiveStatus(ctx, refs, models.ComponentTaskCalendar)
		if err != nil {
			return err
		}

		taskDate := hearing.HearingDate.AddDate(0, 0, -leadDays)
		if current := now(); taskDate.Before(current) {
			taskDate = current
		}

		hearingID := hearing.ID
		task := &models.TaskCalendar{
			TaskDate:          taskDate,
			DueDate:           hearing.HearingDate.AddDate(0, 0, -taskDueLeadDays),
			TaskTypeID:        taskTypeID,
			HearingCalendarID: &hearingID,
			ComponentStatusID: statusID,
		}
		if _, err := tasks.Create(ctx, userName, task); err != nil {
			return err
		}

		log.Info("auto-created hearing preparation task",
			zap.Uint("hearing_calendar_id", hearing.ID),
			zap.Uint("task_calendar_id", task.ID),
			zap.String("hearing_type", typeName))
		return nil
	}
}

// defaultActiveStatus picks the lowest-id active status of a component, used
// when the engine creates a row on the user's behalf.
func defaultActiveStatus(ctx context.Context, refs *cache.ReferenceCache, component string) (uint, error) {
	statuses, err := refs.ComponentStatuses(ctx)
	if err != nil {
		return 0, err
	}
	var found uint
	for _, s := range statuses {
		if s.ComponentName == component && s.IsActive {
			if found == 0 || s.ID < found {
				found = s.ID
			}
		}
	}
	if found == 0 {
		return 0, shared.NewValidation("no active status defined for component " + component)
	}
	return found, nil
}
