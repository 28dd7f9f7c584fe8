package cases

import (
	"context"

	"github.com/trackcase/backend/internal/application/audit"
	"github.com/trackcase/backend/internal/application/guard"
	"github.com/trackcase/backend/internal/infrastructure/cache"
	"github.com/trackcase/backend/internal/infrastructure/persistence"
	"github.com/trackcase/backend/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services bundles the lifecycle services for every tracked entity type plus
// their note services and history recorders. All of them share one database
// handle and one reference cache.
type Services struct {
	Refs *cache.ReferenceCache

	Courts          *CrudService[models.Court, *models.Court]
	Judges          *CrudService[models.Judge, *models.Judge]
	Clients         *CrudService[models.Client, *models.Client]
	CourtCases      *CrudService[models.CourtCase, *models.CourtCase]
	Filings         *CrudService[models.Filing, *models.Filing]
	Hearings        *CrudService[models.HearingCalendar, *models.HearingCalendar]
	Tasks           *CrudService[models.TaskCalendar, *models.TaskCalendar]
	CaseCollections *CrudService[models.CaseCollection, *models.CaseCollection]
	CashCollections *CrudService[models.CashCollection, *models.CashCollection]

	CourtNotes          *NoteService[models.CourtNote, *models.CourtNote]
	JudgeNotes          *NoteService[models.JudgeNote, *models.JudgeNote]
	ClientNotes         *NoteService[models.ClientNote, *models.ClientNote]
	CourtCaseNotes      *NoteService[models.CourtCaseNote, *models.CourtCaseNote]
	FilingNotes         *NoteService[models.FilingNote, *models.FilingNote]
	HearingNotes        *NoteService[models.HearingCalendarNote, *models.HearingCalendarNote]
	TaskNotes           *NoteService[models.TaskCalendarNote, *models.TaskCalendarNote]
	CaseCollectionNotes *NoteService[models.CaseCollectionNote, *models.CaseCollectionNote]
	CashCollectionNotes *NoteService[models.CashCollectionNote, *models.CashCollectionNote]

	CourtHistory          *audit.Recorder[models.CourtHistory, *models.CourtHistory]
	JudgeHistory          *audit.Recorder[models.JudgeHistory, *models.JudgeHistory]
	ClientHistory         *audit.Recorder[models.ClientHistory, *models.ClientHistory]
	CourtCaseHistory      *audit.Recorder[models.CourtCaseHistory, *models.CourtCaseHistory]
	FilingHistory         *audit.Recorder[models.FilingHistory, *models.FilingHistory]
	HearingHistory        *audit.Recorder[models.HearingCalendarHistory, *models.HearingCalendarHistory]
	TaskHistory           *audit.Recorder[models.TaskCalendarHistory, *models.TaskCalendarHistory]
	CaseCollectionHistory *audit.Recorder[models.CaseCollectionHistory, *models.CaseCollectionHistory]
	CashCollectionHistory *audit.Recorder[models.CashCollectionHistory, *models.CashCollectionHistory]
}

// NewServices wires the full entity graph: one store per table, one recorder
// per history table, dependency guards down the court -> judge -> client ->
// case -> filing/hearing/collection chain, and the hearing-to-task side
// effect.
func NewServices(db *gorm.DB, refs *cache.ReferenceCache, logger *zap.Logger) *Services {
	// Primary stores.
	courtStore := persistence.NewStore[models.Court, *models.Court](db, models.CourtDescriptor, persistence.CourtColumns, logger)
	judgeStore := persistence.NewStore[models.Judge, *models.Judge](db, models.JudgeDescriptor, persistence.JudgeColumns, logger)
	clientStore := persistence.NewStore[models.Client, *models.Client](db, models.ClientDescriptor, persistence.ClientColumns, logger)
	caseStore := persistence.NewStore[models.CourtCase, *models.CourtCase](db, models.CourtCaseDescriptor, persistence.CourtCaseColumns, logger)
	filingStore := persistence.NewStore[models.Filing, *models.Filing](db, models.FilingDescriptor, persistence.FilingColumns, logger)
	hearingStore := persistence.NewStore[models.HearingCalendar, *models.HearingCalendar](db, models.HearingCalendarDescriptor, persistence.HearingCalendarColumns, logger)
	taskStore := persistence.NewStore[models.TaskCalendar, *models.TaskCalendar](db, models.TaskCalendarDescriptor, persistence.TaskCalendarColumns, logger)
	caseCollStore := persistence.NewStore[models.CaseCollection, *models.CaseCollection](db, models.CaseCollectionDescriptor, persistence.CaseCollectionColumns, logger)
	cashCollStore := persistence.NewStore[models.CashCollection, *models.CashCollection](db, models.CashCollectionDescriptor, persistence.CashCollectionColumns, logger)

	// History recorders.
	courtHistory := audit.NewRecorder(persistence.NewStore[models.CourtHistory, *models.CourtHistory](db, models.HistoryDescriptor("court history"), persistence.HistoryColumns("court_id"), logger), "court_id", logger)
	judgeHistory := audit.NewRecorder(persistence.NewStore[models.JudgeHistory, *models.JudgeHistory](db, models.HistoryDescriptor("judge history"), persistence.HistoryColumns("judge_id"), logger), "judge_id", logger)
	clientHistory := audit.NewRecorder(persistence.NewStore[models.ClientHistory, *models.ClientHistory](db, models.HistoryDescriptor("client history"), persistence.HistoryColumns("client_id"), logger), "client_id", logger)
	caseHistory := audit.NewRecorder(persistence.NewStore[models.CourtCaseHistory, *models.CourtCaseHistory](db, models.HistoryDescriptor("court case history"), persistence.HistoryColumns("court_case_id"), logger), "court_case_id", logger)
	filingHistory := audit.NewRecorder(persistence.NewStore[models.FilingHistory, *models.FilingHistory](db, models.HistoryDescriptor("filing history"), persistence.HistoryColumns("filing_id"), logger), "filing_id", logger)
	hearingHistory := audit.NewRecorder(persistence.NewStore[models.HearingCalendarHistory, *models.HearingCalendarHistory](db, models.HistoryDescriptor("hearing calendar history"), persistence.HistoryColumns("hearing_calendar_id"), logger), "hearing_calendar_id", logger)
	taskHistory := audit.NewRecorder(persistence.NewStore[models.TaskCalendarHistory, *models.TaskCalendarHistory](db, models.HistoryDescriptor("task calendar history"), persistence.HistoryColumns("task_calendar_id"), logger), "task_calendar_id", logger)
	caseCollHistory := audit.NewRecorder(persistence.NewStore[models.CaseCollectionHistory, *models.CaseCollectionHistory](db, models.HistoryDescriptor("case collection history"), persistence.HistoryColumns("case_collection_id"), logger), "case_collection_id", logger)
	cashCollHistory := audit.NewRecorder(persistence.NewStore[models.CashCollectionHistory, *models.CashCollectionHistory](db, models.HistoryDescriptor("cash collection history"), persistence.HistoryColumns("cash_collection_id"), logger), "cash_collection_id", logger)

	// Guards, children declared top-down.
	courtGuard := guard.NewStatusGuard("court", models.ComponentCourt, refs, []guard.ChildRelation{
		guard.Relation("judge", models.ComponentJudge, judgeStore, "court_id"),
	}, logger)
	judgeGuard := guard.NewStatusGuard("judge", models.ComponentJudge, refs, []guard.ChildRelation{
		guard.Relation("client", models.ComponentClient, clientStore, "judge_id"),
	}, logger)
	clientGuard := guard.NewStatusGuard("client", models.ComponentClient, refs, []guard.ChildRelation{
		guard.Relation("court case", models.ComponentCourtCase, caseStore, "client_id"),
	}, logger)
	caseGuard := guard.NewStatusGuard("court case", models.ComponentCourtCase, refs, []guard.ChildRelation{
		guard.Relation("filing", models.ComponentFiling, filingStore, "court_case_id"),
		guard.Relation("hearing calendar", models.ComponentHearingCalendar, hearingStore, "court_case_id"),
		guard.Relation("case collection", models.ComponentCaseCollection, caseCollStore, "court_case_id"),
	}, logger)
	filingGuard := guard.NewStatusGuard("filing", models.ComponentFiling, refs, []guard.ChildRelation{
		guard.Relation("task calendar", models.ComponentTaskCalendar, taskStore, "filing_id"),
	}, logger)
	hearingGuard := guard.NewStatusGuard("hearing calendar", models.ComponentHearingCalendar, refs, []guard.ChildRelation{
		guard.Relation("task calendar", models.ComponentTaskCalendar, taskStore, "hearing_calendar_id"),
	}, logger)
	caseCollGuard := guard.NewStatusGuard("case collection", models.ComponentCaseCollection, refs, []guard.ChildRelation{
		guard.Relation("cash collection", models.ComponentCashCollection, cashCollStore, "case_collection_id"),
	}, logger)

	svc := &Services{Refs: refs}

	svc.Tasks = NewCrudService(models.ComponentTaskCalendar, taskStore, refs, logger,
		WithHistory[models.TaskCalendar](func(ctx context.Context, userName string, t *models.TaskCalendar) error {
			return taskHistory.Record(ctx, t.HistoryRow(userName))
		}, taskHistory.Purge),
		WithEnrich[models.TaskCalendar](func(ctx context.Context, t *models.TaskCalendar, opts ReadOptions) error {
			if opts.IncludeExtra {
				if t.HearingCalendarID != nil {
					hearing, err := hearingStore.GetByID(ctx, *t.HearingCalendarID, true)
					if err != nil {
						return err
					}
					t.HearingCalendar = hearing
				}
				if t.FilingID != nil {
					filing, err := filingStore.GetByID(ctx, *t.FilingID, true)
					if err != nil {
						return err
					}
					t.Filing = filing
				}
			}
			if opts.IncludeHistory {
				rows, err := taskHistory.List(ctx, t.ID)
				if err != nil {
					return err
				}
				t.History = rows
			}
			return nil
		}))

	svc.Courts = NewCrudService(models.ComponentCourt, courtStore, refs, logger,
		WithGuard[models.Court](courtGuard),
		WithHistory[models.Court](func(ctx context.Context, userName string, c *models.Court) error {
			return courtHistory.Record(ctx, c.HistoryRow(userName))
		}, courtHistory.Purge),
		WithEnrich[models.Court](func(ctx context.Context, c *models.Court, opts ReadOptions) error {
			if opts.IncludeExtra {
				judges, err := judgeStore.ListWhere(ctx, "court_id", c.ID, false, "")
				if err != nil {
					return err
				}
				c.Judges = judges
			}
			if opts.IncludeHistory {
				rows, err := courtHistory.List(ctx, c.ID)
				if err != nil {
					return err
				}
				c.History = rows
			}
			return nil
		}))

	svc.Judges = NewCrudService(models.ComponentJudge, judgeStore, refs, logger,
		WithGuard[models.Judge](judgeGuard),
		WithHistory[models.Judge](func(ctx context.Context, userName string, j *models.Judge) error {
			return judgeHistory.Record(ctx, j.HistoryRow(userName))
		}, judgeHistory.Purge),
		WithEnrich[models.Judge](func(ctx context.Context, j *models.Judge, opts ReadOptions) error {
			if opts.IncludeExtra {
				court, err := courtStore.GetByID(ctx, j.CourtID, true)
				if err != nil {
					return err
				}
				j.Court = court
				clients, err := clientStore.ListWhere(ctx, "judge_id", j.ID, false, "")
				if err != nil {
					return err
				}
				j.Clients = clients
			}
			if opts.IncludeHistory {
				rows, err := judgeHistory.List(ctx, j.ID)
				if err != nil {
					return err
				}
				j.History = rows
			}
			return nil
		}))

	svc.Clients = NewCrudService(models.ComponentClient, clientStore, refs, logger,
		WithGuard[models.Client](clientGuard),
		WithHistory[models.Client](func(ctx context.Context, userName string, c *models.Client) error {
			return clientHistory.Record(ctx, c.HistoryRow(userName))
		}, clientHistory.Purge),
		WithEnrich[models.Client](func(ctx context.Context, c *models.Client, opts ReadOptions) error {
			if opts.IncludeExtra {
				if c.JudgeID != nil {
					judge, err := judgeStore.GetByID(ctx, *c.JudgeID, true)
					if err != nil {
						return err
					}
					c.Judge = judge
				}
				courtCases, err := caseStore.ListWhere(ctx, "client_id", c.ID, false, "")
				if err != nil {
					return err
				}
				c.CourtCases = courtCases
			}
			if opts.IncludeHistory {
				rows, err := clientHistory.List(ctx, c.ID)
				if err != nil {
					return err
				}
				c.History = rows
			}
			return nil
		}))

	svc.CourtCases = NewCrudService(models.ComponentCourtCase, caseStore, refs, logger,
		WithGuard[models.CourtCase](caseGuard),
		WithHistory[models.CourtCase](func(ctx context.Context, userName string, c *models.CourtCase) error {
			return caseHistory.Record(ctx, c.HistoryRow(userName))
		}, caseHistory.Purge),
		WithEnrich[models.CourtCase](func(ctx context.Context, c *models.CourtCase, opts ReadOptions) error {
			if opts.IncludeExtra {
				client, err := clientStore.GetByID(ctx, c.ClientID, true)
				if err != nil {
					return err
				}
				c.Client = client
				filings, err := filingStore.ListWhere(ctx, "court_case_id", c.ID, false, "")
				if err != nil {
					return err
				}
				c.Filings = filings
				hearings, err := hearingStore.ListWhere(ctx, "court_case_id", c.ID, false, "")
				if err != nil {
					return err
				}
				c.HearingCalendars = hearings
				collections, err := caseCollStore.ListWhere(ctx, "court_case_id", c.ID, false, "")
				if err != nil {
					return err
				}
				c.CaseCollections = collections
			}
			if opts.IncludeHistory {
				rows, err := caseHistory.List(ctx, c.ID)
				if err != nil {
					return err
				}
				c.History = rows
			}
			return nil
		}))

	svc.Filings = NewCrudService(models.ComponentFiling, filingStore, refs, logger,
		WithGuard[models.Filing](filingGuard),
		WithHistory[models.Filing](func(ctx context.Context, userName string, f *models.Filing) error {
			return filingHistory.Record(ctx, f.HistoryRow(userName))
		}, filingHistory.Purge),
		WithEnrich[models.Filing](func(ctx context.Context, f *models.Filing, opts ReadOptions) error {
			if opts.IncludeExtra {
				courtCase, err := caseStore.GetByID(ctx, f.CourtCaseID, true)
				if err != nil {
					return err
				}
				f.CourtCase = courtCase
				tasks, err := taskStore.ListWhere(ctx, "filing_id", f.ID, false, "")
				if err != nil {
					return err
				}
				f.TaskCalendars = tasks
			}
			if opts.IncludeHistory {
				rows, err := filingHistory.List(ctx, f.ID)
				if err != nil {
					return err
				}
				f.History = rows
			}
			return nil
		}))

	svc.Hearings = NewCrudService(models.ComponentHearingCalendar, hearingStore, refs, logger,
		WithGuard[models.HearingCalendar](hearingGuard),
		WithHistory[models.HearingCalendar](func(ctx context.Context, userName string, h *models.HearingCalendar) error {
			return hearingHistory.Record(ctx, h.HistoryRow(userName))
		}, hearingHistory.Purge),
		WithAfterCreate[models.HearingCalendar](HearingTaskHook(svc.Tasks, refs, hearingStore.Now, logger)),
		WithEnrich[models.HearingCalendar](func(ctx context.Context, h *models.HearingCalendar, opts ReadOptions) error {
			if opts.IncludeExtra {
				courtCase, err := caseStore.GetByID(ctx, h.CourtCaseID, true)
				if err != nil {
					return err
				}
				h.CourtCase = courtCase
				tasks, err := taskStore.ListWhere(ctx, "hearing_calendar_id", h.ID, false, "")
				if err != nil {
					return err
				}
				h.TaskCalendars = tasks
			}
			if opts.IncludeHistory {
				rows, err := hearingHistory.List(ctx, h.ID)
				if err != nil {
					return err
				}
				h.History = rows
			}
			return nil
		}))

	svc.CaseCollections = NewCrudService(models.ComponentCaseCollection, caseCollStore, refs, logger,
		WithGuard[models.CaseCollection](caseCollGuard),
		WithHistory[models.CaseCollection](func(ctx context.Context, userName string, c *models.CaseCollection) error {
			return caseCollHistory.Record(ctx, c.HistoryRow(userName))
		}, caseCollHistory.Purge),
		WithEnrich[models.CaseCollection](func(ctx context.Context, c *models.CaseCollection, opts ReadOptions) error {
			if opts.IncludeExtra {
				courtCase, err := caseStore.GetByID(ctx, c.CourtCaseID, true)
				if err != nil {
					return err
				}
				c.CourtCase = courtCase
				payments, err := cashCollStore.ListWhere(ctx, "case_collection_id", c.ID, false, "")
				if err != nil {
					return err
				}
				c.CashCollections = payments
			}
			if opts.IncludeHistory {
				rows, err := caseCollHistory.List(ctx, c.ID)
				if err != nil {
					return err
				}
				c.History = rows
			}
			return nil
		}))

	svc.CashCollections = NewCrudService(models.ComponentCashCollection, cashCollStore, refs, logger,
		WithHistory[models.CashCollection](func(ctx context.Context, userName string, c *models.CashCollection) error {
			return cashCollHistory.Record(ctx, c.HistoryRow(userName))
		}, cashCollHistory.Purge),
		WithEnrich[models.CashCollection](func(ctx context.Context, c *models.CashCollection, opts ReadOptions) error {
			if opts.IncludeExtra {
				parent, err := caseCollStore.GetByID(ctx, c.CaseCollectionID, true)
				if err != nil {
					return err
				}
				c.CaseCollection = parent
			}
			if opts.IncludeHistory {
				rows, err := cashCollHistory.List(ctx, c.ID)
				if err != nil {
					return err
				}
				c.History = rows
			}
			return nil
		}))

	// Note services. Parent existence checks go through the primary stores.
	svc.CourtNotes = NewNoteService(persistence.NewStore[models.CourtNote, *models.CourtNote](db, models.NoteDescriptor("court note", "court_id"), persistence.NoteColumns("court_id"), logger), "court_id", existsCheck(courtStore), logger)
	svc.JudgeNotes = NewNoteService(persistence.NewStore[models.JudgeNote, *models.JudgeNote](db, models.NoteDescriptor("judge note", "judge_id"), persistence.NoteColumns("judge_id"), logger), "judge_id", existsCheck(judgeStore), logger)
	svc.ClientNotes = NewNoteService(persistence.NewStore[models.ClientNote, *models.ClientNote](db, models.NoteDescriptor("client note", "client_id"), persistence.NoteColumns("client_id"), logger), "client_id", existsCheck(clientStore), logger)
	svc.CourtCaseNotes = NewNoteService(persistence.NewStore[models.CourtCaseNote, *models.CourtCaseNote](db, models.NoteDescriptor("court case note", "court_case_id"), persistence.NoteColumns("court_case_id"), logger), "court_case_id", existsCheck(caseStore), logger)
	svc.FilingNotes = NewNoteService(persistence.NewStore[models.FilingNote, *models.FilingNote](db, models.NoteDescriptor("filing note", "filing_id"), persistence.NoteColumns("filing_id"), logger), "filing_id", existsCheck(filingStore), logger)
	svc.HearingNotes = NewNoteService(persistence.NewStore[models.HearingCalendarNote, *models.HearingCalendarNote](db, models.NoteDescriptor("hearing calendar note", "hearing_calendar_id"), persistence.NoteColumns("hearing_calendar_id"), logger), "hearing_calendar_id", existsCheck(hearingStore), logger)
	svc.TaskNotes = NewNoteService(persistence.NewStore[models.TaskCalendarNote, *models.TaskCalendarNote](db, models.NoteDescriptor("task calendar note", "task_calendar_id"), persistence.NoteColumns("task_calendar_id"), logger), "task_calendar_id", existsCheck(taskStore), logger)
	svc.CaseCollectionNotes = NewNoteService(persistence.NewStore[models.CaseCollectionNote, *models.CaseCollectionNote](db, models.NoteDescriptor("case collection note", "case_collection_id"), persistence.NoteColumns("case_collection_id"), logger), "case_collection_id", existsCheck(caseCollStore), logger)
	svc.CashCollectionNotes = NewNoteService(persistence.NewStore[models.CashCollectionNote, *models.CashCollectionNote](db, models.NoteDescriptor("cash collection note", "cash_collection_id"), persistence.NoteColumns("cash_collection_id"), logger), "cash_collection_id", existsCheck(cashCollStore), logger)

	svc.CourtHistory = courtHistory
	svc.JudgeHistory = judgeHistory
	svc.ClientHistory = clientHistory
	svc.CourtCaseHistory = caseHistory
	svc.FilingHistory = filingHistory
	svc.HearingHistory = hearingHistory
	svc.TaskHistory = taskHistory
	svc.CaseCollectionHistory = caseCollHistory
	svc.CashCollectionHistory = cashCollHistory

	return svc
}

// existsCheck adapts a primary store into a parent existence probe for notes.
func existsCheck[T any, PT interface {
	*T
	models.Persistable
}](store *persistence.Store[T, PT]) func(ctx context.Context, id uint) error {
	return func(ctx context.Context, id uint) error {
		_, err := store.GetByID(ctx, id, false)
		return err
	}
}
