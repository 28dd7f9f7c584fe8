package http

import (
	"github.com/gin-gonic/gin"
	"github.com/trackcase/backend/internal/application/cases"
	"github.com/trackcase/backend/internal/application/ref"
	"github.com/trackcase/backend/internal/infrastructure/auth"
	"github.com/trackcase/backend/internal/infrastructure/config"
	"github.com/trackcase/backend/internal/infrastructure/logger"
	"github.com/trackcase/backend/internal/infrastructure/persistence"
	"github.com/trackcase/backend/internal/infrastructure/persistence/models"
	"github.com/trackcase/backend/internal/interfaces/http/handler"
	"github.com/trackcase/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with all routes and middleware mounted.
func NewRouter(cfg *config.Config, db *persistence.Database, svcs *cases.Services, refSvcs *ref.Services, tokens *auth.TokenManager, log *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	handler.RegisterValidations()

	router := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = router.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	router.Use(middleware.RequestID())
	router.Use(logger.GinMiddleware(log))
	router.Use(logger.Recovery(log))
	router.Use(middleware.CORS(cfg.HTTP.CORSAllowOrigins))

	router.GET("/health", handler.NewHealthHandler(db).Check)

	api := router.Group("/api/v1")
	api.Use(middleware.Auth(tokens))

	// Reference tables.
	handler.NewRefHandler(refSvcs.ComponentStatuses).Register(api, "component_statuses")
	handler.NewRefHandler(refSvcs.CaseTypes).Register(api, "case_types")
	handler.NewRefHandler(refSvcs.FilingTypes).Register(api, "filing_types")
	handler.NewRefHandler(refSvcs.HearingTypes).Register(api, "hearing_types")
	handler.NewRefHandler(refSvcs.TaskTypes).Register(api, "task_types")
	handler.NewRefHandler(refSvcs.CollectionMethods).Register(api, "collection_methods")

	// Tracked entities.
	handler.NewCrudHandler(svcs.Courts).Register(api, "courts")
	handler.NewCrudHandler(svcs.Judges).Register(api, "judges")
	handler.NewCrudHandler(svcs.Clients).Register(api, "clients")
	handler.NewCrudHandler(svcs.CourtCases).Register(api, "court_cases")
	handler.NewCrudHandler(svcs.Filings).Register(api, "filings")
	handler.NewCrudHandler(svcs.Hearings).Register(api, "hearing_calendars")
	handler.NewCrudHandler(svcs.Tasks).Register(api, "task_calendars")
	handler.NewCrudHandler(svcs.CaseCollections).Register(api, "case_collections")
	handler.NewCrudHandler(svcs.CashCollections).Register(api, "cash_collections")

	// Notes, nested under their owning entity.
	handler.NewNoteHandler(svcs.CourtNotes, func(userName string, parentID uint, text string) *models.CourtNote {
		return &models.CourtNote{UserName: userName, CourtID: parentID, NoteText: text}
	}).Register(api, "courts")
	handler.NewNoteHandler(svcs.JudgeNotes, func(userName string, parentID uint, text string) *models.JudgeNote {
		return &models.JudgeNote{UserName: userName, JudgeID: parentID, NoteText: text}
	}).Register(api, "judges")
	handler.NewNoteHandler(svcs.ClientNotes, func(userName string, parentID uint, text string) *models.ClientNote {
		return &models.ClientNote{UserName: userName, ClientID: parentID, NoteText: text}
	}).Register(api, "clients")
	handler.NewNoteHandler(svcs.CourtCaseNotes, func(userName string, parentID uint, text string) *models.CourtCaseNote {
		return &models.CourtCaseNote{UserName: userName, CourtCaseID: parentID, NoteText: text}
	}).Register(api, "court_cases")
	handler.NewNoteHandler(svcs.FilingNotes, func(userName string, parentID uint, text string) *models.FilingNote {
		return &models.FilingNote{UserName: userName, FilingID: parentID, NoteText: text}
	}).Register(api, "filings")
	handler.NewNoteHandler(svcs.HearingNotes, func(userName string, parentID uint, text string) *models.HearingCalendarNote {
		return &models.HearingCalendarNote{UserName: userName, HearingCalendarID: parentID, NoteText: text}
	}).Register(api, "hearing_calendars")
	handler.NewNoteHandler(svcs.TaskNotes, func(userName string, parentID uint, text string) *models.TaskCalendarNote {
		return &models.TaskCalendarNote{UserName: userName, TaskCalendarID: parentID, NoteText: text}
	}).Register(api, "task_calendars")
	handler.NewNoteHandler(svcs.CaseCollectionNotes, func(userName string, parentID uint, text string) *models.CaseCollectionNote {
		return &models.CaseCollectionNote{UserName: userName, CaseCollectionID: parentID, NoteText: text}
	}).Register(api, "case_collections")
	handler.NewNoteHandler(svcs.CashCollectionNotes, func(userName string, parentID uint, text string) *models.CashCollectionNote {
		return &models.CashCollectionNote{UserName: userName, CashCollectionID: parentID, NoteText: text}
	}).Register(api, "cash_collections")

	return router
}
