package models

import "github.com/trackcase/backend/internal/domain/shared"

// Entity descriptors drive the generic persistence engine: which columns an
// update payload may touch and how an explicit null is treated per column
// kind. Relationship keys and dates are deliberately KindRelation/KindTime so
// a null can never clear them; see shared.EntityDescriptor.ApplyPatch.

// CourtDescriptor describes the courts table.
var CourtDescriptor = shared.EntityDescriptor{
	Name:      "court",
	Component: ComponentCourt,
	Fields: []shared.FieldDescriptor{
		{Column: "name", Kind: shared.KindString},
		{Column: "court_url", Kind: shared.KindString},
		{Column: "address", Kind: shared.KindString},
		{Column: "city", Kind: shared.KindString},
		{Column: "state", Kind: shared.KindString},
		{Column: "zip_code", Kind: shared.KindString},
		{Column: "phone_number", Kind: shared.KindString},
		{Column: "comments", Kind: shared.KindString},
		{Column: "component_status_id", Kind: shared.KindRelation},
	},
}

// JudgeDescriptor describes the judges table.
var JudgeDescriptor = shared.EntityDescriptor{
	Name:      "judge",
	Component: ComponentJudge,
	Fields: []shared.FieldDescriptor{
		{Column: "name", Kind: shared.KindString},
		{Column: "webex", Kind: shared.KindString},
		{Column: "comments", Kind: shared.KindString},
		{Column: "court_id", Kind: shared.KindRelation},
		{Column: "component_status_id", Kind: shared.KindRelation},
	},
}

// ClientDescriptor describes the clients table.
var ClientDescriptor = shared.EntityDescriptor{
	Name:      "client",
	Component: ComponentClient,
	Fields: []shared.FieldDescriptor{
		{Column: "name", Kind: shared.KindString},
		{Column: "a_number", Kind: shared.KindString},
		{Column: "email", Kind: shared.KindString},
		{Column: "phone_number", Kind: shared.KindString},
		{Column: "address", Kind: shared.KindString},
		{Column: "city", Kind: shared.KindString},
		{Column: "state", Kind: shared.KindString},
		{Column: "zip_code", Kind: shared.KindString},
		{Column: "comments", Kind: shared.KindString},
		{Column: "judge_id", Kind: shared.KindRelation},
		{Column: "component_status_id", Kind: shared.KindRelation},
	},
}

// CourtCaseDescriptor describes the court_cases table.
var CourtCaseDescriptor = shared.EntityDescriptor{
	Name:      "court case",
	Component: ComponentCourtCase,
	Fields: []shared.FieldDescriptor{
		{Column: "case_type_id", Kind: shared.KindRelation},
		{Column: "client_id", Kind: shared.KindRelation},
		{Column: "comments", Kind: shared.KindString},
		{Column: "component_status_id", Kind: shared.KindRelation},
	},
}

// FilingDescriptor describes the filings table.
var FilingDescriptor = shared.EntityDescriptor{
	Name:      "filing",
	Component: ComponentFiling,
	Fields: []shared.FieldDescriptor{
		{Column: "filing_type_id", Kind: shared.KindRelation},
		{Column: "court_case_id", Kind: shared.KindRelation},
		{Column: "submit_date", Kind: shared.KindTime},
		{Column: "receipt_date", Kind: shared.KindTime},
		{Column: "receipt_number", Kind: shared.KindString},
		{Column: "priority_date", Kind: shared.KindTime},
		{Column: "rfe_date", Kind: shared.KindTime},
		{Column: "rfe_submit_date", Kind: shared.KindTime},
		{Column: "decision_date", Kind: shared.KindTime},
		{Column: "comments", Kind: shared.KindString},
		{Column: "component_status_id", Kind: shared.KindRelation},
	},
}

// HearingCalendarDescriptor describes the hearing_calendars table.
var HearingCalendarDescriptor = shared.EntityDescriptor{
	Name:      "hearing calendar",
	Component: ComponentHearingCalendar,
	Fields: []shared.FieldDescriptor{
		{Column: "hearing_date", Kind: shared.KindTime},
		{Column: "hearing_type_id", Kind: shared.KindRelation},
		{Column: "court_case_id", Kind: shared.KindRelation},
		{Column: "comments", Kind: shared.KindString},
		{Column: "component_status_id", Kind: shared.KindRelation},
	},
}

// TaskCalendarDescriptor describes the task_calendars table.
var TaskCalendarDescriptor = shared.EntityDescriptor{
	Name:      "task calendar",
	Component: ComponentTaskCalendar,
	Fields: []shared.FieldDescriptor{
		{Column: "task_date", Kind: shared.KindTime},
		{Column: "due_date", Kind: shared.KindTime},
		{Column: "task_type_id", Kind: shared.KindRelation},
		{Column: "hearing_calendar_id", Kind: shared.KindRelation},
		{Column: "filing_id", Kind: shared.KindRelation},
		{Column: "comments", Kind: shared.KindString},
		{Column: "component_status_id", Kind: shared.KindRelation},
	},
}

// CaseCollectionDescriptor describes the case_collections table.
var CaseCollectionDescriptor = shared.EntityDescriptor{
	Name:      "case collection",
	Component: ComponentCaseCollection,
	Fields: []shared.FieldDescriptor{
		{Column: "quote_amount", Kind: shared.KindDecimal},
		{Column: "court_case_id", Kind: shared.KindRelation},
		{Column: "memo", Kind: shared.KindString},
		{Column: "component_status_id", Kind: shared.KindRelation},
	},
}

// CashCollectionDescriptor describes the cash_collections table.
var CashCollectionDescriptor = shared.EntityDescriptor{
	Name:      "cash collection",
	Component: ComponentCashCollection,
	Fields: []shared.FieldDescriptor{
		{Column: "collection_date", Kind: shared.KindTime},
		{Column: "collected_amount", Kind: shared.KindDecimal},
		{Column: "waived_amount", Kind: shared.KindDecimal},
		{Column: "memo", Kind: shared.KindString},
		{Column: "case_collection_id", Kind: shared.KindRelation},
		{Column: "collection_method_id", Kind: shared.KindRelation},
		{Column: "component_status_id", Kind: shared.KindRelation},
	},
}

// ComponentStatusDescriptor describes the component_statuses reference table.
var ComponentStatusDescriptor = shared.EntityDescriptor{
	Name: "component status",
	Fields: []shared.FieldDescriptor{
		{Column: "component_name", Kind: shared.KindString},
		{Column: "status_name", Kind: shared.KindString},
		{Column: "is_active", Kind: shared.KindBool},
	},
}

// RefTypeDescriptor builds the descriptor shared by the name/description
// reference tables (case, filing, hearing and task types, collection methods).
func RefTypeDescriptor(name string) shared.EntityDescriptor {
	return shared.EntityDescriptor{
		Name: name,
		Fields: []shared.FieldDescriptor{
			{Column: "name", Kind: shared.KindString},
			{Column: "description", Kind: shared.KindString},
		},
	}
}

// NoteDescriptor builds the descriptor for a note table with the given parent
// foreign key column.
func NoteDescriptor(name, parentColumn string) shared.EntityDescriptor {
	return shared.EntityDescriptor{
		Name: name,
		Fields: []shared.FieldDescriptor{
			{Column: "user_name", Kind: shared.KindString},
			{Column: parentColumn, Kind: shared.KindRelation},
			{Column: "note_text", Kind: shared.KindString},
		},
	}
}

// HistoryDescriptor builds a minimal descriptor for a history table. History
// rows are append-only; the descriptor exists so the engine can name the
// entity in errors, not to support updates.
func HistoryDescriptor(name string) shared.EntityDescriptor {
	return shared.EntityDescriptor{Name: name}
}
