package persistence

import (
	"strings"

	"github.com/trackcase/backend/internal/domain/shared"
)

// ColumnSet is the whitelist of columns an entity accepts for filtering and
// sorting. Everything else is rejected before it reaches SQL.
type ColumnSet map[string]bool

// NormalizeSortDirection validates a sort direction, returning the canonical
// ASC/DESC form. Anything other than asc/desc is an unsupported operation.
func NormalizeSortDirection(direction string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(direction)) {
	case "", shared.SortAsc:
		return shared.SortAsc, nil
	case shared.SortDesc:
		return shared.SortDesc, nil
	}
	return "", shared.NewUnsupportedOperation("unsupported sort direction " + strings.TrimSpace(direction))
}

// baseColumns are present on every table.
func baseColumns(extra ...string) ColumnSet {
	cols := ColumnSet{
		"id":         true,
		"created":    true,
		"modified":   true,
		"is_deleted": true,
	}
	for _, c := range extra {
		cols[c] = true
	}
	return cols
}

// CourtColumns contains filterable/sortable columns for courts
var CourtColumns = baseColumns(
	"name", "city", "state", "zip_code", "component_status_id",
)

// JudgeColumns contains filterable/sortable columns for judges
var JudgeColumns = baseColumns(
	"name", "court_id", "component_status_id",
)

// ClientColumns contains filterable/sortable columns for clients
var ClientColumns = baseColumns(
	"name", "a_number", "email", "phone_number", "city", "state", "judge_id", "component_status_id",
)

// CourtCaseColumns contains filterable/sortable columns for court cases
var CourtCaseColumns = baseColumns(
	"case_type_id", "client_id", "component_status_id",
)

// FilingColumns contains filterable/sortable columns for filings
var FilingColumns = baseColumns(
	"filing_type_id", "court_case_id", "submit_date", "receipt_date", "receipt_number",
	"priority_date", "rfe_date", "decision_date", "component_status_id",
)

// HearingCalendarColumns contains filterable/sortable columns for hearing calendars
var HearingCalendarColumns = baseColumns(
	"hearing_date", "hearing_type_id", "court_case_id", "component_status_id",
)

// TaskCalendarColumns contains filterable/sortable columns for task calendars
var TaskCalendarColumns = baseColumns(
	"task_date", "due_date", "task_type_id", "hearing_calendar_id", "filing_id", "component_status_id",
)

// CaseCollectionColumns contains filterable/sortable columns for case collections
var CaseCollectionColumns = baseColumns(
	"quote_amount", "court_case_id", "component_status_id",
)

// CashCollectionColumns contains filterable/sortable columns for cash collections
var CashCollectionColumns = baseColumns(
	"collection_date", "collected_amount", "waived_amount", "case_collection_id",
	"collection_method_id", "component_status_id",
)

// ComponentStatusColumns contains filterable/sortable columns for component statuses
var ComponentStatusColumns = baseColumns(
	"component_name", "status_name", "is_active",
)

// RefTypeColumns contains filterable/sortable columns for the name/description
// reference tables.
var RefTypeColumns = baseColumns(
	"name",
)

// NoteColumns builds the whitelist for a note table with the given parent key.
func NoteColumns(parentColumn string) ColumnSet {
	return baseColumns("user_name", parentColumn)
}

// HistoryColumns builds the whitelist for a history table with the given
// parent key.
func HistoryColumns(parentColumn string) ColumnSet {
	return baseColumns("user_name", parentColumn)
}
