package models

// Component names scope status rows to an entity type.
const (
	ComponentCourt           = "COURT"
	ComponentJudge           = "JUDGE"
	ComponentClient          = "CLIENT"
	ComponentCourtCase       = "COURT_CASE"
	ComponentFiling          = "FILING"
	ComponentHearingCalendar = "HEARING_CALENDAR"
	ComponentTaskCalendar    = "TASK_CALENDAR"
	ComponentCaseCollection  = "CASE_COLLECTION"
	ComponentCashCollection  = "CASH_COLLECTION"
)

// Reference cache kinds, one per reference table.
const (
	RefComponentStatuses = "component_statuses"
	RefCaseTypes         = "case_types"
	RefFilingTypes       = "filing_types"
	RefHearingTypes      = "hearing_types"
	RefTaskTypes         = "task_types"
	RefCollectionMethods = "collection_methods"
)

// ComponentStatus is a status definition scoped to a component. The set of
// rows with IsActive=true for a component is that component's active set.
type ComponentStatus struct {
	BaseModel
	ComponentName string `gorm:"not null;index:idx_component_status,priority:1" json:"component_name" binding:"required"`
	StatusName    string `gorm:"not null" json:"status_name" binding:"required"`
	IsActive      bool   `gorm:"not null;index:idx_component_status,priority:2" json:"is_active"`
}

// TableName maps ComponentStatus to its table
func (ComponentStatus) TableName() string { return "component_statuses" }

// CaseType classifies court cases (asylum, adjustment, removal defense, ...).
type CaseType struct {
	BaseModel
	Name        string  `gorm:"not null;uniqueIndex" json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
}

// TableName maps CaseType to its table
func (CaseType) TableName() string { return "case_types" }

// FilingType classifies filings (I-589, I-485, EAD renewal, ...).
type FilingType struct {
	BaseModel
	Name        string  `gorm:"not null;uniqueIndex" json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
}

// TableName maps FilingType to its table
func (FilingType) TableName() string { return "filing_types" }

// HearingType classifies hearings (MASTER, MERIT, ...).
type HearingType struct {
	BaseModel
	Name        string  `gorm:"not null;uniqueIndex" json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
}

// TableName maps HearingType to its table
func (HearingType) TableName() string { return "hearing_types" }

// TaskType classifies calendar tasks (DUE_AT_HEARING, DOCUMENT_PREP, ...).
type TaskType struct {
	BaseModel
	Name        string  `gorm:"not null;uniqueIndex" json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
}

// TableName maps TaskType to its table
func (TaskType) TableName() string { return "task_types" }

// CollectionMethod classifies cash collections (check, card, transfer, ...).
type CollectionMethod struct {
	BaseModel
	Name        string  `gorm:"not null;uniqueIndex" json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
}

// TableName maps CollectionMethod to its table
func (CollectionMethod) TableName() string { return "collection_methods" }
