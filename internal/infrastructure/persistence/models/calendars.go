package models

import "time"

// HearingCalendar is a scheduled hearing for a court case.
type HearingCalendar struct {
	BaseModel
	HearingDate       time.Time `gorm:"not null" json:"hearing_date" binding:"required"`
	HearingTypeID     uint      `gorm:"not null;index" json:"hearing_type_id" binding:"required"`
	CourtCaseID       uint      `gorm:"not null;index" json:"court_case_id" binding:"required"`
	Comments          *string   `json:"comments,omitempty"`
	ComponentStatusID uint      `gorm:"not null;index" json:"component_status_id" binding:"required"`

	CourtCase     *CourtCase               `gorm:"-" json:"court_case,omitempty"`
	TaskCalendars []TaskCalendar           `gorm:"-" json:"task_calendars,omitempty"`
	History       []HearingCalendarHistory `gorm:"-" json:"history,omitempty"`
	Notes         []HearingCalendarNote    `gorm:"-" json:"notes,omitempty"`
}

// TableName maps HearingCalendar to its table
func (HearingCalendar) TableName() string { return "hearing_calendars" }

// StatusID returns the component status foreign key
func (h *HearingCalendar) StatusID() uint { return h.ComponentStatusID }

// HearingCalendarHistory is an immutable snapshot of a hearing calendar entry.
type HearingCalendarHistory struct {
	BaseModel
	UserName          string    `gorm:"not null" json:"user_name"`
	HearingCalendarID uint      `gorm:"not null;index" json:"hearing_calendar_id"`
	HearingDate       time.Time `json:"hearing_date"`
	HearingTypeID     uint      `json:"hearing_type_id"`
	CourtCaseID       uint      `json:"court_case_id"`
	Comments          *string   `json:"comments,omitempty"`
	ComponentStatusID uint      `json:"component_status_id"`
}

// TableName maps HearingCalendarHistory to its table
func (HearingCalendarHistory) TableName() string { return "hearing_calendar_histories" }

// HistoryRow builds the audit snapshot for the current hearing calendar state.
func (h *HearingCalendar) HistoryRow(userName string) *HearingCalendarHistory {
	return &HearingCalendarHistory{
		UserName:          userName,
		HearingCalendarID: h.ID,
		HearingDate:       h.HearingDate,
		HearingTypeID:     h.HearingTypeID,
		CourtCaseID:       h.CourtCaseID,
		Comments:          h.Comments,
		ComponentStatusID: h.ComponentStatusID,
	}
}

// HearingCalendarNote is a free-text annotation on a hearing calendar entry.
type HearingCalendarNote struct {
	BaseModel
	UserName          string `gorm:"not null" json:"user_name"`
	HearingCalendarID uint   `gorm:"not null;index" json:"hearing_calendar_id"`
	NoteText          string `gorm:"not null" json:"note_text" binding:"required"`
}

// TableName maps HearingCalendarNote to its table
func (HearingCalendarNote) TableName() string { return "hearing_calendar_notes" }

// TaskCalendar is a dated task tied to exactly one of a hearing or a filing.
type TaskCalendar struct {
	BaseModel
	TaskDate          time.Time `gorm:"not null" json:"task_date" binding:"required"`
	DueDate           time.Time `gorm:"not null" json:"due_date" binding:"required"`
	TaskTypeID        uint      `gorm:"not null;index" json:"task_type_id" binding:"required"`
	HearingCalendarID *uint     `gorm:"index" json:"hearing_calendar_id,omitempty"`
	FilingID          *uint     `gorm:"index" json:"filing_id,omitempty"`
	Comments          *string   `json:"comments,omitempty"`
	ComponentStatusID uint      `gorm:"not null;index" json:"component_status_id" binding:"required"`

	HearingCalendar *HearingCalendar      `gorm:"-" json:"hearing_calendar,omitempty"`
	Filing          *Filing               `gorm:"-" json:"filing,omitempty"`
	History         []TaskCalendarHistory `gorm:"-" json:"history,omitempty"`
	Notes           []TaskCalendarNote    `gorm:"-" json:"notes,omitempty"`
}

// TableName maps TaskCalendar to its table
func (TaskCalendar) TableName() string { return "task_calendars" }

// StatusID returns the component status foreign key
func (t *TaskCalendar) StatusID() uint { return t.ComponentStatusID }

// TaskCalendarHistory is an immutable snapshot of a task calendar entry.
type TaskCalendarHistory struct {
	BaseModel
	UserName          string    `gorm:"not null" json:"user_name"`
	TaskCalendarID    uint      `gorm:"not null;index" json:"task_calendar_id"`
	TaskDate          time.Time `json:"task_date"`
	DueDate           time.Time `json:"due_date"`
	TaskTypeID        uint      `json:"task_type_id"`
	HearingCalendarID *uint     `json:"hearing_calendar_id,omitempty"`
	FilingID          *uint     `json:"filing_id,omitempty"`
	Comments          *string   `json:"comments,omitempty"`
	ComponentStatusID uint      `json:"component_status_id"`
}

// TableName maps TaskCalendarHistory to its table
func (TaskCalendarHistory) TableName() string { return "task_calendar_histories" }

// HistoryRow builds the audit snapshot for the current task calendar state.
func (t *TaskCalendar) HistoryRow(userName string) *TaskCalendarHistory {
	return &TaskCalendarHistory{
		UserName:          userName,
		TaskCalendarID:    t.ID,
		TaskDate:          t.TaskDate,
		DueDate:           t.DueDate,
		TaskTypeID:        t.TaskTypeID,
		HearingCalendarID: t.HearingCalendarID,
		FilingID:          t.FilingID,
		Comments:          t.Comments,
		ComponentStatusID: t.ComponentStatusID,
	}
}

// TaskCalendarNote is a free-text annotation on a task calendar entry.
type TaskCalendarNote struct {
	BaseModel
	UserName       string `gorm:"not null" json:"user_name"`
	TaskCalendarID uint   `gorm:"not null;index" json:"task_calendar_id"`
	NoteText       string `gorm:"not null" json:"note_text" binding:"required"`
}

// TableName maps TaskCalendarNote to its table
func (TaskCalendarNote) TableName() string { return "task_calendar_notes" }
