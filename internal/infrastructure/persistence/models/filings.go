package models

import "time"

// Filing is a form or application submitted for a court case.
type Filing struct {
	BaseModel
	FilingTypeID      uint       `gorm:"not null;index" json:"filing_type_id" binding:"required"`
	CourtCaseID       uint       `gorm:"not null;index" json:"court_case_id" binding:"required"`
	SubmitDate        *time.Time `json:"submit_date,omitempty"`
	ReceiptDate       *time.Time `json:"receipt_date,omitempty"`
	ReceiptNumber     *string    `json:"receipt_number,omitempty"`
	PriorityDate      *time.Time `json:"priority_date,omitempty"`
	RfeDate           *time.Time `json:"rfe_date,omitempty"`
	RfeSubmitDate     *time.Time `json:"rfe_submit_date,omitempty"`
	DecisionDate      *time.Time `json:"decision_date,omitempty"`
	Comments          *string    `json:"comments,omitempty"`
	ComponentStatusID uint       `gorm:"not null;index" json:"component_status_id" binding:"required"`

	CourtCase     *CourtCase      `gorm:"-" json:"court_case,omitempty"`
	TaskCalendars []TaskCalendar  `gorm:"-" json:"task_calendars,omitempty"`
	History       []FilingHistory `gorm:"-" json:"history,omitempty"`
	Notes         []FilingNote    `gorm:"-" json:"notes,omitempty"`
}

// TableName maps Filing to its table
func (Filing) TableName() string { return "filings" }

// StatusID returns the component status foreign key
func (f *Filing) StatusID() uint { return f.ComponentStatusID }

// FilingHistory is an immutable snapshot of a filing at the moment of a mutation.
type FilingHistory struct {
	BaseModel
	UserName          string     `gorm:"not null" json:"user_name"`
	FilingID          uint       `gorm:"not null;index" json:"filing_id"`
	FilingTypeID      uint       `json:"filing_type_id"`
	CourtCaseID       uint       `json:"court_case_id"`
	SubmitDate        *time.Time `json:"submit_date,omitempty"`
	ReceiptDate       *time.Time `json:"receipt_date,omitempty"`
	ReceiptNumber     *string    `json:"receipt_number,omitempty"`
	PriorityDate      *time.Time `json:"priority_date,omitempty"`
	RfeDate           *time.Time `json:"rfe_date,omitempty"`
	RfeSubmitDate     *time.Time `json:"rfe_submit_date,omitempty"`
	DecisionDate      *time.Time `json:"decision_date,omitempty"`
	Comments          *string    `json:"comments,omitempty"`
	ComponentStatusID uint       `json:"component_status_id"`
}

// TableName maps FilingHistory to its table
func (FilingHistory) TableName() string { return "filing_histories" }

// HistoryRow builds the audit snapshot for the current filing state.
func (f *Filing) HistoryRow(userName string) *FilingHistory {
	return &FilingHistory{
		UserName:          userName,
		FilingID:          f.ID,
		FilingTypeID:      f.FilingTypeID,
		CourtCaseID:       f.CourtCaseID,
		SubmitDate:        f.SubmitDate,
		ReceiptDate:       f.ReceiptDate,
		ReceiptNumber:     f.ReceiptNumber,
		PriorityDate:      f.PriorityDate,
		RfeDate:           f.RfeDate,
		RfeSubmitDate:     f.RfeSubmitDate,
		DecisionDate:      f.DecisionDate,
		Comments:          f.Comments,
		ComponentStatusID: f.ComponentStatusID,
	}
}

// FilingNote is a free-text annotation on a filing.
type FilingNote struct {
	BaseModel
	UserName string `gorm:"not null" json:"user_name"`
	FilingID uint   `gorm:"not null;index" json:"filing_id"`
	NoteText string `gorm:"not null" json:"note_text" binding:"required"`
}

// TableName maps FilingNote to its table
func (FilingNote) TableName() string { return "filing_notes" }
