package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CaseCollection is the fee arrangement quoted for a court case.
type CaseCollection struct {
	BaseModel
	QuoteAmount       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"quote_amount" binding:"required"`
	CourtCaseID       uint            `gorm:"not null;index" json:"court_case_id" binding:"required"`
	Memo              *string         `json:"memo,omitempty"`
	ComponentStatusID uint            `gorm:"not null;index" json:"component_status_id" binding:"required"`

	CourtCase       *CourtCase              `gorm:"-" json:"court_case,omitempty"`
	CashCollections []CashCollection        `gorm:"-" json:"cash_collections,omitempty"`
	History         []CaseCollectionHistory `gorm:"-" json:"history,omitempty"`
	Notes           []CaseCollectionNote    `gorm:"-" json:"notes,omitempty"`
}

// TableName maps CaseCollection to its table
func (CaseCollection) TableName() string { return "case_collections" }

// StatusID returns the component status foreign key
func (c *CaseCollection) StatusID() uint { return c.ComponentStatusID }

// CaseCollectionHistory is an immutable snapshot of a case collection.
type CaseCollectionHistory struct {
	BaseModel
	UserName          string          `gorm:"not null" json:"user_name"`
	CaseCollectionID  uint            `gorm:"not null;index" json:"case_collection_id"`
	QuoteAmount       decimal.Decimal `gorm:"type:numeric(12,2)" json:"quote_amount"`
	CourtCaseID       uint            `json:"court_case_id"`
	Memo              *string         `json:"memo,omitempty"`
	ComponentStatusID uint            `json:"component_status_id"`
}

// TableName maps CaseCollectionHistory to its table
func (CaseCollectionHistory) TableName() string { return "case_collection_histories" }

// HistoryRow builds the audit snapshot for the current case collection state.
func (c *CaseCollection) HistoryRow(userName string) *CaseCollectionHistory {
	return &CaseCollectionHistory{
		UserName:          userName,
		CaseCollectionID:  c.ID,
		QuoteAmount:       c.QuoteAmount,
		CourtCaseID:       c.CourtCaseID,
		Memo:              c.Memo,
		ComponentStatusID: c.ComponentStatusID,
	}
}

// CaseCollectionNote is a free-text annotation on a case collection.
type CaseCollectionNote struct {
	BaseModel
	UserName         string `gorm:"not null" json:"user_name"`
	CaseCollectionID uint   `gorm:"not null;index" json:"case_collection_id"`
	NoteText         string `gorm:"not null" json:"note_text" binding:"required"`
}

// TableName maps CaseCollectionNote to its table
func (CaseCollectionNote) TableName() string { return "case_collection_notes" }

// CashCollection is one payment received against a case collection.
type CashCollection struct {
	BaseModel
	CollectionDate     time.Time       `gorm:"not null" json:"collection_date" binding:"required"`
	CollectedAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"collected_amount" binding:"required"`
	WaivedAmount       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"waived_amount"`
	Memo               *string         `json:"memo,omitempty"`
	CaseCollectionID   uint            `gorm:"not null;index" json:"case_collection_id" binding:"required"`
	CollectionMethodID uint            `gorm:"not null;index" json:"collection_method_id" binding:"required"`
	ComponentStatusID  uint            `gorm:"not null;index" json:"component_status_id" binding:"required"`

	CaseCollection *CaseCollection         `gorm:"-" json:"case_collection,omitempty"`
	History        []CashCollectionHistory `gorm:"-" json:"history,omitempty"`
	Notes          []CashCollectionNote    `gorm:"-" json:"notes,omitempty"`
}

// TableName maps CashCollection to its table
func (CashCollection) TableName() string { return "cash_collections" }

// StatusID returns the component status foreign key
func (c *CashCollection) StatusID() uint { return c.ComponentStatusID }

// CashCollectionHistory is an immutable snapshot of a cash collection.
type CashCollectionHistory struct {
	BaseModel
	UserName           string          `gorm:"not null" json:"user_name"`
	CashCollectionID   uint            `gorm:"not null;index" json:"cash_collection_id"`
	CollectionDate     time.Time       `json:"collection_date"`
	CollectedAmount    decimal.Decimal `gorm:"type:numeric(12,2)" json:"collected_amount"`
	WaivedAmount       decimal.Decimal `gorm:"type:numeric(12,2)" json:"waived_amount"`
	Memo               *string         `json:"memo,omitempty"`
	CaseCollectionID   uint            `json:"case_collection_id"`
	CollectionMethodID uint            `json:"collection_method_id"`
	ComponentStatusID  uint            `json:"component_status_id"`
}

// TableName maps CashCollectionHistory to its table
func (CashCollectionHistory) TableName() string { return "cash_collection_histories" }

// HistoryRow builds the audit snapshot for the current cash collection state.
func (c *CashCollection) HistoryRow(userName string) *CashCollectionHistory {
	return &CashCollectionHistory{
		UserName:           userName,
		CashCollectionID:   c.ID,
		CollectionDate:     c.CollectionDate,
		CollectedAmount:    c.CollectedAmount,
		WaivedAmount:       c.WaivedAmount,
		Memo:               c.Memo,
		CaseCollectionID:   c.CaseCollectionID,
		CollectionMethodID: c.CollectionMethodID,
		ComponentStatusID:  c.ComponentStatusID,
	}
}

// CashCollectionNote is a free-text annotation on a cash collection.
type CashCollectionNote struct {
	BaseModel
	UserName         string `gorm:"not null" json:"user_name"`
	CashCollectionID uint   `gorm:"not null;index" json:"cash_collection_id"`
	NoteText         string `gorm:"not null" json:"note_text" binding:"required"`
}

// TableName maps CashCollectionNote to its table
func (CashCollectionNote) TableName() string { return "cash_collection_notes" }
