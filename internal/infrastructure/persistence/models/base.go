package models

import "time"

// BaseModel provides the common persistence fields shared by every table:
// surrogate key, server-assigned timestamps, and the soft-delete marker.
type BaseModel struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Created     time.Time  `gorm:"not null" json:"created"`
	Modified    time.Time  `gorm:"not null" json:"modified"`
	IsDeleted   bool       `gorm:"not null;default:false;index" json:"is_deleted"`
	DeletedDate *time.Time `json:"deleted_date,omitempty"`
}

// GetID returns the surrogate key.
func (m *BaseModel) GetID() uint { return m.ID }

// StampCreate initializes the engine-managed fields on insert.
func (m *BaseModel) StampCreate(now time.Time) {
	m.Created = now
	m.Modified = now
	m.IsDeleted = false
	m.DeletedDate = nil
}

// Touch updates the modification timestamp.
func (m *BaseModel) Touch(now time.Time) { m.Modified = now }

// MarkDeleted applies the soft-delete marker.
func (m *BaseModel) MarkDeleted(now time.Time) {
	m.IsDeleted = true
	m.DeletedDate = &now
	m.Modified = now
}

// ClearDeleted reverses a soft delete (restore).
func (m *BaseModel) ClearDeleted(now time.Time) {
	m.IsDeleted = false
	m.DeletedDate = nil
	m.Modified = now
}

// Deleted reports whether the row carries the soft-delete marker.
func (m *BaseModel) Deleted() bool { return m.IsDeleted }

// Persistable is the contract the generic persistence engine requires of
// every model pointer it manages.
type Persistable interface {
	GetID() uint
	StampCreate(now time.Time)
	Touch(now time.Time)
	MarkDeleted(now time.Time)
	ClearDeleted(now time.Time)
	Deleted() bool
}

// Statused is implemented by primary entities that carry a component status,
// which the status-dependency guard inspects on update.
type Statused interface {
	StatusID() uint
}
