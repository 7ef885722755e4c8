package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByNotebookID filters child rows by owning notebook
type ByNotebookID struct {
	NotebookID uuid.UUID
}

func (s ByNotebookID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notebook_id = ?", s.NotebookID)
}

// Archived filters by archive state
type Archived struct {
	Value bool
}

func (s Archived) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_archived = ?", s.Value)
}

// PinnedFirst orders pinned rows ahead of the rest, newest first within each group
type PinnedFirst struct{}

func (s PinnedFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("is_pinned DESC").Order("created_at DESC")
}
