package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySectionID filters pages by section
type BySectionID struct {
	SectionID uuid.UUID
}

func (s BySectionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("section_id = ?", s.SectionID)
}

// ByPageID filters voice annotations by page
type ByPageID struct {
	PageID uuid.UUID
}

func (s ByPageID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("page_id = ?", s.PageID)
}

// TitleOrContentLike is a case-insensitive substring search over pages
type TitleOrContentLike struct {
	Query string
}

func (s TitleOrContentLike) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
}
