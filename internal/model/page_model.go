package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Page struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NotebookId     uuid.UUID      `gorm:"type:uuid;not null;index:idx_pages_notebook_section"`
	SectionId      *uuid.UUID     `gorm:"type:uuid;index:idx_pages_notebook_section"`
	Title          string         `gorm:"type:varchar(255);not null"`
	Content        string         `gorm:"type:text;not null;default:''"`
	ContentType    string         `gorm:"type:varchar(50);not null;default:'markdown'"`
	Tags           datatypes.JSON `gorm:"type:jsonb"`
	IsArchived     bool           `gorm:"not null;default:false;index"`
	IsPinned       bool           `gorm:"not null;default:false;index"`
	WordCount      int            `gorm:"not null;default:0"`
	LastAccessedAt *time.Time
	AccessCount    int            `gorm:"not null;default:0"`
	Metadata       datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Page) TableName() string {
	return "pages"
}
