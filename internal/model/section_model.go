package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Section struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NotebookId  uuid.UUID      `gorm:"type:uuid;not null;index:idx_sections_notebook_position"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	Color       string         `gorm:"type:varchar(7)"`
	Icon        string         `gorm:"type:varchar(50)"`
	Position    int            `gorm:"not null;default:0;index:idx_sections_notebook_position"`
	IsCollapsed bool           `gorm:"not null;default:false"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Section) TableName() string {
	return "sections"
}
