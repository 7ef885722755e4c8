package entity

import (
	"time"

	"github.com/google/uuid"
)

type Page struct {
	Id             uuid.UUID
	NotebookId     uuid.UUID
	SectionId      *uuid.UUID
	Title          string
	Content        string
	ContentType    string
	Tags           []string
	IsArchived     bool
	IsPinned       bool
	WordCount      int
	LastAccessedAt *time.Time
	AccessCount    int
	Metadata       map[string]interface{}
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
