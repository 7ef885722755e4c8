package entity

import (
	"time"

	"github.com/google/uuid"
)

type Notebook struct {
	Id          uuid.UUID
	Title       string
	Description string
	Color       string
	Icon        string
	IsArchived  bool
	IsPinned    bool
	Metadata    map[string]interface{}
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}
