package entity

import (
	"time"

	"github.com/google/uuid"
)

type Section struct {
	Id          uuid.UUID
	NotebookId  uuid.UUID
	Title       string
	Description string
	Color       string
	Icon        string
	Position    int
	IsCollapsed bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}
