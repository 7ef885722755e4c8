package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSectionRequest struct {
	NotebookId  uuid.UUID `json:"-"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	Position    int       `json:"position"`
}

type CreateSectionResponse struct {
	Id uuid.UUID `json:"id"`
}

type SectionResponse struct {
	Id          uuid.UUID  `json:"id"`
	NotebookId  uuid.UUID  `json:"notebook_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Color       string     `json:"color,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	Position    int        `json:"position"`
	IsCollapsed bool       `json:"is_collapsed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
