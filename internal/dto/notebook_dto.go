package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNotebookRequest struct {
	Title       string                 `json:"title" validate:"required"`
	Description string                 `json:"description"`
	Color       string                 `json:"color"`
	Icon        string                 `json:"icon"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type CreateNotebookResponse struct {
	Id uuid.UUID `json:"id"`
}

type NotebookResponse struct {
	Id          uuid.UUID              `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	Color       string                 `json:"color,omitempty"`
	Icon        string                 `json:"icon,omitempty"`
	IsArchived  bool                   `json:"is_archived"`
	IsPinned    bool                   `json:"is_pinned"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   *time.Time             `json:"updated_at"`
}

type UpdateNotebookRequest struct {
	Id          uuid.UUID              `json:"-"`
	Title       string                 `json:"title" validate:"required"`
	Description string                 `json:"description"`
	Color       string                 `json:"color"`
	Icon        string                 `json:"icon"`
	IsArchived  *bool                  `json:"is_archived"`
	IsPinned    *bool                  `json:"is_pinned"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type UpdateNotebookResponse struct {
	Id uuid.UUID `json:"id"`
}
