package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePageRequest struct {
	NotebookId  uuid.UUID              `json:"-"`
	SectionId   *uuid.UUID             `json:"section_id"`
	Title       string                 `json:"title" validate:"required"`
	Content     string                 `json:"content"`
	ContentType string                 `json:"content_type"`
	Tags        []string               `json:"tags"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type CreatePageResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdatePageRequest struct {
	Id          uuid.UUID              `json:"-"`
	SectionId   *uuid.UUID             `json:"section_id"`
	Title       string                 `json:"title" validate:"required"`
	Content     string                 `json:"content"`
	ContentType string                 `json:"content_type"`
	Tags        []string               `json:"tags"`
	IsArchived  *bool                  `json:"is_archived"`
	IsPinned    *bool                  `json:"is_pinned"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type UpdatePageResponse struct {
	Id uuid.UUID `json:"id"`
}

type PageResponse struct {
	Id             uuid.UUID              `json:"id"`
	NotebookId     uuid.UUID              `json:"notebook_id"`
	SectionId      *uuid.UUID             `json:"section_id"`
	Title          string                 `json:"title"`
	Content        string                 `json:"content"`
	ContentType    string                 `json:"content_type"`
	Tags           []string               `json:"tags,omitempty"`
	IsArchived     bool                   `json:"is_archived"`
	IsPinned       bool                   `json:"is_pinned"`
	WordCount      int                    `json:"word_count"`
	LastAccessedAt *time.Time             `json:"last_accessed_at"`
	AccessCount    int                    `json:"access_count"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      *time.Time             `json:"updated_at"`
}

// PageListItem omits content so notebook page listings stay light.
type PageListItem struct {
	Id        uuid.UUID  `json:"id"`
	SectionId *uuid.UUID `json:"section_id"`
	Title     string     `json:"title"`
	Tags      []string   `json:"tags,omitempty"`
	IsPinned  bool       `json:"is_pinned"`
	WordCount int        `json:"word_count"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type ListPagesQuery struct {
	NotebookId uuid.UUID
	SectionId  *uuid.UUID
	Page       int
	PerPage    int
	Query      string
}

type PageListResponse struct {
	Items   []*PageListItem `json:"items"`
	Page    int             `json:"page"`
	PerPage int             `json:"per_page"`
	Total   int             `json:"total"`
}
