package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateVoiceAnnotationRequest struct {
	PageId          uuid.UUID              `json:"page_id" validate:"required"`
	Title           string                 `json:"title"`
	AudioFilePath   string                 `json:"audio_file_path" validate:"required"`
	DurationSeconds float64                `json:"duration_seconds"`
	SampleRate      int                    `json:"sample_rate"`
	Channels        int                    `json:"channels"`
	BitDepth        int                    `json:"bit_depth"`
	FileSizeBytes   int64                  `json:"file_size_bytes"`
	Metadata        map[string]interface{} `json:"metadata"`
}

type CreateVoiceAnnotationResponse struct {
	Id uuid.UUID `json:"id"`
}

type VoiceAnnotationResponse struct {
	Id                  uuid.UUID              `json:"id"`
	PageId              uuid.UUID              `json:"page_id"`
	Title               string                 `json:"title,omitempty"`
	AudioFilePath       string                 `json:"audio_file_path"`
	Transcription       string                 `json:"transcription"`
	TranscriptionStatus string                 `json:"transcription_status"`
	DurationSeconds     float64                `json:"duration_seconds"`
	SampleRate          int                    `json:"sample_rate"`
	Channels            int                    `json:"channels"`
	BitDepth            int                    `json:"bit_depth"`
	FileSizeBytes       int64                  `json:"file_size_bytes"`
	Metadata            map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           *time.Time             `json:"updated_at"`
}
