package entity

import (
	"time"

	"github.com/google/uuid"
)

// Transcription status values. Annotations are created "pending" and stay
// there: no transcription pipeline runs in this service.
const (
	TranscriptionStatusPending    = "pending"
	TranscriptionStatusProcessing = "processing"
	TranscriptionStatusCompleted  = "completed"
	TranscriptionStatusFailed     = "failed"
)

type VoiceAnnotation struct {
	Id                  uuid.UUID
	PageId              uuid.UUID
	Title               string
	AudioFilePath       string
	Transcription       string
	TranscriptionStatus string
	DurationSeconds     float64
	SampleRate          int
	Channels            int
	BitDepth            int
	FileSizeBytes       int64
	Metadata            map[string]interface{}
	CreatedAt           time.Time
	UpdatedAt           *time.Time
	DeletedAt           *time.Time
	IsDeleted           bool
}
