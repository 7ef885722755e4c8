package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type VoiceAnnotation struct {
	Id                  uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PageId              uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title               string         `gorm:"type:varchar(255)"`
	AudioFilePath       string         `gorm:"type:varchar(500);not null"`
	Transcription       string         `gorm:"type:text;not null;default:''"`
	TranscriptionStatus string         `gorm:"type:varchar(50);not null;default:'pending';index"`
	DurationSeconds     float64        `gorm:"not null;default:0"`
	SampleRate          int            `gorm:"not null;default:44100"`
	Channels            int            `gorm:"not null;default:1"`
	BitDepth            int            `gorm:"not null;default:16"`
	FileSizeBytes       int64          `gorm:"not null;default:0"`
	Metadata            datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt           time.Time      `gorm:"autoCreateTime"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime"`
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}

func (VoiceAnnotation) TableName() string {
	return "voice_annotations"
}
