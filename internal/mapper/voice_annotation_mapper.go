package mapper

import (
	"notably-be/internal/entity"
	"notably-be/internal/model"
)

type VoiceAnnotationMapper struct{}

func NewVoiceAnnotationMapper() *VoiceAnnotationMapper {
	return &VoiceAnnotationMapper{}
}

func (m *VoiceAnnotationMapper) ToEntity(v *model.VoiceAnnotation) *entity.VoiceAnnotation {
	if v == nil {
		return nil
	}

	return &entity.VoiceAnnotation{
		Id:                  v.Id,
		PageId:              v.PageId,
		Title:               v.Title,
		AudioFilePath:       v.AudioFilePath,
		Transcription:       v.Transcription,
		TranscriptionStatus: v.TranscriptionStatus,
		DurationSeconds:     v.DurationSeconds,
		SampleRate:          v.SampleRate,
		Channels:            v.Channels,
		BitDepth:            v.BitDepth,
		FileSizeBytes:       v.FileSizeBytes,
		Metadata:            jsonToMetadata(v.Metadata),
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           updatedAtToPtr(v.UpdatedAt),
		DeletedAt:           deletedAtToPtr(v.DeletedAt),
		IsDeleted:           v.DeletedAt.Valid,
	}
}

func (m *VoiceAnnotationMapper) ToModel(v *entity.VoiceAnnotation) *model.VoiceAnnotation {
	if v == nil {
		return nil
	}

	return &model.VoiceAnnotation{
		Id:                  v.Id,
		PageId:              v.PageId,
		Title:               v.Title,
		AudioFilePath:       v.AudioFilePath,
		Transcription:       v.Transcription,
		TranscriptionStatus: v.TranscriptionStatus,
		DurationSeconds:     v.DurationSeconds,
		SampleRate:          v.SampleRate,
		Channels:            v.Channels,
		BitDepth:            v.BitDepth,
		FileSizeBytes:       v.FileSizeBytes,
		Metadata:            metadataToJSON(v.Metadata),
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           ptrToUpdatedAt(v.UpdatedAt),
		DeletedAt:           ptrToDeletedAt(v.DeletedAt, v.IsDeleted),
	}
}

func (m *VoiceAnnotationMapper) ToEntities(annotations []*model.VoiceAnnotation) []*entity.VoiceAnnotation {
	entities := make([]*entity.VoiceAnnotation, len(annotations))
	for i, v := range annotations {
		entities[i] = m.ToEntity(v)
	}
	return entities
}
