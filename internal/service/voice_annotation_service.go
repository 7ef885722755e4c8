package service

import (
	"context"
	"time"

	"notably-be/internal/dto"
	"notably-be/internal/entity"
	"notably-be/internal/repository/specification"
	"notably-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IVoiceAnnotationService interface {
	Create(ctx context.Context, req *dto.CreateVoiceAnnotationRequest) (*dto.CreateVoiceAnnotationResponse, error)
	ListByPage(ctx context.Context, pageId uuid.UUID) ([]*dto.VoiceAnnotationResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.VoiceAnnotationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type voiceAnnotationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewVoiceAnnotationService(uowFactory unitofwork.RepositoryFactory) IVoiceAnnotationService {
	return &voiceAnnotationService{uowFactory: uowFactory}
}

func toVoiceAnnotationResponse(a *entity.VoiceAnnotation) *dto.VoiceAnnotationResponse {
	return &dto.VoiceAnnotationResponse{
		Id:                  a.Id,
		PageId:              a.PageId,
		Title:               a.Title,
		AudioFilePath:       a.AudioFilePath,
		Transcription:       a.Transcription,
		TranscriptionStatus: a.TranscriptionStatus,
		DurationSeconds:     a.DurationSeconds,
		SampleRate:          a.SampleRate,
		Channels:            a.Channels,
		BitDepth:            a.BitDepth,
		FileSizeBytes:       a.FileSizeBytes,
		Metadata:            a.Metadata,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

// Create attaches an annotation to an existing page. New annotations
// always start in the pending transcription state.
func (s *voiceAnnotationService) Create(ctx context.Context, req *dto.CreateVoiceAnnotationRequest) (*dto.CreateVoiceAnnotationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page, err := uow.PageRepository().FindOne(ctx, specification.ByID{ID: req.PageId})
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, nil
	}

	annotation := entity.VoiceAnnotation{
		Id:                  uuid.New(),
		PageId:              req.PageId,
		Title:               req.Title,
		AudioFilePath:       req.AudioFilePath,
		TranscriptionStatus: entity.TranscriptionStatusPending,
		DurationSeconds:     req.DurationSeconds,
		SampleRate:          req.SampleRate,
		Channels:            req.Channels,
		BitDepth:            req.BitDepth,
		FileSizeBytes:       req.FileSizeBytes,
		Metadata:            req.Metadata,
		CreatedAt:           time.Now(),
	}

	if err := uow.VoiceAnnotationRepository().Create(ctx, &annotation); err != nil {
		return nil, err
	}

	return &dto.CreateVoiceAnnotationResponse{Id: annotation.Id}, nil
}

func (s *voiceAnnotationService) ListByPage(ctx context.Context, pageId uuid.UUID) ([]*dto.VoiceAnnotationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	annotations, err := uow.VoiceAnnotationRepository().FindAll(ctx,
		specification.ByPageID{PageID: pageId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.VoiceAnnotationResponse, len(annotations))
	for i, a := range annotations {
		result[i] = toVoiceAnnotationResponse(a)
	}
	return result, nil
}

func (s *voiceAnnotationService) Show(ctx context.Context, id uuid.UUID) (*dto.VoiceAnnotationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	annotation, err := uow.VoiceAnnotationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if annotation == nil {
		return nil, nil
	}

	return toVoiceAnnotationResponse(annotation), nil
}

func (s *voiceAnnotationService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	annotation, err := uow.VoiceAnnotationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return false, err
	}
	if annotation == nil {
		return false, nil
	}

	if err := uow.VoiceAnnotationRepository().Delete(ctx, id); err != nil {
		return false, err
	}

	return true, nil
}
