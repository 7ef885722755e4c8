package service

import (
	"context"
	"time"

	"notably-be/internal/dto"
	"notably-be/internal/entity"
	"notably-be/internal/pkg/logger"
	"notably-be/internal/repository/specification"
	"notably-be/internal/repository/unitofwork"
	"notably-be/pkg/events"
	pktnats "notably-be/pkg/nats"

	"github.com/google/uuid"
)

type INotebookService interface {
	GetAll(ctx context.Context, archived *bool) ([]*dto.NotebookResponse, error)
	Create(ctx context.Context, req *dto.CreateNotebookRequest) (*dto.CreateNotebookResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.NotebookResponse, error)
	Update(ctx context.Context, req *dto.UpdateNotebookRequest) (*dto.UpdateNotebookResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ListSections(ctx context.Context, notebookId uuid.UUID) ([]*dto.SectionResponse, error)
	CreateSection(ctx context.Context, req *dto.CreateSectionRequest) (*dto.CreateSectionResponse, error)
}

type notebookService struct {
	uowFactory unitofwork.RepositoryFactory
	natsPub    *pktnats.Publisher
	logger     logger.ILogger
}

func NewNotebookService(
	uowFactory unitofwork.RepositoryFactory,
	natsPub *pktnats.Publisher,
	log logger.ILogger,
) INotebookService {
	return &notebookService{
		uowFactory: uowFactory,
		natsPub:    natsPub,
		logger:     log,
	}
}

func toNotebookResponse(n *entity.Notebook) *dto.NotebookResponse {
	return &dto.NotebookResponse{
		Id:          n.Id,
		Title:       n.Title,
		Description: n.Description,
		Color:       n.Color,
		Icon:        n.Icon,
		IsArchived:  n.IsArchived,
		IsPinned:    n.IsPinned,
		Metadata:    n.Metadata,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func (s *notebookService) publishEvent(ctx context.Context, eventType string, notebook *entity.Notebook) {
	if s.natsPub == nil {
		return
	}
	event := events.New(eventType, map[string]interface{}{
		"id":    notebook.Id.String(),
		"title": notebook.Title,
	})
	if err := s.natsPub.Publish(ctx, event); err != nil {
		s.logger.Warn("Notebook", "Failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func (s *notebookService) GetAll(ctx context.Context, archived *bool) ([]*dto.NotebookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.PinnedFirst{}}
	if archived != nil {
		specs = append(specs, specification.Archived{Value: *archived})
	}

	notebooks, err := uow.NotebookRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NotebookResponse, len(notebooks))
	for i, n := range notebooks {
		result[i] = toNotebookResponse(n)
	}
	return result, nil
}

func (s *notebookService) Create(ctx context.Context, req *dto.CreateNotebookRequest) (*dto.CreateNotebookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebook := entity.Notebook{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
		Metadata:    req.Metadata,
		CreatedAt:   time.Now(),
	}

	if err := uow.NotebookRepository().Create(ctx, &notebook); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.TypeNotebookCreated, &notebook)

	return &dto.CreateNotebookResponse{Id: notebook.Id}, nil
}

func (s *notebookService) Show(ctx context.Context, id uuid.UUID) (*dto.NotebookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, nil
	}

	return toNotebookResponse(notebook), nil
}

func (s *notebookService) Update(ctx context.Context, req *dto.UpdateNotebookRequest) (*dto.UpdateNotebookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, nil
	}

	now := time.Now()
	notebook.Title = req.Title
	notebook.Description = req.Description
	notebook.Color = req.Color
	notebook.Icon = req.Icon
	if req.IsArchived != nil {
		notebook.IsArchived = *req.IsArchived
	}
	if req.IsPinned != nil {
		notebook.IsPinned = *req.IsPinned
	}
	if req.Metadata != nil {
		notebook.Metadata = req.Metadata
	}
	notebook.UpdatedAt = &now

	if err := uow.NotebookRepository().Update(ctx, notebook); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.TypeNotebookUpdated, notebook)

	return &dto.UpdateNotebookResponse{Id: notebook.Id}, nil
}

// Delete soft-deletes the notebook and everything under it in one
// transaction. Returns false when the notebook does not exist.
func (s *notebookService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return false, err
	}
	if notebook == nil {
		return false, nil
	}

	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer uow.Rollback()

	if err := uow.NotebookRepository().Delete(ctx, id); err != nil {
		return false, err
	}
	if err := uow.SectionRepository().DeleteByNotebookId(ctx, id); err != nil {
		return false, err
	}
	if err := uow.PageRepository().DeleteByNotebookId(ctx, id); err != nil {
		return false, err
	}

	if err := uow.Commit(); err != nil {
		return false, err
	}

	s.publishEvent(ctx, events.TypeNotebookDeleted, notebook)

	return true, nil
}

func (s *notebookService) ListSections(ctx context.Context, notebookId uuid.UUID) ([]*dto.SectionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sections, err := uow.SectionRepository().FindAll(ctx,
		specification.ByNotebookID{NotebookID: notebookId},
		specification.OrderBy{Field: "position"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SectionResponse, len(sections))
	for i, sec := range sections {
		result[i] = &dto.SectionResponse{
			Id:          sec.Id,
			NotebookId:  sec.NotebookId,
			Title:       sec.Title,
			Description: sec.Description,
			Color:       sec.Color,
			Icon:        sec.Icon,
			Position:    sec.Position,
			IsCollapsed: sec.IsCollapsed,
			CreatedAt:   sec.CreatedAt,
			UpdatedAt:   sec.UpdatedAt,
		}
	}
	return result, nil
}

func (s *notebookService) CreateSection(ctx context.Context, req *dto.CreateSectionRequest) (*dto.CreateSectionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx, specification.ByID{ID: req.NotebookId})
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, nil
	}

	section := entity.Section{
		Id:          uuid.New(),
		NotebookId:  req.NotebookId,
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
		Position:    req.Position,
		CreatedAt:   time.Now(),
	}

	if err := uow.SectionRepository().Create(ctx, &section); err != nil {
		return nil, err
	}

	return &dto.CreateSectionResponse{Id: section.Id}, nil
}
