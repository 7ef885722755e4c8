package service

import (
	"context"
	"strings"
	"time"

	"notably-be/internal/constant"
	"notably-be/internal/dto"
	"notably-be/internal/entity"
	"notably-be/internal/pkg/logger"
	"notably-be/internal/repository/specification"
	"notably-be/internal/repository/unitofwork"
	"notably-be/pkg/events"
	pktnats "notably-be/pkg/nats"

	"github.com/google/uuid"
)

type IPageService interface {
	List(ctx context.Context, query *dto.ListPagesQuery) (*dto.PageListResponse, error)
	Create(ctx context.Context, req *dto.CreatePageRequest) (*dto.CreatePageResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.PageResponse, error)
	Update(ctx context.Context, req *dto.UpdatePageRequest) (*dto.UpdatePageResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type pageService struct {
	uowFactory unitofwork.RepositoryFactory
	natsPub    *pktnats.Publisher
	logger     logger.ILogger
}

func NewPageService(
	uowFactory unitofwork.RepositoryFactory,
	natsPub *pktnats.Publisher,
	log logger.ILogger,
) IPageService {
	return &pageService{
		uowFactory: uowFactory,
		natsPub:    natsPub,
		logger:     log,
	}
}

func countWords(content string) int {
	return len(strings.Fields(content))
}

func toPageResponse(p *entity.Page) *dto.PageResponse {
	return &dto.PageResponse{
		Id:             p.Id,
		NotebookId:     p.NotebookId,
		SectionId:      p.SectionId,
		Title:          p.Title,
		Content:        p.Content,
		ContentType:    p.ContentType,
		Tags:           p.Tags,
		IsArchived:     p.IsArchived,
		IsPinned:       p.IsPinned,
		WordCount:      p.WordCount,
		LastAccessedAt: p.LastAccessedAt,
		AccessCount:    p.AccessCount,
		Metadata:       p.Metadata,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (s *pageService) publishEvent(ctx context.Context, eventType string, page *entity.Page) {
	if s.natsPub == nil {
		return
	}
	event := events.New(eventType, map[string]interface{}{
		"id":          page.Id.String(),
		"notebook_id": page.NotebookId.String(),
		"title":       page.Title,
	})
	if err := s.natsPub.Publish(ctx, event); err != nil {
		s.logger.Warn("Page", "Failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func (s *pageService) List(ctx context.Context, query *dto.ListPagesQuery) (*dto.PageListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx, specification.ByID{ID: query.NotebookId})
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, nil
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	perPage := query.PerPage
	if perPage < 1 {
		perPage = constant.DefaultPageSize
	}

	filters := []specification.Specification{
		specification.ByNotebookID{NotebookID: query.NotebookId},
	}
	if query.SectionId != nil {
		filters = append(filters, specification.BySectionID{SectionID: *query.SectionId})
	}
	if q := strings.TrimSpace(query.Query); q != "" {
		filters = append(filters, specification.TitleOrContentLike{Query: q})
	}

	total, err := uow.PageRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	specs := append(filters,
		specification.PinnedFirst{},
		specification.Pagination{Limit: perPage, Offset: (page - 1) * perPage},
	)
	pages, err := uow.PageRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PageListItem, len(pages))
	for i, p := range pages {
		items[i] = &dto.PageListItem{
			Id:        p.Id,
			SectionId: p.SectionId,
			Title:     p.Title,
			Tags:      p.Tags,
			IsPinned:  p.IsPinned,
			WordCount: p.WordCount,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		}
	}

	return &dto.PageListResponse{
		Items:   items,
		Page:    page,
		PerPage: perPage,
		Total:   int(total),
	}, nil
}

func (s *pageService) Create(ctx context.Context, req *dto.CreatePageRequest) (*dto.CreatePageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx, specification.ByID{ID: req.NotebookId})
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, nil
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "markdown"
	}

	page := entity.Page{
		Id:          uuid.New(),
		NotebookId:  req.NotebookId,
		SectionId:   req.SectionId,
		Title:       req.Title,
		Content:     req.Content,
		ContentType: contentType,
		Tags:        req.Tags,
		WordCount:   countWords(req.Content),
		Metadata:    req.Metadata,
		CreatedAt:   time.Now(),
	}

	if err := uow.PageRepository().Create(ctx, &page); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.TypePageCreated, &page)

	return &dto.CreatePageResponse{Id: page.Id}, nil
}

// Show returns the page and records the access: bumps the access counter
// and stamps last_accessed_at. The bump is best effort and never fails
// the read.
func (s *pageService) Show(ctx context.Context, id uuid.UUID) (*dto.PageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page, err := uow.PageRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, nil
	}

	now := time.Now()
	page.AccessCount++
	page.LastAccessedAt = &now
	if err := uow.PageRepository().Update(ctx, page); err != nil {
		s.logger.Warn("Page", "Failed to record page access", map[string]interface{}{
			"page_id": id.String(),
			"error":   err.Error(),
		})
	}

	return toPageResponse(page), nil
}

func (s *pageService) Update(ctx context.Context, req *dto.UpdatePageRequest) (*dto.UpdatePageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page, err := uow.PageRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, nil
	}

	now := time.Now()
	page.SectionId = req.SectionId
	page.Title = req.Title
	page.Content = req.Content
	page.WordCount = countWords(req.Content)
	if req.ContentType != "" {
		page.ContentType = req.ContentType
	}
	if req.Tags != nil {
		page.Tags = req.Tags
	}
	if req.IsArchived != nil {
		page.IsArchived = *req.IsArchived
	}
	if req.IsPinned != nil {
		page.IsPinned = *req.IsPinned
	}
	if req.Metadata != nil {
		page.Metadata = req.Metadata
	}
	page.UpdatedAt = &now

	if err := uow.PageRepository().Update(ctx, page); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.TypePageUpdated, page)

	return &dto.UpdatePageResponse{Id: page.Id}, nil
}

func (s *pageService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page, err := uow.PageRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return false, err
	}
	if page == nil {
		return false, nil
	}

	if err := uow.PageRepository().Delete(ctx, id); err != nil {
		return false, err
	}

	s.publishEvent(ctx, events.TypePageDeleted, page)

	return true, nil
}
