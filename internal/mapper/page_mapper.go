package mapper

import (
	"notably-be/internal/entity"
	"notably-be/internal/model"
)

type PageMapper struct{}

func NewPageMapper() *PageMapper {
	return &PageMapper{}
}

func (m *PageMapper) ToEntity(p *model.Page) *entity.Page {
	if p == nil {
		return nil
	}

	return &entity.Page{
		Id:             p.Id,
		NotebookId:     p.NotebookId,
		SectionId:      p.SectionId,
		Title:          p.Title,
		Content:        p.Content,
		ContentType:    p.ContentType,
		Tags:           jsonToTags(p.Tags),
		IsArchived:     p.IsArchived,
		IsPinned:       p.IsPinned,
		WordCount:      p.WordCount,
		LastAccessedAt: p.LastAccessedAt,
		AccessCount:    p.AccessCount,
		Metadata:       jsonToMetadata(p.Metadata),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      updatedAtToPtr(p.UpdatedAt),
		DeletedAt:      deletedAtToPtr(p.DeletedAt),
		IsDeleted:      p.DeletedAt.Valid,
	}
}

func (m *PageMapper) ToModel(p *entity.Page) *model.Page {
	if p == nil {
		return nil
	}

	return &model.Page{
		Id:             p.Id,
		NotebookId:     p.NotebookId,
		SectionId:      p.SectionId,
		Title:          p.Title,
		Content:        p.Content,
		ContentType:    p.ContentType,
		Tags:           tagsToJSON(p.Tags),
		IsArchived:     p.IsArchived,
		IsPinned:       p.IsPinned,
		WordCount:      p.WordCount,
		LastAccessedAt: p.LastAccessedAt,
		AccessCount:    p.AccessCount,
		Metadata:       metadataToJSON(p.Metadata),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      ptrToUpdatedAt(p.UpdatedAt),
		DeletedAt:      ptrToDeletedAt(p.DeletedAt, p.IsDeleted),
	}
}

func (m *PageMapper) ToEntities(pages []*model.Page) []*entity.Page {
	entities := make([]*entity.Page, len(pages))
	for i, p := range pages {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
