package mapper

import (
	"notably-be/internal/entity"
	"notably-be/internal/model"
)

type SectionMapper struct{}

func NewSectionMapper() *SectionMapper {
	return &SectionMapper{}
}

func (m *SectionMapper) ToEntity(s *model.Section) *entity.Section {
	if s == nil {
		return nil
	}

	return &entity.Section{
		Id:          s.Id,
		NotebookId:  s.NotebookId,
		Title:       s.Title,
		Description: s.Description,
		Color:       s.Color,
		Icon:        s.Icon,
		Position:    s.Position,
		IsCollapsed: s.IsCollapsed,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   updatedAtToPtr(s.UpdatedAt),
		DeletedAt:   deletedAtToPtr(s.DeletedAt),
		IsDeleted:   s.DeletedAt.Valid,
	}
}

func (m *SectionMapper) ToModel(s *entity.Section) *model.Section {
	if s == nil {
		return nil
	}

	return &model.Section{
		Id:          s.Id,
		NotebookId:  s.NotebookId,
		Title:       s.Title,
		Description: s.Description,
		Color:       s.Color,
		Icon:        s.Icon,
		Position:    s.Position,
		IsCollapsed: s.IsCollapsed,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   ptrToUpdatedAt(s.UpdatedAt),
		DeletedAt:   ptrToDeletedAt(s.DeletedAt, s.IsDeleted),
	}
}

func (m *SectionMapper) ToEntities(sections []*model.Section) []*entity.Section {
	entities := make([]*entity.Section, len(sections))
	for i, s := range sections {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
