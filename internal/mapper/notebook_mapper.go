package mapper

import (
	"notably-be/internal/entity"
	"notably-be/internal/model"
)

type NotebookMapper struct{}

func NewNotebookMapper() *NotebookMapper {
	return &NotebookMapper{}
}

func (m *NotebookMapper) ToEntity(n *model.Notebook) *entity.Notebook {
	if n == nil {
		return nil
	}

	return &entity.Notebook{
		Id:          n.Id,
		Title:       n.Title,
		Description: n.Description,
		Color:       n.Color,
		Icon:        n.Icon,
		IsArchived:  n.IsArchived,
		IsPinned:    n.IsPinned,
		Metadata:    jsonToMetadata(n.Metadata),
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   updatedAtToPtr(n.UpdatedAt),
		DeletedAt:   deletedAtToPtr(n.DeletedAt),
		IsDeleted:   n.DeletedAt.Valid,
	}
}

func (m *NotebookMapper) ToModel(n *entity.Notebook) *model.Notebook {
	if n == nil {
		return nil
	}

	return &model.Notebook{
		Id:          n.Id,
		Title:       n.Title,
		Description: n.Description,
		Color:       n.Color,
		Icon:        n.Icon,
		IsArchived:  n.IsArchived,
		IsPinned:    n.IsPinned,
		Metadata:    metadataToJSON(n.Metadata),
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   ptrToUpdatedAt(n.UpdatedAt),
		DeletedAt:   ptrToDeletedAt(n.DeletedAt, n.IsDeleted),
	}
}

func (m *NotebookMapper) ToEntities(notebooks []*model.Notebook) []*entity.Notebook {
	entities := make([]*entity.Notebook, len(notebooks))
	for i, n := range notebooks {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
