package contract

import (
	"context"

	"notably-be/internal/entity"
	"notably-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SectionRepository interface {
	Create(ctx context.Context, section *entity.Section) error
	Update(ctx context.Context, section *entity.Section) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByNotebookId(ctx context.Context, notebookId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Section, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Section, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
