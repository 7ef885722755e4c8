package contract

import (
	"context"

	"notably-be/internal/entity"
	"notably-be/internal/repository/specification"

	"github.com/google/uuid"
)

type VoiceAnnotationRepository interface {
	Create(ctx context.Context, annotation *entity.VoiceAnnotation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VoiceAnnotation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VoiceAnnotation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
