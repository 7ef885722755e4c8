package implementation

import (
	"context"
	"errors"

	"notably-be/internal/entity"
	"notably-be/internal/mapper"
	"notably-be/internal/model"
	"notably-be/internal/repository/contract"
	"notably-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VoiceAnnotationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VoiceAnnotationMapper
}

func NewVoiceAnnotationRepository(db *gorm.DB) contract.VoiceAnnotationRepository {
	return &VoiceAnnotationRepositoryImpl{
		db:     db,
		mapper: mapper.NewVoiceAnnotationMapper(),
	}
}

func (r *VoiceAnnotationRepositoryImpl) Create(ctx context.Context, annotation *entity.VoiceAnnotation) error {
	m := r.mapper.ToModel(annotation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*annotation = *r.mapper.ToEntity(m)
	return nil
}

func (r *VoiceAnnotationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.VoiceAnnotation{}, id).Error
}

func (r *VoiceAnnotationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VoiceAnnotation, error) {
	var m model.VoiceAnnotation
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *VoiceAnnotationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VoiceAnnotation, error) {
	var models []*model.VoiceAnnotation
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *VoiceAnnotationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.VoiceAnnotation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
