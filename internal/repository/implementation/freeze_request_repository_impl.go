package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/mapper"
	"github.com/martinsuhendra/manta-sub002/internal/model"
	"github.com/martinsuhendra/manta-sub002/internal/repository/contract"
	"github.com/martinsuhendra/manta-sub002/internal/repository/specification"
)

type FreezeRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FreezeMapper
}

func NewFreezeRequestRepository(db *gorm.DB) contract.FreezeRequestRepository {
	return &FreezeRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewFreezeMapper(),
	}
}

func (r *FreezeRequestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FreezeRequestRepositoryImpl) Create(ctx context.Context, request *entity.FreezeRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *FreezeRequestRepositoryImpl) Update(ctx context.Context, request *entity.FreezeRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *FreezeRequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FreezeRequest, error) {
	var m model.FreezeRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FreezeRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FreezeRequest, error) {
	var models []*model.FreezeRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.FreezeRequest, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *FreezeRequestRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.FreezeRequest{}), specs...)
	err := query.Count(&count).Error
	return count, err
}
