package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/mapper"
	"github.com/martinsuhendra/manta-sub002/internal/model"
	"github.com/martinsuhendra/manta-sub002/internal/repository/contract"
	"github.com/martinsuhendra/manta-sub002/internal/repository/specification"
)

type QuotaUsageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MembershipMapper
}

func NewQuotaUsageRepository(db *gorm.DB) contract.QuotaUsageRepository {
	return &QuotaUsageRepositoryImpl{
		db:     db,
		mapper: mapper.NewMembershipMapper(),
	}
}

func (r *QuotaUsageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *QuotaUsageRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MembershipQuotaUsage, error) {
	var m model.MembershipQuotaUsage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.UsageToEntity(&m), nil
}

func (r *QuotaUsageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MembershipQuotaUsage, error) {
	var models []*model.MembershipQuotaUsage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.MembershipQuotaUsage, len(models))
	for i, m := range models {
		entities[i] = r.mapper.UsageToEntity(m)
	}
	return entities, nil
}

func (r *QuotaUsageRepositoryImpl) IncrementItemUsage(ctx context.Context, membershipId, productItemId uuid.UUID) error {
	return r.increment(ctx, "product_item_id", membershipId, productItemId,
		&model.MembershipQuotaUsage{
			Id:            uuid.New(),
			MembershipId:  membershipId,
			ProductItemId: &productItemId,
			UsedCount:     1,
		})
}

func (r *QuotaUsageRepositoryImpl) IncrementPoolUsage(ctx context.Context, membershipId, quotaPoolId uuid.UUID) error {
	return r.increment(ctx, "quota_pool_id", membershipId, quotaPoolId,
		&model.MembershipQuotaUsage{
			Id:           uuid.New(),
			MembershipId: membershipId,
			QuotaPoolId:  &quotaPoolId,
			UsedCount:    1,
		})
}

func (r *QuotaUsageRepositoryImpl) increment(ctx context.Context, refColumn string, membershipId, refId uuid.UUID, fresh *model.MembershipQuotaUsage) error {
	res := r.db.WithContext(ctx).
		Model(&model.MembershipQuotaUsage{}).
		Where("membership_id = ? AND "+refColumn+" = ?", membershipId, refId).
		Update("used_count", gorm.Expr("used_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	// First consumption for this counter; the caller's transaction plus the
	// unique index keep concurrent inserts from duplicating rows.
	return r.db.WithContext(ctx).Create(fresh).Error
}

func (r *QuotaUsageRepositoryImpl) DecrementItemUsage(ctx context.Context, membershipId, productItemId uuid.UUID) error {
	return r.decrement(ctx, "product_item_id", membershipId, productItemId)
}

func (r *QuotaUsageRepositoryImpl) DecrementPoolUsage(ctx context.Context, membershipId, quotaPoolId uuid.UUID) error {
	return r.decrement(ctx, "quota_pool_id", membershipId, quotaPoolId)
}

func (r *QuotaUsageRepositoryImpl) decrement(ctx context.Context, refColumn string, membershipId, refId uuid.UUID) error {
	// used_count > 0 in the WHERE clamps the decrement at the database, so a
	// release can never underflow even under concurrent cancellations.
	return r.db.WithContext(ctx).
		Model(&model.MembershipQuotaUsage{}).
		Where("membership_id = ? AND "+refColumn+" = ? AND used_count > 0", membershipId, refId).
		Update("used_count", gorm.Expr("used_count - 1")).Error
}
