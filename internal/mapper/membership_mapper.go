package mapper

import (
	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/model"
)

type MembershipMapper struct{}

func NewMembershipMapper() *MembershipMapper {
	return &MembershipMapper{}
}

func (m *MembershipMapper) ToEntity(ms *model.Membership) *entity.Membership {
	if ms == nil {
		return nil
	}
	return &entity.Membership{
		Id:             ms.Id,
		UserId:         ms.UserId,
		ProductId:      ms.ProductId,
		TransactionId:  ms.TransactionId,
		Status:         entity.MembershipStatus(ms.Status),
		JoinDate:       ms.JoinDate,
		ExpiredAt:      ms.ExpiredAt,
		RemainingQuota: ms.RemainingQuota,
		CreatedAt:      ms.CreatedAt,
		UpdatedAt:      ms.UpdatedAt,
	}
}

func (m *MembershipMapper) ToModel(ms *entity.Membership) *model.Membership {
	if ms == nil {
		return nil
	}
	return &model.Membership{
		Id:             ms.Id,
		UserId:         ms.UserId,
		ProductId:      ms.ProductId,
		TransactionId:  ms.TransactionId,
		Status:         string(ms.Status),
		JoinDate:       ms.JoinDate,
		ExpiredAt:      ms.ExpiredAt,
		RemainingQuota: ms.RemainingQuota,
		CreatedAt:      ms.CreatedAt,
		UpdatedAt:      ms.UpdatedAt,
	}
}

func (m *MembershipMapper) UsageToEntity(u *model.MembershipQuotaUsage) *entity.MembershipQuotaUsage {
	if u == nil {
		return nil
	}
	return &entity.MembershipQuotaUsage{
		Id:            u.Id,
		MembershipId:  u.MembershipId,
		ProductItemId: u.ProductItemId,
		QuotaPoolId:   u.QuotaPoolId,
		UsedCount:     u.UsedCount,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (m *MembershipMapper) UsageToModel(u *entity.MembershipQuotaUsage) *model.MembershipQuotaUsage {
	if u == nil {
		return nil
	}
	return &model.MembershipQuotaUsage{
		Id:            u.Id,
		MembershipId:  u.MembershipId,
		ProductItemId: u.ProductItemId,
		QuotaPoolId:   u.QuotaPoolId,
		UsedCount:     u.UsedCount,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
