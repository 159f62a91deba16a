package mapper

import (
	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/model"
)

type FreezeMapper struct{}

func NewFreezeMapper() *FreezeMapper {
	return &FreezeMapper{}
}

func (m *FreezeMapper) ToEntity(fr *model.FreezeRequest) *entity.FreezeRequest {
	if fr == nil {
		return nil
	}
	return &entity.FreezeRequest{
		Id:              fr.Id,
		MembershipId:    fr.MembershipId,
		RequestedBy:     fr.RequestedBy,
		ApprovedBy:      fr.ApprovedBy,
		Reason:          entity.FreezeReason(fr.Reason),
		Details:         fr.Details,
		Status:          entity.FreezeStatus(fr.Status),
		RejectionReason: fr.RejectionReason,
		FreezeStartDate: fr.FreezeStartDate,
		FreezeEndDate:   fr.FreezeEndDate,
		TotalFrozenDays: fr.TotalFrozenDays,
		CreatedAt:       fr.CreatedAt,
		UpdatedAt:       fr.UpdatedAt,
	}
}

func (m *FreezeMapper) ToModel(fr *entity.FreezeRequest) *model.FreezeRequest {
	if fr == nil {
		return nil
	}
	return &model.FreezeRequest{
		Id:              fr.Id,
		MembershipId:    fr.MembershipId,
		RequestedBy:     fr.RequestedBy,
		ApprovedBy:      fr.ApprovedBy,
		Reason:          string(fr.Reason),
		Details:         fr.Details,
		Status:          string(fr.Status),
		RejectionReason: fr.RejectionReason,
		FreezeStartDate: fr.FreezeStartDate,
		FreezeEndDate:   fr.FreezeEndDate,
		TotalFrozenDays: fr.TotalFrozenDays,
		CreatedAt:       fr.CreatedAt,
		UpdatedAt:       fr.UpdatedAt,
	}
}
