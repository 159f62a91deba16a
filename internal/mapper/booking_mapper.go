package mapper

import (
	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/model"
)

type BookingMapper struct{}

func NewBookingMapper() *BookingMapper {
	return &BookingMapper{}
}

func (m *BookingMapper) ToEntity(b *model.Booking) *entity.Booking {
	if b == nil {
		return nil
	}
	return &entity.Booking{
		Id:             b.Id,
		UserId:         b.UserId,
		MembershipId:   b.MembershipId,
		ClassSessionId: b.ClassSessionId,
		Status:         entity.BookingStatus(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (m *BookingMapper) ToModel(b *entity.Booking) *model.Booking {
	if b == nil {
		return nil
	}
	return &model.Booking{
		Id:             b.Id,
		UserId:         b.UserId,
		MembershipId:   b.MembershipId,
		ClassSessionId: b.ClassSessionId,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (m *BookingMapper) ClassItemToEntity(c *model.ClassItem) *entity.ClassItem {
	if c == nil {
		return nil
	}
	return &entity.ClassItem{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *BookingMapper) ClassItemToModel(c *entity.ClassItem) *model.ClassItem {
	if c == nil {
		return nil
	}
	return &model.ClassItem{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *BookingMapper) SessionToEntity(s *model.ClassSession) *entity.ClassSession {
	if s == nil {
		return nil
	}
	return &entity.ClassSession{
		Id:          s.Id,
		ClassItemId: s.ClassItemId,
		TeacherId:   s.TeacherId,
		StartsAt:    s.StartsAt,
		EndsAt:      s.EndsAt,
		Capacity:    s.Capacity,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (m *BookingMapper) SessionToModel(s *entity.ClassSession) *model.ClassSession {
	if s == nil {
		return nil
	}
	return &model.ClassSession{
		Id:          s.Id,
		ClassItemId: s.ClassItemId,
		TeacherId:   s.TeacherId,
		StartsAt:    s.StartsAt,
		EndsAt:      s.EndsAt,
		Capacity:    s.Capacity,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
