package dto

import (
	"time"

	"github.com/google/uuid"
)

type DashboardStatsResponse struct {
	TotalMembers       int64   `json:"total_members"`
	ActiveMemberships  int64   `json:"active_memberships"`
	FrozenMemberships  int64   `json:"frozen_memberships"`
	PendingFreezes     int64   `json:"pending_freezes"`
	BookingsToday      int64   `json:"bookings_today"`
	CompletedRevenue   float64 `json:"completed_revenue"`
}

type AdminMemberResponse struct {
	Id          uuid.UUID            `json:"id"`
	Email       string               `json:"email"`
	FullName    string               `json:"full_name"`
	Role        string               `json:"role"`
	Status      string               `json:"status"`
	Memberships []MembershipResponse `json:"memberships,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

type AdminFreezeListResponse struct {
	Request FreezeRequestResponse `json:"request"`
	Member  UserDTO               `json:"member"`
}

type PaginationQuery struct {
	Page     int `query:"page" validate:"omitempty,gte=1"`
	PageSize int `query:"page_size" validate:"omitempty,gte=1,lte=100"`
}
