package freeze

import (
	"testing"
	"time"

	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateRequest(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	ownerId := uuid.New()
	otherId := uuid.New()

	activeMembership := func() *entity.Membership {
		return &entity.Membership{
			Id:        uuid.New(),
			UserId:    ownerId,
			Status:    entity.MembershipStatusActive,
			ExpiredAt: now.AddDate(0, 1, 0),
		}
	}

	futureEnd := now.AddDate(0, 0, 10)
	pastEnd := now.AddDate(0, 0, -1)

	tests := []struct {
		name        string
		membership  *entity.Membership
		requesterId uuid.UUID
		blockers    []*entity.FreezeRequest
		wantErr     bool
		wantMessage string
	}{
		{
			name:        "valid request",
			membership:  activeMembership(),
			requesterId: ownerId,
			wantErr:     false,
		},
		{
			name:        "requester does not own the membership",
			membership:  activeMembership(),
			requesterId: otherId,
			wantErr:     true,
			wantMessage: "membership does not belong to the requester",
		},
		{
			name: "membership is pending",
			membership: func() *entity.Membership {
				m := activeMembership()
				m.Status = entity.MembershipStatusPending
				return m
			}(),
			requesterId: ownerId,
			wantErr:     true,
			wantMessage: "only ACTIVE memberships can be frozen (current status: PENDING)",
		},
		{
			name: "membership already frozen",
			membership: func() *entity.Membership {
				m := activeMembership()
				m.Status = entity.MembershipStatusFreezed
				return m
			}(),
			requesterId: ownerId,
			wantErr:     true,
			wantMessage: "only ACTIVE memberships can be frozen (current status: FREEZED)",
		},
		{
			name: "membership expired",
			membership: func() *entity.Membership {
				m := activeMembership()
				m.ExpiredAt = now.AddDate(0, 0, -1)
				return m
			}(),
			requesterId: ownerId,
			wantErr:     true,
			wantMessage: "membership has already expired",
		},
		{
			name:        "pending request already exists",
			membership:  activeMembership(),
			requesterId: ownerId,
			blockers: []*entity.FreezeRequest{
				{Status: entity.FreezeStatusPendingApproval},
			},
			wantErr:     true,
			wantMessage: "a freeze request is already awaiting approval for this membership",
		},
		{
			name:        "approved freeze still running",
			membership:  activeMembership(),
			requesterId: ownerId,
			blockers: []*entity.FreezeRequest{
				{Status: entity.FreezeStatusApproved, FreezeEndDate: &futureEnd},
			},
			wantErr:     true,
			wantMessage: "an approved freeze is still running for this membership",
		},
		{
			name:        "approved freeze already elapsed",
			membership:  activeMembership(),
			requesterId: ownerId,
			blockers: []*entity.FreezeRequest{
				{Status: entity.FreezeStatusApproved, FreezeEndDate: &pastEnd},
			},
			wantErr: false,
		},
		{
			name:        "rejected and completed history does not block",
			membership:  activeMembership(),
			requesterId: ownerId,
			blockers: []*entity.FreezeRequest{
				{Status: entity.FreezeStatusRejected},
				{Status: entity.FreezeStatusCompleted, FreezeEndDate: &pastEnd},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(tt.membership, tt.requesterId, tt.blockers, now)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, apperror.IsKind(err, apperror.KindNotAllowed))
			assert.EqualError(t, err, tt.wantMessage)
		})
	}
}
