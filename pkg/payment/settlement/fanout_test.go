package settlement

import (
	"testing"

	"github.com/martinsuhendra/manta-sub002/internal/entity"
)

func TestMembershipTarget(t *testing.T) {
	allMembershipStatuses := []entity.MembershipStatus{
		entity.MembershipStatusPending,
		entity.MembershipStatusActive,
		entity.MembershipStatusFreezed,
		entity.MembershipStatusExpired,
		entity.MembershipStatusSuspended,
	}

	tests := []struct {
		name        string
		newStatus   entity.TransactionStatus
		current     entity.MembershipStatus
		wantTarget  entity.MembershipStatus
		wantApplied bool
	}{
		{"completed activates pending", entity.TransactionStatusCompleted, entity.MembershipStatusPending, entity.MembershipStatusActive, true},
		{"completed reactivates suspended", entity.TransactionStatusCompleted, entity.MembershipStatusSuspended, entity.MembershipStatusActive, true},
		{"completed leaves active alone", entity.TransactionStatusCompleted, entity.MembershipStatusActive, entity.MembershipStatusActive, false},
		{"completed leaves frozen alone", entity.TransactionStatusCompleted, entity.MembershipStatusFreezed, entity.MembershipStatusFreezed, false},

		{"failed suspends pending", entity.TransactionStatusFailed, entity.MembershipStatusPending, entity.MembershipStatusSuspended, true},
		{"failed suspends active", entity.TransactionStatusFailed, entity.MembershipStatusActive, entity.MembershipStatusSuspended, true},
		{"failed leaves frozen alone", entity.TransactionStatusFailed, entity.MembershipStatusFreezed, entity.MembershipStatusFreezed, false},
		{"cancelled suspends pending", entity.TransactionStatusCancelled, entity.MembershipStatusPending, entity.MembershipStatusSuspended, true},
		{"expired suspends active", entity.TransactionStatusExpired, entity.MembershipStatusActive, entity.MembershipStatusSuspended, true},

		{"refunded suspends frozen", entity.TransactionStatusRefunded, entity.MembershipStatusFreezed, entity.MembershipStatusSuspended, true},
		{"refunded suspends expired", entity.TransactionStatusRefunded, entity.MembershipStatusExpired, entity.MembershipStatusSuspended, true},
		{"refunded leaves suspended alone", entity.TransactionStatusRefunded, entity.MembershipStatusSuspended, entity.MembershipStatusSuspended, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, applied := MembershipTarget(tt.newStatus, tt.current)
			if target != tt.wantTarget || applied != tt.wantApplied {
				t.Errorf("MembershipTarget(%s, %s) = (%s, %v), want (%s, %v)",
					tt.newStatus, tt.current, target, applied, tt.wantTarget, tt.wantApplied)
			}
		})
	}

	t.Run("processing never touches a membership", func(t *testing.T) {
		for _, current := range allMembershipStatuses {
			target, applied := MembershipTarget(entity.TransactionStatusProcessing, current)
			if applied || target != current {
				t.Errorf("MembershipTarget(PROCESSING, %s) = (%s, %v), want (%s, false)",
					current, target, applied, current)
			}
		}
	})

	t.Run("pending never touches a membership", func(t *testing.T) {
		for _, current := range allMembershipStatuses {
			target, applied := MembershipTarget(entity.TransactionStatusPending, current)
			if applied || target != current {
				t.Errorf("MembershipTarget(PENDING, %s) = (%s, %v), want (%s, false)",
					current, target, applied, current)
			}
		}
	})
}
