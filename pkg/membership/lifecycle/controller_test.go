package lifecycle

import (
	"testing"
	"time"

	"github.com/martinsuhendra/manta-sub002/internal/entity"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from entity.MembershipStatus
		to   entity.MembershipStatus
		want bool
	}{
		// Into ACTIVE
		{entity.MembershipStatusPending, entity.MembershipStatusActive, true},
		{entity.MembershipStatusSuspended, entity.MembershipStatusActive, true},
		{entity.MembershipStatusFreezed, entity.MembershipStatusActive, true},
		{entity.MembershipStatusExpired, entity.MembershipStatusActive, false},

		// Into FREEZED
		{entity.MembershipStatusActive, entity.MembershipStatusFreezed, true},
		{entity.MembershipStatusPending, entity.MembershipStatusFreezed, false},
		{entity.MembershipStatusSuspended, entity.MembershipStatusFreezed, false},
		{entity.MembershipStatusExpired, entity.MembershipStatusFreezed, false},

		// Into SUSPENDED
		{entity.MembershipStatusPending, entity.MembershipStatusSuspended, true},
		{entity.MembershipStatusActive, entity.MembershipStatusSuspended, true},
		{entity.MembershipStatusFreezed, entity.MembershipStatusSuspended, true},
		{entity.MembershipStatusExpired, entity.MembershipStatusSuspended, true},

		// Nothing transitions into PENDING or EXPIRED
		{entity.MembershipStatusActive, entity.MembershipStatusPending, false},
		{entity.MembershipStatusActive, entity.MembershipStatusExpired, false},
	}

	for _, tt := range tests {
		got := CanTransition(tt.from, tt.to)
		if got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2025, time.July, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		status    entity.MembershipStatus
		expiredAt time.Time
		want      entity.MembershipStatus
	}{
		{"active and unexpired", entity.MembershipStatusActive, now.AddDate(0, 0, 1), entity.MembershipStatusActive},
		{"active past expiry reads expired", entity.MembershipStatusActive, now.AddDate(0, 0, -1), entity.MembershipStatusExpired},
		{"active expiring right now reads expired", entity.MembershipStatusActive, now, entity.MembershipStatusExpired},
		{"frozen membership is not derived expired", entity.MembershipStatusFreezed, now.AddDate(0, 0, -1), entity.MembershipStatusFreezed},
		{"suspended stays suspended", entity.MembershipStatusSuspended, now.AddDate(0, 0, -1), entity.MembershipStatusSuspended},
		{"pending stays pending", entity.MembershipStatusPending, now.AddDate(0, 0, 1), entity.MembershipStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &entity.Membership{Status: tt.status, ExpiredAt: tt.expiredAt}
			got := EffectiveStatus(m, now)
			if got != tt.want {
				t.Errorf("EffectiveStatus(%s, expiredAt %v) = %s, want %s", tt.status, tt.expiredAt, got, tt.want)
			}
		})
	}
}
