package midtrans

import (
	"testing"
	"time"

	"github.com/martinsuhendra/manta-sub002/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestMapStatus(t *testing.T) {
	tests := []struct {
		transactionStatus string
		fraudStatus       string
		want              entity.TransactionStatus
		wantActionable    bool
	}{
		{"capture", "accept", entity.TransactionStatusCompleted, true},
		{"capture", "", entity.TransactionStatusCompleted, true},
		{"capture", "challenge", entity.TransactionStatusProcessing, true},
		{"settlement", "", entity.TransactionStatusCompleted, true},
		{"pending", "", entity.TransactionStatusProcessing, true},
		{"deny", "", entity.TransactionStatusFailed, true},
		{"cancel", "", entity.TransactionStatusCancelled, true},
		{"expire", "", entity.TransactionStatusExpired, true},
		{"refund", "", entity.TransactionStatusRefunded, true},
		{"partial_refund", "", entity.TransactionStatusRefunded, true},
		{"authorize", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		got, actionable := MapStatus(tt.transactionStatus, tt.fraudStatus)
		if got != tt.want || actionable != tt.wantActionable {
			t.Errorf("MapStatus(%q, %q) = (%s, %v), want (%s, %v)",
				tt.transactionStatus, tt.fraudStatus, got, actionable, tt.want, tt.wantActionable)
		}
	}
}

func TestCachedToken(t *testing.T) {
	now := time.Date(2025, time.May, 10, 9, 0, 0, 0, time.UTC)
	ttl := time.Hour

	t.Run("fresh token is reused", func(t *testing.T) {
		metadata := map[string]interface{}{
			MetaSnapToken:         "tok-123",
			MetaSnapTokenIssuedAt: now.Add(-30 * time.Minute).Format(time.RFC3339),
			MetaSnapRedirectURL:   "https://app.sandbox.midtrans.com/snap/v4/redirection/tok-123",
		}

		got := CachedToken(metadata, now, ttl)
		assert.NotNil(t, got)
		assert.Equal(t, "tok-123", got.Token)
		assert.Equal(t, "https://app.sandbox.midtrans.com/snap/v4/redirection/tok-123", got.RedirectURL)
		assert.True(t, got.Reused)
	})

	t.Run("stale token is not reused", func(t *testing.T) {
		metadata := map[string]interface{}{
			MetaSnapToken:         "tok-123",
			MetaSnapTokenIssuedAt: now.Add(-ttl).Format(time.RFC3339),
		}
		assert.Nil(t, CachedToken(metadata, now, ttl))
	})

	t.Run("missing token", func(t *testing.T) {
		assert.Nil(t, CachedToken(map[string]interface{}{}, now, ttl))
		assert.Nil(t, CachedToken(nil, now, ttl))
	})

	t.Run("unparseable issued-at", func(t *testing.T) {
		metadata := map[string]interface{}{
			MetaSnapToken:         "tok-123",
			MetaSnapTokenIssuedAt: "yesterday",
		}
		assert.Nil(t, CachedToken(metadata, now, ttl))
	})
}

func TestStoreToken(t *testing.T) {
	issuedAt := time.Date(2025, time.May, 10, 9, 0, 0, 0, time.UTC)

	t.Run("nil metadata is allocated", func(t *testing.T) {
		got := StoreToken(nil, "tok-456", "https://redirect", issuedAt)
		assert.Equal(t, "tok-456", got[MetaSnapToken])
		assert.Equal(t, "2025-05-10T09:00:00Z", got[MetaSnapTokenIssuedAt])
		assert.Equal(t, "https://redirect", got[MetaSnapRedirectURL])
	})

	t.Run("other keys survive", func(t *testing.T) {
		metadata := map[string]interface{}{
			"channel":     "webhook",
			MetaSnapToken: "old-token",
		}
		got := StoreToken(metadata, "tok-789", "https://redirect", issuedAt)
		assert.Equal(t, "webhook", got["channel"])
		assert.Equal(t, "tok-789", got[MetaSnapToken])
	})

	t.Run("round trip through cache", func(t *testing.T) {
		metadata := StoreToken(nil, "tok-rt", "https://redirect", issuedAt)
		cached := CachedToken(metadata, issuedAt.Add(10*time.Minute), time.Hour)
		assert.NotNil(t, cached)
		assert.Equal(t, "tok-rt", cached.Token)
	})
}
