package midtrans

import (
	"fmt"
	"time"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"

	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/apperror"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/logger"
)

// Metadata keys for the snap token cached on a transaction. Refreshing a
// token overwrites only these keys and leaves other metadata intact.
const (
	MetaSnapToken         = "snap_token"
	MetaSnapTokenIssuedAt = "snap_token_issued_at"
	MetaSnapRedirectURL   = "snap_redirect_url"
)

type Config struct {
	ServerKey    string
	ClientKey    string
	IsProduction bool
	// SnapTokenTTL bounds how long a cached snap token is reused before a
	// fresh one is requested.
	SnapTokenTTL time.Duration
	// FinishURL is where Midtrans redirects the customer after payment.
	FinishURL string
}

// Gateway wraps the Midtrans snap and core API clients. Snap issues payment
// tokens; the core API cross-checks webhook claims against Midtrans itself.
type Gateway struct {
	cfg    Config
	snap   snap.Client
	core   coreapi.Client
	logger logger.ILogger
}

func NewGateway(cfg Config, logger logger.ILogger) *Gateway {
	env := midtrans.Sandbox
	if cfg.IsProduction {
		env = midtrans.Production
	}

	g := &Gateway{cfg: cfg, logger: logger}
	g.snap.New(cfg.ServerKey, env)
	g.core.New(cfg.ServerKey, env)
	return g
}

// VerifySignature checks the authenticity digest Midtrans attaches to
// webhook notifications. Fails closed.
func (g *Gateway) VerifySignature(orderId, statusCode, grossAmount, signatureKey string) error {
	if !ValidSignature(orderId, statusCode, grossAmount, g.cfg.ServerKey, signatureKey) {
		g.logger.Warn("PAYMENT", "Webhook signature mismatch", map[string]interface{}{
			"orderId": orderId,
		})
		return apperror.InvalidSignature("webhook signature does not match")
	}
	return nil
}

// VerifyStatus asks Midtrans directly for the transaction's status and
// compares it with what the webhook claims. A forged webhook with a stolen
// signature still fails here.
func (g *Gateway) VerifyStatus(orderId, claimedStatus string) error {
	resp, err := g.core.CheckTransaction(orderId)
	if err != nil {
		return apperror.ProviderMismatch(fmt.Sprintf("status verification unavailable: %v", err.GetMessage()))
	}
	if resp == nil || resp.TransactionStatus != claimedStatus {
		got := ""
		if resp != nil {
			got = resp.TransactionStatus
		}
		g.logger.Warn("PAYMENT", "Webhook status disagrees with provider", map[string]interface{}{
			"orderId":  orderId,
			"claimed":  claimedStatus,
			"provider": got,
		})
		return apperror.ProviderMismatch(fmt.Sprintf(
			"provider reports status %q, webhook claims %q", got, claimedStatus))
	}
	return nil
}

// MapStatus translates a Midtrans transaction_status (with its fraud_status
// qualifier) into the internal settlement status. The second return is false
// for notification statuses that require no settlement.
func MapStatus(transactionStatus, fraudStatus string) (entity.TransactionStatus, bool) {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "challenge" {
			return entity.TransactionStatusProcessing, true
		}
		return entity.TransactionStatusCompleted, true
	case "settlement":
		return entity.TransactionStatusCompleted, true
	case "pending":
		return entity.TransactionStatusProcessing, true
	case "deny":
		return entity.TransactionStatusFailed, true
	case "cancel":
		return entity.TransactionStatusCancelled, true
	case "expire":
		return entity.TransactionStatusExpired, true
	case "refund", "partial_refund":
		return entity.TransactionStatusRefunded, true
	}
	return "", false
}

// SnapToken is an issued (or reused) payment token.
type SnapToken struct {
	Token       string
	RedirectURL string
	Reused      bool
}

// CachedToken returns the snap token stored in transaction metadata when it
// was issued less than ttl ago, nil otherwise. IssuedAt survives a JSONB
// round trip as an RFC3339 string.
func CachedToken(metadata map[string]interface{}, now time.Time, ttl time.Duration) *SnapToken {
	token, _ := metadata[MetaSnapToken].(string)
	issuedAtRaw, _ := metadata[MetaSnapTokenIssuedAt].(string)
	if token == "" || issuedAtRaw == "" {
		return nil
	}
	issuedAt, err := time.Parse(time.RFC3339, issuedAtRaw)
	if err != nil {
		return nil
	}
	if now.Sub(issuedAt) >= ttl {
		return nil
	}
	redirectURL, _ := metadata[MetaSnapRedirectURL].(string)
	return &SnapToken{Token: token, RedirectURL: redirectURL, Reused: true}
}

// StoreToken writes the token keys into metadata, preserving every other
// key. Returns the map so callers can pass a nil metadata.
func StoreToken(metadata map[string]interface{}, token, redirectURL string, issuedAt time.Time) map[string]interface{} {
	if metadata == nil {
		metadata = make(map[string]interface{})
	}
	metadata[MetaSnapToken] = token
	metadata[MetaSnapTokenIssuedAt] = issuedAt.Format(time.RFC3339)
	metadata[MetaSnapRedirectURL] = redirectURL
	return metadata
}

// SnapTokenFor returns a payment token for the transaction, reusing the
// cached one while it is fresh. A newly issued token is written into
// transaction.Metadata; persisting the transaction is the caller's job.
func (g *Gateway) SnapTokenFor(transaction *entity.Transaction, user *entity.User, product *entity.Product) (*SnapToken, error) {
	now := time.Now()
	if cached := CachedToken(transaction.Metadata, now, g.cfg.SnapTokenTTL); cached != nil {
		g.logger.Info("PAYMENT", "Reusing cached snap token", map[string]interface{}{
			"transactionId": transaction.Id.String(),
		})
		return cached, nil
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  transaction.Id.String(),
			GrossAmt: int64(transaction.Amount),
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: g.cfg.FinishURL,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.FullName,
			Email: user.Email,
			Phone: user.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    product.Id.String(),
				Price: int64(product.Price),
				Qty:   1,
				Name:  product.Name,
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	resp, midErr := g.snap.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "snap token issuance failed", fmt.Errorf("%s", midErr.GetMessage()))
	}

	transaction.Metadata = StoreToken(transaction.Metadata, resp.Token, resp.RedirectURL, now)

	g.logger.Info("PAYMENT", "Issued snap token", map[string]interface{}{
		"transactionId": transaction.Id.String(),
	})
	return &SnapToken{Token: resp.Token, RedirectURL: resp.RedirectURL}, nil
}
