package settlement

import "github.com/martinsuhendra/manta-sub002/internal/entity"

// MembershipTarget resolves the membership fan-out for a transaction moving
// into newStatus. It returns the status the membership should move to and
// whether the membership is affected at all.
//
//	COMPLETED                  PENDING, SUSPENDED -> ACTIVE
//	PROCESSING                 no membership change
//	FAILED, CANCELLED, EXPIRED PENDING, ACTIVE    -> SUSPENDED
//	REFUNDED                   any                -> SUSPENDED
func MembershipTarget(newStatus entity.TransactionStatus, current entity.MembershipStatus) (entity.MembershipStatus, bool) {
	switch newStatus {
	case entity.TransactionStatusCompleted:
		if current == entity.MembershipStatusPending || current == entity.MembershipStatusSuspended {
			return entity.MembershipStatusActive, true
		}
	case entity.TransactionStatusFailed, entity.TransactionStatusCancelled, entity.TransactionStatusExpired:
		if current == entity.MembershipStatusPending || current == entity.MembershipStatusActive {
			return entity.MembershipStatusSuspended, true
		}
	case entity.TransactionStatusRefunded:
		if current != entity.MembershipStatusSuspended {
			return entity.MembershipStatusSuspended, true
		}
	}
	return current, false
}
