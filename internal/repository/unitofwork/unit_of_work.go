package unitofwork

import (
	"context"

	"github.com/martinsuhendra/manta-sub002/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProductRepository() contract.ProductRepository
	MembershipRepository() contract.MembershipRepository
	FreezeRequestRepository() contract.FreezeRequestRepository
	TransactionRepository() contract.TransactionRepository
	BookingRepository() contract.BookingRepository
	QuotaUsageRepository() contract.QuotaUsageRepository
}
