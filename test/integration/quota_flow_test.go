package integration

import (
	"context"
	"testing"

	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/logger"
	"github.com/martinsuhendra/manta-sub002/pkg/membership/quota"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotaLedgerConsumeAndRelease(t *testing.T) {
	factory := setupFactory(t)
	ctx := context.Background()

	sysLogger := logger.NewZapLogger("logs/test.log", false)
	ledger := quota.NewLedger(sysLogger)

	uow := factory.NewUnitOfWork(ctx)
	user := createTestUser(t, uow)
	product := createTestProduct(t, uow, 500000)

	classItem := uuid.New()
	pool := &entity.QuotaPool{Id: uuid.New(), Name: "test-pool-" + uuid.New().String()}
	require.NoError(t, uow.ProductRepository().CreatePool(ctx, pool))

	individualItem := &entity.ProductItem{
		Id:          uuid.New(),
		ProductId:   product.Id,
		ClassItemId: classItem,
		QuotaType:   entity.QuotaTypeIndividual,
		QuotaLimit:  4,
	}
	require.NoError(t, uow.ProductRepository().CreateItem(ctx, individualItem))

	sharedClassItem := uuid.New()
	sharedItem := &entity.ProductItem{
		Id:          uuid.New(),
		ProductId:   product.Id,
		ClassItemId: sharedClassItem,
		QuotaType:   entity.QuotaTypeShared,
		QuotaPoolId: &pool.Id,
		QuotaLimit:  10,
	}
	require.NoError(t, uow.ProductRepository().CreateItem(ctx, sharedItem))

	membership := &entity.Membership{
		Id:        uuid.New(),
		UserId:    user.Id,
		ProductId: product.Id,
		Status:    entity.MembershipStatusActive,
		JoinDate:  timeNow(),
		ExpiredAt: timeNow().AddDate(0, 1, 0),
	}
	require.NoError(t, uow.MembershipRepository().Create(ctx, membership))

	// Two consumes against the individual item, one against the pool
	require.NoError(t, ledger.Consume(ctx, uow, membership, classItem))
	require.NoError(t, ledger.Consume(ctx, uow, membership, classItem))
	require.NoError(t, ledger.Consume(ctx, uow, membership, sharedClassItem))

	usages, err := ledger.Usage(ctx, uow, membership)
	require.NoError(t, err)
	require.Len(t, usages, 2)

	counts := map[string]int{}
	for _, u := range usages {
		if u.ProductItemId != nil {
			counts["item"] = u.UsedCount
		}
		if u.QuotaPoolId != nil {
			counts["pool"] = u.UsedCount
		}
	}
	assert.Equal(t, 2, counts["item"])
	assert.Equal(t, 1, counts["pool"])

	// Releasing returns a unit, clamped at zero
	require.NoError(t, ledger.Release(ctx, uow, membership, sharedClassItem))
	require.NoError(t, ledger.Release(ctx, uow, membership, sharedClassItem))
	require.NoError(t, ledger.Release(ctx, uow, membership, sharedClassItem))

	usages, err = ledger.Usage(ctx, uow, membership)
	require.NoError(t, err)
	for _, u := range usages {
		if u.QuotaPoolId != nil {
			assert.Equal(t, 0, u.UsedCount)
		}
	}

	// A class item the product does not cover is a silent no-op
	require.NoError(t, ledger.Consume(ctx, uow, membership, uuid.New()))
	usages, err = ledger.Usage(ctx, uow, membership)
	require.NoError(t, err)
	assert.Len(t, usages, 2)
}
