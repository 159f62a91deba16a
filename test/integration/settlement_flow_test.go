package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/logger"
	"github.com/martinsuhendra/manta-sub002/internal/repository/unitofwork"
	"github.com/martinsuhendra/manta-sub002/pkg/database"
	"github.com/martinsuhendra/manta-sub002/pkg/membership/lifecycle"
	"github.com/martinsuhendra/manta-sub002/pkg/payment/settlement"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	return unitofwork.NewRepositoryFactory(gormDB)
}

func createTestUser(t *testing.T, uow unitofwork.UnitOfWork) *entity.User {
	t.Helper()
	user := &entity.User{
		Id:       uuid.New(),
		Email:    "settle-" + uuid.New().String() + "@example.com",
		FullName: "Settlement Tester",
		Role:     entity.UserRoleMember,
		Status:   entity.UserStatusActive,
	}
	require.NoError(t, uow.UserRepository().Create(context.Background(), user))
	return user
}

func createTestProduct(t *testing.T, uow unitofwork.UnitOfWork, price float64) *entity.Product {
	t.Helper()
	product := &entity.Product{
		Id:           uuid.New(),
		Name:         "Test Plan",
		Slug:         "test-plan-" + uuid.New().String(),
		Price:        price,
		Currency:     "IDR",
		DurationDays: 30,
		IsActive:     true,
	}
	require.NoError(t, uow.ProductRepository().Create(context.Background(), product))
	return product
}

func TestSettlementActivatesAndIsIdempotent(t *testing.T) {
	factory := setupFactory(t)
	ctx := context.Background()

	sysLogger := logger.NewZapLogger("logs/test.log", false)
	lifecycleController := lifecycle.NewController(sysLogger)
	settler := settlement.NewSettler(sysLogger, lifecycleController, nil)

	// Fixtures
	uow := factory.NewUnitOfWork(ctx)
	user := createTestUser(t, uow)
	product := createTestProduct(t, uow, 500000)

	transaction := &entity.Transaction{
		Id:        uuid.New(),
		UserId:    user.Id,
		ProductId: product.Id,
		Amount:    product.Price,
		Currency:  product.Currency,
		Status:    entity.TransactionStatusPending,
	}
	require.NoError(t, uow.TransactionRepository().Create(ctx, transaction))

	membership := &entity.Membership{
		Id:            uuid.New(),
		UserId:        user.Id,
		ProductId:     product.Id,
		TransactionId: &transaction.Id,
		Status:        entity.MembershipStatusPending,
		JoinDate:      timeNow(),
		ExpiredAt:     timeNow().AddDate(0, 0, product.DurationDays),
	}
	require.NoError(t, uow.MembershipRepository().Create(ctx, membership))

	// First settlement activates the membership
	res, err := settler.Settle(ctx, factory.NewUnitOfWork(ctx),
		transaction.Id, entity.TransactionStatusCompleted,
		settlement.SourceWebhook, settlement.Options{PaymentMethod: "gopay", PaymentProvider: "midtrans"})
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Len(t, res.ActivatedMemberships, 1)
	assert.NotNil(t, res.Transaction.PaidAt)

	stored, err := factory.NewUnitOfWork(ctx).MembershipRepository().FindOne(ctx, byID(membership.Id))
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.MembershipStatusActive, stored.Status)

	// Replaying the same notification is a no-op
	res, err = settler.Settle(ctx, factory.NewUnitOfWork(ctx),
		transaction.Id, entity.TransactionStatusCompleted,
		settlement.SourceWebhook, settlement.Options{PaymentMethod: "gopay", PaymentProvider: "midtrans"})
	require.NoError(t, err)
	assert.False(t, res.Applied)

	stored, err = factory.NewUnitOfWork(ctx).MembershipRepository().FindOne(ctx, byID(membership.Id))
	require.NoError(t, err)
	assert.Equal(t, entity.MembershipStatusActive, stored.Status)
}

func TestRefundSuspendsActiveMembership(t *testing.T) {
	factory := setupFactory(t)
	ctx := context.Background()

	sysLogger := logger.NewZapLogger("logs/test.log", false)
	lifecycleController := lifecycle.NewController(sysLogger)
	settler := settlement.NewSettler(sysLogger, lifecycleController, nil)

	uow := factory.NewUnitOfWork(ctx)
	user := createTestUser(t, uow)
	product := createTestProduct(t, uow, 500000)

	transaction := &entity.Transaction{
		Id:        uuid.New(),
		UserId:    user.Id,
		ProductId: product.Id,
		Amount:    product.Price,
		Currency:  product.Currency,
		Status:    entity.TransactionStatusCompleted,
	}
	require.NoError(t, uow.TransactionRepository().Create(ctx, transaction))

	membership := &entity.Membership{
		Id:            uuid.New(),
		UserId:        user.Id,
		ProductId:     product.Id,
		TransactionId: &transaction.Id,
		Status:        entity.MembershipStatusActive,
		JoinDate:      timeNow(),
		ExpiredAt:     timeNow().AddDate(0, 0, product.DurationDays),
	}
	require.NoError(t, uow.MembershipRepository().Create(ctx, membership))

	res, err := settler.Settle(ctx, factory.NewUnitOfWork(ctx),
		transaction.Id, entity.TransactionStatusRefunded,
		settlement.SourceManual, settlement.Options{})
	require.NoError(t, err)
	assert.True(t, res.Applied)

	stored, err := factory.NewUnitOfWork(ctx).MembershipRepository().FindOne(ctx, byID(membership.Id))
	require.NoError(t, err)
	assert.Equal(t, entity.MembershipStatusSuspended, stored.Status)
}
