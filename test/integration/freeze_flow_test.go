package integration

import (
	"context"
	"testing"
	"time"

	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/apperror"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/logger"
	"github.com/martinsuhendra/manta-sub002/pkg/membership/freeze"
	"github.com/martinsuhendra/manta-sub002/pkg/membership/lifecycle"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreezeApproveAndSweep(t *testing.T) {
	factory := setupFactory(t)
	ctx := context.Background()

	sysLogger := logger.NewZapLogger("logs/test.log", false)
	lifecycleController := lifecycle.NewController(sysLogger)
	workflow := freeze.NewWorkflow(sysLogger, lifecycleController, nil)

	uow := factory.NewUnitOfWork(ctx)
	user := createTestUser(t, uow)
	product := createTestProduct(t, uow, 500000)

	membership := &entity.Membership{
		Id:        uuid.New(),
		UserId:    user.Id,
		ProductId: product.Id,
		Status:    entity.MembershipStatusActive,
		JoinDate:  timeNow(),
		ExpiredAt: timeNow().AddDate(0, 1, 0),
	}
	require.NoError(t, uow.MembershipRepository().Create(ctx, membership))

	// Member files the request
	request, err := workflow.Request(ctx, factory.NewUnitOfWork(ctx),
		membership.Id, user.Id, entity.FreezeReasonMedical, "knee surgery recovery")
	require.NoError(t, err)
	assert.Equal(t, entity.FreezeStatusPendingApproval, request.Status)

	// A duplicate while the first is pending is refused
	_, err = workflow.Request(ctx, factory.NewUnitOfWork(ctx),
		membership.Id, user.Id, entity.FreezeReasonMedical, "again")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotAllowed))

	// Admin approves a window that already elapsed, so the sweep picks it up
	adminId := uuid.New()
	startDate := timeNow().AddDate(0, 0, -10)
	approved, err := workflow.Approve(ctx, factory.NewUnitOfWork(ctx),
		request.Id, adminId, startDate, 7)
	require.NoError(t, err)
	assert.Equal(t, entity.FreezeStatusApproved, approved.Status)
	require.NotNil(t, approved.FreezeEndDate)
	assert.Equal(t, startDate.AddDate(0, 0, 7), approved.FreezeEndDate.UTC())

	stored, err := factory.NewUnitOfWork(ctx).MembershipRepository().FindOne(ctx, byID(membership.Id))
	require.NoError(t, err)
	assert.Equal(t, entity.MembershipStatusFreezed, stored.Status)

	// Approving twice is refused
	_, err = workflow.Approve(ctx, factory.NewUnitOfWork(ctx), request.Id, adminId, startDate, 7)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidState))

	// Sweep completes the elapsed freeze and reactivates the membership
	completed, err := workflow.CompleteDue(ctx, factory.NewUnitOfWork(ctx), time.Now())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, completed, 1)

	stored, err = factory.NewUnitOfWork(ctx).MembershipRepository().FindOne(ctx, byID(membership.Id))
	require.NoError(t, err)
	assert.Equal(t, entity.MembershipStatusActive, stored.Status)

	storedRequest, err := factory.NewUnitOfWork(ctx).FreezeRequestRepository().FindOne(ctx, byID(request.Id))
	require.NoError(t, err)
	assert.Equal(t, entity.FreezeStatusCompleted, storedRequest.Status)

	// A second sweep finds nothing for this membership
	storedRequest, err = factory.NewUnitOfWork(ctx).FreezeRequestRepository().FindOne(ctx, byID(request.Id))
	require.NoError(t, err)
	assert.Equal(t, entity.FreezeStatusCompleted, storedRequest.Status)
}

func TestFreezeRejectLeavesMembershipActive(t *testing.T) {
	factory := setupFactory(t)
	ctx := context.Background()

	sysLogger := logger.NewZapLogger("logs/test.log", false)
	lifecycleController := lifecycle.NewController(sysLogger)
	workflow := freeze.NewWorkflow(sysLogger, lifecycleController, nil)

	uow := factory.NewUnitOfWork(ctx)
	user := createTestUser(t, uow)
	product := createTestProduct(t, uow, 500000)

	membership := &entity.Membership{
		Id:        uuid.New(),
		UserId:    user.Id,
		ProductId: product.Id,
		Status:    entity.MembershipStatusActive,
		JoinDate:  timeNow(),
		ExpiredAt: timeNow().AddDate(0, 1, 0),
	}
	require.NoError(t, uow.MembershipRepository().Create(ctx, membership))

	request, err := workflow.Request(ctx, factory.NewUnitOfWork(ctx),
		membership.Id, user.Id, entity.FreezeReasonPersonal, "long trip abroad")
	require.NoError(t, err)

	adminId := uuid.New()
	rejected, err := workflow.Reject(ctx, factory.NewUnitOfWork(ctx),
		request.Id, adminId, "freezes require at least two weeks notice")
	require.NoError(t, err)
	assert.Equal(t, entity.FreezeStatusRejected, rejected.Status)
	assert.Equal(t, "freezes require at least two weeks notice", rejected.RejectionReason)

	stored, err := factory.NewUnitOfWork(ctx).MembershipRepository().FindOne(ctx, byID(membership.Id))
	require.NoError(t, err)
	assert.Equal(t, entity.MembershipStatusActive, stored.Status)

	// The member may file again after a rejection
	_, err = workflow.Request(ctx, factory.NewUnitOfWork(ctx),
		membership.Id, user.Id, entity.FreezeReasonPersonal, "second attempt")
	require.NoError(t, err)
}
