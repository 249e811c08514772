package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"displayfleet/internal/domain/entity"
	domainerrors "displayfleet/internal/domain/errors"
	"displayfleet/internal/domain/liveness"
	"displayfleet/internal/domain/repository"
	"displayfleet/internal/domain/service"
	"displayfleet/internal/errors"
	mockRepo "displayfleet/internal/mocks/repository"
	mockService "displayfleet/internal/mocks/service"
	"displayfleet/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fleetServiceFixtures holds all test dependencies for fleet service tests.
type fleetServiceFixtures struct {
	service    usecase.FleetUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	publisher  *mockService.MockEventPublisher
}

func createTestFleetService(t *testing.T) fleetServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewFleetService(FleetServiceParams{
		DeviceRepo: deviceRepo,
		Evaluator:  liveness.NewEvaluator(time.Minute),
		Publisher:  publisher,
		Logger:     discardLogger(),
	})
	svc.(*fleetService).now = func() time.Time { return fixedNow }

	return fleetServiceFixtures{
		service:    svc,
		deviceRepo: deviceRepo,
		publisher:  publisher,
	}
}

func seenAgo(id string, age time.Duration) *entity.Device {
	return &entity.Device{DeviceID: id, ReportedStatus: entity.StatusOnline, LastHeartbeat: fixedNow.Add(-age)}
}

func TestFleetService_ListFleet_EvaluatesLiveness(t *testing.T) {
	fx := createTestFleetService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().List(ctx, false).Return([]*entity.Device{
		seenAgo("tv-59", 59*time.Second),
		seenAgo("tv-60", 60*time.Second),
		seenAgo("tv-61", 61*time.Second),
	}, nil)

	statuses, err := fx.service.ListFleet(ctx, usecase.FleetFilter{})
	require.NoError(t, err)
	require.Len(t, statuses, 3)

	assert.Equal(t, liveness.StatusOnline, statuses[0].Status)
	assert.Equal(t, liveness.StatusOffline, statuses[1].Status)
	assert.Equal(t, liveness.StatusOffline, statuses[2].Status)
	assert.Equal(t, 59*time.Second, statuses[0].LastSeenAgo)
	assert.Equal(t, "tv-59", statuses[0].DisplayName)
}

func TestFleetService_ListFleet_StatusFilter(t *testing.T) {
	fx := createTestFleetService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().List(ctx, true).Return([]*entity.Device{
		seenAgo("a", time.Second),
		seenAgo("b", time.Hour),
		seenAgo("c", 2*time.Second),
	}, nil)

	statuses, err := fx.service.ListFleet(ctx, usecase.FleetFilter{IncludeDeleted: true, Status: liveness.StatusOnline})
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, "a", statuses[0].Device.DeviceID)
	assert.Equal(t, "c", statuses[1].Device.DeviceID)
}

func TestFleetService_ListFleet_InvalidStatus(t *testing.T) {
	fx := createTestFleetService(t)

	_, err := fx.service.ListFleet(context.Background(), usecase.FleetFilter{Status: "sleeping"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestFleetService_ListFleet_StoreFailure(t *testing.T) {
	fx := createTestFleetService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().List(ctx, false).Return(nil, errors.New("timeout"))

	_, err := fx.service.ListFleet(ctx, usecase.FleetFilter{})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "STORE_UNAVAILABLE", appErr.ErrorCode())
}

func TestFleetService_Summary(t *testing.T) {
	fx := createTestFleetService(t)
	ctx := context.Background()

	pinned := seenAgo("pinned", time.Second)
	pinned.IsPinned = true
	deleted := seenAgo("deleted", time.Second)
	deleted.IsDeleted = true

	fx.deviceRepo.EXPECT().List(ctx, true).Return([]*entity.Device{
		pinned,
		seenAgo("online", 10*time.Second),
		seenAgo("offline", 10*time.Minute),
		deleted,
	}, nil)

	summary, err := fx.service.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Online)
	assert.Equal(t, 1, summary.Offline)
	assert.Equal(t, 1, summary.Pinned)
	assert.Equal(t, 1, summary.Deleted)
	assert.Equal(t, time.Minute, summary.Threshold)
	assert.Equal(t, fixedNow, summary.GeneratedAt)
}

func TestFleetService_GetDevice(t *testing.T) {
	fx := createTestFleetService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindByID(ctx, "tv-01").Return(seenAgo("tv-01", time.Second), nil)
	fx.deviceRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrDeviceNotFound)

	status, err := fx.service.GetDevice(ctx, "tv-01")
	require.NoError(t, err)
	assert.Equal(t, liveness.StatusOnline, status.Status)

	_, err = fx.service.GetDevice(ctx, "ghost")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestFleetService_UpdateMeta(t *testing.T) {
	fx := createTestFleetService(t)
	ctx := context.Background()

	renamed := seenAgo("tv-01", time.Second)
	renamed.FriendlyName = "Lobby"

	fx.deviceRepo.EXPECT().
		UpdateMeta(ctx, "tv-01", mock.MatchedBy(func(p *entity.MetaPatch) bool {
			return p.FriendlyName != nil && *p.FriendlyName == "Lobby" && p.IsPinned == nil && p.UpdatedAt.Equal(fixedNow)
		})).
		Return(renamed, nil)

	status, err := fx.service.UpdateMeta(ctx, "tv-01", &entity.MetaPatch{FriendlyName: ptr("  Lobby  ")})
	require.NoError(t, err)
	assert.Equal(t, "Lobby", status.DisplayName)
}

func TestFleetService_UpdateMeta_Errors(t *testing.T) {
	fx := createTestFleetService(t)
	ctx := context.Background()

	_, err := fx.service.UpdateMeta(ctx, "tv-01", &entity.MetaPatch{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)

	_, err = fx.service.UpdateMeta(ctx, "tv-01", &entity.MetaPatch{FriendlyName: ptr(strings.Repeat("x", 256))})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)

	fx.deviceRepo.EXPECT().UpdateMeta(ctx, "ghost", mock.Anything).Return(nil, repository.ErrDeviceNotFound)
	_, err = fx.service.UpdateMeta(ctx, "ghost", &entity.MetaPatch{IsPinned: ptr(true)})
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestFleetService_DeleteDevice(t *testing.T) {
	fx := createTestFleetService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().SoftDelete(ctx, "tv-01", fixedNow).Return(true, nil)
	fx.publisher.EXPECT().PublishFleetEvent(ctx, eventOfType(service.EventDeviceDeleted)).Return(nil)

	assert.NoError(t, fx.service.DeleteDevice(ctx, "tv-01"))
}

func TestFleetService_DeleteDevice_NeverSeen(t *testing.T) {
	fx := createTestFleetService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().SoftDelete(ctx, "ghost", fixedNow).Return(false, nil)

	assert.ErrorIs(t, fx.service.DeleteDevice(ctx, "ghost"), domainerrors.ErrDeviceNotFound)
}
