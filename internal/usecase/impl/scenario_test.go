package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"displayfleet/internal/domain/entity"
	"displayfleet/internal/domain/liveness"
	"displayfleet/internal/infra/persistence/memory"
	"displayfleet/internal/infra/pubsub"
	"displayfleet/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// clock is a settable time source shared by every service in a scenario.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *clock) Set(offset time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = fixedNow.Add(offset)
}

// FleetScenarioSuite drives the use cases end to end against the in-memory store.
type FleetScenarioSuite struct {
	suite.Suite
	ctx       context.Context
	clock     *clock
	heartbeat usecase.HeartbeatUsecase
	commands  usecase.CommandUsecase
	fleet     usecase.FleetUsecase
}

func TestFleetScenarioSuite(t *testing.T) {
	suite.Run(t, new(FleetScenarioSuite))
}

func (s *FleetScenarioSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = &clock{now: fixedNow}

	store := memory.NewStore()
	deviceRepo := memory.NewDeviceRepository(store)
	txManager := memory.NewTransactionManager(store)
	publisher := pubsub.NewNoopPublisher(discardLogger())
	cfg := testConfig()

	heartbeat := NewHeartbeatService(HeartbeatServiceParams{TxManager: txManager, Publisher: publisher, Config: cfg, Logger: discardLogger()})
	heartbeat.(*heartbeatService).now = s.clock.Now
	commands := NewCommandService(CommandServiceParams{TxManager: txManager, DeviceRepo: deviceRepo, Publisher: publisher, Config: cfg, Logger: discardLogger()})
	commands.(*commandService).now = s.clock.Now
	fleet := NewFleetService(FleetServiceParams{DeviceRepo: deviceRepo, Evaluator: NewEvaluator(cfg), Publisher: publisher, Logger: discardLogger()})
	fleet.(*fleetService).now = s.clock.Now

	s.heartbeat, s.commands, s.fleet = heartbeat, commands, fleet
}

func (s *FleetScenarioSuite) beat(deviceID string) *usecase.HeartbeatResult {
	result, err := s.heartbeat.Heartbeat(s.ctx, &usecase.HeartbeatInput{DeviceID: deviceID})
	s.Require().NoError(err)

	return result
}

func (s *FleetScenarioSuite) status(deviceID string) liveness.Status {
	status, err := s.fleet.GetDevice(s.ctx, deviceID)
	s.Require().NoError(err)

	return status.Status
}

func (s *FleetScenarioSuite) TestRefreshIsDeliveredOnce() {
	s.beat("tv-01")

	s.clock.Set(30 * time.Second)
	_, err := s.commands.TriggerRefresh(s.ctx, "tv-01")
	s.Require().NoError(err)

	s.clock.Set(45 * time.Second)
	first := s.beat("tv-01")
	s.Require().NotNil(first.PendingCommand)
	s.Equal(entity.CommandRefresh, first.PendingCommand.Type)
	s.Equal(fixedNow.Add(30*time.Second), first.PendingCommand.IssuedAt)

	s.clock.Set(50 * time.Second)
	second := s.beat("tv-01")
	s.Nil(second.PendingCommand)
}

func (s *FleetScenarioSuite) TestLivenessFollowsThreshold() {
	s.beat("tv-01")

	s.clock.Set(59 * time.Second)
	s.Equal(liveness.StatusOnline, s.status("tv-01"))

	s.clock.Set(60 * time.Second)
	s.Equal(liveness.StatusOffline, s.status("tv-01"))

	s.clock.Set(61 * time.Second)
	s.beat("tv-01")
	s.Equal(liveness.StatusOnline, s.status("tv-01"))
}

func (s *FleetScenarioSuite) TestDeletedDeviceReappearsOnHeartbeat() {
	s.beat("tv-01")
	s.beat("tv-02")

	s.Require().NoError(s.fleet.DeleteDevice(s.ctx, "tv-01"))
	s.Require().NoError(s.fleet.DeleteDevice(s.ctx, "tv-01"))

	visible, err := s.fleet.ListFleet(s.ctx, usecase.FleetFilter{})
	s.Require().NoError(err)
	s.Len(visible, 1)
	s.Equal("tv-02", visible[0].Device.DeviceID)

	s.clock.Set(5 * time.Second)
	result := s.beat("tv-01")
	s.False(result.Device.IsDeleted)

	visible, err = s.fleet.ListFleet(s.ctx, usecase.FleetFilter{})
	s.Require().NoError(err)
	s.Len(visible, 2)
	s.Equal("tv-01", visible[0].Device.DeviceID)
}

func (s *FleetScenarioSuite) TestCommandStagedOnDeletedDeviceSurvivesResurrection() {
	s.beat("tv-01")
	s.Require().NoError(s.fleet.DeleteDevice(s.ctx, "tv-01"))

	_, err := s.commands.TriggerRefresh(s.ctx, "tv-01")
	s.Require().NoError(err)

	s.clock.Set(10 * time.Second)
	result := s.beat("tv-01")
	s.Require().NotNil(result.PendingCommand)
	s.False(result.Device.IsDeleted)
}

func (s *FleetScenarioSuite) TestNewerCommandOverwritesUndelivered() {
	s.beat("tv-01")

	s.clock.Set(time.Second)
	_, err := s.commands.TriggerRefresh(s.ctx, "tv-01")
	s.Require().NoError(err)

	s.clock.Set(2 * time.Second)
	_, err = s.commands.IssueCommand(s.ctx, "tv-01", "reload")
	s.Require().NoError(err)

	cmd, err := s.commands.CheckCommand(s.ctx, "tv-01")
	s.Require().NoError(err)
	s.Require().NotNil(cmd)
	s.Equal(entity.CommandType("reload"), cmd.Type)

	cmd, err = s.commands.CheckCommand(s.ctx, "tv-01")
	s.Require().NoError(err)
	s.Nil(cmd)
}

func (s *FleetScenarioSuite) TestMetadataSurvivesHeartbeats() {
	s.beat("tv-01")

	_, err := s.fleet.UpdateMeta(s.ctx, "tv-01", &entity.MetaPatch{FriendlyName: ptr("ER Lobby"), IsPinned: ptr(true)})
	s.Require().NoError(err)

	s.clock.Set(10 * time.Second)
	result := s.beat("tv-01")
	s.Equal("ER Lobby", result.Device.DisplayName())
	s.True(result.Device.IsPinned)
}

func TestConcurrentHeartbeatsDeliverOnce(t *testing.T) {
	store := memory.NewStore()
	deviceRepo := memory.NewDeviceRepository(store)
	txManager := memory.NewTransactionManager(store)
	publisher := pubsub.NewNoopPublisher(discardLogger())
	ctx := context.Background()

	heartbeat := NewHeartbeatService(HeartbeatServiceParams{TxManager: txManager, Publisher: publisher, Config: testConfig(), Logger: discardLogger()})
	commands := NewCommandService(CommandServiceParams{TxManager: txManager, DeviceRepo: deviceRepo, Publisher: publisher, Config: testConfig(), Logger: discardLogger()})

	_, err := heartbeat.Heartbeat(ctx, &usecase.HeartbeatInput{DeviceID: "tv-01"})
	require.NoError(t, err)
	_, err = commands.TriggerRefresh(ctx, "tv-01")
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		delivered int
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := heartbeat.Heartbeat(ctx, &usecase.HeartbeatInput{DeviceID: "tv-01"})
			if err == nil && result.PendingCommand != nil {
				mu.Lock()
				delivered++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, delivered)
}
