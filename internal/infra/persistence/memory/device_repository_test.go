package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"displayfleet/internal/domain/entity"
	"displayfleet/internal/domain/repository"
	"displayfleet/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

func newRepo() (*Store, repository.DeviceRepository, repository.TransactionManager) {
	store := NewStore()

	return store, NewDeviceRepository(store), NewTransactionManager(store)
}

func TestUpsertHeartbeat_CreateThenUpdate(t *testing.T) {
	_, repo, _ := newRepo()
	ctx := context.Background()

	created, err := repo.UpsertHeartbeat(ctx, &entity.Heartbeat{DeviceID: "tv-01", ReceivedAt: baseTime, IPAddress: ptr("10.0.0.5")})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOnline, created.ReportedStatus)
	assert.Equal(t, baseTime, created.FirstSeenAt)

	updated, err := repo.UpsertHeartbeat(ctx, &entity.Heartbeat{DeviceID: "tv-01", ReceivedAt: baseTime.Add(30 * time.Second), CurrentSlide: ptr("slide-2")})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", updated.IPAddress)
	assert.Equal(t, "slide-2", updated.CurrentSlide)
	assert.Equal(t, baseTime, updated.FirstSeenAt)
	assert.Equal(t, baseTime.Add(30*time.Second), updated.LastHeartbeat)

	stale, err := repo.UpsertHeartbeat(ctx, &entity.Heartbeat{DeviceID: "tv-01", ReceivedAt: baseTime})
	require.NoError(t, err)
	assert.Equal(t, baseTime.Add(30*time.Second), stale.LastHeartbeat)
}

func TestRepository_ReturnsCopies(t *testing.T) {
	_, repo, _ := newRepo()
	ctx := context.Background()

	device, err := repo.UpsertHeartbeat(ctx, &entity.Heartbeat{DeviceID: "tv-01", ReceivedAt: baseTime})
	require.NoError(t, err)
	device.IsPinned = true

	stored, err := repo.FindByID(ctx, "tv-01")
	require.NoError(t, err)
	assert.False(t, stored.IsPinned)
}

func TestList_OrderAndDeleted(t *testing.T) {
	_, repo, _ := newRepo()
	ctx := context.Background()

	for id, at := range map[string]time.Time{
		"b-old":      baseTime,
		"a-new":      baseTime.Add(10 * time.Second),
		"c-new":      baseTime.Add(10 * time.Second),
		"pinned-old": baseTime.Add(-time.Hour),
		"gone":       baseTime.Add(time.Hour),
	} {
		_, err := repo.UpsertHeartbeat(ctx, &entity.Heartbeat{DeviceID: id, ReceivedAt: at})
		require.NoError(t, err)
	}
	_, err := repo.UpdateMeta(ctx, "pinned-old", &entity.MetaPatch{IsPinned: ptr(true), UpdatedAt: baseTime})
	require.NoError(t, err)
	_, err = repo.SoftDelete(ctx, "gone", baseTime)
	require.NoError(t, err)

	visible, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"pinned-old", "a-new", "c-new", "b-old"}, ids(visible))

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"pinned-old", "gone", "a-new", "c-new", "b-old"}, ids(all))
}

func TestSoftDeleteAndResurrect(t *testing.T) {
	_, repo, _ := newRepo()
	ctx := context.Background()

	found, err := repo.SoftDelete(ctx, "ghost", baseTime)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = repo.UpsertHeartbeat(ctx, &entity.Heartbeat{DeviceID: "tv-01", ReceivedAt: baseTime})
	require.NoError(t, err)

	for range 2 {
		found, err = repo.SoftDelete(ctx, "tv-01", baseTime.Add(time.Second))
		require.NoError(t, err)
		assert.True(t, found)
	}

	resurrected, err := repo.UpsertHeartbeat(ctx, &entity.Heartbeat{DeviceID: "tv-01", ReceivedAt: baseTime.Add(2 * time.Second)})
	require.NoError(t, err)
	assert.False(t, resurrected.IsDeleted)
}

func TestUpdateMeta_NotFoundAndClearName(t *testing.T) {
	_, repo, _ := newRepo()
	ctx := context.Background()

	_, err := repo.UpdateMeta(ctx, "ghost", &entity.MetaPatch{FriendlyName: ptr("x")})
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)

	_, err = repo.UpsertHeartbeat(ctx, &entity.Heartbeat{DeviceID: "tv-01", ReceivedAt: baseTime})
	require.NoError(t, err)

	device, err := repo.UpdateMeta(ctx, "tv-01", &entity.MetaPatch{FriendlyName: ptr("Lobby"), UpdatedAt: baseTime})
	require.NoError(t, err)
	assert.Equal(t, "Lobby", device.DisplayName())

	device, err = repo.UpdateMeta(ctx, "tv-01", &entity.MetaPatch{FriendlyName: ptr(""), UpdatedAt: baseTime})
	require.NoError(t, err)
	assert.Equal(t, "tv-01", device.DisplayName())
}

func TestPendingCommand_CompareAndClear(t *testing.T) {
	_, repo, _ := newRepo()
	ctx := context.Background()

	assert.ErrorIs(t, repo.SetPendingCommand(ctx, "ghost", &entity.PendingCommand{Type: entity.CommandRefresh}), repository.ErrDeviceNotFound)

	_, err := repo.UpsertHeartbeat(ctx, &entity.Heartbeat{DeviceID: "tv-01", ReceivedAt: baseTime})
	require.NoError(t, err)

	first := baseTime.Add(time.Second)
	second := baseTime.Add(2 * time.Second)
	require.NoError(t, repo.SetPendingCommand(ctx, "tv-01", &entity.PendingCommand{Type: entity.CommandRefresh, IssuedAt: first}))
	require.NoError(t, repo.SetPendingCommand(ctx, "tv-01", &entity.PendingCommand{Type: entity.CommandRefresh, IssuedAt: second}))

	cleared, err := repo.ClearPendingCommand(ctx, "tv-01", first)
	require.NoError(t, err)
	assert.False(t, cleared)

	cleared, err = repo.ClearPendingCommand(ctx, "tv-01", second)
	require.NoError(t, err)
	assert.True(t, cleared)

	cleared, err = repo.ClearPendingCommand(ctx, "tv-01", second)
	require.NoError(t, err)
	assert.False(t, cleared)
}

func TestTransaction_RollbackRestoresPriorState(t *testing.T) {
	_, repo, tm := newRepo()
	ctx := context.Background()

	_, err := repo.UpsertHeartbeat(ctx, &entity.Heartbeat{DeviceID: "tv-01", ReceivedAt: baseTime, CurrentSlide: ptr("slide-1")})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		txRepo := f.DeviceRepo()
		if _, err := txRepo.UpsertHeartbeat(ctx, &entity.Heartbeat{DeviceID: "tv-01", ReceivedAt: baseTime.Add(time.Minute), CurrentSlide: ptr("slide-9")}); err != nil {
			return err
		}
		if _, err := txRepo.UpsertHeartbeat(ctx, &entity.Heartbeat{DeviceID: "tv-02", ReceivedAt: baseTime}); err != nil {
			return err
		}
		if _, err := txRepo.SoftDelete(ctx, "tv-01", baseTime.Add(time.Minute)); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	device, err := repo.FindByID(ctx, "tv-01")
	require.NoError(t, err)
	assert.Equal(t, "slide-1", device.CurrentSlide)
	assert.Equal(t, baseTime, device.LastHeartbeat)
	assert.False(t, device.IsDeleted)

	_, err = repo.FindByID(ctx, "tv-02")
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestTransaction_RollbackOnPanic(t *testing.T) {
	_, repo, tm := newRepo()
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			_, _ = f.DeviceRepo().UpsertHeartbeat(ctx, &entity.Heartbeat{DeviceID: "tv-01", ReceivedAt: baseTime})
			panic("boom")
		})
	})

	_, err := repo.FindByID(ctx, "tv-01")
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestTransaction_ConcurrentClaimsDeliverOnce(t *testing.T) {
	_, repo, tm := newRepo()
	ctx := context.Background()

	_, err := repo.UpsertHeartbeat(ctx, &entity.Heartbeat{DeviceID: "tv-01", ReceivedAt: baseTime})
	require.NoError(t, err)
	require.NoError(t, repo.SetPendingCommand(ctx, "tv-01", &entity.PendingCommand{Type: entity.CommandRefresh, IssuedAt: baseTime}))

	const pollers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		delivered int
	)
	for range pollers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
				device, err := f.DeviceRepo().FindByIDForUpdate(ctx, "tv-01")
				if err != nil || device.PendingCommand == nil {
					return err
				}
				cleared, err := f.DeviceRepo().ClearPendingCommand(ctx, "tv-01", device.PendingCommand.IssuedAt)
				if cleared {
					mu.Lock()
					delivered++
					mu.Unlock()
				}

				return err
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, delivered)
}

func TestCanceledContext(t *testing.T) {
	_, repo, tm := newRepo()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.List(ctx, false)
	assert.ErrorIs(t, err, context.Canceled)

	err = tm.Execute(ctx, func(repository.RepositoryFactory) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func ids(devices []*entity.Device) []string {
	out := make([]string, 0, len(devices))
	for _, d := range devices {
		out = append(out, d.DeviceID)
	}

	return out
}
