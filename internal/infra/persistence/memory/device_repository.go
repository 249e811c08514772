package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"displayfleet/internal/domain/entity"
	"displayfleet/internal/domain/repository"
)

// deviceRepository implements repository.DeviceRepository on a Store.
// Inside a transaction the store lock is already held and writes are journaled.
type deviceRepository struct {
	store   *Store
	journal journal
}

// NewDeviceRepository creates a repository that locks the store per call.
func NewDeviceRepository(store *Store) repository.DeviceRepository {
	return &deviceRepository{store: store}
}

func (repo *deviceRepository) lock() func() {
	if repo.journal != nil {
		return func() {}
	}
	repo.store.mu.Lock()

	return repo.store.mu.Unlock
}

// UpsertHeartbeat creates or refreshes the device.
func (repo *deviceRepository) UpsertHeartbeat(ctx context.Context, hb *entity.Heartbeat) (*entity.Device, error) {
	if err := checkContext(ctx, "upsert heartbeat"); err != nil {
		return nil, err
	}
	defer repo.lock()()

	at := hb.ReceivedAt.UTC()
	repo.journal.record(repo.store.devices, hb.DeviceID)

	device, ok := repo.store.devices[hb.DeviceID]
	if !ok {
		device = &entity.Device{
			DeviceID:    hb.DeviceID,
			FirstSeenAt: at,
		}
		repo.store.devices[hb.DeviceID] = device
	}

	if at.After(device.LastHeartbeat) {
		device.LastHeartbeat = at
	}
	device.ReportedStatus = entity.StatusOnline
	device.IsDeleted = false
	device.UpdatedAt = at
	if hb.CurrentSlide != nil {
		device.CurrentSlide = *hb.CurrentSlide
	}
	if hb.IPAddress != nil {
		device.IPAddress = *hb.IPAddress
	}
	if hb.BrowserInfo != nil {
		device.BrowserInfo = *hb.BrowserInfo
	}

	return device.Clone(), nil
}

// FindByID returns a copy of the device.
func (repo *deviceRepository) FindByID(ctx context.Context, deviceID string) (*entity.Device, error) {
	if err := checkContext(ctx, "find device"); err != nil {
		return nil, err
	}
	defer repo.lock()()

	device, ok := repo.store.devices[deviceID]
	if !ok {
		return nil, repository.ErrDeviceNotFound
	}

	return device.Clone(), nil
}

// FindByIDForUpdate is FindByID; a transaction already holds the store lock.
func (repo *deviceRepository) FindByIDForUpdate(ctx context.Context, deviceID string) (*entity.Device, error) {
	return repo.FindByID(ctx, deviceID)
}

// List returns copies in dashboard order.
func (repo *deviceRepository) List(ctx context.Context, includeDeleted bool) ([]*entity.Device, error) {
	if err := checkContext(ctx, "list devices"); err != nil {
		return nil, err
	}
	defer repo.lock()()

	devices := make([]*entity.Device, 0, len(repo.store.devices))
	for _, device := range repo.store.devices {
		if device.IsDeleted && !includeDeleted {
			continue
		}
		devices = append(devices, device.Clone())
	}

	slices.SortFunc(devices, compareForListing)

	return devices, nil
}

func compareForListing(a, b *entity.Device) int {
	if a.IsPinned != b.IsPinned {
		if a.IsPinned {
			return -1
		}

		return 1
	}
	if c := b.LastHeartbeat.Compare(a.LastHeartbeat); c != 0 {
		return c
	}

	return cmp.Compare(a.DeviceID, b.DeviceID)
}

// UpdateMeta applies the operator patch.
func (repo *deviceRepository) UpdateMeta(ctx context.Context, deviceID string, patch *entity.MetaPatch) (*entity.Device, error) {
	if err := checkContext(ctx, "update device meta"); err != nil {
		return nil, err
	}
	defer repo.lock()()

	device, ok := repo.store.devices[deviceID]
	if !ok {
		return nil, repository.ErrDeviceNotFound
	}
	if patch.IsEmpty() {
		return device.Clone(), nil
	}

	repo.journal.record(repo.store.devices, deviceID)
	if patch.FriendlyName != nil {
		device.FriendlyName = *patch.FriendlyName
	}
	if patch.IsPinned != nil {
		device.IsPinned = *patch.IsPinned
	}
	device.UpdatedAt = patch.UpdatedAt.UTC()

	return device.Clone(), nil
}

// SoftDelete flags the device as deleted.
func (repo *deviceRepository) SoftDelete(ctx context.Context, deviceID string, at time.Time) (bool, error) {
	if err := checkContext(ctx, "soft delete device"); err != nil {
		return false, err
	}
	defer repo.lock()()

	device, ok := repo.store.devices[deviceID]
	if !ok {
		return false, nil
	}

	repo.journal.record(repo.store.devices, deviceID)
	device.IsDeleted = true
	device.UpdatedAt = at.UTC()

	return true, nil
}

// SetPendingCommand overwrites the staged command.
func (repo *deviceRepository) SetPendingCommand(ctx context.Context, deviceID string, cmd *entity.PendingCommand) error {
	if err := checkContext(ctx, "set pending command"); err != nil {
		return err
	}
	defer repo.lock()()

	device, ok := repo.store.devices[deviceID]
	if !ok {
		return repository.ErrDeviceNotFound
	}

	repo.journal.record(repo.store.devices, deviceID)
	issuedAt := cmd.IssuedAt.UTC()
	device.PendingCommand = &entity.PendingCommand{Type: cmd.Type, IssuedAt: issuedAt}
	device.UpdatedAt = issuedAt

	return nil
}

// ClearPendingCommand clears the command only while it is still the one issued at issuedAt.
func (repo *deviceRepository) ClearPendingCommand(ctx context.Context, deviceID string, issuedAt time.Time) (bool, error) {
	if err := checkContext(ctx, "clear pending command"); err != nil {
		return false, err
	}
	defer repo.lock()()

	device, ok := repo.store.devices[deviceID]
	if !ok || device.PendingCommand == nil || !device.PendingCommand.IssuedAt.Equal(issuedAt) {
		return false, nil
	}

	repo.journal.record(repo.store.devices, deviceID)
	device.PendingCommand = nil

	return true, nil
}
