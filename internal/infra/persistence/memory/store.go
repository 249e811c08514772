// Package memory implements the device registry in process memory for development and tests.
package memory

import (
	"context"
	"sync"

	"displayfleet/internal/domain/entity"
	domainerrors "displayfleet/internal/domain/errors"
)

// Store is the shared state behind the repository and transaction manager.
// One mutex serialises every call; a transaction holds it from begin to commit.
type Store struct {
	mu      sync.Mutex
	devices map[string]*entity.Device
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		devices: make(map[string]*entity.Device),
	}
}

// journal remembers the pre-transaction value of every touched device.
// A nil entry means the device did not exist.
type journal map[string]*entity.Device

func (j journal) record(devices map[string]*entity.Device, deviceID string) {
	if j == nil {
		return
	}
	if _, seen := j[deviceID]; seen {
		return
	}
	j[deviceID] = devices[deviceID].Clone()
}

func (j journal) rollback(devices map[string]*entity.Device) {
	for id, prior := range j {
		if prior == nil {
			delete(devices, id)

			continue
		}
		devices[id] = prior
	}
}

func checkContext(ctx context.Context, details string) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewStoreUnavailableError(err, details)
	}

	return nil
}
