package memory

import (
	"context"

	"displayfleet/internal/domain/repository"
)

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	repo *deviceRepository
}

// DeviceRepo returns the repository bound to the running transaction.
func (f *repositoryFactory) DeviceRepo() repository.DeviceRepository {
	return f.repo
}

// NewTransactionManager creates a TransactionManager over store.
// Repositories created with NewDeviceRepository must not be used inside fn; they would wait on the held lock.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute holds the store lock for the whole of fn and undoes its writes if fn fails or panics.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := checkContext(ctx, "begin transaction"); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	j := make(journal)
	committed := false
	defer func() {
		if !committed {
			j.rollback(tm.store.devices)
		}
	}()

	if err := fn(&repositoryFactory{repo: &deviceRepository{store: tm.store, journal: j}}); err != nil {
		return err
	}
	committed = true

	return nil
}
