package sqlstore

import (
	domainerrors "displayfleet/internal/domain/errors"
	"displayfleet/internal/domain/repository"
	"displayfleet/internal/errors"

	"gorm.io/gorm"
)

// translateError maps GORM failures onto the registry's error contract.
// A missing row becomes ErrDeviceNotFound; everything else means the store could not serve the call.
func translateError(err error, details string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrDeviceNotFound
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return domainerrors.ErrInvalidArgument.WithDetails(details)
	default:
		return domainerrors.NewStoreUnavailableError(err, details)
	}
}
