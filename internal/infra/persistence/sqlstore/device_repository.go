package sqlstore

import (
	"context"
	"time"

	"displayfleet/internal/domain/entity"
	"displayfleet/internal/domain/repository"
	"displayfleet/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dialectPostgres = "postgres"

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewDeviceRepository is the constructor for deviceRepository.
// timeout bounds each call; zero disables it.
func NewDeviceRepository(db *gorm.DB, timeout time.Duration) repository.DeviceRepository {
	return &deviceRepository{
		db:      db,
		timeout: timeout,
	}
}

func (repo *deviceRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if repo.timeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, repo.timeout)
}

func (repo *deviceRepository) isPostgres() bool {
	return repo.db.Dialector.Name() == dialectPostgres
}

// laterOf picks the newer of the stored and incoming value of column.
func (repo *deviceRepository) laterOf(column string) clause.Expr {
	fn := "MAX"
	if repo.isPostgres() {
		fn = "GREATEST"
	}

	return gorm.Expr(fn + "(" + model.DeviceModel{}.TableName() + "." + column + ", excluded." + column + ")")
}

// UpsertHeartbeat inserts the device or refreshes it in a single statement.
func (repo *deviceRepository) UpsertHeartbeat(ctx context.Context, hb *entity.Heartbeat) (*entity.Device, error) {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	at := hb.ReceivedAt.UTC()
	deviceM := &model.DeviceModel{
		DeviceID:       hb.DeviceID,
		LastHeartbeat:  at,
		ReportedStatus: string(entity.StatusOnline),
		CurrentSlide:   valueOrEmpty(hb.CurrentSlide),
		IPAddress:      valueOrEmpty(hb.IPAddress),
		BrowserInfo:    valueOrEmpty(hb.BrowserInfo),
		FirstSeenAt:    at,
		UpdatedAt:      at,
	}

	set := clause.Set{
		{Column: clause.Column{Name: "last_heartbeat"}, Value: repo.laterOf("last_heartbeat")},
		{Column: clause.Column{Name: "reported_status"}, Value: string(entity.StatusOnline)},
		{Column: clause.Column{Name: "is_deleted"}, Value: false},
		{Column: clause.Column{Name: "updated_at"}, Value: at},
	}
	if hb.CurrentSlide != nil {
		set = append(set, clause.Assignment{Column: clause.Column{Name: "current_slide"}, Value: *hb.CurrentSlide})
	}
	if hb.IPAddress != nil {
		set = append(set, clause.Assignment{Column: clause.Column{Name: "ip_address"}, Value: *hb.IPAddress})
	}
	if hb.BrowserInfo != nil {
		set = append(set, clause.Assignment{Column: clause.Column{Name: "browser_info"}, Value: *hb.BrowserInfo})
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_id"}},
			DoUpdates: set,
		}).
		Create(deviceM).Error; err != nil {
		return nil, translateError(err, "upsert heartbeat")
	}

	return repo.find(ctx, hb.DeviceID, false)
}

// FindByID retrieves a device by its id, deleted or not.
func (repo *deviceRepository) FindByID(ctx context.Context, deviceID string) (*entity.Device, error) {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	return repo.find(ctx, deviceID, false)
}

// FindByIDForUpdate locks the row on Postgres. SQLite runs on a single connection,
// so an open transaction already excludes every other writer.
func (repo *deviceRepository) FindByIDForUpdate(ctx context.Context, deviceID string) (*entity.Device, error) {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	return repo.find(ctx, deviceID, repo.isPostgres())
}

func (repo *deviceRepository) find(ctx context.Context, deviceID string, lock bool) (*entity.Device, error) {
	var deviceM model.DeviceModel

	query := repo.db.WithContext(ctx)
	if lock {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	if err := query.
		Where("device_id = ?", deviceID).
		Take(&deviceM).Error; err != nil {
		return nil, translateError(err, "find device")
	}

	return toDeviceDomain(&deviceM), nil
}

// List returns devices in dashboard order.
func (repo *deviceRepository) List(ctx context.Context, includeDeleted bool) ([]*entity.Device, error) {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	var deviceModels []*model.DeviceModel

	query := repo.db.WithContext(ctx)
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}

	if err := query.
		Order("is_pinned DESC").
		Order("last_heartbeat DESC").
		Order("device_id ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, translateError(err, "list devices")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// UpdateMeta applies the operator patch. An empty friendly name is stored as NULL.
func (repo *deviceRepository) UpdateMeta(ctx context.Context, deviceID string, patch *entity.MetaPatch) (*entity.Device, error) {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	if patch.IsEmpty() {
		return repo.find(ctx, deviceID, false)
	}

	updates := map[string]any{
		"updated_at": patch.UpdatedAt.UTC(),
	}
	if patch.FriendlyName != nil {
		if *patch.FriendlyName == "" {
			updates["friendly_name"] = nil
		} else {
			updates["friendly_name"] = *patch.FriendlyName
		}
	}
	if patch.IsPinned != nil {
		updates["is_pinned"] = *patch.IsPinned
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("device_id = ?", deviceID).
		Updates(updates)
	if result.Error != nil {
		return nil, translateError(result.Error, "update device meta")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrDeviceNotFound
	}

	return repo.find(ctx, deviceID, false)
}

// SoftDelete flags the device as deleted. Repeating it on a deleted device still reports true.
func (repo *deviceRepository) SoftDelete(ctx context.Context, deviceID string, at time.Time) (bool, error) {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("device_id = ?", deviceID).
		Updates(map[string]any{
			"is_deleted": true,
			"updated_at": at.UTC(),
		})
	if result.Error != nil {
		return false, translateError(result.Error, "soft delete device")
	}

	return result.RowsAffected > 0, nil
}

// SetPendingCommand overwrites whatever command is staged for the device.
func (repo *deviceRepository) SetPendingCommand(ctx context.Context, deviceID string, cmd *entity.PendingCommand) error {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	issuedAt := cmd.IssuedAt.UTC()
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("device_id = ?", deviceID).
		Updates(map[string]any{
			"pending_command_type":      string(cmd.Type),
			"pending_command_issued_at": issuedAt,
			"updated_at":                issuedAt,
		})
	if result.Error != nil {
		return translateError(result.Error, "set pending command")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// ClearPendingCommand clears the command only while it is still the one issued at issuedAt.
func (repo *deviceRepository) ClearPendingCommand(ctx context.Context, deviceID string, issuedAt time.Time) (bool, error) {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("device_id = ? AND pending_command_issued_at = ?", deviceID, issuedAt.UTC()).
		Updates(map[string]any{
			"pending_command_type":      nil,
			"pending_command_issued_at": nil,
		})
	if result.Error != nil {
		return false, translateError(result.Error, "clear pending command")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	device := &entity.Device{
		DeviceID:       data.DeviceID,
		FriendlyName:   valueOrEmpty(data.FriendlyName),
		LastHeartbeat:  data.LastHeartbeat.UTC(),
		ReportedStatus: entity.ReportedStatus(data.ReportedStatus),
		IsPinned:       data.IsPinned,
		IsDeleted:      data.IsDeleted,
		CurrentSlide:   data.CurrentSlide,
		IPAddress:      data.IPAddress,
		BrowserInfo:    data.BrowserInfo,
		FirstSeenAt:    data.FirstSeenAt.UTC(),
		UpdatedAt:      data.UpdatedAt.UTC(),
	}
	if data.PendingCommandType != nil && data.PendingCommandIssuedAt != nil {
		device.PendingCommand = &entity.PendingCommand{
			Type:     entity.CommandType(*data.PendingCommandType),
			IssuedAt: data.PendingCommandIssuedAt.UTC(),
		}
	}

	return device
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
