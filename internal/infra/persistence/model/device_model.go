// Package model holds the GORM table mappings of the device registry.
package model

import "time"

// DeviceModel is the GORM-specific struct for the 'display_devices' table.
// Timestamps are always written by the caller in UTC.
type DeviceModel struct {
	DeviceID               string     `gorm:"type:varchar(128);primaryKey"`
	FriendlyName           *string    `gorm:"type:varchar(255)"`
	LastHeartbeat          time.Time  `gorm:"not null;index"`
	ReportedStatus         string     `gorm:"type:varchar(16);not null"`
	IsPinned               bool       `gorm:"not null;default:false"`
	IsDeleted              bool       `gorm:"not null;default:false;index"`
	CurrentSlide           string     `gorm:"type:text;not null"`
	IPAddress              string     `gorm:"type:text;not null"`
	BrowserInfo            string     `gorm:"type:text;not null"`
	PendingCommandType     *string    `gorm:"type:varchar(64)"`
	PendingCommandIssuedAt *time.Time
	FirstSeenAt            time.Time  `gorm:"not null"`
	UpdatedAt              time.Time  `gorm:"not null;autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "display_devices"
}
