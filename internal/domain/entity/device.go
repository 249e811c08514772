// Package entity contains the core business objects of the project.
package entity

import "time"

// ReportedStatus is the status a display reports about itself.
// Devices only ever report online; offline is inferred from heartbeat age.
type ReportedStatus string

const (
	// StatusOnline is the only status a device self-reports.
	StatusOnline ReportedStatus = "online"
)

// Device is one physical or browser display instance in the fleet.
type Device struct {
	DeviceID       string          `json:"device_id"`       // Client generated, stable identifier.
	FriendlyName   string          `json:"friendly_name"`   // Operator label; empty means "use DeviceID".
	LastHeartbeat  time.Time       `json:"last_heartbeat"`  // Time of the most recent heartbeat.
	ReportedStatus ReportedStatus  `json:"reported_status"` // Last self-reported status.
	IsPinned       bool            `json:"is_pinned"`       // Operator controlled sort priority.
	IsDeleted      bool            `json:"is_deleted"`      // Soft-delete marker, cleared by the next heartbeat.
	CurrentSlide   string          `json:"current_slide"`   // Last content descriptor reported by the device.
	IPAddress      string          `json:"ip_address"`      // Informational.
	BrowserInfo    string          `json:"browser_info"`    // Informational.
	PendingCommand *PendingCommand `json:"pending_command"` // At most one outstanding command.
	FirstSeenAt    time.Time       `json:"first_seen_at"`   // Time of the first heartbeat.
	UpdatedAt      time.Time       `json:"updated_at"`      // Time of the last modification of any kind.
}

// DisplayName returns the operator label, falling back to the device id.
func (d *Device) DisplayName() string {
	if d.FriendlyName != "" {
		return d.FriendlyName
	}

	return d.DeviceID
}

// Clone returns a deep copy of the device.
func (d *Device) Clone() *Device {
	if d == nil {
		return nil
	}

	cloned := *d
	if d.PendingCommand != nil {
		cmd := *d.PendingCommand
		cloned.PendingCommand = &cmd
	}

	return &cloned
}

// Heartbeat carries what a device reports on each periodic call.
// Nil telemetry fields leave the stored value untouched.
type Heartbeat struct {
	DeviceID     string
	ReceivedAt   time.Time
	IPAddress    *string
	BrowserInfo  *string
	CurrentSlide *string
}

// MetaPatch is a partial update of operator controlled fields.
// A nil field is left as is; an empty FriendlyName clears the label.
type MetaPatch struct {
	FriendlyName *string
	IsPinned     *bool
	UpdatedAt    time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p MetaPatch) IsEmpty() bool {
	return p.FriendlyName == nil && p.IsPinned == nil
}

// MaxDeviceIDLength bounds client generated ids.
const MaxDeviceIDLength = 128

// IsValidDeviceID reports whether id is 1..MaxDeviceIDLength characters of [A-Za-z0-9._:-].
func IsValidDeviceID(id string) bool {
	if id == "" || len(id) > MaxDeviceIDLength {
		return false
	}

	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.', c == '_', c == ':', c == '-':
		default:
			return false
		}
	}

	return true
}
