// Package liveness derives the displayed online/offline state of a device from heartbeat age.
package liveness

import (
	"time"

	"displayfleet/internal/domain/entity"
)

// DefaultThreshold is the heartbeat age at which a device stops being shown online.
const DefaultThreshold = 60 * time.Second

// Status is the derived, displayed state of a device. It is never persisted.
type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)

// IsOnline reports whether d reported online and its last heartbeat is fresh at now.
// The comparison is strict: a heartbeat exactly threshold old is offline.
// A nil device or one that never reported is offline; a heartbeat ahead of now is online.
func IsOnline(d *entity.Device, now time.Time, threshold time.Duration) bool {
	if d == nil || d.LastHeartbeat.IsZero() || d.ReportedStatus != entity.StatusOnline {
		return false
	}

	return now.Sub(d.LastHeartbeat) < threshold
}

// Evaluator applies a fixed threshold to devices.
type Evaluator struct {
	threshold time.Duration
}

// NewEvaluator creates an Evaluator. A non-positive threshold falls back to DefaultThreshold.
func NewEvaluator(threshold time.Duration) *Evaluator {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	return &Evaluator{threshold: threshold}
}

// Threshold returns the configured threshold.
func (e *Evaluator) Threshold() time.Duration {
	return e.threshold
}

// Status returns the derived state of d at now.
func (e *Evaluator) Status(d *entity.Device, now time.Time) Status {
	if IsOnline(d, now, e.threshold) {
		return StatusOnline
	}

	return StatusOffline
}
