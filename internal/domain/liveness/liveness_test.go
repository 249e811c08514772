package liveness

import (
	"testing"
	"time"

	"displayfleet/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestIsOnline(t *testing.T) {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		want bool
	}{
		{name: "fresh", age: 0, want: true},
		{name: "59s", age: 59 * time.Second, want: true},
		{name: "just under threshold", age: 60*time.Second - time.Nanosecond, want: true},
		{name: "exactly threshold", age: 60 * time.Second, want: false},
		{name: "61s", age: 61 * time.Second, want: false},
		{name: "clock skew ahead", age: -5 * time.Second, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := &entity.Device{DeviceID: "tv-01", ReportedStatus: entity.StatusOnline, LastHeartbeat: base}
			assert.Equal(t, tt.want, IsOnline(device, base.Add(tt.age), DefaultThreshold))
		})
	}
}

func TestIsOnline_NeverReported(t *testing.T) {
	now := time.Now()

	assert.False(t, IsOnline(nil, now, DefaultThreshold))
	assert.False(t, IsOnline(&entity.Device{DeviceID: "tv-01", ReportedStatus: entity.StatusOnline}, now, DefaultThreshold))
	assert.False(t, IsOnline(&entity.Device{DeviceID: "tv-01", LastHeartbeat: now}, now, DefaultThreshold))
}

func TestEvaluator(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	device := &entity.Device{DeviceID: "tv-01", ReportedStatus: entity.StatusOnline, LastHeartbeat: now.Add(-90 * time.Second)}

	assert.Equal(t, DefaultThreshold, NewEvaluator(0).Threshold())
	assert.Equal(t, StatusOffline, NewEvaluator(0).Status(device, now))
	assert.Equal(t, StatusOnline, NewEvaluator(2*time.Minute).Status(device, now))
	assert.Equal(t, StatusOffline, NewEvaluator(time.Minute).Status(nil, now))
}
