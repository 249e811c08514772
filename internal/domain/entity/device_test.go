package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDevice_DisplayName(t *testing.T) {
	d := &Device{DeviceID: "tv-01"}
	assert.Equal(t, "tv-01", d.DisplayName())

	d.FriendlyName = "Lobby TV"
	assert.Equal(t, "Lobby TV", d.DisplayName())
}

func TestDevice_CloneCopiesPendingCommand(t *testing.T) {
	issued := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	d := &Device{DeviceID: "tv-01", PendingCommand: &PendingCommand{Type: CommandRefresh, IssuedAt: issued}}

	cloned := d.Clone()
	cloned.PendingCommand.Type = "reboot"

	assert.Equal(t, CommandRefresh, d.PendingCommand.Type)
	assert.Nil(t, (*Device)(nil).Clone())
}

func TestMetaPatch_IsEmpty(t *testing.T) {
	pinned := true

	assert.True(t, MetaPatch{}.IsEmpty())
	assert.False(t, MetaPatch{IsPinned: &pinned}.IsEmpty())
}

func TestCommandTypesFromStrings(t *testing.T) {
	types := CommandTypesFromStrings([]string{"refresh", "", "reload", "refresh"})

	assert.Equal(t, CommandTypes{CommandRefresh, "reload"}, types)
	assert.True(t, types.Contains("reload"))
	assert.False(t, types.Contains("reboot"))
}

func TestIsValidDeviceID(t *testing.T) {
	long := make([]byte, MaxDeviceIDLength+1)
	for i := range long {
		long[i] = 'a'
	}

	assert.True(t, IsValidDeviceID("tv-01"))
	assert.True(t, IsValidDeviceID("ward_3.tv:2"))
	assert.True(t, IsValidDeviceID("0b6f7c1e-9a2d-4f1b-8c3e-5d7a9b1c2e3f"))
	assert.True(t, IsValidDeviceID(string(long[:MaxDeviceIDLength])))
	assert.False(t, IsValidDeviceID(""))
	assert.False(t, IsValidDeviceID("tv 01"))
	assert.False(t, IsValidDeviceID("tv/01"))
	assert.False(t, IsValidDeviceID("電視"))
	assert.False(t, IsValidDeviceID(string(long)))
}
