package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type heartbeatBody struct {
	DeviceID     string  `json:"device_id" validate:"required,deviceid"`
	CurrentSlide *string `json:"current_slide,omitempty" validate:"omitempty,max=16"`
}

func TestValidate_DeviceID(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "plain", id: "tv-01"},
		{name: "uuid", id: "0b7e3c1a-2f4d-4c8e-9a51-6f0d2b9c7e10"},
		{name: "surrounding space trimmed", id: " tv-01 "},
		{name: "empty", id: "", wantErr: true},
		{name: "inner space", id: "tv 01", wantErr: true},
		{name: "slash", id: "ward/3", wantErr: true},
		{name: "too long", id: strings.Repeat("a", 129), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&heartbeatBody{DeviceID: tt.id})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFieldErrors(t *testing.T) {
	v := New()
	slide := strings.Repeat("s", 17)

	err := v.Validate(&heartbeatBody{DeviceID: "bad id", CurrentSlide: &slide})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, map[string]string{
		"device_id":     "deviceid",
		"current_slide": "max=16",
	}, fields)

	assert.Nil(t, FieldErrors(assert.AnError))
}
