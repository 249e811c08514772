package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short", in: "slide-3", max: 10, want: "slide-3"},
		{name: "exact", in: "abc", max: 3, want: "abc"},
		{name: "cut", in: "abcdef", max: 4, want: "abcd"},
		{name: "multibyte", in: "大廳電視螢幕", max: 2, want: "大廳"},
		{name: "disabled", in: "abcdef", max: 0, want: "abcdef"},
		{name: "empty", in: "", max: 5, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateRunes(tt.in, tt.max))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{name: "zero", duration: 0, want: "0s"},
		{name: "negative", duration: -3 * time.Second, want: "0s"},
		{name: "seconds", duration: 45 * time.Second, want: "45s"},
		{name: "rounded", duration: 1499 * time.Millisecond, want: "1s"},
		{name: "minutes", duration: 5*time.Minute + 10*time.Second, want: "5m10s"},
		{name: "hours", duration: time.Hour + 30*time.Minute, want: "1h30m"},
		{name: "days", duration: 50 * time.Hour, want: "2d2h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.duration))
		})
	}
}
