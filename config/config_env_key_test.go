package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"fleet": map[string]any{
			"onlineThreshold":    "60s",
			"maxTelemetryLength": 512,
		},
		"storage": map[string]any{
			"driver": "postgres",
			"sqlite": map[string]any{
				"busyTimeout": 5,
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "FLEET_ONLINETHRESHOLD", want: "fleet.onlineThreshold"},
		{envKey: "FLEET_MAXTELEMETRYLENGTH", want: "fleet.maxTelemetryLength"},
		{envKey: "STORAGE_SQLITE_BUSYTIMEOUT", want: "storage.sqlite.busyTimeout"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
