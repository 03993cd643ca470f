package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"storage": map[string]any{
			"keyPrefix": "loyalty:",
		},
		"loyalty": map[string]any{
			"pointsRate":    10,
			"centsPerPoint": 5,
			"historyLimit":  0,
		},
		"snapshot": map[string]any{
			"bucketUrl": "",
		},
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORAGE_KEYPREFIX", want: "storage.keyPrefix"},
		{envKey: "LOYALTY_POINTSRATE", want: "loyalty.pointsRate"},
		{envKey: "LOYALTY_CENTSPERPOINT", want: "loyalty.centsPerPoint"},
		{envKey: "SNAPSHOT_BUCKETURL", want: "snapshot.bucketUrl"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "REDIS_ADDR", want: "redis.addr"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
