package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DSN", "postgres://localhost/test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TZ_OFFSET_MINUTES", "120")
	t.Setenv("BOOKING_API_URL", "http://booking.local")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.False(t, cfg.IsProduction)
	require.Equal(t, 120, cfg.TZOffsetMinutes)
	require.Equal(t, 4*time.Hour, cfg.MinRentableGap)
	require.Equal(t, 6, cfg.EarlyCutoffHour)
	require.Equal(t, 7, cfg.HorizonDays)
	require.Equal(t, time.Minute, cfg.CacheTTL)
	require.Empty(t, cfg.RedisAddr)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("MIN_RENTABLE_GAP", "2h30m")
	t.Setenv("EARLY_CUTOFF_HOUR", "8")
	t.Setenv("HORIZON_DAYS", "14")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)

	require.True(t, cfg.IsProduction)
	require.Equal(t, 2*time.Hour+30*time.Minute, cfg.MinRentableGap)
	require.Equal(t, 8, cfg.EarlyCutoffHour)
	require.Equal(t, 14, cfg.HorizonDays)
	require.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoadRequiresOffset(t *testing.T) {
	setRequired(t)
	t.Setenv("TZ_OFFSET_MINUTES", "")

	// An unset operating-zone offset must be fatal, never defaulted.
	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "TZ_OFFSET_MINUTES")
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"offset not a number", "TZ_OFFSET_MINUTES", "+2h"},
		{"offset out of range", "TZ_OFFSET_MINUTES", "1000"},
		{"cutoff out of range", "EARLY_CUTOFF_HOUR", "24"},
		{"horizon too small", "HORIZON_DAYS", "0"},
		{"gap not a duration", "MIN_RENTABLE_GAP", "four hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
		})
	}
}
