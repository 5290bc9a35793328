package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("SERVER_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8091", cfg.ServerPort)
	assert.Equal(t, "Bangalore", cfg.City)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 12.9716, cfg.Map.DefaultLat)
	assert.Equal(t, 77.5946, cfg.Map.DefaultLng)
	assert.Equal(t, 13, cfg.Map.DefaultZoom)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.True(t, cfg.Session.GeneratedSecret)
	assert.Len(t, cfg.Session.Secret, 64)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing api key", env: map[string]string{"GEMINI_API_KEY": ""}},
		{name: "bad latitude", env: map[string]string{"MAP_DEFAULT_LAT": "north"}},
		{name: "latitude out of range", env: map[string]string{"MAP_DEFAULT_LAT": "123"}},
		{name: "bad ttl", env: map[string]string{"SESSION_TTL": "soon"}},
		{name: "zoom out of range", env: map[string]string{"MAP_DEFAULT_ZOOM": "40"}},
		{name: "non numeric port", env: map[string]string{"SERVER_PORT": "http"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GEMINI_API_KEY", "test-key")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_TTL", "10m")
	t.Setenv("MAP_DEFAULT_LAT", "12.93")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.Equal(t, "s3cret", cfg.Session.Secret)
	assert.False(t, cfg.Session.GeneratedSecret)
	assert.Equal(t, 10*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 12.93, cfg.Map.DefaultLat)
}
