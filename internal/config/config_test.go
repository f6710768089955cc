package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("should load a full config with defaults applied", func(t *testing.T) {
		path := writeConfig(t, `
database_path: ./standup.db
timezones:
  - timezone: America/Chicago
    users: [alice, bob]
  - timezone: Europe/Berlin
    users: [carol]
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "./standup.db", cfg.DatabasePath)
		assert.Equal(t, 10, cfg.LocalNotificationHour)
		assert.Equal(t, "./logs", cfg.LogDir)
		assert.Equal(t, "3000", cfg.Port)
		require.Len(t, cfg.Timezones, 2)
		assert.Equal(t, "America/Chicago", cfg.Timezones[0].Timezone)
		assert.Equal(t, []string{"alice", "bob"}, cfg.Timezones[0].Users)
	})

	t.Run("should honor an explicit notification hour", func(t *testing.T) {
		path := writeConfig(t, `
database_path: ./standup.db
local_notification_hour: 8
timezones:
  - timezone: UTC
    users: [alice]
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 8, cfg.LocalNotificationHour)
	})

	t.Run("should fail without database_path", func(t *testing.T) {
		path := writeConfig(t, `
timezones:
  - timezone: UTC
    users: [alice]
`)

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "database_path")
	})

	t.Run("should fail without timezone groups", func(t *testing.T) {
		path := writeConfig(t, `
database_path: ./standup.db
`)

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "timezones")
	})

	t.Run("should fail on an unknown timezone name", func(t *testing.T) {
		path := writeConfig(t, `
database_path: ./standup.db
timezones:
  - timezone: Mars/OlympusMons
    users: [alice]
`)

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Mars/OlympusMons")
	})

	t.Run("should fail on an out-of-range hour", func(t *testing.T) {
		path := writeConfig(t, `
database_path: ./standup.db
local_notification_hour: 24
timezones:
  - timezone: UTC
    users: [alice]
`)

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "local_notification_hour")
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

		require.Error(t, err)
	})
}
