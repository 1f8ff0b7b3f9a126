package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads the YAML file", func(t *testing.T) {
		// Given: a config file with three players on a 4x4 board
		path := filepath.Join(t.TempDir(), "config.yml")
		content := `log-level: debug
board-size: 4
players:
  - name: Alice
    mark: X
  - name: Bob
    mark: O
  - name: Carol
    mark: "$"
redis:
  enabled: true
  host: redis.local
  port: "6380"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: it is loaded
		conf, err := Load(path)

		// Then: every value is read
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 4, conf.BoardSize)
		assert.Equal(t, []Player{{"Alice", "X"}, {"Bob", "O"}, {"Carol", "$"}}, conf.Players)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "redis.local:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Missing file falls back to defaults", func(t *testing.T) {
		// When: loading a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 3, conf.BoardSize)
		assert.Equal(t, DefaultPlayers(), conf.Players)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides", func(t *testing.T) {
		t.Setenv("BOARD_SIZE", "5")
		t.Setenv("REDIS_ENABLED", "true")

		conf, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, 5, conf.BoardSize)
		assert.True(t, conf.Redis.Enabled)
	})

	t.Run("Broken YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("board-size: [oops"), 0o600))

		_, err := Load(path)

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(path) })
	})
}
