package config

import (
	"moviemagnet/internal/core/domain"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BOT_API_TOKEN", "123:abc")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017/films")

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.BotToken)
	assert.Equal(t, "mongodb://localhost:27017/films", cfg.MongoURI)
	assert.Equal(t, "films", cfg.MongoDatabase)
	assert.Equal(t, "movies", cfg.MongoCollection)
	assert.Equal(t, uint64(10), cfg.MongoMaxPoolSize)
	assert.Equal(t, 10*time.Second, cfg.MongoConnectLimit)
	assert.Equal(t, time.Minute, cfg.HandlerTimeout)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.NotEmpty(t, cfg.LockFile)
}

func TestLoadMissing(t *testing.T) {
	tests := []struct {
		name  string
		token string
		uri   string
	}{
		{
			name: "missing token",
			uri:  "mongodb://localhost",
		},
		{
			name:  "missing uri",
			token: "123:abc",
		},
		{
			name: "missing both",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv("BOT_API_TOKEN", tc.token)
			t.Setenv("MONGO_URI", tc.uri)

			_, err := Load(New())
			require.ErrorIs(t, err, domain.ErrConfigMissing)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("BOT_API_TOKEN", "")
	t.Setenv("MONGO_URI", "")

	file := `[telegram]
bot_token = "from-file"

[mongo]
uri = "mongodb://db:27017"
database = "catalogue"
collection = "films"
max_pool_size = 4

[handler]
timeout = "15s"

[bot]
log_level = "debug"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(file), 0o600))

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.BotToken)
	assert.Equal(t, "catalogue", cfg.MongoDatabase)
	assert.Equal(t, "films", cfg.MongoCollection)
	assert.Equal(t, uint64(4), cfg.MongoMaxPoolSize)
	assert.Equal(t, 15*time.Second, cfg.HandlerTimeout)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("BOT_API_TOKEN", "from-env")
	t.Setenv("MONGO_URI", "mongodb://env:27017")

	file := `[telegram]
bot_token = "from-file"

[mongo]
uri = "mongodb://file:27017"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(file), 0o600))

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.BotToken)
	assert.Equal(t, "mongodb://env:27017", cfg.MongoURI)
	assert.Equal(t, "test", cfg.MongoDatabase)
}

func TestLoadInvalidTimeout(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BOT_API_TOKEN", "123:abc")
	t.Setenv("MONGO_URI", "mongodb://localhost")

	v := New()
	v.Set("handler.timeout", "soon")

	_, err := Load(v)
	require.ErrorContains(t, err, "invalid handler.timeout")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("info"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
}
