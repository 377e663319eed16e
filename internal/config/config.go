// Package config loads bot settings from an optional config.toml and the environment.
package config

import (
	"errors"
	"fmt"
	"moviemagnet/internal/adapters/repository"
	"moviemagnet/internal/core/domain"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type Config struct {
	BotToken          string
	MongoURI          string
	MongoDatabase     string
	MongoCollection   string
	MongoMaxPoolSize  uint64
	MongoConnectLimit time.Duration
	HandlerTimeout    time.Duration
	LogLevel          zerolog.Level
	LockFile          string
}

// New returns a viper instance with defaults and environment bindings applied.
func New() *viper.Viper {
	v := viper.New()

	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("toml")

	v.SetDefault("mongo.collection", "movies")
	v.SetDefault("mongo.max_pool_size", 10)
	v.SetDefault("mongo.connect_timeout", "10s")
	v.SetDefault("handler.timeout", "1m")
	v.SetDefault("bot.log_level", "info")
	v.SetDefault("instance.lock_file", filepath.Join(os.TempDir(), "moviemagnet.lock"))

	_ = v.BindEnv("telegram.bot_token", "BOT_API_TOKEN")
	_ = v.BindEnv("mongo.uri", "MONGO_URI")
	_ = v.BindEnv("mongo.database", "MONGO_DATABASE")
	_ = v.BindEnv("mongo.collection", "MONGO_COLLECTION")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads config.toml if present and validates the result. A missing file is not an error, missing
// credentials are.
func Load(v *viper.Viper) (*Config, error) {
	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
	}

	cfg := &Config{
		BotToken:        v.GetString("telegram.bot_token"),
		MongoURI:        v.GetString("mongo.uri"),
		MongoDatabase:   v.GetString("mongo.database"),
		MongoCollection: v.GetString("mongo.collection"),
		LockFile:        v.GetString("instance.lock_file"),
		LogLevel:        parseLevel(v.GetString("bot.log_level")),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("%w: telegram.bot_token (BOT_API_TOKEN)", domain.ErrConfigMissing)
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("%w: mongo.uri (MONGO_URI)", domain.ErrConfigMissing)
	}

	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = repository.DatabaseFromURI(cfg.MongoURI)
	}

	poolSize := v.GetInt("mongo.max_pool_size")
	if poolSize < 1 {
		return nil, fmt.Errorf("invalid mongo.max_pool_size %d", poolSize)
	}
	cfg.MongoMaxPoolSize = uint64(poolSize)

	cfg.MongoConnectLimit, err = time.ParseDuration(v.GetString("mongo.connect_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid mongo.connect_timeout: %w", err)
	}

	cfg.HandlerTimeout, err = time.ParseDuration(v.GetString("handler.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid handler.timeout: %w", err)
	}

	return cfg, nil
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
