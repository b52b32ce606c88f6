package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	PostsSource        string
	PostsDocument      string
	DatabaseURL        string
	S3Bucket           string
	AWSRegion          string
	S3Endpoint         string
	RabbitMQURL        string
	CacheTTL           time.Duration
	HTTPTimeout        time.Duration
	FallbackCoverImage string
	StaticDir          string
	LogLevel           slog.Level
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Default().Debug("loading .env failed", "error", err)
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		PostsSource:        getEnv("POSTS_SOURCE", "public/data/posts.json"),
		PostsDocument:      getEnv("POSTS_DOCUMENT", "posts"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		S3Bucket:           getEnv("S3_BUCKET", ""),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		S3Endpoint:         getEnv("S3_ENDPOINT", ""),
		RabbitMQURL:        getEnv("RABBITMQ_URL", ""),
		CacheTTL:           getDuration("CACHE_TTL", 0),
		HTTPTimeout:        getDuration("HTTP_TIMEOUT", 10*time.Second),
		FallbackCoverImage: getEnv("FALLBACK_COVER_IMAGE", ""),
		StaticDir:          getEnv("STATIC_DIR", ""),
		LogLevel:           parseLevel(getEnv("LOG_LEVEL", "info")),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Default().Warn("invalid duration, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return d
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewLogger returns the JSON logger every binary writes to stdout.
func (c *Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: c.LogLevel}))
}
