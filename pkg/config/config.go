package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds every environment dependent value used by the services.
type Config struct {
	Environment string
	ApiKey      string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Bucket      BucketConfig
	Analytics   AnalyticsConfig
}

// ServerConfig holds the HTTP server values.
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds the Postgres connection values.
type DatabaseConfig struct {
	DSN            string
	Database       string
	MigrationsPath string
}

// RedisConfig holds the Redis connection values.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// BucketConfig holds the S3 bucket used for log uploads.
type BucketConfig struct {
	Region       string
	Endpoint     string
	AccessKey    string
	AccessSecret string
	LogBucket    string
}

// AnalyticsConfig holds the champion analytics CDN values.
type AnalyticsConfig struct {
	BaseURL string
}

// Load reads the environment and returns the filled configuration.
// Outside docker the .env file is loaded first.
func Load() (*Config, error) {
	environment := os.Getenv("ENVIRONMENT")
	if environment != "docker" {
		// Ignore a missing .env, the variables may be exported directly.
		godotenv.Load()
	}

	cfg := &Config{
		Environment: environment,
		ApiKey:      os.Getenv("RIOT_API_KEY"),
		Server: ServerConfig{
			Port: getEnvDefault("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			DSN:            os.Getenv("DATABASE_DSN"),
			Database:       getEnvDefault("DATABASE_NAME", "legendstats"),
			MigrationsPath: getEnvDefault("MIGRATIONS_PATH", "migrations"),
		},
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getEnvDefault("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Bucket: BucketConfig{
			Region:       os.Getenv("BUCKET_REGION"),
			Endpoint:     os.Getenv("BUCKET_ENDPOINT"),
			AccessKey:    os.Getenv("BUCKET_ACCESS_KEY"),
			AccessSecret: os.Getenv("BUCKET_ACCESS_SECRET"),
			LogBucket:    os.Getenv("BUCKET_LOG_NAME"),
		},
		Analytics: AnalyticsConfig{
			BaseURL: getEnvDefault("ANALYTICS_BASE_URL", "https://cdn.merakianalytics.com/riot/lol/resources/latest/en-US"),
		},
	}

	if cfg.Database.DSN == "" {
		return nil, errors.New("DATABASE_DSN must be set")
	}

	return cfg, nil
}

// getEnvDefault returns the environment value or the fallback when empty.
func getEnvDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
