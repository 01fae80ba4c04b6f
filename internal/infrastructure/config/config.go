package config

import (
	"os"
	"strings"
)

type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendDynamoDB Backend = "dynamodb"
	BackendRedis    Backend = "redis"
)

// Config is read once at startup from the environment (.env is autoloaded by main).
type Config struct {
	Port           string
	Env            string
	LogLevel       string
	Backend        Backend
	Profile        string
	CurrencyLocale string

	DynamoDB DynamoDBConfig
	Redis    RedisConfig
}

// DynamoDBConfig works against AWS or a local DynamoDB.
type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	Table           string
}

type RedisConfig struct {
	Addr           string
	Password       string
	DB             int
	ChangesChannel string
}

// Load reads the supported env vars:
//   - PORT (default: 8080)
//   - ENV, LOG_LEVEL (default: info)
//   - STORE_BACKEND: memory | dynamodb | redis (default: memory)
//   - STORE_PROFILE (default: default)
//   - KV_TABLE, AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, DYNAMODB_ENDPOINT
//   - REDIS_ADDR, REDIS_PASSWORD, REDIS_CHANGES_CHANNEL
//   - CURRENCY_LOCALE (default: en)
func Load() Config {
	return Config{
		Port:           getenvDefault("PORT", "8080"),
		Env:            os.Getenv("ENV"),
		LogLevel:       getenvDefault("LOG_LEVEL", "info"),
		Backend:        ParseBackend(os.Getenv("STORE_BACKEND")),
		Profile:        getenvDefault("STORE_PROFILE", "default"),
		CurrencyLocale: getenvDefault("CURRENCY_LOCALE", "en"),
		DynamoDB: DynamoDBConfig{
			Region: getenvDefault("AWS_REGION", "us-east-1"),
			// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			Table:           getenvDefault("KV_TABLE", "storefront_kv"),
		},
		Redis: RedisConfig{
			Addr:           getenvDefault("REDIS_ADDR", "localhost:6379"),
			Password:       os.Getenv("REDIS_PASSWORD"),
			ChangesChannel: getenvDefault("REDIS_CHANGES_CHANNEL", "storefront:changes"),
		},
	}
}

// ParseBackend falls back to memory for empty or unknown values.
func ParseBackend(s string) Backend {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case BackendDynamoDB, BackendRedis:
		return b
	default:
		return BackendMemory
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
