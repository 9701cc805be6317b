// Package config defines process configuration and its loading order.
package config

import "github.com/dpetrucci/hackfest/internal/storage/redis"

// Config contains process configuration for the server binary.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// StorageType selects the persistence backend: memory or redis.
	StorageType string `koanf:"storage_type"`

	// RedisURL is the Redis connection URL when storage_type is redis.
	RedisURL string `koanf:"redis_url"`

	// RedisPoolSize and RedisMinIdleConns tune the Redis client pool.
	RedisPoolSize     int `koanf:"redis_pool_size"`
	RedisMinIdleConns int `koanf:"redis_min_idle_conns"`

	// SessionHours is the organizer session lifetime in hours.
	SessionHours int `koanf:"session_hours"`
}

// New returns a Config with defaults.
func New() *Config {
	rd := redis.DefaultConfig()
	return &Config{
		LogLevel:          "info",
		Addr:              ":8080",
		StorageType:       "memory",
		RedisURL:          rd.URL,
		RedisPoolSize:     rd.PoolSize,
		RedisMinIdleConns: rd.MinIdleConns,
		SessionHours:      24,
	}
}

// RedisConfig maps the flat settings onto the Redis adapter config.
func (c *Config) RedisConfig() redis.Config {
	return redis.Config{
		URL:          c.RedisURL,
		PoolSize:     c.RedisPoolSize,
		MinIdleConns: c.RedisMinIdleConns,
	}
}
