package models

import "time"

// Config represents application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Redis      RedisConfig
	NATS       NATSConfig
	JWT        JWTConfig
	Upstream   UpstreamConfig
	Collection CollectionConfig
	Locks      LockConfig
	Media      MediaConfig
	Logger     LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains portal JWT configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// UpstreamConfig describes the lab REST API every screen is backed by
type UpstreamConfig struct {
	BaseURL        string
	Timeout        time.Duration
	MaxGetRetries  int
	BreakerTimeout time.Duration
}

// CollectionConfig tunes the delivery-portal OTP workflow
type CollectionConfig struct {
	OTPSendInterval time.Duration // minimum spacing between OTP sends for a booking
	CacheTTL        time.Duration // lifetime of an agent's booking cache
}

// LockConfig sizes the Redis locks held around lab API writes. Each TTL also
// bounds the work done under its lock.
type LockConfig struct {
	CollectionTTL time.Duration // per-booking OTP actions
	PayoutTTL     time.Duration // per-lab payout requests
}

// MediaConfig contains asset host configuration
type MediaConfig struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPreset string
	Folder       string
	MaxSizeBytes int64
}

// LoggerConfig contains zap logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
