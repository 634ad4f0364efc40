package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads the portal configuration. In the local environment the
// given .env file is read first; real environment variables always win.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	if v.GetString("APP_ENV") == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "redlab-portal")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "development")

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NATS_URL", "nats://localhost:4222")

	v.SetDefault("JWT_EXPIRATION", 720)
	v.SetDefault("JWT_ISSUER", "redlab-portal")

	v.SetDefault("UPSTREAM_BASE_URL", "https://redtestlab.com/api")
	v.SetDefault("UPSTREAM_TIMEOUT", "15s")
	v.SetDefault("UPSTREAM_MAX_GET_RETRIES", 2)
	v.SetDefault("UPSTREAM_BREAKER_TIMEOUT", "30s")

	v.SetDefault("COLLECTION_OTP_SEND_INTERVAL", "30s")
	v.SetDefault("COLLECTION_CACHE_TTL", "12h")

	v.SetDefault("LOCK_COLLECTION_TTL", "90s")
	v.SetDefault("LOCK_PAYOUT_TTL", "90s")

	v.SetDefault("MEDIA_FOLDER", "redlab")
	v.SetDefault("MEDIA_MAX_SIZE_BYTES", 10<<20)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NATS config
	configs.NATS.URL = v.GetString("NATS_URL")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// Lab API
	configs.Upstream.BaseURL = strings.TrimRight(v.GetString("UPSTREAM_BASE_URL"), "/")
	configs.Upstream.Timeout = v.GetDuration("UPSTREAM_TIMEOUT")
	configs.Upstream.MaxGetRetries = v.GetInt("UPSTREAM_MAX_GET_RETRIES")
	configs.Upstream.BreakerTimeout = v.GetDuration("UPSTREAM_BREAKER_TIMEOUT")

	// Collection workflow
	configs.Collection.OTPSendInterval = v.GetDuration("COLLECTION_OTP_SEND_INTERVAL")
	configs.Collection.CacheTTL = v.GetDuration("COLLECTION_CACHE_TTL")

	// Locks never expire before the lab API calls they guard can finish
	floor := LockFloor(configs.Upstream)
	configs.Locks.CollectionTTL = atLeast(v.GetDuration("LOCK_COLLECTION_TTL"), floor)
	configs.Locks.PayoutTTL = atLeast(v.GetDuration("LOCK_PAYOUT_TTL"), floor)

	// Media
	configs.Media.CloudName = v.GetString("MEDIA_CLOUD_NAME")
	configs.Media.APIKey = v.GetString("MEDIA_API_KEY")
	configs.Media.APISecret = v.GetString("MEDIA_API_SECRET")
	configs.Media.UploadPreset = v.GetString("MEDIA_UPLOAD_PRESET")
	configs.Media.Folder = v.GetString("MEDIA_FOLDER")
	configs.Media.MaxSizeBytes = v.GetInt64("MEDIA_MAX_SIZE_BYTES")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}

const (
	defaultUpstreamTimeout = 15 * time.Second
	// longest pause between GET retries, the 5s backoff cap plus jitter
	maxRetryPause = 6 * time.Second
	lockMargin    = 5 * time.Second
)

// LockFloor is the shortest lock TTL that outlives one locked action: a GET
// with all of its retries and their pauses, then one write.
func LockFloor(u models.UpstreamConfig) time.Duration {
	timeout := u.Timeout
	if timeout <= 0 {
		timeout = defaultUpstreamTimeout
	}
	retries := u.MaxGetRetries
	if retries < 0 {
		retries = 0
	}
	return time.Duration(retries+2)*timeout + time.Duration(retries)*maxRetryPause + lockMargin
}

func atLeast(d, floor time.Duration) time.Duration {
	if d < floor {
		log.Printf("lock ttl %s is below the lab API budget, using %s", d, floor)
		return floor
	}
	return d
}

// SessionTTL is the lifetime shared by portal JWTs and their Redis sessions
func SessionTTL(cfg *models.Config) time.Duration {
	if cfg.JWT.Expiration <= 0 {
		return 12 * time.Hour
	}
	return time.Duration(cfg.JWT.Expiration) * time.Minute
}
