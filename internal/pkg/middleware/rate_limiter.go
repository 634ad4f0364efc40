package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Key         string        // Key prefix for Redis
	Limit       int           // Maximum number of requests
	Period      time.Duration // Time period for the limit
	Logger      *logger.ZapLogger
}

// RateLimiterMiddleware counts requests per route and client in fixed
// Redis windows
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if sid := c.Get("subject_id"); sid != nil {
				identifier = fmt.Sprintf("%v", sid)
			}

			key := fmt.Sprintf("%s:%s:%s", config.Key, c.Path(), identifier)
			ctx := c.Request().Context()

			count64, err := config.RedisClient.Incr(ctx, key).Result()
			if err == nil && count64 == 1 {
				err = config.RedisClient.Expire(ctx, key, config.Period).Err()
			}
			if err != nil {
				// fail open, the lab API has its own limits
				if config.Logger != nil {
					config.Logger.Warn("Rate limiter unavailable", logger.Err(err))
				}
				return next(c)
			}

			count := int(count64)
			remaining := config.Limit - count
			if remaining < 0 {
				remaining = 0
			}

			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if count > config.Limit {
				wait, err := config.RedisClient.TTL(ctx, key).Result()
				if err != nil || wait < 0 {
					wait = config.Period
				}
				c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(wait).Unix(), 10))
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(wait.Seconds()), 10))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Too many attempts, please try again later")
			}

			return next(c)
		}
	}
}

// IPRateLimiter limits requests per client IP, used on the login routes
func IPRateLimiter(limit int, period time.Duration, redisClient *redis.Client, log *logger.ZapLogger) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         "rate:ip",
		Limit:       limit,
		Period:      period,
		Logger:      log,
	})
}
