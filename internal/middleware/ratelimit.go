package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"javaconnect/internal/models"
)

// CheckRateLimit checks if a resource has exceeded its rate limit. Returns
// true if the request is allowed. Rate limiting is disabled when APP_ENV is
// "test" or "development" so local workflows are not throttled.
func CheckRateLimit(ctx context.Context, rdb *redis.Client, resource, id string, limit int, window time.Duration) (bool, error) {
	env := os.Getenv("APP_ENV")
	if env == "" || env == "test" || env == "development" {
		return true, nil
	}

	if rdb == nil {
		return false, fmt.Errorf("redis client is nil")
	}

	key := fmt.Sprintf("rl:%s:%s", resource, id)

	cnt, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if cnt == 1 {
		rdb.Expire(ctx, key, window)
	}
	return cnt <= int64(limit), nil
}

// RateLimit returns a Fiber middleware enforcing `limit` requests per `window`
// for the named resource. It keys by authenticated userID when available,
// otherwise by remote IP, and fails open when Redis is unavailable.
func RateLimit(rdb *redis.Client, limit int, window time.Duration, name ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var id string
		if uid := c.Locals("userID"); uid != nil {
			id = fmt.Sprintf("user:%v", uid)
		} else {
			id = fmt.Sprintf("ip:%s", c.IP())
		}

		resource := c.Path()
		if len(name) > 0 {
			resource = name[0]
		}

		allowed, err := CheckRateLimit(c.Context(), rdb, resource, id, limit, window)
		if err != nil {
			// Fail open: log and let the request through.
			Logger.WarnContext(c.UserContext(), "rate limit check failed",
				slog.String("resource", resource), slog.String("error", err.Error()))
			return c.Next()
		}
		if !allowed {
			return models.RespondWithError(c, fiber.StatusTooManyRequests,
				models.NewValidationError("Too many requests, please try again later"))
		}

		return c.Next()
	}
}
