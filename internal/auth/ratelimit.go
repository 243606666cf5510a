package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// LoginLimiter is a fixed-window rate limiter backed by Redis, applied to the
// credential endpoints. It fails open when Redis is unreachable so a cache
// outage cannot lock everyone out.
type LoginLimiter struct {
	rdb    *redis.Client
	logger *zap.Logger
	limit  int
	window time.Duration
	prefix string
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// NewLoginLimiter constructs the limiter.
func NewLoginLimiter(rdb *redis.Client, logger *zap.Logger, limit int, window time.Duration) *LoginLimiter {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LoginLimiter{rdb: rdb, logger: logger, limit: limit, window: window, prefix: "login_rl"}
}

// Handle enforces the per-client window.
func (rl *LoginLimiter) Handle(c *fiber.Ctx) error {
	if rl == nil || rl.rdb == nil {
		return c.Next()
	}

	key := rl.prefix + ":" + clientKey(c)
	count, err := rl.incr(c.Context(), key)
	if err != nil {
		rl.logger.Warn("login rate limiter unavailable", zap.Error(err))
		return c.Next()
	}
	if count > int64(rl.limit) {
		return fiber.NewError(http.StatusTooManyRequests, "too many login attempts")
	}
	return c.Next()
}

func (rl *LoginLimiter) incr(ctx context.Context, key string) (int64, error) {
	return fixedWindowScript.Run(ctx, rl.rdb, []string{key}, rl.window.Milliseconds()).Int64()
}

func clientKey(c *fiber.Ctx) string {
	if fwd := c.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.IndexByte(fwd, ','); idx > 0 {
			return strings.TrimSpace(fwd[:idx])
		}
		return strings.TrimSpace(fwd)
	}
	return c.IP()
}
