package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/portfolio-backend/internal/errs"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "ratelimit"

// RateLimitMiddleware implements a fixed-window counter per client IP in Redis.
type RateLimitMiddleware struct {
	server *server.Server
	redis  redis.Cmdable
	now    func() time.Time
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	r := &RateLimitMiddleware{
		server: s,
		now:    time.Now,
	}
	if s.Redis != nil {
		r.redis = s.Redis
	}
	return r
}

// Limit allows limit requests per window and client IP on the named endpoint.
// When Redis is unreachable requests are let through.
func (r *RateLimitMiddleware) Limit(endpoint string, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if r.redis == nil || limit <= 0 {
				return next(c)
			}

			allowed, err := r.allow(c.Request().Context(), endpoint, c.RealIP(), limit, window)
			if err != nil {
				GetLogger(c).Warn().
					Err(err).
					Str("endpoint", endpoint).
					Msg("rate limiter unavailable, allowing request")
				return next(c)
			}

			if !allowed {
				r.RecordRateLimitHit(endpoint)
				GetLogger(c).Warn().
					Str("endpoint", endpoint).
					Msg("rate limit exceeded")
				return errs.NewTooManyRequestsError("Too many requests")
			}

			return next(c)
		}
	}
}

func (r *RateLimitMiddleware) allow(ctx context.Context, endpoint, ip string, limit int, window time.Duration) (bool, error) {
	bucket := r.now().UnixNano() / int64(window)
	key := fmt.Sprintf("%s:%s:%s:%d", rateLimitKeyPrefix, endpoint, ip, bucket)

	count, err := r.redis.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := r.redis.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(limit), nil
}

// RecordRateLimitHit sends a RateLimitHit event to New Relic when enabled.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if app := r.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("RateLimitHit", map[string]any{
			"endpoint": endpoint,
		})
	}
}
