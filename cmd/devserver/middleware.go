package main

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"codeberg.org/critique/client/internal/auth"
	"codeberg.org/critique/client/internal/errors"
)

// permissive CORS for local development: the production service fronts
// a browser client, so the stub mirrors that surface
func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}

	return cors.New(cfg)
}

// per-client rate limit on the analysis endpoint. Analysis is expensive
// upstream; the stub enforces the same politeness the real service does.
func RateLimitMiddleware() gin.HandlerFunc {
	rate := limiter.Rate{
		Period: time.Minute,
		Limit:  30,
	}

	instance := limiter.New(memory.NewStore(), rate)

	return mgin.NewMiddleware(instance,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			errors.TooManyRequests(c, "")
		}),
	)
}

// validates the bearer token when a shared secret is configured;
// a no-op otherwise so unauthenticated local development keeps working
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			errors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if err := auth.ValidateToken(secret, token); err != nil {
			errors.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Next()
	}
}
