package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// RateLimiter applies a per-client token bucket keyed by client IP.
// Stale limiters are dropped by a background sweep so the map does not grow
// without bound.
type RateLimiter struct {
	logger  *logrus.Logger
	limit   rate.Limit
	burst   int
	clients map[string]*clientLimiter
	mu      sync.Mutex
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a new rate limiter with the given per-second rate
// and burst allowance.
func NewRateLimiter(logger *logrus.Logger, perSecond float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		logger:  logger,
		limit:   rate.Limit(perSecond),
		burst:   burst,
		clients: make(map[string]*clientLimiter),
	}

	go rl.sweep()

	return rl
}

// Handler returns the gin middleware enforcing the limit.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			rl.logger.WithFields(logrus.Fields{
				"client_ip":      c.ClientIP(),
				"path":           c.Request.URL.Path,
				"correlation_id": c.GetString("correlation_id"),
			}).Warn("Rate limit exceeded")
			rateLimitAbort(c)
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.clients[clientIP]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[clientIP] = cl
	}
	cl.lastSeen = time.Now()

	return cl.limiter.Allow()
}

func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-15 * time.Minute)

		rl.mu.Lock()
		for ip, cl := range rl.clients {
			if cl.lastSeen.Before(cutoff) {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}
