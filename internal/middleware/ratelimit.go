// Package middleware provides HTTP middleware for the futbolpath API.
package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// maxClients caps the number of tracked client IPs.
const maxClients = 100_000

// Idle clients are evicted after clientTTL; the sweep runs every sweepInterval.
const (
	clientTTL     = 10 * time.Minute
	sweepInterval = 5 * time.Minute
)

// RateLimiter applies a token bucket per client IP.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a RateLimiter allowing ratePerSec sustained requests
// per IP with the given burst. Idle clients are swept until ctx is cancelled.
func NewRateLimiter(ctx context.Context, ratePerSec float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		limit:   rate.Limit(ratePerSec),
		burst:   burst,
	}
	go rl.sweep(ctx)

	return rl
}

func (rl *RateLimiter) sweep(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for ip, cl := range rl.clients {
				if now.Sub(cl.lastSeen) > clientTTL {
					delete(rl.clients, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// limiterFor returns the limiter for ip, or nil when the client table is full.
func (rl *RateLimiter) limiterFor(ip string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.clients[ip]
	if !ok {
		if len(rl.clients) >= maxClients {
			return nil
		}

		cl = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = cl
	}

	cl.lastSeen = now

	return cl.limiter
}

// Handler returns Gin middleware that rejects clients over their rate with 429.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// ClientIP ignores forwarding headers because the router trusts no proxies.
		now := time.Now()

		lim := rl.limiterFor(c.ClientIP(), now)
		if lim == nil {
			respondError(c, http.StatusTooManyRequests, errCodeRateLimited, "too many clients")

			return
		}

		r := lim.ReserveN(now, 1)
		if !r.OK() {
			respondError(c, http.StatusTooManyRequests, errCodeRateLimited, "rate limit exceeded")

			return
		}

		if delay := r.DelayFrom(now); delay > 0 {
			r.CancelAt(now)
			c.Header("Retry-After", strconv.Itoa(int(delay.Seconds())+1))
			respondError(c, http.StatusTooManyRequests, errCodeRateLimited, "rate limit exceeded")

			return
		}

		c.Next()
	}
}
