package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const clientIdleTTL = 3 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit is a middleware factory that limits requests per client IP.
// Stale client entries are pruned on access.
func RateLimit(limit rate.Limit, burst int, logger *slog.Logger) func(http.Handler) http.Handler {
	var mu sync.Mutex
	clients := make(map[string]*client)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			mu.Lock()
			now := time.Now()
			c, ok := clients[host]
			if !ok {
				for addr, entry := range clients {
					if now.Sub(entry.lastSeen) > clientIdleTTL {
						delete(clients, addr)
					}
				}
				c = &client{limiter: rate.NewLimiter(limit, burst)}
				clients[host] = c
			}
			c.lastSeen = now
			allowed := c.limiter.Allow()
			mu.Unlock()

			if !allowed {
				logger.Warn("rate limit exceeded", "remote_addr", r.RemoteAddr)
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
