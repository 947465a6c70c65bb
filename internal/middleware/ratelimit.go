package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// client tracks one IP's request count inside the current window.
type client struct {
	lastSeen time.Time
	count    int
}

// In-memory per-IP rate limiting state. Good enough for a single instance;
// a multi-instance deployment would need a shared store.
var (
	clients         = make(map[string]*client)
	window          = time.Minute
	limit           = 120
	rateLimiterLock sync.Mutex
)

// RateLimiter caps requests per client IP at `limit` per `window`,
// answering 429 once the cap is exceeded.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rateLimiterLock.Lock()
		cl, ok := clients[ip]
		if !ok || now.Sub(cl.lastSeen) > window {
			cl = &client{lastSeen: now, count: 1}
			clients[ip] = cl
		} else {
			cl.count++
			cl.lastSeen = now
		}
		exceeded := cl.count > limit
		rateLimiterLock.Unlock()

		if exceeded {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
