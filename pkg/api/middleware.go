package api

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/switchyard-ai/switchyard/pkg/config"
	"github.com/switchyard-ai/switchyard/pkg/events"
)

const requestIDKey = "request_id"

// requestID assigns every request a correlation id, honoring one the
// client already carries, and echoes it back in the response. The id
// rides on the request context so events published during the request
// carry it as their correlation_id.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Request = c.Request.WithContext(events.WithCorrelationID(c.Request.Context(), id))
		c.Next()
	}
}

// requestIDFrom returns the id assigned by the requestID middleware.
func requestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// accessLog emits one structured line per request after it completes.
func accessLog(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
			"request_id", requestIDFrom(c))
	}
}

// recovery converts handler panics into a 500 response. The process
// keeps serving; only genuinely unrecoverable states should crash it.
func recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("handler panic",
					"panic", r,
					"path", c.Request.URL.Path,
					"request_id", requestIDFrom(c),
					"stack", string(debug.Stack()))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					newErrorResponse("internal", "internal server error"))
			}
		}()
		c.Next()
	}
}

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		c.Next()
	}
}

// ─────────────────────────────────────────────────────────────────────
// Per-client rate limiting
// ─────────────────────────────────────────────────────────────────────

// clientLimiter is one client IP's token bucket plus the bookkeeping the
// idle sweep needs.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter throttles requests per client IP. Buckets refill at the
// configured per-minute rate; a background sweep drops buckets that have
// been idle long enough, the same way the lock manager reclaims entries.
type ipRateLimiter struct {
	logger *slog.Logger

	mu      sync.Mutex
	clients map[string]*clientLimiter

	limit rate.Limit
	burst int
	idle  time.Duration

	stopOnce sync.Once
	stopCh   chan struct{}
}

func newIPRateLimiter(cfg config.RateLimitConfig, logger *slog.Logger) *ipRateLimiter {
	if logger == nil {
		logger = slog.Default()
	}
	idle := cfg.IdleEviction
	if idle <= 0 {
		idle = 10 * time.Minute
	}
	l := &ipRateLimiter{
		logger:  logger.With("component", "rate_limiter"),
		clients: make(map[string]*clientLimiter),
		limit:   rate.Limit(float64(cfg.RequestsPerMinute) / 60.0),
		burst:   cfg.Burst,
		idle:    idle,
		stopCh:  make(chan struct{}),
	}
	go l.sweepLoop()
	return l
}

func (l *ipRateLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				newErrorResponse("rate_limited", "too many requests"))
			return
		}
		c.Next()
	}
}

func (l *ipRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	cl, ok := l.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = cl
	}
	cl.lastSeen = time.Now()
	l.mu.Unlock()

	return cl.limiter.Allow()
}

func (l *ipRateLimiter) sweepLoop() {
	ticker := time.NewTicker(l.idle)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopCh:
			return
		case now := <-ticker.C:
			l.evictIdle(now)
		}
	}
}

func (l *ipRateLimiter) evictIdle(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	evicted := 0
	for ip, cl := range l.clients {
		if now.Sub(cl.lastSeen) >= l.idle {
			delete(l.clients, ip)
			evicted++
		}
	}
	if evicted > 0 {
		l.logger.Debug("evicted idle rate limiter entries",
			"evicted", evicted, "remaining", len(l.clients))
	}
}

func (l *ipRateLimiter) stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}

// size reports how many client buckets are live. Test hook.
func (l *ipRateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}
