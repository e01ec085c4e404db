package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/wansing/blog/metrics"
	"golang.org/x/time/rate"
)

// Limiters of clients which have been idle for longer than idleTimeout are dropped.
const idleTimeout = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter limits requests per client ip using a token bucket per ip.
type IPRateLimiter struct {
	ips       map[string]*visitor
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

// NewIPRateLimiter creates a per-ip rate limiter which allows perMinute requests per minute.
func NewIPRateLimiter(perMinute, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		ips:       make(map[string]*visitor),
		limit:     rate.Limit(float64(perMinute) / 60.0),
		burst:     burst,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (l *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > idleTimeout {
		l.sweep(now)
	}

	v, ok := l.ips[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.ips[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// sweep must be called with l.mu held.
func (l *IPRateLimiter) sweep(now time.Time) {
	for ip, v := range l.ips {
		if now.Sub(v.lastSeen) > idleTimeout {
			delete(l.ips, ip)
		}
	}
	l.lastSweep = now
}

// clientIP strips the port from RemoteAddr. Run chi's RealIP middleware before, if the server is behind a proxy.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// Allow reports whether the client of r may make another request now.
func (l *IPRateLimiter) Allow(r *http.Request) bool {
	if l.getLimiter(clientIP(r)).Allow() {
		return true
	}
	metrics.RateLimited.Inc()
	return false
}
