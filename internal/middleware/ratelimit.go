package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// IPRateLimiter limits requests per client IP using a token bucket per IP.
// Buckets idle long enough to have refilled are dropped, so the map only
// holds clients seen recently.
type IPRateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type visitor struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewIPRateLimiter creates a per-IP rate limiter. limit is events per second;
// burst is max tokens per bucket.
func NewIPRateLimiter(limit rate.Limit, burst int) *IPRateLimiter {
	idle := time.Minute
	if limit > 0 {
		if refill := time.Duration(float64(burst) / float64(limit) * float64(time.Second)); refill > idle {
			idle = refill
		}
	}
	return &IPRateLimiter{
		visitors:  make(map[string]*visitor),
		limit:     limit,
		burst:     burst,
		idle:      idle,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// PerMinute returns a limiter allowing n form submissions per minute per IP,
// with a burst of up to n.
func PerMinute(n int) *IPRateLimiter {
	return NewIPRateLimiter(rate.Limit(float64(n)/60.0), n)
}

func (l *IPRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idle {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) >= l.idle {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{lim: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.lim.AllowN(now, 1)
}

// tracked reports how many client buckets are held.
func (l *IPRateLimiter) tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

// clientIP strips the port from RemoteAddr. Run chi's RealIP first so proxied
// requests are keyed by the forwarded address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Middleware answers 429 through onError when the client IP exceeds the rate.
// Mount it ahead of Session so a throttled client never holds a connection.
func (l *IPRateLimiter) Middleware(onError ErrorPage) func(http.Handler) http.Handler {
	retryAfter := strconv.Itoa(int(l.idle / time.Second))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.allow(clientIP(r)) {
				w.Header().Set("Retry-After", retryAfter)
				onError.answer(w, r, http.StatusTooManyRequests, "Too many submissions, try again shortly")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
