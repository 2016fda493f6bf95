package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jobify-dev/jobs-api/utils"
	"golang.org/x/time/rate"
)

const rateLimitMsg = "Too many requests from this IP, please try again after 15 minutes!"

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client IP with a token bucket that
// allows max requests per window.
type RateLimiter struct {
	mu         sync.Mutex
	visitors   map[string]*visitor
	every      rate.Limit
	burst      int
	window     time.Duration
	trustProxy bool
	lastPrune  time.Time
	now        func() time.Time
}

func NewRateLimiter(max int, window time.Duration, trustProxy bool) *RateLimiter {
	if max < 1 {
		max = 1
	}
	return &RateLimiter{
		visitors:   map[string]*visitor{},
		every:      rate.Every(window / time.Duration(max)),
		burst:      max,
		window:     window,
		trustProxy: trustProxy,
		now:        time.Now,
	}
}

// Allow reports whether a request from key may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastPrune) > rl.window {
		for k, v := range rl.visitors {
			if now.Sub(v.lastSeen) > rl.window {
				delete(rl.visitors, k)
			}
		}
		rl.lastPrune = now
	}

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.every, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// Middleware rejects requests over the limit with 429.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(ClientIP(r, rl.trustProxy)) {
			utils.WriteMessage(w, http.StatusTooManyRequests, rateLimitMsg)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientIP returns the caller address. With trustProxy, the hop appended by
// the nearest proxy in X-Forwarded-For is used.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			hops := strings.Split(fwd, ",")
			if ip := strings.TrimSpace(hops[len(hops)-1]); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
