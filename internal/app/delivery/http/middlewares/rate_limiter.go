package middlewares

import (
	"errors"
	"net"
	"net/http"
	"openhours-service/internal/pkg/exceptions"
	"openhours-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const minSweepInterval = time.Minute

var errClientBlocked = errors.New("client is temporarily blocked")

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per-IP token bucket. A client that drains its bucket is
// blocked for blockTime. Clients idle for longer than the sweep interval are
// forgotten, so memory is bounded by the clients seen within that window.
type RateLimiter struct {
	log       *zap.Logger
	clients   map[string]*clientLimiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewRateLimiter(logger *zap.Logger, rps int, per, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		log:       logger,
		clients:   make(map[string]*clientLimiter),
		blocked:   make(map[string]time.Time),
		requests:  rps,
		per:       per,
		blockTime: blockTime,
		now:       time.Now,
		lastSweep: time.Now(),
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		now := r.now()
		r.mu.Lock()
		r.sweep(now)

		if blockedUntil, found := r.blocked[ip]; found {
			if now.Before(blockedUntil) {
				r.mu.Unlock()
				utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(errClientBlocked))
				return
			}

			delete(r.blocked, ip)
		}

		client, exists := r.clients[ip]
		if !exists {
			client = &clientLimiter{
				limiter: rate.NewLimiter(rate.Every(r.per/time.Duration(max(r.requests, 1))), r.requests),
			}
			r.clients[ip] = client
		}
		client.lastSeen = now
		allowed := client.limiter.AllowN(now, 1)
		if !allowed {
			r.blocked[ip] = now.Add(r.blockTime)
		}

		r.mu.Unlock()

		if !allowed {
			utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(errClientBlocked))
			return
		}

		next.ServeHTTP(w, req)
	})
}

// sweepInterval is never shorter than per, the time an idle bucket needs to
// refill, so dropping an idle client loses no state.
func (r *RateLimiter) sweepInterval() time.Duration {
	return max(r.per, r.blockTime, minSweepInterval)
}

// sweep drops idle clients and expired blocks. Caller holds r.mu.
func (r *RateLimiter) sweep(now time.Time) {
	interval := r.sweepInterval()
	if now.Sub(r.lastSweep) < interval {
		return
	}
	r.lastSweep = now

	for ip, client := range r.clients {
		if now.Sub(client.lastSeen) >= interval {
			delete(r.clients, ip)
		}
	}
	for ip, blockedUntil := range r.blocked {
		if !now.Before(blockedUntil) {
			delete(r.blocked, ip)
		}
	}
}
