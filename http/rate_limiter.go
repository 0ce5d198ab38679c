package http

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	clientIdleThreshold = 1 * time.Hour
	cleanupInterval     = 30 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter allows each client IP a number of requests per period, with
// bursts up to that number.
type RateLimiter struct {
	mu          sync.Mutex
	limit       rate.Limit
	burst       int
	clients     map[string]*clientLimiter
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewRateLimiter(requests int, per time.Duration) *RateLimiter {
	requests = max(requests, 1)
	rl := &RateLimiter{
		limit:       rate.Every(per / time.Duration(requests)),
		burst:       requests,
		clients:     make(map[string]*clientLimiter),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

// cleanup forgets clients idle for longer than clientIdleThreshold.
func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for ip, client := range r.clients {
		if now.Sub(client.lastSeen) > clientIdleThreshold {
			delete(r.clients, ip)
		}
	}
}

func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	client, exists := r.clients[ip]
	if !exists {
		client = &clientLimiter{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.clients[ip] = client
	}
	client.lastSeen = now

	return client.limiter.AllowN(now, 1)
}
