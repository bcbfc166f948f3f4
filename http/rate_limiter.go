package http

import (
	"sync"
	"time"
)

const (
	staleBucketAge  = 1 * time.Hour
	cleanupInterval = 30 * time.Minute
)

type tokenBucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter grants each client IP a fixed number of requests per refill
// window. Buckets idle for over an hour are dropped by a background sweep.
type RateLimiter struct {
	mu        sync.Mutex
	capacity  int
	refillDur time.Duration
	buckets   map[string]*tokenBucket
	stop      chan struct{}
}

func NewRateLimiter(capacity int, refillDur time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:  capacity,
		refillDur: refillDur,
		buckets:   make(map[string]*tokenBucket),
		stop:      make(chan struct{}),
	}
	go rl.sweepLoop()
	return rl
}

func (r *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep()
		case <-r.stop:
			return
		}
	}
}

func (r *RateLimiter) sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for ip, bucket := range r.buckets {
		if now.Sub(bucket.lastRefill) > staleBucketAge {
			delete(r.buckets, ip)
		}
	}
}

// Stop ends the background sweep.
func (r *RateLimiter) Stop() {
	close(r.stop)
}

// Allow reports whether the client may make another request now.
func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	bucket, exists := r.buckets[ip]
	if !exists {
		r.buckets[ip] = &tokenBucket{
			tokens:     r.capacity - 1,
			lastRefill: now,
		}
		return true
	}

	if now.Sub(bucket.lastRefill) >= r.refillDur {
		bucket.tokens = r.capacity
		bucket.lastRefill = now
	}

	if bucket.tokens <= 0 {
		return false
	}

	bucket.tokens--
	return true
}
