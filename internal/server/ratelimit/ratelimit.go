// Package ratelimit provides rate limiting functionality using token bucket algorithm.
package ratelimit

import (
	"sync"
	"time"
)

// bucket tracks the token balance for one client and endpoint pair.
// lastRefill doubles as the last-access timestamp used by cleanup.
type bucket struct {
	mu         sync.Mutex
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
}

func newBucket(capacity int, refillRate float64) *bucket {
	return &bucket{
		capacity:   float64(capacity),
		refillRate: refillRate,
		tokens:     float64(capacity), // Start with full bucket
		lastRefill: time.Now(),
	}
}

// take refills the bucket for elapsed time and consumes one token if available.
func (b *bucket) take() (allowed bool, remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate)
	b.lastRefill = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		allowed = true
	}

	remaining = int(b.tokens)
	if b.tokens < b.capacity {
		secondsUntilFull := (b.capacity - b.tokens) / b.refillRate
		reset = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	} else {
		reset = now
	}

	return allowed, remaining, reset
}

func (b *bucket) idleSince() time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastRefill
}

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter manages token buckets for client and endpoint pairs.
type Limiter struct {
	mu            sync.RWMutex
	buckets       map[string]*bucket
	config        *Config
	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}

	// Start cleanup goroutine if enabled
	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow checks whether a request from the given client is allowed for the
// path and method. Buckets are keyed by the matched endpoint pattern, so all
// paths under one pattern share a budget; unmatched paths share the default
// budget per method.
func (l *Limiter) Allow(clientID string, path string, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	endpoint := MatchEndpoint(path, method, l.config.Endpoints)
	if endpoint == nil {
		endpoint = &EndpointConfig{
			Method: method,
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
		}
	}

	// Unlimited endpoint (e.g. health check)
	if endpoint.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	key := clientID + ":" + method + ":" + endpoint.Path
	b := l.getBucket(key, endpoint)

	allowed, remaining, reset := b.take()

	var retryAfter time.Duration
	if !allowed {
		retryAfter = time.Until(reset)
		if retryAfter < 0 {
			retryAfter = 0
		}
	}

	return allowed, Info{
		Allowed:    allowed,
		Limit:      endpoint.Limit,
		Remaining:  remaining,
		ResetTime:  reset,
		RetryAfter: retryAfter,
	}
}

// getBucket gets or creates a token bucket for the given key.
func (l *Limiter) getBucket(key string, endpoint *EndpointConfig) *bucket {
	l.mu.RLock()
	b, exists := l.buckets[key]
	l.mu.RUnlock()

	if exists {
		return b
	}

	capacity := endpoint.Burst
	if capacity <= 0 {
		capacity = endpoint.Limit
	}
	refillRate := float64(endpoint.Limit) / endpoint.Window.Seconds()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock
	if existing, exists := l.buckets[key]; exists {
		return existing
	}
	b = newBucket(capacity, refillRate)
	l.buckets[key] = b
	return b
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.removeIdleBuckets()
		case <-l.cleanupStop:
			return
		}
	}
}

// removeIdleBuckets drops buckets that have not been touched in over an hour.
func (l *Limiter) removeIdleBuckets() {
	cutoff := time.Now().Add(-1 * time.Hour)

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, b := range l.buckets {
		if b.idleSince().Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop stops the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
