package requests

import (
	"sync"
	"time"
)

// Default Riot development limits.
const (
	lowerLimitCount     = 20
	lowerLimitInterval  = time.Second
	higherLimitCount    = 100
	higherLimitInterval = 2 * time.Minute

	// Spacing between background job requests.
	// Slow enough to let every window recover while a job runs.
	jobFetchInterval = 1200 * time.Millisecond
)

// Single rate limit window.
type limitWindow struct {
	limit         int
	resetInterval time.Duration
	count         int
	lastReset     time.Time
}

// RateLimiter holds every window the Riot API enforces.
type RateLimiter struct {
	windows []*limitWindow

	// Fetch interval for the background jobs.
	fetchInterval time.Duration

	lastFetch time.Time
	mu        sync.Mutex
}

// Create a instance of the rate limiter.
func CreateRateLimiter() *RateLimiter {
	now := time.Now()
	return &RateLimiter{
		windows: []*limitWindow{
			{
				limit:         lowerLimitCount,
				resetInterval: lowerLimitInterval,
				lastReset:     now,
			},
			{
				limit:         higherLimitCount,
				resetInterval: higherLimitInterval,
				lastReset:     now,
			},
		},
		fetchInterval: jobFetchInterval,
		lastFetch:     now,
	}
}

// Reset any window whose interval already elapsed.
func (r *RateLimiter) resetCounts() {
	now := time.Now()
	for _, window := range r.windows {
		if now.Sub(window.lastReset) >= window.resetInterval {
			window.count = 0
			window.lastReset = now
		}
	}
}

// Check if every window still has budget.
func (r *RateLimiter) checkLimits() bool {
	for _, window := range r.windows {
		if window.count >= window.limit {
			return false
		}
	}
	return true
}

func (r *RateLimiter) incrementCounts() {
	for _, window := range r.windows {
		window.count++
	}
}

// WaitApi blocks until a on demand request can run.
func (r *RateLimiter) WaitApi() {
	for {
		r.mu.Lock()
		r.resetCounts()
		if r.checkLimits() {
			r.incrementCounts()
			r.mu.Unlock()
			return
		}
		waitTime := r.nextReset()
		r.mu.Unlock()
		time.Sleep(waitTime)
	}
}

// WaitJob blocks until a background request can run.
// Jobs are spaced out by the fetch interval on top of the windows.
func (r *RateLimiter) WaitJob() {
	for {
		r.mu.Lock()
		r.resetCounts()
		sinceLast := time.Since(r.lastFetch)
		if sinceLast >= r.fetchInterval && r.checkLimits() {
			r.incrementCounts()
			r.lastFetch = time.Now()
			r.mu.Unlock()
			return
		}

		waitTime := r.fetchInterval - sinceLast
		if reset := r.nextReset(); reset > waitTime {
			waitTime = reset
		}
		r.mu.Unlock()
		if waitTime > 0 {
			time.Sleep(waitTime)
		}
	}
}

// Longest wait until a exhausted window resets.
// Must be called with the mutex held.
func (r *RateLimiter) nextReset() time.Duration {
	var waitTime time.Duration
	for _, window := range r.windows {
		if window.count < window.limit {
			continue
		}
		waitTill := window.resetInterval - time.Since(window.lastReset)
		if waitTill > waitTime {
			waitTime = waitTill
		}
	}
	return waitTime
}
