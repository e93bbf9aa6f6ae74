package cache

import (
	"context"
	"sync"
	"time"
)

// MemCache is a in-memory cache with small TTLs sitting in front of
// Redis, so hot keys don't leave the process at all.
type MemCache struct {
	entries       sync.Map
	cleanupTicker *time.Ticker
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
}

type memCacheItem struct {
	value     any
	expiresAt time.Time
}

// NewMemCache creates a new memory cache with it's cleanup worker.
func NewMemCache() *MemCache {
	ctx, cancel := context.WithCancel(context.Background())
	mc := &MemCache{
		cancel:        cancel,
		cleanupTicker: time.NewTicker(5 * time.Minute),
		ctx:           ctx,
	}
	mc.startCleanupWorker()

	return mc
}

func (mc *MemCache) startCleanupWorker() {
	mc.wg.Add(1)
	go func() {
		defer mc.wg.Done()
		for {
			select {
			case <-mc.cleanupTicker.C:
				mc.cleanup()
			case <-mc.ctx.Done():
				return
			}
		}
	}()
}

// cleanup drops every expired key.
func (mc *MemCache) cleanup() {
	now := time.Now()
	mc.entries.Range(func(key, value any) bool {
		item := value.(*memCacheItem)
		if now.After(item.expiresAt) {
			mc.entries.Delete(key)
		}
		return true
	})
}

// Close shutdown the memory cache worker.
func (mc *MemCache) Close() {
	mc.cancel()
	mc.cleanupTicker.Stop()
	mc.wg.Wait()
}

// Get returns the value for a key, nil when missing or expired.
func (mc *MemCache) Get(key string) any {
	value, exists := mc.entries.Load(key)
	if !exists {
		return nil
	}

	item := value.(*memCacheItem)
	if time.Now().After(item.expiresAt) {
		mc.entries.Delete(key)
		return nil
	}

	return item.value
}

// Set a given key on the cache.
func (mc *MemCache) Set(key string, value any, ttl time.Duration) {
	mc.entries.Store(key, &memCacheItem{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	})
}

// Delete drops a single key.
func (mc *MemCache) Delete(key string) {
	mc.entries.Delete(key)
}
