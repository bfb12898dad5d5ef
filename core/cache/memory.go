package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"myevent-api/core/clock"
)

type memoryItem struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache is a process-local Cache with per-key expiry. The server always
// runs on RedisCache; this in-memory double stands in for it in tests.
type MemoryCache struct {
	mu    sync.Mutex
	items map[string]memoryItem
	clock clock.Clock
}

func NewMemoryCache(c clock.Clock) *MemoryCache {
	if c == nil {
		c = clock.New()
	}
	return &MemoryCache{items: make(map[string]memoryItem), clock: c}
}

func (m *MemoryCache) set(key string, value []byte, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = memoryItem{value: value, expiresAt: m.clock.Now().Add(ttl)}
}

func (m *MemoryCache) get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[key]
	if !ok {
		return nil, false
	}
	if !m.clock.Now().Before(item.expiresAt) {
		delete(m.items, key)
		return nil, false
	}
	return item.value, true
}

func (m *MemoryCache) del(keys ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.items, k)
	}
}

func (m *MemoryCache) SetVerificationCode(_ context.Context, email, code string, ttl time.Duration) error {
	m.set(verificationKey(email), []byte(code), ttl)
	return nil
}

func (m *MemoryCache) GetVerificationCode(_ context.Context, email string) (string, error) {
	v, _ := m.get(verificationKey(email))
	return string(v), nil
}

func (m *MemoryCache) DeleteVerificationCode(_ context.Context, email string) error {
	m.del(verificationKey(email))
	return nil
}

func (m *MemoryCache) AddToTokenBlacklist(_ context.Context, token string, ttl time.Duration) error {
	if ttl > 0 {
		m.set(blacklistKey(token), []byte{1}, ttl)
	}
	return nil
}

func (m *MemoryCache) IsTokenBlacklisted(_ context.Context, token string) (bool, error) {
	_, ok := m.get(blacklistKey(token))
	return ok, nil
}

func (m *MemoryCache) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := m.get(key)
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *MemoryCache) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.set(key, raw, ttl)
	return nil
}

func (m *MemoryCache) Del(_ context.Context, keys ...string) error {
	m.del(keys...)
	return nil
}
