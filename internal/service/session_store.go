package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/kbdigital/ytselleradda/internal/middleware"
	"github.com/kbdigital/ytselleradda/internal/model"
)

// SessionRecord is the persisted form of one browsing session.
// The selected listing is stored by id and re-borrowed from the catalog on load.
type SessionRecord struct {
	ID         string               `json:"id"`
	ActiveView model.View           `json:"activeView"`
	SelectedID string               `json:"selectedId,omitempty"`
	Criteria   model.FilterCriteria `json:"criteria"`
	Banners    model.CarouselState  `json:"banners"`
	Reviews    model.CarouselState  `json:"reviews"`
}

// SessionStore persists session records. Get returns (nil, nil) when absent.
type SessionStore interface {
	Get(ctx context.Context, id string) (*SessionRecord, error)
	Save(ctx context.Context, rec *SessionRecord) error
	Delete(ctx context.Context, id string) error
}

// sessionSweepInterval is how often the memory store drops expired sessions.
const sessionSweepInterval = 5 * time.Minute

type memorySession struct {
	rec      SessionRecord
	lastSeen time.Time
}

// MemorySessionStore keeps sessions in process memory with the same sliding
// TTL as the Redis store. Expired sessions read as absent and are swept in the background.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]memorySession
	ttl      time.Duration
	now      func() time.Time

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewMemorySessionStore starts a store whose sessions expire ttl after their last use.
// Call Stop to end the sweep goroutine.
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	m := &MemorySessionStore{
		sessions: make(map[string]memorySession),
		ttl:      ttl,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
	go m.sweepLoop()
	return m
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (*SessionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	now := m.now()
	if m.expired(s, now) {
		delete(m.sessions, id)
		return nil, nil
	}
	s.lastSeen = now
	m.sessions[id] = s
	rec := s.rec
	return &rec, nil
}

func (m *MemorySessionStore) Save(_ context.Context, rec *SessionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[rec.ID] = memorySession{rec: *rec, lastSeen: m.now()}
	return nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len returns the number of stored sessions, expired ones included until the next sweep.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep drops every expired session and returns how many were removed.
func (m *MemorySessionStore) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	removed := 0
	for id, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

func (m *MemorySessionStore) expired(s memorySession, now time.Time) bool {
	return m.ttl > 0 && now.Sub(s.lastSeen) >= m.ttl
}

func (m *MemorySessionStore) sweepLoop() {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				middleware.Logger.Debug().Int("removed", n).Msg("sessions: swept expired")
			}
		}
	}
}

// Stop ends the sweep goroutine. Safe to call more than once.
func (m *MemorySessionStore) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

// RedisSessionStore keeps sessions in Redis through the CacheService, with a sliding TTL.
type RedisSessionStore struct {
	cache *CacheService
}

func NewRedisSessionStore(cache *CacheService) *RedisSessionStore {
	return &RedisSessionStore{cache: cache}
}

func (r *RedisSessionStore) Get(ctx context.Context, id string) (*SessionRecord, error) {
	data, err := r.cache.GetSession(ctx, id)
	if err != nil || data == nil {
		return nil, err
	}
	var rec SessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *RedisSessionStore) Save(ctx context.Context, rec *SessionRecord) error {
	return r.cache.SetSession(ctx, rec.ID, rec)
}

func (r *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return r.cache.InvalidateSession(ctx, id)
}

// NewSessionStore picks Redis when the cache is enabled, memory otherwise.
// Both expire sessions SessionCacheTTL after their last use.
func NewSessionStore(cache *CacheService) SessionStore {
	if cache.Enabled() {
		return NewRedisSessionStore(cache)
	}
	return NewMemorySessionStore(SessionCacheTTL)
}
