package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// CleanupInterval is how often the memory store looks for idle sessions.
const CleanupInterval = 30 * time.Second

type memoryEntry struct {
	data    []byte
	touched time.Time
}

// MemoryStore keeps snapshots in process memory and forgets sessions that
// have been idle for longer than the TTL.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	onEvict func(id string)

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return newMemoryStore(ttl, CleanupInterval)
}

func newMemoryStore(ttl, interval time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries:     make(map[string]memoryEntry),
		ttl:         ttl,
		stopCleanup: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.cleanupLoop(interval)

	return s
}

// OnEvict registers fn to be called with the id of every expired session.
func (s *MemoryStore) OnEvict(fn func(id string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEvict = fn
}

func (s *MemoryStore) cleanupLoop(interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.expire(time.Now())
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *MemoryStore) expire(now time.Time) {
	s.mu.Lock()
	var expired []string
	for id, e := range s.entries {
		if now.Sub(e.touched) > s.ttl {
			delete(s.entries, id)
			expired = append(expired, id)
		}
	}
	onEvict := s.onEvict
	s.mu.Unlock()

	if onEvict == nil {
		return
	}
	for _, id := range expired {
		onEvict(id)
	}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	var st State
	if err := json.Unmarshal(e.data, &st); err != nil {
		return nil, fmt.Errorf("unmarshal session failed: %w", err)
	}
	return &st, nil
}

func (s *MemoryStore) Save(ctx context.Context, state *State) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session failed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[state.ID] = memoryEntry{data: data, touched: time.Now()}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.entries, id)
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close stops the background cleanup and waits for it to finish.
func (s *MemoryStore) Close() error {
	close(s.stopCleanup)
	s.wg.Wait()
	return nil
}
