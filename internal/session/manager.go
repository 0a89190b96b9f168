package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/fjod/go_cart/storefront/internal/cart"
	"github.com/fjod/go_cart/storefront/internal/chat"
	"github.com/fjod/go_cart/storefront/internal/logger"
	"github.com/fjod/go_cart/storefront/internal/schedule"
)

const (
	DefaultReplyDelay  = 600 * time.Millisecond
	DefaultEffectDelay = 500 * time.Millisecond

	// LoadTimeout bounds a shared session load.
	LoadTimeout = 5 * time.Second
)

type Options struct {
	ReplyDelay  time.Duration
	EffectDelay time.Duration
	// CancelOnClose drops replies that are still pending when the visitor
	// closes the chat window. By default they are still delivered.
	CancelOnClose bool
	Logger        *zap.Logger
}

// evictNotifier is implemented by stores that expire sessions on their own.
type evictNotifier interface {
	OnEvict(fn func(id string))
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// Manager owns every live session. Mutations of one session are serialised;
// different sessions never block each other.
type Manager struct {
	store      Store
	dispatcher *chat.Dispatcher
	opts       Options
	log        *zap.Logger

	sfg singleflight.Group

	mu     sync.Mutex
	locks  map[string]*sessionLock
	queues map[string]*schedule.Queue
	closed bool

	now func() time.Time
}

func NewManager(store Store, dispatcher *chat.Dispatcher, opts Options) *Manager {
	if opts.ReplyDelay <= 0 {
		opts.ReplyDelay = DefaultReplyDelay
	}
	if opts.EffectDelay <= 0 {
		opts.EffectDelay = DefaultEffectDelay
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	m := &Manager{
		store:      store,
		dispatcher: dispatcher,
		opts:       opts,
		log:        log,
		locks:      make(map[string]*sessionLock),
		queues:     make(map[string]*schedule.Queue),
		now:        time.Now,
	}
	if n, ok := store.(evictNotifier); ok {
		n.OnEvict(m.dropQueue)
	}
	return m
}

// Create starts a session with an empty cart and a conversation holding only
// the greeting.
func (m *Manager) Create(ctx context.Context) (*State, error) {
	now := m.now()
	st := &State{
		ID:           uuid.NewString(),
		Cart:         cart.New(),
		Conversation: chat.NewConversation(m.dispatcher.Greeting()),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := m.store.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	logger.FromContext(ctx).Info("session created", zap.String("session_id", st.ID))
	return st, nil
}

// View loads a session for reading. Concurrent loads of the same id share one
// store round trip, so the returned State must not be modified. The shared
// load is detached from the caller that started it; each caller stops
// waiting when its own ctx ends.
func (m *Manager) View(ctx context.Context, id string) (*State, error) {
	ch := m.sfg.DoChan(id, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), LoadTimeout)
		defer cancel()
		return m.store.Get(loadCtx, id)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*State), nil
	}
}

// Update loads a session, applies fn and saves the result. Nothing is saved
// when fn returns an error; that error is returned as is.
func (m *Manager) Update(ctx context.Context, id string, fn func(*State) error) (*State, error) {
	unlock := m.lock(id)
	defer unlock()

	st, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(st); err != nil {
		return nil, err
	}

	st.UpdatedAt = m.now()
	if err := m.store.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return st, nil
}

// Destroy cancels the session's pending work and removes it.
func (m *Manager) Destroy(ctx context.Context, id string) error {
	m.dropQueue(id)

	unlock := m.lock(id)
	defer unlock()
	if err := m.store.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("session destroyed", zap.String("session_id", id))
	return nil
}

// Schedule applies fn to the session once delay has elapsed. The mutation is
// skipped if the session is gone by then.
func (m *Manager) Schedule(id string, delay time.Duration, fn func(*State)) schedule.Token {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0
	}

	q, ok := m.queues[id]
	if !ok {
		q = schedule.New()
		m.queues[id] = q
	}
	return q.After(delay, func() {
		m.runScheduled(q, id, fn)
	})
}

func (m *Manager) runScheduled(q *schedule.Queue, id string, fn func(*State)) {
	ctx := logger.WithLogger(context.Background(), m.log)
	_, err := m.Update(ctx, id, func(st *State) error {
		fn(st)
		return nil
	})
	switch {
	case errors.Is(err, ErrSessionNotFound):
		q.CancelAll()
	case err != nil:
		m.log.Error("scheduled update failed", zap.String("session_id", id), zap.Error(err))
	}

	m.mu.Lock()
	if m.queues[id] == q && q.Pending() == 0 {
		delete(m.queues, id)
	}
	m.mu.Unlock()
}

// Pending reports how many deferred mutations are waiting for a session.
func (m *Manager) Pending(id string) int {
	m.mu.Lock()
	q, ok := m.queues[id]
	m.mu.Unlock()
	if !ok {
		return 0
	}
	return q.Pending()
}

func (m *Manager) cancelPending(id string) int {
	m.mu.Lock()
	q, ok := m.queues[id]
	m.mu.Unlock()
	if !ok {
		return 0
	}
	return q.CancelAll()
}

func (m *Manager) dropQueue(id string) {
	m.mu.Lock()
	q, ok := m.queues[id]
	delete(m.queues, id)
	m.mu.Unlock()
	if ok {
		q.Stop()
	}
}

// Close stops every session's pending work. Sessions themselves stay in the
// store.
func (m *Manager) Close() {
	m.mu.Lock()
	m.closed = true
	queues := m.queues
	m.queues = make(map[string]*schedule.Queue)
	m.mu.Unlock()

	for _, q := range queues {
		q.Stop()
	}
}

func (m *Manager) lock(id string) func() {
	m.mu.Lock()
	l, ok := m.locks[id]
	if !ok {
		l = &sessionLock{}
		m.locks[id] = l
	}
	l.refs++
	m.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		m.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(m.locks, id)
		}
		m.mu.Unlock()
	}
}
