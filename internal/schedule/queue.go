// Package schedule runs one-shot deferred callbacks that can be cancelled.
package schedule

import (
	"sync"
	"time"
)

// Token identifies a scheduled callback. The zero Token is never issued.
type Token uint64

// Queue holds the pending callbacks of one owner (a storefront session).
type Queue struct {
	mu      sync.Mutex
	next    Token
	timers  map[Token]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func New() *Queue {
	return &Queue{timers: make(map[Token]*time.Timer)}
}

// After runs fn once delay has elapsed. After Stop it does nothing and
// returns the zero Token.
func (q *Queue) After(delay time.Duration, fn func()) Token {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.stopped {
		return 0
	}

	q.next++
	tok := q.next
	q.wg.Add(1)
	q.timers[tok] = time.AfterFunc(delay, func() {
		defer q.wg.Done()
		q.mu.Lock()
		_, live := q.timers[tok]
		delete(q.timers, tok)
		q.mu.Unlock()
		if live {
			fn()
		}
	})
	return tok
}

// Cancel prevents tok from running. It reports whether the callback was
// still pending.
func (q *Queue) Cancel(tok Token) bool {
	q.mu.Lock()
	t, ok := q.timers[tok]
	delete(q.timers, tok)
	q.mu.Unlock()
	if !ok {
		return false
	}
	if t.Stop() {
		q.wg.Done()
	}
	return true
}

// CancelAll drops every pending callback and returns how many were dropped.
func (q *Queue) CancelAll() int {
	q.mu.Lock()
	timers := q.timers
	q.timers = make(map[Token]*time.Timer)
	q.mu.Unlock()

	for _, t := range timers {
		if t.Stop() {
			q.wg.Done()
		}
	}
	return len(timers)
}

func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.timers)
}

// Stop cancels everything, refuses new work and waits for callbacks that
// already started. It must not be called from inside a callback.
func (q *Queue) Stop() {
	q.mu.Lock()
	q.stopped = true
	q.mu.Unlock()
	q.CancelAll()
	q.wg.Wait()
}
