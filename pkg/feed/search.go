package feed

import (
	"sync"
	"time"

	"github.com/dmitrymomot/notifykit/pkg/notifications"
)

// DefaultSearchDelay is the quiet period before a Search evaluates its inputs.
const DefaultSearchDelay = 150 * time.Millisecond

// SearchFunc receives the query and the filtered snapshot it produced.
type SearchFunc func(query string, result notifications.Snapshot)

// Search defers filtering until its inputs have been stable for a delay.
// Bursts of SetQuery or SetSnapshot calls collapse into one evaluation of the
// latest query over the latest snapshot.
type Search struct {
	delay    time.Duration
	onResult SearchFunc

	mu     sync.Mutex
	query  string
	snap   notifications.Snapshot
	gen    uint64
	timer  *time.Timer
	closed bool

	delivering bool
	rerun      bool
}

// NewSearch creates a Search that reports results to onResult.
// A non-positive delay evaluates without waiting, on the goroutine that made
// the update unless an evaluation is already running.
func NewSearch(delay time.Duration, onResult SearchFunc) *Search {
	if onResult == nil {
		onResult = func(string, notifications.Snapshot) {}
	}
	return &Search{delay: delay, onResult: onResult}
}

// SetQuery replaces the query and schedules an evaluation.
func (s *Search) SetQuery(query string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSearchClosed
	}
	s.query = query
	gen := s.scheduleLocked()
	s.mu.Unlock()

	s.runNow(gen)
	return nil
}

// SetSnapshot replaces the snapshot and schedules an evaluation.
func (s *Search) SetSnapshot(snap notifications.Snapshot) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSearchClosed
	}
	s.snap = snap
	gen := s.scheduleLocked()
	s.mu.Unlock()

	s.runNow(gen)
	return nil
}

// Query returns the current query.
func (s *Search) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Close cancels any pending evaluation. Further updates return ErrSearchClosed.
func (s *Search) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Search) scheduleLocked() uint64 {
	s.gen++
	gen := s.gen
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.delay > 0 {
		s.timer = time.AfterFunc(s.delay, func() { s.fire(gen) })
	}
	return gen
}

func (s *Search) runNow(gen uint64) {
	if s.delay <= 0 {
		s.fire(gen)
	}
}

// fire evaluates the latest inputs. Only one evaluation runs at a time; an
// update arriving during onResult, including one made from inside it, marks a
// rerun that the running evaluation picks up once onResult returns.
func (s *Search) fire(gen uint64) {
	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		return
	}
	if s.delivering {
		s.rerun = true
		s.mu.Unlock()
		return
	}
	s.delivering = true

	for {
		s.rerun = false
		query, snap := s.query, s.snap
		s.mu.Unlock()

		s.onResult(query, Filter(snap, query))

		s.mu.Lock()
		if !s.rerun || s.closed {
			break
		}
	}

	s.delivering = false
	s.mu.Unlock()
}
