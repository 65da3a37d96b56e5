package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/notifykit/pkg/logger"
)

// Publisher receives the store contents after every state change.
// version increases with each change, so receivers can drop stale snapshots.
type Publisher interface {
	Publish(ctx context.Context, version uint64, snap Snapshot)
}

// Store owns the ordered, bounded collection of notifications.
// All mutations are serialized; publishing happens after the mutation is
// committed and outside the lock, so publishers may call back into the Store.
type Store struct {
	mu          sync.RWMutex
	items       []Notification // newest first
	version     uint64
	lastCreated time.Time

	maxRetained int
	now         func() time.Time
	newID       func() string
	publisher   Publisher
	logger      *slog.Logger
}

// NewStore creates an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		maxRetained: DefaultMaxRetained,
		now:         time.Now,
		newID:       NewID,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.items = make([]Notification, 0, s.maxRetained)
	return s
}

// NewID returns a time-ordered random identifier (UUIDv7: millisecond
// timestamp followed by random bits).
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Add inserts a new unread notification at the head of the store and
// evicts the oldest entries beyond capacity.
func (s *Store) Add(ctx context.Context, category Category, title, description string) (Notification, error) {
	if !category.Valid() {
		return Notification{}, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	if strings.TrimSpace(title) == "" {
		return Notification{}, ErrEmptyTitle
	}
	if strings.TrimSpace(description) == "" {
		return Notification{}, ErrEmptyDescription
	}

	s.mu.Lock()

	createdAt := s.now()
	if createdAt.Before(s.lastCreated) {
		createdAt = s.lastCreated
	}
	s.lastCreated = createdAt

	id := s.newID()
	for s.indexLocked(id) >= 0 {
		id = s.newID()
	}

	n := Notification{
		ID:          id,
		Title:       title,
		Description: description,
		Category:    category,
		CreatedAt:   createdAt,
	}

	s.items = slices.Insert(s.items, 0, n)
	evicted := s.truncateLocked()
	version, snap := s.commitLocked()
	s.mu.Unlock()

	if evicted > 0 {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "evicted oldest notifications",
			logger.Component("store"),
			logger.Count(evicted),
		)
	}

	s.publish(ctx, version, snap)
	return n, nil
}

// MarkAsRead marks the notification with id as read.
// It reports whether a transition happened; unknown ids and already read
// notifications are no-ops and publish nothing.
func (s *Store) MarkAsRead(ctx context.Context, id string) bool {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 || s.items[i].IsRead {
		s.mu.Unlock()
		return false
	}
	s.items[i].IsRead = true
	version, snap := s.commitLocked()
	s.mu.Unlock()

	s.publish(ctx, version, snap)
	return true
}

// MarkAllAsRead marks every unread notification as read with a single
// publication. It returns the number of notifications that changed.
func (s *Store) MarkAllAsRead(ctx context.Context) int {
	s.mu.Lock()
	changed := 0
	for i := range s.items {
		if !s.items[i].IsRead {
			s.items[i].IsRead = true
			changed++
		}
	}
	if changed == 0 {
		s.mu.Unlock()
		return 0
	}
	version, snap := s.commitLocked()
	s.mu.Unlock()

	s.publish(ctx, version, snap)
	return changed
}

// Remove deletes the notification with id. It publishes and returns true
// only if something was removed.
func (s *Store) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	version, snap := s.commitLocked()
	s.mu.Unlock()

	s.publish(ctx, version, snap)
	return true
}

// Restore puts back a previously removed notification, keeping its id, content,
// read flag and timestamp. It is placed among the retained notifications by
// CreatedAt. Nothing happens if the id is still retained, the notification is
// invalid, or it would land beyond capacity.
func (s *Store) Restore(ctx context.Context, n Notification) bool {
	if n.ID == "" || !n.Category.Valid() {
		return false
	}

	s.mu.Lock()
	if s.indexLocked(n.ID) >= 0 {
		s.mu.Unlock()
		return false
	}

	pos := len(s.items)
	for i := range s.items {
		if s.items[i].CreatedAt.Before(n.CreatedAt) {
			pos = i
			break
		}
	}
	if pos >= s.maxRetained {
		s.mu.Unlock()
		return false
	}

	s.items = slices.Insert(s.items, pos, n)
	s.truncateLocked()
	if n.CreatedAt.After(s.lastCreated) {
		s.lastCreated = n.CreatedAt
	}
	version, snap := s.commitLocked()
	s.mu.Unlock()

	s.publish(ctx, version, snap)
	return true
}

// ClearAll removes every notification. It always publishes, even when the
// store was already empty.
func (s *Store) ClearAll(ctx context.Context) {
	s.mu.Lock()
	clear(s.items)
	s.items = s.items[:0]
	version, snap := s.commitLocked()
	s.mu.Unlock()

	s.publish(ctx, version, snap)
}

// Snapshot returns an independent copy of the retained notifications, newest first.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot(s.items).Clone()
}

// VersionedSnapshot returns a snapshot together with the version it reflects.
func (s *Store) VersionedSnapshot() (Snapshot, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot(s.items).Clone(), s.version
}

// Get returns a copy of the notification with id.
func (s *Store) Get(id string) (Notification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.items[i], true
	}
	return Notification{}, false
}

// UnreadCount counts unread notifications at call time.
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot(s.items).UnreadCount()
}

// Len returns the number of retained notifications.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// MaxRetained returns the configured capacity.
func (s *Store) MaxRetained() int {
	return s.maxRetained
}

// Version returns the number of state changes committed so far.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Store) indexLocked(id string) int {
	return slices.IndexFunc(s.items, func(n Notification) bool { return n.ID == id })
}

func (s *Store) truncateLocked() int {
	if len(s.items) <= s.maxRetained {
		return 0
	}
	evicted := len(s.items) - s.maxRetained
	clear(s.items[s.maxRetained:])
	s.items = s.items[:s.maxRetained]
	return evicted
}

func (s *Store) commitLocked() (uint64, Snapshot) {
	s.version++
	return s.version, Snapshot(s.items).Clone()
}

func (s *Store) publish(ctx context.Context, version uint64, snap Snapshot) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(ctx, version, snap)
}
