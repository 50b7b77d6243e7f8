// Package state owns the in-memory snapshot of every collection and mirrors
// it to durable key-value storage.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tidwall/gjson"

	"github.com/mmynk/splitbeam/internal/metrics"
	"github.com/mmynk/splitbeam/internal/models"
	"github.com/mmynk/splitbeam/internal/storage"
)

var (
	// ErrUnchanged may be returned by an update function to signal that it
	// made no change. Update then returns the current snapshot and writes
	// nothing.
	ErrUnchanged = errors.New("state unchanged")

	// ErrClosed is returned by Update after Close.
	ErrClosed = errors.New("state store closed")
)

// requiredArrays are the fields a persisted snapshot must carry as JSON
// arrays to be accepted.
var requiredArrays = []string{"friends", "circles", "expenses", "activity"}

// Store holds the current snapshot. All mutations go through Update, which
// is serialised; readers always receive deep copies.
type Store struct {
	updateMu sync.Mutex // serialises Update: mutate, swap, persist, notify

	mu      sync.RWMutex // guards the fields below
	current models.State
	subs    map[int]func(models.State)
	nextSub int
	closed  bool

	kv storage.KV
}

// Option configures a Store.
type Option func(*options)

type options struct {
	fallback func() models.State
}

// WithFallback sets the dataset adopted when nothing valid is persisted.
// Defaults to Default.
func WithFallback(fallback func() models.State) Option {
	return func(o *options) { o.fallback = fallback }
}

// Open creates a Store backed by kv. It restores the persisted snapshot when
// one is present and valid, and otherwise adopts the fallback dataset. kv may
// be nil, in which case nothing is ever loaded or saved.
func Open(ctx context.Context, kv storage.KV, opts ...Option) *Store {
	o := options{fallback: Default}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store{
		kv:   kv,
		subs: make(map[int]func(models.State)),
	}

	if restored, ok := s.Load(ctx); ok {
		slog.Info("Restored persisted state",
			"circles", len(restored.Circles),
			"expenses", len(restored.Expenses),
			"activity", len(restored.Activity),
		)
		s.current = restored
	} else {
		s.current = o.fallback().Clone()
	}
	return s
}

// Load reads and validates the persisted snapshot. Missing, unparsable or
// malformed data yields false; the cause is logged, never returned.
func (s *Store) Load(ctx context.Context) (models.State, bool) {
	if s.kv == nil {
		return models.State{}, false
	}

	raw, ok, err := s.kv.Get(ctx, storage.StateKey)
	if err != nil {
		slog.Warn("Failed to read persisted state", "key", storage.StateKey, "error", err)
		return models.State{}, false
	}
	if !ok || raw == "" {
		return models.State{}, false
	}

	if err := validate(raw); err != nil {
		slog.Warn("Discarding persisted state", "key", storage.StateKey, "error", err)
		return models.State{}, false
	}

	var st models.State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		slog.Warn("Failed to parse persisted state", "key", storage.StateKey, "error", err)
		return models.State{}, false
	}
	return st.Clone(), true
}

// validate checks that raw is a JSON object whose required collections are
// arrays.
func validate(raw string) error {
	if !gjson.Valid(raw) {
		return errors.New("invalid JSON")
	}
	root := gjson.Parse(raw)
	if !root.IsObject() {
		return errors.New("snapshot is not an object")
	}
	for _, field := range requiredArrays {
		if !root.Get(field).IsArray() {
			return fmt.Errorf("field %q is not an array", field)
		}
	}
	return nil
}

// Save writes the full snapshot under the state key. Nil collections are
// written as empty arrays so the result always passes Load's shape check.
// It is a no-op without durable storage.
func (s *Store) Save(ctx context.Context, st models.State) error {
	if s.kv == nil {
		return nil
	}

	data, err := json.Marshal(st.Clone())
	if err != nil {
		metrics.RecordSave(false, 0)
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := s.kv.Set(ctx, storage.StateKey, string(data)); err != nil {
		metrics.RecordSave(false, 0)
		return fmt.Errorf("failed to write state: %w", err)
	}
	metrics.RecordSave(true, len(data))
	return nil
}

// Snapshot returns a deep copy of the current snapshot.
func (s *Store) Snapshot() models.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Update applies fn to a copy of the current snapshot. When fn succeeds the
// copy replaces the snapshot, subscribers are notified, and the snapshot is
// persisted exactly once. When fn fails nothing changes.
//
// Persistence is best-effort: write failures are logged and counted but not
// returned. Subscribers must not call Update.
func (s *Store) Update(ctx context.Context, fn func(st *models.State) error) (models.State, error) {
	s.updateMu.Lock()
	defer s.updateMu.Unlock()

	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return models.State{}, ErrClosed
	}
	next := s.current.Clone()
	s.mu.RUnlock()

	if err := fn(&next); err != nil {
		if errors.Is(err, ErrUnchanged) {
			return s.Snapshot(), nil
		}
		return models.State{}, err
	}
	next = next.Clone()

	s.mu.Lock()
	s.current = next
	subs := make([]func(models.State), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	if err := s.Save(ctx, next); err != nil {
		slog.Error("Failed to persist state", "error", err)
	}

	for _, sub := range subs {
		sub(next.Clone())
	}
	return next.Clone(), nil
}

// Replace swaps in st wholesale as a single update.
func (s *Store) Replace(ctx context.Context, st models.State) (models.State, error) {
	return s.Update(ctx, func(cur *models.State) error {
		*cur = st.Clone()
		return nil
	})
}

// Subscribe registers fn to be called with every committed snapshot. The
// returned function removes the subscription.
func (s *Store) Subscribe(fn func(models.State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Close drops all subscribers and closes the underlying storage.
func (s *Store) Close() error {
	s.updateMu.Lock()
	defer s.updateMu.Unlock()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.subs = make(map[int]func(models.State))
	s.mu.Unlock()

	if s.kv == nil {
		return nil
	}
	return s.kv.Close()
}
