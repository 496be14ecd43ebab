// Package memory is an in-process implementation of the collection and word
// repositories. It mirrors the PostgreSQL adapter's constraints (foreign key
// cascade, unique normalized term, level check, non-negative counters) and is
// used for local development and service tests.
package memory

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

type txCtxKey struct{}

// Store holds all data in maps guarded by a mutex.
type Store struct {
	// txMu serializes writers; a transaction holds it for its whole duration.
	txMu sync.Mutex
	mu   sync.RWMutex

	collections map[uuid.UUID]domain.Collection
	words       map[uuid.UUID]domain.Word

	now func() time.Time
}

// New creates an empty store.
func New() *Store {
	return &Store{
		collections: make(map[uuid.UUID]domain.Collection),
		words:       make(map[uuid.UUID]domain.Word),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Collections returns the collection repository view of the store.
func (s *Store) Collections() *CollectionRepo { return &CollectionRepo{s: s} }

// Words returns the word repository view of the store.
func (s *Store) Words() *WordRepo { return &WordRepo{s: s} }

// Ping reports whether the store can serve requests. An in-process store is
// always available.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// RunInTx runs fn with exclusive write access. If fn returns an error or
// panics, every change it made is discarded. Nested calls join the outer
// transaction.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if inTx(ctx) {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	savedCollections := maps.Clone(s.collections)
	savedWords := maps.Clone(s.words)
	s.mu.RUnlock()

	restore := func() {
		s.mu.Lock()
		s.collections = savedCollections
		s.words = savedWords
		s.mu.Unlock()
	}

	defer func() {
		if r := recover(); r != nil {
			restore()
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txCtxKey{}, true)); err != nil {
		restore()
		return err
	}
	return nil
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txCtxKey{}).(bool)
	return v
}

// write runs fn under the write lock, taking the writer lock too when the
// caller is not already inside a transaction.
func (s *Store) write(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !inTx(ctx) {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

func (s *Store) read(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn()
}

func notFound(entity string, id uuid.UUID) error {
	return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
}
