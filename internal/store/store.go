// Package store is the in-process owner of the billing collections.
//
// The live state is immutable. Every mutation runs inside Update against a private copy;
// the copy is published only after the integrity check and all commit hooks succeed, so
// readers never block and never see a half-applied change.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/samandr77/microservices/billing/internal/entity"
)

var ErrClosed = errors.New("store is closed")

// CommitHook receives the change set of a transaction before it becomes visible.
// An error aborts the transaction.
type CommitHook func(ctx context.Context, changes []entity.Change) error

type Option func(*Store)

// WithClock replaces the time source used to stamp mutations.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.nowFn = now
	}
}

func WithCommitHook(hook CommitHook) Option {
	return func(s *Store) {
		s.hooks = append(s.hooks, hook)
	}
}

type Store struct {
	mu     sync.Mutex // serializes writers
	cur    atomic.Pointer[state]
	nowFn  func() time.Time
	hooks  []CommitHook
	closed bool
}

func New(opts ...Option) *Store {
	s := &Store{
		nowFn: func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(s)
	}

	s.cur.Store(&state{})

	return s
}

func (s *Store) Now() time.Time {
	return s.nowFn()
}

// Update runs fn in a transaction and returns the committed change set.
func (s *Store) Update(ctx context.Context, fn func(tx *Tx) error) ([]entity.Change, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	st := s.cur.Load().clone()

	tx := &Tx{
		View: View{st: &st},
		now:  s.nowFn(),
	}

	err := fn(tx)
	if err != nil {
		return nil, err
	}

	if len(tx.changes) == 0 {
		return nil, nil
	}

	err = st.checkIntegrity()
	if err != nil {
		return nil, err
	}

	for _, hook := range s.hooks {
		err = hook(ctx, tx.changes)
		if err != nil {
			return nil, fmt.Errorf("commit hook: %w", err)
		}
	}

	s.cur.Store(&st)

	return tx.changes, nil
}

// View runs fn with read access to the current state.
func (s *Store) View(fn func(v View)) {
	fn(View{st: s.cur.Load()})
}

// Import replaces the whole state. Hooks are not called: the snapshot is expected
// to come from the backend itself.
func (s *Store) Import(snap Snapshot) error {
	st := stateFromSnapshot(snap)

	err := st.checkIntegrity()
	if err != nil {
		return fmt.Errorf("import snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	s.cur.Store(&st)

	return nil
}

func (s *Store) Export() Snapshot {
	return snapshotFromState(s.cur.Load())
}

// LoadReferenceData replaces property kinds, providers and pay systems. The state is left
// untouched when a property, service account or payment would lose its reference.
func (s *Store) LoadReferenceData(ref ReferenceData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	st := s.cur.Load().clone()
	st.propertyKinds = append([]entity.PropertyKind(nil), ref.PropertyKinds...)
	st.providers = append([]entity.Provider(nil), ref.Providers...)
	st.paySystems = append([]entity.PaySystem(nil), ref.PaySystems...)

	err := st.checkReferenceData()
	if err != nil {
		return fmt.Errorf("load reference data: %w", err)
	}

	s.cur.Store(&st)

	return nil
}

// Close drops the state. Later mutations fail with ErrClosed.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.cur.Store(&state{})
}
