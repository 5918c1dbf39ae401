package store

import (
	"sync"

	"golang.org/x/exp/slices"
)

// Rev is a per-key monotonically increasing revision number. A key that
// has never been written has revision 0.
type Rev uint64

// record is the internal representation of one key's state: its current
// revision and, if present, its value. A record with Value == nil and
// Rev > 0 is a tombstone — the key was written at least once and has
// since been removed.
type record[T any] struct {
	rev   Rev
	value *T
}

// Store is a revision-checked key/value mapping. The zero value is not
// usable; construct one with New.
//
// Implementation notes:
//   - Keys are strings; values are copied in and out by assignment, so T
//     should be a value type (or a type whose shallow copy is sufficient —
//     callers needing deep-copy semantics for composite T should clone
//     inside their own Read/Write call sites).
//   - Ordered iteration (Keys) is lexicographic, matching spec.md's store
//     invariant (c).
type Store[T any] struct {
	mu   sync.RWMutex
	data map[string]record[T]
	seq  uint64
}

// New creates an empty Store.
func New[T any]() *Store[T] {
	return &Store[T]{data: make(map[string]record[T])}
}

// Read returns the current revision and value for key. ok is false if the
// key has never been written, or has been removed (a tombstone read
// returns ok == false, matching spec.md §8's "read(k) after remove(k)
// returns none").
func (s *Store[T]) Read(key string) (rev Rev, value T, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.data[key]
	if !exists || rec.value == nil {
		return 0, value, false
	}
	return rec.rev, *rec.value, true
}

// Write installs value at key if expectedRev matches the store's current
// revision for that key (treating a never-written key, and
// expectedRev == 0, as revision 0 — spec.md §4.1's "expected_rev = none is
// equivalent to expected_rev = 0"). On success it returns the new
// revision and true; on a revision mismatch it mutates nothing and
// returns (0, false).
func (s *Store[T]) Write(key string, expectedRev Rev, value T) (Rev, bool) {
	return s.setKey(key, expectedRev, &value)
}

// Remove installs a tombstone at key if expectedRev matches, following
// the same revision-check rule as Write. Removing a never-written key (at
// revision 0) is a successful, Seq-incrementing mutation that leaves a
// tombstone at revision 1 — the key did not need to have existed.
func (s *Store[T]) Remove(key string, expectedRev Rev) (Rev, bool) {
	return s.setKey(key, expectedRev, nil)
}

func (s *Store[T]) setKey(key string, expectedRev Rev, value *T) (Rev, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.data[key] // zero value: rev 0, value nil, correct for an absent key
	if current.rev != expectedRev {
		return 0, false
	}

	newRev := current.rev + 1
	s.data[key] = record[T]{rev: newRev, value: value}
	s.seq++
	return newRev, true
}

// Keys returns every key ever written to the store, including tombstoned
// ones, in ascending lexicographic order.
func (s *Store[T]) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Seq returns the total number of successful mutations (writes and
// removes combined) the store has ever applied.
func (s *Store[T]) Seq() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq
}

// Clone returns a deep copy of the store: an independent map and an
// identical Seq, such that mutating the clone never affects the
// original. Used once per claimed plan to give each worker a fresh copy
// of the scenario's baseline store.
func (s *Store[T]) Clone() *Store[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clone := &Store[T]{
		data: make(map[string]record[T], len(s.data)),
		seq:  s.seq,
	}
	for k, rec := range s.data {
		if rec.value == nil {
			clone.data[k] = rec
			continue
		}
		v := *rec.value
		clone.data[k] = record[T]{rev: rec.rev, value: &v}
	}
	return clone
}

// Entry describes one key's state for diagnostic/report purposes: Present
// is false for an unknown key, true with Value == nil for a tombstone,
// and true with a populated Value otherwise.
type Entry[T any] struct {
	Rev     Rev
	Value   *T
	Present bool
}

// Peek returns the raw entry for key (distinguishing "never written" from
// "tombstoned") without the ok-means-has-value collapsing that Read does.
// Used by report formatting to render `{ rev: r, value: <null> }` for
// tombstones versus `<null>` for keys that were never written.
func (s *Store[T]) Peek(key string) Entry[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.data[key]
	if !exists {
		return Entry[T]{}
	}
	if rec.value == nil {
		return Entry[T]{Rev: rec.rev, Present: true}
	}
	v := *rec.value
	return Entry[T]{Rev: rec.rev, Value: &v, Present: true}
}
