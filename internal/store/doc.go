// Package store implements a revision-checked key/value mapping and a
// per-client cache over it.
//
// # Overview
//
// A Store[T] maps string keys to (revision, optional value) pairs. Every
// successful mutation bumps the key's revision by one and the store's
// global write counter (Seq) by one. A write or remove succeeds only when
// the caller's expected revision matches the store's current revision for
// that key — this is the store's only concurrency primitive, and it is
// what lets many independent Cache[T] values share one Store[T] safely.
//
// A Cache[T] is a single client's read-through, write-through view of one
// Store. It remembers the last revision/value it observed per key and
// uses that as the expected revision on the next write, modeling an
// optimistic-concurrency client. A write conflict evicts the key from the
// cache so the next read fetches ground truth from the Store.
//
// # Architecture
//
//	┌─────────────────────────────────────┐
//	│              Store[T]                │
//	│   key -> (rev, value|tombstone)       │
//	│   seq: total successful mutations     │
//	└───────────────▲───────────▲──────────┘
//	                │           │
//	         ┌──────┴───┐ ┌─────┴─────┐
//	         │ Cache[T]  │ │ Cache[T]  │   ... one per client
//	         │ (client a)│ │ (client b)│
//	         └───────────┘ └───────────┘
//
// # Thread Safety
//
// Store is safe for concurrent use by multiple goroutines (guarded by an
// internal RWMutex), matching the expectation that several Caches may
// share one Store. Cache is NOT safe for concurrent use by itself — per
// spec a single plan's execution, and therefore every Cache created for
// it, is confined to one goroutine.
package store
