// Package planner builds per-client action sequences and lazily
// enumerates every linearization ("ordering") of them that preserves
// each client's own program order.
//
// # Overview
//
// A scenario author gets a builder per client (Planner.Client) and
// appends Acts to it with Do, or a branch point with Choose. Once every
// client's sequence is built, Planner.Orderings returns an Enumerator
// that lazily yields every legal interleaving of the per-client
// sequences, crossed with every combination of branch choices — in a
// fixed, deterministic order, so that a reported plan ordinal is
// reproducible across runs.
//
// # Architecture
//
//	Planner
//	 ├─ client "a": [step, step, choice(op1,op2)]
//	 ├─ client "b": [step]
//	 └─ Orderings() → Enumerator
//	                   Next() → (ordinal, Plan)   // lazy, one at a time
//
// If per-client sequence lengths are n₁,…,n_k, the number of
// interleavings is the multinomial (n₁+…+n_k)!/(n₁!·…·n_k!); crossed with
// the product of every branch point's alternative count. The Enumerator
// computes the k-th ordering directly from a flat index via a
// multinomial-coefficient decomposition (see enumerator.go) rather than
// materializing the whole set, so enumeration stays lazy even for
// scenarios with many orderings.
//
// # Thread Safety
//
// Planner's builder methods are guarded by a mutex so a scenario's setup
// closure can safely run independently per goroutine if a host chooses
// to parallelize scenario construction, though in normal use building is
// single-threaded and enumeration begins only once building is done. A
// Planner must not be mutated once Orderings has been called: the plans
// an Enumerator yields are copies, but the Enumerator fixes the client
// list and each client's length when it is created and reads the steps
// themselves from the Planner's live sequences, without taking its lock.
package planner
