// Package runner builds a scenario's baseline store, runs every
// ordering its Planner yields in parallel across a worker pool, and
// evaluates an invariant Checker after every dispatched Act.
//
// # Overview
//
// For one (Config, Scenario) pair:
//
//  1. A single-client Planner is populated by the scenario's Setup
//     closure using client "tmp"; its first ordering is dispatched
//     against a fresh store.Store to produce the scenario's baseline.
//  2. A second Planner is populated by the scenario's Plan closure.
//     Its (lazy) Orderings enumerator is wrapped behind one
//     mutex-protected pull-point so worker goroutines can claim plans
//     atomically.
//  3. W workers (default 4) each loop: claim the next plan, clone the
//     baseline store, build one Actor per client (each with a fresh
//     Cache over the clone), dispatch every Act in order, and run the
//     Checker after every dispatch. A Checker violation ends that
//     worker with a Fail; a fully dispatched plan updates a running
//     Pass count and the worker moves to the next claim.
//  4. Workers are joined in spawn order: if any worker's final result is
//     a Fail, the FIRST failing worker IN SPAWN ORDER is reported (not
//     necessarily the lowest ordinal — workers race for plan claims).
//     Otherwise the scenario Passes with the highest ordinal+1 observed
//     by any worker.
//
// # Concurrency
//
// All cross-worker synchronization is the single mutex around the plan
// enumerator's Next call. Everything else — the cloned store and its
// per-client caches — is confined to the worker goroutine that claimed
// the plan; no further locking is needed there, matching spec.md §5.
package runner
