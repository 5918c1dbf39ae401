// Package demo implements a minimal, string-valued actor language —
// read/write/remove a key — used only by this module's own tests and by
// cmd/kvcheck's built-in scenario suite.
//
// This is deliberately NOT the "concrete domain-specific actor language"
// spec.md §1 places out of scope for the engine: a real host defines its
// own Op type and ActorFactory against internal/runner's generic
// interfaces. demo exists solely so internal/runner, internal/planner,
// and internal/store are exercisable end-to-end without a host.
package demo
