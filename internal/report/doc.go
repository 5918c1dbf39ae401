// Package report renders a runner.Report as the human-readable text a
// test author watches scroll past: one block per scenario result, then a
// final summary block totalling every execution checked across every
// config.
//
// Formatting follows three fixed rules, independent of the domain types
// T, C, Cfg a host plugs in:
//   - integers are printed with thousands separators (FormatNumber)
//   - a store entry is printed as `{ rev: N, value: V }`, `{ rev: N, value:
//     <null> }` for a tombstone, or `<null>` for a key that was never
//     observed (FormatEntry)
//   - a failing plan's execution trace marks the step the checker failed
//     on with `==>` instead of leading whitespace
package report
