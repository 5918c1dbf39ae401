package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dreamware/kvcheck/internal/runner"
	"github.com/dreamware/kvcheck/internal/store"
)

// split is the banner rule printed around each config block and the
// final summary.
const split = "========================================================================"

// FormatNumber renders n with thousands separators, e.g. 12345 -> "12,345".
func FormatNumber(n int) string {
	digits := strconv.Itoa(n)
	neg := false
	if len(digits) > 0 && digits[0] == '-' {
		neg = true
		digits = digits[1:]
	}

	start := len(digits) % 3
	var out []byte
	if start > 0 {
		out = append(out, digits[:start]...)
	}
	for i := start; i < len(digits); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i:i+3]...)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// FormatEntry renders one key's store.Entry the way a failing scenario's
// state dump displays it: "<null>" for a key never observed, "{ rev: N,
// value: <null> }" for a tombstone, else "{ rev: N, value: V }".
func FormatEntry[T any](entry store.Entry[T]) string {
	if !entry.Present {
		return "<null>"
	}
	if entry.Value == nil {
		return fmt.Sprintf("{ rev: %d, value: <null> }", entry.Rev)
	}
	return fmt.Sprintf("{ rev: %d, value: %v }", entry.Rev, *entry.Value)
}

// PrintScenario writes one scenario result's block: status line, checked
// count, and — only for a failing result — the invariant violations, the
// final state dump, and the execution trace with the failing step marked.
func PrintScenario[T, C any](w io.Writer, result runner.ScenarioResult[T, C]) {
	fmt.Fprintf(w, "Scenario: %s\n", result.Name)

	status := "PASS"
	if !result.Pass {
		status = "FAIL"
	}
	fmt.Fprintf(w, "    result: %s\n", status)
	fmt.Fprintf(w, "    checked executions: %s\n", FormatNumber(result.Count))

	if result.Pass {
		return
	}

	fmt.Fprintln(w, "    errors:")
	for _, e := range result.Errors {
		fmt.Fprintf(w, "        - %s\n", e)
	}

	fmt.Fprintln(w, "    state:")
	for _, key := range result.State.Keys() {
		fmt.Fprintf(w, "        %q => %s\n", key, FormatEntry(result.State.Peek(key)))
	}

	fmt.Fprintln(w, "    execution:")
	for i, act := range result.Plan {
		if i == result.FailingStep {
			fmt.Fprintf(w, "    ==> %s: %v\n", act.ClientID, act.Op)
		} else {
			fmt.Fprintf(w, "        %s: %v\n", act.ClientID, act.Op)
		}
	}
}

// PrintSummary writes the trailing SUMMARY block: one line per scenario
// result within each config, then the grand total of executions checked.
func PrintSummary[T, C, Cfg any](w io.Writer, rep *runner.Report[T, C, Cfg]) {
	fmt.Fprintln(w, split)
	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintln(w, split)
	fmt.Fprintln(w)

	total := 0
	for _, cr := range rep.Configs {
		fmt.Fprintf(w, "%v\n", cr.Config)
		for _, res := range cr.Results {
			status := "PASS"
			if !res.Pass {
				status = "FAIL"
			}
			total += res.Count
			fmt.Fprintf(w, "    - %s (%s): %s\n", status, FormatNumber(res.Count), res.Name)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Total executions checked = %s\n", FormatNumber(total))
	fmt.Fprintln(w)
}

// PrintConfigHeader writes the banner line + config value printed before
// that config's scenario results.
func PrintConfigHeader[Cfg any](w io.Writer, cfg Cfg) {
	fmt.Fprintf(w, "%s\n\n%v\n", split, cfg)
}
