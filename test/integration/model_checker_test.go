package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamware/kvcheck/internal/demo"
	"github.com/dreamware/kvcheck/internal/runner"
)

// TestBuiltinSuitesAllPass exercises the Planner -> Store/Cache -> Runner
// pipeline end to end against every built-in demo suite, the same path
// cmd/kvcheck's run command takes before it prints the report.
func TestBuiltinSuitesAllPass(t *testing.T) {
	for _, suite := range demo.Suites() {
		suite := suite
		t.Run(suite.Name, func(t *testing.T) {
			r := runner.New[string, demo.Op, demo.Config](suite.Configs)
			r.Workers = 1
			for _, scenario := range suite.Scenarios {
				r.Add(scenario)
			}

			rep := r.Run()

			require.True(t, rep.Pass(), "suite %q should pass: %+v", suite.Name, rep)
			assert.Greater(t, rep.TotalChecked(), 0)
		})
	}
}

// TestBuiltinSuitesAreWorkerCountInvariant confirms the same suite passes
// (and checks the same executions) whether run with one worker or four —
// the join-in-spawn-order rule must not change what's eventually reported.
func TestBuiltinSuitesAreWorkerCountInvariant(t *testing.T) {
	suite := demo.CommutativeSuite()

	run := func(workers int) *runner.Report[string, demo.Op, demo.Config] {
		r := runner.New[string, demo.Op, demo.Config](suite.Configs)
		r.Workers = workers
		for _, scenario := range suite.Scenarios {
			r.Add(scenario)
		}
		return r.Run()
	}

	single := run(1)
	multi := run(4)

	require.True(t, single.Pass())
	require.True(t, multi.Pass())
	assert.Equal(t, single.TotalChecked(), multi.TotalChecked())
}

// TestConflictSuiteNeverLosesAnAcknowledgedWrite confirms the racing
// write-write scenario in the built-in conflict suite passes: the final
// value observed always matches one of the two dispatched writes.
func TestConflictSuiteNeverLosesAnAcknowledgedWrite(t *testing.T) {
	suite := demo.ConflictSuite()

	r := runner.New[string, demo.Op, demo.Config](suite.Configs)
	r.Workers = 2
	for _, scenario := range suite.Scenarios {
		r.Add(scenario)
	}

	rep := r.Run()
	require.True(t, rep.Pass())
}
