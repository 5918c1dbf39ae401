package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dreamware/kvcheck/internal/planner"
	"github.com/dreamware/kvcheck/internal/report"
	"github.com/dreamware/kvcheck/internal/runner"
	"github.com/dreamware/kvcheck/internal/store"
)

func TestFormatNumberInsertsThousandsSeparators(t *testing.T) {
	cases := map[int]string{
		0:         "0",
		5:         "5",
		999:       "999",
		1000:      "1,000",
		12345:     "12,345",
		1234567:   "1,234,567",
		-1234:     "-1,234",
		100000000: "100,000,000",
	}
	for n, want := range cases {
		if got := report.FormatNumber(n); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestFormatEntryNeverObserved(t *testing.T) {
	s := store.New[string]()
	got := report.FormatEntry(s.Peek("missing"))
	if got != "<null>" {
		t.Fatalf("got %q, want <null>", got)
	}
}

func TestFormatEntryPresentValue(t *testing.T) {
	s := store.New[string]()
	s.Write("x", 0, "hello")
	got := report.FormatEntry(s.Peek("x"))
	if got != `{ rev: 1, value: hello }` {
		t.Fatalf("got %q", got)
	}
}

func TestFormatEntryTombstone(t *testing.T) {
	s := store.New[string]()
	rev, _ := s.Write("x", 0, "hello")
	s.Remove("x", rev)
	got := report.FormatEntry(s.Peek("x"))
	if got != `{ rev: 2, value: <null> }` {
		t.Fatalf("got %q", got)
	}
}

func TestPrintScenarioPassOmitsDetail(t *testing.T) {
	var buf bytes.Buffer
	report.PrintScenario[string, string](&buf, runner.ScenarioResult[string, string]{
		Name:  "ok",
		Pass:  true,
		Count: 6,
	})

	out := buf.String()
	if !strings.Contains(out, "Scenario: ok") {
		t.Errorf("missing scenario name: %s", out)
	}
	if !strings.Contains(out, "result: PASS") {
		t.Errorf("missing pass status: %s", out)
	}
	if !strings.Contains(out, "checked executions: 6") {
		t.Errorf("missing count: %s", out)
	}
	if strings.Contains(out, "errors:") {
		t.Errorf("pass result should not print errors section: %s", out)
	}
}

func TestPrintScenarioFailMarksFailingStep(t *testing.T) {
	s := store.New[string]()
	s.Write("x", 0, "bad")

	var buf bytes.Buffer
	report.PrintScenario(&buf, runner.ScenarioResult[string, string]{
		Name:        "bad-value",
		Pass:        false,
		Count:       1,
		Errors:      []string{`"x" must never equal "bad"`},
		FailingStep: 0,
		State:       s,
		Plan: planner.Plan[string]{
			{ClientID: "a", Op: "write(x, bad)"},
		},
	})

	out := buf.String()
	if !strings.Contains(out, "result: FAIL") {
		t.Errorf("missing fail status: %s", out)
	}
	if !strings.Contains(out, `"x" must never equal "bad"`) {
		t.Errorf("missing error message: %s", out)
	}
	if !strings.Contains(out, `"x" => { rev: 1, value: bad }`) {
		t.Errorf("missing state dump: %s", out)
	}
	if !strings.Contains(out, "==> a: write(x, bad)") {
		t.Errorf("missing failing-step marker: %s", out)
	}
}

func TestPrintSummaryTotalsAcrossConfigsAndScenarios(t *testing.T) {
	rep := &runner.Report[string, string, string]{
		Configs: []runner.ConfigReport[string, string, string]{
			{
				Config: "cfg-1",
				Results: []runner.ScenarioResult[string, string]{
					{Name: "a", Pass: true, Count: 2},
					{Name: "b", Pass: false, Count: 1},
				},
			},
		},
	}

	var buf bytes.Buffer
	report.PrintSummary(&buf, rep)

	out := buf.String()
	if !strings.Contains(out, "SUMMARY") {
		t.Errorf("missing summary banner: %s", out)
	}
	if !strings.Contains(out, "PASS (2): a") {
		t.Errorf("missing pass line: %s", out)
	}
	if !strings.Contains(out, "FAIL (1): b") {
		t.Errorf("missing fail line: %s", out)
	}
	if !strings.Contains(out, "Total executions checked = 3") {
		t.Errorf("missing total: %s", out)
	}
}
