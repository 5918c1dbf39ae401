package runner

import (
	"github.com/rs/zerolog"

	"github.com/dreamware/kvcheck/internal/planner"
	"github.com/dreamware/kvcheck/internal/store"
)

const defaultWorkers = 4

// Actor interprets one dispatched Act's Op against the Cache it was
// constructed with. A real host's Actor typically performs reads/writes/
// removes against the cache and may record conflicts as part of its own
// domain logic (spec.md §7 — a store conflict is not an engine-level
// error).
type Actor[C any] interface {
	Dispatch(op C)
}

// ActorFactory constructs an Actor[C] for one client, given a fresh Cache
// over the plan's store clone and the scenario's opaque Config. Supplied
// by the host; the engine never interprets C or Cfg itself.
type ActorFactory[T, C, Cfg any] func(cache *store.Cache[T], cfg Cfg) Actor[C]

// Checker evaluates invariants over the store after every dispatched Act.
// A nil or empty return means "ok"; a non-empty return is a list of
// human-readable violation messages and ends that plan's execution.
// Checker must be deterministic and side-effect-free.
type Checker[T any] func(s *store.Store[T]) []string

// Scenario is one test author's description of a concurrent scenario: a
// Setup closure establishing baseline state via a single "tmp" client, a
// Plan closure populating the multi-client scenario to check, the
// invariant Checker to run after every act, and the ActorFactory that
// interprets Acts for this scenario's Op type.
type Scenario[T, C, Cfg any] struct {
	Name     string
	Setup    func(*planner.Client[C])
	Plan     func(*planner.Planner[C])
	Check    Checker[T]
	NewActor ActorFactory[T, C, Cfg]
}

// ScenarioResult is the outcome of running one (Config, Scenario) pair.
type ScenarioResult[T, C any] struct {
	Name  string
	Pass  bool
	Count int

	// The following are only populated when Pass is false.
	Errors      []string
	Plan        planner.Plan[C]
	FailingStep int
	State       *store.Store[T]
}

// ConfigReport pairs one Config with the results of every scenario run
// against it.
type ConfigReport[T, C, Cfg any] struct {
	Config  Cfg
	Results []ScenarioResult[T, C]
}

// Report is the full output of Run: one ConfigReport per Config, in the
// order Configs were supplied to New.
type Report[T, C, Cfg any] struct {
	Configs []ConfigReport[T, C, Cfg]
}

// Pass reports whether every scenario, across every config, passed.
func (rep *Report[T, C, Cfg]) Pass() bool {
	for _, cr := range rep.Configs {
		for _, res := range cr.Results {
			if !res.Pass {
				return false
			}
		}
	}
	return true
}

// TotalChecked sums Count across every scenario result in the report.
func (rep *Report[T, C, Cfg]) TotalChecked() int {
	total := 0
	for _, cr := range rep.Configs {
		for _, res := range cr.Results {
			total += res.Count
		}
	}
	return total
}

// Runner orchestrates a set of Configs against a set of Scenarios, each
// (Config, Scenario) pair run independently.
type Runner[T, C, Cfg any] struct {
	// Workers is the worker pool size; defaults to 4 (see defaultWorkers)
	// when <= 0. Tests on the Runner itself should set Workers = 1 for a
	// unique, single-threaded outcome (spec.md §9).
	Workers int
	// Logger receives debug-level progress lines. The zero value (a
	// disabled logger) keeps the library silent by default; cmd/kvcheck
	// wires an active one.
	Logger zerolog.Logger

	configs   []Cfg
	scenarios []Scenario[T, C, Cfg]
}

// New creates a Runner over the given Configs. Each Config is later
// crossed with every added Scenario.
func New[T, C, Cfg any](configs []Cfg) *Runner[T, C, Cfg] {
	return &Runner[T, C, Cfg]{
		Workers: defaultWorkers,
		Logger:  zerolog.Nop(),
		configs: append([]Cfg(nil), configs...),
	}
}

// Add registers a scenario to run against every Config.
func (r *Runner[T, C, Cfg]) Add(s Scenario[T, C, Cfg]) {
	r.scenarios = append(r.scenarios, s)
}

// Run executes every (Config, Scenario) pair and returns the aggregated
// Report.
func (r *Runner[T, C, Cfg]) Run() *Report[T, C, Cfg] {
	workers := r.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	report := &Report[T, C, Cfg]{}

	for _, cfg := range r.configs {
		cr := ConfigReport[T, C, Cfg]{Config: cfg}

		for _, scenario := range r.scenarios {
			r.Logger.Debug().Str("scenario", scenario.Name).Int("workers", workers).Msg("running scenario")
			result := r.runScenario(cfg, scenario, workers)
			r.Logger.Debug().Str("scenario", scenario.Name).Bool("pass", result.Pass).Int("checked", result.Count).Msg("scenario finished")
			cr.Results = append(cr.Results, result)
		}

		report.Configs = append(report.Configs, cr)
	}

	return report
}
