package runner

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dreamware/kvcheck/internal/planner"
	"github.com/dreamware/kvcheck/internal/store"
)

// runScenario builds the scenario's baseline store, runs every ordering
// of the run-planner across workers goroutines, and joins the results in
// spawn order: the first Fail in that order wins, else the result is a
// Pass at the highest ordinal+1 any worker observed (spec.md §4.5 step 4).
func (r *Runner[T, C, Cfg]) runScenario(cfg Cfg, scenario Scenario[T, C, Cfg], workers int) ScenarioResult[T, C] {
	baseline := buildBaseline(cfg, scenario)

	runPlanner := planner.New[C]()
	scenario.Plan(runPlanner)
	clients := runPlanner.Clients()

	queue := newPlanQueue(runPlanner.Orderings())
	outcomes := make([]workerOutcome[T, C], workers)

	// errgroup.Group is used purely as a convenient Go/Wait joiner here —
	// its own first-error cancellation is unused, since a failing worker
	// must not pre-empt the others (spec.md §5).
	var group errgroup.Group
	for i := 0; i < workers; i++ {
		i := i
		group.Go(func() error {
			outcomes[i] = runWorker(cfg, scenario, baseline, clients, queue)
			return nil
		})
	}
	group.Wait()

	for _, outcome := range outcomes {
		if outcome.isFail {
			return ScenarioResult[T, C]{
				Name:        scenario.Name,
				Pass:        false,
				Count:       outcome.count,
				Errors:      outcome.errors,
				Plan:        outcome.plan,
				FailingStep: outcome.failingStep,
				State:       outcome.state,
			}
		}
	}

	best := 0
	for _, outcome := range outcomes {
		if outcome.count > best {
			best = outcome.count
		}
	}
	return ScenarioResult[T, C]{Name: scenario.Name, Pass: true, Count: best}
}

// buildBaseline dispatches a scenario's Setup sequence — a single "tmp"
// client, using the Setup planner's first (and, for a non-branching
// setup, only) ordering — against a fresh Store to produce the baseline
// every run-plan worker clones from.
func buildBaseline[T, C, Cfg any](cfg Cfg, scenario Scenario[T, C, Cfg]) *store.Store[T] {
	setupPlanner := planner.New[C]()
	scenario.Setup(setupPlanner.Client("tmp"))

	baseline := store.New[T]()
	actor := scenario.NewActor(store.NewCache(baseline), cfg)

	_, plan, ok := setupPlanner.Orderings().Next()
	if !ok {
		return baseline
	}
	for _, act := range plan {
		actor.Dispatch(act.Op)
	}
	return baseline
}

// workerOutcome is one worker goroutine's final result, ready to be
// joined in spawn order by runScenario.
type workerOutcome[T, C any] struct {
	isFail      bool
	count       int
	errors      []string
	plan        planner.Plan[C]
	failingStep int
	state       *store.Store[T]
}

func runWorker[T, C, Cfg any](cfg Cfg, scenario Scenario[T, C, Cfg], baseline *store.Store[T], clients []string, queue *planQueue[C]) workerOutcome[T, C] {
	best := 0

	for {
		ordinal, plan, ok := queue.claim()
		if !ok {
			return workerOutcome[T, C]{count: best}
		}

		clone := baseline.Clone()
		actors := make(map[string]Actor[C], len(clients))
		for _, name := range clients {
			actors[name] = scenario.NewActor(store.NewCache(clone), cfg)
		}

		if outcome, failed := dispatchPlan(scenario, clone, actors, ordinal, plan); failed {
			return outcome
		}

		if ordinal+1 > best {
			best = ordinal + 1
		}
	}
}

func dispatchPlan[T, C, Cfg any](scenario Scenario[T, C, Cfg], clone *store.Store[T], actors map[string]Actor[C], ordinal int, plan planner.Plan[C]) (workerOutcome[T, C], bool) {
	for i, act := range plan {
		actor, known := actors[act.ClientID]
		if !known {
			panic("runner: plan references unknown client " + act.ClientID)
		}
		actor.Dispatch(act.Op)

		if violations := scenario.Check(clone); len(violations) > 0 {
			return workerOutcome[T, C]{
				isFail:      true,
				count:       ordinal + 1,
				errors:      violations,
				plan:        plan,
				failingStep: i,
				state:       clone,
			}, true
		}
	}
	return workerOutcome[T, C]{}, false
}

// planQueue wraps an Enumerator behind a mutex so multiple worker
// goroutines can safely claim successive plans — the one shared mutable
// resource in this model (spec.md §5).
type planQueue[C any] struct {
	mu   sync.Mutex
	enum *planner.Enumerator[C]
}

func newPlanQueue[C any](enum *planner.Enumerator[C]) *planQueue[C] {
	return &planQueue[C]{enum: enum}
}

func (q *planQueue[C]) claim() (int, planner.Plan[C], bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.enum.Next()
}
