package demo

import (
	"fmt"

	"github.com/dreamware/kvcheck/internal/planner"
	"github.com/dreamware/kvcheck/internal/runner"
	"github.com/dreamware/kvcheck/internal/store"
)

// Suite is a named collection of built-in scenarios cmd/kvcheck can run
// without a host supplying its own Op/Config/ActorFactory.
type Suite struct {
	Name      string
	Configs   []Config
	Scenarios []runner.Scenario[string, Op, Config]
}

// Suites lists every built-in suite, in the order cmd/kvcheck's
// --suite flag should present them.
func Suites() []Suite {
	return []Suite{CommutativeSuite(), ConflictSuite(), ChoiceSuite()}
}

// CommutativeSuite checks that two clients writing disjoint keys always
// converge to both writes being visible, regardless of interleaving.
func CommutativeSuite() Suite {
	return Suite{
		Name:    "commutative",
		Configs: []Config{{Name: "default"}},
		Scenarios: []runner.Scenario[string, Op, Config]{
			{
				Name:  "disjoint-writes-always-both-land",
				Setup: func(*planner.Client[Op]) {},
				Plan: func(p *planner.Planner[Op]) {
					p.Client("writer-a").Do(Op{Kind: Write, Key: "a", Value: "1"})
					p.Client("writer-b").Do(Op{Kind: Write, Key: "b", Value: "1"})
				},
				Check: func(s *store.Store[string]) []string {
					// The checker runs after every act; both keys are only
					// required once both writes have been applied.
					if s.Seq() < 2 {
						return nil
					}
					var violations []string
					for _, key := range []string{"a", "b"} {
						if _, _, ok := s.Read(key); !ok {
							violations = append(violations, fmt.Sprintf("%q was never written", key))
						}
					}
					return violations
				},
				NewActor: NewActor,
			},
		},
	}
}

// ConflictSuite races two clients on the same key. In the write-write
// scenario the checker requires "x" to hold one of the two written values
// after every step; the remove/recreate scenario checks no invariant.
func ConflictSuite() Suite {
	return Suite{
		Name:    "conflict",
		Configs: []Config{{Name: "default"}},
		Scenarios: []runner.Scenario[string, Op, Config]{
			{
				Name:  "racing-writes-on-same-key",
				Setup: func(*planner.Client[Op]) {},
				Plan: func(p *planner.Planner[Op]) {
					p.Client("writer-a").Do(Op{Kind: Write, Key: "x", Value: "a"})
					p.Client("writer-b").Do(Op{Kind: Write, Key: "x", Value: "b"})
				},
				Check: func(s *store.Store[string]) []string {
					_, value, ok := s.Read("x")
					if !ok {
						return []string{`"x" must hold a value once both clients have run`}
					}
					if value != "a" && value != "b" {
						return []string{fmt.Sprintf("%q holds unexpected value %q", "x", value)}
					}
					return nil
				},
				NewActor: NewActor,
			},
			{
				Name: "remove-then-recreate",
				Setup: func(c *planner.Client[Op]) {
					c.Do(Op{Kind: Write, Key: "x", Value: "seed"})
				},
				Plan: func(p *planner.Planner[Op]) {
					remover := p.Client("remover")
					remover.Do(Op{Kind: Remove, Key: "x"})
					p.Client("recreator").Do(Op{Kind: Write, Key: "x", Value: "fresh"})
				},
				Check: func(s *store.Store[string]) []string {
					return nil
				},
				NewActor: NewActor,
			},
		},
	}
}

// ChoiceSuite exercises a client with a branch point, confirming every
// alternative is independently explored.
func ChoiceSuite() Suite {
	return Suite{
		Name:    "choice",
		Configs: []Config{{Name: "default"}},
		Scenarios: []runner.Scenario[string, Op, Config]{
			{
				Name:  "branching-write",
				Setup: func(*planner.Client[Op]) {},
				Plan: func(p *planner.Planner[Op]) {
					p.Client("writer").Choose(
						Op{Kind: Write, Key: "x", Value: "left"},
						Op{Kind: Write, Key: "x", Value: "right"},
					)
				},
				Check: func(s *store.Store[string]) []string {
					_, value, ok := s.Read("x")
					if !ok || (value != "left" && value != "right") {
						return []string{`"x" must end up "left" or "right"`}
					}
					return nil
				},
				NewActor: NewActor,
			},
		},
	}
}
