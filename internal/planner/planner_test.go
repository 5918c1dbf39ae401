package planner

import (
	"fmt"
	"testing"
)

func allOrderings[C any](p *Planner[C]) []Plan[C] {
	enum := p.Orderings()
	var plans []Plan[C]
	for {
		_, plan, ok := enum.Next()
		if !ok {
			break
		}
		plans = append(plans, plan)
	}
	return plans
}

func TestEmptyScenario(t *testing.T) {
	p := New[string]()
	p.Client("tmp")

	plans := allOrderings(p)
	if len(plans) != 1 {
		t.Fatalf("expected exactly 1 ordering for an empty single-client scenario, got %d", len(plans))
	}
	if len(plans[0]) != 0 {
		t.Fatalf("expected an empty plan, got %v", plans[0])
	}
}

func TestSingleClientSequencePreservesOrder(t *testing.T) {
	p := New[string]()
	p.Client("a").Do("write b").Do("write c").Do("remove")

	plans := allOrderings(p)
	if len(plans) != 1 {
		t.Fatalf("expected exactly 1 ordering for a single client, got %d", len(plans))
	}

	want := []string{"write b", "write c", "remove"}
	for i, act := range plans[0] {
		if act.ClientID != "a" || act.Op != want[i] {
			t.Fatalf("expected program order %v, got %v", want, plans[0])
		}
	}
}

func TestTwoClientsOneActEachYieldsTwoOrderings(t *testing.T) {
	p := New[string]()
	p.Client("a").Do("write x")
	p.Client("b").Do("write y")

	plans := allOrderings(p)
	if len(plans) != 2 {
		t.Fatalf("expected 2 orderings (2!/(1!1!)), got %d", len(plans))
	}

	seen := map[string]bool{}
	for _, plan := range plans {
		if len(plan) != 2 {
			t.Fatalf("expected plans of length 2, got %v", plan)
		}
		seen[fmt.Sprintf("%s,%s", plan[0].ClientID, plan[1].ClientID)] = true
	}
	if !seen["a,b"] || !seen["b,a"] {
		t.Fatalf("expected both interleavings to be present, got %v", seen)
	}
}

func TestMultinomialCount(t *testing.T) {
	p := New[string]()
	p.Client("a").Do("1").Do("2")
	p.Client("b").Do("1")

	enum := p.Orderings()
	if enum.Total() != 3 {
		t.Fatalf("expected multinomial(2,1) = 3 orderings, got %d", enum.Total())
	}

	plans := allOrderings(p)
	if len(plans) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(plans))
	}
	for _, plan := range plans {
		var aOps []string
		for _, act := range plan {
			if act.ClientID == "a" {
				aOps = append(aOps, act.Op)
			}
		}
		if len(aOps) != 2 || aOps[0] != "1" || aOps[1] != "2" {
			t.Fatalf("expected client a's own order preserved within plan, got %v", plan)
		}
	}
}

func TestOrderingsAreDeterministicAcrossRuns(t *testing.T) {
	build := func() *Planner[string] {
		p := New[string]()
		p.Client("a").Do("1").Do("2")
		p.Client("b").Do("1")
		return p
	}

	first := allOrderings(build())
	second := allOrderings(build())

	if fmt.Sprint(first) != fmt.Sprint(second) {
		t.Fatalf("expected deterministic enumeration, got %v then %v", first, second)
	}
}

func TestChoicePoints(t *testing.T) {
	p := New[string]()
	p.Client("a").Choose("left", "right")

	enum := p.Orderings()
	if enum.Total() != 2 {
		t.Fatalf("expected 2 orderings for a 2-way choice, got %d", enum.Total())
	}

	plans := allOrderings(p)
	seen := map[string]bool{}
	for _, plan := range plans {
		if len(plan) != 1 {
			t.Fatalf("expected single-act plans, got %v", plan)
		}
		seen[plan[0].Op] = true
	}
	if !seen["left"] || !seen["right"] {
		t.Fatalf("expected both choices enumerated, got %v", seen)
	}
}

func TestChoicePointsCrossedWithInterleaving(t *testing.T) {
	p := New[string]()
	p.Client("a").Choose("left", "right")
	p.Client("b").Do("y")

	enum := p.Orderings()
	if enum.Total() != 4 { // 2 interleavings * 2 choices
		t.Fatalf("expected 4 orderings, got %d", enum.Total())
	}
}

func TestClientsReturnsInsertionOrder(t *testing.T) {
	p := New[string]()
	p.Client("b")
	p.Client("a")
	p.Client("c")

	got := p.Clients()
	want := []string{"b", "a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected insertion order %v, got %v", want, got)
		}
	}
}
