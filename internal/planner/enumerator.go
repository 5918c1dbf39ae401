package planner

import "golang.org/x/exp/slices"

// choiceRef locates one branch-choice step within a client's sequence,
// and how many alternatives it has.
type choiceRef struct {
	client int
	step   int
	radix  int
}

// Enumerator lazily yields every ordering of a Planner's client
// sequences. Orderings are produced on demand by Next, decoding a flat
// index directly into (interleaving, branch selections) rather than
// materializing the whole set up front.
//
// Enumeration order: for a flat index i in [0, Total), the branch-choice
// selection varies fastest (i % choiceProduct) and the interleaving
// varies slowest (i / choiceProduct) — an arbitrary but fixed and
// deterministic convention (spec.md §4.4 permits any deterministic
// order).
type Enumerator[C any] struct {
	order       []string
	seqs        map[string]*clientSeq[C]
	lens        []int
	total       int
	choiceSteps []choiceRef
	choiceProd  int
	next        int
}

func newEnumerator[C any](order []string, seqs map[string]*clientSeq[C]) *Enumerator[C] {
	lens := make([]int, len(order))
	var choiceSteps []choiceRef

	for ci, name := range order {
		seq := seqs[name]
		lens[ci] = len(seq.steps)
		for si, st := range seq.steps {
			if len(st.alternatives) > 1 {
				choiceSteps = append(choiceSteps, choiceRef{client: ci, step: si, radix: len(st.alternatives)})
			}
		}
	}

	choiceProd := 1
	for _, cs := range choiceSteps {
		choiceProd *= cs.radix
	}

	return &Enumerator[C]{
		order:       order,
		seqs:        seqs,
		lens:        lens,
		total:       multinomial(lens) * choiceProd,
		choiceSteps: choiceSteps,
		choiceProd:  choiceProd,
	}
}

// Total returns the total number of orderings this Enumerator will yield.
func (e *Enumerator[C]) Total() int {
	return e.total
}

// Next returns the next (ordinal, plan) pair in enumeration order, and
// false once every ordering has been yielded. Ordinals start at 0 and are
// assigned in enumeration order, matching spec.md §4.5.
func (e *Enumerator[C]) Next() (int, Plan[C], bool) {
	if e.next >= e.total {
		return 0, nil, false
	}

	ordinal := e.next
	mergeIdx := e.next / e.choiceProd
	choiceIdx := e.next % e.choiceProd
	e.next++

	return ordinal, e.decode(mergeIdx, choiceIdx), true
}

func (e *Enumerator[C]) decode(mergeIdx, choiceIdx int) Plan[C] {
	selected := make(map[choiceKey]int, len(e.choiceSteps))
	rem := choiceIdx
	for _, cs := range e.choiceSteps {
		selected[choiceKey{cs.client, cs.step}] = rem % cs.radix
		rem /= cs.radix
	}

	remaining := slices.Clone(e.lens)
	cursor := make([]int, len(e.order))
	length := 0
	for _, n := range e.lens {
		length += n
	}

	plan := make(Plan[C], 0, length)
	idx := mergeIdx

	for pos := 0; pos < length; pos++ {
		for ci := range e.order {
			if remaining[ci] == 0 {
				continue
			}

			remaining[ci]--
			block := multinomial(remaining)
			remaining[ci]++

			if idx >= block {
				idx -= block
				continue
			}

			remaining[ci]--
			stepIdx := cursor[ci]
			cursor[ci]++

			st := e.seqs[e.order[ci]].steps[stepIdx]
			op := st.alternatives[0]
			if len(st.alternatives) > 1 {
				op = st.alternatives[selected[choiceKey{ci, stepIdx}]]
			}

			plan = append(plan, Act[C]{ClientID: e.order[ci], Op: op})
			break
		}
	}

	return plan
}

type choiceKey struct {
	client int
	step   int
}

// multinomial computes (Σn)! / Πn! for the given per-client remaining
// counts, via sequential binomial multiplication rather than raw
// factorials, to stay within plain int range for the small scenario
// sizes spec.md targets.
func multinomial(counts []int) int {
	result := 1
	total := 0
	for _, n := range counts {
		for k := 1; k <= n; k++ {
			total++
			result = result * total / k
		}
	}
	return result
}
