package planner

import (
	"sync"

	"golang.org/x/exp/slices"
)

// Act is one atomic plan step: a client id and an opaque, domain-specific
// operation payload. The engine treats Op as opaque except that it is
// carried through to whichever Actor owns ClientID.
type Act[C any] struct {
	ClientID string
	Op       C
}

// Plan is one linearization of a scenario's per-client act sequences: a
// flat, ordered list of Acts honoring each client's internal order.
type Plan[C any] []Act[C]

// step is one position in a client's sequence: ordinarily a single
// committed Op, or — at a branch point created by Client.Choose — a set
// of alternative Ops, exactly one of which is selected per ordering.
type step[C any] struct {
	alternatives []C
}

// clientSeq accumulates one client's steps in append order.
type clientSeq[C any] struct {
	name  string
	steps []step[C]
}

// Client is a builder handle for appending Acts to one client's sequence.
// Obtained from Planner.Client; methods return the same Client to allow
// chaining.
type Client[C any] struct {
	planner *Planner[C]
	seq     *clientSeq[C]
}

// Do appends a single, non-branching op to this client's sequence.
func (c *Client[C]) Do(op C) *Client[C] {
	c.planner.mu.Lock()
	defer c.planner.mu.Unlock()

	c.seq.steps = append(c.seq.steps, step[C]{alternatives: []C{op}})
	return c
}

// Choose appends a branch point: exactly one of the given alternatives is
// selected per ordering, and Orderings enumerates every alternative.
// Choose requires at least one alternative.
func (c *Client[C]) Choose(alternatives ...C) *Client[C] {
	if len(alternatives) == 0 {
		panic("planner: Choose requires at least one alternative")
	}

	c.planner.mu.Lock()
	defer c.planner.mu.Unlock()

	c.seq.steps = append(c.seq.steps, step[C]{alternatives: alternatives})
	return c
}

// Planner owns the per-client act sequences for one scenario (either the
// single-client setup sequence, or the multi-client run sequence) and
// enumerates their interleavings once building is complete.
type Planner[C any] struct {
	mu    sync.Mutex
	order []string
	seqs  map[string]*clientSeq[C]
}

// New creates an empty Planner.
func New[C any]() *Planner[C] {
	return &Planner[C]{seqs: make(map[string]*clientSeq[C])}
}

// Client returns the builder for the named client, creating its (empty)
// sequence on first use. Clients are otherwise identified purely by this
// string; "tmp" is conventionally reserved for a scenario's setup client
// (see internal/runner).
func (p *Planner[C]) Client(name string) *Client[C] {
	p.mu.Lock()
	defer p.mu.Unlock()

	seq, ok := p.seqs[name]
	if !ok {
		seq = &clientSeq[C]{name: name}
		p.seqs[name] = seq
		p.order = append(p.order, name)
	}
	return &Client[C]{planner: p, seq: seq}
}

// Clients returns every known client name, in the order each was first
// referenced via Client.
func (p *Planner[C]) Clients() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	names := slices.Clone(p.order)
	return names
}

// Orderings returns a lazy Enumerator over every legal interleaving of
// this planner's client sequences, crossed with every combination of
// branch choices. See enumerator.go for the decoding algorithm.
func (p *Planner[C]) Orderings() *Enumerator[C] {
	p.mu.Lock()
	defer p.mu.Unlock()

	return newEnumerator(p.order, p.seqs)
}
