package demo

import (
	"fmt"

	"github.com/dreamware/kvcheck/internal/runner"
	"github.com/dreamware/kvcheck/internal/store"
)

// Kind enumerates the operations this actor language supports.
type Kind int

const (
	Read Kind = iota
	Write
	Remove
)

func (k Kind) String() string {
	switch k {
	case Read:
		return "read"
	case Write:
		return "write"
	case Remove:
		return "remove"
	default:
		return "unknown"
	}
}

// Op is one act payload: read, write, or remove a key, against a
// string-valued revisioned store.
type Op struct {
	Kind  Kind
	Key   string
	Value string // only meaningful for Write
}

// String renders an Op the way a scenario's execution trace should
// display it (see internal/report).
func (op Op) String() string {
	switch op.Kind {
	case Write:
		return fmt.Sprintf("write(%q, %q)", op.Key, op.Value)
	case Remove:
		return fmt.Sprintf("remove(%q)", op.Key)
	default:
		return fmt.Sprintf("read(%q)", op.Key)
	}
}

// Config is the opaque, per-run configuration forwarded to NewActor. A
// real host's Config typically selects between actor behaviors (e.g.
// "retry on conflict" vs "give up"); this demo config only carries a
// label for the report header.
type Config struct {
	Name string
}

func (c Config) String() string { return c.Name }

// actor dispatches Op against a string-valued Cache. It does not react to
// write/remove conflicts beyond what Cache already does (evict-and-retry
// policies are exactly the kind of domain logic spec.md §4.3 leaves to a
// real host's actor language).
type actor struct {
	cache *store.Cache[string]
}

// NewActor is a runner.ActorFactory for Op against a string-valued Store.
func NewActor(cache *store.Cache[string], _ Config) runner.Actor[Op] {
	return &actor{cache: cache}
}

func (a *actor) Dispatch(op Op) {
	switch op.Kind {
	case Write:
		a.cache.Write(op.Key, op.Value)
	case Remove:
		a.cache.Remove(op.Key)
	case Read:
		a.cache.Read(op.Key)
	}
}
