// Package heur holds the heuristic estimate table consumed by the A* mode.
//
// The table maps an ordered (node, goal) pair to an admissible lower bound
// on the remaining distance. The data is taken on trust at load time except
// for one rule enforced there, h(g, g) == 0; Validate exists for tests and
// tooling that want to check consistency explicitly.
package heur

import (
	"errors"
	"fmt"

	"github.com/atharv3903/pathion/internal/fixed"
	"github.com/atharv3903/pathion/internal/graph"
)

var (
	// ErrMissingEstimate reports a lookup for a pair the table has no entry
	// for. Searches surface this instead of assuming zero: a silent zero
	// would still find the right path, just arbitrarily slowly, and would
	// hide a data error.
	ErrMissingEstimate = errors.New("heur: missing estimate")

	// ErrGoalEstimate reports a nonzero self-estimate h(g, g) in the input.
	ErrGoalEstimate = errors.New("heur: nonzero estimate for goal to itself")

	// ErrInconsistent reports a triple violating h(u,g) <= w(u,v) + h(v,g).
	ErrInconsistent = errors.New("heur: inconsistent estimate")
)

type pair struct{ from, goal string }

// Table is an ordered-pair estimate map. (from, to) and (to, from) are
// distinct entries. Immutable once loaded.
type Table struct {
	est map[pair]fixed.Weight
}

func NewTable() *Table {
	return &Table{est: make(map[pair]fixed.Weight)}
}

// Set records the estimate from node to goal. A nonzero estimate for a node
// to itself is rejected, the engine relies on h(g, g) == 0.
func (t *Table) Set(from, goal string, w fixed.Weight) error {
	if from == goal && w != 0 {
		return fmt.Errorf("%w: %s (%s)", ErrGoalEstimate, goal, w)
	}
	t.est[pair{from, goal}] = w
	return nil
}

// Len reports the number of entries.
func (t *Table) Len() int {
	return len(t.est)
}

// Each calls fn for every entry. Iteration order is unspecified.
func (t *Table) Each(fn func(from, goal string, w fixed.Weight)) {
	for p, w := range t.est {
		fn(p.from, p.goal, w)
	}
}

// Estimate returns h(u, goal). u == goal is always 0, entry or not.
func (t *Table) Estimate(u, goal string) (fixed.Weight, error) {
	if u == goal {
		return 0, nil
	}
	w, ok := t.est[pair{u, goal}]
	if !ok {
		return 0, fmt.Errorf("%w: %s -> %s", ErrMissingEstimate, u, goal)
	}
	return w, nil
}

// Validate checks the consistency inequality h(u,g) <= w(u,v) + h(v,g) for
// every edge of g and every goal in goals. Inconsistent data does not break
// optimality (that only needs admissibility) but voids the finalize-on-pop
// assumption, so callers that care should check before relying on expansion
// counts. Missing entries fail the check as ErrMissingEstimate.
func (t *Table) Validate(g *graph.Graph, goals []string) error {
	for _, goal := range goals {
		for _, u := range g.Nodes() {
			hu, err := t.Estimate(u, goal)
			if err != nil {
				return err
			}
			for _, e := range g.Neighbors(u) {
				hv, err := t.Estimate(e.To, goal)
				if err != nil {
					return err
				}
				if hu > e.Weight+hv {
					return fmt.Errorf("%w: h(%s,%s)=%s > w(%s,%s)=%s + h(%s,%s)=%s",
						ErrInconsistent, u, goal, hu, u, e.To, e.Weight, e.To, goal, hv)
				}
			}
		}
	}
	return nil
}
