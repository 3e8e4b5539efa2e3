// Package search implements best-first shortest-path search over the road
// graph, in two modes sharing one loop: uniform cost (Dijkstra) and A* with
// a supplied estimate table. All arithmetic is on fixed-point weights.
package search

import (
	"errors"
	"fmt"

	"github.com/atharv3903/pathion/internal/fixed"
	"github.com/atharv3903/pathion/internal/graph"
	"github.com/atharv3903/pathion/internal/heur"
	"github.com/atharv3903/pathion/internal/model"
)

var (
	// ErrUnknownNode reports a start or goal label absent from the graph.
	ErrUnknownNode = errors.New("search: unknown node")

	// ErrUnreachable reports that the frontier emptied before the goal was
	// popped; no path exists.
	ErrUnreachable = errors.New("search: goal unreachable")

	// ErrCorruptPath reports a broken or cyclic predecessor chain during
	// path reconstruction. This cannot happen unless relaxation is buggy.
	ErrCorruptPath = errors.New("search: corrupt predecessor chain")
)

// Search computes the shortest path from start to goal. A nil table runs
// plain Dijkstra; a non-nil table runs A* with f = dist + h(node, goal).
// Result.Expanded counts nodes actually popped and processed, stale heap
// entries excluded, so the two modes can be compared on identical inputs.
func Search(g *graph.Graph, table *heur.Table, start, goal string) (model.Result, error) {
	if !g.ContainsNode(start) {
		return model.Result{}, fmt.Errorf("%w: %q", ErrUnknownNode, start)
	}
	if !g.ContainsNode(goal) {
		return model.Result{}, fmt.Errorf("%w: %q", ErrUnknownNode, goal)
	}

	dist := map[string]fixed.Weight{start: 0}
	prev := map[string]string{}
	fr := newFrontier(g.NodeCount())
	expanded := 0

	prio, err := priority(table, start, goal, 0)
	if err != nil {
		return model.Result{}, err
	}
	fr.push(start, prio, 0)

	for {
		item, ok := fr.pop()
		if !ok {
			return model.Result{}, fmt.Errorf("%w: no path from %q to %q", ErrUnreachable, start, goal)
		}
		u := item.node

		// Lazy re-push leaves outdated entries behind; only the pop whose
		// distance component still matches dist[u] is live.
		if item.g != dist[u] {
			continue
		}

		expanded++

		if u == goal {
			path, err := reconstruct(prev, start, goal, g.NodeCount())
			if err != nil {
				return model.Result{}, err
			}
			return model.Result{Path: path, Distance: dist[goal], Expanded: expanded}, nil
		}

		for _, e := range g.Neighbors(u) {
			alt := dist[u] + e.Weight
			if old, seen := dist[e.To]; seen && alt >= old {
				continue
			}
			dist[e.To] = alt
			prev[e.To] = u

			prio, err := priority(table, e.To, goal, alt)
			if err != nil {
				return model.Result{}, err
			}
			fr.push(e.To, prio, alt)
		}
	}
}

// priority applies the mode's f. Missing estimates are surfaced, never
// coerced to zero.
func priority(table *heur.Table, node, goal string, g fixed.Weight) (fixed.Weight, error) {
	if table == nil {
		return g, nil
	}
	h, err := table.Estimate(node, goal)
	if err != nil {
		return 0, err
	}
	return g + h, nil
}

// reconstruct walks prev from goal back to start and reverses. The walk is
// bounded by the node count; exceeding it, or hitting a node with no
// predecessor before start, means the relaxation invariant was violated.
func reconstruct(prev map[string]string, start, goal string, bound int) ([]string, error) {
	path := []string{goal}
	cur := goal
	for cur != start {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: no predecessor for %q", ErrCorruptPath, cur)
		}
		path = append(path, p)
		cur = p
		if len(path) > bound {
			return nil, fmt.Errorf("%w: cycle detected at %q", ErrCorruptPath, cur)
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
