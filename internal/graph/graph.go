// Package graph stores the undirected weighted road network the searches
// run over. Built once at load time, read-only afterwards, so concurrent
// searches need no locking.
package graph

import (
	"sort"

	"github.com/atharv3903/pathion/internal/fixed"
	"github.com/atharv3903/pathion/internal/model"
)

// Graph is an undirected weighted graph keyed by node label. Labels are
// case-sensitive. Each unordered pair of nodes carries at most one edge.
type Graph struct {
	adj map[string]map[string]fixed.Weight

	// sorted node labels, rebuilt lazily after mutation
	nodes []string
	dirty bool
}

func New() *Graph {
	return &Graph{adj: make(map[string]map[string]fixed.Weight)}
}

// AddEdge inserts the edge {u, v} with weight w, implicitly adding both
// endpoints. Re-adding an existing pair replaces the weight.
func (g *Graph) AddEdge(u, v string, w fixed.Weight) {
	g.touch(u)[v] = w
	g.touch(v)[u] = w
	g.dirty = true
}

func (g *Graph) touch(n string) map[string]fixed.Weight {
	m, ok := g.adj[n]
	if !ok {
		m = make(map[string]fixed.Weight)
		g.adj[n] = m
	}
	return m
}

func (g *Graph) ContainsNode(n string) bool {
	_, ok := g.adj[n]
	return ok
}

// Nodes returns all node labels in ascending order. The slice is shared;
// callers must not modify it.
func (g *Graph) Nodes() []string {
	if g.dirty || g.nodes == nil {
		g.nodes = make([]string, 0, len(g.adj))
		for n := range g.adj {
			g.nodes = append(g.nodes, n)
		}
		sort.Strings(g.nodes)
		g.dirty = false
	}
	return g.nodes
}

// NodeCount reports the number of distinct nodes.
func (g *Graph) NodeCount() int {
	return len(g.adj)
}

// Neighbors returns every edge incident to n exactly once, sorted by the
// far endpoint so that expansion order is deterministic.
func (g *Graph) Neighbors(n string) []model.Edge {
	m := g.adj[n]
	if len(m) == 0 {
		return nil
	}
	edges := make([]model.Edge, 0, len(m))
	for to, w := range m {
		edges = append(edges, model.Edge{From: n, To: to, Weight: w})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })
	return edges
}

// EdgeWeight reports the weight of edge {u, v}, if present.
func (g *Graph) EdgeWeight(u, v string) (fixed.Weight, bool) {
	w, ok := g.adj[u][v]
	return w, ok
}
