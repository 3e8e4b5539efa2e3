package model

import "github.com/atharv3903/pathion/internal/fixed"

// Mode selects the priority function of a search run.
type Mode string

const (
	ModeAStar    Mode = "astar"
	ModeDijkstra Mode = "dijkstra"
)

// Edge is one incident edge as seen from a node during neighbor expansion.
type Edge struct {
	From   string
	To     string
	Weight fixed.Weight
}

// Result is the outcome of one successful search run.
type Result struct {
	Path     []string
	Distance fixed.Weight
	Expanded int
}
