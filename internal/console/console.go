// Package console drives the interactive loop: list the known locations,
// read a start and destination, run the same query through A* and Dijkstra,
// and render the route with per-mode expansion counts and wall-clock times.
// Timing lives here, not in the engine; the engine stays deterministic.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atharv3903/pathion/internal/cache"
	"github.com/atharv3903/pathion/internal/graph"
	"github.com/atharv3903/pathion/internal/heur"
	"github.com/atharv3903/pathion/internal/model"
	"github.com/atharv3903/pathion/internal/search"
)

const (
	prompt       = "  >> "
	quitSentinel = "quit"
	nodesPerRow  = 5
)

type Console struct {
	Graph *graph.Graph
	Table *heur.Table
	Cache *cache.ResultCache

	// ClearScreen gates the ANSI clear between iterations so tests can
	// capture plain output.
	ClearScreen bool

	in  *bufio.Scanner
	out io.Writer
}

func New(g *graph.Graph, t *heur.Table, rc *cache.ResultCache, in io.Reader, out io.Writer) *Console {
	return &Console{
		Graph: g,
		Table: t,
		Cache: rc,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run loops until the user types "quit" (either prompt, any case) or input
// ends. Always returns nil on a clean exit; search errors are rendered as a
// single line and the loop keeps going.
func (c *Console) Run() error {
	for {
		c.clear()
		c.listLocations()

		fmt.Fprintln(c.out, "--\nWhat city are you starting at?")
		fmt.Fprintf(c.out, "Type %q at any time to exit.\n", "Quit")
		from, ok := c.readLine()
		if !ok || strings.EqualFold(from, quitSentinel) {
			return nil
		}

		fmt.Fprintln(c.out, "What city are you going to?")
		to, ok := c.readLine()
		if !ok || strings.EqualFold(to, quitSentinel) {
			return nil
		}

		c.clear()
		c.compare(from, to)

		fmt.Fprint(c.out, "Press ENTER to continue...")
		if _, ok := c.readRaw(); !ok {
			return nil
		}
	}
}

// compare runs the query in both modes and renders the comparison. The two
// modes are treated symmetrically: each gets its own diagnostic on failure
// and neither aborts the loop.
func (c *Console) compare(from, to string) {
	fmt.Fprintln(c.out, "\nRunning A* Algorithm...")
	aRes, aDur, aHit, aErr := c.run(from, to, model.ModeAStar)
	c.renderOutcome(aRes, aErr)

	// Both modes consult the same graph, so an unknown label fails them
	// identically; one diagnostic is enough.
	if errors.Is(aErr, search.ErrUnknownNode) {
		fmt.Fprintln(c.out)
		return
	}

	fmt.Fprintln(c.out, "\nRunning Dijkstra Algorithm...")
	dRes, dDur, dHit, dErr := c.run(from, to, model.ModeDijkstra)
	c.renderOutcome(dRes, dErr)

	if aErr == nil {
		c.renderRoute(aRes)
	} else if dErr == nil {
		c.renderRoute(dRes)
	}

	fmt.Fprintln(c.out, "--")
	c.renderTiming("A*", aDur, aHit, aErr)
	c.renderTiming("Dijkstra", dDur, dHit, dErr)
	fmt.Fprintln(c.out)
}

// run resolves one (start, goal, mode) query, consulting the result cache
// before timing a fresh search.
func (c *Console) run(from, to string, mode model.Mode) (model.Result, time.Duration, bool, error) {
	key := cache.Key{Start: from, Goal: to, Mode: mode}
	if c.Cache != nil {
		if res, ok := c.Cache.Get(key); ok {
			return res, 0, true, nil
		}
	}

	table := c.Table
	if mode == model.ModeDijkstra {
		table = nil
	}

	begin := time.Now()
	res, err := search.Search(c.Graph, table, from, to)
	dur := time.Since(begin)
	if err != nil {
		return model.Result{}, dur, false, err
	}

	if c.Cache != nil {
		c.Cache.Put(key, res)
	}
	return res, dur, false, nil
}

func (c *Console) renderOutcome(res model.Result, err error) {
	if err != nil {
		fmt.Fprintln(c.out, diagnostic(err))
		return
	}
	fmt.Fprintf(c.out, "%d nodes considered\n", res.Expanded)
}

// renderRoute prints each leg with its edge weight, then the total.
func (c *Console) renderRoute(res model.Result) {
	fmt.Fprintln(c.out)
	for i := 0; i+1 < len(res.Path); i++ {
		u, v := res.Path[i], res.Path[i+1]
		w, _ := c.Graph.EdgeWeight(u, v)
		fmt.Fprintf(c.out, "Take %s to %s: %s mi.\n", u, v, w)
	}
	fmt.Fprintf(c.out, "Total distance: %s mi.\n", res.Distance)
}

func (c *Console) renderTiming(name string, dur time.Duration, hit bool, err error) {
	switch {
	case err != nil:
		fmt.Fprintf(c.out, "%s did not complete.\n", name)
	case hit:
		fmt.Fprintf(c.out, "%s result served from cache.\n", name)
	default:
		fmt.Fprintf(c.out, "%s time to compute: %d micros.\n", name, dur.Microseconds())
	}
}

// listLocations prints all node labels in fixed-width columns.
func (c *Console) listLocations() {
	fmt.Fprintln(c.out, "Your Locations:")
	fmt.Fprintln(c.out)
	for i, n := range c.Graph.Nodes() {
		fmt.Fprintf(c.out, "%-15s", n)
		if i%nodesPerRow == nodesPerRow-1 {
			fmt.Fprintln(c.out)
		}
	}
	fmt.Fprintln(c.out)
}

func (c *Console) clear() {
	if c.ClearScreen {
		fmt.Fprint(c.out, "\x1b[2J\x1b[H")
	}
}

// readLine prompts and returns the trimmed next input line. ok is false
// when input is exhausted.
func (c *Console) readLine() (string, bool) {
	fmt.Fprint(c.out, prompt)
	return c.readRaw()
}

func (c *Console) readRaw() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// diagnostic maps a search failure to its single user-facing line.
func diagnostic(err error) string {
	switch {
	case errors.Is(err, search.ErrUnknownNode):
		return "Cannot route: one or more locations do not exist."
	case errors.Is(err, search.ErrUnreachable):
		return "Route could not be completed!"
	case errors.Is(err, heur.ErrMissingEstimate):
		return fmt.Sprintf("Heuristic data is incomplete: %v", err)
	default:
		return err.Error()
	}
}
