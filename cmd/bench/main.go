// bench samples random start/goal queries and compares A* against Dijkstra
// offline: latency percentiles per mode, total nodes expanded, and a sanity
// check that both modes agree on every distance.
package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/atharv3903/pathion/internal/graph"
	"github.com/atharv3903/pathion/internal/heur"
	"github.com/atharv3903/pathion/internal/model"
	"github.com/atharv3903/pathion/internal/parse"
	"github.com/atharv3903/pathion/internal/search"
	"github.com/atharv3903/pathion/internal/store"
)

type modeStats struct {
	name      string
	latencies []time.Duration
	expanded  int
}

func main() {
	routesPath := flag.String("routes", "routes.txt", "route list file")
	heurPath := flag.String("heur", "euclidian.txt", "heuristic estimate file")
	dsn := flag.String("dsn", os.Getenv("DB_DSN"), "MySQL DSN; load from the database instead of files")
	queries := flag.Int("n", 1000, "number of sampled queries")
	seed := flag.Int64("seed", 1, "RNG seed for query sampling")
	csvPath := flag.String("csv", "", "optional CSV output path")
	flag.Parse()

	g, t, err := load(*routesPath, *heurPath, *dsn)
	if err != nil {
		log.Fatal(err)
	}

	nodes := g.Nodes()
	if len(nodes) < 2 {
		log.Fatal("bench: need at least two nodes")
	}

	rng := rand.New(rand.NewSource(*seed))
	astar := &modeStats{name: "astar"}
	dijkstra := &modeStats{name: "dijkstra"}
	unreachable := 0
	heurMisses := 0
	mismatches := 0

	for i := 0; i < *queries; i++ {
		from := nodes[rng.Intn(len(nodes))]
		to := nodes[rng.Intn(len(nodes))]

		aRes, aErr := timed(astar, g, t, from, to)
		dRes, dErr := timed(dijkstra, g, nil, from, to)

		switch {
		case aErr == nil && dErr == nil:
			if aRes.Distance != dRes.Distance {
				mismatches++
				log.Printf("distance mismatch %s->%s: astar=%s dijkstra=%s", from, to, aRes.Distance, dRes.Distance)
			}
		case errors.Is(aErr, search.ErrUnreachable) || errors.Is(dErr, search.ErrUnreachable):
			unreachable++
		case errors.Is(aErr, heur.ErrMissingEstimate):
			heurMisses++
		default:
			log.Fatalf("bench: query %s->%s: astar=%v dijkstra=%v", from, to, aErr, dErr)
		}
	}

	fmt.Printf("%d queries (%d unreachable, %d missing estimates, %d mismatches)\n",
		*queries, unreachable, heurMisses, mismatches)
	fmt.Println("\nmode,avg_us,p50_us,p95_us,p99_us,expanded_total")
	rows := []string{report(astar), report(dijkstra)}
	for _, r := range rows {
		fmt.Println(r)
	}

	if *csvPath != "" {
		f, err := os.Create(*csvPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		fmt.Fprintln(f, "mode,avg_us,p50_us,p95_us,p99_us,expanded_total")
		for _, r := range rows {
			fmt.Fprintln(f, r)
		}
		log.Printf("Saved %s", *csvPath)
	}
}

func timed(ms *modeStats, g *graph.Graph, t *heur.Table, from, to string) (model.Result, error) {
	begin := time.Now()
	res, err := search.Search(g, t, from, to)
	lat := time.Since(begin)
	if err != nil {
		return model.Result{}, err
	}
	ms.latencies = append(ms.latencies, lat)
	ms.expanded += res.Expanded
	return res, nil
}

func report(ms *modeStats) string {
	avg := computeAvg(ms.latencies)
	p50, p95, p99 := computePercentiles(ms.latencies)
	return fmt.Sprintf("%s,%.1f,%.1f,%.1f,%.1f,%d", ms.name, avg, p50, p95, p99, ms.expanded)
}

func computeAvg(l []time.Duration) float64 {
	if len(l) == 0 {
		return 0
	}
	var sum time.Duration
	for _, x := range l {
		sum += x
	}
	return float64(sum.Microseconds()) / float64(len(l))
}

func computePercentiles(l []time.Duration) (p50, p95, p99 float64) {
	if len(l) == 0 {
		return 0, 0, 0
	}
	tmp := make([]time.Duration, len(l))
	copy(tmp, l)
	sort.Slice(tmp, func(i, j int) bool { return tmp[i] < tmp[j] })

	idx := func(p float64) int {
		i := int(float64(len(tmp)) * p)
		if i >= len(tmp) {
			i = len(tmp) - 1
		}
		return i
	}

	return float64(tmp[idx(0.50)].Microseconds()),
		float64(tmp[idx(0.95)].Microseconds()),
		float64(tmp[idx(0.99)].Microseconds())
}

func load(routesPath, heurPath, dsn string) (*graph.Graph, *heur.Table, error) {
	if dsn != "" {
		db, err := sql.Open("mysql", dsn)
		if err != nil {
			return nil, nil, err
		}
		defer db.Close()
		st := store.Store{DB: db}
		g, err := st.LoadGraph()
		if err != nil {
			return nil, nil, err
		}
		t, err := st.LoadEstimates()
		if err != nil {
			return nil, nil, err
		}
		return g, t, nil
	}

	rf, err := os.Open(routesPath)
	if err != nil {
		return nil, nil, err
	}
	defer rf.Close()
	g, err := parse.Routes(rf)
	if err != nil {
		return nil, nil, err
	}

	hf, err := os.Open(heurPath)
	if err != nil {
		return nil, nil, err
	}
	defer hf.Close()
	t, err := parse.Estimates(hf)
	if err != nil {
		return nil, nil, err
	}
	return g, t, nil
}
