package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"

	"github.com/atharv3903/pathion/internal/cache"
	"github.com/atharv3903/pathion/internal/config"
	"github.com/atharv3903/pathion/internal/console"
	"github.com/atharv3903/pathion/internal/graph"
	"github.com/atharv3903/pathion/internal/heur"
	"github.com/atharv3903/pathion/internal/parse"
	"github.com/atharv3903/pathion/internal/store"
)

func main() {
	cfg := config.FromFlags()

	g, t, err := load(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Loaded %d locations, %d heuristic entries", g.NodeCount(), t.Len())

	c := console.New(g, t, cache.NewResultCache(), os.Stdin, os.Stdout)
	c.ClearScreen = true
	if err := c.Run(); err != nil {
		log.Fatal(err)
	}
}

// load reads the graph and estimate table from MySQL when a DSN is
// configured, from the text files otherwise.
func load(cfg config.Config) (*graph.Graph, *heur.Table, error) {
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open mysql: %w", err)
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

	g, err := loadRoutes(cfg.RoutesPath)
	if err != nil {
		return nil, nil, err
	}
	t, err := loadEstimates(cfg.HeurPath)
	if err != nil {
		return nil, nil, err
	}
	return g, t, nil
}

func loadRoutes(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open routes: %w", err)
	}
	defer f.Close()
	return parse.Routes(f)
}

func loadEstimates(path string) (*heur.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open heuristic: %w", err)
	}
	defer f.Close()
	return parse.Estimates(f)
}
