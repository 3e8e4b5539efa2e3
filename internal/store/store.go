// Package store persists the road graph and estimate table in MySQL as an
// alternative to the text files. Weights are stored in integer tenths, the
// same encoding the engine runs on, so nothing is re-rounded on load.
package store

import (
	"database/sql"
	"fmt"

	"github.com/atharv3903/pathion/internal/fixed"
	"github.com/atharv3903/pathion/internal/graph"
	"github.com/atharv3903/pathion/internal/heur"
)

type Store struct {
	DB *sql.DB
}

// InitSchema creates the routes and estimates tables if absent.
func (s Store) InitSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS routes (
			src VARCHAR(64) NOT NULL,
			dst VARCHAR(64) NOT NULL,
			dist_tenths BIGINT NOT NULL,
			PRIMARY KEY (src, dst)
		)`,
		`CREATE TABLE IF NOT EXISTS estimates (
			src VARCHAR(64) NOT NULL,
			goal VARCHAR(64) NOT NULL,
			dist_tenths BIGINT NOT NULL,
			PRIMARY KEY (src, goal)
		)`,
	}
	for _, q := range stmts {
		if _, err := s.DB.Exec(q); err != nil {
			return fmt.Errorf("store: init schema: %w", err)
		}
	}
	return nil
}

// ImportRoutes writes every edge of g, one row per unordered pair.
func (s Store) ImportRoutes(g *graph.Graph) error {
	for _, u := range g.Nodes() {
		for _, e := range g.Neighbors(u) {
			if e.To < u {
				continue // pair already written from the other side
			}
			_, err := s.DB.Exec(`
				INSERT INTO routes (src, dst, dist_tenths) VALUES (?, ?, ?)
				ON DUPLICATE KEY UPDATE dist_tenths=VALUES(dist_tenths)
			`, e.From, e.To, int64(e.Weight))
			if err != nil {
				return fmt.Errorf("store: import route %s-%s: %w", e.From, e.To, err)
			}
		}
	}
	return nil
}

// ImportEstimates writes every (src, goal) entry of t.
func (s Store) ImportEstimates(t *heur.Table) error {
	var firstErr error
	t.Each(func(from, goal string, w fixed.Weight) {
		if firstErr != nil {
			return
		}
		_, err := s.DB.Exec(`
			INSERT INTO estimates (src, goal, dist_tenths) VALUES (?, ?, ?)
			ON DUPLICATE KEY UPDATE dist_tenths=VALUES(dist_tenths)
		`, from, goal, int64(w))
		if err != nil {
			firstErr = fmt.Errorf("store: import estimate %s->%s: %w", from, goal, err)
		}
	})
	return firstErr
}

// LoadGraph reads the whole routes table into an in-memory graph.
func (s Store) LoadGraph() (*graph.Graph, error) {
	rows, err := s.DB.Query(`SELECT src, dst, dist_tenths FROM routes`)
	if err != nil {
		return nil, fmt.Errorf("store: load routes: %w", err)
	}
	defer rows.Close()

	g := graph.New()
	for rows.Next() {
		var src, dst string
		var tenths int64
		if err := rows.Scan(&src, &dst, &tenths); err != nil {
			return nil, fmt.Errorf("store: scan route: %w", err)
		}
		g.AddEdge(src, dst, fixed.Weight(tenths))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: load routes: %w", err)
	}
	return g, nil
}

// LoadEstimates reads the whole estimates table.
func (s Store) LoadEstimates() (*heur.Table, error) {
	rows, err := s.DB.Query(`SELECT src, goal, dist_tenths FROM estimates`)
	if err != nil {
		return nil, fmt.Errorf("store: load estimates: %w", err)
	}
	defer rows.Close()

	t := heur.NewTable()
	for rows.Next() {
		var src, goal string
		var tenths int64
		if err := rows.Scan(&src, &goal, &tenths); err != nil {
			return nil, fmt.Errorf("store: scan estimate: %w", err)
		}
		if err := t.Set(src, goal, fixed.Weight(tenths)); err != nil {
			return nil, fmt.Errorf("store: load estimates: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: load estimates: %w", err)
	}
	return t, nil
}
