// dbload imports the route and heuristic text files into MySQL so pathion
// and bench can run against the database instead of the files.
package main

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"

	"github.com/atharv3903/pathion/internal/config"
	"github.com/atharv3903/pathion/internal/parse"
	"github.com/atharv3903/pathion/internal/store"
)

func main() {
	cfg := config.FromFlags()
	if cfg.MySQLDSN == "" {
		log.Fatal("dbload: -dsn (or DB_DSN) is required")
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	rf, err := os.Open(cfg.RoutesPath)
	if err != nil {
		log.Fatal(err)
	}
	defer rf.Close()
	g, err := parse.Routes(rf)
	if err != nil {
		log.Fatal(err)
	}

	hf, err := os.Open(cfg.HeurPath)
	if err != nil {
		log.Fatal(err)
	}
	defer hf.Close()
	t, err := parse.Estimates(hf)
	if err != nil {
		log.Fatal(err)
	}

	st := store.Store{DB: db}
	if err := st.InitSchema(); err != nil {
		log.Fatal(err)
	}
	if err := st.ImportRoutes(g); err != nil {
		log.Fatal(err)
	}
	if err := st.ImportEstimates(t); err != nil {
		log.Fatal(err)
	}

	log.Printf("Imported %d locations and %d heuristic entries", g.NodeCount(), t.Len())
}
