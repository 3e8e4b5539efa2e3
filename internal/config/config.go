// Package config resolves runtime configuration for the pathion binaries:
// flags first, environment variables as defaults, with a best-effort .env
// load for local runs.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// RoutesPath and HeurPath are the text inputs (§ route and estimate
	// file formats). Ignored when MySQLDSN is set.
	RoutesPath string
	HeurPath   string

	// MySQLDSN, when non-empty, switches loading to the MySQL store.
	MySQLDSN string
}

// FromFlags parses the standard flag set shared by pathion and dbload.
func FromFlags() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	var cfg Config
	flag.StringVar(&cfg.RoutesPath, "routes", envOr("ROUTES_PATH", "routes.txt"), "route list file")
	flag.StringVar(&cfg.HeurPath, "heur", envOr("HEUR_PATH", "euclidian.txt"), "heuristic estimate file")
	flag.StringVar(&cfg.MySQLDSN, "dsn", os.Getenv("DB_DSN"), "MySQL DSN; load from the database instead of files")
	flag.Parse()

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
