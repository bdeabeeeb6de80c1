package config // package config loads application configuration from environment variables

import (
	"log"     // log reports configuration errors and halts execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time parses duration values
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The remote spreadsheet is the sole persistent
// store, so most of the configuration describes how to reach it and how
// aggressively its contents may be cached.
type Config struct {
	Env              string        // application environment (e.g. "dev", "prod")
	Port             string        // HTTP port to listen on
	SpreadsheetID    string        // ID of the league spreadsheet
	GoogleCreds      string        // service-account credentials: inline JSON or a file path
	SnapshotTTL      time.Duration // how long read-path snapshots stay fresh
	PointsPerMillion float64       // conversion rate: projected gross millions -> draft points
	AMQPURL          string        // broker URL for operator events (empty uses the local default)
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:              must("APP_ENV"),        // environment (dev/test/prod)
		Port:             must("APP_PORT"),       // port to bind the HTTP server
		SpreadsheetID:    must("SPREADSHEET_ID"), // league spreadsheet ID
		GoogleCreds:      googleCreds(),          // credentials JSON or path (empty -> ADC)
		SnapshotTTL:      envDur("SNAPSHOT_TTL", 10*time.Minute),
		PointsPerMillion: envFloat("POINTS_PER_MILLION", 10),
		AMQPURL:          os.Getenv("RABBITMQ_URL"),
	}
}

// googleCreds resolves service-account credentials.  Inline JSON takes
// precedence over a key-file path; when both are empty the Sheets client
// falls back to application default credentials.
func googleCreds() string {
	if v := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"); v != "" {
		return v
	}
	return os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return def
	}
	return f
}
