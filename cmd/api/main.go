// Package main is the entry point for the bookshelf API server.
// It wires together configuration, the in-memory book store, and the HTTP router.
package main

import (
	"flag"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/aoideee/bookshelf-api/internal/data"
)

// appVersion is the current version of the API, shown in logs.
const appVersion = "1.0.0"

// serverConfig holds all the values that can be tweaked at startup via
// command-line flags. Flag defaults come from the environment (and .env).
type serverConfig struct {
	port        int    // TCP port the HTTP server listens on (default 9000)
	environment string // Runtime environment: development, staging, or production
	limiter     struct {
		rps     float64 // Tokens added per second for each client IP
		burst   int     // Bucket capacity for each client IP
		enabled bool    // Whether rate limiting is applied at all
	}
}

// applicationDependencies bundles every shared resource that HTTP handlers need.
// A pointer to this struct is passed as the receiver on all handler and route methods.
type applicationDependencies struct {
	config serverConfig // Server configuration loaded from flags
	logger *slog.Logger // Structured logger that writes to stdout
	models data.Models  // In-memory book store shared by all handlers
}

// main is the application entry point.
// It loads .env, parses flags, wires up dependencies, and starts the HTTP server.
func main() {
	// A missing .env is normal in production; the real environment still applies.
	_ = godotenv.Load()

	// Create a structured logger that writes human-readable text to stdout.
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	settings, err := loadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.Error(err.Error())
		os.Exit(2)
	}

	appInstance := &applicationDependencies{
		config: settings,
		logger: logger,
		models: data.NewModels(),
	}

	logger.Info("book store initialised", "version", appVersion)

	err = appInstance.serve()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// loadConfig registers the server flags on fs and parses args. Every flag
// falls back to its environment variable before the built-in default.
// The rate limiter is opt-in.
func loadConfig(fs *flag.FlagSet, args []string) (serverConfig, error) {
	var settings serverConfig

	fs.IntVar(&settings.port, "port", envInt("PORT", 9000), "Server port")
	fs.StringVar(&settings.environment, "env", envString("ENV", "development"), "Environment(development|staging|production)")
	fs.Float64Var(&settings.limiter.rps, "limiter-rps", envFloat("LIMITER_RPS", 2), "Rate limiter maximum requests per second")
	fs.IntVar(&settings.limiter.burst, "limiter-burst", envInt("LIMITER_BURST", 4), "Rate limiter maximum burst")
	fs.BoolVar(&settings.limiter.enabled, "limiter-enabled", envBool("LIMITER_ENABLED", false), "Enable rate limiter")

	err := fs.Parse(args)
	if err != nil {
		return serverConfig{}, err
	}

	return settings, nil
}

// envString returns the value of key, or fallback when it is unset or empty.
func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envInt returns key parsed as an int, or fallback when unset or malformed.
func envInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return f
}

func envBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return b
}
